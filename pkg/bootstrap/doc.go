/*
Package bootstrap decides what a blessnet invocation does before any
subcommand gets to parse its arguments.

The sequence is fixed:

	probe       snapshot args, working directory and installation state
	classify    derive the Intent from argument tokens alone
	runtime     if the runtime is missing, ask to install it (terminal either way)
	init        an init intent goes straight to the init command
	descriptor  with bls.toml present, either report status or route;
	            without it, ask to initialize a project

Every step ends in a Decision. Nothing in this package exits the process:
cmd/blessnet acts on the Decision that Run returns.
*/
package bootstrap
