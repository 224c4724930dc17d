package bootstrap

import "strings"

// Intent is the purpose of an invocation as far as the orchestrator cares.
// Flags are independent; several may be set at once.
type Intent struct {
	Version  bool
	Help     bool
	Options  bool
	Build    bool
	Init     bool
	Preview  bool
	Manage   bool
	Deploy   bool
	Registry bool
	// DeployTarget is set for deploy with anything after it.
	// It is a token count, not a parse: `deploy --verbose` counts too.
	DeployTarget bool
}

type tokenKind uint8

const (
	tokenWord tokenKind = iota
	tokenFlag
)

type token struct {
	kind  tokenKind
	value string
}

func tokenize(args []string) []token {
	tokens := make([]token, 0, len(args))
	for _, arg := range args {
		kind := tokenWord
		if strings.HasPrefix(arg, "-") && arg != "-" {
			kind = tokenFlag
		}
		tokens = append(tokens, token{kind: kind, value: arg})
	}
	return tokens
}

// Classify derives an Intent from args, program name first.
// It has no side effects; unknown tokens simply match nothing.
func Classify(args []string) Intent {
	var in Intent
	if len(args) == 0 {
		return in
	}
	for _, tok := range tokenize(args[1:]) {
		switch tok.kind {
		case tokenFlag:
			switch tok.value {
			case "-v", "--version":
				in.Version = true
			case "-h", "--help":
				in.Help = true
			}
		case tokenWord:
			switch tok.value {
			case "version":
				in.Version = true
			case "help":
				in.Help = true
			case "options":
				in.Options = true
			case "build":
				in.Build = true
			case "init":
				in.Init = true
			case "preview":
				in.Preview = true
			case "manage":
				in.Manage = true
			case "deploy":
				in.Deploy = true
			case "registry":
				in.Registry = true
			}
		}
	}
	in.DeployTarget = in.Deploy && len(args) > 2
	return in
}

// needsRuntime is true for everything but version, options and build.
func (in Intent) needsRuntime() bool {
	return !(in.Version || in.Options || in.Build)
}

// reportsStatus is true when, given a descriptor, nothing actionable was asked for.
func (in Intent) reportsStatus() bool {
	return !in.DeployTarget &&
		!(in.Version || in.Options || in.Build) &&
		!(in.Help || in.Preview || in.Manage || in.Deploy)
}

// offersInit is true when, lacking a descriptor, the user should be asked to create one.
func (in Intent) offersInit() bool {
	return !(in.Version || in.Help || in.Options || in.Registry || in.Build) && !in.DeployTarget
}
