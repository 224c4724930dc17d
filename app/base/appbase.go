package appbase

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime/debug"

	"github.com/urfave/cli/v2"

	"github.com/blessnetwork/blessnet/app/base/helpgen"
	"github.com/blessnetwork/blessnet/pkg/config"
	"github.com/blessnetwork/blessnet/pkg/prompt"
)

const VERSION = "0.1.0"

// Keys of App.Metadata set by cmd/blessnet (or tests) before App.Run.
const (
	MetadataState    = "state"
	MetadataLoggedIn = helpgen.MetadataLoggedIn
	MetadataPrompter = "prompter"
)

var App = &cli.App{
	Name:    "blessnet",
	Version: VersionString(),
	Usage:   "build, preview and deploy projects on the BLESS network",

	Reader:    closedReader{}, // Replace with os.Stdin in real application; or other wiring, in tests.
	Writer:    panicWriter{},  // Replace with os.Stdout in real application; or other wiring, in tests.
	ErrWriter: panicWriter{},  // Replace with os.Stderr in real application; or other wiring, in tests.

	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			EnvVars: []string{"BLESSNET_DEBUG"},
		},
		&cli.BoolFlag{
			Name: "quiet",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Enable JSON API output",
		},
		&cli.StringFlag{
			Name:      "trace.file",
			Usage:     "Enable tracing and emit output to file",
			TakesFile: true,
		},
		&cli.BoolFlag{
			Name:  "trace.http.enable",
			Usage: "Enable remote tracing over http",
		},
		&cli.BoolFlag{
			Name:  "trace.http.insecure",
			Usage: "Allows insecure http",
		},
		&cli.StringFlag{
			Name:  "trace.http.endpoint",
			Usage: "Sets an endpoint for remote open-telemetry tracing collection",
		},
	},

	// With no command, there's nothing to do but explain ourselves.
	Action: func(c *cli.Context) error {
		return cli.ShowAppHelp(c)
	},

	// The commands slice is updated by each package that contains commands.
	// Import the parent of this package to get that all done for you!
	Commands: []*cli.Command{},

	ExitErrHandler: func(c *cli.Context, err error) {
		if err == nil {
			return
		}
		if c.Bool("json") {
			bytes, err := json.Marshal(err)
			if err != nil {
				panic("error marshaling json")
			}
			fmt.Fprintf(c.App.ErrWriter, "%s\n", string(bytes))
		} else {
			fmt.Fprintf(c.App.ErrWriter, "error: %s\n", err)
		}
	},
}

// VersionString is VERSION, marked "-dev" for builds not made from a released module.
func VersionString() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return VERSION + "-dev"
	}
	return VERSION
}

// PrintVersion is shared by the --version flag and the version command.
func PrintVersion(w io.Writer, app *cli.App) {
	fmt.Fprintf(w, "Current version: %s\n", app.Version)
}

// State returns the process state given to the app, or a fresh snapshot.
//
// Errors:
//
//   - blessnet-error-serialization -- error copying state
func State(c *cli.Context) (config.State, error) {
	if state, ok := c.App.Metadata[MetadataState].(config.State); ok {
		return state, nil
	}
	return config.NewState()
}

// Prompter returns the prompter given to the app, or one reading the app's Reader.
func Prompter(c *cli.Context) prompt.Prompter {
	if p, ok := c.App.Metadata[MetadataPrompter].(prompt.Prompter); ok {
		return p
	}
	return prompt.NewLine(c.App.Reader, c.App.Writer)
}

// LoggedIn reports whether an auth token was present when the process started.
func LoggedIn(app *cli.App) bool {
	return helpgen.LoggedIn(app)
}

// Aaaand the other modifications to `urfave/cli` that are unfortunately only possible by manipulating globals:
func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:               "version",
		Aliases:            []string{"v"},
		Usage:              "print the version",
		DisableDefaultText: true,
	}
	cli.VersionPrinter = func(c *cli.Context) {
		PrintVersion(c.App.Writer, c.App)
	}
}

type closedReader struct{}

// Read is a dummy method that always returns EOF.
func (c closedReader) Read(p []byte) (int, error) {
	return 0, io.EOF
}

type panicWriter struct{}

// Write is a dummy method that always panics.  You're supposed to replace panicWriter values before use.
func (p panicWriter) Write(data []byte) (int, error) {
	panic("replace the Writer and ErrWriter on the App value in packages that use it!")
}
