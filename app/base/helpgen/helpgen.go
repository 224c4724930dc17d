/*
This package frames the app's help text, and wires that into `urfave/cli`
at package init time.

The top-level help gets a boxed banner with the common workflows before it,
and the docs link and login state after it. Command help is left alone.

(The use of package init time is unfortunate,
but package-scope vars are the only option for customizing help processing
that the `urfave/cli` package currently makes available.)
*/
package helpgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

// MetadataLoggedIn is the App.Metadata key holding whether an auth token is stored.
const MetadataLoggedIn = "loggedIn"

const defaultWidth = 80

func LoggedIn(app *cli.App) bool {
	loggedIn, _ := app.Metadata[MetadataLoggedIn].(bool)
	return loggedIn
}

// terminalWidth detects the width of wr, if it's a terminal.
func terminalWidth(wr io.Writer) int {
	if fd, ok := wr.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(fd.Fd()))
		if err == nil && width > 0 {
			if width < 60 {
				width = 60
			}
			return width
		}
	}
	return defaultWidth
}

// Banner renders the boxed workflow summary shown before the top-level help.
func Banner(width int) string {
	yellow := color.New(color.FgYellow)
	body := heredoc.Docf(`
		%s
		    blessnet init <project-name>

		%s
		    blessnet manage

		%s
		    blessnet preview [serve]
		`,
		yellow.Sprint("To scaffold a new project, run:"),
		yellow.Sprint("If you already have a project set up and would like to add,\nremove, or update its structure, run:"),
		yellow.Sprint("Preview your project results in the terminal or web:"),
	)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2).
		Width(width - 2)
	return box.Render(strings.TrimRight(body, "\n"))
}

// Footer renders the docs link and login state shown after the top-level help.
func Footer(loggedIn bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\nvisit %s for more information.\n", color.BlueString("https://docs.bless.network"))
	state := color.RedString("logged out")
	if loggedIn {
		state = color.GreenString("logged in")
	}
	fmt.Fprintf(&sb, "you are currently %s to %s\n", state, color.YellowString("bless.network"))
	if !loggedIn {
		fmt.Fprintf(&sb, "\nTo login, run %s\n", color.BlueString("blessnet options account login"))
	}
	return sb.String()
}

func init() {
	upstream := cli.HelpPrinter
	cli.HelpPrinter = func(w io.Writer, templ string, data interface{}) {
		app, isApp := data.(*cli.App)
		// Subcommand groups render through an app named "<parent> <child>".
		isApp = isApp && !strings.Contains(app.Name, " ")
		if isApp {
			fmt.Fprintln(w, Banner(terminalWidth(w)))
		}
		upstream(w, templ, data)
		if isApp {
			fmt.Fprint(w, Footer(LoggedIn(app)))
		}
	}
}
