package bootstrap

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/blessnetwork/blessnet/pkg/config"
	"github.com/blessnetwork/blessnet/pkg/descriptor"
)

// Reporter renders the project summary shown when blessnet runs without a command.
type Reporter struct {
	Out      io.Writer
	Location *time.Location
}

func (r Reporter) Report(p descriptor.Project, loggedIn bool) {
	yellow := color.New(color.FgYellow)
	green := color.New(color.FgGreen)
	blue := color.New(color.FgBlue)
	red := color.New(color.FgRed)

	table := tablewriter.NewWriter(r.Out)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Project Name", "Version", "Type"})
	table.Append([]string{p.Name, p.Version, p.Type})
	table.Render()

	if d, ok := p.FirstDeployment(); ok {
		yellow.Fprintf(r.Out, "Deployment Status: %s\n", green.Sprint("Deployed"))
		yellow.Fprintf(r.Out, "CID: %s\n", d.Cid)
		fmt.Fprintf(r.Out, "%s  %s\n\n", yellow.Sprint("Created:"), d.Created.Display(r.Location))
		if d.Host != "" {
			fmt.Fprintf(r.Out, "%s https://%s\n\n", yellow.Sprint("Web2 Host:"), d.Host)
		}
	} else {
		yellow.Fprintf(r.Out, "Deployment Status: Not Deployed\n\n")
	}

	fmt.Fprintln(r.Out, "Deploy this project to the BLESS network using the command:")
	green.Fprintf(r.Out, "blessnet deploy\n\n")

	fmt.Fprintln(r.Out, "Preview this project using the command:")
	fmt.Fprintf(r.Out, "%s or %s\n\n", green.Sprint("blessnet preview"), green.Sprint("blessnet preview serve"))

	fmt.Fprintln(r.Out, "Change the project settings using the command:")
	green.Fprintf(r.Out, "blessnet manage\n\n")

	fmt.Fprintln(r.Out, "Need more help?:")
	green.Fprintf(r.Out, "blessnet help\n\n")

	fmt.Fprintf(r.Out, "visit %s for more information.\n", blue.Sprint(config.DocsURL))
	state := red.Sprint("logged out")
	if loggedIn {
		state = green.Sprint("logged in")
	}
	fmt.Fprintf(r.Out, "you are currently %s to %s\n", state, yellow.Sprint("bless.network"))
	if !loggedIn {
		fmt.Fprintf(r.Out, "To log in, run %s\n", blue.Sprint("blessnet options account login"))
	}
	fmt.Fprintf(r.Out, "To log out, run %s\n", blue.Sprint("blessnet options account logout"))
}
