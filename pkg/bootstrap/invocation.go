package bootstrap

import (
	"os"
	"strings"

	"github.com/blessnetwork/blessnet/pkg/config"
)

// Invocation is everything the orchestrator knows about the process, captured once.
type Invocation struct {
	// Args is the full argument vector, program name first.
	Args             []string
	WorkingDirectory string
	DescriptorPath   string
	RuntimePath      string
	AuthTokenPath    string

	RuntimePresent    bool
	DescriptorPresent bool
	LoggedIn          bool
}

// Probe builds an Invocation from state. Missing files are recorded as absent, never as errors.
func Probe(state config.State, args []string) Invocation {
	inv := Invocation{
		Args:             append([]string(nil), args...),
		WorkingDirectory: state.WorkingDirectory,
		DescriptorPath:   config.DescriptorPath(state),
		RuntimePath:      config.RuntimePath(state),
		AuthTokenPath:    config.AuthTokenPath(state),
	}
	inv.RuntimePresent = exists(inv.RuntimePath)
	inv.DescriptorPresent = exists(inv.DescriptorPath)
	inv.LoggedIn = exists(inv.AuthTokenPath)
	return inv
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// lastToken is the final raw argument, or "" for an empty vector.
func (inv Invocation) lastToken() string {
	if len(inv.Args) == 0 {
		return ""
	}
	return inv.Args[len(inv.Args)-1]
}

// initFlags are the flag tokens between "init" and the last token.
// They ride along with the project name so "init --git app" keeps its flag.
func (inv Invocation) initFlags() []string {
	var flags []string
	for i := 1; i < len(inv.Args)-1; i++ {
		if inv.Args[i] != "init" {
			continue
		}
		for _, tok := range inv.Args[i+1 : len(inv.Args)-1] {
			if strings.HasPrefix(tok, "-") {
				flags = append(flags, tok)
			}
		}
		break
	}
	return flags
}
