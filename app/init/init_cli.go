package initcli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/fatih/color"
	"github.com/go-git/go-git/v5"
	"github.com/urfave/cli/v2"

	appbase "github.com/blessnetwork/blessnet/app/base"
	"github.com/blessnetwork/blessnet/app/base/util"
	"github.com/blessnetwork/blessnet/blsapi"
	"github.com/blessnetwork/blessnet/pkg/config"
	"github.com/blessnetwork/blessnet/pkg/descriptor"
	"github.com/blessnetwork/blessnet/pkg/logging"
)

func init() {
	appbase.App.Commands = append(appbase.App.Commands, initCmdDef)
}

var initCmdDef = &cli.Command{
	Name:      "init",
	Usage:     "Scaffold a new project",
	ArgsUsage: "[project-name]",
	Description: heredoc.Doc(`
		With a project name, creates a directory of that name holding a new bls.toml.
		Without one, asks for a name (defaulting to the current directory's) and
		writes bls.toml in the current directory.

		An existing bls.toml is never overwritten. With --git, the project
		directory is also made a git repository unless it already is one.
	`),
	Action: util.StandardMiddleware(cmdInit),
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "type",
			Usage: "Project type recorded in the descriptor",
			Value: DefaultType,
		},
		&cli.BoolFlag{
			Name:  "git",
			Usage: "Initialize a git repository in the project directory",
		},
	},
}

const (
	DefaultType    = "site"
	DefaultVersion = "1.0.0"
)

var validName = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// SanitizeName lowercases name and replaces whitespace runs with dashes.
func SanitizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// ValidateName checks a sanitized project name.
//
// Errors:
//
//   - blessnet-error-invalid -- the name cannot be used as a project or directory name
func ValidateName(name string) error {
	if !validName.MatchString(name) {
		return blsapi.ErrorInvalid(fmt.Sprintf("invalid project name %q: use lowercase letters, digits, '.', '-' and '_'", name),
			[2]string{"name", name})
	}
	return nil
}

var indexTemplate = heredoc.Doc(`
	// Entry point of %s.
	// Build with the command in bls.toml, then run "blessnet preview".
	console.log("hello from %s");
`)

const gitignoreBody = "build/\nnode_modules/\n"

// Scaffold creates a project in dir. dir is created if needed.
//
// Errors:
//
//   - blessnet-error-already-exists -- dir already holds a descriptor
//   - blessnet-error-io -- files cannot be written
//   - blessnet-error-serialization -- the descriptor cannot be encoded
func Scaffold(dir string, p descriptor.Project) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return blsapi.ErrorIo("unable to create project directory", dir, err)
	}
	path := filepath.Join(dir, config.DescriptorFilename)
	if _, err := os.Stat(path); err == nil {
		return blsapi.ErrorFileAlreadyExists(path)
	}
	if err := descriptor.Save(dir, config.DescriptorFilename, p); err != nil {
		return err
	}
	if err := writeIfAbsent(filepath.Join(dir, "src", "index.js"), fmt.Sprintf(indexTemplate, p.Name, p.Name)); err != nil {
		return err
	}
	return writeIfAbsent(filepath.Join(dir, ".gitignore"), gitignoreBody)
}

// InitGit makes dir a git repository. An existing repository is left alone.
//
// Errors:
//
//   - blessnet-error-git -- the repository cannot be created
func InitGit(dir string) error {
	_, err := git.PlainInit(dir, false)
	if err != nil && !errors.Is(err, git.ErrRepositoryAlreadyExists) {
		return blsapi.ErrorGit("unable to initialize repository", err)
	}
	return nil
}

func writeIfAbsent(path, body string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return blsapi.ErrorIo("unable to create directory", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		return blsapi.ErrorIo("unable to write file", path, err)
	}
	return nil
}

func cmdInit(c *cli.Context) error {
	log := logging.Ctx(c.Context)
	state, err := appbase.State(c)
	if err != nil {
		return err
	}
	if c.NArg() > 1 {
		return blsapi.ErrorInvalid("init takes at most one project name")
	}

	// A bare "init" token is what the launcher hands over when no name followed it.
	name := c.Args().First()
	if name == "init" {
		name = ""
	}
	dir := state.WorkingDirectory
	if name != "" {
		name = SanitizeName(name)
		dir = filepath.Join(state.WorkingDirectory, name)
	} else {
		fallback := SanitizeName(filepath.Base(state.WorkingDirectory))
		answer := appbase.Prompter(c).Ask(fmt.Sprintf("Project name (%s): ", fallback))
		name = SanitizeName(answer)
		if name == "" {
			name = fallback
		}
	}
	if err := ValidateName(name); err != nil {
		return err
	}

	p := descriptor.Project{
		Name:    name,
		Version: DefaultVersion,
		Type:    c.String("type"),
		Build: &descriptor.Build{
			Command: descriptor.DefaultBuildCommand,
			Output:  "build/" + name + ".wasm",
		},
	}
	if err := Scaffold(dir, p); err != nil {
		return err
	}
	log.Debug("init", "scaffolded %s in %s", name, dir)
	if c.Bool("git") {
		if err := InitGit(dir); err != nil {
			return err
		}
		log.Debug("init", "initialized git repository in %s", dir)
	}

	if log.JSON() {
		return log.Result(struct {
			Name string `json:"name"`
			Dir  string `json:"dir"`
		}{name, dir})
	}
	log.Out("%s %s in %s", color.GreenString("Initialized project"), name, dir)
	if dir != state.WorkingDirectory {
		log.Out("Next: cd %s && blessnet options build", name)
	} else {
		log.Out("Next: blessnet options build")
	}
	return nil
}
