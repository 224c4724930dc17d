package util

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/blessnetwork/blessnet/blsapi"
	"github.com/blessnetwork/blessnet/pkg/config"
	"github.com/blessnetwork/blessnet/pkg/descriptor"
)

// ProjectDir resolves the project directory named by the command's first argument,
// or the working directory when there is none.
func ProjectDir(c *cli.Context, state config.State) string {
	if c.Args().Present() {
		return canonicalizePath(state.WorkingDirectory, c.Args().First())
	}
	return state.WorkingDirectory
}

// LoadProject loads the descriptor found in dir.
//
// Errors:
//
//   - blessnet-error-descriptor-missing -- dir has no descriptor
//   - blessnet-error-io -- the descriptor cannot be read
//   - blessnet-error-serialization -- the descriptor is invalid
func LoadProject(dir string) (descriptor.Project, error) {
	_, err := os.Stat(filepath.Join(dir, config.DescriptorFilename))
	if errors.Is(err, fs.ErrNotExist) {
		return descriptor.Project{}, blsapi.ErrorDescriptorMissing(filepath.Join(dir, config.DescriptorFilename))
	}
	return descriptor.Load(dir, config.DescriptorFilename)
}

// ReadAuthToken returns the stored auth token.
//
// Errors:
//
//   - blessnet-error-not-logged-in -- no token is stored
//   - blessnet-error-io -- the token file cannot be read
func ReadAuthToken(state config.State) (string, error) {
	path := config.AuthTokenPath(state)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", blsapi.ErrorNotLoggedIn()
	}
	if err != nil {
		return "", blsapi.ErrorIo("unable to read auth token", path, err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", blsapi.ErrorNotLoggedIn()
	}
	return token, nil
}

// canonicalize is like filepath.Abs but assumes we already have a working directory path which is absolute
func canonicalizePath(pwd, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	if !filepath.IsAbs(pwd) {
		panic(fmt.Sprintf("working directory must be an absolute path: %q", pwd))
	}
	return filepath.Join(pwd, path)
}
