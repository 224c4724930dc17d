/*
Package descriptor reads and writes the project descriptor, bls.toml.

The descriptor names the project and records its deployment history.
Deployments are kept newest-first: the first element is what status reports.
*/
package descriptor

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/blessnetwork/blessnet/blsapi"
)

// DefaultBuildCommand is used when a descriptor carries no [build] table.
const DefaultBuildCommand = "npm run build"

type Project struct {
	Name        string       `toml:"name"`
	Version     string       `toml:"version"`
	Type        string       `toml:"type"`
	Build       *Build       `toml:"build,omitempty"`
	Deployments []Deployment `toml:"deployments,omitempty"`
}

type Build struct {
	Command string `toml:"command"`
	Output  string `toml:"output"`
}

type Deployment struct {
	Cid     string    `toml:"cid"`
	Created Timestamp `toml:"created"`
	Host    string    `toml:"host,omitempty"`
}

// BuildCommand returns the configured build command, or DefaultBuildCommand.
func (p Project) BuildCommand() string {
	if p.Build == nil || p.Build.Command == "" {
		return DefaultBuildCommand
	}
	return p.Build.Command
}

// ArtifactPath returns the build output, relative to the project directory.
func (p Project) ArtifactPath() string {
	if p.Build == nil || p.Build.Output == "" {
		return filepath.Join("build", p.Name+".wasm")
	}
	return filepath.FromSlash(p.Build.Output)
}

// FirstDeployment returns the first recorded deployment, if any.
func (p Project) FirstDeployment() (Deployment, bool) {
	if len(p.Deployments) == 0 {
		return Deployment{}, false
	}
	return p.Deployments[0], true
}

// AddDeployment records d ahead of earlier deployments.
func (p *Project) AddDeployment(d Deployment) {
	p.Deployments = append([]Deployment{d}, p.Deployments...)
}

// Exists reports whether dir contains filename. Errors other than absence count as present,
// so that a later Load surfaces them.
func Exists(dir, filename string) bool {
	_, err := os.Stat(filepath.Join(dir, filename))
	return err == nil || !errors.Is(err, fs.ErrNotExist)
}

// Load parses the descriptor at dir/filename.
//
// Errors:
//
//    - blessnet-error-io -- the file cannot be read
//    - blessnet-error-serialization -- the file is not a valid descriptor
func Load(dir, filename string) (Project, error) {
	path := filepath.Join(dir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		return Project{}, blsapi.ErrorIo("unable to read project descriptor", path, err)
	}
	return Parse(data)
}

// Parse decodes descriptor bytes.
//
// Errors:
//
//    - blessnet-error-serialization -- the data is not a valid descriptor
func Parse(data []byte) (Project, error) {
	var p Project
	if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&p); err != nil {
		return Project{}, blsapi.ErrorSerialization("unable to parse project descriptor", err)
	}
	return p, nil
}

// Encode serializes p as TOML.
//
// Errors:
//
//    - blessnet-error-serialization -- encoding failed
func Encode(p Project) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(p); err != nil {
		return nil, blsapi.ErrorSerialization("unable to encode project descriptor", err)
	}
	return buf.Bytes(), nil
}

// Save writes p to dir/filename, replacing any existing file.
//
// Errors:
//
//    - blessnet-error-serialization -- encoding failed
//    - blessnet-error-io -- the file cannot be written
func Save(dir, filename string, p Project) error {
	data, err := Encode(p)
	if err != nil {
		return err
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return blsapi.ErrorIo("unable to write project descriptor", path, err)
	}
	return nil
}
