package healthcheck

import (
	"context"
	"fmt"
	"os"

	"github.com/serum-errors/go-serum"

	"github.com/blessnetwork/blessnet/pkg/blsruntime"
	"github.com/blessnetwork/blessnet/pkg/config"
	"github.com/blessnetwork/blessnet/pkg/descriptor"
)

// RuntimeCheck verifies the installed runtime can be executed.
type RuntimeCheck struct {
	Path string
}

func (c *RuntimeCheck) String() string {
	return "Runtime"
}

// Run
// Errors:
//
//    - blessnet-error-healthcheck-run-okay -- the runtime is usable
//    - blessnet-error-healthcheck-run-fail -- the runtime is missing or not executable
func (c *RuntimeCheck) Run(ctx context.Context) error {
	if err := blsruntime.Check(c.Path); err != nil {
		return serum.Errorf(CodeRunFailure, "%s", serum.Message(err))
	}
	return serum.Errorf(CodeRunOkay, "path: %s", c.Path)
}

// ReleaseCheck resolves the runtime release that would be installed on this platform.
type ReleaseCheck struct {
	State config.State
}

func (c *ReleaseCheck) String() string {
	return "Runtime release"
}

// Run
// Errors:
//
//    - blessnet-error-healthcheck-run-okay -- a release exists for this platform
//    - blessnet-error-healthcheck-run-fail -- the version pin is invalid or the platform is unsupported
func (c *ReleaseCheck) Run(ctx context.Context) error {
	release, err := blsruntime.NewRelease(c.State)
	if err != nil {
		return serum.Errorf(CodeRunFailure, "%s", serum.Message(err))
	}
	url, err := release.URL()
	if err != nil {
		return serum.Errorf(CodeRunFailure, "%s", serum.Message(err))
	}
	return serum.Errorf(CodeRunOkay, "%s", url)
}

// DescriptorCheck parses the project descriptor in the working directory, if there is one.
type DescriptorCheck struct {
	Dir string
}

func (c *DescriptorCheck) String() string {
	return "Project descriptor"
}

// Run
// Errors:
//
//    - blessnet-error-healthcheck-run-okay -- the descriptor parses
//    - blessnet-error-healthcheck-run-fail -- the descriptor is unreadable or invalid
//    - blessnet-error-healthcheck-run-ambiguous -- there is no descriptor here
func (c *DescriptorCheck) Run(ctx context.Context) error {
	if !descriptor.Exists(c.Dir, config.DescriptorFilename) {
		return serum.Errorf(CodeRunAmbiguous, "no %s in %s", config.DescriptorFilename, c.Dir)
	}
	p, err := descriptor.Load(c.Dir, config.DescriptorFilename)
	if err != nil {
		return serum.Errorf(CodeRunFailure, "%s", err)
	}
	return serum.Errorf(CodeRunOkay, "%s %s (%d deployments)", p.Name, p.Version, len(p.Deployments))
}

// LoginCheck reports whether an auth token is stored.
type LoginCheck struct {
	Path string
}

func (c *LoginCheck) String() string {
	return "Account"
}

// Run
// Errors:
//
//    - blessnet-error-healthcheck-run-okay -- a token is stored
//    - blessnet-error-healthcheck-run-ambiguous -- no token; deploy will refuse to run
func (c *LoginCheck) Run(ctx context.Context) error {
	if _, err := os.Stat(c.Path); err != nil {
		return serum.Errorf(CodeRunAmbiguous, "logged out; deploy requires `blessnet options account login`")
	}
	return serum.Errorf(CodeRunOkay, "logged in")
}

// GatewayCheck reports whether a publishing gateway is configured.
type GatewayCheck struct {
	Config config.S3Config
}

func (c *GatewayCheck) String() string {
	return "Publishing gateway"
}

// Run
// Errors:
//
//    - blessnet-error-healthcheck-run-okay -- endpoint and bucket are set
//    - blessnet-error-healthcheck-run-ambiguous -- not configured; deploy will refuse to run
func (c *GatewayCheck) Run(ctx context.Context) error {
	if c.Config.Endpoint == "" || c.Config.Bucket == "" {
		return serum.Errorf(CodeRunAmbiguous, "not configured; set %s and %s", config.EnvS3Endpoint, config.EnvS3Bucket)
	}
	return serum.Errorf(CodeRunOkay, "%s", fmt.Sprintf("%s/%s (%s)", c.Config.Endpoint, c.Config.Bucket, c.Config.Region))
}

// Default is the set of runners `options health` uses.
func Default(state config.State) *HealthCheck {
	return &HealthCheck{
		Runners: []Runner{
			&SystemInfo{},
			&RuntimeCheck{Path: config.RuntimePath(state)},
			&ReleaseCheck{State: state},
			&DescriptorCheck{Dir: state.WorkingDirectory},
			&LoginCheck{Path: config.AuthTokenPath(state)},
			&GatewayCheck{Config: config.Gateway(state)},
		},
	}
}
