package healthcheck

import (
	"context"
	"fmt"
	"runtime"

	"github.com/serum-errors/go-serum"
)

// SystemInfo reports the platform, and the kernel release where it can be read.
type SystemInfo struct{}

func (s *SystemInfo) String() string {
	return "System"
}

// Run
// Errors:
//
//    - blessnet-error-healthcheck-run-ambiguous -- always; the result is informational
func (s *SystemInfo) Run(ctx context.Context) error {
	info := fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
	if release := kernelRelease(); release != "" {
		info += ", kernel " + release
	}
	return serum.Errorf(CodeRunAmbiguous, "%s", info)
}
