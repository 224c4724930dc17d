/*
Package blsruntime acquires and runs bls-runtime, the local executor
that build, preview and deploy depend on.
*/
package blsruntime

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"runtime"

	"github.com/hashicorp/go-version"

	"github.com/blessnetwork/blessnet/blsapi"
	"github.com/blessnetwork/blessnet/pkg/config"
	"github.com/blessnetwork/blessnet/pkg/tracing"
)

// ReleaseBaseURL is where runtime release archives are published.
const ReleaseBaseURL = "https://github.com/blessnetwork/bls-runtime/releases/download"

// MinimumVersion is the oldest runtime release this CLI knows how to drive.
const MinimumVersion = ">= 0.3.0"

// Installer fetches and installs the runtime. A single call is a single attempt.
type Installer interface {
	Install(ctx context.Context) error
}

// InstallerFunc adapts a function to the Installer interface.
type InstallerFunc func(ctx context.Context) error

func (f InstallerFunc) Install(ctx context.Context) error {
	return f(ctx)
}

// Release installs a published runtime release archive.
type Release struct {
	Version *version.Version
	GOOS    string
	GOARCH  string
	// URLOverride replaces the computed download URL when set.
	URLOverride string
	// Dest is the full path the runtime executable is installed at.
	Dest   string
	Client *http.Client
}

// NewRelease configures an installer from state.
//
// Errors:
//
//    - blessnet-error-invalid -- the pinned version does not parse or is too old
func NewRelease(state config.State) (*Release, error) {
	raw := config.RuntimeVersion(state)
	v, err := version.NewVersion(raw)
	if err != nil {
		return nil, blsapi.ErrorInvalid(fmt.Sprintf("runtime version %q is not a version: %s", raw, err),
			[2]string{"version", raw})
	}
	constraint, err := version.NewConstraint(MinimumVersion)
	if err != nil {
		panic(err)
	}
	if !constraint.Check(v) {
		return nil, blsapi.ErrorInvalid(fmt.Sprintf("runtime version %s does not satisfy %q", v, MinimumVersion),
			[2]string{"version", raw})
	}
	r := &Release{
		Version: v,
		GOOS:    runtime.GOOS,
		GOARCH:  runtime.GOARCH,
		Dest:    config.RuntimePath(state),
		Client:  http.DefaultClient,
	}
	if override := config.RuntimeURLOverride(state); override != nil {
		r.URLOverride = *override
	}
	return r, nil
}

// platformSlug names the release asset for a platform, e.g. "linux-latest.x86_64".
//
// Errors:
//
//    - blessnet-error-invalid -- the platform has no published runtime
func platformSlug(goos, goarch string) (string, error) {
	var osPart, archPart string
	switch goos {
	case "linux":
		osPart = "linux-latest"
	case "darwin":
		osPart = "macos-latest"
	case "windows":
		osPart = "windows-latest"
	default:
		return "", blsapi.ErrorInvalid(fmt.Sprintf("no bls-runtime is published for %s", goos), [2]string{"os", goos})
	}
	switch goarch {
	case "amd64":
		archPart = "x86_64"
	case "arm64":
		archPart = "aarch64"
	default:
		return "", blsapi.ErrorInvalid(fmt.Sprintf("no bls-runtime is published for %s/%s", goos, goarch), [2]string{"arch", goarch})
	}
	return osPart + "." + archPart, nil
}

// URL returns the archive download location.
//
// Errors:
//
//    - blessnet-error-invalid -- the platform has no published runtime
func (r *Release) URL() (string, error) {
	if r.URLOverride != "" {
		return r.URLOverride, nil
	}
	slug, err := platformSlug(r.GOOS, r.GOARCH)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/v%s/blockless-runtime.%s.tar.gz", ReleaseBaseURL, r.Version, slug), nil
}

// Install downloads the archive and installs the runtime executable at r.Dest.
//
// Errors:
//
//    - blessnet-error-invalid -- the platform has no published runtime
//    - blessnet-error-runtime-acquisition -- download or extraction failed
func (r *Release) Install(ctx context.Context) (err error) {
	ctx, span := tracing.Start(ctx, "runtime install")
	defer func() { tracing.EndWithStatus(span, err) }()

	url, err := r.URL()
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return blsapi.ErrorRuntimeAcquisition(url, err)
	}
	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return blsapi.ErrorRuntimeAcquisition(url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return blsapi.ErrorRuntimeAcquisition(url, fmt.Errorf("unexpected status %s", resp.Status))
	}
	if err := extractBinary(resp.Body, filepath.Base(r.Dest), r.Dest); err != nil {
		return blsapi.ErrorRuntimeAcquisition(url, err)
	}
	return nil
}

var errBinaryNotInArchive = errors.New("runtime executable not found in archive")

// extractBinary copies the archive member named binName into dest.
// The file is staged next to dest and renamed into place, so a failed
// download never leaves a partial executable behind.
func extractBinary(archive io.Reader, binName, dest string) error {
	gz, err := gzip.NewReader(archive)
	if err != nil {
		return err
	}
	defer gz.Close()
	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return errBinaryNotInArchive
		}
		if err != nil {
			return err
		}
		if hdr.Typeflag != tar.TypeReg || path.Base(hdr.Name) != binName {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return err
		}
		tmp, err := os.CreateTemp(filepath.Dir(dest), ".bls-runtime-*")
		if err != nil {
			return err
		}
		if _, err := io.Copy(tmp, tr); err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
			return err
		}
		if err := tmp.Close(); err != nil {
			os.Remove(tmp.Name())
			return err
		}
		if err := os.Chmod(tmp.Name(), 0755); err != nil {
			os.Remove(tmp.Name())
			return err
		}
		return os.Rename(tmp.Name(), dest)
	}
}
