//go:build !(linux || darwin || freebsd)

package healthcheck

func kernelRelease() string {
	return ""
}
