//go:build windows

package blsruntime

const windows = true

// Execute permission is not a file mode bit on windows; existence is all we can check.
func executionAccess(path string) error {
	return nil
}
