package blsapi

import (
	"encoding/json"
	"os"

	"github.com/serum-errors/go-serum"
)

const (
	CodeAlreadyExists      = "blessnet-error-already-exists"
	CodeDescriptorMissing  = "blessnet-error-descriptor-missing"
	CodeGit                = "blessnet-error-git"
	CodeInitialization     = "blessnet-error-initialization"
	CodeInternal           = "blessnet-error-internal"
	CodeInvalid            = "blessnet-error-invalid"
	CodeIo                 = "blessnet-error-io"
	CodeNotLoggedIn        = "blessnet-error-not-logged-in"
	CodePublish            = "blessnet-error-publish"
	CodeRuntimeAcquisition = "blessnet-error-runtime-acquisition"
	CodeRuntimeExecution   = "blessnet-error-runtime-execution"
	CodeSerialization      = "blessnet-error-serialization"
	CodeUnknown            = "blessnet-error-unknown"
)

// TerminalError emits an error on stdout as json, and halts immediately.
// Only used where no better channel for errors exists yet, such as package init.
func TerminalError(err serum.ErrorInterface, exitCode int) {
	json.NewEncoder(os.Stdout).Encode(struct {
		Error serum.ErrorInterface `json:"error"`
	}{err})
	os.Exit(exitCode)
}

// ErrorUnknown is returned when an unknown error occurs
//
// Errors:
//
// - blessnet-error-unknown --
func ErrorUnknown(msgTmpl string, cause error) error {
	return serum.Errorf(CodeUnknown, "%s: %w", msgTmpl, cause)
}

// ErrorInternal is for miscellaneous errors that an end user is not expected to act on.
// In most cases, prefer to use more specific errors.
//
// Errors:
//
// - blessnet-error-internal --
func ErrorInternal(msgTmpl string, cause error) error {
	return serum.Errorf(CodeInternal, "%s: %w", msgTmpl, cause)
}

// ErrorInvalid is returned when something is invalid.
// The caller must format the message string.
//
// Errors:
//
//  - blessnet-error-invalid --
func ErrorInvalid(message string, deets ...[2]string) error {
	opts := make([]serum.WithConstruction, 0, len(deets)+1)
	for _, d := range deets {
		opts = append(opts, serum.WithDetail(d[0], d[1]))
	}
	opts = append(opts, serum.WithMessageLiteral(message))
	return serum.Error(CodeInvalid, opts...)
}

// ErrorIo wraps generic I/O errors from the Go stdlib
//
// Errors:
//
//    - blessnet-error-io --
func ErrorIo(context string, path string, cause error) error {
	result := serum.Errorf(CodeIo, "io error: %s: %w", context, cause)
	addDetails(result, [][2]string{{"context", context}, {"path", path}})
	return result
}

// ErrorSerialization is returned when a serialization or deserialization error occurs
//
// Errors:
//
//    - blessnet-error-serialization --
func ErrorSerialization(context string, cause error) error {
	result := serum.Errorf(CodeSerialization, "serialization error: %s: %w", context, cause)
	addDetails(result, [][2]string{
		{"context", context},
	})
	return result
}

// ErrorFileAlreadyExists is used when a file already exists
//
// Errors:
//
//    - blessnet-error-already-exists --
func ErrorFileAlreadyExists(path string) error {
	return serum.Error(CodeAlreadyExists,
		serum.WithMessageTemplate("file already exists at path: {{path|q}}"),
		serum.WithDetail("path", path),
	)
}

// ErrorDescriptorMissing is used when a command needs a project descriptor and none is present.
//
// Errors:
//
//    - blessnet-error-descriptor-missing --
func ErrorDescriptorMissing(path string) error {
	return serum.Error(CodeDescriptorMissing,
		serum.WithMessageTemplate("no project descriptor at {{path|q}}; run `blessnet init` first"),
		serum.WithDetail("path", path),
	)
}

// ErrorRuntimeAcquisition is returned when downloading or installing the runtime fails.
//
// Errors:
//
//    - blessnet-error-runtime-acquisition --
func ErrorRuntimeAcquisition(url string, cause error) error {
	result := serum.Errorf(CodeRuntimeAcquisition, "runtime acquisition failed: %w", cause)
	addDetails(result, [][2]string{
		{"url", url},
	})
	return result
}

// ErrorRuntimeExecution is returned when the runtime, or a build command, exits with failure.
//
// Errors:
//
//    - blessnet-error-runtime-execution --
func ErrorRuntimeExecution(program string, cause error) error {
	result := serum.Errorf(CodeRuntimeExecution, "execution of %q failed: %w", program, cause)
	addDetails(result, [][2]string{
		{"program", program},
	})
	return result
}

// ErrorPublish is returned when an artifact cannot be published.
//
// Errors:
//
//    - blessnet-error-publish --
func ErrorPublish(context string, cause error) error {
	result := serum.Errorf(CodePublish, "publish failed: %s: %w", context, cause)
	addDetails(result, [][2]string{
		{"context", context},
	})
	return result
}

// ErrorGit is returned when a go-git error occurs
//
// Errors:
//
//    - blessnet-error-git --
func ErrorGit(context string, cause error) error {
	result := serum.Errorf(CodeGit, "git error: %s: %w", context, cause)
	addDetails(result, [][2]string{
		{"context", context},
	})
	return result
}

// ErrorNotLoggedIn is returned by commands that need a stored auth token.
//
// Errors:
//
//    - blessnet-error-not-logged-in --
func ErrorNotLoggedIn() error {
	return serum.Error(CodeNotLoggedIn,
		serum.WithMessageLiteral("you are not logged in; run `blessnet options account login`"),
	)
}

// addDetails gets around serum.Errorf not accepting details directly.
func addDetails(err error, details [][2]string) {
	s := err.(*serum.ErrorValue)
	s.Data.Details = append(s.Data.Details, details...)
}
