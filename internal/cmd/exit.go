// Package cmd provides command implementations for the cargo-sync CLI.
package cmd

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitInvalidInput indicates a malformed identifier or invalid version.
	ExitInvalidInput = 2

	// ExitLoadError indicates the install record or manifest could not be loaded.
	ExitLoadError = 3

	// ExitApplyError indicates one or more cargo invocations failed.
	ExitApplyError = 4

	// ExitDrift indicates diff found packages out of sync.
	ExitDrift = 5
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitInvalidInput:
		return "Invalid Input"
	case ExitLoadError:
		return "Load Error"
	case ExitApplyError:
		return "Apply Error"
	case ExitDrift:
		return "Drift Detected"
	default:
		return "Unknown"
	}
}
