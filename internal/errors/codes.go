package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeDataIntegrity      Code = "DATA_INTEGRITY"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// ExitStatus returns the process exit status a command line front end should
// use for the code. Values follow the BSD sysexits conventions.
func (c Code) ExitStatus() int {
	switch c {
	case CodeOK:
		return 0
	case CodeInvalidArgument:
		return 64 // EX_USAGE
	case CodeNotFound:
		return 66 // EX_NOINPUT
	case CodeFailedPrecondition:
		return 65 // EX_DATAERR
	case CodeDataIntegrity:
		return 65 // EX_DATAERR
	case CodeUnavailable:
		return 69 // EX_UNAVAILABLE
	default:
		return 70 // EX_SOFTWARE
	}
}
