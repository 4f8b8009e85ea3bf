// Package dberrors defines the engine's status-code vocabulary and the
// Status value every catalog/executor/persist operation returns instead
// of panicking on an expected domain outcome.
package dberrors

import "fmt"

// StatusCode mirrors the original engine's wire-level status codes.
type StatusCode int

const (
	OkDone StatusCode = iota
	OkWaitForResponse
	UnknownCommand
	IncorrectFormat
	ObjectDoesNotExist
	ObjectAlreadyExists
	TableAtCapacity
	QueryUnsupported
	FileNotFound
	Error
)

func (c StatusCode) String() string {
	switch c {
	case OkDone:
		return "OK_DONE"
	case OkWaitForResponse:
		return "OK_WAIT_FOR_RESPONSE"
	case UnknownCommand:
		return "UNKNOWN_COMMAND"
	case IncorrectFormat:
		return "INCORRECT_FORMAT"
	case ObjectDoesNotExist:
		return "OBJECT_DOES_NOT_EXIST"
	case ObjectAlreadyExists:
		return "OBJECT_ALREADY_EXISTS"
	case TableAtCapacity:
		return "TABLE_AT_CAPACITY"
	case QueryUnsupported:
		return "QUERY_UNSUPPORTED"
	case FileNotFound:
		return "FILE_NOT_FOUND"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN_STATUS"
	}
}

// Status carries a StatusCode plus an optional human-readable detail.
// It is the value domain operations return for expected outcomes; a Go
// error is reserved for unexpected conditions (I/O failure, corrupt
// dump file).
type Status struct {
	Code    StatusCode
	Message string
}

// Ok reports whether the status represents successful completion.
func (s Status) Ok() bool {
	return s.Code == OkDone || s.Code == OkWaitForResponse
}

func (s Status) Error() string {
	if s.Message == "" {
		return s.Code.String()
	}
	return s.Code.String() + ": " + s.Message
}

// Done builds a successful, immediate-completion Status.
func Done() Status { return Status{Code: OkDone} }

// WaitForResponse builds a successful status for operations whose
// result is delivered asynchronously over the wire (selects/joins that
// produce a Result handle).
func WaitForResponse() Status { return Status{Code: OkWaitForResponse} }

// Fail builds a Status carrying the given code and formatted message.
func Fail(code StatusCode, format string, args ...any) Status {
	return Status{Code: code, Message: fmt.Sprintf(format, args...)}
}
