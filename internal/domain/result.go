package domain

type Status string

func (s Status) String() string {
	return string(s)
}

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
	StatusLoading Status = "loading"
)

// Result is the outcome of a single repository request. Exactly one status is
// set; use the constructors below to build one.
type Result[T any] struct {
	status  Status
	value   T
	message string
}

func Success[T any](value T) Result[T] {
	return Result[T]{status: StatusSuccess, value: value}
}

func Error[T any](message string) Result[T] {
	return Result[T]{status: StatusError, message: message}
}

// Loading marks a request in flight. It is never a final outcome.
func Loading[T any]() Result[T] {
	return Result[T]{status: StatusLoading}
}

func (r Result[T]) Status() Status {
	return r.status
}

func (r Result[T]) IsSuccess() bool {
	return r.status == StatusSuccess
}

func (r Result[T]) IsError() bool {
	return r.status == StatusError
}

func (r Result[T]) IsLoading() bool {
	return r.status == StatusLoading
}

// Value returns the payload; it is the zero value unless the result is a success.
func (r Result[T]) Value() T {
	return r.value
}

// Message returns the error message; it is empty unless the result is an error.
func (r Result[T]) Message() string {
	return r.message
}
