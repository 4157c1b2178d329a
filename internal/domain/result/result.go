package result

// Result is a two-variant outcome value: either Ok with a payload, or Err
// with an error. Repository ports and the unit-of-work runner return Result
// instead of ad-hoc (value, error) pairs so that the commit/rollback
// decision is a pure function of an observable value.
type Result[T any] struct {
	value T
	err   error
}

// Void is the payload type for operations that succeed without producing a
// value, such as saves and removals.
type Void struct{}

// Ok creates a successful Result carrying value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// OkVoid creates a successful Result with no payload.
func OkVoid() Result[Void] {
	return Result[Void]{}
}

// Err creates a failed Result carrying err. It panics if err is nil, since
// a nil error would make the variant ambiguous.
func Err[T any](err error) Result[T] {
	if err == nil {
		panic("result: Err called with nil error")
	}
	return Result[T]{err: err}
}

// IsOk reports whether the Result is the success variant.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// IsErr reports whether the Result is the failure variant.
func (r Result[T]) IsErr() bool {
	return r.err != nil
}

// Value returns the payload of a successful Result. It panics on the
// failure variant; callers must check IsOk or use Get.
func (r Result[T]) Value() T {
	if r.err != nil {
		panic("result: Value called on Err result: " + r.err.Error())
	}
	return r.value
}

// Error returns the error of a failed Result, or nil for the success
// variant.
func (r Result[T]) Error() error {
	return r.err
}

// Get unpacks the Result into a conventional (value, error) pair for
// boundaries that interoperate with error-returning code.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// MapErr converts a failed Result of one payload type into another,
// carrying the error across. It panics on the success variant.
func MapErr[T, U any](r Result[T]) Result[U] {
	if r.err == nil {
		panic("result: MapErr called on Ok result")
	}
	return Err[U](r.err)
}
