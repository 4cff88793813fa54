package client

type remoteState uint8

const (
	remoteLoading remoteState = iota
	remoteSucceeded
	remoteFailed
)

// Remote is the state of one server request: loading, succeeded with a
// payload, or failed with an error. It never holds a payload and an error
// at the same time. The zero value is loading.
type Remote[T any] struct {
	state remoteState
	data  T
	err   error
}

func Loading[T any]() Remote[T] {
	return Remote[T]{state: remoteLoading}
}

func Succeeded[T any](v T) Remote[T] {
	return Remote[T]{state: remoteSucceeded, data: v}
}

func Failed[T any](err error) Remote[T] {
	return Remote[T]{state: remoteFailed, err: err}
}

func (r Remote[T]) IsLoading() bool { return r.state == remoteLoading }

// Data returns the payload and true only after success.
func (r Remote[T]) Data() (T, bool) {
	if r.state != remoteSucceeded {
		var zero T
		return zero, false
	}
	return r.data, true
}

// Err is non-nil only after failure.
func (r Remote[T]) Err() error {
	if r.state != remoteFailed {
		return nil
	}
	return r.err
}
