// Package bg decides whether background work runs on its own goroutine.
//
// The store hands every snapshot save to a Runner. Production uses Async so
// mutations never wait on disk; tests use Sync so a save has finished by the
// time the mutating call returns.
package bg

type Runner interface {
	Do(fn func())
}

// Async runs each function in a new goroutine.
type Async struct{}

func (Async) Do(fn func()) {
	go fn()
}

// Sync runs each function on the calling goroutine.
type Sync struct{}

func (Sync) Do(fn func()) {
	fn()
}
