// Package online abstracts the "is the device online" signal consulted by
// error classification and the offline-first fetch path.
package online

import "sync/atomic"

// Checker reports current connectivity. Implementations must be cheap;
// callers read it synchronously on hot paths.
type Checker interface {
	Online() bool
}

// Always reports the device as online. The default when no checker is wired.
type Always struct{}

func (Always) Online() bool { return true }

// Func adapts a plain function to a Checker.
type Func func() bool

func (f Func) Online() bool { return f() }

// Flag is a Checker backed by an atomic bool, for hosts that receive
// connectivity change events. The zero value reports offline.
type Flag struct {
	up atomic.Bool
}

func (f *Flag) Online() bool   { return f.up.Load() }
func (f *Flag) Set(online bool) { f.up.Store(online) }
