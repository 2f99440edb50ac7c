// Package controller holds one state machine per view. Each controller moves
// through idle -> loading -> success | error, exposes a snapshot of its state
// and notifies subscribers after every transition; the presentation layer
// reads a fresh snapshot on each notification. Controllers are confined to
// the UI goroutine: network calls are the only suspension points and each
// controller runs at most one action at a time.
package controller

import "github.com/go-playground/validator/v10"

type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateError
)

// Navigator lets a controller request a navigation after a successful action,
// e.g. the create view moving to the new book's detail view.
type Navigator interface {
	Navigate(path string)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

type notifier struct {
	listeners []func()
}

func (n *notifier) Subscribe(fn func()) {
	n.listeners = append(n.listeners, fn)
}

func (n *notifier) notify() {
	for _, fn := range n.listeners {
		fn()
	}
}
