// Package event defines the domain events the host dispatch bus delivers to
// plugin handlers, and the surfaces handlers use to influence the outcome.
//
// The bus itself lives in the host server process. Plugins receive event
// instances during synchronous dispatch and, for cancellable events, may veto
// the outcome before the host applies it.
package event

import "context"

// Name identifies the type of a dispatched event.
type Name string

// Entity events.
const (
	// NameCreeperPower records a change in a creeper's powered state.
	NameCreeperPower Name = "entity.creeper_power"
)

// Event is a single occurrence delivered by the host dispatch bus.
type Event interface {
	// EventName identifies the kind of event.
	EventName() Name
}

// Cancellable is implemented by events whose outcome handlers may veto.
// The host inspects the flag after dispatch completes and skips applying
// the change when it is set.
type Cancellable interface {
	// Cancelled reports whether a handler vetoed the event.
	Cancelled() bool
	// SetCancelled marks or clears the veto.
	SetCancelled(cancelled bool)
}

// Dispatcher delivers events to registered handlers. Implementations are
// provided by the host; handler ordering is owned by the host, not by this
// package.
type Dispatcher interface {
	Dispatch(ctx context.Context, evt Event) error
}
