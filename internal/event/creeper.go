package event

import "github.com/louisbranch/emberfall/internal/entity"

// PowerCause identifies what triggered a change in a creeper's powered state.
type PowerCause int

const (
	// PowerCauseUnspecified represents an invalid power cause value.
	PowerCauseUnspecified PowerCause = iota
	// PowerCauseLightning indicates the change was caused by a lightning
	// strike. Powered state: true.
	PowerCauseLightning
	// PowerCauseSetOn indicates the change was requested by a plugin.
	// Powered state: true.
	PowerCauseSetOn
	// PowerCauseSetOff indicates the change was requested by a plugin.
	// Powered state: false.
	PowerCauseSetOff
)

// String returns the lowercase name of the cause.
func (c PowerCause) String() string {
	switch c {
	case PowerCauseLightning:
		return "lightning"
	case PowerCauseSetOn:
		return "set_on"
	case PowerCauseSetOff:
		return "set_off"
	default:
		return "unspecified"
	}
}

// CreeperPowerEvent is dispatched when a creeper's powered state is about to
// change. Cancelling the event keeps the creeper in its current state.
type CreeperPowerEvent struct {
	creeper   entity.Entity
	lightning entity.Entity
	cause     PowerCause
	cancelled bool
}

// NewCreeperPowerEvent constructs a power event with no associated lightning
// bolt, for changes requested outside of a strike.
func NewCreeperPowerEvent(creeper entity.Entity, cause PowerCause) *CreeperPowerEvent {
	return &CreeperPowerEvent{creeper: creeper, cause: cause}
}

// NewCreeperPowerEventWithLightning constructs a power event carrying the
// bolt that struck the creeper. The bolt is only meaningful when cause is
// PowerCauseLightning; the pairing is a convention, not an enforced check.
func NewCreeperPowerEventWithLightning(creeper, bolt entity.Entity, cause PowerCause) *CreeperPowerEvent {
	evt := NewCreeperPowerEvent(creeper, cause)
	evt.lightning = bolt
	return evt
}

// EventName identifies the kind of event.
func (e *CreeperPowerEvent) EventName() Name {
	return NameCreeperPower
}

// Entity returns the creeper whose powered state is changing.
func (e *CreeperPowerEvent) Entity() entity.Entity {
	return e.creeper
}

// Lightning returns the bolt striking the creeper, or nil when the change
// was not caused by a strike.
func (e *CreeperPowerEvent) Lightning() entity.Entity {
	return e.lightning
}

// Cause returns what triggered the change in powered state.
func (e *CreeperPowerEvent) Cause() PowerCause {
	return e.cause
}

// Cancelled reports whether a handler vetoed the event.
func (e *CreeperPowerEvent) Cancelled() bool {
	return e.cancelled
}

// SetCancelled marks or clears the veto.
func (e *CreeperPowerEvent) SetCancelled(cancelled bool) {
	e.cancelled = cancelled
}
