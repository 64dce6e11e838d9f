// Package entity defines the references plugins hold to entities in the
// world simulation. The simulation itself runs in the host server process;
// plugins only observe and address entities through these surfaces.
package entity

// Entity is any simulated object addressable by plugins.
type Entity interface {
	// EntityID returns the stable identifier of the entity.
	EntityID() string
	// Name returns the display name of the entity.
	Name() string
}

// Conversable is any entity capable of engaging in a conversation.
type Conversable interface {
	Entity
	// SendRawMessage delivers a message to the entity without applying
	// conversation prefix or modality rules.
	SendRawMessage(message string)
}

// Player is a human-controlled participant. Conversations restricted to
// players test their target against this interface.
type Player interface {
	Conversable
	// Locale returns the player's preferred locale as a BCP 47 tag.
	Locale() string
}
