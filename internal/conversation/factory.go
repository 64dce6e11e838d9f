package conversation

import "github.com/louisbranch/emberfall/internal/entity"

// Factory builds conversations from a predefined template. A factory is
// typically configured once when a plugin initializes and then stamps out an
// independent session each time a participant starts a conversation.
//
// Configuration uses chainable setters; none of them validate their input.
// Building never mutates the factory, so one configured factory may be
// reused across any number of participants.
type Factory struct {
	modal              bool
	prefix             Prefix
	timeoutSeconds     int
	firstPrompt        Prompt
	initialSessionData map[string]any
	playerOnlyMessage  string
}

// NewFactory creates a factory with default configuration: modal sessions,
// no prefix, a 600 second inactivity timeout, an immediately terminating
// first prompt, and empty session data.
func NewFactory() *Factory {
	return &Factory{
		modal:              true,
		prefix:             NullPrefix{},
		timeoutSeconds:     DefaultTimeoutSeconds,
		firstPrompt:        End,
		initialSessionData: map[string]any{},
	}
}

// WithModality sets the modality of all sessions created by this factory.
// Modal sessions require the host to suppress all non-conversation messages
// to the participant for the session's duration.
func (f *Factory) WithModality(modal bool) *Factory {
	f.modal = modal
	return f
}

// WithPrefix sets the formatter prepended to all output from generated
// sessions.
func (f *Factory) WithPrefix(prefix Prefix) *Factory {
	f.prefix = prefix
	return f
}

// WithTimeout sets the number of inactive seconds before the host abandons a
// generated session.
func (f *Factory) WithTimeout(seconds int) *Factory {
	f.timeoutSeconds = seconds
	return f
}

// WithFirstPrompt sets the entry node of the prompt chain for generated
// sessions.
func (f *Factory) WithFirstPrompt(firstPrompt Prompt) *Factory {
	f.firstPrompt = firstPrompt
	return f
}

// WithInitialSessionData sets the seed state copied into each generated
// session.
func (f *Factory) WithInitialSessionData(initialSessionData map[string]any) *Factory {
	f.initialSessionData = initialSessionData
	return f
}

// ThatExcludesNonPlayersWithMessage restricts generated sessions to players.
// Non-player participants receive a session that emits the given message and
// ends immediately.
func (f *Factory) ThatExcludesNonPlayersWithMessage(playerOnlyMessage string) *Factory {
	f.playerOnlyMessage = playerOnlyMessage
	return f
}

// BuildConversation constructs a session for the given participant in
// accordance with the factory's configuration.
func (f *Factory) BuildConversation(forWhom entity.Conversable) *Conversation {
	// Abort construction if we aren't supposed to talk to non-players.
	if f.playerOnlyMessage != "" {
		if _, isPlayer := forWhom.(entity.Player); !isPlayer {
			return NewConversation(forWhom, notPlayerPrompt{message: f.playerOnlyMessage}, nil)
		}
	}

	copied := make(map[string]any, len(f.initialSessionData))
	for key, value := range f.initialSessionData {
		copied[key] = value
	}

	conv := NewConversation(forWhom, f.firstPrompt, copied)
	conv.SetModal(f.modal)
	conv.SetPrefix(f.prefix)
	conv.SetTimeoutSeconds(f.timeoutSeconds)
	return conv
}

// notPlayerPrompt emits the factory's player-only message and ends the
// session in a single exchange.
type notPlayerPrompt struct {
	message string
}

func (p notPlayerPrompt) PromptText(ctx *Context) string { return p.message }

func (p notPlayerPrompt) BlocksForInput(ctx *Context) bool { return false }

func (p notPlayerPrompt) AcceptInput(ctx *Context, input string) Prompt { return End }
