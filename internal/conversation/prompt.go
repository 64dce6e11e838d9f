// Package conversation implements multi-turn text exchange sessions between
// the host and a conversable entity, driven by a chain of prompt states.
// Factories describe a conversation template once and stamp out independent
// sessions per participant.
package conversation

// Prompt is one node in a conversation's state machine. Prompts produce the
// text shown to the participant and decide the next node.
type Prompt interface {
	// PromptText returns the text to display for this node.
	PromptText(ctx *Context) string
	// BlocksForInput reports whether the conversation waits for participant
	// input before advancing past this node.
	BlocksForInput(ctx *Context) bool
	// AcceptInput consumes the participant's input and returns the next
	// node. Non-blocking prompts receive an empty input. Returning End
	// terminates the conversation.
	AcceptInput(ctx *Context, input string) Prompt
}

// End is the terminal sentinel. Prompts return it (a nil Prompt) to end the
// conversation, and a factory with no first prompt configured produces
// sessions that end immediately.
var End Prompt
