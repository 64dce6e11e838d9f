package conversation

import "github.com/louisbranch/emberfall/internal/entity"

// DefaultTimeoutSeconds is the inactivity timeout applied to sessions whose
// factory does not configure one.
const DefaultTimeoutSeconds = 600

// State describes the lifecycle state of a conversation.
type State int

const (
	// StateUnstarted indicates Begin has not been called yet.
	StateUnstarted State = iota
	// StateStarted indicates the conversation is exchanging prompts.
	StateStarted
	// StateAbandoned indicates the conversation has ended.
	StateAbandoned
)

// AbandonedEvent describes how a conversation ended.
type AbandonedEvent struct {
	// Context is the session context at the time the conversation ended.
	Context *Context
	// GracefulExit is true when the prompt chain reached End, false when the
	// conversation was abandoned externally.
	GracefulExit bool
}

// AbandonedListener observes the end of a conversation. Listeners fire at
// most once per conversation.
type AbandonedListener func(evt AbandonedEvent)

// Conversation is a single multi-turn session between the host and one
// participant. Sessions are driven synchronously by the host: Begin outputs
// the opening prompts, and each line of participant input is handed to
// AcceptInput until the chain reaches End.
//
// The inactivity timeout is configuration carried for the host scheduler;
// the conversation itself performs no timing.
type Conversation struct {
	ctx            *Context
	firstPrompt    Prompt
	currentPrompt  Prompt
	modal          bool
	prefix         Prefix
	timeoutSeconds int
	state          State
	listeners      []AbandonedListener
}

// NewConversation creates an unstarted session for the given participant.
// The session owns initialSessionData from this point on; callers wanting
// isolation must pass a copy.
func NewConversation(forWhom entity.Conversable, firstPrompt Prompt, initialSessionData map[string]any) *Conversation {
	return &Conversation{
		ctx:            NewContext(forWhom, initialSessionData),
		firstPrompt:    firstPrompt,
		modal:          true,
		prefix:         NullPrefix{},
		timeoutSeconds: DefaultTimeoutSeconds,
	}
}

// ForWhom returns the participant the conversation is mediating for.
func (c *Conversation) ForWhom() entity.Conversable {
	return c.ctx.ForWhom()
}

// Context returns the session context.
func (c *Conversation) Context() *Context {
	return c.ctx
}

// State returns the lifecycle state of the conversation.
func (c *Conversation) State() State {
	return c.state
}

// Modal reports whether the host must suppress non-conversation messages to
// the participant while the session is active.
func (c *Conversation) Modal() bool {
	return c.modal
}

// SetModal sets the modality of the conversation.
func (c *Conversation) SetModal(modal bool) {
	c.modal = modal
}

// Prefix returns the formatter applied to every output line.
func (c *Conversation) Prefix() Prefix {
	return c.prefix
}

// SetPrefix sets the formatter applied to every output line. A nil prefix
// resets to NullPrefix.
func (c *Conversation) SetPrefix(prefix Prefix) {
	if prefix == nil {
		prefix = NullPrefix{}
	}
	c.prefix = prefix
}

// TimeoutSeconds returns the inactivity timeout handed to the host scheduler.
func (c *Conversation) TimeoutSeconds() int {
	return c.timeoutSeconds
}

// SetTimeoutSeconds sets the inactivity timeout handed to the host scheduler.
func (c *Conversation) SetTimeoutSeconds(seconds int) {
	c.timeoutSeconds = seconds
}

// FirstPrompt returns the entry node of the prompt chain.
func (c *Conversation) FirstPrompt() Prompt {
	return c.firstPrompt
}

// CurrentPrompt returns the node the conversation is waiting on, or End when
// the conversation is not waiting for input.
func (c *Conversation) CurrentPrompt() Prompt {
	return c.currentPrompt
}

// AddAbandonedListener registers a listener fired once when the conversation
// ends, whether gracefully or by abandonment.
func (c *Conversation) AddAbandonedListener(listener AbandonedListener) {
	if listener == nil {
		return
	}
	c.listeners = append(c.listeners, listener)
}

// Begin starts the conversation, emitting the opening prompts. Calling Begin
// on a started or abandoned conversation is a no-op.
func (c *Conversation) Begin() {
	if c.state != StateUnstarted {
		return
	}
	c.state = StateStarted
	c.currentPrompt = c.firstPrompt
	c.outputNextPrompt()
}

// AcceptInput hands one line of participant input to the current prompt and
// advances the chain. Input before Begin or after the conversation ends is
// ignored.
func (c *Conversation) AcceptInput(input string) {
	if c.state != StateStarted || c.currentPrompt == nil {
		return
	}
	if !c.currentPrompt.BlocksForInput(c.ctx) {
		return
	}
	c.currentPrompt = c.currentPrompt.AcceptInput(c.ctx, input)
	c.outputNextPrompt()
}

// Abandon ends the conversation without completing the prompt chain.
// Abandoning an already ended conversation is a no-op.
func (c *Conversation) Abandon() {
	c.end(AbandonedEvent{Context: c.ctx, GracefulExit: false})
}

// outputNextPrompt emits prompt text and walks past non-blocking nodes until
// the chain either waits for input or reaches End.
func (c *Conversation) outputNextPrompt() {
	for {
		if c.currentPrompt == nil {
			c.end(AbandonedEvent{Context: c.ctx, GracefulExit: true})
			return
		}
		if text := c.currentPrompt.PromptText(c.ctx); text != "" {
			c.ctx.ForWhom().SendRawMessage(c.prefix.Prefix(c.ctx) + text)
		}
		if c.currentPrompt.BlocksForInput(c.ctx) {
			return
		}
		c.currentPrompt = c.currentPrompt.AcceptInput(c.ctx, "")
	}
}

func (c *Conversation) end(evt AbandonedEvent) {
	if c.state == StateAbandoned {
		return
	}
	c.state = StateAbandoned
	c.currentPrompt = nil
	for _, listener := range c.listeners {
		listener(evt)
	}
}
