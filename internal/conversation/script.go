package conversation

import (
	"github.com/Shopify/go-lua"

	"github.com/louisbranch/emberfall/internal/platform/errors"
)

// RepeatKey is the reserved next-state key a script returns to re-issue the
// same prompt.
const RepeatKey = "repeat"

// ScriptPrompt is a conversation node driven by a plugin-supplied Lua chunk.
// The chunk defines globals consulted during the exchange:
//
//	text(data) -> string           prompt text for the current session data
//	accept(data, input) -> string  next-state key, or nil to end
//	blocks = false                 optional; skip waiting for input
//
// Session data is exposed to the chunk as a table of string keys holding
// string, boolean, and numeric values; other value types are omitted. The
// next-state key returned by accept is resolved against the prompt's
// registered transitions, with RepeatKey re-issuing the prompt itself.
// Unknown keys end the conversation.
//
// Script prompts hold a dedicated interpreter state and follow the same
// single-threaded dispatch discipline as the rest of the conversation.
type ScriptPrompt struct {
	state  *lua.State
	blocks bool
	next   map[string]Prompt
}

// NewScriptPrompt compiles source and binds the given next-state transitions.
// A nil transition map leaves only RepeatKey and termination available.
func NewScriptPrompt(source string, next map[string]Prompt) (*ScriptPrompt, error) {
	state := lua.NewState()
	lua.OpenLibraries(state)

	if err := lua.DoString(state, source); err != nil {
		return nil, errors.Wrap(errors.CodeScriptInvalid, "load prompt script", err)
	}

	state.Global("text")
	if state.TypeOf(-1) != lua.TypeFunction {
		state.Pop(1)
		return nil, errors.New(errors.CodeScriptMissingText, "prompt script must define a text function")
	}
	state.Pop(1)

	blocks := true
	state.Global("blocks")
	if state.TypeOf(-1) == lua.TypeBoolean {
		blocks = state.ToBoolean(-1)
	}
	state.Pop(1)

	if next == nil {
		next = map[string]Prompt{}
	}
	return &ScriptPrompt{state: state, blocks: blocks, next: next}, nil
}

// Bind registers a next-state transition after construction, allowing prompt
// graphs with cycles.
func (p *ScriptPrompt) Bind(key string, prompt Prompt) {
	p.next[key] = prompt
}

// PromptText runs the script's text function against the session data.
// Script failures produce no text rather than aborting the conversation.
func (p *ScriptPrompt) PromptText(ctx *Context) string {
	p.state.Global("text")
	pushSessionTable(p.state, ctx)
	if err := p.state.ProtectedCall(1, 1, 0); err != nil {
		return ""
	}
	text, _ := p.state.ToString(-1)
	p.state.Pop(1)
	return text
}

// BlocksForInput reports whether the script waits for participant input.
func (p *ScriptPrompt) BlocksForInput(ctx *Context) bool {
	return p.blocks
}

// AcceptInput runs the script's accept function and resolves the returned
// key to the next node. Script failures end the conversation.
func (p *ScriptPrompt) AcceptInput(ctx *Context, input string) Prompt {
	p.state.Global("accept")
	if p.state.TypeOf(-1) != lua.TypeFunction {
		p.state.Pop(1)
		return End
	}
	pushSessionTable(p.state, ctx)
	p.state.PushString(input)
	if err := p.state.ProtectedCall(2, 1, 0); err != nil {
		return End
	}
	if p.state.TypeOf(-1) == lua.TypeNil {
		p.state.Pop(1)
		return End
	}
	key, ok := p.state.ToString(-1)
	p.state.Pop(1)
	if !ok {
		return End
	}
	if key == RepeatKey {
		return p
	}
	if prompt, bound := p.next[key]; bound {
		return prompt
	}
	return End
}

// pushSessionTable exposes scalar session data to a script as a Lua table.
func pushSessionTable(state *lua.State, ctx *Context) {
	state.NewTable()
	for key, value := range ctx.AllSessionData() {
		switch v := value.(type) {
		case string:
			state.PushString(v)
		case bool:
			state.PushBoolean(v)
		case int:
			state.PushInteger(v)
		case float64:
			state.PushNumber(v)
		default:
			continue
		}
		state.SetField(-2, key)
	}
}
