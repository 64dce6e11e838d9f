package conversation

import "github.com/louisbranch/emberfall/internal/entity"

// Context carries the participant and per-session state shared by every
// prompt in a conversation. Session data is owned by the conversation and
// survives across prompt transitions.
type Context struct {
	forWhom     entity.Conversable
	sessionData map[string]any
}

// NewContext creates a context for the given participant. A nil data map is
// replaced with an empty one.
func NewContext(forWhom entity.Conversable, sessionData map[string]any) *Context {
	if sessionData == nil {
		sessionData = map[string]any{}
	}
	return &Context{forWhom: forWhom, sessionData: sessionData}
}

// ForWhom returns the participant the conversation is mediating for.
func (c *Context) ForWhom() entity.Conversable {
	return c.forWhom
}

// SessionData returns the value stored under key and whether it is present.
func (c *Context) SessionData(key string) (any, bool) {
	value, ok := c.sessionData[key]
	return value, ok
}

// SetSessionData stores a value under key for the rest of the session.
func (c *Context) SetSessionData(key string, value any) {
	c.sessionData[key] = value
}

// AllSessionData returns a copy of the session data map.
func (c *Context) AllSessionData() map[string]any {
	copied := make(map[string]any, len(c.sessionData))
	for key, value := range c.sessionData {
		copied[key] = value
	}
	return copied
}
