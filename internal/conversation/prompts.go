package conversation

import (
	"regexp"
	"strconv"
	"strings"
)

// MessagePrompt displays a fixed message and advances to the next node
// without waiting for input.
type MessagePrompt struct {
	Message string
	Next    Prompt
}

func (p MessagePrompt) PromptText(ctx *Context) string { return p.Message }

func (p MessagePrompt) BlocksForInput(ctx *Context) bool { return false }

func (p MessagePrompt) AcceptInput(ctx *Context, input string) Prompt { return p.Next }

// ValidatingPrompt re-issues itself until the participant's input passes
// validation. When input is rejected, FailedMessage (if set) is sent to the
// participant before the prompt repeats.
type ValidatingPrompt struct {
	Message       string
	FailedMessage string
	Validate      func(ctx *Context, input string) bool
	Accept        func(ctx *Context, input string) Prompt
}

func (p ValidatingPrompt) PromptText(ctx *Context) string { return p.Message }

func (p ValidatingPrompt) BlocksForInput(ctx *Context) bool { return true }

func (p ValidatingPrompt) AcceptInput(ctx *Context, input string) Prompt {
	if p.Validate != nil && !p.Validate(ctx, input) {
		if p.FailedMessage != "" {
			ctx.ForWhom().SendRawMessage(p.FailedMessage)
		}
		return p
	}
	if p.Accept == nil {
		return End
	}
	return p.Accept(ctx, input)
}

// BooleanPrompt accepts yes/no style input and forwards the parsed value.
// Unrecognized input repeats the prompt.
type BooleanPrompt struct {
	Message       string
	FailedMessage string
	Accept        func(ctx *Context, value bool) Prompt
}

func (p BooleanPrompt) PromptText(ctx *Context) string { return p.Message }

func (p BooleanPrompt) BlocksForInput(ctx *Context) bool { return true }

func (p BooleanPrompt) AcceptInput(ctx *Context, input string) Prompt {
	value, ok := parseBool(input)
	if !ok {
		if p.FailedMessage != "" {
			ctx.ForWhom().SendRawMessage(p.FailedMessage)
		}
		return p
	}
	if p.Accept == nil {
		return End
	}
	return p.Accept(ctx, value)
}

func parseBool(input string) (value bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "true", "yes", "y", "on", "1":
		return true, true
	case "false", "no", "n", "off", "0":
		return false, true
	}
	return false, false
}

// FixedSetPrompt accepts one choice from a fixed set of options. Matching is
// case-insensitive; the accepted choice is forwarded in its canonical form.
type FixedSetPrompt struct {
	Message       string
	Options       []string
	FailedMessage string
	Accept        func(ctx *Context, choice string) Prompt
}

func (p FixedSetPrompt) PromptText(ctx *Context) string { return p.Message }

func (p FixedSetPrompt) BlocksForInput(ctx *Context) bool { return true }

func (p FixedSetPrompt) AcceptInput(ctx *Context, input string) Prompt {
	trimmed := strings.TrimSpace(input)
	for _, option := range p.Options {
		if strings.EqualFold(option, trimmed) {
			if p.Accept == nil {
				return End
			}
			return p.Accept(ctx, option)
		}
	}
	if p.FailedMessage != "" {
		ctx.ForWhom().SendRawMessage(p.FailedMessage)
	}
	return p
}

// FormattedOptions renders the option set as "[a, b, c]" for inclusion in
// prompt text.
func (p FixedSetPrompt) FormattedOptions() string {
	return "[" + strings.Join(p.Options, ", ") + "]"
}

// NumericPrompt accepts numeric input and forwards the parsed value.
// Non-numeric input repeats the prompt.
type NumericPrompt struct {
	Message       string
	FailedMessage string
	Accept        func(ctx *Context, number float64) Prompt
}

func (p NumericPrompt) PromptText(ctx *Context) string { return p.Message }

func (p NumericPrompt) BlocksForInput(ctx *Context) bool { return true }

func (p NumericPrompt) AcceptInput(ctx *Context, input string) Prompt {
	number, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		if p.FailedMessage != "" {
			ctx.ForWhom().SendRawMessage(p.FailedMessage)
		}
		return p
	}
	if p.Accept == nil {
		return End
	}
	return p.Accept(ctx, number)
}

// RegexPrompt accepts input matching a compiled pattern.
type RegexPrompt struct {
	Message       string
	Pattern       *regexp.Regexp
	FailedMessage string
	Accept        func(ctx *Context, input string) Prompt
}

func (p RegexPrompt) PromptText(ctx *Context) string { return p.Message }

func (p RegexPrompt) BlocksForInput(ctx *Context) bool { return true }

func (p RegexPrompt) AcceptInput(ctx *Context, input string) Prompt {
	if p.Pattern == nil || !p.Pattern.MatchString(input) {
		if p.FailedMessage != "" {
			ctx.ForWhom().SendRawMessage(p.FailedMessage)
		}
		return p
	}
	if p.Accept == nil {
		return End
	}
	return p.Accept(ctx, input)
}
