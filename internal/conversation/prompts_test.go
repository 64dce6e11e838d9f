package conversation

import (
	"regexp"
	"testing"
)

func newTestContext() (*Context, *fakeConversable) {
	target := &fakeConversable{id: "console"}
	return NewContext(target, nil), target
}

func TestValidatingPromptRepeatsOnInvalidInput(t *testing.T) {
	ctx, target := newTestContext()
	prompt := ValidatingPrompt{
		Message:       "Name?",
		FailedMessage: "Names cannot be empty.",
		Validate:      func(ctx *Context, input string) bool { return input != "" },
		Accept: func(ctx *Context, input string) Prompt {
			ctx.SetSessionData("name", input)
			return End
		},
	}

	next := prompt.AcceptInput(ctx, "")
	if _, ok := next.(ValidatingPrompt); !ok {
		t.Fatalf("expected invalid input to repeat the prompt, got %T", next)
	}
	if len(target.messages) != 1 || target.messages[0] != "Names cannot be empty." {
		t.Fatalf("expected failure message, got %v", target.messages)
	}

	next = prompt.AcceptInput(ctx, "Ember")
	if next != End {
		t.Fatal("expected valid input to advance")
	}
	if value, _ := ctx.SessionData("name"); value != "Ember" {
		t.Fatalf("expected accepted input recorded, got %v", value)
	}
}

func TestBooleanPromptParsing(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"yes", true},
		{"Y", true},
		{"TRUE", true},
		{"on", true},
		{"1", true},
		{"no", false},
		{"n", false},
		{"false", false},
		{"off", false},
		{"0", false},
	}
	for _, tc := range tests {
		ctx, _ := newTestContext()
		var got bool
		prompt := BooleanPrompt{
			Message: "Proceed?",
			Accept: func(ctx *Context, value bool) Prompt {
				got = value
				return End
			},
		}
		if next := prompt.AcceptInput(ctx, tc.input); next != End {
			t.Fatalf("input %q: expected prompt to advance", tc.input)
		}
		if got != tc.want {
			t.Fatalf("input %q: expected %v, got %v", tc.input, tc.want, got)
		}
	}
}

func TestBooleanPromptRejectsUnrecognizedInput(t *testing.T) {
	ctx, target := newTestContext()
	prompt := BooleanPrompt{Message: "Proceed?", FailedMessage: "Answer yes or no."}

	next := prompt.AcceptInput(ctx, "maybe")
	if _, ok := next.(BooleanPrompt); !ok {
		t.Fatalf("expected unrecognized input to repeat the prompt, got %T", next)
	}
	if len(target.messages) != 1 || target.messages[0] != "Answer yes or no." {
		t.Fatalf("expected failure message, got %v", target.messages)
	}
}

func TestFixedSetPromptMatchesCaseInsensitively(t *testing.T) {
	ctx, _ := newTestContext()
	var got string
	prompt := FixedSetPrompt{
		Message: "Pick a color",
		Options: []string{"red", "green", "blue"},
		Accept: func(ctx *Context, choice string) Prompt {
			got = choice
			return End
		},
	}

	if next := prompt.AcceptInput(ctx, "  GREEN "); next != End {
		t.Fatal("expected matching choice to advance")
	}
	if got != "green" {
		t.Fatalf("expected canonical option, got %q", got)
	}
}

func TestFixedSetPromptRejectsUnknownChoice(t *testing.T) {
	ctx, target := newTestContext()
	prompt := FixedSetPrompt{
		Message:       "Pick a color",
		Options:       []string{"red", "green"},
		FailedMessage: "Pick one of the listed colors.",
	}

	next := prompt.AcceptInput(ctx, "purple")
	if _, ok := next.(FixedSetPrompt); !ok {
		t.Fatalf("expected prompt to repeat, got %T", next)
	}
	if len(target.messages) != 1 {
		t.Fatalf("expected failure message, got %v", target.messages)
	}
}

func TestFixedSetPromptFormattedOptions(t *testing.T) {
	prompt := FixedSetPrompt{Options: []string{"red", "green", "blue"}}
	if got := prompt.FormattedOptions(); got != "[red, green, blue]" {
		t.Fatalf("expected formatted options, got %q", got)
	}
}

func TestNumericPromptParsesNumbers(t *testing.T) {
	ctx, _ := newTestContext()
	var got float64
	prompt := NumericPrompt{
		Message: "How many?",
		Accept: func(ctx *Context, number float64) Prompt {
			got = number
			return End
		},
	}

	if next := prompt.AcceptInput(ctx, " 12.5 "); next != End {
		t.Fatal("expected numeric input to advance")
	}
	if got != 12.5 {
		t.Fatalf("expected 12.5, got %v", got)
	}
}

func TestNumericPromptRejectsNonNumbers(t *testing.T) {
	ctx, target := newTestContext()
	prompt := NumericPrompt{Message: "How many?", FailedMessage: "Enter a number."}

	next := prompt.AcceptInput(ctx, "several")
	if _, ok := next.(NumericPrompt); !ok {
		t.Fatalf("expected prompt to repeat, got %T", next)
	}
	if len(target.messages) != 1 {
		t.Fatalf("expected failure message, got %v", target.messages)
	}
}

func TestRegexPromptMatchesPattern(t *testing.T) {
	ctx, target := newTestContext()
	var got string
	prompt := RegexPrompt{
		Message:       "Choose a tag",
		Pattern:       regexp.MustCompile(`^[a-z]{3,8}$`),
		FailedMessage: "Lowercase letters only.",
		Accept: func(ctx *Context, input string) Prompt {
			got = input
			return End
		},
	}

	if next := prompt.AcceptInput(ctx, "NOPE"); len(target.messages) != 1 {
		t.Fatalf("expected failure message, got %v", target.messages)
	} else if _, ok := next.(RegexPrompt); !ok {
		t.Fatalf("expected prompt to repeat, got %T", next)
	}

	if next := prompt.AcceptInput(ctx, "ember"); next != End {
		t.Fatal("expected matching input to advance")
	}
	if got != "ember" {
		t.Fatalf("expected accepted input, got %q", got)
	}
}

func TestMessagePromptDoesNotBlock(t *testing.T) {
	ctx, _ := newTestContext()
	prompt := MessagePrompt{Message: "notice", Next: End}
	if prompt.BlocksForInput(ctx) {
		t.Fatal("expected message prompt to not block")
	}
	if next := prompt.AcceptInput(ctx, ""); next != End {
		t.Fatalf("expected configured next prompt, got %v", next)
	}
}
