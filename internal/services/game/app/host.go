// Package app runs the interactive conversation host: it wires a
// conversation factory, the event dispatch journal, and telemetry around a
// console-backed player.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/louisbranch/emberfall/internal/conversation"
	"github.com/louisbranch/emberfall/internal/entity"
	"github.com/louisbranch/emberfall/internal/event"
	"github.com/louisbranch/emberfall/internal/platform/i18n/catalog"
	"github.com/louisbranch/emberfall/internal/platform/id"
	"github.com/louisbranch/emberfall/internal/services/game/storage"
	"github.com/louisbranch/emberfall/internal/services/game/storage/sqlite"
	"github.com/louisbranch/emberfall/internal/telemetry"
)

// Config holds the host configuration.
type Config struct {
	// DBPath is the SQLite database path. Empty disables persistence.
	DBPath string
	// Locale is the player's preferred locale.
	Locale string
	// PlayerName labels the console participant.
	PlayerName string
	// TimeoutSeconds is the inactivity timeout handed to generated sessions.
	TimeoutSeconds int
	// ScriptPath optionally replaces the naming prompt with a Lua script.
	ScriptPath string

	// Input and Output default to the process console.
	Input  io.Reader
	Output io.Writer
}

// Run drives one conversation for a console player until the session ends or
// ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Input == nil {
		cfg.Input = os.Stdin
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.PlayerName == "" {
		cfg.PlayerName = "player"
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = conversation.DefaultTimeoutSeconds
	}

	bundle, err := messages()
	if err != nil {
		return fmt.Errorf("build message catalog: %w", err)
	}
	if err := bundle.Register(); err != nil {
		return fmt.Errorf("register message catalog: %w", err)
	}

	var store *sqlite.Store
	var journal storage.DispatchJournal
	var transcripts storage.TranscriptStore
	var telemetryStore storage.TelemetryStore
	if cfg.DBPath != "" {
		store, err = sqlite.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open game store: %w", err)
		}
		defer func() { _ = store.Close() }()
		journal = store
		transcripts = store
		telemetryStore = store
	}
	emitter := telemetry.NewEmitter(telemetryStore)

	conversationID, err := id.NewID()
	if err != nil {
		return fmt.Errorf("generate conversation id: %w", err)
	}

	player := &consolePlayer{
		id:             "player-console",
		name:           cfg.PlayerName,
		locale:         cfg.Locale,
		out:            cfg.Output,
		conversationID: conversationID,
		transcripts:    transcripts,
	}
	creeper := &creeperEntity{id: "creeper-den-1", name: "Creeper"}

	dispatcher := newJournalDispatcher(journal, func(ctx context.Context, evt event.Event) {
		log.Printf("dispatch %s", evt.EventName())
	})

	first, err := firstPrompt(ctx, cfg, bundle, creeper, dispatcher)
	if err != nil {
		return err
	}

	factory := conversation.NewFactory().
		WithModality(true).
		WithPrefix(conversation.PluginNamePrefix{PluginName: "emberfall"}).
		WithTimeout(cfg.TimeoutSeconds).
		WithFirstPrompt(first).
		WithInitialSessionData(map[string]any{"player": cfg.PlayerName}).
		ThatExcludesNonPlayersWithMessage(bundle.Resolve(cfg.Locale, "conversation.player_only"))

	conv := factory.BuildConversation(player)
	conv.AddAbandonedListener(func(evt conversation.AbandonedEvent) {
		detail := conversationID
		if !evt.GracefulExit {
			detail += " abandoned"
		}
		if err := emitter.EmitInfo(context.Background(), "conversation.ended", detail); err != nil {
			log.Printf("emit conversation end: %v", err)
		}
	})

	if err := emitter.EmitInfo(ctx, "conversation.started", conversationID); err != nil {
		log.Printf("emit conversation start: %v", err)
	}

	conv.Begin()
	scanner := bufio.NewScanner(cfg.Input)
	for conv.State() == conversation.StateStarted {
		if ctx.Err() != nil {
			conv.Abandon()
			break
		}
		if !scanner.Scan() {
			conv.Abandon()
			break
		}
		line := scanner.Text()
		player.recordInput(line)
		conv.AcceptInput(line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return ctx.Err()
}

// firstPrompt builds the opening prompt chain: a welcome notice, the naming
// exchange (scripted when configured), and the charge decision that
// dispatches the power event.
func firstPrompt(ctx context.Context, cfg Config, bundle *catalog.Bundle, creeper entity.Entity, dispatcher event.Dispatcher) (conversation.Prompt, error) {
	resolve := func(key string) string { return bundle.Resolve(cfg.Locale, key) }

	power := conversation.BooleanPrompt{
		Message:       resolve("conversation.power_prompt"),
		FailedMessage: resolve("conversation.power_invalid"),
		Accept: func(cctx *conversation.Context, value bool) conversation.Prompt {
			cause := event.PowerCauseSetOff
			outcome := "conversation.power_removed"
			if value {
				cause = event.PowerCauseSetOn
				outcome = "conversation.power_applied"
			}
			evt := event.NewCreeperPowerEvent(creeper, cause)
			if err := dispatcher.Dispatch(ctx, evt); err != nil {
				log.Printf("dispatch creeper power: %v", err)
			}
			if evt.Cancelled() {
				outcome = "conversation.power_cancelled"
			}
			return conversation.MessagePrompt{Message: resolve(outcome)}
		},
	}

	var naming conversation.Prompt
	if cfg.ScriptPath != "" {
		source, err := os.ReadFile(cfg.ScriptPath)
		if err != nil {
			return nil, fmt.Errorf("read prompt script: %w", err)
		}
		scripted, err := conversation.NewScriptPrompt(string(source), map[string]conversation.Prompt{
			"power": power,
		})
		if err != nil {
			return nil, fmt.Errorf("load prompt script: %w", err)
		}
		naming = scripted
	} else {
		naming = conversation.ValidatingPrompt{
			Message:       resolve("conversation.name_prompt"),
			FailedMessage: resolve("conversation.name_invalid"),
			Validate: func(cctx *conversation.Context, input string) bool {
				return strings.TrimSpace(input) != ""
			},
			Accept: func(cctx *conversation.Context, input string) conversation.Prompt {
				cctx.SetSessionData("creeper_name", strings.TrimSpace(input))
				return power
			},
		}
	}

	return conversation.MessagePrompt{
		Message: resolve("conversation.welcome"),
		Next:    naming,
	}, nil
}
