package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/louisbranch/emberfall/internal/services/game/storage"
)

// consolePlayer is a human participant backed by the process console. Every
// message delivered to the player is mirrored into the transcript store when
// one is configured.
type consolePlayer struct {
	id             string
	name           string
	locale         string
	out            io.Writer
	conversationID string
	transcripts    storage.TranscriptStore
}

func (p *consolePlayer) EntityID() string { return p.id }

func (p *consolePlayer) Name() string { return p.name }

func (p *consolePlayer) Locale() string { return p.locale }

func (p *consolePlayer) SendRawMessage(message string) {
	fmt.Fprintln(p.out, message)
	p.record(true, message)
}

// recordInput mirrors one line of participant input into the transcript.
func (p *consolePlayer) recordInput(line string) {
	p.record(false, line)
}

func (p *consolePlayer) record(outbound bool, text string) {
	if p.transcripts == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	line := storage.TranscriptLine{
		ConversationID: p.conversationID,
		Outbound:       outbound,
		Text:           text,
	}
	if err := p.transcripts.AppendTranscriptLine(ctx, line); err != nil {
		log.Printf("record transcript line: %v", err)
	}
}

// creeperEntity is the demo creeper the host conversation tends.
type creeperEntity struct {
	id   string
	name string
}

func (c *creeperEntity) EntityID() string { return c.id }

func (c *creeperEntity) Name() string { return c.name }
