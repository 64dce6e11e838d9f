package game

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("game", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Locale != "en-US" {
		t.Fatalf("expected default locale en-US, got %q", cfg.Locale)
	}
	if cfg.TimeoutSeconds != 600 {
		t.Fatalf("expected default timeout 600, got %d", cfg.TimeoutSeconds)
	}
	if cfg.DBPath != "" {
		t.Fatalf("expected empty db path, got %q", cfg.DBPath)
	}
	if cfg.PlayerName != "player" {
		t.Fatalf("expected default player name, got %q", cfg.PlayerName)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	fs := flag.NewFlagSet("game", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{
		"-db", "/tmp/game.db",
		"-locale", "pt-BR",
		"-player", "Louis",
		"-timeout", "45",
		"-script", "naming.lua",
	})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.DBPath != "/tmp/game.db" {
		t.Fatalf("expected db override, got %q", cfg.DBPath)
	}
	if cfg.Locale != "pt-BR" {
		t.Fatalf("expected locale override, got %q", cfg.Locale)
	}
	if cfg.PlayerName != "Louis" {
		t.Fatalf("expected player override, got %q", cfg.PlayerName)
	}
	if cfg.TimeoutSeconds != 45 {
		t.Fatalf("expected timeout override, got %d", cfg.TimeoutSeconds)
	}
	if cfg.ScriptPath != "naming.lua" {
		t.Fatalf("expected script override, got %q", cfg.ScriptPath)
	}
}

func TestParseConfigEnvDefaults(t *testing.T) {
	t.Setenv("EMBERFALL_GAME_LOCALE", "pt-BR")
	fs := flag.NewFlagSet("game", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Locale != "pt-BR" {
		t.Fatalf("expected env locale, got %q", cfg.Locale)
	}
}
