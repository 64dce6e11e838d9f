// Package game parses game command flags and starts the conversation host.
package game

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/emberfall/internal/platform/cmd"
	"github.com/louisbranch/emberfall/internal/services/game/app"
)

// Config holds game command configuration.
type Config struct {
	DBPath         string `env:"EMBERFALL_GAME_DB"`
	Locale         string `env:"EMBERFALL_GAME_LOCALE" envDefault:"en-US"`
	PlayerName     string `env:"EMBERFALL_GAME_PLAYER" envDefault:"player"`
	TimeoutSeconds int    `env:"EMBERFALL_GAME_TIMEOUT" envDefault:"600"`
	ScriptPath     string `env:"EMBERFALL_GAME_SCRIPT"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "The SQLite database path (empty disables persistence)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "The player locale as a BCP 47 tag")
	fs.StringVar(&cfg.PlayerName, "player", cfg.PlayerName, "The console player name")
	fs.IntVar(&cfg.TimeoutSeconds, "timeout", cfg.TimeoutSeconds, "The session inactivity timeout in seconds")
	fs.StringVar(&cfg.ScriptPath, "script", cfg.ScriptPath, "A Lua prompt script replacing the naming exchange")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the conversation host.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceGame, func(ctx context.Context) error {
		return app.Run(ctx, app.Config{
			DBPath:         cfg.DBPath,
			Locale:         cfg.Locale,
			PlayerName:     cfg.PlayerName,
			TimeoutSeconds: cfg.TimeoutSeconds,
			ScriptPath:     cfg.ScriptPath,
		})
	})
}
