package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/TextMonopoly/internal/config"
	"github.com/mitchelldurbincs/TextMonopoly/internal/game"
	"github.com/mitchelldurbincs/TextMonopoly/internal/game/events"
	"github.com/mitchelldurbincs/TextMonopoly/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/TextMonopoly/internal/ui/terminal"
)

type options struct {
	configPath  string
	envFile     string
	profile     string
	players     int
	seed        int64
	logLevel    string
	noColor     bool
	watchConfig bool
}

func main() {
	opts := parseFlags()
	if err := run(opts, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, terminal.ErrInputClosed) {
			log.Info().Msg("Input closed, leaving the game")
			return
		}
		log.Error().Err(err).Msg("Game aborted")
		os.Exit(1)
	}
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to config file")
	flag.StringVar(&opts.envFile, "env-file", ".env", "Dotenv file with MONOPOLY_* variables (ignored if missing)")
	flag.StringVar(&opts.profile, "profile", "", "Merge config.<profile>.yaml over the base config")
	flag.IntVar(&opts.players, "players", 0, "Number of players (0 to ask)")
	flag.Int64Var(&opts.seed, "seed", 0, "RNG seed (0 to use config default, which falls back to the clock)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	flag.BoolVar(&opts.noColor, "no-color", false, "Disable ANSI colors")
	flag.BoolVar(&opts.watchConfig, "watch-config", false, "Re-apply the log level when the config file changes")
	flag.Parse()
	return opts
}

// run plays one game, reading answers from in and printing the game to out
func run(opts options, in io.Reader, out io.Writer) error {
	if err := godotenv.Load(opts.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", opts.envFile, err)
	}

	if err := config.Init(opts.configPath); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}
	if err := config.LoadEnvironmentConfig(opts.profile); err != nil {
		return err
	}
	cfg := config.Get()

	level := cfg.Logging.Level
	if opts.logLevel != "" {
		parsed, err := zerolog.ParseLevel(opts.logLevel)
		if err != nil {
			return fmt.Errorf("invalid -log-level: %w", err)
		}
		level = parsed
	}
	setupLogging(level, cfg.Logging.Format)

	if opts.watchConfig {
		watchLogLevel(opts.logLevel != "")
	}

	seed := opts.seed
	if seed == 0 {
		seed = cfg.Development.Seed
	}
	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
		log.Info().Int64("seed", seed).Msg("Using fixed seed")
	}

	eventLogger := subscribers.NewLoggerSubscriber("event_logger", log.Logger, zerolog.DebugLevel)
	eventLogger.SetDevMode(cfg.Development.VerboseLogging)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	defer close(done)
	go awaitInterrupt(ctx, done, stop, log.Logger)

	rules := game.RulesFromConfig(cfg)
	engine, err := game.NewEngine(ctx, game.GameConfig{
		Players:     opts.players,
		Rules:       &rules,
		Input:       terminal.NewInput(in, out),
		Display:     terminal.NewDisplay(out, cfg.UI.Color && !opts.noColor),
		Rng:         rng,
		Logger:      log.Logger,
		Subscribers: []events.Subscriber{eventLogger},
	})
	if err != nil {
		return err
	}

	start := time.Now()
	if err := engine.Run(ctx); err != nil {
		return err
	}
	log.Info().
		Str("game_id", engine.GameID()).
		Int("rounds", engine.Round()).
		Dur("duration", time.Since(start)).
		Int("ledger_entries", engine.Ledger().Len()).
		Msg("Game finished")
	return nil
}

// awaitInterrupt reports the first signal on the log, which is safe to write
// from any goroutine, and restores default signal handling so a second one
// terminates immediately.
func awaitInterrupt(ctx context.Context, done <-chan struct{}, stop context.CancelFunc, logger zerolog.Logger) {
	select {
	case <-ctx.Done():
		stop()
		logger.Warn().Msg("Interrupted. The game stops before the next turn; press Ctrl-C again to quit now.")
	case <-done:
	}
}

func setupLogging(level zerolog.Level, format string) {
	zerolog.SetGlobalLevel(level)

	if format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})
}

// watchLogLevel follows logging.level in the config file. A level given on
// the command line wins and is left alone.
func watchLogLevel(pinned bool) {
	if config.ConfigFilePath() == "" {
		log.Warn().Msg("No config file in use, -watch-config has nothing to watch")
		return
	}
	config.WatchConfig(func(c *config.Config, err error) {
		if err != nil {
			log.Warn().Err(err).Msg("Ignoring invalid config change")
			return
		}
		if pinned {
			return
		}
		zerolog.SetGlobalLevel(c.Logging.Level)
		log.Info().Str("level", c.Logging.Level.String()).Msg("Log level reloaded")
	})
	log.Info().Str("file", config.ConfigFilePath()).Msg("Watching config file")
}
