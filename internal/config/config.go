package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Game        GameConfig        `mapstructure:"game"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	UI          UIConfig          `mapstructure:"ui"`
	Development DevelopmentConfig `mapstructure:"development"`
}

// GameConfig holds the money and table rules
type GameConfig struct {
	StartingCash    int        `mapstructure:"starting_cash"`
	PassStartBonus  int        `mapstructure:"pass_start_bonus"`
	StartFieldBonus int        `mapstructure:"start_field_bonus"`
	MinPlayers      int        `mapstructure:"min_players"`
	MaxPlayers      int        `mapstructure:"max_players"`
	Dice            DiceConfig `mapstructure:"dice"`
	Chances         []int      `mapstructure:"chances"`
}

// DiceConfig holds the inclusive range of a roll
type DiceConfig struct {
	Min int `mapstructure:"min"`
	Max int `mapstructure:"max"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  zerolog.Level `mapstructure:"level"`
	Format string        `mapstructure:"format"`
}

// UIConfig holds terminal settings
type UIConfig struct {
	Color bool `mapstructure:"color"`
}

// DevelopmentConfig holds development/debug settings
type DevelopmentConfig struct {
	VerboseLogging bool  `mapstructure:"verbose_logging"`
	Seed           int64 `mapstructure:"seed"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
	mu  sync.RWMutex
)

// defaultChances mirrors the standard chance table
var defaultChances = []int{
	500000, 750000, 200000, 350000, 1000000,
	-500000, -750000, -200000, -350000, -1000000,
}

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Game defaults
	v.SetDefault("game.starting_cash", 15000000)
	v.SetDefault("game.pass_start_bonus", 2000000)
	v.SetDefault("game.start_field_bonus", 2000000)
	v.SetDefault("game.min_players", 2)
	v.SetDefault("game.max_players", 8)
	v.SetDefault("game.dice.min", 2)
	v.SetDefault("game.dice.max", 12)
	v.SetDefault("game.chances", defaultChances)

	// Logging defaults
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")

	// UI defaults
	v.SetDefault("ui.color", true)

	// Development defaults
	v.SetDefault("development.verbose_logging", false)
	v.SetDefault("development.seed", 0)
}

// decodeHook turns level names into zerolog.Level and comma separated env values into slices
func decodeHook() viper.DecoderConfigOption {
	return viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
}

// Init initializes the configuration
func Init(configPath string) error {
	nv := viper.New()

	// Set defaults before loading any config
	setViperDefaults(nv)

	// Set config file
	if configPath != "" {
		nv.SetConfigFile(configPath)
	} else {
		// Default config locations
		nv.SetConfigName("config")
		nv.SetConfigType("yaml")
		nv.AddConfigPath(".")
		nv.AddConfigPath("./config")
		nv.AddConfigPath("/etc/text-monopoly")
	}

	// Set environment variable prefix
	nv.SetEnvPrefix("MONOPOLY")
	nv.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	nv.AutomaticEnv()

	// Read config file
	// Only a searched-for file may be absent; a named one must load.
	if err := nv.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	c, err := decode(nv)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	v = nv
	cfg = c
	return nil
}

// decode unmarshals and validates the current viper state
func decode(v *viper.Viper) (*Config, error) {
	c := &Config{}
	if err := v.Unmarshal(c, decodeHook()); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := Validate(c); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return c, nil
}

// Get returns the global config instance
func Get() *Config {
	mu.RLock()
	c := cfg
	mu.RUnlock()
	if c != nil {
		return c
	}

	// Initialize with defaults if not already initialized
	if err := Init(""); err != nil {
		panic("failed to initialize config with defaults: " + err.Error())
	}
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}

// LoadEnvironmentConfig merges config.<env>.yaml from the directory of the
// loaded config file (or the working directory) over the current configuration
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()
	if v == nil {
		return errors.New("config not initialized - call Init() first")
	}

	envFile := fmt.Sprintf("config.%s.yaml", env)
	base := v.ConfigFileUsed()
	if base != "" {
		if i := strings.LastIndexAny(base, `/\`); i >= 0 {
			envFile = base[:i+1] + envFile
		}
	}

	// The base file stays the one that is watched and re-read.
	v.SetConfigFile(envFile)
	err := v.MergeInConfig()
	if base != "" {
		v.SetConfigFile(base)
	}
	if err != nil {
		return fmt.Errorf("error merging environment config %s: %w", envFile, err)
	}

	c, err := decode(v)
	if err != nil {
		return err
	}
	cfg = c
	return nil
}

// Set allows runtime config updates. Invalid values are rejected and leave
// the current configuration unchanged.
func Set(key string, value interface{}) error {
	mu.Lock()
	defer mu.Unlock()
	if v == nil {
		return errors.New("config not initialized - call Init() first")
	}

	previous := v.Get(key)
	v.Set(key, value)
	c, err := decode(v)
	if err != nil {
		v.Set(key, previous)
		return err
	}
	cfg = c
	return nil
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	mu.RLock()
	defer mu.RUnlock()
	if v == nil {
		return ""
	}
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file. onChange receives the
// reloaded configuration, or the error that kept the previous one in place.
func WatchConfig(onChange func(*Config, error)) {
	mu.RLock()
	nv := v
	mu.RUnlock()
	if nv == nil {
		return
	}

	nv.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		c, err := decode(nv)
		if err == nil {
			mu.Lock()
			cfg = c
			mu.Unlock()
		}
		if onChange != nil {
			onChange(c, err)
		}
	})
	nv.WatchConfig()
}

// Validate validates the configuration values
func Validate(c *Config) error {
	// Validate money rules
	if c.Game.StartingCash <= 0 {
		return fmt.Errorf("game.starting_cash must be positive")
	}
	if c.Game.PassStartBonus < 0 {
		return fmt.Errorf("game.pass_start_bonus must be non-negative")
	}
	if c.Game.StartFieldBonus < 0 {
		return fmt.Errorf("game.start_field_bonus must be non-negative")
	}

	// Validate table size
	if c.Game.MinPlayers < 2 {
		return fmt.Errorf("game.min_players must be at least 2")
	}
	if c.Game.MaxPlayers < c.Game.MinPlayers {
		return fmt.Errorf("game.max_players must be at least game.min_players")
	}

	// Validate dice and chances
	if c.Game.Dice.Min < 1 {
		return fmt.Errorf("game.dice.min must be at least 1")
	}
	if c.Game.Dice.Max < c.Game.Dice.Min {
		return fmt.Errorf("game.dice.max must be at least game.dice.min")
	}
	if len(c.Game.Chances) == 0 {
		return fmt.Errorf("game.chances must not be empty")
	}

	// Validate logging
	if c.Logging.Level < zerolog.TraceLevel || c.Logging.Level > zerolog.Disabled {
		return fmt.Errorf("logging.level %q is not a known level", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}

	return nil
}
