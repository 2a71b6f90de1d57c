// Package config loads CapitolQuiz settings from defaults, an optional YAML
// file, CAPITOLQUIZ_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/abhisek/capitolquiz/internal/questiongen"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "CAPITOLQUIZ"

// Config holds application configuration.
type Config struct {
	Env        string     `mapstructure:"env"` // "production" switches to JSON logs
	Log        Log        `mapstructure:"log"`
	Quiz       Quiz       `mapstructure:"quiz"`
	Roster     Roster     `mapstructure:"roster"`
	Database   Database   `mapstructure:"database"`
	Generation Generation `mapstructure:"generation"`
}

// Log configures diagnostics output.
type Log struct {
	Level string `mapstructure:"level"` // debug, info, warn, error
	File  string `mapstructure:"file"`  // empty: state dir; "-": stderr
}

// Quiz holds the play settings.
type Quiz struct {
	Difficulty          string `mapstructure:"difficulty"`
	Questions           int    `mapstructure:"questions"`
	Seed                uint64 `mapstructure:"seed"` // 0 picks a random seed
	AttemptsPerQuestion int    `mapstructure:"attempts_per_question"`
}

// Roster points at an optional roster JSON file. Empty means the stored
// roster, falling back to the embedded one.
type Roster struct {
	Path string `mapstructure:"path"`
}

// Database holds the SQLite location. Empty means the XDG data dir.
type Database struct {
	Path string `mapstructure:"path"`
}

// Generation holds the bounded draw budgets of the question generator.
type Generation struct {
	PartyDraws          int `mapstructure:"party_draws"`
	SeniorityDraws      int `mapstructure:"seniority_draws"`
	PartySeniorityDraws int `mapstructure:"party_seniority_draws"`
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"difficulty": "quiz.difficulty",
	"questions":  "quiz.questions",
	"seed":       "quiz.seed",
	"roster":     "roster.path",
	"db":         "database.path",
	"log-level":  "log.level",
}

// Load reads configuration. file may name an explicit config file, which
// must then exist; otherwise config.yaml is looked up in the XDG config dir
// and the working directory, and skipped when absent. flags may be nil;
// only flags the user set override other sources.
func Load(file string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("quiz.difficulty", string(questiongen.DifficultyEasy))
	v.SetDefault("quiz.questions", 10)
	v.SetDefault("quiz.seed", 0)
	v.SetDefault("quiz.attempts_per_question", 10)
	v.SetDefault("roster.path", "")
	v.SetDefault("database.path", "")

	gen := questiongen.DefaultConfig()
	v.SetDefault("generation.party_draws", gen.PartyDraws)
	v.SetDefault("generation.seniority_draws", gen.SeniorityDraws)
	v.SetDefault("generation.party_seniority_draws", gen.PartySeniorityDraws)
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if _, err := questiongen.ParseDifficulty(c.Quiz.Difficulty); err != nil {
		return fmt.Errorf("quiz.difficulty: %w", err)
	}
	if c.Quiz.Questions < 1 {
		return fmt.Errorf("quiz.questions must be at least 1, got %d", c.Quiz.Questions)
	}
	if c.Quiz.AttemptsPerQuestion < 1 {
		return fmt.Errorf("quiz.attempts_per_question must be at least 1, got %d", c.Quiz.AttemptsPerQuestion)
	}
	g := c.Generation
	if g.PartyDraws < 1 || g.SeniorityDraws < 1 || g.PartySeniorityDraws < 1 {
		return errors.New("generation draw budgets must be at least 1")
	}
	return nil
}

// Difficulty returns the parsed quiz difficulty. Call after Validate.
func (c *Config) Difficulty() questiongen.Difficulty {
	d, _ := questiongen.ParseDifficulty(c.Quiz.Difficulty)
	return d
}

// GeneratorConfig returns the generator settings with the default validator
// chain and the configured draw budgets.
func (c *Config) GeneratorConfig() questiongen.Config {
	gc := questiongen.DefaultConfig()
	gc.PartyDraws = c.Generation.PartyDraws
	gc.SeniorityDraws = c.Generation.SeniorityDraws
	gc.PartySeniorityDraws = c.Generation.PartySeniorityDraws
	return gc
}
