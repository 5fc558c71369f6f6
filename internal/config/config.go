// internal/config/config.go
//
// Process configuration.
// Values come from the environment, optionally seeded from a .env file
// (godotenv); CLI flags override individual fields afterwards.
//
// Environment variables:
//   PORT=5175
//   LOG_LEVEL=info
//   WORDS_FILE=/path/to/words.txt          (default: embedded list)
//   FREQ_TABLE_FILE=/path/to/freq.yaml     (default: built-in English table)
//   OPENING_WORDS=arise,adieu,audio        (default: solver.DefaultOpeners)
//   DB_PATH=./data/runs.db                 (default: history disabled)
//   API_SECRET=...                         (default: auth disabled)
//   DAILY_SALT=local_dev_salt

package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/wordlebot/internal/solver"
)

// Config holds every tunable of the process.
type Config struct {
	Port          string
	LogLevel      zerolog.Level
	WordsFile     string
	FreqTableFile string
	Openers       []string
	DBPath        string
	APISecret     string
	DailySalt     string
}

// Load reads .env (if present) and the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	openers, err := ParseOpeners(os.Getenv("OPENING_WORDS"))
	if err != nil {
		return Config{}, fmt.Errorf("OPENING_WORDS: %w", err)
	}
	return Config{
		Port:          getEnv("PORT", "5175"),
		LogLevel:      lvl,
		WordsFile:     os.Getenv("WORDS_FILE"),
		FreqTableFile: os.Getenv("FREQ_TABLE_FILE"),
		Openers:       openers,
		DBPath:        os.Getenv("DB_PATH"),
		APISecret:     os.Getenv("API_SECRET"),
		DailySalt:     getEnv("DAILY_SALT", "local_dev_salt"),
	}, nil
}

// ParseOpeners splits a comma list of opening words. Empty input yields the
// default openers.
func ParseOpeners(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return append([]string(nil), solver.DefaultOpeners...), nil
	}
	var out []string
	for _, w := range strings.Split(s, ",") {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if !solver.IsWord(w) {
			return nil, fmt.Errorf("opening word %q is not a %d-letter word", w, solver.WordLength)
		}
		out = append(out, w)
	}
	return out, nil
}

// FrequencyTable returns the configured table: the YAML file when set,
// otherwise the built-in default.
func (c Config) FrequencyTable() (solver.FrequencyTable, error) {
	if c.FreqTableFile == "" {
		return solver.DefaultFrequencyTable(), nil
	}
	return LoadFrequencyTable(c.FreqTableFile)
}

// LoadFrequencyTable reads a YAML mapping of letter to weight, e.g.
//
//	e: 56.88
//	a: 43.31
func LoadFrequencyTable(path string) (solver.FrequencyTable, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return solver.FrequencyTable{}, fmt.Errorf("read frequency table: %w", err)
	}
	return ParseFrequencyTable(b)
}

// ParseFrequencyTable decodes YAML bytes into a validated table.
func ParseFrequencyTable(b []byte) (solver.FrequencyTable, error) {
	var weights map[string]float64
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&weights); err != nil {
		return solver.FrequencyTable{}, fmt.Errorf("%w: %v", solver.ErrInvalidFrequencyTable, err)
	}
	return solver.NewFrequencyTable(weights)
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
