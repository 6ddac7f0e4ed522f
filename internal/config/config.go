package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/atomicstack/happie-menu/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Sources Sources
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// Sources records which optional files contributed settings.
type Sources struct {
	EnvFile       string
	EnvFileLoaded bool
	ConfigFile    string
}

const (
	envWidth      = "HAPPIE_WIDTH"
	envHeight     = "HAPPIE_HEIGHT"
	envDark       = "HAPPIE_DARK"
	envShowFooter = "HAPPIE_FOOTER"
	envTrace      = "HAPPIE_TRACE"
	envLogFile    = "HAPPIE_LOG_FILE"
	envConfig     = "HAPPIE_CONFIG"

	defaultEnvFile = ".env"
	defaultLogFile = "happie.log"
)

// fileConfig is the YAML config file. Unset keys fall through to defaults.
type fileConfig struct {
	Width   *int    `yaml:"width"`
	Height  *int    `yaml:"height"`
	Dark    *bool   `yaml:"dark"`
	Footer  *bool   `yaml:"footer"`
	Trace   *bool   `yaml:"trace"`
	LogFile *string `yaml:"log-file"`
}

// LoadArgs parses configuration from CLI arguments and environment. Each setting is
// taken from the first source that has it: flag, environment, .env file,
// YAML config file, built-in default.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	envFile := scanFlag(args, "env-file", defaultEnvFile)
	envFileLoaded, err := mergeDotenv(env, envFile)
	if err != nil {
		return Config{}, err
	}

	configPath := scanFlag(args, "config", envOrDefault(env, envConfig, ""))
	file, err := readFileConfig(configPath)
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("happie", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, intOr(file.Width, 0)), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, intOr(file.Height, 0)), "desired viewport height in rows (0 uses terminal height)")
	dark := fs.Bool("dark", envOrBool(env, envDark, boolOr(file.Dark, false)), "start in dark mode")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, boolOr(file.Footer, true)), "show the key hint row")
	trace := fs.Bool("trace", envOrBool(env, envTrace, boolOr(file.Trace, false)), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, stringOr(file.LogFile, defaultLogFile)), "path to the log file")
	fs.String("config", configPath, "path to a YAML config file")
	fs.String("env-file", envFile, "path to a dotenv file (missing file is ignored)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		App: app.Config{
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			DarkMode:   *dark,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Sources: Sources{
			EnvFile:       envFile,
			EnvFileLoaded: envFileLoaded,
			ConfigFile:    configPath,
		},
		Flags: map[string]string{
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"dark":    strconv.FormatBool(*dark),
			"footer":  strconv.FormatBool(*footer),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
			"config":  configPath,
			"envFile": envFile,
		},
		Args: append([]string(nil), args...),
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// scanFlag finds a string flag ahead of the real parse, so that the files it
// names can supply defaults for the other flags.
func scanFlag(args []string, name, fallback string) string {
	value := fallback
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		trimmed := strings.TrimLeft(arg, "-")
		switch {
		case trimmed == name && i+1 < len(args):
			value = args[i+1]
			i++
		case strings.HasPrefix(trimmed, name+"="):
			value = strings.TrimPrefix(trimmed, name+"=")
		}
	}
	return value
}

// mergeDotenv adds keys from the dotenv file that the real environment does
// not already set. A missing file is not an error.
func mergeDotenv(env map[string]string, path string) (bool, error) {
	if strings.TrimSpace(path) == "" {
		return false, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read env file %s: %w", path, err)
	}
	for k, v := range values {
		if _, ok := env[k]; !ok {
			env[k] = v
		}
	}
	return true, nil
}

func readFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if key, value, ok := strings.Cut(entry, "="); ok && key != "" {
			values[key] = value
		}
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func stringOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}

// Validate rejects settings the UI cannot honour.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	return nil
}
