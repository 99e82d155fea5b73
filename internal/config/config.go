// Package config holds application constants and the runtime configuration,
// loaded from defaults, a TOML file, FOCUSDAY_* environment variables and
// command line flags, in that order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/akyairhashvil/focusday/internal/timer"
	"github.com/akyairhashvil/focusday/internal/util"
)

// Config is the runtime configuration.
type Config struct {
	Focus      time.Duration `toml:"focus"`
	ShortBreak time.Duration `toml:"short_break"`
	LongBreak  time.Duration `toml:"long_break"`

	Theme    string `toml:"theme"`
	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`

	SpeechCommand string        `toml:"speech_command"`
	SpeechTimeout time.Duration `toml:"speech_timeout"`

	ReportDir  string `toml:"report_dir"`
	ReportFont string `toml:"report_font"`

	IDStyle string `toml:"id_style"`

	// Path is the config file that was read, empty if none.
	Path string `toml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Focus:         FocusDuration,
		ShortBreak:    ShortBreakDuration,
		LongBreak:     LongBreakDuration,
		Theme:         DefaultTheme,
		LogLevel:      DefaultLevel,
		LogFile:       util.LogPath(AppName),
		SpeechTimeout: DefaultSpeechTimeout,
		ReportDir:     util.ReportsDir(AppName),
		IDStyle:       IDStyleSequence,
	}
}

// Durations converts the timer settings.
func (c *Config) Durations() timer.Durations {
	return timer.Durations{Focus: c.Focus, ShortBreak: c.ShortBreak, LongBreak: c.LongBreak}
}

// Validate checks values that would break the timer or scheduler.
func (c *Config) Validate() error {
	if err := c.Durations().Validate(); err != nil {
		return err
	}
	switch c.IDStyle {
	case IDStyleSequence, IDStyleUUID:
	default:
		return fmt.Errorf("id_style must be %q or %q, got %q", IDStyleSequence, IDStyleUUID, c.IDStyle)
	}
	if c.SpeechTimeout < 0 {
		return errors.New("speech_timeout must not be negative")
	}
	return nil
}

// DefaultPath is the user config file location.
func DefaultPath() string {
	return filepath.Join(util.ConfigDir(AppName), ConfigFileName)
}

type flagValues struct {
	configPath    string
	focus         time.Duration
	shortBreak    time.Duration
	longBreak     time.Duration
	theme         string
	logLevel      string
	logFile       string
	speechCommand string
	reportDir     string
	idStyle       string
}

func registerFlags(fs *flag.FlagSet, v *flagValues) {
	fs.StringVar(&v.configPath, "config", "", "path to config file")
	fs.DurationVar(&v.focus, "focus", 0, "focus duration (e.g. 25m)")
	fs.DurationVar(&v.shortBreak, "short-break", 0, "short break duration")
	fs.DurationVar(&v.longBreak, "long-break", 0, "long break duration")
	fs.StringVar(&v.theme, "theme", "", "color theme (default, dracula)")
	fs.StringVar(&v.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	fs.StringVar(&v.logFile, "log-file", "", "log file path")
	fs.StringVar(&v.speechCommand, "speech-command", "", "speech-to-text command line")
	fs.StringVar(&v.reportDir, "report-dir", "", "directory for exported plans")
	fs.StringVar(&v.idStyle, "id-style", "", "task id style (sequence, uuid)")
}

// Load builds the configuration. A missing file at the default location is
// not an error; a missing file that was asked for explicitly is.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	var fv flagValues
	registerFlags(fs, &fv)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	cfg := Default()

	path, explicit := fv.configPath, fv.configPath != ""
	if !explicit {
		if env := strings.TrimSpace(os.Getenv(EnvPrefix + "CONFIG")); env != "" {
			path, explicit = env, true
		} else {
			path = DefaultPath()
		}
	}
	if err := loadFile(cfg, path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	} else {
		cfg.Path = path
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, err
	}
	applyFlags(cfg, fs, &fv)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func loadFromEnv(cfg *Config) error {
	durations := []struct {
		name string
		dst  *time.Duration
	}{
		{"FOCUS", &cfg.Focus},
		{"SHORT_BREAK", &cfg.ShortBreak},
		{"LONG_BREAK", &cfg.LongBreak},
		{"SPEECH_TIMEOUT", &cfg.SpeechTimeout},
	}
	for _, d := range durations {
		v := strings.TrimSpace(os.Getenv(EnvPrefix + d.name))
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, d.name, err)
		}
		*d.dst = parsed
	}

	strs := []struct {
		name string
		dst  *string
	}{
		{"THEME", &cfg.Theme},
		{"LOG_LEVEL", &cfg.LogLevel},
		{"LOG_FILE", &cfg.LogFile},
		{"SPEECH_COMMAND", &cfg.SpeechCommand},
		{"REPORT_DIR", &cfg.ReportDir},
		{"REPORT_FONT", &cfg.ReportFont},
		{"ID_STYLE", &cfg.IDStyle},
	}
	for _, s := range strs {
		if v, ok := os.LookupEnv(EnvPrefix + s.name); ok {
			*s.dst = strings.TrimSpace(v)
		}
	}
	return nil
}

func applyFlags(cfg *Config, fs *flag.FlagSet, fv *flagValues) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "focus":
			cfg.Focus = fv.focus
		case "short-break":
			cfg.ShortBreak = fv.shortBreak
		case "long-break":
			cfg.LongBreak = fv.longBreak
		case "theme":
			cfg.Theme = fv.theme
		case "log-level":
			cfg.LogLevel = fv.logLevel
		case "log-file":
			cfg.LogFile = fv.logFile
		case "speech-command":
			cfg.SpeechCommand = fv.speechCommand
		case "report-dir":
			cfg.ReportDir = fv.reportDir
		case "id-style":
			cfg.IDStyle = fv.idStyle
		}
	})
}
