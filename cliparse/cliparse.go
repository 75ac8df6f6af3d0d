package cliparse

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/danielhkuo/countdown/countdown"
	"github.com/danielhkuo/countdown/logging"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"
)

const DefaultPort = 3000

// Database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

var (
	ErrInvalidPort             = errors.New("invalid port")
	ErrUnknownDatabaseType     = errors.New("database type must be sqlite or postgres")
	ErrUnknownLogFormat        = errors.New("log format must be auto, text or json")
	ErrUnsupportedConfigFormat = errors.New("config file must be .toml, .yaml or .yml")
)

type Config struct {
	Port            int
	TargetDateTimes []string
	Titles          []string
	FileTargets     []countdown.Target
	PublicDir       string
	DatabaseURL     string
	DatabaseType    string
	ConfigFile      string
	LogLevel        string
	LogFormat       string
}

// FileConfig is the on-disk config file shape (TOML or YAML)
type FileConfig struct {
	Port       int                `toml:"port" yaml:"port"`
	PublicDir  string             `toml:"public_dir" yaml:"public_dir"`
	Countdowns []countdown.Target `toml:"countdown" yaml:"countdowns"`
}

// BindFlags registers configuration flags on fs
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.IntVarP(&cfg.Port, "port", "p", 0, "Server port")
	fs.StringSliceVar(&cfg.TargetDateTimes, "targets", nil, "Comma-separated target date/times (ISO 8601)")
	fs.StringSliceVar(&cfg.Titles, "titles", nil, "Comma-separated titles, paired with --targets by position")
	fs.StringVar(&cfg.PublicDir, "public-dir", "", "Serve the front-end from this directory instead of the embedded copy")
	fs.StringVarP(&cfg.DatabaseURL, "database-url", "d", "", "Database URL for stored targets (optional)")
	fs.StringVarP(&cfg.DatabaseType, "database-type", "t", "", "Database type (sqlite or postgres)")
	fs.StringVarP(&cfg.ConfigFile, "config", "c", "", "Config file (.toml, .yaml)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", "", "Log format (auto, text, json)")
}

// ParseFlags parses args and resolves the result against the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := pflag.NewFlagSet("countdown", pflag.ContinueOnError)
	BindFlags(fs, &cfg)

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return Resolve(cfg)
}

// Resolve fills fields left empty by flags from the environment, then the
// config file, then defaults, and validates the result.
func Resolve(cfg Config) (Config, error) {
	if len(cfg.TargetDateTimes) == 0 {
		cfg.TargetDateTimes = countdown.SplitList(firstEnv("TARGET_DATETIMES", "TARGET_DATETIME"))
	}
	if len(cfg.Titles) == 0 {
		cfg.Titles = countdown.SplitList(firstEnv("COUNTDOWN_TITLES", "COUNTDOWN_TITLE"))
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, fmt.Errorf("%w: PORT=%q", ErrInvalidPort, portStr)
			}
			cfg.Port = port
		}
	}

	cfg.PublicDir = orEnv(cfg.PublicDir, "PUBLIC_DIR")
	cfg.DatabaseURL = orEnv(cfg.DatabaseURL, "DATABASE_URL")
	cfg.DatabaseType = orEnv(cfg.DatabaseType, "DATABASE_TYPE")
	cfg.ConfigFile = orEnv(cfg.ConfigFile, "COUNTDOWN_CONFIG")
	cfg.LogLevel = orEnv(cfg.LogLevel, "LOG_LEVEL")
	cfg.LogFormat = orEnv(cfg.LogFormat, "LOG_FORMAT")

	if cfg.ConfigFile != "" {
		file, err := LoadFile(cfg.ConfigFile)
		if err != nil {
			return Config{}, err
		}
		if cfg.Port == 0 {
			cfg.Port = file.Port
		}
		if cfg.PublicDir == "" {
			cfg.PublicDir = file.PublicDir
		}
		cfg.FileTargets = file.Countdowns
	}

	// Defaults
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = DatabaseSQLite
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = logging.FormatAuto
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges. Missing targets are not an error here; the
// countdown endpoint reports them.
func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Port)
	}
	switch c.DatabaseType {
	case DatabaseSQLite, DatabasePostgres:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDatabaseType, c.DatabaseType)
	}
	if !logging.ValidFormat(c.LogFormat) {
		return fmt.Errorf("%w: %q", ErrUnknownLogFormat, c.LogFormat)
	}
	return nil
}

// Targets returns flag/env targets paired with their titles, followed by
// targets from the config file. Titles default by overall position.
func (c Config) Targets() []countdown.Target {
	return countdown.AppendTargets(countdown.PairTargets(c.TargetDateTimes, c.Titles), c.FileTargets...)
}

// LoadFile reads a TOML or YAML config file, chosen by extension
func LoadFile(path string) (FileConfig, error) {
	var file FileConfig

	unmarshal := toml.Unmarshal
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
	case ".yaml", ".yml":
		unmarshal = yaml.Unmarshal
	default:
		return FileConfig{}, fmt.Errorf("%w: %s", ErrUnsupportedConfigFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return FileConfig{}, fmt.Errorf("read config: %w", err)
	}
	if err := unmarshal(data, &file); err != nil {
		return FileConfig{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return file, nil
}

// LoadDotEnv loads .env style files into the environment without
// overriding variables that are already set. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func orEnv(value, key string) string {
	if value != "" {
		return value
	}
	return os.Getenv(key)
}
