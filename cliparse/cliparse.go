package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port            int           `yaml:"port" validate:"gt=0,lte=65535"`
	ErailBaseURL    string        `yaml:"erail_base_url" validate:"required,url"`
	PNRBaseURL      string        `yaml:"pnr_base_url" validate:"required,url"`
	UpstreamTimeout time.Duration `yaml:"upstream_timeout" validate:"gt=0"`
	PNRTimeout      time.Duration `yaml:"pnr_timeout" validate:"gt=0"`
	UserAgent       string        `yaml:"user_agent"`
	AllowedOrigin   string        `yaml:"allowed_origin"`
}

// Defaults returns the configuration used when nothing else is set
func Defaults() Config {
	return Config{
		Port:            3318,
		ErailBaseURL:    "https://erail.in",
		PNRBaseURL:      "https://www.confirmtkt.com",
		UpstreamTimeout: 10 * time.Second,
		PNRTimeout:      15 * time.Second,
	}
}

// LoadEnvFile loads variables from a .env file without overriding ones
// already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ParseFlags builds the config from defaults, an optional YAML file,
// environment variables and flags, in increasing order of precedence.
func ParseFlags(args []string) (Config, error) {
	var flags Config
	var configFile string

	fs := flag.NewFlagSet("railapi", flag.ContinueOnError)

	fs.StringVar(&configFile, "c", "", "YAML config file")
	fs.IntVar(&flags.Port, "p", 0, "Server port")
	fs.StringVar(&flags.ErailBaseURL, "erail", "", "erail base URL")
	fs.StringVar(&flags.PNRBaseURL, "pnr", "", "PNR status site base URL")
	fs.DurationVar(&flags.UpstreamTimeout, "timeout", 0, "Upstream request timeout")
	fs.DurationVar(&flags.PNRTimeout, "pnr-timeout", 0, "PNR request timeout")
	fs.StringVar(&flags.UserAgent, "ua", "", "Fixed User-Agent (default: rotate)")
	fs.StringVar(&flags.AllowedOrigin, "origin", "", "CORS allowed origin (default: echo request)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Defaults()

	if configFile == "" {
		configFile = os.Getenv("CONFIG_FILE")
	}
	if configFile != "" {
		if err := loadFile(configFile, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	// Only flags given on the command line override
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "p":
			cfg.Port = flags.Port
		case "erail":
			cfg.ErailBaseURL = flags.ErailBaseURL
		case "pnr":
			cfg.PNRBaseURL = flags.PNRBaseURL
		case "timeout":
			cfg.UpstreamTimeout = flags.UpstreamTimeout
		case "pnr-timeout":
			cfg.PNRTimeout = flags.PNRTimeout
		case "ua":
			cfg.UserAgent = flags.UserAgent
		case "origin":
			cfg.AllowedOrigin = flags.AllowedOrigin
		}
	})

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return errors.New("invalid PORT env variable")
		}
		cfg.Port = port
	}
	if v := os.Getenv("ERAIL_BASE_URL"); v != "" {
		cfg.ErailBaseURL = v
	}
	if v := os.Getenv("PNR_BASE_URL"); v != "" {
		cfg.PNRBaseURL = v
	}
	if v := os.Getenv("UPSTREAM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.New("invalid UPSTREAM_TIMEOUT env variable")
		}
		cfg.UpstreamTimeout = d
	}
	if v := os.Getenv("PNR_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.New("invalid PNR_TIMEOUT env variable")
		}
		cfg.PNRTimeout = d
	}
	if v := os.Getenv("USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}
	if v := os.Getenv("ALLOWED_ORIGIN"); v != "" {
		cfg.AllowedOrigin = v
	}
	return nil
}
