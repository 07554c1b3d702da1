package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/MikhailRaia/cat-viewer/internal/catapi"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	ServerAddress  string
	GRPCAddress    string
	CatAPIURL      string
	RequestTimeout time.Duration
	LogLevel       string
	EnableGzip     bool
	ConfigPath     string
}

// fileConfig mirrors Config in the JSON config file. Pointers tell unset from zero.
type fileConfig struct {
	ServerAddress  *string `json:"server_address"`
	GRPCAddress    *string `json:"grpc_address"`
	CatAPIURL      *string `json:"cat_api_url"`
	RequestTimeout *string `json:"request_timeout"`
	LogLevel       *string `json:"log_level"`
	EnableGzip     *bool   `json:"enable_gzip"`
}

// NewConfig resolves configuration from defaults, a JSON file, flags and
// environment, later sources overriding earlier ones. A .env file in the
// working directory is loaded into the environment first.
func NewConfig() *Config {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("Loaded environment from .env")
	}

	cfg := &Config{
		ServerAddress:  ":8080",
		GRPCAddress:    "",
		CatAPIURL:      catapi.DefaultEndpoint,
		RequestTimeout: 10 * time.Second,
		LogLevel:       "info",
		EnableGzip:     true,
	}

	flag.StringVar(&cfg.ServerAddress, "a", cfg.ServerAddress, "HTTP server address (e.g. localhost:8888)")
	flag.StringVar(&cfg.GRPCAddress, "g", cfg.GRPCAddress, "gRPC server address, empty to disable (e.g. :3200)")
	flag.StringVar(&cfg.CatAPIURL, "u", cfg.CatAPIURL, "Cat image search endpoint")
	flag.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "Timeout for upstream requests (e.g. 5s)")
	flag.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flag.BoolVar(&cfg.EnableGzip, "z", cfg.EnableGzip, "Compress responses with gzip")
	flag.StringVar(&cfg.ConfigPath, "c", "", "Path to JSON config file")

	flag.Parse()

	if envConfig := os.Getenv("CONFIG"); envConfig != "" {
		cfg.ConfigPath = envConfig
	}

	if cfg.ConfigPath != "" {
		explicit := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) {
			explicit[f.Name] = true
		})

		if err := cfg.applyFile(cfg.ConfigPath, explicit); err != nil {
			log.Warn().Err(err).Str("path", cfg.ConfigPath).Msg("Failed to load config file")
		}
	}

	if envServerAddress := os.Getenv("SERVER_ADDRESS"); envServerAddress != "" {
		cfg.ServerAddress = envServerAddress
	}

	if envGRPCAddress := os.Getenv("GRPC_ADDRESS"); envGRPCAddress != "" {
		cfg.GRPCAddress = envGRPCAddress
	}

	if envCatAPIURL := os.Getenv("CAT_API_URL"); envCatAPIURL != "" {
		cfg.CatAPIURL = envCatAPIURL
	}

	if envTimeout := os.Getenv("REQUEST_TIMEOUT"); envTimeout != "" {
		if d, err := time.ParseDuration(envTimeout); err == nil {
			cfg.RequestTimeout = d
		} else {
			log.Warn().Err(err).Str("value", envTimeout).Msg("Invalid REQUEST_TIMEOUT")
		}
	}

	if envLogLevel := os.Getenv("LOG_LEVEL"); envLogLevel != "" {
		cfg.LogLevel = envLogLevel
	}

	if envGzip := os.Getenv("ENABLE_GZIP"); envGzip != "" {
		if b, err := strconv.ParseBool(envGzip); err == nil {
			cfg.EnableGzip = b
		} else {
			log.Warn().Err(err).Str("value", envGzip).Msg("Invalid ENABLE_GZIP")
		}
	}

	return cfg
}

// applyFile copies values from the JSON file at path, skipping fields whose
// flag was given on the command line.
func (c *Config) applyFile(path string, explicit map[string]bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("error parsing config file: %w", err)
	}

	if fc.ServerAddress != nil && !explicit["a"] {
		c.ServerAddress = *fc.ServerAddress
	}
	if fc.GRPCAddress != nil && !explicit["g"] {
		c.GRPCAddress = *fc.GRPCAddress
	}
	if fc.CatAPIURL != nil && !explicit["u"] {
		c.CatAPIURL = *fc.CatAPIURL
	}
	if fc.RequestTimeout != nil && !explicit["t"] {
		d, err := time.ParseDuration(*fc.RequestTimeout)
		if err != nil {
			return fmt.Errorf("error parsing request_timeout: %w", err)
		}
		c.RequestTimeout = d
	}
	if fc.LogLevel != nil && !explicit["l"] {
		c.LogLevel = *fc.LogLevel
	}
	if fc.EnableGzip != nil && !explicit["z"] {
		c.EnableGzip = *fc.EnableGzip
	}

	return nil
}
