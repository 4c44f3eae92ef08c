package config

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the configuration. An empty path
// probes config.yml then ./config/config.yml. Environment variables (also
// read from a .env file when present) override the file: OTP_SCHEME,
// OTP_HOST, OTP_PORT, OTP_ROUTER, OTP_VERSION, OTP_TIMEZONE.
func LoadAppConfig(path string) error {
	_ = godotenv.Load()

	paths := []string{path}
	if path == "" {
		paths = []string{"config.yml", "./config/config.yml"}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	applyEnvOverrides(&cfg)
	v := validator.New()
	if err := v.Struct(cfg.Router); err != nil {
		return err
	}
	if err := v.Struct(cfg.Defaults); err != nil {
		return err
	}
	Config = cfg
	if Config.Router.Scheme == "" {
		Config.Router.Scheme = "http"
	}
	if Config.Router.Port == 0 {
		Config.Router.Port = 8080
	}
	if Config.Router.Router == "" {
		Config.Router.Router = "default"
	}
	if Config.Router.Version == 0 {
		Config.Router.Version = 1
	}
	return nil
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := os.Getenv("OTP_SCHEME"); v != "" {
		cfg.Router.Scheme = v
	}
	if v := os.Getenv("OTP_HOST"); v != "" {
		cfg.Router.Host = v
	}
	if v := os.Getenv("OTP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Router.Port = p
		}
	}
	if v := os.Getenv("OTP_ROUTER"); v != "" {
		cfg.Router.Router = v
	}
	if v := os.Getenv("OTP_VERSION"); v != "" {
		if ver, err := strconv.Atoi(v); err == nil {
			cfg.Router.Version = ver
		}
	}
	if v := os.Getenv("OTP_TIMEZONE"); v != "" {
		cfg.Router.TimeZone = v
	}
}
