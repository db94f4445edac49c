package main

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/spf13/viper"
)

const (
	URL_BPUT_RESULTS = "https://results.bput.ac.in"
	URL_LANDING      = "https://results.bput.ac.in/"
	URL_TEMPLATE     = "https://raw.githubusercontent.com/Arctixinc/BPUT-CheatCode/api/templates/index.html"
	USER_AGENT       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// Config reúne tudo que antes eram constantes globais do proxy.
type Config struct {
	AppPort         string        `mapstructure:"APP_PORT"`
	Env             string        `mapstructure:"ENV"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	UpstreamBaseURL string        `mapstructure:"UPSTREAM_BASE_URL"`
	LandingURL      string        `mapstructure:"LANDING_URL"`
	TemplateURL     string        `mapstructure:"TEMPLATE_URL"`
	HTTPTimeout     time.Duration `mapstructure:"HTTP_TIMEOUT"`
	UserAgent       string        `mapstructure:"USER_AGENT"`
	CORSOrigins     []string      `mapstructure:"CORS_ORIGINS"`
	OptionExtractor string        `mapstructure:"OPTION_EXTRACTOR"`
	EnableSwagger   bool          `mapstructure:"ENABLE_SWAGGER"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

func DefaultConfig() Config {
	return Config{
		AppPort:         "8080",
		Env:             "development",
		UpstreamBaseURL: URL_BPUT_RESULTS,
		LandingURL:      URL_LANDING,
		TemplateURL:     URL_TEMPLATE,
		UserAgent:       USER_AGENT,
		CORSOrigins:     []string{"*"},
		OptionExtractor: EXTRACTOR_REGEX,
		ShutdownTimeout: 5 * time.Second,
	}
}

// LoadConfig lê config.yaml (em . ou ./config) e as variáveis de ambiente, que têm prioridade.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault("APP_PORT", def.AppPort)
	v.SetDefault("ENV", def.Env)
	v.SetDefault("LOG_LEVEL", "")
	v.SetDefault("UPSTREAM_BASE_URL", def.UpstreamBaseURL)
	v.SetDefault("LANDING_URL", def.LandingURL)
	v.SetDefault("TEMPLATE_URL", def.TemplateURL)
	v.SetDefault("HTTP_TIMEOUT", "0s")
	v.SetDefault("USER_AGENT", def.UserAgent)
	v.SetDefault("CORS_ORIGINS", def.CORSOrigins)
	v.SetDefault("OPTION_EXTRACTOR", def.OptionExtractor)
	v.SetDefault("ENABLE_SWAGGER", false)
	v.SetDefault("SHUTDOWN_TIMEOUT", def.ShutdownTimeout.String())

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config.yaml: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	cfg.CORSOrigins = splitOrigins(cfg.CORSOrigins)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Variáveis de ambiente chegam como um único item "a,b"; o yaml já vem como lista.
func splitOrigins(in []string) []string {
	var out []string
	for _, item := range in {
		for _, origin := range strings.Split(item, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				out = append(out, origin)
			}
		}
	}
	return out
}

func (c Config) Validate() error {
	for name, raw := range map[string]string{
		"UPSTREAM_BASE_URL": c.UpstreamBaseURL,
		"LANDING_URL":       c.LandingURL,
		"TEMPLATE_URL":      c.TemplateURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid %s: %q", name, raw)
		}
	}
	switch c.OptionExtractor {
	case EXTRACTOR_REGEX, EXTRACTOR_DOCUMENT:
	default:
		return fmt.Errorf("unknown OPTION_EXTRACTOR: %q", c.OptionExtractor)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("HTTP_TIMEOUT must not be negative: %s", c.HTTPTimeout)
	}
	if !c.allowAllOrigins() {
		// Mesma checagem que cors.New faria com panic.
		corsCfg := cors.Config{AllowOrigins: c.CORSOrigins}
		if err := corsCfg.Validate(); err != nil {
			return fmt.Errorf("invalid CORS_ORIGINS: %w", err)
		}
	}
	return nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) allowAllOrigins() bool {
	if len(c.CORSOrigins) == 0 {
		return true
	}
	for _, origin := range c.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
