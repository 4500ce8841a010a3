package config

import (
	"fmt"
	"time"

	"github.com/gotify/configor"
)

// Configuration is the file and environment configuration of the CLI.
// Command line flags are applied on top of it.
type Configuration struct {
	API     APIConfig     `yaml:"api" json:"api"`
	Webhook WebhookConfig `yaml:"webhook" json:"webhook"`
}

type APIConfig struct {
	Key            string `yaml:"key" json:"key" env:"HEYREACH_API_KEY"`
	BaseURL        string `yaml:"baseUrl" json:"baseUrl" default:"https://api.heyreach.io" env:"HEYREACH_BASE_URL"`
	TimeoutSeconds int    `yaml:"timeoutSeconds" json:"timeoutSeconds" default:"30" env:"HEYREACH_TIMEOUT_SECONDS"`
}

// WebhookConfig configures the receiver for HeyReach webhook deliveries.
type WebhookConfig struct {
	Port               int    `yaml:"port" json:"port" default:"9443" env:"HEYREACH_WEBHOOK_PORT"`
	Path               string `yaml:"path" json:"path" default:"/heyreach/events" env:"HEYREACH_WEBHOOK_PATH"`
	CertDir            string `yaml:"certDir" json:"certDir" default:"/etc/certs" env:"HEYREACH_WEBHOOK_CERT_DIR"`
	Secret             string `yaml:"secret" json:"secret" env:"HEYREACH_WEBHOOK_SECRET"`
	MetricsBindAddress string `yaml:"metricsBindAddress" json:"metricsBindAddress" default:":8080" env:"HEYREACH_METRICS_BIND_ADDRESS"`
}

// Timeout is the per-request timeout of the API client.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Load reads the given files in order, then the environment, then defaults.
// Files that do not exist are skipped.
func Load(files ...string) (*Configuration, error) {
	conf := new(Configuration)
	if err := configor.New(&configor.Config{}).Load(conf, nonEmpty(files)...); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if conf.API.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("api timeout must be positive, got %d", conf.API.TimeoutSeconds)
	}
	return conf, nil
}

func nonEmpty(files []string) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
