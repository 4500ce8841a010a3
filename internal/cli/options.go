package cli

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/pflag"

	"go.miloapis.com/outreach-provider-heyreach/internal/config"
	"go.miloapis.com/outreach-provider-heyreach/internal/printer"
	"go.miloapis.com/outreach-provider-heyreach/pkg/heyreach"
)

// Options are the persistent flags shared by every API command.
type Options struct {
	ConfigFile string
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	Output     string

	// Out receives command output. Defaults to stdout when wired by the root command.
	Out io.Writer
	// In is read when an input file is "-".
	In io.Reader
}

// AddFlags registers the persistent flags on fs.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.ConfigFile, "config", "", "Path to a YAML or JSON configuration file")
	fs.StringVar(&o.APIKey, "api-key", "", "HeyReach API key (defaults to $HEYREACH_API_KEY)")
	fs.StringVar(&o.BaseURL, "base-url", "", "HeyReach API base URL")
	fs.DurationVar(&o.Timeout, "timeout", 0, "Per-request timeout (defaults to 30s)")
	fs.StringVarP(&o.Output, "output", "o", string(printer.FormatJSON), "Output format (json, yaml)")
}

// Config loads the configuration file and environment, then applies flags
// that were set explicitly.
func (o *Options) Config() (*config.Configuration, error) {
	conf, err := config.Load(o.ConfigFile)
	if err != nil {
		return nil, err
	}
	if o.APIKey != "" {
		conf.API.Key = o.APIKey
	}
	if o.BaseURL != "" {
		conf.API.BaseURL = o.BaseURL
	}
	return conf, nil
}

// Client builds an API client and resolves the API key to call it with.
func (o *Options) Client() (heyreach.API, string, error) {
	conf, err := o.Config()
	if err != nil {
		return nil, "", err
	}
	if conf.API.Key == "" {
		return nil, "", fmt.Errorf("api key is required: set --api-key or HEYREACH_API_KEY")
	}

	timeout := conf.API.Timeout()
	if o.Timeout > 0 {
		timeout = o.Timeout
	}

	client, err := heyreach.NewSDK(
		heyreach.WithBaseURL(conf.API.BaseURL),
		heyreach.WithHTTPClient(&http.Client{Timeout: timeout}),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create heyreach client: %w", err)
	}
	return client, conf.API.Key, nil
}

// Print writes v to Out in the selected output format.
func (o *Options) Print(v any) error {
	format, err := printer.ParseFormat(o.Output)
	if err != nil {
		return err
	}
	return printer.Print(o.Out, format, v)
}
