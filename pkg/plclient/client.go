// Package plclient provides the main entry point for creating Paperless API clients
package plclient

import (
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/paperstack-io/paperless-client/internal/client"
	"github.com/paperstack-io/paperless-client/pkg/paperless"
)

// New creates a new Paperless API client from a configuration.
func New(config *paperless.Config) (paperless.Client, error) {
	if config == nil {
		return nil, paperless.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, paperless.ErrBaseURLRequired
	}

	// Normalize a copy; the caller's config is left untouched.
	cfg := *config

	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	cfg.BaseURL = baseURL

	if cfg.Logger == nil {
		cfg.Logger = defaultLogger(cfg.Debug)
	}

	return client.New(&cfg)
}

// NewWithToken creates a new client authenticating with an API token.
func NewWithToken(baseURL, token string) (paperless.Client, error) {
	return New(&paperless.Config{
		BaseURL: baseURL,
		Token:   token,
	})
}

// NewWithBasicAuth creates a new client authenticating with HTTP basic
// credentials.
func NewWithBasicAuth(baseURL, username, password string) (paperless.Client, error) {
	return New(&paperless.Config{
		BaseURL:  baseURL,
		Username: username,
		Password: password,
	})
}

func defaultLogger(debug bool) paperless.Logger {
	level := hclog.Info
	if debug {
		level = hclog.Debug
	}

	return &hclogAdapter{logger: hclog.New(&hclog.LoggerOptions{
		Name:  "paperless-client",
		Level: level,
	})}
}

// hclogAdapter bridges hclog to the paperless.Logger interface.
type hclogAdapter struct {
	logger hclog.Logger
}

func (a *hclogAdapter) Debug(msg string, fields map[string]interface{}) {
	a.logger.Debug(msg, flatten(fields)...)
}

func (a *hclogAdapter) Info(msg string, fields map[string]interface{}) {
	a.logger.Info(msg, flatten(fields)...)
}

func (a *hclogAdapter) Warn(msg string, fields map[string]interface{}) {
	a.logger.Warn(msg, flatten(fields)...)
}

func (a *hclogAdapter) Error(msg string, fields map[string]interface{}) {
	a.logger.Error(msg, flatten(fields)...)
}

func flatten(fields map[string]interface{}) []interface{} {
	args := make([]interface{}, 0, len(fields)*2)
	for key, value := range fields {
		args = append(args, key, value)
	}

	return args
}
