package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server base URL used by the client.
	HTTPAddress string
	// RequestTimeout is the timeout for every outbound client request.
	RequestTimeout time.Duration
}

// ClientConfig is the configuration of the command-line client, assembled
// from environment variables and defaults. Command-line flags of the client
// are applied on top by the caller.
type ClientConfig struct {
	// APIKey is sent as the "Authorization" header of upload requests.
	APIKey string
	// Adapter contains the server address and timeout.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates the client configuration.
//
// Only environment variables and defaults are consulted: the client parses
// its own command-line flags.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withDefaults().
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		APIKey: cfg.App.APIKey,
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}

	return clientCfg, clientCfg.validate()
}
