package db

import (
	"context"
	"errors"
	"fmt"
)

var ErrNoActiveProfile = errors.New("no active profile found")

// Config represents the complete runtime configuration loaded from the database.
type Config struct {
	Profile   *Profile
	Homey     *Homey
	APIServer *APIServer
}

// APIAddress returns the API server listen address.
func (c *Config) APIAddress() string {
	if c.APIServer == nil {
		return "0.0.0.0:8080"
	}
	return c.APIServer.Address()
}

// HomeyBaseURL returns the configured Homey base URL, empty if none.
func (c *Config) HomeyBaseURL() string {
	if c.Homey == nil {
		return ""
	}
	return c.Homey.BaseURL
}

// HomeyToken returns the configured Homey bearer token, empty if none.
func (c *Config) HomeyToken() string {
	if c.Homey == nil {
		return ""
	}
	return c.Homey.Token
}

// ActiveConfig loads the complete configuration for the active profile.
func (db *DB) ActiveConfig(ctx context.Context) (*Config, error) {
	// Get active profile
	profile, err := db.Profiles().GetActive(ctx)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, ErrNoActiveProfile
		}
		return nil, fmt.Errorf("failed to get active profile: %w", err)
	}

	config := &Config{
		Profile: profile,
	}

	// Get Homey connection config
	homeyCfg, err := db.Homeys().Get(ctx, profile.ID)
	if err != nil && !errors.Is(err, ErrHomeyNotFound) {
		return nil, fmt.Errorf("failed to get Homey config: %w", err)
	}
	config.Homey = homeyCfg

	// Get API server config
	apiServer, err := db.APIServers().Get(ctx, profile.ID)
	if err != nil && !errors.Is(err, ErrAPIServerNotFound) {
		return nil, fmt.Errorf("failed to get API server config: %w", err)
	}
	config.APIServer = apiServer

	return config, nil
}
