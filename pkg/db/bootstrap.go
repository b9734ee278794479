package db

import (
	"context"
	"fmt"
)

// Default connection settings for a freshly bootstrapped profile. The Homey
// local API is reachable at homey.local on most home networks; the token
// must be filled in by the user before the client can authenticate.
const (
	defaultBaseURL = "http://homey.local"
	defaultAPIHost = "0.0.0.0"
	defaultAPIPort = 8080
)

// Bootstrap initializes the database with default data if it's empty.
// This is called after migrations and handles first-run setup.
func (db *DB) Bootstrap(ctx context.Context) error {
	// Check if any profiles exist
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check profiles: %w", err)
	}

	if count > 0 {
		return nil // Already bootstrapped
	}

	// First run - create defaults
	result, err := db.ExecContext(ctx, `
		INSERT INTO profiles (name, is_active)
		VALUES (?, 1)
	`, "default")
	if err != nil {
		return fmt.Errorf("failed to create default profile: %w", err)
	}

	profileID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get profile ID: %w", err)
	}

	// Create default Homey connection placeholder
	_, err = db.ExecContext(ctx, `
		INSERT INTO homeys (profile_id, base_url, token)
		VALUES (?, ?, '')
	`, profileID, defaultBaseURL)
	if err != nil {
		return fmt.Errorf("failed to create default Homey config: %w", err)
	}

	// Create default API server config
	_, err = db.ExecContext(ctx, `
		INSERT INTO api_servers (profile_id, host, port)
		VALUES (?, ?, ?)
	`, profileID, defaultAPIHost, defaultAPIPort)
	if err != nil {
		return fmt.Errorf("failed to create default API server: %w", err)
	}

	return nil
}

// NeedsBootstrap returns true if the database needs initial setup.
func (db *DB) NeedsBootstrap(ctx context.Context) (bool, error) {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&count)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}
