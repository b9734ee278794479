package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Verdier/homey-mcp-server/pkg/db"
	"github.com/Verdier/homey-mcp-server/pkg/homey"
	"github.com/Verdier/homey-mcp-server/pkg/mcp"
)

func main() {
	// Logging must go to stderr — stdout is the JSON-RPC transport
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Parse flags
	dbPath := flag.String("db", "", "Path to database file (default: ~/.config/homey-mcp/homey-mcp.db)")
	baseURL := flag.String("base-url", "", "Homey base URL (overrides the stored config)")
	token := flag.String("token", "", "Homey bearer token (overrides the stored config)")
	strictInputs := flag.Bool("strict-inputs", false, "Validate tool arguments against their declared input schemas")
	flag.Parse()

	ctx := context.Background()

	// Open database
	database, err := db.Open(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
	}()

	log.Info().Str("path", database.Path()).Msg("Database opened")

	// Run migrations
	if err := database.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Bootstrap if needed (first run)
	needsBootstrap, err := database.NeedsBootstrap(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to check bootstrap status")
	}
	if needsBootstrap {
		log.Info().Msg("First run detected, bootstrapping database...")
		if err := database.Bootstrap(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to bootstrap database")
		}
		log.Info().Msg("Database bootstrapped successfully")
	}

	// Load configuration
	cfg, err := database.ActiveConfig(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	provider := buildProvider(cfg, *baseURL, *token)
	server := mcp.Initialize(provider, mcp.WithStrictInputs(*strictInputs))

	log.Info().Str("profile", cfg.Profile.Name).Msg("Starting MCP server on stdio")

	if err := server.ServeStdio(ctx, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("MCP server failed")
	}
}

// buildProvider connects to the configured Homey, falling back to the
// NullProvider when no usable connection settings exist.
func buildProvider(cfg *db.Config, baseURL, token string) homey.Provider {
	if baseURL == "" {
		baseURL = cfg.HomeyBaseURL()
	}
	if token == "" {
		token = cfg.HomeyToken()
	}

	if baseURL == "" || token == "" {
		log.Warn().Msg("Homey connection not configured, using null provider")
		return homey.NewNullProvider()
	}

	client, err := homey.NewClient(homey.ClientConfig{
		BaseURL: baseURL,
		Token:   token,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	})
	if err != nil {
		log.Warn().Err(err).Str("base_url", baseURL).Msg("Homey client unavailable, using null provider")
		return homey.NewNullProvider()
	}

	log.Info().Str("base_url", baseURL).Msg("Homey client configured")
	return client
}
