package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"ligabet/database"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken string
	GuildID      string // Primary Discord guild ID

	// Database configuration
	DatabaseURL  string
	DatabaseName string

	// Bot configuration
	StartingBalance int64

	// Odds configuration
	LeagueMargin float64 // Bookmaker margin applied on league matches
	CupMargin    float64 // Bookmaker margin applied on knockout cup matches

	// Admin configuration
	AdminDiscordIDs []int64 // Discord IDs allowed to run match administration commands

	// Auto-play configuration
	AutoPlayIntervalMinutes int // How often the scheduler finishes due matches (0 disables)

	// NATS configuration
	NATSServers string // NATS server addresses (comma-separated)

	// Announcement configuration
	ResultsChannelID string // Channel ID where finished match summaries are posted

	// Environment
	Environment string // "development" or "production"
}

var (
	instance *Config
	once     sync.Once
	mu       sync.Mutex // Protects instance for test setup
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	// If instance is already set (e.g., by tests), return it
	if instance != nil {
		return instance
	}

	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			// In test environment, use a default test config instead of panicking
			if os.Getenv("GO_TEST") == "1" || os.Getenv("ENVIRONMENT") == "test" {
				instance = NewTestConfig()
				instance.DiscordToken = "test-token"
			} else {
				panic(fmt.Sprintf("failed to load config: %v", err))
			}
		}
	})
	return instance
}

// GetDatabaseURL constructs the full database URL by combining base URL and database name
func (c *Config) GetDatabaseURL() string {
	return database.ConstructDatabaseURL(c.DatabaseURL, c.DatabaseName)
}

// load loads configuration from environment variables
func load() (*Config, error) {
	// A missing .env file is fine; real deployments set the environment directly
	_ = godotenv.Load()

	config := &Config{
		// Discord
		DiscordToken: os.Getenv("DISCORD_TOKEN"),
		GuildID:      os.Getenv("GUILD_ID"),

		// Database
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),

		// Bot settings with defaults
		StartingBalance: 1000,

		// Odds margins
		LeagueMargin: 0.08,
		CupMargin:    0.05,

		// Auto-play disabled unless configured
		AutoPlayIntervalMinutes: 0,

		// NATS
		NATSServers: getEnvWithDefault("NATS_SERVERS", "nats://nats:4222"),

		// Announcements
		ResultsChannelID: os.Getenv("RESULTS_CHANNEL_ID"),

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Override defaults if environment variables are set
	if balance := os.Getenv("STARTING_BALANCE"); balance != "" {
		if parsedBalance, err := strconv.ParseInt(balance, 10, 64); err == nil {
			config.StartingBalance = parsedBalance
		}
	}
	if interval := os.Getenv("AUTO_PLAY_INTERVAL_MINUTES"); interval != "" {
		if parsed, err := strconv.Atoi(interval); err == nil {
			config.AutoPlayIntervalMinutes = parsed
		}
	}

	// Parse admin Discord IDs
	if adminIDs := os.Getenv("ADMIN_DISCORD_IDS"); adminIDs != "" {
		idStrings := strings.Split(adminIDs, ",")
		for _, idStr := range idStrings {
			idStr = strings.TrimSpace(idStr)
			if idStr != "" {
				if id, err := strconv.ParseInt(idStr, 10, 64); err == nil {
					config.AdminDiscordIDs = append(config.AdminDiscordIDs, id)
				}
			}
		}
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
		// If DatabaseName is provided, ensure it's not empty
		if config.DatabaseName != "" && strings.TrimSpace(config.DatabaseName) == "" {
			return nil, fmt.Errorf("DATABASE_NAME cannot be empty when provided")
		}
	}

	return config, nil
}

// IsAdmin reports whether the given Discord ID may run administration commands.
func (c *Config) IsAdmin(discordID int64) bool {
	for _, id := range c.AdminDiscordIDs {
		if id == discordID {
			return true
		}
	}
	return false
}

// getEnvWithDefault returns the environment variable value or a default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Test helpers - only use in tests

// SetTestConfig overrides the global config instance for testing
// This should only be called from test files
func SetTestConfig(testConfig *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = testConfig
}

// ResetConfig resets the global config instance and sync.Once for testing
// This should only be called from test files
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	once = sync.Once{}
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		Environment:     "test",
		AdminDiscordIDs: []int64{999999, 999991, 999998},
		StartingBalance: 1000,
		LeagueMargin:    0.08,
		CupMargin:       0.05,
	}
}
