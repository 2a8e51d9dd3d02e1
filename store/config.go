package store

import (
	"os"
	"strings"
)

const (
	envRegion     = "AWS_REGION"
	envTable      = "MOVIE_TABLE"
	envTitleIndex = "TITLE_INDEX"

	defaultTableName  = "MovieTable"
	defaultTitleIndex = "MovieTitleIndex"
)

// Config holds configuration for the Store.
type Config struct {
	// Region is the AWS region of the table. Empty lets the SDK resolve it
	// from the shared config chain.
	Region string

	// TableName is the name of the movie table.
	// Default: "MovieTable"
	TableName string

	// TitleIndex is the global secondary index keyed by title.
	// Only QueryByTitle uses it.
	// Default: "MovieTitleIndex"
	TitleIndex string
}

// DefaultConfig returns the configuration of the stock movie table.
func DefaultConfig() Config {
	return Config{
		TableName:  defaultTableName,
		TitleIndex: defaultTitleIndex,
	}
}

// ConfigFromEnv reads AWS_REGION, MOVIE_TABLE and TITLE_INDEX.
// Unset variables fall back to DefaultConfig values.
func ConfigFromEnv() Config {
	cfg := Config{
		Region:     strings.TrimSpace(os.Getenv(envRegion)),
		TableName:  strings.TrimSpace(os.Getenv(envTable)),
		TitleIndex: strings.TrimSpace(os.Getenv(envTitleIndex)),
	}
	cfg.validate()
	return cfg
}

// validate fills in defaults for empty values.
func (c *Config) validate() {
	if c.TableName == "" {
		c.TableName = defaultTableName
	}
	if c.TitleIndex == "" {
		c.TitleIndex = defaultTitleIndex
	}
}
