package api

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jacentio/movietable/store"
)

// NewFromEnv builds a Handler from AWS_REGION, MOVIE_TABLE and TITLE_INDEX.
// Call it once per process, outside the Lambda handler.
func NewFromEnv(ctx context.Context, logger *slog.Logger) (*Handler, error) {
	cfg := store.ConfigFromEnv()

	client, err := store.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("movies: init dynamodb client: %w", err)
	}

	return NewHandler(store.New(client, cfg), logger), nil
}
