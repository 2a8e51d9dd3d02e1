// Package lambdamain holds the startup shared by the Lambda binaries.
package lambdamain

import (
	"context"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/jacentio/movietable/api"
)

// Run configures JSON logging, builds the handler from the environment and
// starts the Lambda loop with the handler method picked by pick.
func Run(pick func(*api.Handler) any) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	h, err := api.NewFromEnv(context.Background(), logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}

	lambda.Start(pick(h))
}
