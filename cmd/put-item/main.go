// Command put-item is the Lambda function that creates or replaces a movie.
package main

import (
	"github.com/jacentio/movietable/api"
	"github.com/jacentio/movietable/internal/lambdamain"
)

func main() {
	lambdamain.Run(func(h *api.Handler) any { return h.PutItem })
}
