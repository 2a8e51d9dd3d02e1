// Command delete-item is the Lambda function that deletes a movie by year and title.
package main

import (
	"github.com/jacentio/movietable/api"
	"github.com/jacentio/movietable/internal/lambdamain"
)

func main() {
	lambdamain.Run(func(h *api.Handler) any { return h.DeleteItem })
}
