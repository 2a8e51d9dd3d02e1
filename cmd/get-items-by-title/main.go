// Command get-items-by-title is the Lambda function that returns all movies with a title from the title index.
package main

import (
	"github.com/jacentio/movietable/api"
	"github.com/jacentio/movietable/internal/lambdamain"
)

func main() {
	lambdamain.Run(func(h *api.Handler) any { return h.GetItemsByTitle })
}
