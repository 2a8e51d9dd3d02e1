// Command get-items is the Lambda function that scans the whole movie table.
package main

import (
	"github.com/jacentio/movietable/api"
	"github.com/jacentio/movietable/internal/lambdamain"
)

func main() {
	lambdamain.Run(func(h *api.Handler) any { return h.GetItems })
}
