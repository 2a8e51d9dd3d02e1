package api

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// result is the outcome of one handler invocation before encoding.
type result struct {
	status  int
	body    any
	failure *Failure
}

func ok(body any) result {
	return result{status: http.StatusOK, body: body}
}

func failed(f *Failure) result {
	return result{status: f.StatusCode, body: f.Message, failure: f}
}

// corsHeaders permit unauthenticated GET from any origin. Only the list
// handlers attach them.
func corsHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Headers": "Content-Type,X-Amz-Date,Authorization,X-Api-Key,x-requested-with",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET",
	}
}

// encode serializes the body to JSON text.
func (r result) encode(headers map[string]string) events.APIGatewayProxyResponse {
	status := r.status
	payload, err := json.Marshal(r.body)
	if err != nil {
		status = http.StatusInternalServerError
		payload, _ = json.Marshal("Response could not be encoded")
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       string(payload),
	}
}
