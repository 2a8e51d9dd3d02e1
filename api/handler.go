// Package api provides the API Gateway Lambda handlers for the movie table.
package api

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/aws/smithy-go"

	"github.com/jacentio/movietable/internal/key"
	"github.com/jacentio/movietable/store"
)

// ItemStore is the store surface used by the handlers. *store.Store implements it.
type ItemStore interface {
	Config() store.Config
	Get(ctx context.Context, k key.Key) (store.Item, error)
	QueryByTitle(ctx context.Context, title string) ([]store.Item, error)
	ScanAll(ctx context.Context) ([]store.Item, error)
	Put(ctx context.Context, item store.Item) error
	Delete(ctx context.Context, k key.Key) error
}

var _ ItemStore = (*store.Store)(nil)

// Handler serves the five movie table operations. Each method is a
// standalone Lambda handler for an API Gateway proxy integration.
type Handler struct {
	store  ItemStore
	logger *slog.Logger
}

// NewHandler creates a new handler.
func NewHandler(s ItemStore, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		store:  s,
		logger: logger,
	}
}

// GetItemByKey returns the item identified by the year and title path
// parameters.
func (h *Handler) GetItemByKey(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	const op = "GetItemByKey"
	if err := h.begin(ctx, op, http.MethodGet, req); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	k := key.FromPath(req.PathParameters)
	h.logger.InfoContext(ctx, "get item", "year", k.Year, "title", k.Title)

	var res result
	if item, err := h.store.Get(ctx, k); err != nil {
		res = failed(classify(err, storeStatus(http.StatusBadRequest)))
	} else {
		res = ok(item)
	}
	return h.finish(ctx, op, res, nil), nil
}

// GetItemsByTitle returns every item with the title path parameter,
// regardless of year. No match is an empty list.
func (h *Handler) GetItemsByTitle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	const op = "GetItemsByTitle"
	if err := h.begin(ctx, op, http.MethodGet, req); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	title := key.DecodeTitle(req.PathParameters[key.TitleAttr])
	h.logger.InfoContext(ctx, "query by title",
		"index", h.store.Config().TitleIndex,
		"title", title,
	)

	var res result
	if items, err := h.store.QueryByTitle(ctx, title); err != nil {
		res = failed(classify(err, fixedStatus(http.StatusBadRequest)))
	} else {
		res = ok(items)
	}
	return h.finish(ctx, op, res, corsHeaders()), nil
}

// GetItems returns the items of one scan over the whole table.
func (h *Handler) GetItems(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	const op = "GetItems"
	if err := h.begin(ctx, op, http.MethodGet, req); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	var res result
	if items, err := h.store.ScanAll(ctx); err != nil {
		res = failed(classify(err, fixedStatus(http.StatusBadRequest)))
	} else {
		res = ok(items)
	}
	return h.finish(ctx, op, res, corsHeaders()), nil
}

// putRequest is the PUT body. Pointers detect missing key fields.
type putRequest struct {
	Year  *int           `json:"year"`
	Title *string        `json:"title"`
	Info  map[string]any `json:"info"`
}

// PutItem creates or fully replaces the item in the request body.
func (h *Handler) PutItem(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	const op = "PutItem"
	if err := h.begin(ctx, op, http.MethodPut, req); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	item, f := decodePutBody(req)
	if f != nil {
		return h.finish(ctx, op, failed(f), nil), nil
	}

	var res result
	if err := h.store.Put(ctx, item); err != nil {
		res = failed(classify(err, storeStatus(http.StatusInternalServerError)))
	} else {
		res = ok(fmt.Sprintf("Put item %d, %s", item.Year, item.Title))
	}
	return h.finish(ctx, op, res, nil), nil
}

// DeleteItem removes the item identified by the year and title path
// parameters. Deleting a missing item succeeds.
func (h *Handler) DeleteItem(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	const op = "DeleteItem"
	if err := h.begin(ctx, op, http.MethodDelete, req); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	k := key.FromPath(req.PathParameters)
	h.logger.InfoContext(ctx, "delete item", "year", k.Year, "title", k.Title)

	var res result
	if err := h.store.Delete(ctx, k); err != nil {
		res = failed(classify(err, storeStatus(http.StatusInternalServerError)))
	} else {
		res = ok("Deleted item " + k.String())
	}
	return h.finish(ctx, op, res, nil), nil
}

func decodePutBody(req events.APIGatewayProxyRequest) (store.Item, *Failure) {
	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return store.Item{}, &Failure{Kind: KindDecodeFailure, StatusCode: http.StatusBadRequest, Message: "Request body is not valid base64", Err: err}
		}
		body = decoded
	}

	var in putRequest
	if err := json.Unmarshal(body, &in); err != nil {
		return store.Item{}, &Failure{Kind: KindDecodeFailure, StatusCode: http.StatusBadRequest, Message: "Request body is not a valid item", Err: err}
	}
	if in.Year == nil || in.Title == nil {
		return store.Item{}, &Failure{Kind: KindDecodeFailure, StatusCode: http.StatusBadRequest, Message: "Request body requires year and title"}
	}

	return store.Item{
		Year:  *in.Year,
		Title: *in.Title,
		Info:  in.Info,
	}, nil
}

// begin logs the request and rejects the wrong HTTP verb before any store call.
func (h *Handler) begin(ctx context.Context, op, method string, req events.APIGatewayProxyRequest) error {
	cfg := h.store.Config()
	h.logger.InfoContext(ctx, "received request",
		"op", op,
		"requestID", requestID(ctx),
		"method", req.HTTPMethod,
		"path", req.Path,
		"pathParameters", req.PathParameters,
		"table", cfg.TableName,
		"region", cfg.Region,
	)

	if req.HTTPMethod == method {
		return nil
	}

	f := &Failure{
		Kind:       KindMethodMismatch,
		StatusCode: http.StatusMethodNotAllowed,
		Message:    fmt.Sprintf("%s only accepts %s method, you tried: %s", op, method, req.HTTPMethod),
	}
	h.logger.ErrorContext(ctx, "rejected request", "op", op, "kind", f.Kind.String(), "error", f.Message)
	return f
}

// finish logs any failure and encodes the response.
func (h *Handler) finish(ctx context.Context, op string, res result, headers map[string]string) events.APIGatewayProxyResponse {
	if res.failure != nil {
		h.logFailure(ctx, op, res.failure)
	}

	resp := res.encode(headers)
	h.logger.InfoContext(ctx, "about to return",
		"op", op,
		"status", resp.StatusCode,
		"body", resp.Body,
	)
	return resp
}

func (h *Handler) logFailure(ctx context.Context, op string, f *Failure) {
	attrs := []any{
		"op", op,
		"kind", f.Kind.String(),
		"status", f.StatusCode,
		"error", f.Err,
	}

	var opErr *smithy.OperationError
	if errors.As(f.Err, &opErr) {
		attrs = append(attrs, "service", opErr.Service(), "operation", opErr.Operation())
	}
	var apiErr smithy.APIError
	if errors.As(f.Err, &apiErr) {
		attrs = append(attrs, "code", apiErr.ErrorCode(), "fault", apiErr.ErrorFault().String())
	}

	h.logger.ErrorContext(ctx, f.Message, attrs...)
}

func requestID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		return lc.AwsRequestID
	}
	return ""
}
