package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	apihttp "github.com/justchokingaround/morty/internal/api/http"
	"github.com/justchokingaround/morty/internal/config"
)

// Client is the gateway to the remote character API.
// Every call makes exactly one network attempt; failures are returned, never retried.
type Client struct {
	endpoint   string
	httpClient *apihttp.Client
	logger     *slog.Logger
}

// NewClient creates a gateway from the API section of cfg
func NewClient(cfg *config.Config, logger *slog.Logger) *Client {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}

	httpClient := apihttp.NewClient(apihttp.ClientConfig{
		Timeout:   cfg.API.Timeout,
		UserAgent: cfg.API.UserAgent,
		Debug:     cfg.Advanced.Debug,
		Logger:    logger,
	})

	return &Client{
		endpoint:   cfg.API.Endpoint,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Characters fetches one page of characters
func (c *Client) Characters(ctx context.Context, req Request) (*CharacterPage, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}

	var data charactersData
	if err := c.query(ctx, BuildCharactersRequest(page, req.Filter), &data); err != nil {
		return nil, err
	}
	return data.toPage(page), nil
}

// Character fetches the detail of one character, including its episodes
func (c *Client) Character(ctx context.Context, id string) (*CharacterDetail, error) {
	gql := BuildCharacterRequest(id)

	var data characterData
	if err := c.query(ctx, gql, &data); err != nil {
		return nil, err
	}
	if data.Character == nil {
		return nil, &FetchError{
			Kind:    KindProtocol,
			Op:      gql.OperationName,
			Message: fmt.Sprintf("character %s not found", id),
		}
	}
	return data.Character, nil
}

type envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

type gqlError struct {
	Message string `json:"message"`
}

// query posts gql and decodes the data member of the envelope into result
func (c *Client) query(ctx context.Context, gql GraphQLRequest, result interface{}) error {
	requestID := uuid.NewString()
	log := c.logger.With("op", gql.OperationName, "request_id", requestID)
	log.Debug("graphql request", "variables", gql.Variables)

	resp, err := c.httpClient.Post(ctx, c.endpoint, gql, map[string]string{"X-Request-ID": requestID})
	if err != nil {
		fe := classifyTransport(gql.OperationName, err)
		log.Warn("graphql request failed", "kind", fe.Kind, "error", fe.Message)
		return fe
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		log.Warn("graphql response is not JSON", "error", err)
		return &FetchError{Kind: KindDecode, Op: gql.OperationName, Message: "response is not valid JSON", Err: err}
	}

	if len(env.Errors) > 0 {
		msg := env.Errors[0].Message
		if msg == "" {
			msg = "GraphQL error"
		}
		log.Warn("graphql error", "message", msg, "count", len(env.Errors))
		return &FetchError{Kind: KindProtocol, Op: gql.OperationName, Message: msg}
	}

	if len(env.Data) == 0 || string(env.Data) == "null" {
		return &FetchError{Kind: KindDecode, Op: gql.OperationName, Message: "response has no data"}
	}

	if err := json.Unmarshal(env.Data, result); err != nil {
		log.Warn("graphql data has unexpected shape", "error", err)
		return &FetchError{Kind: KindDecode, Op: gql.OperationName, Message: err.Error(), Err: err}
	}

	return nil
}

// classifyTransport turns an HTTP-layer error into a transport FetchError,
// surfacing the first GraphQL error message of an error body when there is one
func classifyTransport(op string, err error) *FetchError {
	fe := &FetchError{Kind: KindTransport, Op: op, Err: err}

	var statusErr *apihttp.StatusError
	if !errors.As(err, &statusErr) {
		fe.Message = err.Error()
		return fe
	}

	fe.StatusCode = statusErr.StatusCode
	var env envelope
	if json.Unmarshal(statusErr.Body, &env) == nil && len(env.Errors) > 0 && env.Errors[0].Message != "" {
		fe.Message = env.Errors[0].Message
		return fe
	}

	body := strings.TrimSpace(string(statusErr.Body))
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	if body == "" {
		body = "empty body"
	}
	fe.Message = body
	return fe
}
