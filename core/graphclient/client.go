// Package graphclient is the read client of the hosted GraphQL API.
package graphclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"go.uber.org/zap"

	"github.com/prediqt/sdk-go/core/graphqueries"
	"github.com/prediqt/sdk-go/core/logging"
	"github.com/prediqt/sdk-go/core/types"
)

// HTTPDoer is the part of *http.Client the read client needs.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Request is the JSON body posted to the endpoint.
type Request struct {
	Query string `json:"query"`
}

// Response is the JSON envelope returned by the endpoint. Errors is decoded
// for callers that want it but never acted upon here.
type Response struct {
	Data   map[string]json.RawMessage `json:"data"`
	Errors gqlerror.List              `json:"errors,omitempty"`
}

// StatusError is returned when the endpoint answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("graphql endpoint returned status %d: %s", e.StatusCode, e.Body)
}

// maxErrorBody caps how much of a failed response is kept in StatusError.
const maxErrorBody = 4 << 10

type Client struct {
	url    string
	doer   HTTPDoer
	logger *zap.Logger
}

type Option func(*Client)

// NewClient returns a client posting to url. It performs no I/O.
func NewClient(url string, options ...Option) (*Client, error) {
	c := &Client{
		url:    url,
		doer:   http.DefaultClient,
		logger: logging.Logger,
	}
	for _, option := range options {
		option(c)
	}

	if err := c.Validate(); err != nil {
		return nil, errors.WithStack(err)
	}
	return c, nil
}

func (c *Client) Validate() error {
	if c.url == "" {
		return types.InvalidArgumentf("graphql endpoint url is required")
	}
	if c.doer == nil {
		return types.InvalidArgumentf("http client is required")
	}
	validate := validator.New()
	if err := validate.Var(c.url, "url"); err != nil {
		return types.InvalidArgumentf("graphql endpoint url %q is not a url", c.url)
	}
	return nil
}

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Client) {
		c.doer = doer
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// URL returns the endpoint the client posts to.
func (c *Client) URL() string {
	return c.url
}

// Execute posts query and returns the decoded envelope.
func (c *Client) Execute(ctx context.Context, query string) (*Response, error) {
	body, err := json.Marshal(Request{Query: query})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, errors.WithStack(&StatusError{StatusCode: resp.StatusCode, Body: string(snippet)})
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read graphql response")
	}

	var envelope Response
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, errors.Wrap(err, "failed to decode graphql response")
	}
	return &envelope, nil
}

// Query sends doc and decodes data.<root field> into out. When the root field
// is absent or null, out is left untouched.
func (c *Client) Query(ctx context.Context, doc graphqueries.Document, out any) error {
	c.logger.Debug("graphql query", zap.String("root", doc.RootField()))

	envelope, err := c.Execute(ctx, doc.String())
	if err != nil {
		return err
	}

	raw, ok := envelope.Data[doc.RootField()]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "failed to decode %s", doc.RootField())
	}
	return nil
}
