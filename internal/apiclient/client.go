// Package apiclient is the session-aware HTTP client for the authentication
// backend. Every call reads the current token from the token store, sends it
// as the Authorization header and normalizes failures into *RequestError.
package apiclient

import (
	"context"
	"encoding/json"
	"net/textproto"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"authfront/internal/logger"
)

const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderRequestID     = "X-Request-Id"

	contentTypeJSON = "application/json"
)

// TokenSource yields the current session token. tokenstore.Store satisfies it.
type TokenSource interface {
	Retrieve(ctx context.Context) (token string, ok bool, err error)
}

// Options describes one request. Headers override the defaults by
// case-insensitive name. Body may be nil, []byte, string, json.RawMessage or
// any JSON-encodable value.
type Options struct {
	Method  string
	Headers map[string]string
	Body    any
}

type Client struct {
	baseURL string
	tokens  TokenSource
	http    *fasthttp.Client
	timeout time.Duration
	log     *zap.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the underlying fasthttp client.
func WithHTTPClient(hc *fasthttp.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout bounds each call. Zero leaves the transport's own behavior.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New returns a client for baseURL. An empty baseURL is a configuration error.
func New(baseURL string, tokens TokenSource, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}
	c := &Client{
		baseURL: baseURL,
		tokens:  tokens,
		http:    &fasthttp.Client{Name: "authfront"},
		log:     logger.Named("apiclient"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request performs one call against endpoint, a path relative to the base URL.
// Every error it returns is a *RequestError.
func (c *Client) Request(ctx context.Context, endpoint string, opts Options) (*Response, error) {
	method := strings.ToUpper(strings.TrimSpace(opts.Method))
	if method == "" {
		method = fasthttp.MethodGet
	}
	requestID := uuid.NewString()
	log := logger.FromOr(ctx, c.log).With(logger.RequestID(requestID), logger.Method(method), logger.Path(endpoint))

	fail := func(kind Kind, status int, msg string, err error) *RequestError {
		return &RequestError{Kind: kind, StatusCode: status, Message: msg, Method: method, Endpoint: endpoint, Err: err}
	}

	headers := map[string]string{
		HeaderContentType: contentTypeJSON,
		HeaderRequestID:   requestID,
	}
	if c.tokens != nil {
		token, ok, err := c.tokens.Retrieve(ctx)
		if err != nil {
			reqErr := fail(KindStore, 0, "could not read session token", err)
			log.Error("API error", zap.String("detail", reqErr.Detail()))
			return nil, reqErr
		}
		if ok && token != "" {
			headers[HeaderAuthorization] = token
		}
	}
	for k, v := range opts.Headers {
		headers[textproto.CanonicalMIMEHeaderKey(k)] = v
	}

	body, err := encodeBody(opts.Body)
	if err != nil {
		return nil, fail(KindEncode, 0, "could not encode request body", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fail(KindTransport, 0, DefaultFailureMessage, err)
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.url(endpoint))
	req.Header.SetMethod(method)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if body != nil {
		req.SetBody(body)
	}

	start := time.Now()
	if err := c.do(ctx, req, resp); err != nil {
		reqErr := fail(KindTransport, 0, DefaultFailureMessage, err)
		log.Error("API error", zap.String("detail", reqErr.Detail()))
		return nil, reqErr
	}

	status := resp.StatusCode()
	respBody := append([]byte(nil), resp.Body()...)
	contentType := string(resp.Header.ContentType())
	log = log.With(logger.Status(status), logger.Duration(time.Since(start)))

	if status < 200 || status > 299 {
		msg := string(respBody)
		if strings.TrimSpace(msg) == "" {
			msg = DefaultFailureMessage
		}
		reqErr := fail(KindStatus, status, msg, nil)
		log.Warn("API error", zap.String("detail", reqErr.Detail()))
		return nil, reqErr
	}

	out := &Response{StatusCode: status, ContentType: contentType, Body: respBody}
	if isJSON(contentType) {
		if len(strings.TrimSpace(string(respBody))) == 0 {
			out.Data = map[string]any{}
		} else if err := json.Unmarshal(respBody, &out.Data); err != nil {
			reqErr := fail(KindDecode, status, "could not parse JSON response", err)
			log.Error("API error", zap.String("detail", reqErr.Detail()))
			return nil, reqErr
		}
	}
	log.Debug("API request completed")
	return out, nil
}

// fasthttp has no context support; a context deadline becomes the call deadline.
func (c *Client) do(ctx context.Context, req *fasthttp.Request, resp *fasthttp.Response) error {
	if deadline, ok := ctx.Deadline(); ok {
		return c.http.DoDeadline(req, resp, deadline)
	}
	if c.timeout > 0 {
		return c.http.DoTimeout(req, resp, c.timeout)
	}
	return c.http.Do(req, resp)
}

func (c *Client) url(endpoint string) string {
	return c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
}

func encodeBody(body any) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return b, nil
	case json.RawMessage:
		return b, nil
	case string:
		return []byte(b), nil
	default:
		return json.Marshal(b)
	}
}
