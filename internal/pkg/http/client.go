package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmpt/absensi/internal/pkg/constants"
	"github.com/dmpt/absensi/internal/pkg/logger"
	"github.com/dmpt/absensi/internal/pkg/models"
	"github.com/dmpt/absensi/internal/pkg/notify"
	"github.com/dmpt/absensi/internal/pkg/session"
	"github.com/dmpt/absensi/internal/utils"
	"github.com/google/uuid"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 30 * time.Second
	// RequestIDHeader is sent with every request so backend logs can be correlated
	RequestIDHeader = "X-Request-ID"
)

// Config holds the client configuration
type Config struct {
	BaseURL  string
	AssetURL string
	Timeout  time.Duration
}

// Client calls the backend REST API with the session's bearer token and reports
// every failure through the notifier before returning it.
type Client struct {
	baseURL    string
	assetURL   string
	httpClient *nethttp.Client
	session    *session.Session
	notifier   notify.Notifier
}

// operation describes one of the client verbs and the message shown when it fails
type operation struct {
	name    string
	method  string
	failMsg string
}

var (
	opGet      = operation{name: "get", method: nethttp.MethodGet, failMsg: notify.MsgFetchFailed}
	opPost     = operation{name: "post", method: nethttp.MethodPost, failMsg: notify.MsgSendFailed}
	opPut      = operation{name: "put", method: nethttp.MethodPut, failMsg: notify.MsgUpdateFailed}
	opDelete   = operation{name: "delete", method: nethttp.MethodDelete, failMsg: notify.MsgDeleteFailed}
	opPostForm = operation{name: "postForm", method: nethttp.MethodPost, failMsg: notify.MsgUploadFailed}
	opPutForm  = operation{name: "putForm", method: nethttp.MethodPut, failMsg: notify.MsgUpdateFileFail}
)

// NewClient creates a new HTTP client. sess and notifier may be nil, in which case
// requests are anonymous and failures are only logged.
func NewClient(config Config, sess *session.Session, notifier notify.Notifier) *Client {
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	return &Client{
		baseURL:  strings.TrimRight(config.BaseURL, "/"),
		assetURL: strings.TrimRight(config.AssetURL, "/"),
		httpClient: &nethttp.Client{
			Timeout: config.Timeout,
		},
		session:  sess,
		notifier: notifier,
	}
}

// NewClientFromConfig creates a client for the backend described by cfg. The REST
// API lives under /api of the backend root.
func NewClientFromConfig(cfg models.APIConfig, sess *session.Session, notifier notify.Notifier) *Client {
	return NewClient(Config{
		BaseURL:  strings.TrimRight(cfg.BaseURL, "/") + "/api",
		AssetURL: cfg.AssetURL,
		Timeout:  time.Duration(cfg.Timeout) * time.Second,
	}, sess, notifier)
}

// RequestOption customizes a single request
type RequestOption func(*requestOptions)

type requestOptions struct {
	headers map[string]string
	query   url.Values
}

// WithHeader sets a header, overriding the client defaults
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		o.headers[key] = value
	}
}

// WithHeaders sets several headers, overriding the client defaults
func WithHeaders(headers map[string]string) RequestOption {
	return func(o *requestOptions) {
		for k, v := range headers {
			o.headers[k] = v
		}
	}
}

// WithQuery adds a query string parameter
func WithQuery(key, value string) RequestOption {
	return func(o *requestOptions) {
		o.query.Add(key, value)
	}
}

// WithListParams adds the non-zero listing filters as query parameters
func WithListParams(p models.ListParams) RequestOption {
	return func(o *requestOptions) {
		if p.Page > 0 {
			o.query.Set(constants.QueryPage, strconv.Itoa(p.Page))
		}
		if p.PerPage > 0 {
			o.query.Set(constants.QueryPerPage, strconv.Itoa(p.PerPage))
		}
		if p.Search != "" {
			o.query.Set(constants.QuerySearch, p.Search)
		}
		if p.Status != "" {
			o.query.Set(constants.QueryStatus, p.Status)
		}
	}
}

// Get performs a GET request and decodes the envelope data into result
func (c *Client) Get(ctx context.Context, endpoint string, result interface{}, opts ...RequestOption) (*models.Response, error) {
	return c.envelope(ctx, opGet, endpoint, nil, result, opts)
}

// Post performs a POST request with a JSON body
func (c *Client) Post(ctx context.Context, endpoint string, body, result interface{}, opts ...RequestOption) (*models.Response, error) {
	return c.envelope(ctx, opPost, endpoint, body, result, opts)
}

// Put performs a PUT request with a JSON body
func (c *Client) Put(ctx context.Context, endpoint string, body, result interface{}, opts ...RequestOption) (*models.Response, error) {
	return c.envelope(ctx, opPut, endpoint, body, result, opts)
}

// Delete performs a DELETE request
func (c *Client) Delete(ctx context.Context, endpoint string, result interface{}, opts ...RequestOption) (*models.Response, error) {
	return c.envelope(ctx, opDelete, endpoint, nil, result, opts)
}

// PostForm performs a multipart POST request
func (c *Client) PostForm(ctx context.Context, endpoint string, form *Form, result interface{}, opts ...RequestOption) (*models.Response, error) {
	return c.envelope(ctx, opPostForm, endpoint, form, result, opts)
}

// PutForm performs a multipart PUT request
func (c *Client) PutForm(ctx context.Context, endpoint string, form *Form, result interface{}, opts ...RequestOption) (*models.Response, error) {
	return c.envelope(ctx, opPutForm, endpoint, form, result, opts)
}

// PostRaw performs a POST request like Post but decodes the whole body into out.
// It is meant for endpoints that do not answer with the response envelope.
func (c *Client) PostRaw(ctx context.Context, endpoint string, body, out interface{}, opts ...RequestOption) error {
	return c.call(ctx, opPost, endpoint, body, opts, func(raw []byte) error {
		if out == nil || len(raw) == 0 {
			return nil
		}
		return json.Unmarshal(raw, out)
	})
}

// AssetURL returns the public URL of an uploaded asset
func (c *Client) AssetURL(path string) string {
	return c.assetURL + "/" + path
}

func (c *Client) envelope(ctx context.Context, op operation, endpoint string, body, result interface{}, opts []RequestOption) (*models.Response, error) {
	var resp models.Response
	err := c.call(ctx, op, endpoint, body, opts, func(raw []byte) error {
		if err := json.Unmarshal(raw, &resp); err != nil {
			return err
		}
		return resp.Decode(result)
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// call runs the request and notifies the user exactly once if it fails
func (c *Client) call(ctx context.Context, op operation, endpoint string, body interface{}, opts []RequestOption, decode func([]byte) error) error {
	err := c.do(ctx, op, endpoint, body, opts, decode)
	if err != nil {
		c.notifyFailure(op, err)
	}
	return err
}

func (c *Client) do(ctx context.Context, op operation, endpoint string, body interface{}, opts []RequestOption, decode func([]byte) error) error {
	req, err := c.newRequest(ctx, op.method, endpoint, body, opts)
	if err != nil {
		return err
	}

	logger.Debug("Making HTTP request",
		logger.String("operation", op.name),
		logger.String("method", req.Method),
		logger.String("url", req.URL.String()),
		logger.String("request_id", req.Header.Get(RequestIDHeader)),
		logger.Bool("has_token", req.Header.Get("Authorization") != ""))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("HTTP request failed",
			logger.String("operation", op.name),
			logger.String("url", req.URL.String()),
			logger.Err(err))
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	logger.Debug("HTTP request completed",
		logger.String("operation", op.name),
		logger.String("url", req.URL.String()),
		logger.Int("status_code", resp.StatusCode),
		logger.Duration("latency", time.Since(start)))

	return c.handleResponse(ctx, resp.StatusCode, raw, decode)
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, body interface{}, opts []RequestOption) (*nethttp.Request, error) {
	o := requestOptions{headers: map[string]string{}, query: url.Values{}}
	for _, opt := range opts {
		opt(&o)
	}

	target, err := c.buildURL(endpoint, o.query)
	if err != nil {
		return nil, err
	}

	headers := map[string]string{}

	var reqBody io.Reader
	switch payload := body.(type) {
	case nil:
		headers["Content-Type"] = "application/json"
		headers["Accept"] = "application/json"
	case *Form:
		if payload == nil {
			payload = NewForm()
		}
		buf, contentType, err := payload.encode()
		if err != nil {
			return nil, err
		}
		reqBody = buf
		headers["Content-Type"] = contentType
	default:
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
		headers["Content-Type"] = "application/json"
		headers["Accept"] = "application/json"
	}

	if token := c.token(); token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	headers[RequestIDHeader] = uuid.NewString()

	for k, v := range o.headers {
		headers[k] = v
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func (c *Client) buildURL(endpoint string, query url.Values) (string, error) {
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}

	u, err := url.Parse(c.baseURL + endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}

	if len(query) > 0 {
		q := u.Query()
		for k, vs := range query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}

// handleResponse turns the status code into an error or decodes the body
func (c *Client) handleResponse(ctx context.Context, statusCode int, raw []byte, decode func([]byte) error) error {
	if statusCode == nethttp.StatusUnauthorized {
		c.notify(notify.MsgSessionExpired)
		if c.session != nil {
			// the session must be cleared even when the caller's context is already done
			if err := c.session.Expire(context.WithoutCancel(ctx)); err != nil {
				logger.Error("Failed to clear expired session", logger.Err(err))
			}
		}
		return &HTTPError{StatusCode: statusCode, Message: unauthorizedMessage}
	}

	if statusCode < 200 || statusCode >= 300 {
		return &HTTPError{StatusCode: statusCode, Message: errorMessage(raw)}
	}

	if err := decode(raw); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) notifyFailure(op operation, err error) {
	// the 401 path has already told the user their session expired
	if errors.Is(err, ErrUnauthorized) {
		return
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		c.notify(httpErr.Message)
		return
	}
	c.notify(op.failMsg)
}

func (c *Client) notify(msg string) {
	if c.notifier != nil {
		c.notifier.Error(msg)
	}
}

func (c *Client) token() string {
	if c.session == nil {
		return ""
	}
	token := c.session.Token()
	if token != "" {
		logger.Debug("Attaching bearer token", logger.String("token", utils.MaskToken(token)))
	}
	return token
}

func errorMessage(raw []byte) string {
	var body models.ErrorBody
	if err := json.Unmarshal(raw, &body); err != nil || body.Message == "" {
		return defaultErrorMessage
	}
	return body.Message
}
