package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"auction-client/internal/auctionerrors"
	"auction-client/internal/jsoncodec"
	"auction-client/internal/metrics"
	"auction-client/utils"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	// CSRFCookieName is the cookie the backend issues the anti-forgery token in
	CSRFCookieName = "csrftoken"
	// CSRFHeader echoes the token on every state-changing request
	CSRFHeader = "X-CSRFToken"
	// RequestIDHeader correlates client and server logs
	RequestIDHeader = "X-Request-ID"

	contentTypeJSON = "application/json"
)

// Request describes one API call. Body is nil, a *Form, or any value that
// encodes to JSON. Route is the path template used for metrics and spans;
// it defaults to Path.
type Request struct {
	Method string
	Path   string
	Route  string
	Body   any
}

// Client performs every API exchange. It is safe for concurrent use.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	metrics    *metrics.Transport
	tracer     trace.Tracer
}

// Option configures a Client
type Option func(*Client)

// WithMetrics records per-request metrics on m
func WithMetrics(m *metrics.Transport) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithTracer replaces the global OpenTelemetry tracer
func WithTracer(t trace.Tracer) Option {
	return func(c *Client) {
		c.tracer = t
	}
}

// New creates a Client rooted at baseURL (for example http://localhost:8000/api).
// httpClient should carry a cookie jar; without one no session cookie or
// anti-forgery token is ever sent.
func New(baseURL string, httpClient *http.Client, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("transport: invalid base URL %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("transport: base URL %q must be absolute", baseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	c := &Client{
		baseURL:    u,
		httpClient: httpClient,
		tracer:     otel.Tracer("auction-client/internal/transport"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the API root the client resolves paths against.
func (c *Client) BaseURL() *url.URL {
	u := *c.baseURL
	return &u
}

// Do sends req and decodes a successful JSON response into out (skipped when
// out is nil or the body is empty). Every failure is an *auctionerrors.APIError.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	route := req.Route
	if route == "" {
		route = req.Path
	}

	ctx, span := c.tracer.Start(ctx, method+" "+route, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	body, contentType, err := encodeBody(req.Body)
	if err != nil {
		apiErr := auctionerrors.NewEncodeError(err)
		span.SetStatus(codes.Error, apiErr.Message)
		return apiErr
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.resolve(req.Path), body)
	if err != nil {
		apiErr := auctionerrors.NewNetworkError(err)
		span.SetStatus(codes.Error, apiErr.Message)
		return apiErr
	}

	requestID := utils.GenerateID()
	httpReq.Header.Set("Accept", contentTypeJSON)
	httpReq.Header.Set(RequestIDHeader, requestID)
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if method != http.MethodGet {
		httpReq.Header.Set(CSRFHeader, c.CSRFToken())
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(httpReq.Header))

	span.SetAttributes(
		attribute.String("http.request.method", method),
		attribute.String("url.path", req.Path),
		attribute.String("auction.request_id", requestID),
	)

	fields := map[string]any{
		"method":     method,
		"path":       req.Path,
		"request_id": requestID,
	}
	utils.Debug("transport: sending request", fields)

	var done func(int)
	if c.metrics != nil {
		done = c.metrics.Begin(method, route)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if done != nil {
			done(0)
		}
		apiErr := auctionerrors.NewNetworkError(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, apiErr.Message)
		fields["error"] = err.Error()
		utils.Warn("transport: request failed", fields)
		return apiErr
	}
	defer resp.Body.Close()
	if done != nil {
		done(resp.StatusCode)
	}
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		apiErr := auctionerrors.NewNetworkError(fmt.Errorf("read body: %w", err))
		span.SetStatus(codes.Error, apiErr.Message)
		return apiErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := auctionerrors.NewStatusError(resp.StatusCode, errorDetail(raw))
		span.SetStatus(codes.Error, apiErr.Message)
		fields["status"] = resp.StatusCode
		fields["detail"] = apiErr.Message
		utils.Warn("transport: non-success response", fields)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := jsoncodec.Unmarshal(raw, out); err != nil {
		apiErr := auctionerrors.NewDecodeError(resp.StatusCode, err)
		span.SetStatus(codes.Error, apiErr.Message)
		fields["error"] = err.Error()
		utils.Warn("transport: undecodable response", fields)
		return apiErr
	}

	fields["status"] = resp.StatusCode
	utils.Debug("transport: request succeeded", fields)
	return nil
}

// CSRFToken returns the csrftoken cookie held for the API origin, or "" when
// the backend has not issued one yet.
func (c *Client) CSRFToken() string {
	if c.httpClient.Jar == nil {
		return ""
	}
	for _, ck := range c.httpClient.Jar.Cookies(c.baseURL) {
		if ck.Name == CSRFCookieName {
			return ck.Value
		}
	}
	return ""
}

// SetCookie stores a cookie for the API origin in the session jar.
func (c *Client) SetCookie(name, value string) {
	if c.httpClient.Jar == nil {
		return
	}
	origin := &url.URL{Scheme: c.baseURL.Scheme, Host: c.baseURL.Host, Path: "/"}
	c.httpClient.Jar.SetCookies(origin, []*http.Cookie{{Name: name, Value: value, Path: "/"}})
}

// CloseIdleConnections releases pooled connections of the underlying client.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) resolve(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL.String() + path
}

func encodeBody(body any) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case *Form:
		return b.Encode()
	default:
		raw, err := jsoncodec.Marshal(b)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(raw), contentTypeJSON, nil
	}
}

// errorDetail extracts the "detail" string of an error body, or "" when the
// body is not an object carrying one.
func errorDetail(raw []byte) string {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := jsoncodec.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.Detail
}
