package session

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"sync"

	"auction-client/internal/api"
	"auction-client/internal/config"
	"auction-client/internal/metrics"
	"auction-client/internal/store"
	"auction-client/internal/transport"
	"auction-client/utils"

	"github.com/prometheus/client_golang/prometheus"
)

// SessionCookieName is the backend's session cookie
const SessionCookieName = "sessionid"

// Session owns everything tied to one signed-in application session: the
// cookie jar, the transport, the API client and both stores. Nothing in it
// is global; build one per session and Close it when the session ends.
type Session struct {
	Transport *transport.Client
	API       *api.Client
	Items     *store.ItemStore
	User      *store.UserStore
	Metrics   *metrics.Transport

	closeOnce sync.Once
}

type options struct {
	httpClient *http.Client
	registerer prometheus.Registerer
}

// Option customizes New
type Option func(*options)

// WithHTTPClient uses c instead of a fresh client. A cookie jar is attached
// when c has none.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithRegisterer registers the transport metrics with reg
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}

// New wires a session from cfg
func New(cfg *config.Config, opts ...Option) (*Session, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}
	if httpClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("session: cookie jar: %w", err)
		}
		httpClient.Jar = jar
	}

	m, err := metrics.NewTransport(o.registerer)
	if err != nil {
		return nil, fmt.Errorf("session: register metrics: %w", err)
	}

	tc, err := transport.New(cfg.APIBaseURL, httpClient, transport.WithMetrics(m))
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	if cfg.CSRFToken != "" {
		tc.SetCookie(transport.CSRFCookieName, cfg.CSRFToken)
	}
	if cfg.SessionID != "" {
		tc.SetCookie(SessionCookieName, cfg.SessionID)
	}

	apiClient := api.NewClient(tc)
	s := &Session{
		Transport: tc,
		API:       apiClient,
		Items:     store.NewItemStore(apiClient),
		User:      store.NewUserStore(apiClient),
		Metrics:   m,
	}

	utils.Info("session: opened", map[string]any{"api_base_url": tc.BaseURL().String()})
	return s, nil
}

// SetCSRFToken seeds the anti-forgery cookie for callers that obtained it
// out of band.
func (s *Session) SetCSRFToken(token string) {
	s.Transport.SetCookie(transport.CSRFCookieName, token)
}

// Close clears the cached profile, drops every store subscriber and releases
// idle connections. It is safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.User.Logout()
		s.User.Close()
		s.Items.Close()
		s.Transport.CloseIdleConnections()
		utils.Info("session: closed", nil)
	})
}
