// Package line talks to the LINE Messaging API.
package line

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/mia/data-service/internal/domain/shop"
)

// Defaults for the Messaging API client
const (
	DefaultBaseURL = "https://api.line.me"
	DefaultTimeout = 5 * time.Second

	botInfoPath     = "/v2/bot/info"
	maxResponseBody = 1 << 20
)

// ErrLookupFailed is returned for any failed bot-info lookup
var ErrLookupFailed = errors.New("line: bot info lookup failed")

// HTTPError carries a non-2xx response from the Messaging API
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// Config holds client settings
type Config struct {
	BaseURL string
	Timeout time.Duration
	// Logger receives resty's own warnings and errors
	Logger *zap.Logger
}

// Client calls the Messaging API. Requests are never retried.
type Client struct {
	http *resty.Client
}

// botInfoResponse mirrors GET /v2/bot/info
type botInfoResponse struct {
	UserID      string `json:"userId"`
	BasicID     string `json:"basicId"`
	DisplayName string `json:"displayName"`
	PictureURL  string `json:"pictureUrl"`
}

// NewClient creates a Client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	rc := resty.New().
		SetLogger(cfg.Logger.Named("line").Sugar()).
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")
	return &Client{http: rc}
}

// GetBotInfo fetches the bot profile bound to channelAccessToken.
// Every failure wraps ErrLookupFailed.
func (c *Client) GetBotInfo(ctx context.Context, channelAccessToken string) (*shop.BotInfo, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(channelAccessToken).
		SetDoNotParseResponse(true).
		Get(botInfoPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}
	body := resp.RawBody()
	defer body.Close()

	raw, err := io.ReadAll(io.LimitReader(body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrLookupFailed, err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %w", ErrLookupFailed, &HTTPError{
			StatusCode: resp.StatusCode(),
			Body:       truncate(string(raw), 256),
		})
	}

	var out botInfoResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: decode body: %w", ErrLookupFailed, err)
	}

	return &shop.BotInfo{
		BotID:       out.UserID,
		DisplayName: out.DisplayName,
		PictureURL:  out.PictureURL,
		BasicID:     out.BasicID,
	}, nil
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.StatusCode
	}
	return 0
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
