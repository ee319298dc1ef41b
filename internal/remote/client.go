package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hostel-store/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	restPath = "/rest/v1/"
	authPath = "/auth/v1/"
)

// Client talks to the hosted backend-as-a-service: auth endpoints plus a
// document-table interface over products, orders and users. Everything the
// application persists goes through here.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client

	// Outbound throttle so a misbehaving caller loop cannot hammer the
	// hosted service. Waits for a token, never retries.
	limiter *rate.Limiter
}

func NewClient(baseURL, apiKey string) *Client {
	if apiKey == "" {
		logger.L().Warn("remote service API key is empty")
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(20), 40),
	}
}

// Select reads rows from a table into dest (a pointer to a slice).
func (c *Client) Select(ctx context.Context, table string, q Query, token string, dest any) error {
	return c.do(ctx, http.MethodGet, restPath+table, q.values(), nil, token, nil, dest)
}

// Insert creates rows in a table. When dest is non-nil the created rows are
// decoded back into it.
func (c *Client) Insert(ctx context.Context, table string, payload any, token string, dest any) error {
	headers := map[string]string{"Prefer": "return=representation"}
	return c.do(ctx, http.MethodPost, restPath+table, nil, headers, token, payload, dest)
}

// Update patches the rows selected by q.
func (c *Client) Update(ctx context.Context, table string, patch any, q Query, token string) error {
	return c.do(ctx, http.MethodPatch, restPath+table, q.values(), nil, token, patch, nil)
}

func (c *Client) do(
	ctx context.Context,
	method, path string,
	query url.Values,
	headers map[string]string,
	token string,
	body any,
	dest any,
) error {

	log := logger.FromCtx(ctx).With(
		zap.String("method", method),
		zap.String("path", path),
	)

	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			log.Error("failed to marshal request body", zap.Error(err))
			return err
		}
		reader = bytes.NewBuffer(jsonBody)
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		log.Error("failed creating request", zap.Error(err))
		return err
	}

	req.Header.Set("apikey", c.apiKey)
	if token == "" {
		token = c.apiKey
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("remote request failed", zap.Error(err))
		return &ServiceError{Status: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("failed to read response body", zap.Error(err))
		return fmt.Errorf("failed to read remote response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Error("remote service returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return &ServiceError{
			Status:  resp.StatusCode,
			Message: errorMessage(bodyBytes),
		}
	}

	log.Debug("remote request completed",
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if dest != nil && len(bodyBytes) > 0 {
		if err := json.Unmarshal(bodyBytes, dest); err != nil {
			log.Error("failed decoding remote response", zap.Error(err))
			return err
		}
	}

	return nil
}

func errorMessage(body []byte) string {
	var parsed serviceErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		if msg := parsed.text(); msg != "" {
			return msg
		}
	}
	return string(body)
}
