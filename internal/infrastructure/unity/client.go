package unity

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	jsoniter "github.com/json-iterator/go"
	cache "github.com/patrickmn/go-cache"

	"evergreen-ops/internal/config"
	"evergreen-ops/pkg/contextx"
	"evergreen-ops/pkg/httpx"
	"evergreen-ops/pkg/logx"
)

var (
	json   = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip
	logger = contextx.LoggerFromContextOrDefault          //nolint:gochecknoglobals
)

const seenCacheTTL = time.Hour

// Client talks to Unity Cloud Services (Economy, Remote Config,
// Cloud Code). Each push is a one-shot POST: the remote side owns
// persistence and upsert semantics, the client only classifies the
// response.
type Client struct {
	httpClient *http.Client
	baseURL    string
	projectID  string
	envID      string

	requestDelay time.Duration
	maxRetries   uint
	lastRequest  time.Time

	// Records already answered with 409 this session; re-pushing them
	// would only burn request slots.
	seenExisting *cache.Cache
}

func NewClient(cfg config.Unity) *Client {
	transport := httpx.NewAuthBearerRoundTripper(
		httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
		),
		httpx.NewStaticTokenSource(cfg.APIToken),
	)

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.RequestTimeout,
		},
		baseURL:      cfg.BaseURL,
		projectID:    cfg.ProjectID,
		envID:        cfg.EnvID,
		requestDelay: cfg.RequestDelay,
		maxRetries:   cfg.MaxRetries,
		seenExisting: cache.New(seenCacheTTL, seenCacheTTL),
	}
}

func (c *Client) economyPath(collection string) string {
	return fmt.Sprintf("%s/economy/v1/projects/%s/environments/%s/%s",
		c.baseURL, c.projectID, c.envID, collection)
}

// waitForNextSlot paces requests with a fixed inter-request delay.
func (c *Client) waitForNextSlot(ctx context.Context) error {
	if c.lastRequest.IsZero() {
		c.lastRequest = time.Now()
		return nil
	}

	elapsed := time.Since(c.lastRequest)
	if elapsed >= c.requestDelay {
		c.lastRequest = time.Now()
		return nil
	}

	select {
	case <-time.After(c.requestDelay - elapsed):
		c.lastRequest = time.Now()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type httpResult struct {
	statusCode int
	body       []byte
}

// do executes one request with bounded exponential retry. Only
// transport errors and 5xx responses are retried; every 4xx is a
// terminal classification the caller maps to an outcome.
func (c *Client) do(ctx context.Context, method, url string, body any) (httpResult, error) {
	var payload []byte

	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return httpResult{}, fmt.Errorf("json.Marshal: %w", err)
		}
	}

	operation := func() (httpResult, error) {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, url, reader)
		if err != nil {
			return httpResult{}, backoff.Permanent(fmt.Errorf("http.NewRequest: %w", err))
		}

		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return httpResult{}, fmt.Errorf("httpClient.Do: %w", err)
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return httpResult{}, fmt.Errorf("io.ReadAll: %w", err)
		}

		result := httpResult{statusCode: resp.StatusCode, body: respBody}

		if resp.StatusCode >= http.StatusInternalServerError {
			return result, fmt.Errorf("server error: %s", resp.Status)
		}

		return result, nil
	}

	result, err := backoff.RetryNotifyWithTimerAndData(
		operation,
		backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(c.maxRetries)), ctx),
		func(err error, wait time.Duration) {
			logger(ctx).Warn("retrying request",
				logx.Error(err),
				"wait", wait,
				"url", url,
			)
		},
		nil,
	)
	if err != nil {
		// Retries exhausted on a 5xx: the classified status is still
		// more useful to the caller than the wrapped error.
		if result.statusCode >= http.StatusInternalServerError {
			return result, nil
		}
		return httpResult{}, err
	}

	return result, nil
}
