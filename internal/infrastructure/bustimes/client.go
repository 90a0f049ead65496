package bustimes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/transit-site/internal/config"
	"github.com/transit-site/internal/domain"
	"github.com/transit-site/internal/domain/repository"
	"github.com/transit-site/internal/pkg/errors"
)

type servicesPage struct {
	Count   int                      `json:"count"`
	Results []domain.BustimesService `json:"results"`
}

type client struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
	logger     *zap.Logger
}

// NewClient creates a client for the bustimes.org services API.
func NewClient(cfg config.BustimesConfig, logger *zap.Logger) repository.BustimesRepository {
	return NewClientWithHTTP(cfg, &http.Client{}, logger)
}

func NewClientWithHTTP(cfg config.BustimesConfig, httpClient *http.Client, logger *zap.Logger) repository.BustimesRepository {
	return &client{
		httpClient: httpClient,
		baseURL:    cfg.BaseURL,
		timeout:    cfg.Timeout,
		logger:     logger,
	}
}

// FetchServices issues a single request for the services of operatorCode.
// The whole call, body decoding included, is bounded by the configured
// timeout. Only the first page of results is used.
func (c *client) FetchServices(ctx context.Context, operatorCode string) ([]domain.BustimesService, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.ErrExternalService.WithDetails(map[string]interface{}{
			"reason": "invalid base url",
			"url":    c.baseURL,
		})
	}
	q := u.Query()
	q.Set("operator", operatorCode)
	u.RawQuery = q.Encode()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	p, err := c.fetchPage(ctx, u.String())
	if err != nil {
		return nil, err
	}

	services := p.Results
	if services == nil {
		services = make([]domain.BustimesService, 0)
	}

	c.logger.Debug("Bustimes services fetched",
		zap.String("operator", operatorCode),
		zap.Int("count", len(services)))

	return services, nil
}

func (c *client) fetchPage(ctx context.Context, pageURL string) (*servicesPage, error) {
	c.logger.Debug("Calling bustimes services API", zap.String("url", pageURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, errors.ErrExternalService.WithDetails(map[string]interface{}{
			"reason": "failed to create request",
			"url":    pageURL,
		})
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.String("url", pageURL), zap.Error(err))
		return nil, errors.ErrExternalService.WithDetails(map[string]interface{}{
			"reason": err.Error(),
			"url":    pageURL,
		})
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.logger.Error("Bustimes API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, errors.ErrExternalService.WithDetails(map[string]interface{}{
			"reason":      "unexpected status",
			"status_code": resp.StatusCode,
			"url":         pageURL,
		})
	}

	var p servicesPage
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, errors.ErrExternalService.WithDetails(map[string]interface{}{
			"reason": "malformed json: " + err.Error(),
			"url":    pageURL,
		})
	}

	return &p, nil
}
