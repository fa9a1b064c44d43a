package paymongo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"fleet/internal/entities"
	retrierconfig "fleet/pkg/retrier"
	"fleet/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "paymongo"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type Config struct {
	BaseURL    string
	SecretKey  string
	SuccessURL string
	FailedURL  string
}

type PayMongoGateway struct {
	client  httpDoer
	retrier retrier
	config  Config
}

func New(client httpDoer, config Config) *PayMongoGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableStatus,
	}

	return &PayMongoGateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
		config:  config,
	}
}

func (g *PayMongoGateway) CreatePaymentIntent(ctx context.Context, amount float64, currency string, metadata map[string]string) (*entities.PaymentIntent, error) {
	req := intentCreateRequest{
		Data: intentCreateData{
			Attributes: intentCreateAttributes{
				Amount:               toCentavos(amount),
				Currency:             currency,
				PaymentMethodAllowed: []string{"card"},
				CaptureType:          "automatic",
				Metadata:             metadata,
			},
		},
	}

	var resp intentResponse

	// ключ один на логическую операцию, повторы несут тот же ключ
	idempotencyKey := uuid.New().String()

	err := g.executeWithMetrics(ctx, "CreatePaymentIntent", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodPost, "/payment_intents", idempotencyKey, &req, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway paymongo, create payment intent: %w", err)
	}

	return toIntentDomain(&resp), nil
}

func (g *PayMongoGateway) GetPaymentIntent(ctx context.Context, id string) (*entities.PaymentIntent, error) {
	var resp intentResponse

	err := g.executeWithMetrics(ctx, "GetPaymentIntent", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodGet, "/payment_intents/"+id, "", nil, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway paymongo, get payment intent: %s: %w", id, err)
	}

	return toIntentDomain(&resp), nil
}

func (g *PayMongoGateway) CreateSource(ctx context.Context, sourceType entities.PaymentMethodType, amount float64, currency string) (*entities.PaymentSource, error) {
	req := sourceCreateRequest{
		Data: sourceCreateData{
			Attributes: sourceCreateAttributes{
				Type:     sourceType.String(),
				Amount:   toCentavos(amount),
				Currency: currency,
				Redirect: sourceRedirect{
					Success: g.config.SuccessURL,
					Failed:  g.config.FailedURL,
				},
			},
		},
	}

	var resp sourceResponse

	idempotencyKey := uuid.New().String()

	err := g.executeWithMetrics(ctx, "CreateSource", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodPost, "/sources", idempotencyKey, &req, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway paymongo, create source: %w", err)
	}

	return toSourceDomain(&resp), nil
}

func (g *PayMongoGateway) GetSource(ctx context.Context, id string) (*entities.PaymentSource, error) {
	var resp sourceResponse

	err := g.executeWithMetrics(ctx, "GetSource", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodGet, "/sources/"+id, "", nil, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway paymongo, get source: %s: %w", id, err)
	}

	return toSourceDomain(&resp), nil
}

func (g *PayMongoGateway) CancelPaymentIntent(ctx context.Context, id string) error {
	var resp intentResponse

	idempotencyKey := uuid.New().String()

	err := g.executeWithMetrics(ctx, "CancelPaymentIntent", func(ctx context.Context) error {
		return g.doJSON(ctx, http.MethodPost, "/payment_intents/"+id+"/cancel", idempotencyKey, nil, &resp)
	})
	if err != nil {
		return fmt.Errorf("gateway paymongo, cancel payment intent: %s: %w", id, err)
	}

	return nil
}

func (g *PayMongoGateway) doJSON(ctx context.Context, method, path, idempotencyKey string, reqBody, respBody any) error {
	var body io.Reader
	if reqBody != nil {
		payload, err := json.Marshal(reqBody)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.config.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.SetBasicAuth(g.config.SecretKey, "")
	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newStatusError(resp.StatusCode, raw)
	}

	if respBody != nil {
		err := json.Unmarshal(raw, respBody)
		if err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}

	return nil
}

type statusError struct {
	code   int
	detail string
}

func newStatusError(code int, raw []byte) *statusError {
	var apiResp apiErrorResponse
	if err := json.Unmarshal(raw, &apiResp); err == nil && len(apiResp.Errors) > 0 {
		return &statusError{code: code, detail: apiResp.Errors[0].Detail}
	}
	return &statusError{code: code}
}

func (e *statusError) Error() string {
	if e.detail != "" {
		return fmt.Sprintf("paymongo api status %d: %s", e.code, e.detail)
	}
	return fmt.Sprintf("paymongo api status %d", e.code)
}

func isRetryableStatus(err error) bool {
	var statusErr *statusError
	if !errors.As(err, &statusErr) {
		// сетевые ошибки ретраим всегда
		return true
	}

	switch {
	case statusErr.code == http.StatusTooManyRequests:
		return true
	case statusErr.code >= http.StatusInternalServerError:
		return true
	default:
		return false
	}
}

func (g *PayMongoGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	httpCode := getHTTPCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, httpCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, httpCode).Inc()
	}

	return err
}

func getHTTPCode(err error) string {
	if err == nil {
		return "200"
	}
	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.code)
	}
	return "network_error"
}
