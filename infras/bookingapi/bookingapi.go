package bookingapi

//go:generate go run go.uber.org/mock/mockgen -source=./bookingapi.go -destination=./mocks/bookingapi_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"roombooking/config"
	"roombooking/infras/otel"
	"roombooking/shared"
	"roombooking/shared/constant"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName     = "bookingapi"
	defaultTimeout    = 10 * time.Second
	maxErrorBodyBytes = 4 << 10
)

// ErrUnavailable marks failures where no HTTP response was received.
var ErrUnavailable = errors.New("booking api unavailable")

// Client talks JSON to the remote booking API. A non-empty credential is sent as
// the Authorization header using the configured scheme.
type Client interface {
	Get(ctx context.Context, path, credential string, out any) error
	GetList(ctx context.Context, path, credential string, out any) error
	Post(ctx context.Context, path, credential string, body, out any) error
	Delete(ctx context.Context, path, credential string) error
	ResourceURL(kind, id string) string
	CollectionURL(kind string) string
}

type clientImpl struct {
	baseURL    string
	authScheme string
	http       *http.Client
	otel       otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Client {
	timeout := defaultTimeout
	if cfg.API.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.API.TimeoutSeconds) * time.Second
	}

	return NewWithHTTPClient(cfg, ot, &http.Client{Timeout: timeout})
}

func NewWithHTTPClient(cfg *config.Config, ot otel.Otel, httpClient *http.Client) Client {
	return &clientImpl{
		baseURL:    strings.TrimRight(cfg.API.BaseURL, "/"),
		authScheme: cfg.API.AuthScheme,
		http:       httpClient,
		otel:       ot,
	}
}

// ResourceURL returns "{baseURL}/{kind}/{id}/".
func (c *clientImpl) ResourceURL(kind, id string) string {
	return fmt.Sprintf("%s/%s/%s/", c.baseURL, kind, id)
}

// CollectionURL returns "{baseURL}/{kind}/".
func (c *clientImpl) CollectionURL(kind string) string {
	return fmt.Sprintf("%s/%s/", c.baseURL, kind)
}

func (c *clientImpl) Get(ctx context.Context, path, credential string, out any) error {
	return c.do(ctx, http.MethodGet, path, credential, nil, out)
}

// GetList decodes either a bare JSON array or a paginated {"results": [...]} envelope into out.
func (c *clientImpl) GetList(ctx context.Context, path, credential string, out any) error {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, credential, nil, &raw); err != nil {
		return err
	}

	return DecodeList(raw, out)
}

func (c *clientImpl) Post(ctx context.Context, path, credential string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, credential, body, out)
}

func (c *clientImpl) Delete(ctx context.Context, path, credential string) error {
	return c.do(ctx, http.MethodDelete, path, credential, nil, nil)
}

func (c *clientImpl) endpoint(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

func (c *clientImpl) do(ctx context.Context, method, path, credential string, body, out any) (err error) {
	url := c.endpoint(path)

	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, otelScopeName+"."+method)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"http.method": method,
		"http.url":    url,
	})

	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}

		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return fmt.Errorf("failed to create api request: %w", err)
	}

	requestID, _ := ctx.Value(constant.ContextKeyRequestID).(string)
	if requestID == constant.Empty {
		requestID = uuid.NewString()
	}

	req.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)
	req.Header.Set(constant.RequestHeaderRequestID, requestID)

	if body != nil {
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	if credential != constant.Empty {
		req.Header.Set(constant.RequestHeaderAuthorization, shared.Bearer(c.authScheme, credential))
	}

	res, err := c.http.Do(req)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("url", url).Msg("booking api request failed")

		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer res.Body.Close()

	scope.SetAttribute("http.status_code", res.StatusCode)

	log.Debug().
		Str("method", method).
		Str("url", url).
		Str("request_id", requestID).
		Int("status", res.StatusCode).
		Msg("booking api response")

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBodyBytes))

		return &APIError{
			Method:     method,
			URL:        url,
			StatusCode: res.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	if out == nil || res.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode api response: %w", err)
	}

	return nil
}

// DecodeList accepts `[...]` or `{"results": [...]}`.
func DecodeList(raw json.RawMessage, out any) error {
	trimmed := bytes.TrimSpace(raw)

	if len(trimmed) > 0 && trimmed[0] == '{' {
		var page struct {
			Results json.RawMessage `json:"results"`
		}

		if err := json.Unmarshal(trimmed, &page); err != nil {
			return fmt.Errorf("failed to decode paginated list: %w", err)
		}

		trimmed = page.Results
	}

	if len(trimmed) == 0 || string(trimmed) == "null" {
		trimmed = []byte("[]")
	}

	if err := json.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("failed to decode list: %w", err)
	}

	return nil
}
