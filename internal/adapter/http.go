package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-vocab-trainer/internal/config"
	"github.com/MKhiriev/go-vocab-trainer/internal/logger"
	"github.com/MKhiriev/go-vocab-trainer/internal/utils"
	"github.com/MKhiriev/go-vocab-trainer/models"
)

const (
	contentTypeJSON = "application/json;charset=utf-8"
	traceIDHeader   = "X-Trace-ID"
	tokenScheme     = "Token "
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	traceID *utils.UUIDGenerator

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter].
// adapterCfg.HTTPAddress may omit the scheme, "http://" is assumed.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Content-Type", contentTypeJSON).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{
		client:  client,
		traceID: utils.NewUUIDGenerator(),
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Authenticate(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	resp, err := h.send(h.request(ctx).SetBody(creds), http.MethodPost, "/api-token-auth/")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("authenticate request: %w", err)
	}
	if resp.StatusCode() == http.StatusBadRequest {
		return models.AuthResponse{}, fmt.Errorf("authenticate request: %w: %w", ErrInvalidCredentials, newStatusError(resp.StatusCode(), resp.Body()))
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, fmt.Errorf("authenticate request: %w", err)
	}

	var out models.AuthResponse
	if err = decodeJSON(resp, &out); err != nil {
		return models.AuthResponse{}, fmt.Errorf("authenticate decode: %w", err)
	}
	return out, nil
}

func (h *httpServerAdapter) ListDictionaries(ctx context.Context, ownerID int64) ([]models.Dictionary, error) {
	req := h.authedRequest(ctx).SetQueryParam("owner_id", strconv.FormatInt(ownerID, 10))

	resp, err := h.send(req, http.MethodGet, "/api/dictionaries/")
	if err != nil {
		return nil, fmt.Errorf("list dictionaries request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("list dictionaries request: %w", err)
	}

	out := make([]models.Dictionary, 0)
	if err = decodeJSON(resp, &out); err != nil {
		return nil, fmt.Errorf("list dictionaries decode: %w", err)
	}
	return out, nil
}

func (h *httpServerAdapter) CreateDictionary(ctx context.Context, body models.NewDictionaryRequest) (models.Dictionary, error) {
	resp, err := h.send(h.authedRequest(ctx).SetBody(body), http.MethodPost, "/api/dictionaries/")
	if err != nil {
		return models.Dictionary{}, fmt.Errorf("create dictionary request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Dictionary{}, fmt.Errorf("create dictionary request: %w", err)
	}

	var out models.Dictionary
	if err = decodeJSON(resp, &out); err != nil {
		return models.Dictionary{}, fmt.Errorf("create dictionary decode: %w", err)
	}
	return out, nil
}

func (h *httpServerAdapter) DeleteDictionary(ctx context.Context, id int64) error {
	req := h.authedRequest(ctx).SetPathParam("id", strconv.FormatInt(id, 10))

	resp, err := h.send(req, http.MethodDelete, "/api/dictionaries/{id}/")
	if err != nil {
		return fmt.Errorf("delete dictionary request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("delete dictionary request: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) ListWords(ctx context.Context, dictionaryID int64) ([]models.Word, error) {
	req := h.authedRequest(ctx).SetQueryParam("dictionary_id", strconv.FormatInt(dictionaryID, 10))

	resp, err := h.send(req, http.MethodGet, "/api/words/")
	if err != nil {
		return nil, fmt.Errorf("list words request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("list words request: %w", err)
	}

	out := make([]models.Word, 0)
	if err = decodeJSON(resp, &out); err != nil {
		return nil, fmt.Errorf("list words decode: %w", err)
	}
	return out, nil
}

func (h *httpServerAdapter) GetWord(ctx context.Context, id int64) (models.Word, error) {
	req := h.authedRequest(ctx).SetPathParam("id", strconv.FormatInt(id, 10))

	resp, err := h.send(req, http.MethodGet, "/api/words/{id}/")
	if err != nil {
		return models.Word{}, fmt.Errorf("get word request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Word{}, fmt.Errorf("get word request: %w", err)
	}

	var out models.Word
	if err = decodeJSON(resp, &out); err != nil {
		return models.Word{}, fmt.Errorf("get word decode: %w", err)
	}
	return out, nil
}

func (h *httpServerAdapter) CreateWord(ctx context.Context, body models.NewWordRequest) (models.Word, error) {
	req := h.authedRequest(ctx).
		SetQueryParam("dictionary_id", strconv.FormatInt(body.DictionaryID, 10)).
		SetBody(body)

	resp, err := h.send(req, http.MethodPost, "/api/words/")
	if err != nil {
		return models.Word{}, fmt.Errorf("create word request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Word{}, fmt.Errorf("create word request: %w", err)
	}

	var out models.Word
	if err = decodeJSON(resp, &out); err != nil {
		return models.Word{}, fmt.Errorf("create word decode: %w", err)
	}
	return out, nil
}

func (h *httpServerAdapter) UpdateWord(ctx context.Context, word models.Word) (models.Word, error) {
	req := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(word.ID, 10)).
		SetBody(word)

	resp, err := h.send(req, http.MethodPut, "/api/words/{id}/")
	if err != nil {
		return models.Word{}, fmt.Errorf("update word request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Word{}, fmt.Errorf("update word request: %w", err)
	}

	var out models.Word
	if err = decodeJSON(resp, &out); err != nil {
		return models.Word{}, fmt.Errorf("update word decode: %w", err)
	}
	return out, nil
}

func (h *httpServerAdapter) DeleteWord(ctx context.Context, id int64) error {
	req := h.authedRequest(ctx).SetPathParam("id", strconv.FormatInt(id, 10))

	resp, err := h.send(req, http.MethodDelete, "/api/words/{id}/")
	if err != nil {
		return fmt.Errorf("delete word request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("delete word request: %w", err)
	}
	return nil
}

func (h *httpServerAdapter) GetUser(ctx context.Context, id int64) (models.UserProfile, error) {
	req := h.authedRequest(ctx).SetPathParam("id", strconv.FormatInt(id, 10))

	resp, err := h.send(req, http.MethodGet, "/api/users/{id}")
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserProfile{}, fmt.Errorf("get user request: %w", err)
	}

	var out models.UserProfile
	if err = decodeJSON(resp, &out); err != nil {
		return models.UserProfile{}, fmt.Errorf("get user decode: %w", err)
	}
	return out, nil
}

// request starts an unauthenticated request carrying a fresh trace id.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader(traceIDHeader, h.traceID.Generate())
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.request(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", tokenScheme+token)
	}
	return req
}

// send executes req and logs its outcome. Transport failures come back
// wrapped in ErrTransport; status codes are left to the caller.
func (h *httpServerAdapter) send(req *resty.Request, method, path string) (*resty.Response, error) {
	start := time.Now()
	resp, err := req.Execute(method, path)

	event := h.logger.Debug().
		Str("method", method).
		Str("path", path).
		Str("trace_id", req.Header.Get(traceIDHeader)).
		Dur("duration", time.Since(start))
	if err != nil {
		event.Err(err).Msg("request failed")
		return nil, transportError(err)
	}
	event.Int("status", resp.StatusCode()).Msg("request done")

	return resp, nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}
	return newStatusError(resp.StatusCode(), resp.Body())
}

// decodeJSON does not rely on the response content type; some backends
// answer JSON as text/html.
func decodeJSON(resp *resty.Response, v any) error {
	body := resp.Body()
	if len(strings.TrimSpace(string(body))) == 0 {
		return fmt.Errorf("%w: empty response body", ErrRequestFailed)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	return nil
}
