package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/geo-locations/internal/logger"
	"github.com/MKhiriev/geo-locations/internal/utils"
	"github.com/MKhiriev/geo-locations/models"
	"github.com/go-resty/resty/v2"
)

// Config holds the client connection settings.
type Config struct {
	// HTTPAddress is the server address, with or without a scheme.
	HTTPAddress string `env:"SERVER_ADDRESS" envDefault:"localhost:5000"`

	// RequestTimeout bounds every request. Zero disables the timeout.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
}

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// It returns an error if cfg.HTTPAddress is empty or is not a valid URL.
func NewHTTPServerAdapter(cfg Config, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
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

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) TestConnection(ctx context.Context) (string, error) {
	var msg models.MessageResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&msg).
		Get("/api/auth/test")
	if err != nil {
		return "", fmt.Errorf("test connection request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return msg.Message, nil
}

func (h *httpServerAdapter) Register(ctx context.Context, request models.RegisterRequest) (string, error) {
	return h.authenticate(ctx, "/api/auth/register", request)
}

func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (string, error) {
	return h.authenticate(ctx, "/api/auth/login", request)
}

// authenticate posts credentials and stores the returned token. The body
// token is preferred; the Authorization header is the fallback.
func (h *httpServerAdapter) authenticate(ctx context.Context, path string, body any) (string, error) {
	var tokenResponse models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&tokenResponse).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token := tokenResponse.Token
	if token == "" {
		token, err = utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return "", fmt.Errorf("%s: %w", path, ErrNoTokenInResponse)
		}
	}

	h.SetToken(token)
	return token, nil
}

func (h *httpServerAdapter) ListLocations(ctx context.Context) ([]models.Location, error) {
	var locations []models.Location

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&locations).
		Get("/api/locations")
	if err != nil {
		return nil, fmt.Errorf("list locations request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return locations, nil
}

func (h *httpServerAdapter) GetLocation(ctx context.Context, locationID string) (models.Location, error) {
	var location models.Location

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", locationID).
		SetResult(&location).
		Get("/api/locations/{id}")
	if err != nil {
		return models.Location{}, fmt.Errorf("get location request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Location{}, err
	}

	return location, nil
}

func (h *httpServerAdapter) CreateLocation(ctx context.Context, request models.CreateLocationRequest) (models.Location, error) {
	var location models.Location

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&location).
		Post("/api/locations")
	if err != nil {
		return models.Location{}, fmt.Errorf("create location request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Location{}, err
	}

	return location, nil
}

func (h *httpServerAdapter) AddComment(ctx context.Context, locationID, text string) (models.Comments, error) {
	var comments models.Comments

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", locationID).
		SetBody(models.CommentRequest{Text: text}).
		SetResult(&comments).
		Post("/api/locations/{id}/comments")
	if err != nil {
		return nil, fmt.Errorf("add comment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return comments, nil
}

func (h *httpServerAdapter) UploadImages(ctx context.Context, locationID string, files []ImageFile) (models.Location, error) {
	var location models.Location

	req := h.authedRequest(ctx).
		SetPathParam("id", locationID).
		SetResult(&location)
	for _, f := range files {
		req.SetFileReader(models.ImagesFieldName, f.Name, f.Content)
	}

	resp, err := req.Post("/api/locations/{id}/images")
	if err != nil {
		return models.Location{}, fmt.Errorf("upload images request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Location{}, err
	}

	h.logger.Debug().
		Str("location_id", locationID).
		Int("files", len(files)).
		Msg("images uploaded")

	return location, nil
}

func (h *httpServerAdapter) DownloadImage(ctx context.Context, imageURL string) ([]byte, string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "*/*").
		Get(imageURL)
	if err != nil {
		return nil, "", fmt.Errorf("download image request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, "", err
	}

	return resp.Body(), resp.Header().Get("Content-Type"), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
