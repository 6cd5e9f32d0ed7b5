package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/droplist/internal/webhook"
	"github.com/donaldgifford/droplist/pkg/logger"
)

// maxWebhookBodyBytes bounds a notification payload.
const maxWebhookBodyBytes = 1 << 20

// WebhookService answers eBay endpoint challenges and notifications.
type WebhookService interface {
	TokenConfigured() bool
	Challenge(challengeCode, requestEndpoint string) (string, error)
	Handle(ctx context.Context, topic string, body []byte)
}

// WebhookHandler handles the eBay notification endpoint.
type WebhookHandler struct {
	webhooks WebhookService
	log      *slog.Logger
	now      func() time.Time
}

// NewWebhookHandler creates a new WebhookHandler. A nil logger discards.
func NewWebhookHandler(w WebhookService, log *slog.Logger) *WebhookHandler {
	if log == nil {
		log = logger.Discard()
	}
	return &WebhookHandler{webhooks: w, log: log, now: time.Now}
}

// WebhookStatus is returned for a GET without a challenge code.
type WebhookStatus struct {
	Message           string `json:"message"`
	Timestamp         string `json:"timestamp"`
	VerificationToken string `json:"verificationToken"`
}

// ChallengeResponse answers the endpoint validation challenge.
type ChallengeResponse struct {
	ChallengeResponse string `json:"challengeResponse"`
}

// ReceivedResponse acknowledges a notification.
type ReceivedResponse struct {
	Received bool `json:"received"`
}

// Get answers the challenge, or reports the endpoint status when no
// challenge code is present.
func (h *WebhookHandler) Get(c echo.Context) error {
	code := c.QueryParam("challenge_code")
	if code == "" {
		token := "Not set"
		if h.webhooks.TokenConfigured() {
			token = "Set"
		}
		return c.JSON(http.StatusOK, WebhookStatus{
			Message:           "eBay webhook endpoint is active",
			Timestamp:         h.now().UTC().Format(time.RFC3339),
			VerificationToken: token,
		})
	}

	digest, err := h.webhooks.Challenge(code, requestEndpoint(c))
	if err != nil {
		if errors.Is(err, webhook.ErrTokenNotConfigured) {
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return writeError(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return c.JSON(http.StatusOK, ChallengeResponse{ChallengeResponse: digest})
}

// Post accepts a notification. It always acknowledges with 200; a body
// that cannot be read is logged and dropped.
func (h *WebhookHandler) Post(c echo.Context) error {
	topic := c.Request().Header.Get("X-EBAY-EVENT-TOPIC")
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBodyBytes))
	if err != nil {
		h.log.Warn("reading webhook body", "topic", topic, "error", err)
		return c.JSON(http.StatusOK, ReceivedResponse{Received: true})
	}

	h.webhooks.Handle(c.Request().Context(), topic, body)
	return c.JSON(http.StatusOK, ReceivedResponse{Received: true})
}

// requestEndpoint rebuilds scheme://host/path of the incoming request.
// The scheme honors X-Forwarded-Proto for TLS-terminating proxies.
func requestEndpoint(c echo.Context) string {
	req := c.Request()
	scheme := "http"
	if proto := req.Header.Get(echo.HeaderXForwardedProto); proto != "" {
		scheme = proto
	} else if req.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + req.Host + req.URL.Path
}

// RegisterWebhookRoutes registers the notification endpoint on the echo
// server.
func RegisterWebhookRoutes(e *echo.Echo, h *WebhookHandler) {
	e.GET("/api/v1/ebay/webhook", h.Get)
	e.POST("/api/v1/ebay/webhook", h.Post)
}
