// Package webhook handles eBay platform notifications: the endpoint
// challenge and marketplace account deletion events.
package webhook

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/donaldgifford/droplist/internal/metrics"
)

// TopicAccountDeletion is the notification topic sent when an eBay user
// deletes their account.
const TopicAccountDeletion = "MARKETPLACE_ACCOUNT_DELETION"

// ErrTokenNotConfigured is returned for challenges when no verification
// token is configured.
var ErrTokenNotConfigured = errors.New("Verification token not configured") //nolint:staticcheck // user-facing message

// Deleter removes stored credentials for an eBay identity.
type Deleter interface {
	ClearTokensByEbayIdentity(ctx context.Context, ebayUserID, username string) (int64, error)
}

// Identity is the eBay user named by a deletion notification.
type Identity struct {
	UserID    string `json:"userId"`
	Username  string `json:"username"`
	EIASToken string `json:"eiasToken"`
}

// Service answers challenges and processes notifications.
type Service struct {
	store             Deleter
	verificationToken string
	endpointURL       string
	log               *slog.Logger
}

// NewService creates a webhook Service. endpointURL, when set, is used in
// challenge digests instead of the URL the request arrived on.
func NewService(d Deleter, verificationToken, endpointURL string, log *slog.Logger) *Service {
	return &Service{
		store:             d,
		verificationToken: verificationToken,
		endpointURL:       endpointURL,
		log:               log,
	}
}

// TokenConfigured reports whether a verification token is set.
func (s *Service) TokenConfigured() bool {
	return s.verificationToken != ""
}

// Challenge returns the digest eBay expects for challengeCode.
// requestEndpoint is scheme://host/path of the incoming request.
func (s *Service) Challenge(challengeCode, requestEndpoint string) (string, error) {
	if s.verificationToken == "" {
		return "", ErrTokenNotConfigured
	}
	endpoint := requestEndpoint
	if s.endpointURL != "" {
		endpoint = s.endpointURL
	}
	endpoint = strings.TrimSuffix(endpoint, "/")

	s.log.Info("answering webhook challenge", "endpoint", endpoint)
	return ChallengeResponse(challengeCode, s.verificationToken, endpoint), nil
}

// ChallengeResponse is hex(sha256(code + token + endpoint)).
func ChallengeResponse(challengeCode, verificationToken, endpoint string) string {
	sum := sha256.Sum256([]byte(challengeCode + verificationToken + endpoint))
	return hex.EncodeToString(sum[:])
}

// Handle processes one notification. Failures are logged and never
// returned: eBay only needs an acknowledgement.
func (s *Service) Handle(ctx context.Context, topic string, body []byte) {
	label := topic
	if label == "" {
		label = "unknown"
	}
	metrics.WebhookEventsTotal.WithLabelValues(label).Inc()

	switch topic {
	case TopicAccountDeletion:
		s.handleAccountDeletion(ctx, body)
	default:
		s.log.Info("unhandled webhook topic", "topic", topic, "bytes", len(body))
	}
}

func (s *Service) handleAccountDeletion(ctx context.Context, body []byte) {
	id, err := ParseIdentity(body)
	if err != nil {
		s.log.Warn("invalid account deletion payload", "error", err)
		return
	}
	if id.UserID == "" && id.Username == "" {
		s.log.Warn("account deletion without user id or username", "has_eias_token", id.EIASToken != "")
		return
	}

	n, err := s.store.ClearTokensByEbayIdentity(ctx, id.UserID, id.Username)
	if err != nil {
		s.log.Error("clearing tokens for deleted account", "ebay_user_id", id.UserID, "error", err)
		return
	}
	s.log.Info("disconnected stores for deleted eBay account",
		"ebay_user_id", id.UserID,
		"username", id.Username,
		"stores", n,
	)
}

// ParseIdentity reads the identity from notification.data, falling back
// to data and then the document root.
func ParseIdentity(body []byte) (Identity, error) {
	var doc struct {
		Notification *struct {
			Data *Identity `json:"data"`
		} `json:"notification"`
		Data *Identity `json:"data"`
		Identity
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		return Identity{}, err
	}
	switch {
	case doc.Notification != nil && doc.Notification.Data != nil:
		return *doc.Notification.Data, nil
	case doc.Data != nil:
		return *doc.Data, nil
	default:
		return doc.Identity, nil
	}
}
