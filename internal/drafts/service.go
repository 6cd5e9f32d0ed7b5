// Package drafts creates listing drafts from photos and manages their
// lifecycle up to publication.
package drafts

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/droplist/internal/metrics"
	"github.com/donaldgifford/droplist/internal/seller"
	"github.com/donaldgifford/droplist/internal/store"
	"github.com/donaldgifford/droplist/pkg/analyze"
	"github.com/donaldgifford/droplist/pkg/pricing"
	domain "github.com/donaldgifford/droplist/pkg/types"
)

// MaxImageChars bounds the length of one data URL.
const MaxImageChars = 2_000_000

var dataURLPattern = regexp.MustCompile(`^data:(image/[a-zA-Z0-9.+-]+);base64,(.*)$`)

// Patch is a partial draft update. Nil fields are left unchanged.
type Patch struct {
	Title       *string
	Description *string
	CategoryID  *string
	Condition   *string
	Price       *string
	Quantity    *int
	Status      *domain.DraftStatus
	Specifics   map[string]string
}

// Service runs draft operations for the owning user.
type Service struct {
	store    store.Store
	analyzer analyze.Analyzer
	log      *slog.Logger
	tracer   trace.Tracer
	now      func() time.Time
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.log = l
	}
}

// WithNowFunc overrides the clock used for generated SKUs.
func WithNowFunc(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a draft Service.
func NewService(s store.Store, a analyze.Analyzer, opts ...Option) *Service {
	svc := &Service{
		store:    s,
		analyzer: a,
		log:      slog.Default(),
		tracer:   otel.Tracer("droplist/drafts"),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// ValidateImages checks the count, scheme and size of uploaded photos.
func ValidateImages(images []string) error {
	if len(images) < 1 || len(images) > domain.MaxImages {
		return &domain.ValidationError{Field: "images", Message: "Upload between 1 and 8 photos"}
	}
	for _, img := range images {
		if !strings.HasPrefix(img, "data:image/") {
			return &domain.ValidationError{Field: "images", Message: "Images must be data URLs (data:image/...)"}
		}
		if len(img) > MaxImageChars {
			return &domain.ValidationError{
				Field:   "images",
				Message: "One or more images are too large. Please upload smaller photos.",
			}
		}
	}
	return nil
}

// Create stores the photos as a processing draft for the user's active
// store, then fills it in from the analyzer.
func (s *Service) Create(ctx context.Context, userID string, images []string) (*domain.Draft, error) {
	if err := ValidateImages(images); err != nil {
		return nil, err
	}

	st, err := s.store.GetActiveStore(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, seller.ErrNoStore
	}
	if err != nil {
		return nil, fmt.Errorf("loading active store: %w", err)
	}

	d := &domain.Draft{
		StoreID:       st.ID,
		Status:        domain.DraftProcessing,
		Images:        images,
		MarketplaceID: st.Marketplace(),
		Quantity:      1,
		Specifics:     map[string]string{},
		AINotes:       []string{},
	}
	if err := s.store.CreateDraft(ctx, d); err != nil {
		return nil, fmt.Errorf("creating draft: %w", err)
	}
	metrics.DraftsCreatedTotal.Inc()
	s.log.Info("draft created", "draft_id", d.ID, "store_id", st.ID, "images", len(images))

	if err := s.analyzeInto(ctx, d); err != nil {
		return nil, err
	}
	d.SKU = domain.GenerateSKU(s.now())

	if err := s.store.UpdateDraft(ctx, d, []domain.DraftStatus{domain.DraftProcessing}); err != nil {
		return nil, fmt.Errorf("saving analyzed draft %s: %w", d.ID, err)
	}
	return d, nil
}

// Regenerate re-runs the analyzer on the stored photos. The SKU is kept.
// Only idle drafts can be regenerated.
func (s *Service) Regenerate(ctx context.Context, userID, id string) (*domain.Draft, error) {
	d, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if !d.Status.IsPublishable() {
		return nil, fmt.Errorf("regenerating draft %s (%s): %w", d.ID, d.Status, domain.ErrConflictingOperation)
	}
	ok, err := s.store.TransitionDraftStatus(ctx, d.ID, domain.PublishableStatuses, domain.DraftProcessing)
	if err != nil {
		return nil, fmt.Errorf("resetting draft %s: %w", d.ID, err)
	}
	if !ok {
		return nil, fmt.Errorf("regenerating draft %s: %w", d.ID, domain.ErrConflictingOperation)
	}
	d.Status, d.Error = domain.DraftProcessing, ""

	if err := s.analyzeInto(ctx, d); err != nil {
		return nil, err
	}
	if d.SKU == "" {
		d.SKU = domain.GenerateSKU(s.now())
	}
	if err := s.store.UpdateDraft(ctx, d, []domain.DraftStatus{domain.DraftProcessing}); err != nil {
		return nil, fmt.Errorf("saving regenerated draft %s: %w", d.ID, err)
	}
	return d, nil
}

// analyzeInto calls the analyzer and applies its proposal to d. On
// failure the draft is marked failed with the analyzer's message.
func (s *Service) analyzeInto(ctx context.Context, d *domain.Draft) error {
	ctx, span := s.tracer.Start(ctx, "drafts.analyze",
		trace.WithAttributes(attribute.String("draft.id", d.ID), attribute.Int("images", len(d.Images))))
	defer span.End()

	start := time.Now()
	proposal, err := s.analyzer.Analyze(ctx, d.Images)
	metrics.AnalyzerDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		metrics.DraftsFailedTotal.Inc()
		s.log.Error("image analysis failed", "draft_id", d.ID, "error", err)
		if mErr := s.store.MarkDraftFailed(context.WithoutCancel(ctx), d.ID, err.Error()); mErr != nil {
			s.log.Error("marking draft failed", "draft_id", d.ID, "error", mErr)
		}
		return fmt.Errorf("analyzing images: %w", err)
	}

	apply(d, proposal)
	return nil
}

// apply copies an analyzer proposal onto d and moves it to needs_review.
// The pricing range midpoint replaces the proposed price when positive.
func apply(d *domain.Draft, p *analyze.Draft) {
	price := p.Price
	if rec := pricing.Recommended(pricing.ComputePrice(pricing.NormalizeSignals(p.PricingSignals))); rec != "" {
		price = rec
	}

	d.Status = domain.DraftNeedsReview
	d.Title = domain.TruncateTitle(p.Title)
	d.Description = p.Description
	d.CategoryID = p.CategoryID
	d.Condition = p.Condition
	d.Price = price
	d.Quantity = domain.ClampQuantity(p.Quantity)
	d.Specifics = p.Specifics
	d.AINotes = p.Notes
	d.AIExtractedText = p.ExtractedText
	d.AIRaw = p.Raw()
	d.Error = ""
}

// Update applies a partial edit to an idle draft. The write only lands if
// the draft is still idle, so it cannot undo a publish that started after
// the read.
func (s *Service) Update(ctx context.Context, userID, id string, p Patch) (*domain.Draft, error) {
	d, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if !d.Status.IsPublishable() {
		return nil, fmt.Errorf("updating draft %s (%s): %w", d.ID, d.Status, domain.ErrConflictingOperation)
	}

	if p.Status != nil {
		if !p.Status.IsEditable() {
			return nil, &domain.ValidationError{
				Field:   "status",
				Message: "status must be needs_review or ready_to_publish",
			}
		}
		d.Status = *p.Status
	}
	if p.Title != nil {
		d.Title = domain.TruncateTitle(*p.Title)
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.CategoryID != nil {
		d.CategoryID = strings.TrimSpace(*p.CategoryID)
	}
	if p.Condition != nil {
		d.Condition = strings.TrimSpace(*p.Condition)
	}
	if p.Price != nil {
		d.Price = strings.TrimSpace(*p.Price)
	}
	if p.Quantity != nil {
		d.Quantity = domain.ClampQuantity(*p.Quantity)
	}
	if p.Specifics != nil {
		d.Specifics = p.Specifics
	}

	if err := s.store.UpdateDraft(ctx, d, domain.PublishableStatuses); err != nil {
		return nil, fmt.Errorf("updating draft %s: %w", d.ID, err)
	}
	return d, nil
}

// Get returns a draft owned by userID.
func (s *Service) Get(ctx context.Context, userID, id string) (*domain.Draft, error) {
	d, err := s.store.GetDraftForUser(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("getting draft %s: %w", id, err)
	}
	return d, nil
}

// List returns a page of the user's drafts without image payloads.
func (s *Service) List(ctx context.Context, userID string, q *store.DraftQuery) ([]domain.Draft, int, error) {
	drafts, total, err := s.store.ListDrafts(ctx, userID, q)
	if err != nil {
		return nil, 0, fmt.Errorf("listing drafts: %w", err)
	}
	return drafts, total, nil
}

// Image decodes photo index of a draft. It is not scoped to a user: eBay
// fetches these URLs while publishing. Anything unreadable is ErrNotFound.
func (s *Service) Image(ctx context.Context, id string, index int) (string, []byte, error) {
	if index < 0 {
		return "", nil, store.ErrNotFound
	}
	d, err := s.store.GetDraft(ctx, id)
	if err != nil {
		return "", nil, fmt.Errorf("getting draft %s: %w", id, err)
	}
	if index >= len(d.Images) {
		return "", nil, store.ErrNotFound
	}
	return DecodeDataURL(d.Images[index])
}

// DecodeDataURL splits a base64 image data URL into content type and bytes.
func DecodeDataURL(dataURL string) (string, []byte, error) {
	m := dataURLPattern.FindStringSubmatch(dataURL)
	if m == nil {
		return "", nil, store.ErrNotFound
	}
	b, err := base64.StdEncoding.DecodeString(m[2])
	if err != nil {
		if b, err = base64.RawStdEncoding.DecodeString(strings.TrimRight(m[2], "=")); err != nil {
			return "", nil, store.ErrNotFound
		}
	}
	return m[1], b, nil
}
