// Package checkout validates purchase requests and hands them off to the
// external payment processor. The only substantive business rule lives
// here: a pedal must be checkout-eligible before a session is created.
// Everything past that gate is delegation.
package checkout

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"pedal-storefront/internal/cache"
	"pedal-storefront/internal/catalog"
)

// Categorized failures. Anything else returned by the service is an
// upstream processor failure, already wrapped with context.
var (
	// ErrInvalidRequest means the caller sent a malformed request and can
	// recover by correcting it.
	ErrInvalidRequest = stderrors.New("invalid request")
	// ErrUnknownProduct covers both an unknown slug and an ineligible
	// pedal; the two are deliberately indistinguishable to callers.
	ErrUnknownProduct = stderrors.New("unknown product")
	// ErrConfiguration is a server-side precondition failure (no origin
	// to build return URLs from). Not something the caller can fix.
	ErrConfiguration = stderrors.New("unable to determine site origin")
)

const (
	maxQuantity     = 10
	defaultQuantity = 1

	sessionDetailsTTL = 5 * time.Minute
)

// CreateSessionRequest is the inbound purchase request. Quantity zero
// binds to the default of 1.
type CreateSessionRequest struct {
	Slug     string `json:"slug" binding:"required"`
	Quantity int64  `json:"quantity" binding:"omitempty,min=1,max=10"`
}

// Session is the processor's answer to a session-creation request.
type Session struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// SessionDetails is what the post-checkout confirmation view needs.
type SessionDetails struct {
	ID            string `json:"id"`
	CustomerEmail string `json:"customer_email,omitempty"`
	PaymentStatus string `json:"payment_status,omitempty"`
}

// SessionRequest is the outbound session-creation request built for the
// payment provider once validation has passed.
type SessionRequest struct {
	PriceID     string
	Quantity    int64
	SuccessURL  string
	CancelURL   string
	ProductSlug string
	ProductName string
}

// PaymentProvider is the external payment processor boundary.
type PaymentProvider interface {
	CreateSession(ctx context.Context, req SessionRequest) (Session, error)
	GetSession(ctx context.Context, id string) (SessionDetails, error)
}

// Service gates checkout requests against the catalog and delegates to
// the payment provider. It mutates no local state on any request path;
// the session-details cache only memoizes provider reads.
type Service struct {
	catalog  *catalog.Catalog
	provider PaymentProvider
	siteURL  string
	log      *zap.Logger
	sessions *cache.Cache
}

func NewService(cat *catalog.Catalog, provider PaymentProvider, siteURL string, log *zap.Logger) *Service {
	return &Service{
		catalog:  cat,
		provider: provider,
		siteURL:  siteURL,
		log:      log,
		sessions: cache.New(sessionDetailsTTL),
	}
}

// CreateSession validates req, resolves the pedal, and asks the provider
// for a hosted checkout session. origin is the caller's declared Origin
// header; when empty the configured site URL is used instead.
func (s *Service) CreateSession(ctx context.Context, req CreateSessionRequest, origin string) (Session, error) {
	if req.Quantity == 0 {
		req.Quantity = defaultQuantity
	}
	if req.Slug == "" || req.Quantity < 1 || req.Quantity > maxQuantity {
		return Session{}, ErrInvalidRequest
	}

	pedal, ok := s.catalog.BySlug(req.Slug)
	if !ok || !pedal.CheckoutEligible() {
		return Session{}, ErrUnknownProduct
	}

	if origin == "" {
		origin = s.siteURL
	}
	if origin == "" {
		return Session{}, ErrConfiguration
	}

	sess, err := s.provider.CreateSession(ctx, SessionRequest{
		PriceID:     pedal.StripePriceID,
		Quantity:    req.Quantity,
		SuccessURL:  origin + "/checkout/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   origin + "/checkout/cancel",
		ProductSlug: pedal.Slug,
		ProductName: pedal.Name,
	})
	if err != nil {
		s.log.Error("create checkout session failed",
			zap.String("slug", pedal.Slug),
			zap.Error(err))
		return Session{}, errors.Wrap(err, "create checkout session")
	}

	s.log.Info("checkout session created",
		zap.String("slug", pedal.Slug),
		zap.Int64("quantity", req.Quantity),
		zap.String("session_id", sess.ID))
	return sess, nil
}

// SessionDetails retrieves processor-side details for the confirmation
// view. Lookups are cached briefly; the confirmation page may be
// reloaded several times for the same session.
func (s *Service) SessionDetails(ctx context.Context, id string) (SessionDetails, error) {
	if id == "" {
		return SessionDetails{}, ErrInvalidRequest
	}

	var details SessionDetails
	if hit, err := s.sessions.Get(id, &details); err == nil && hit {
		return details, nil
	}

	details, err := s.provider.GetSession(ctx, id)
	if err != nil {
		s.log.Error("retrieve checkout session failed",
			zap.String("session_id", id),
			zap.Error(err))
		return SessionDetails{}, errors.Wrap(err, "retrieve checkout session")
	}

	if err := s.sessions.Set(id, details); err != nil {
		s.log.Warn("cache checkout session failed", zap.Error(err))
	}
	return details, nil
}
