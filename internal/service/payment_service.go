package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/studybuddy-api/internal/config"
	"github.com/phrazzld/studybuddy-api/internal/domain"
	"github.com/phrazzld/studybuddy-api/internal/platform/logger"
)

// PaymentRequest describes a checkout to create.
type PaymentRequest struct {
	// Amount in the configured currency. Nil means the configured default.
	Amount *int

	// BaseURL is the public URL of this service, used to build the redirect
	// and webhook URLs. It may be empty.
	BaseURL string
}

// PaymentService provides the premium payment flow. No payment provider is
// contacted: CreatePayment only builds the checkout URL and HandleWebhook
// only acknowledges the notification.
type PaymentService interface {
	CreatePayment(ctx context.Context, req PaymentRequest) (*domain.PaymentIntent, error)
	HandleWebhook(ctx context.Context, payload []byte) error
}

// PaymentOption customizes a PaymentService.
type PaymentOption func(*paymentServiceImpl)

// WithClock replaces time.Now as the source of payment timestamps.
func WithClock(now func() time.Time) PaymentOption {
	return func(s *paymentServiceImpl) {
		s.now = now
	}
}

type paymentServiceImpl struct {
	cfg    config.PaymentConfig
	now    func() time.Time
	logger *slog.Logger
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(cfg config.PaymentConfig, logger *slog.Logger, opts ...PaymentOption) (PaymentService, error) {
	if cfg.CheckoutBaseURL == "" {
		return nil, &ServiceError{Operation: "create_service", Message: "checkout base URL cannot be empty"}
	}
	if cfg.DefaultAmount <= 0 {
		return nil, &ServiceError{Operation: "create_service", Message: "default amount must be positive"}
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	s := &paymentServiceImpl{
		cfg:    cfg,
		now:    time.Now,
		logger: logger.With("component", "payment_service"),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// CreatePayment implements PaymentService.
func (s *paymentServiceImpl) CreatePayment(
	ctx context.Context,
	req PaymentRequest,
) (*domain.PaymentIntent, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	amount := s.cfg.DefaultAmount
	if req.Amount != nil {
		amount = *req.Amount
	}
	if amount <= 0 {
		return nil, domain.NewValidationError("amount", "must be greater than zero", domain.ErrInvalidAmount)
	}

	now := s.now()
	reference := domain.NewPaymentReference(now)

	intent := &domain.PaymentIntent{
		Reference:  reference,
		Amount:     amount,
		Currency:   s.cfg.Currency,
		Method:     s.cfg.Method,
		PaymentURL: strings.TrimRight(s.cfg.CheckoutBaseURL, "/") + "/" + reference,
		CreatedAt:  now.UTC(),
	}
	if base := strings.TrimRight(req.BaseURL, "/"); base != "" {
		intent.RedirectURL = base + "/payment_success"
		intent.WebhookURL = base + "/payment_webhook"
	}

	log.Info("payment intent created",
		"reference", reference,
		"amount", amount,
		"currency", intent.Currency,
		"method", intent.Method)

	return intent, nil
}

// HandleWebhook implements PaymentService. The payload is neither verified
// nor applied; only its size is logged.
func (s *paymentServiceImpl) HandleWebhook(ctx context.Context, payload []byte) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Info("payment webhook received", "payload_bytes", len(payload))
	return nil
}
