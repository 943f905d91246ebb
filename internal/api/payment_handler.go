package api

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/phrazzld/studybuddy-api/internal/api/shared"
	"github.com/phrazzld/studybuddy-api/internal/platform/logger"
	"github.com/phrazzld/studybuddy-api/internal/service"
)

// PaymentHandler handles the premium checkout endpoints.
type PaymentHandler struct {
	paymentService service.PaymentService
	logger         *slog.Logger
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService service.PaymentService, logger *slog.Logger) *PaymentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger.With("component", "payment_handler"),
	}
}

// CreatePayment handles POST /create_payment.
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	amount, err := req.wholeAmount()
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	intent, err := h.paymentService.CreatePayment(r.Context(), service.PaymentRequest{
		Amount:  amount,
		BaseURL: baseURL(r),
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create payment")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CreatePaymentResponse{
		Success:    true,
		PaymentURL: intent.PaymentURL,
		Reference:  intent.Reference,
	})
}

// PaymentWebhook handles POST /payment_webhook. Notifications are always
// acknowledged.
func (h *PaymentHandler) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, shared.MaxRequestBodyBytes))
	if err != nil {
		log.Warn("failed to read payment webhook body", "error", err)
	}

	if err := h.paymentService.HandleWebhook(r.Context(), payload); err != nil {
		log.Error("payment webhook handling failed", "error", err)
	}

	shared.RespondWithJSON(w, r, http.StatusOK, WebhookResponse{Status: "received"})
}
