package api

import (
	"math"

	"github.com/phrazzld/studybuddy-api/internal/domain"
)

// GenerateFlashcardsRequest is the payload of POST /generate_flashcards.
type GenerateFlashcardsRequest struct {
	Subject string `json:"subject"`
	Notes   string `json:"notes"`
}

// Validate requires a non-empty subject and notes.
func (r GenerateFlashcardsRequest) Validate() error {
	if r.Subject == "" || r.Notes == "" {
		return domain.NewValidationError("subject and notes", "are required", domain.ErrValidation)
	}
	return nil
}

// GenerateFlashcardsResponse is returned by POST /generate_flashcards.
type GenerateFlashcardsResponse struct {
	Questions []domain.GeneratedQuestion `json:"questions"`
}

// FlashcardResponse is one saved flashcard.
type FlashcardResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// GetFlashcardsResponse is returned by GET /get_flashcards/{subject}.
type GetFlashcardsResponse struct {
	Flashcards []FlashcardResponse `json:"flashcards"`
}

// CreatePaymentRequest is the payload of POST /create_payment. A missing
// amount selects the configured default. Any JSON number is accepted as long
// as it is whole, so 1000 and 1000.0 are the same amount.
type CreatePaymentRequest struct {
	Amount *float64 `json:"amount" validate:"omitempty,gt=0"`
}

// wholeAmount converts Amount to currency units. Run it after struct
// validation has rejected non-positive values.
func (r CreatePaymentRequest) wholeAmount() (*int, error) {
	if r.Amount == nil {
		return nil, nil
	}
	v := *r.Amount
	if v != math.Trunc(v) {
		return nil, domain.NewValidationError("amount", "must be a whole number", domain.ErrInvalidAmount)
	}
	if v > math.MaxInt32 {
		return nil, domain.NewValidationError("amount", "is too large", domain.ErrInvalidAmount)
	}
	units := int(v)
	return &units, nil
}

// CreatePaymentResponse is returned by POST /create_payment.
type CreatePaymentResponse struct {
	Success    bool   `json:"success"`
	PaymentURL string `json:"payment_url"`
	Reference  string `json:"reference"`
}

// WebhookResponse acknowledges a payment notification.
type WebhookResponse struct {
	Status string `json:"status"`
}

func flashcardsToResponse(cards []*domain.Flashcard) GetFlashcardsResponse {
	resp := GetFlashcardsResponse{Flashcards: make([]FlashcardResponse, 0, len(cards))}
	for _, c := range cards {
		resp.Flashcards = append(resp.Flashcards, FlashcardResponse{
			Question: c.Question,
			Answer:   c.Answer,
		})
	}
	return resp
}
