package domain

import "time"

// PaymentReferencePrefix prefixes every generated payment reference.
const PaymentReferencePrefix = "AI_STUDY_BUDDY_"

// PaymentIntent describes a checkout the client is redirected to.
// It is never persisted.
type PaymentIntent struct {
	Reference   string    `json:"reference"`
	Amount      int       `json:"amount"`
	Currency    string    `json:"currency"`
	Method      string    `json:"method"`
	PaymentURL  string    `json:"payment_url"`
	RedirectURL string    `json:"redirect_url,omitempty"`
	WebhookURL  string    `json:"webhook_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewPaymentReference formats a payment reference for t, e.g.
// AI_STUDY_BUDDY_20240131235959.
func NewPaymentReference(t time.Time) string {
	return PaymentReferencePrefix + t.Format("20060102150405")
}
