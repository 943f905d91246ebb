package api

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/phrazzld/studybuddy-api/internal/api/shared"
	"github.com/phrazzld/studybuddy-api/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

// Subjects offered on the index page.
var Subjects = []string{"Biology", "Chemistry", "Physics", "Mathematics", "History", "Computer Science"}

type pageData struct {
	Title         string
	Subjects      []string
	Currency      string
	DefaultAmount int
}

// PageHandler renders the HTML pages.
type PageHandler struct {
	pages   map[string]*template.Template
	payment config.PaymentConfig
	logger  *slog.Logger
}

// NewPageHandler parses the embedded page templates.
func NewPageHandler(payment config.PaymentConfig, logger *slog.Logger) (*PageHandler, error) {
	if logger == nil {
		logger = slog.Default()
	}

	pages := make(map[string]*template.Template)
	for _, name := range []string{"index.html", "premium.html", "payment_success.html"} {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &PageHandler{
		pages:   pages,
		payment: payment,
		logger:  logger.With("component", "page_handler"),
	}, nil
}

// Index handles GET /.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "index.html", pageData{Title: "Flashcards", Subjects: Subjects})
}

// Premium handles GET /premium.
func (h *PageHandler) Premium(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "premium.html", pageData{
		Title:         "Premium",
		Currency:      h.payment.Currency,
		DefaultAmount: h.payment.DefaultAmount,
	})
}

// PaymentSuccess handles GET /payment_success.
func (h *PageHandler) PaymentSuccess(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "payment_success.html", pageData{Title: "Payment received"})
}

// render executes into a buffer first so a template error still produces a
// clean 500 response.
func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	var buf bytes.Buffer
	if err := h.pages[name].ExecuteTemplate(&buf, "layout", data); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to render page", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Debug("failed to write page", "page", name, "error", err)
	}
}
