package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/studybuddy-api/internal/api"
	apiMiddleware "github.com/phrazzld/studybuddy-api/internal/api/middleware"
	"github.com/rs/cors"
)

// setupRouter creates the router with all routes and middleware.
func (app *application) setupRouter() (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	flashcardHandler := api.NewFlashcardHandler(app.flashcardService, app.logger)
	paymentHandler := api.NewPaymentHandler(app.paymentService, app.logger)
	pageHandler, err := api.NewPageHandler(app.config.Payment, app.logger)
	if err != nil {
		return nil, err
	}

	r.Get("/", pageHandler.Index)
	r.Get("/premium", pageHandler.Premium)
	r.Get("/payment_success", pageHandler.PaymentSuccess)

	r.Post("/generate_flashcards", flashcardHandler.GenerateFlashcards)
	r.Get("/get_flashcards/{subject}", flashcardHandler.GetFlashcards)

	r.Post("/create_payment", paymentHandler.CreatePayment)
	r.Post("/payment_webhook", paymentHandler.PaymentWebhook)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: app.config.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept", "Origin", apiMiddleware.TraceIDHeader},
		ExposedHeaders: []string{apiMiddleware.TraceIDHeader},
		MaxAge:         86400,
	})

	return corsHandler.Handler(r), nil
}
