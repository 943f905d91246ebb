// Package service contains the application use cases: generating flashcards
// from study notes, listing saved flashcards, and the stubbed premium payment
// flow.
//
// Services receive their dependencies through constructor injection and
// depend only on interfaces (store.FlashcardStore, generation.Generator),
// never on a concrete database or HTTP client.
//
// Error handling principles:
//  1. Invalid input is reported as a *domain.ValidationError (errors.Is
//     domain.ErrValidation).
//  2. Text-generation failures never reach the caller; fallback questions
//     are returned instead.
//  3. Storage failures while saving are logged and swallowed; storage
//     failures while reading are returned wrapped in *ServiceError.
package service
