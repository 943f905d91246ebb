// Package generation defines the boundary between the flashcard service and
// external text-generation APIs. The Generator interface turns a prompt into
// raw text; ParseQuestions extracts question/answer pairs from that text; and
// PromptBuilder renders the prompt from a subject and the student's notes.
//
// Adapters live under internal/platform (huggingface, gemini). Every failure
// they report wraps ErrUnavailable so callers can fall back uniformly.
package generation
