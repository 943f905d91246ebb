// Package gemini provides an implementation of the generation.Generator
// interface backed by Google's Gemini API (google.golang.org/genai).
//
// The adapter sends the prompt as a single text part, makes one attempt, and
// concatenates the text parts of the first candidate. Safety blocks are
// reported as generation.ErrContentBlocked; every other failure maps onto the
// generation error family so callers can fall back uniformly.
package gemini
