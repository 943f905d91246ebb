// Package domain contains the core entities of the study buddy service:
// flashcards produced from a student's notes, the question/answer pairs the
// text-generation API returns, and the transient payment intents of the
// premium flow. It has no dependency on storage or transport.
package domain
