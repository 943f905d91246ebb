// Package api handles incoming HTTP requests, request validation and
// response formatting. It adapts the JSON endpoints and HTML pages of the
// study buddy to the flashcard and payment services.
package api
