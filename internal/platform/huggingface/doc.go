// Package huggingface implements generation.Generator on top of the Hugging
// Face Inference API.
package huggingface
