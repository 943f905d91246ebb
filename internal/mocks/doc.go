// Package mocks provides hand-written test doubles for the generation and
// store interfaces. Each mock records its calls and can be scripted either
// with fixed return values or with a function field.
package mocks
