// Package textutil provides small text helpers shared across the module:
// whitespace normalisation for model-bound content and JSON-safe string
// rendering for log output.
package textutil
