// Package errors provides classified error primitives used across docsite.
//
// A ClassifiedError carries a category, a severity and a context map so the
// CLI can pick an exit code and log structured details without string
// matching on messages.
//
// Example usage:
//
//	err := errors.NewError(errors.CategoryConfig, "unsupported configuration version").
//		WithContext("version", cfg.Version).
//		Build()
package errors
