package llm

import "errors"

// Sentinel errors returned by Client.Generate. Callers in the intelligence
// layer branch on these to pick a deterministic fallback.
var (
	ErrUnavailable    = errors.New("llm endpoint unavailable")
	ErrTimeout        = errors.New("llm request timed out")
	ErrInvalidOutput  = errors.New("invalid llm output format")
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
