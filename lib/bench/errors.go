package bench

import (
	"fmt"

	"github.com/techishthoughts/serbench/lib/payload"
)

// GenerationError is fatal: the dataset for a run could not be produced.
// It aborts the run before any measurement happens.
type GenerationError struct {
	Tier payload.ComplexityTier
	Err  error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("bench: dataset generation failed for tier %s: %v", e.Tier, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// ContractViolationError is fatal: an adapter returned a malformed response
// (nil dataset without error, successful result without data, failed result
// without an error message). It aborts the run and surfaces to the caller
// with the offending backend and phase.
type ContractViolationError struct {
	Backend string
	Phase   string
	Reason  string
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("bench: adapter contract violation by %q during %s: %s", e.Backend, e.Phase, e.Reason)
}

// IterationError is recoverable: a single iteration failed to encode or
// decode. It is captured into the per-iteration result and the run proceeds.
type IterationError struct {
	Backend   string
	Iteration int
	Phase     string
	Err       error
}

func (e *IterationError) Error() string {
	return fmt.Sprintf("bench: iteration %d (%s) failed for %q: %v", e.Iteration, e.Phase, e.Backend, e.Err)
}

func (e *IterationError) Unwrap() error { return e.Err }
