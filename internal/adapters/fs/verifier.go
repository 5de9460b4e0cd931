package fs

import (
	"os"

	"go.trai.ch/wasmtc/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Verifier = (*Verifier)(nil)

// Verifier provides functionality to verify the existence of files.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// VerifyOutputs checks if all output files exist.
// It returns true if all outputs exist, false otherwise.
func (v *Verifier) VerifyOutputs(outputs []string) (bool, error) {
	for _, output := range outputs {
		if _, err := os.Stat(output); err != nil {
			if os.IsNotExist(err) {
				return false, nil
			}
			return false, zerr.With(zerr.Wrap(err, "failed to stat output"), "path", output)
		}
	}
	return true, nil
}
