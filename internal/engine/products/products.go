// Package products declares the files that accompany a linked binary.
package products

import (
	"go.trai.ch/wasmtc/internal/core/domain"
	"go.trai.ch/wasmtc/internal/engine/actions"
)

// SymbolsExt is appended to the output path to form the symbol map path.
const SymbolsExt = ".symbols"

// Register adds the binary blob and symbol map of a non-static binary as required resources.
// Static libraries produce neither, so Register is a no-op for them.
func Register(bin domain.Binary, out *domain.BuildProducts) error {
	if bin.Kind == domain.BinaryStaticLibrary {
		return nil
	}
	if err := out.Add(actions.WasmPath(bin.OutputPath), domain.ProductRequiredResource); err != nil {
		return err
	}
	return out.Add(bin.OutputPath+SymbolsExt, domain.ProductRequiredResource)
}
