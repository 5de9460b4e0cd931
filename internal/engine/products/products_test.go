package products_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wasmtc/internal/core/domain"
	"go.trai.ch/wasmtc/internal/engine/products"
)

func TestRegister(t *testing.T) {
	tests := []struct {
		name string
		kind domain.BinaryKind
		want []domain.BuildProduct
	}{
		{
			name: "executable",
			kind: domain.BinaryExecutable,
			want: []domain.BuildProduct{
				{Path: "/out/game.wasm", Type: domain.ProductRequiredResource},
				{Path: "/out/game.js.symbols", Type: domain.ProductRequiredResource},
			},
		},
		{
			name: "dynamic library",
			kind: domain.BinaryDynamicLibrary,
			want: []domain.BuildProduct{
				{Path: "/out/game.wasm", Type: domain.ProductRequiredResource},
				{Path: "/out/game.js.symbols", Type: domain.ProductRequiredResource},
			},
		},
		{
			name: "static library",
			kind: domain.BinaryStaticLibrary,
			want: []domain.BuildProduct{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out domain.BuildProducts
			require.NoError(t, products.Register(domain.Binary{Kind: tt.kind, OutputPath: "/out/game.js"}, &out))
			assert.Equal(t, tt.want, out.Items())
		})
	}
}

func TestRegister_Duplicate(t *testing.T) {
	var out domain.BuildProducts
	bin := domain.Binary{Kind: domain.BinaryExecutable, OutputPath: "/out/game.js"}
	require.NoError(t, products.Register(bin, &out))

	err := products.Register(bin, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrDuplicateBuildProduct.Error())
}
