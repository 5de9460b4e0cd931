package ports

import "go.trai.ch/wasmtc/internal/core/domain"

// SDKDetector locates the WebAssembly SDK.
//
//go:generate mockgen -source=sdk.go -destination=mocks/mock_sdk.go -package=mocks
type SDKDetector interface {
	// Detect returns the SDK found at dir, or through discovery when dir is empty.
	// An absent SDK is reported with Installed set to false, not as an error.
	Detect(dir string) (domain.SDKInfo, error)
}
