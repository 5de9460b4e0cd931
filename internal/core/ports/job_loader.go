package ports

import "go.trai.ch/wasmtc/internal/core/domain"

// JobLoader defines the interface for loading job descriptions.
//
//go:generate mockgen -source=job_loader.go -destination=mocks/mock_job_loader.go -package=mocks
type JobLoader interface {
	// Load reads the job at path. A directory is searched for a job file.
	Load(path string) (*domain.Job, error)
}
