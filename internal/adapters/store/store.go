// Package store persists action fingerprints in a bbolt database.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.etcd.io/bbolt"
	"go.trai.ch/wasmtc/internal/core/domain"
	"go.trai.ch/wasmtc/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FingerprintStore = (*Store)(nil)

const bucketName = "fingerprints"

// Store implements ports.FingerprintStore using bbolt.
// The database is opened on first use and kept open until Close.
type Store struct {
	path string
	mu   sync.Mutex
	db   *bbolt.DB
}

// NewStore creates a store backed by the default state database.
func NewStore() *Store {
	return NewStoreWithPath(filepath.Join(domain.DefaultStateDir, domain.FingerprintDBFile))
}

// NewStoreWithPath creates a store backed by the database at path.
func NewStoreWithPath(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// Path returns the database path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) open() (*bbolt.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db, nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFingerprintStoreOpenFailed.Error()), "path", s.path)
	}

	db, err := bbolt.Open(s.path, domain.PrivateFilePerm, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFingerprintStoreOpenFailed.Error()), "path", s.path)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFingerprintStoreOpenFailed.Error()), "path", s.path)
	}

	s.db = db
	return db, nil
}

// Get retrieves the fingerprint recorded for an artifact.
func (s *Store) Get(artifact string) (*domain.Fingerprint, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}

	var fp *domain.Fingerprint
	err = db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(bucketName)).Get([]byte(artifact))
		if data == nil {
			return nil
		}
		var decoded domain.Fingerprint
		if err := json.Unmarshal(data, &decoded); err != nil {
			return err
		}
		fp = &decoded
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFingerprintStoreReadFailed.Error()), "artifact", artifact)
	}
	return fp, nil
}

// Put stores the fingerprint.
func (s *Store) Put(fp domain.Fingerprint) error {
	db, err := s.open()
	if err != nil {
		return err
	}

	data, err := json.Marshal(fp)
	if err != nil {
		return zerr.Wrap(err, domain.ErrFingerprintStoreWriteFailed.Error())
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(fp.Artifact), data)
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFingerprintStoreWriteFailed.Error()), "artifact", fp.Artifact)
	}
	return nil
}

// Close closes the database if it was opened.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
