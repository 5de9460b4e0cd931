package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"sort"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/wasmtc/internal/core/domain"
	"go.trai.ch/wasmtc/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.Hasher = (*Hasher)(nil)

// maxConcurrentHashes bounds the number of files hashed at once.
const maxConcurrentHashes = 8

// Hasher computes content hashes and action keys using xxhash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, err
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, err
	}

	return hasher.Sum64(), nil
}

// HashFiles hashes the given files concurrently. Files that do not exist are left out of
// the result; they are produced later or are genuinely missing, and either way the action
// stays stale.
func (h *Hasher) HashFiles(ctx context.Context, paths []string) (map[string]string, error) {
	var (
		mu     sync.Mutex
		result = make(map[string]string, len(paths))
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentHashes)

	for _, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sum, err := h.ComputeFileHash(path)
			if err != nil {
				if errors.Is(err, iofs.ErrNotExist) {
					return nil
				}
				return zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
			}
			mu.Lock()
			result[path] = fmt.Sprintf("%016x", sum)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}

// ActionKey derives a single hash from the action's command, environment, outputs and the
// hashes of its prerequisites. A prerequisite missing from inputs hashes as absent, which
// changes the key once it appears.
func (h *Hasher) ActionKey(action *domain.Action, inputs map[string]string) string {
	hasher := xxhash.New()

	_, _ = hasher.WriteString(action.Kind.String())
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.WriteString(action.CommandPath)
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.WriteString(action.WorkingDir)
	_, _ = hasher.Write([]byte{0})

	for _, arg := range action.Arguments {
		_, _ = hasher.WriteString(arg)
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	h.hashEnvironment(action.Environment, hasher)

	for _, pre := range action.Prerequisites.Paths() {
		_, _ = hasher.WriteString(pre)
		_, _ = hasher.Write([]byte{'='})
		_, _ = hasher.WriteString(inputs[pre])
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})

	for _, out := range action.Produced.Paths() {
		_, _ = hasher.WriteString(out)
		_, _ = hasher.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}

// hashEnvironment hashes environment variables in a deterministic order.
func (h *Hasher) hashEnvironment(env map[string]string, hasher *xxhash.Digest) {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		_, _ = hasher.WriteString(k)
		_, _ = hasher.Write([]byte{'='})
		_, _ = hasher.WriteString(env[k])
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})
}
