// Package pipeline is the job driver: it enumerates the working directory,
// dispatches one job per eligible file onto a worker pool bounded to the
// host's logical CPU count, joins every dispatched job, and then invokes
// the archive step.
package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"github.com/kelbwah/unihuff/internal/archive"
	"github.com/kelbwah/unihuff/internal/logging"
	"github.com/kelbwah/unihuff/internal/walk"
)

// BundleName is the archive file the encoder writes and the decoder reads.
const BundleName = "compressed_files.bin"

// DecodedDirPerm is the permission mode the decoder creates its output
// directory with — owner-only, per the external-interface contract.
const DecodedDirPerm = 0o700

// DecodedDirName is the directory decode writes reconstructed texts under.
const DecodedDirName = "decoded"

// Stats reports a run's wall-clock cost.
type Stats struct {
	ElapsedNanos int64
}

// pool bounds concurrent jobs to P = runtime.NumCPU(), joining every
// dispatched job exactly once before returning — the bounded-pool
// invariant from the concurrency model, implemented with a counting
// semaphore rather than a hand-rolled handle table.
type pool struct {
	sem *semaphore.Weighted
	wg  sync.WaitGroup

	mu       sync.Mutex
	failed   int
	firstErr error
}

func newPool() *pool {
	p := runtime.NumCPU()
	return &pool{sem: semaphore.NewWeighted(int64(p))}
}

// dispatch blocks until a slot is free, then runs fn on its own goroutine.
// A failing job is logged and counted but never cancels sibling jobs.
func (p *pool) dispatch(log zerolog.Logger, file string, fn func() error) {
	_ = p.sem.Acquire(context.Background(), 1)
	p.wg.Add(1)
	go func() {
		defer p.sem.Release(1)
		defer p.wg.Done()
		if err := fn(); err != nil {
			log.Error().Err(err).Str("file", file).Msg("job failed")
			p.mu.Lock()
			p.failed++
			if p.firstErr == nil {
				p.firstErr = err
			}
			p.mu.Unlock()
		}
	}()
}

// join waits for every dispatched job and reports how many failed, along
// with the first error encountered.
func (p *pool) join() (failed int, err error) {
	p.wg.Wait()
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.failed, p.firstErr
}

// RunEncode enumerates *.txt in dir, Huffman-encodes each on the worker
// pool, and bundles the resulting .huffman/.huffman.table pairs into
// BundleName once every job has joined.
func RunEncode(dir string, log zerolog.Logger) (Stats, error) {
	start := time.Now()

	names, err := walk.SourceTexts(dir)
	if err != nil {
		return Stats{}, err
	}

	p := newPool()
	for _, name := range names {
		name := name
		path := filepath.Join(dir, name)
		jobLog := logging.Stage(log, "huffman", name)
		p.dispatch(jobLog, name, func() error {
			return encodeFile(path)
		})
	}
	failed, jobErr := p.join()
	if failed > 0 {
		log.Warn().Int("failed", failed).Msg("some encode jobs failed")
	}

	if err := archive.Pack(dir, filepath.Join(dir, BundleName)); err != nil {
		return Stats{}, err
	}

	return Stats{ElapsedNanos: time.Since(start).Nanoseconds()}, jobErr
}

// RunDecode explodes BundleName in dir, then Huffman-decodes every
// resulting *.huffman file into the DecodedDirName directory under dir
// (created with DecodedDirPerm if missing) on the worker pool.
func RunDecode(dir string, log zerolog.Logger) (Stats, error) {
	start := time.Now()

	bundlePath := filepath.Join(dir, BundleName)
	if err := archive.Unpack(bundlePath, dir); err != nil {
		return Stats{}, err
	}

	outDir := filepath.Join(dir, DecodedDirName)
	if err := os.MkdirAll(outDir, DecodedDirPerm); err != nil {
		return Stats{}, err
	}

	names, err := walk.EncodedPayloads(dir)
	if err != nil {
		return Stats{}, err
	}

	p := newPool()
	for _, name := range names {
		name := name
		path := filepath.Join(dir, name)
		jobLog := logging.Stage(log, "bitcodec", name)
		p.dispatch(jobLog, name, func() error {
			if err := decodeFile(path, outDir); err != nil {
				return err
			}
			_ = os.Remove(path)
			_ = os.Remove(path + walk.TableSuffix)
			return nil
		})
	}
	failed, jobErr := p.join()
	if failed > 0 {
		log.Warn().Int("failed", failed).Msg("some decode jobs failed")
	}

	return Stats{ElapsedNanos: time.Since(start).Nanoseconds()}, jobErr
}
