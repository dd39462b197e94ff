package txt

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/hailam/randfile/internal/adapters/progress"
	"github.com/hailam/randfile/internal/ports"
	"github.com/hailam/randfile/internal/utils"
)

// DefaultChunkSize bounds how much random text is held in memory at once.
// It is also the largest chunk size accepted.
const DefaultChunkSize = 1024 * 1024

// ErrInvalidChunkSize is returned for chunk sizes outside 1..DefaultChunkSize.
var ErrInvalidChunkSize = errors.New("chunk size must be between 1 and 1048576 bytes")

// Options configures a Generator. Zero values pick the defaults.
type Options struct {
	ChunkSize int
	Pool      string
	// Rand is the source of randomness. When nil the auto-seeded global
	// source of math/rand/v2 is used and output is not reproducible.
	Rand     *rand.Rand
	Progress ports.ProgressReporter
}

// Generator writes files of random printable characters chunk by chunk.
type Generator struct {
	chunkSize int
	pool      string
	rnd       *rand.Rand
	progress  ports.ProgressReporter
}

// New validates opts and returns a Generator. A zero ChunkSize means
// DefaultChunkSize.
func New(opts Options) (*Generator, error) {
	if opts.ChunkSize == 0 {
		opts.ChunkSize = DefaultChunkSize
	}
	if err := ValidateChunkSize(opts.ChunkSize); err != nil {
		return nil, err
	}
	if opts.Pool == "" {
		opts.Pool = utils.CharacterPool
	}
	if opts.Progress == nil {
		opts.Progress = progress.Nop{}
	}
	return &Generator{
		chunkSize: opts.ChunkSize,
		pool:      opts.Pool,
		rnd:       opts.Rand,
		progress:  opts.Progress,
	}, nil
}

// ValidateChunkSize reports whether n keeps peak memory within one
// DefaultChunkSize buffer.
func ValidateChunkSize(n int) error {
	if n < 1 || n > DefaultChunkSize {
		return fmt.Errorf("%w: got %d", ErrInvalidChunkSize, n)
	}
	return nil
}

// Generate creates (or truncates) path and fills it with size random
// characters. Completion is reported only once the data is synced and the
// file closed. A partially written file is left in place on error.
func (g *Generator) Generate(path string, size int64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	written, err := g.WriteRandom(f, size)
	if err == nil {
		err = f.Sync()
	}
	if cerr := f.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	g.progress.Done(written)
	return nil
}

// WriteRandom writes size random characters to w in chunks of at most the
// configured chunk size and returns the number of bytes written. The final
// chunk holds exactly the remainder. Progress is updated per chunk; Done is
// left to the caller.
func (g *Generator) WriteRandom(w io.Writer, size int64) (int64, error) {
	bufSize := g.chunkSize
	if size < int64(bufSize) {
		bufSize = int(max(size, 0))
	}
	buf := make([]byte, bufSize)

	var written int64
	for written < size {
		toWrite := bufSize
		if size-written < int64(bufSize) {
			toWrite = int(size - written)
		}
		g.fill(buf[:toWrite])
		n, err := w.Write(buf[:toWrite])
		written += int64(n)
		if err != nil {
			return written, err
		}
		if n < toWrite {
			return written, io.ErrShortWrite
		}
		g.progress.Update(written, size)
	}
	return written, nil
}

func (g *Generator) fill(b []byte) {
	n := len(g.pool)
	if g.rnd == nil {
		for i := range b {
			b[i] = g.pool[rand.IntN(n)]
		}
		return
	}
	for i := range b {
		b[i] = g.pool[g.rnd.IntN(n)]
	}
}
