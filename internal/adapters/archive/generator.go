package archive

import (
	"archive/zip"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hailam/zipfix/internal/ports"
	"github.com/hailam/zipfix/internal/utils"
)

const (
	// MinChunk and MaxChunk bound the payload size of a single entry.
	MinChunk = 1 << 10
	MaxChunk = 64 << 10
)

// Buckets are the directory prefixes the target size is split across.
var Buckets = []string{"docs", "data", "logs", "media"}

var (
	textExts   = []string{".txt", ".md", ".log", ".csv"}
	binaryExts = []string{".bin", ".dat", ".img"}
)

// ArchiveGenerator writes valid ZIP fixtures with mixed entries: random
// text and binary payloads spread across directory buckets, alternating
// between Deflate and Store per entry.
type ArchiveGenerator struct {
	rng *rand.Rand
}

func New() ports.FixtureGenerator {
	return NewWithRand(utils.NewRand())
}

// NewWithRand uses the given random source, enabling reproducible fixtures.
func NewWithRand(rng *rand.Rand) ports.FixtureGenerator {
	return &ArchiveGenerator{rng: rng}
}

// Generate writes a ZIP at path whose cumulative uncompressed entry size
// reaches size bytes. The target is split evenly across Buckets (remainder
// to the last bucket); a size of zero yields a valid empty archive. Any
// existing file at path is replaced.
func (g *ArchiveGenerator) Generate(path string, size int64) error {
	if size < 0 {
		size = 0
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	zw := zip.NewWriter(f)

	share := size / int64(len(Buckets))
	if size < MinChunk {
		// Tiny targets become a single minimal entry instead of being
		// scattered across every bucket.
		share = 0
	}
	for i, bucket := range Buckets {
		budget := share
		if i == len(Buckets)-1 {
			budget += size - share*int64(len(Buckets))
		}
		if err := g.fillBucket(zw, bucket, budget); err != nil {
			zw.Close()
			f.Close()
			return err
		}
	}

	// Close flushes the central directory; without it the archive is truncated.
	if err := zw.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// fillBucket appends entries under bucket/ until budget is spent. Chunk
// sizes are drawn from [MinChunk, MaxChunk] and clamped to the remaining
// budget, so the loop terminates even for sub-MinChunk budgets.
func (g *ArchiveGenerator) fillBucket(zw *zip.Writer, bucket string, budget int64) error {
	for idx := 0; budget > 0; idx++ {
		chunk := int64(MinChunk + g.rng.IntN(MaxChunk-MinChunk+1))
		if chunk > budget {
			chunk = budget
		}

		isText := g.rng.IntN(2) == 0
		var ext string
		if isText {
			ext = textExts[g.rng.IntN(len(textExts))]
		} else {
			ext = binaryExts[g.rng.IntN(len(binaryExts))]
		}

		// Alternating methods guarantees both appear once a bucket has
		// two entries or more.
		method := uint16(zip.Deflate)
		if idx%2 == 1 {
			method = zip.Store
		}

		hdr := &zip.FileHeader{
			Name:     fmt.Sprintf("%s/file_%04d%s", bucket, idx, ext),
			Method:   method,
			Modified: time.Now(),
		}
		w, err := zw.CreateHeader(hdr)
		if err != nil {
			return err
		}
		if isText {
			err = utils.WriteRandomText(w, g.rng, chunk)
		} else {
			err = utils.WriteRandomBytes(w, g.rng, chunk)
		}
		if err != nil {
			return err
		}
		budget -= chunk
	}
	return nil
}
