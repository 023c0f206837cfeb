package samples

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"math/rand/v2"
	"os"
	"time"

	"github.com/Eyevinn/mp4ff/mp4"
	"github.com/signintech/gopdf"
	"github.com/xuri/excelize/v2"

	"github.com/hailam/zipfix/internal/ports"
	"github.com/hailam/zipfix/internal/utils"
)

// DefaultPayloadSize is the mdat payload size used when sizeBytes <= 0.
const DefaultPayloadSize = 4096

// Tiny baseline-profile H.264 parameter sets, enough for a structurally
// valid avcC box. Start codes already stripped.
var (
	spsNAL = []byte{0x67, 0x42, 0x00, 0x0a, 0xf8, 0x41, 0xa2}
	ppsNAL = []byte{0x68, 0xce, 0x38, 0x80}
)

// SamplesGenerator writes an archive of small but structurally real
// documents. Downstream content-sniffing code gets genuine magic bytes
// (%PDF, OOXML, ftyp, PNG) inside a ZIP instead of noise.
type SamplesGenerator struct {
	rng *rand.Rand
}

func New() ports.FixtureGenerator {
	return NewWithRand(utils.NewRand())
}

// NewWithRand uses the given random source, enabling reproducible fixtures.
func NewWithRand(rng *rand.Rand) ports.FixtureGenerator {
	return &SamplesGenerator{rng: rng}
}

// Generate writes the samples archive at path. sizeBytes scales the MP4
// payload only; the document entries are as small as their formats allow.
func (g *SamplesGenerator) Generate(path string, sizeBytes int64) error {
	if sizeBytes <= 0 {
		sizeBytes = DefaultPayloadSize
	}

	type entry struct {
		name   string
		method uint16
		build  func() ([]byte, error)
	}
	// PDF text compresses well; the other three are containers that are
	// already compressed internally, so they go in stored.
	entries := []entry{
		{"report.pdf", zip.Deflate, g.buildPDF},
		{"sheet.xlsx", zip.Store, g.buildXLSX},
		{"clip.mp4", zip.Store, func() ([]byte, error) { return g.buildMP4(sizeBytes) }},
		{"noise.png", zip.Store, g.buildPNG},
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	zw := zip.NewWriter(f)
	for _, e := range entries {
		data, err := e.build()
		if err != nil {
			zw.Close()
			f.Close()
			return fmt.Errorf("failed to build %s: %w", e.name, err)
		}
		hdr := &zip.FileHeader{Name: e.name, Method: e.method, Modified: time.Now()}
		w, err := zw.CreateHeader(hdr)
		if err != nil {
			zw.Close()
			f.Close()
			return err
		}
		if _, err := w.Write(data); err != nil {
			zw.Close()
			f.Close()
			return err
		}
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// buildPDF draws a handful of random line segments on one A4 page. No
// font is embedded, so the document stays a few KB.
func (g *SamplesGenerator) buildPDF() ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()
	pdf.SetLineWidth(0.8)
	for i := 0; i < 16; i++ {
		x1 := float64(g.rng.IntN(500)) + 20
		y1 := float64(g.rng.IntN(780)) + 20
		x2 := float64(g.rng.IntN(500)) + 20
		y2 := float64(g.rng.IntN(780)) + 20
		pdf.Line(x1, y1, x2, y2)
	}
	return pdf.GetBytesPdf(), nil
}

// buildXLSX fills one column of Sheet1 with random strings.
func (g *SamplesGenerator) buildXLSX() ([]byte, error) {
	x := excelize.NewFile()
	defer x.Close()
	const rows = 32
	for r := 1; r <= rows; r++ {
		cell, err := excelize.CoordinatesToCellName(1, r)
		if err != nil {
			return nil, err
		}
		if err := x.SetCellValue("Sheet1", cell, utils.RandString(g.rng, 20)); err != nil {
			return nil, err
		}
	}
	buf := &bytes.Buffer{}
	if err := x.Write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// buildMP4 emits ftyp + moov for a single AVC video track, then an mdat
// box holding payloadSize random bytes.
func (g *SamplesGenerator) buildMP4(payloadSize int64) ([]byte, error) {
	init := mp4.CreateEmptyInit()
	trackID := init.Moov.Mvhd.NextTrackID
	init.Moov.Mvhd.NextTrackID++
	trak := mp4.CreateEmptyTrak(trackID, 90000, "video", "und")
	init.Moov.AddChild(trak)
	init.Moov.Mvex.AddChild(mp4.CreateTrex(trackID))
	if err := trak.SetAVCDescriptor("avc1", [][]byte{spsNAL}, [][]byte{ppsNAL}, true); err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	ftyp := mp4.NewFtyp("isom", 0x200, []string{"isom", "iso2", "avc1", "mp41"})
	if err := ftyp.Encode(buf); err != nil {
		return nil, err
	}
	if err := init.Moov.Encode(buf); err != nil {
		return nil, err
	}

	hdr := make([]byte, 8)
	binary.BigEndian.PutUint32(hdr[0:4], uint32(payloadSize+8))
	copy(hdr[4:8], []byte("mdat"))
	buf.Write(hdr)
	if err := utils.WriteRandomBytes(buf, g.rng, payloadSize); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// buildPNG encodes a 64x64 noise image.
func (g *SamplesGenerator) buildPNG() ([]byte, error) {
	const side = 64
	img := image.NewNRGBA(image.Rect(0, 0, side, side))
	for i := range img.Pix {
		img.Pix[i] = byte(g.rng.IntN(256))
	}
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
