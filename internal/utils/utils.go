package utils

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

// ParseSize parses strings like "500", "10K", "4MB", "1G" into a number of bytes.
func ParseSize(sizeStr string) (int64, error) {
	sizeStr = strings.ToUpper(strings.TrimSpace(sizeStr))
	if sizeStr == "" {
		return 0, errors.New("size string is empty")
	}
	// Split into leading digits and a suffix.
	i := 0
	for i < len(sizeStr) && sizeStr[i] >= '0' && sizeStr[i] <= '9' {
		i++
	}
	numPart, suffix := sizeStr[:i], sizeStr[i:]
	if numPart == "" {
		return 0, fmt.Errorf("invalid size number in '%s'", sizeStr)
	}
	baseVal, err := strconv.ParseInt(numPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size number: %v", err)
	}
	switch suffix {
	case "", "B":
		return baseVal, nil
	case "K", "KB":
		return baseVal * 1024, nil
	case "M", "MB":
		return baseVal * 1024 * 1024, nil
	case "G", "GB":
		return baseVal * 1024 * 1024 * 1024, nil
	}
	return 0, fmt.Errorf("unknown size suffix '%s'", suffix)
}

// NewRand returns a clock-seeded random source. Generators that need
// reproducible output take a *rand.Rand instead of calling this.
func NewRand() *rand.Rand {
	now := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(now, now>>32))
}

// textCharset matches the original fixture script: letters, digits, newline.
const textCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789\n"

// WriteRandomText writes n bytes of random printable text to w.
func WriteRandomText(w io.Writer, rng *rand.Rand, n int64) error {
	return writeRandom(w, n, func(buf []byte) {
		for i := range buf {
			buf[i] = textCharset[rng.IntN(len(textCharset))]
		}
	})
}

// WriteRandomBytes writes n uniformly random bytes to w.
func WriteRandomBytes(w io.Writer, rng *rand.Rand, n int64) error {
	return writeRandom(w, n, func(buf []byte) {
		for i := range buf {
			buf[i] = byte(rng.IntN(256))
		}
	})
}

func writeRandom(w io.Writer, n int64, fill func([]byte)) error {
	const bufSize = 8192
	buf := make([]byte, bufSize)
	var written int64
	for written < n {
		toWrite := int64(bufSize)
		if n-written < toWrite {
			toWrite = n - written
		}
		fill(buf[:toWrite])
		if _, err := w.Write(buf[:toWrite]); err != nil {
			return err
		}
		written += toWrite
	}
	return nil
}

// RandString returns a random A-Z string of length n.
func RandString(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('A' + rng.IntN(26))
	}
	return string(b)
}
