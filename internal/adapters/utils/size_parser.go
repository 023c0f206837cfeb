package utils

import (
	"fmt"

	"github.com/hailam/zipfix/internal/ports"
	"github.com/hailam/zipfix/internal/utils"
)

// UtilSizeParser adapts utils.ParseSize to the ports.SizeParser
// interface, rejecting non-positive targets.
type UtilSizeParser struct{}

// NewUtilSizeParser creates a new size parser adapter.
func NewUtilSizeParser() ports.SizeParser {
	return &UtilSizeParser{}
}

// Parse parses the size spec and enforces that archive targets are > 0.
func (p *UtilSizeParser) Parse(spec string) (int64, error) {
	sizeBytes, err := utils.ParseSize(spec)
	if err != nil {
		return 0, err
	}
	if sizeBytes <= 0 {
		return 0, fmt.Errorf("size must be greater than 0, got %d", sizeBytes)
	}
	return sizeBytes, nil
}
