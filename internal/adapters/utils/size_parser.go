package utils

import (
	"github.com/hailam/randfile/internal/ports"
	"github.com/hailam/randfile/internal/utils"
)

// UtilSizeParser adapts the utils.ParseSizeMB function to the ports.SizeParser interface.
type UtilSizeParser struct{}

// NewUtilSizeParser creates a new size parser adapter.
func NewUtilSizeParser() *UtilSizeParser {
	return &UtilSizeParser{}
}

// Parse returns the size spec in megabytes.
func (p *UtilSizeParser) Parse(spec string) (int64, error) {
	return utils.ParseSizeMB(spec)
}

var _ ports.SizeParser = (*UtilSizeParser)(nil)
