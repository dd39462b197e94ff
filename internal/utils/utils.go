package utils

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// BytesPerMB is the number of bytes in one megabyte (MiB).
const BytesPerMB int64 = 1024 * 1024

// CharacterPool holds the 95 symbols random text is drawn from: ASCII
// letters, digits, punctuation and the space character.
const CharacterPool = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~" +
	" "

// MaxMegabytes is the largest size whose byte count fits in an int64.
const MaxMegabytes = math.MaxInt64 / BytesPerMB

// MegabytesToBytes converts a megabyte count into bytes. Callers must keep
// mb within [-MaxMegabytes, MaxMegabytes].
func MegabytesToBytes(mb int64) int64 {
	return mb * BytesPerMB
}

// BytesToMegabytes is used for progress output only.
func BytesToMegabytes(b int64) float64 {
	return float64(b) / float64(BytesPerMB)
}

// InPool reports whether every byte of b is part of pool.
func InPool(b []byte, pool string) bool {
	var set [256]bool
	for i := 0; i < len(pool); i++ {
		set[pool[i]] = true
	}
	for _, c := range b {
		if !set[c] {
			return false
		}
	}
	return true
}

// ParseSizeMB parses strings like "500", "500MB", "4M", "1G" into a number
// of megabytes. A bare number is read as megabytes.
func ParseSizeMB(sizeStr string) (int64, error) {
	sizeStr = strings.ToUpper(strings.TrimSpace(sizeStr))
	if sizeStr == "" {
		return 0, errors.New("size string is empty")
	}
	// Suffix multipliers, in megabytes
	suffixes := map[string]int64{
		"":  1,
		"M": 1, "MB": 1,
		"G": 1024, "GB": 1024,
	}

	numPart, suffix := sizeStr, ""
	for i, r := range sizeStr {
		if (r < '0' || r > '9') && !(i == 0 && r == '-') {
			numPart = sizeStr[:i]
			suffix = sizeStr[i:]
			break
		}
	}
	if numPart == "" || numPart == "-" {
		return 0, fmt.Errorf("invalid size number in '%s'", sizeStr)
	}

	var baseVal int64
	if _, err := fmt.Sscanf(numPart, "%d", &baseVal); err != nil {
		return 0, fmt.Errorf("invalid size number: %w", err)
	}
	mult, ok := suffixes[suffix]
	if !ok {
		return 0, fmt.Errorf("unknown size suffix '%s'", suffix)
	}
	if baseVal > math.MaxInt64/mult || baseVal < math.MinInt64/mult {
		return 0, fmt.Errorf("size '%s' is out of range", sizeStr)
	}
	return baseVal * mult, nil
}
