// Package fingerprint computes short identifiers for generated content.
// The hash is a Java-style 31-multiplier fold over UTF-16 code units with
// 32-bit signed wraparound, rendered as signed hexadecimal, so values match
// fingerprints produced by browser clients for the same text.
package fingerprint

import (
	"strconv"
	"unicode/utf16"
)

// Of returns the fingerprint of s. The empty string yields "0".
func Of(s string) string {
	return strconv.FormatInt(int64(Sum32(s)), 16)
}

// Sum32 returns the raw signed accumulator for s.
func Sum32(s string) int32 {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(u)
	}
	return h
}
