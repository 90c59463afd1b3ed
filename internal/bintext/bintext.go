// Package bintext converts between one-byte blocks and the textual
// binary form the command line speaks: whitespace-separated groups of
// exactly eight '0'/'1' digits. It is the only layer in the program with
// inputs that can be malformed, so it owns the whole error taxonomy.
package bintext

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseBlock converts one 8-digit binary string into a block.
func ParseBlock(s string) (byte, error) {
	if len(s) != 8 {
		return 0, fmt.Errorf("bintext: block %q has %d digits, want exactly 8", s, len(s))
	}
	v, err := strconv.ParseUint(s, 2, 8)
	if err != nil {
		return 0, fmt.Errorf("bintext: block %q is not a binary string: only '0' and '1' are allowed", s)
	}
	return byte(v), nil
}

// ParseBlocks splits input on whitespace and parses every field as one
// block. An input with no fields yields an empty, non-nil sequence.
func ParseBlocks(input string) ([]byte, error) {
	fields := strings.Fields(input)
	blocks := make([]byte, 0, len(fields))
	for _, f := range fields {
		b, err := ParseBlock(f)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

// FormatBlocks renders blocks as space-separated 8-digit binary groups,
// the inverse of ParseBlocks.
func FormatBlocks(blocks []byte) string {
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = fmt.Sprintf("%08b", b)
	}
	return strings.Join(parts, " ")
}
