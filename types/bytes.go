package types

import (
	"github.com/dogechain-lab/objectchain/helper/hex"
)

// CopyBytes returns an exact copy of the provided bytes.
func CopyBytes(b []byte) (copiedBytes []byte) {
	if b == nil {
		return nil
	}

	copiedBytes = make([]byte, len(b))
	copy(copiedBytes, b)

	return
}

// StringToBytes decodes a hex literal, ignoring malformed input
func StringToBytes(str string) []byte {
	b, _ := hex.DecodeHexPadded(str)

	return b
}

// TrimLeftZeroes returns a subslice of s without leading zeroes
func TrimLeftZeroes(s []byte) []byte {
	idx := 0
	for ; idx < len(s); idx++ {
		if s[idx] != 0 {
			break
		}
	}

	return s[idx:]
}

// leftPad copies b into the tail of a zeroed buffer of the given size
func leftPad(b []byte, size int) []byte {
	if len(b) >= size {
		return b
	}

	padded := make([]byte, size)
	copy(padded[size-len(b):], b)

	return padded
}
