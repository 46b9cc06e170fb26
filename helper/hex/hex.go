package hex

import (
	"encoding/hex"
	"errors"
	"strings"
)

// Prefix is the marker carried by hex literals
const Prefix = "0x"

var ErrOddLength = errors.New("hex string has odd length")

// EncodeToString returns the plain hex form of the bytes
func EncodeToString(b []byte) string {
	return hex.EncodeToString(b)
}

// EncodeToHex returns the 0x prefixed hex form of the bytes
func EncodeToHex(b []byte) string {
	return Prefix + hex.EncodeToString(b)
}

// Has0xPrefix checks for the hex marker, ignoring its case
func Has0xPrefix(str string) bool {
	return len(str) >= 2 && str[0] == '0' && (str[1] == 'x' || str[1] == 'X')
}

// DecodeString decodes a plain hex string
func DecodeString(str string) ([]byte, error) {
	if len(str)%2 != 0 {
		return nil, ErrOddLength
	}

	return hex.DecodeString(str)
}

// DecodeHex decodes a hex string, the 0x marker is optional
func DecodeHex(str string) ([]byte, error) {
	if Has0xPrefix(str) {
		str = str[2:]
	}

	return DecodeString(str)
}

// MustDecodeHex decodes a hex string and panics on failure
func MustDecodeHex(str string) []byte {
	buf, err := DecodeHex(str)
	if err != nil {
		panic(err)
	}

	return buf
}

// DecodeHexPadded decodes a hex string, left padding odd length input with a zero nibble
func DecodeHexPadded(str string) ([]byte, error) {
	if Has0xPrefix(str) {
		str = str[2:]
	}

	if len(str)%2 != 0 {
		str = "0" + str
	}

	return hex.DecodeString(strings.ToLower(str))
}
