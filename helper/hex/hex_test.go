package hex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHas0xPrefix(t *testing.T) {
	t.Parallel()

	assert.True(t, Has0xPrefix("0x01"))
	assert.True(t, Has0xPrefix("0X01"))
	assert.True(t, Has0xPrefix("0x"))
	assert.False(t, Has0xPrefix("01"))
	assert.False(t, Has0xPrefix("0"))
	assert.False(t, Has0xPrefix(""))
}

func TestDecodeHex(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		exp   []byte
		err   bool
	}{
		{"0x68656c6c6f", []byte("hello"), false},
		{"68656c6c6f", []byte("hello"), false},
		{"0X00ff", []byte{0x00, 0xff}, false},
		{"0x", []byte{}, false},
		{"0x123", nil, true},
		{"0xzz", nil, true},
	}

	for _, c := range cases {
		res, err := DecodeHex(c.input)
		if c.err {
			assert.Error(t, err, c.input)

			continue
		}

		assert.NoError(t, err, c.input)
		assert.Equal(t, c.exp, res, c.input)
	}
}

func TestDecodeHexPadded(t *testing.T) {
	t.Parallel()

	res, err := DecodeHexPadded("0x123")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x23}, res)

	res, err = DecodeHexPadded("0xABcd")
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xab, 0xcd}, res)
}

func TestEncodeToHex(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0x0102", EncodeToHex([]byte{0x01, 0x02}))
	assert.Equal(t, "0x", EncodeToHex(nil))
	assert.Equal(t, "0102", EncodeToString([]byte{0x01, 0x02}))
}
