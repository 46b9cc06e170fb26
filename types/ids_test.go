package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressFromHex(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected Address
		err      error
	}{
		{
			name:     "short form is left padded",
			input:    "0x2a",
			expected: BytesToAddress([]byte{0x2a}),
		},
		{
			name:     "upper case marker and digits",
			input:    "0X2A",
			expected: BytesToAddress([]byte{0x2a}),
		},
		{
			name:     "odd digit count",
			input:    " 0x123 ",
			expected: BytesToAddress([]byte{0x01, 0x23}),
		},
		{
			name:  "missing marker",
			input: "2a",
			err:   ErrMissingHexPrefix,
		},
		{
			name:  "marker only",
			input: "0x",
			err:   ErrEmptyHex,
		},
		{
			name:  "too wide",
			input: "0x" + "ff" + "0000000000000000000000000000000000000000",
			err:   ErrHexTooLong,
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			addr, err := AddressFromHex(tc.input)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, addr)
		})
	}
}

func TestAddressFromHex_InvalidDigits(t *testing.T) {
	t.Parallel()

	_, err := AddressFromHex("0xzz")
	assert.Error(t, err)
}

func TestObjectID_TextRoundTrip(t *testing.T) {
	t.Parallel()

	id := StringToObjectID("0x5")
	assert.Equal(t, "0x0000000000000000000000000000000000000005", id.String())

	raw, err := json.Marshal(map[string]ObjectID{"id": id})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"0x0000000000000000000000000000000000000005"}`, string(raw))

	var decoded map[string]ObjectID

	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, id, decoded["id"])
}

func TestObjectID_Less(t *testing.T) {
	t.Parallel()

	a := StringToObjectID("0x1")
	b := StringToObjectID("0x100")

	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.False(t, a.Less(a))
}

func TestSequenceNumber_Increment(t *testing.T) {
	t.Parallel()

	v := InitialVersion
	for i := 2; i <= 4; i++ {
		v = v.Increment()
		assert.Equal(t, SequenceNumber(i), v)
	}
}

func TestDeriveObjectID(t *testing.T) {
	t.Parallel()

	digest := DigestOf([]byte("tx"))

	first := DeriveObjectID(digest, 0)
	second := DeriveObjectID(digest, 1)

	assert.NotEqual(t, first, second)
	assert.Equal(t, first, DeriveObjectID(digest, 0))
	assert.NotEqual(t, first, DeriveObjectID(DigestOf([]byte("other")), 0))
}
