package jsonarg

import (
	"bytes"
	"testing"

	"github.com/dogechain-lab/objectchain/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustArg(t *testing.T, s string) *Argument {
	t.Helper()

	arg, err := ParseArgument(s)
	require.NoError(t, err)

	return arg
}

func le64(v uint64) []byte {
	out := make([]byte, 8)
	for i := range out {
		out[i] = byte(v >> (8 * i))
	}

	return out
}

func concat(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

func TestArgument_ToBytes(t *testing.T) {
	t.Parallel()

	addr2a := make([]byte, types.AddressLength)
	addr2a[types.AddressLength-1] = 0x2a

	testCases := []struct {
		name     string
		arg      string
		typ      string
		expected []byte
	}{
		{"bool", `true`, "bool", []byte{0x01}},
		{"u8 number", `255`, "u8", []byte{0xff}},
		{"u8 decimal string", `"7"`, "u8", []byte{0x07}},
		{"u8 hex string", `"0xff"`, "u8", []byte{0xff}},
		{"u64 number", `1`, "u64", le64(1)},
		{"u64 max", `18446744073709551615`, "u64", le64(^uint64(0))},
		{"u64 hex string", `" 0X10 "`, "u64", le64(16)},
		{"u128 number", `5`, "u128", concat(le64(5), le64(0))},
		{"u128 hex string", `"0x10000000000000000"`, "u128", concat(le64(0), le64(1))},
		{
			"u128 max decimal",
			`"340282366920938463463374607431768211455"`,
			"u128",
			bytes.Repeat([]byte{0xff}, 16),
		},
		{"address short", `"0x2a"`, "address", addr2a},
		{"address upper marker", `"0X2A"`, "address", addr2a},
		{
			"vector<u8> raw text",
			`"68656c6c6f"`,
			"vector<u8>",
			concat([]byte{0x0a}, []byte("68656c6c6f")),
		},
		{
			"vector<u8> hex",
			`"0x68656c6c6f"`,
			"vector<u8>",
			[]byte{0x05, 0x68, 0x65, 0x6c, 0x6c, 0x6f},
		},
		{"vector<u8> empty hex", `"0x"`, "vector<u8>", []byte{0x00}},
		{"vector<u64> array", `[1,2]`, "vector<u64>", concat([]byte{0x02}, le64(1), le64(2))},
		{"empty vector", `[]`, "vector<bool>", []byte{0x00}},
		{
			"nested vector<u8> strings",
			`["0x01","ab"]`,
			"vector<vector<u8>>",
			[]byte{0x02, 0x01, 0x01, 0x02, 'a', 'b'},
		},
		{
			"vector of addresses",
			`["0x2a"]`,
			"vector<address>",
			concat([]byte{0x01}, addr2a),
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out, err := mustArg(t, tc.arg).ToBytes(types.MustParseTypeTag(tc.typ))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestArgument_ToBytes_LongVectorPrefix(t *testing.T) {
	t.Parallel()

	text := bytes.Repeat([]byte{'z'}, 300)

	out, err := mustArg(t, `"`+string(text)+`"`).ToBytes(types.VectorOf(types.U8Tag))
	require.NoError(t, err)

	assert.Equal(t, []byte{0xac, 0x02}, out[:2])
	assert.Equal(t, text, out[2:])
}

func TestArgument_ToBytes_Mismatch(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		arg string
		typ string
	}{
		{`1`, "bool"},
		{`true`, "u64"},
		{`256`, "u8"},
		{`"256"`, "u8"},
		{`"18446744073709551616"`, "u64"},
		{`"340282366920938463463374607431768211456"`, "u128"},
		{`"0x100000000000000000000000000000000"`, "u128"},
		{`"12a"`, "u64"},
		{`"-1"`, "u64"},
		{`"0xzz"`, "u64"},
		{`"0x-1"`, "u64"},
		{`"0x-0"`, "u64"},
		{`"0x+5"`, "u128"},
		{`"0x"`, "u8"},
		{`"2a"`, "address"},
		{`42`, "address"},
		{`"0x` + "00112233445566778899aabbccddeeff0011223344" + `"`, "address"},
		{`"0xabc"`, "vector<u8>"},
		{`"abc"`, "vector<u64>"},
		{`[1,2]`, "u64"},
		{`[256]`, "vector<u8>"},
		{`["a"]`, "vector<u64>"},
		{`"0x1"`, "0x2::Coin::Coin"},
		{`true`, "signer"},
	}

	for _, tc := range testCases {
		expected := types.MustParseTypeTag(tc.typ)

		_, err := mustArg(t, tc.arg).ToBytes(expected)
		require.ErrorIs(t, err, ErrTypeMismatch, "%s as %s", tc.arg, tc.typ)

		var mismatchErr *TypeMismatchError

		require.ErrorAs(t, err, &mismatchErr)
		assert.NotNil(t, mismatchErr.Expected)
		assert.NotEmpty(t, mismatchErr.Value)
		assert.Equal(t, noIndex, mismatchErr.Index)
	}
}

func TestArgument_ToCallValue(t *testing.T) {
	t.Parallel()

	cv, err := mustArg(t, `[[1],[2,3]]`).ToCallValue(types.MustParseTypeTag("vector<vector<u8>>"))
	require.NoError(t, err)

	assert.Equal(t, VectorCall{
		VectorCall{U8Call(1)},
		VectorCall{U8Call(2), U8Call(3)},
	}, cv)

	cv, err = mustArg(t, `"0x2a"`).ToCallValue(types.AddressTag)
	require.NoError(t, err)
	assert.Equal(t, AddressCall(types.StringToAddress("0x2a")), cv)
}

func TestEncodeCallValue_RejectsObjectID(t *testing.T) {
	t.Parallel()

	assert.False(t, encodeCallValue(nil, ObjectIDCall{}, types.AddressTag))
}
