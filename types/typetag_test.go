package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTypeTag(t *testing.T) {
	t.Parallel()

	coin := &TypeTag{
		Kind: TypeStruct,
		Struct: &StructTag{
			Address: StringToAddress("0x2"),
			Module:  "Coin",
			Name:    "Coin",
			TypeParams: []*TypeTag{
				{Kind: TypeParameter, Index: 0},
			},
		},
	}

	testCases := []struct {
		input    string
		expected *TypeTag
		text     string
	}{
		{"bool", BoolTag, "bool"},
		{"u8", U8Tag, "u8"},
		{"u64", U64Tag, "u64"},
		{"u128", U128Tag, "u128"},
		{"address", AddressTag, "address"},
		{"signer", SignerTag, "signer"},
		{"vector<u8>", VectorOf(U8Tag), "vector<u8>"},
		{"vector< vector<u64> >", VectorOf(VectorOf(U64Tag)), "vector<vector<u64>>"},
		{"T3", &TypeTag{Kind: TypeParameter, Index: 3}, "T3"},
		{"0x2::Coin::Coin<T0>", coin, "0x2::Coin::Coin<T0>"},
		{"&mut 0x2::Coin::Coin<T0>", &TypeTag{Kind: TypeMutableReference, Elem: coin}, "&mut 0x2::Coin::Coin<T0>"},
		{"&signer", &TypeTag{Kind: TypeReference, Elem: SignerTag}, "&signer"},
	}

	for _, tc := range testCases {
		tag, err := ParseTypeTag(tc.input)
		require.NoError(t, err, tc.input)

		assert.True(t, tc.expected.Equal(tag), tc.input)
		assert.Equal(t, tc.text, tag.String())
	}
}

func TestParseTypeTag_Invalid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"",
		"u256",
		"vector<u8",
		"vector u8",
		"0x2::Coin",
		"0x2::Coin::Coin<u8",
		"u64 u64",
		"Tx",
	} {
		_, err := ParseTypeTag(input)
		assert.ErrorIs(t, err, ErrInvalidTypeTag, input)
	}
}

func TestTypeTag_IsPrimitive(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"bool", "u8", "u64", "u128", "address", "vector<u8>", "vector<vector<address>>"} {
		assert.True(t, MustParseTypeTag(s).IsPrimitive(), s)
	}

	for _, s := range []string{"signer", "&signer", "0x2::ID::ID", "vector<0x2::ID::ID>", "T0", "&mut 0x2::Coin::Coin"} {
		assert.False(t, MustParseTypeTag(s).IsPrimitive(), s)
	}
}

func TestTypeTag_Equal(t *testing.T) {
	t.Parallel()

	assert.True(t, MustParseTypeTag("vector<u8>").Equal(VectorOf(U8Tag)))
	assert.False(t, MustParseTypeTag("vector<u8>").Equal(VectorOf(U64Tag)))
	assert.False(t, MustParseTypeTag("0x2::A::B").Equal(MustParseTypeTag("0x3::A::B")))
	assert.False(t, MustParseTypeTag("0x2::A::B<u8>").Equal(MustParseTypeTag("0x2::A::B")))
	assert.False(t, U8Tag.Equal(nil))
}
