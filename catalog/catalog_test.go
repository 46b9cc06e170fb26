package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dogechain-lab/objectchain/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `[
	{
		"package": "0x2",
		"modules": {
			"Coin": {
				"transfer": {
					"parameters": ["0x2::Coin::Coin<T0>", "address", "&mut 0x2::TxContext::TxContext"]
				},
				"split": {
					"parameters": ["&mut 0x2::Coin::Coin<T0>", "u64", "&mut 0x2::TxContext::TxContext"],
					"return": ["0x2::Coin::Coin<T0>"]
				}
			}
		}
	}
]`

func TestLoad(t *testing.T) {
	t.Parallel()

	c, err := Load([]byte(testCatalog))
	require.NoError(t, err)

	pkg := types.StringToObjectID("0x2")

	sig, err := c.FunctionSignature(pkg, "Coin", "transfer")
	require.NoError(t, err)

	assert.Equal(t, "transfer", sig.Name)
	require.Len(t, sig.Parameters, 3)
	assert.Equal(t, "address", sig.Parameters[1].String())
	assert.Equal(t, types.TypeMutableReference, sig.Parameters[2].Kind)

	split, err := c.FunctionSignature(pkg, "Coin", "split")
	require.NoError(t, err)
	require.Len(t, split.Return, 1)

	assert.Equal(t, []string{"split", "transfer"}, c.Functions(pkg, "Coin"))
}

func TestFunctionSignature_NotFound(t *testing.T) {
	t.Parallel()

	c, err := Load([]byte(testCatalog))
	require.NoError(t, err)

	_, err = c.FunctionSignature(types.StringToObjectID("0x3"), "Coin", "transfer")
	assert.ErrorIs(t, err, ErrPackageNotFound)

	_, err = c.FunctionSignature(types.StringToObjectID("0x2"), "Bag", "transfer")
	assert.ErrorIs(t, err, ErrModuleNotFound)

	_, err = c.FunctionSignature(types.StringToObjectID("0x2"), "Coin", "burn")
	assert.ErrorIs(t, err, ErrFunctionNotFound)
}

func TestLoad_BadTypeTag(t *testing.T) {
	t.Parallel()

	_, err := Load([]byte(`[{"package":"0x2","modules":{"M":{"f":{"parameters":["u256"]}}}}]`))
	assert.ErrorIs(t, err, types.ErrInvalidTypeTag)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0600))

	c, err := LoadFile(path)
	require.NoError(t, err)

	_, err = c.FunctionSignature(types.StringToObjectID("0x2"), "Coin", "split")
	assert.NoError(t, err)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
