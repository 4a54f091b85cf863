package abi

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/ignis/internal/domain"
)

func TestEncodeArgs(t *testing.T) {
	enc := NewConstructorEncoder()

	t.Run("two addresses", func(t *testing.T) {
		currency := domain.MustParseValue(domain.ParamTypeAddress, "0xC21C311b7FabEb355e8BE695bE0ad2e1B89b8c7B")
		verifier := domain.MustParseValue(domain.ParamTypeAddress, domain.ZeroAddress)

		encoded, err := enc.EncodeArgs([]domain.Value{currency, verifier})
		require.NoError(t, err)
		require.Len(t, encoded, 64)

		assert.Equal(t, common.LeftPadBytes(currency.Address.Bytes(), 32), encoded[:32])
		assert.Equal(t, make([]byte, 32), encoded[32:])
	})

	t.Run("uints", func(t *testing.T) {
		encoded, err := enc.EncodeArgs([]domain.Value{
			domain.MustParseValue(domain.ParamTypeUint256, "1"),
			domain.MustParseValue(domain.ParamTypeUint256, "2"),
		})
		require.NoError(t, err)
		assert.Equal(t,
			"0x"+
				"0000000000000000000000000000000000000000000000000000000000000001"+
				"0000000000000000000000000000000000000000000000000000000000000002",
			hexutil.Encode(encoded))
	})

	t.Run("dynamic types", func(t *testing.T) {
		encoded, err := enc.EncodeArgs([]domain.Value{
			domain.MustParseValue(domain.ParamTypeString, "Vault Token"),
			domain.MustParseValue(domain.ParamTypeBytes, "0xbeef"),
			domain.MustParseValue(domain.ParamTypeBool, "true"),
		})
		require.NoError(t, err)

		// three head words, then length and one padded word for each dynamic value
		require.Len(t, encoded, 32*7)
		assert.Equal(t, big.NewInt(96), new(big.Int).SetBytes(encoded[:32]))
		assert.Equal(t, byte(1), encoded[95])
	})

	t.Run("no arguments", func(t *testing.T) {
		encoded, err := enc.EncodeArgs(nil)
		require.NoError(t, err)
		assert.Empty(t, encoded)
	})

	t.Run("pending future", func(t *testing.T) {
		_, err := enc.EncodeArgs([]domain.Value{domain.FutureValue("VaultModule#Token")})
		assert.ErrorContains(t, err, "VaultModule#Token")
	})
}

func TestArgumentsRejectsUnknownType(t *testing.T) {
	for _, typ := range []domain.ParameterType{"uint7", "uint8", "bytes32", "tuple"} {
		t.Run(string(typ), func(t *testing.T) {
			_, err := Arguments([]domain.Value{domain.AddressValue(common.Address{}), {Type: typ, Raw: "1"}})
			assert.EqualError(t, err, "argument 1: unsupported type "+string(typ))
		})
	}
}
