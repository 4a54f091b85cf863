package abi

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/trebuchet-org/ignis/internal/domain"
	"github.com/trebuchet-org/ignis/internal/usecase"
)

// ConstructorEncoder ABI-encodes constructor arguments from their parameter types
type ConstructorEncoder struct{}

// NewConstructorEncoder creates a new constructor encoder
func NewConstructorEncoder() *ConstructorEncoder {
	return &ConstructorEncoder{}
}

// EncodeArgs packs values as the constructor's argument tuple. Values still
// waiting on another contract's address cannot be encoded.
func (e *ConstructorEncoder) EncodeArgs(values []domain.Value) ([]byte, error) {
	args, err := Arguments(values)
	if err != nil {
		return nil, err
	}

	packed := make([]interface{}, len(values))
	for i, v := range values {
		if v.IsFuture() {
			return nil, fmt.Errorf("argument %d references %s, which has no address yet", i, v.Future)
		}
		packed[i] = v.ABIValue()
	}

	encoded, err := args.Pack(packed...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack arguments: %w", err)
	}
	return encoded, nil
}

// Arguments returns the ABI argument list matching the values' types
func Arguments(values []domain.Value) (abi.Arguments, error) {
	args := make(abi.Arguments, 0, len(values))
	for i, v := range values {
		if !v.Type.Valid() {
			return nil, fmt.Errorf("argument %d: unsupported type %s", i, v.Type)
		}
		typ, err := abi.NewType(string(v.Type), "", nil)
		if err != nil {
			return nil, fmt.Errorf("argument %d: unsupported type %s: %w", i, v.Type, err)
		}
		args = append(args, abi.Argument{Name: fmt.Sprintf("arg%d", i), Type: typ})
	}
	return args, nil
}

var _ usecase.ArgumentEncoder = (*ConstructorEncoder)(nil)
