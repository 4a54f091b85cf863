package domain

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
)

// ZeroAddress is the all-zero 20 byte address in its canonical text form
const ZeroAddress = "0x0000000000000000000000000000000000000000"

// Value is a typed constructor argument. Raw keeps the text exactly as it was supplied;
// the typed field matching Type holds the parsed form.
//
// A Value with a non-empty Future is a placeholder for the address of another contract
// in the same module that has not been deployed yet.
type Value struct {
	Type    ParameterType  `json:"type" yaml:"type"`
	Raw     string         `json:"value" yaml:"value"`
	Address common.Address `json:"-" yaml:"-"`
	Uint    *big.Int       `json:"-" yaml:"-"`
	Bytes   []byte         `json:"-" yaml:"-"`
	Bool    bool           `json:"-" yaml:"-"`
	Future  string         `json:"future,omitempty" yaml:"future,omitempty"`
}

// String returns the raw form of the value
func (v Value) String() string {
	return v.Raw
}

// IsFuture reports whether the value still waits on another contract's address
func (v Value) IsFuture() bool {
	return v.Future != ""
}

// ABIValue returns the Go value go-ethereum's ABI packer expects for v.Type
func (v Value) ABIValue() any {
	switch v.Type {
	case ParamTypeAddress:
		return v.Address
	case ParamTypeUint256:
		if v.Uint == nil {
			return new(big.Int)
		}
		return v.Uint
	case ParamTypeBytes:
		if v.Bytes == nil {
			return []byte{}
		}
		return v.Bytes
	case ParamTypeBool:
		return v.Bool
	default:
		return v.Raw
	}
}

// ParseValue validates raw against t and returns the typed value.
// The returned error describes the shape problem only; callers attach the parameter name.
func ParseValue(t ParameterType, raw string) (Value, error) {
	v := Value{Type: t, Raw: raw}

	switch t {
	case ParamTypeAddress:
		addr, err := parseAddress(raw)
		if err != nil {
			return Value{}, err
		}
		v.Address = addr

	case ParamTypeUint256:
		if raw == "" {
			return Value{}, errors.New("expected an unsigned integer, got an empty string")
		}
		if strings.HasPrefix(raw, "+") || strings.HasPrefix(raw, "0X") {
			return Value{}, errors.New("expected a decimal or 0x-prefixed unsigned integer below 2^256")
		}
		n, ok := math.ParseBig256(raw)
		if !ok {
			return Value{}, errors.New("expected a decimal or 0x-prefixed unsigned integer below 2^256")
		}
		if n.Sign() < 0 {
			return Value{}, errors.New("expected an unsigned integer, got a negative number")
		}
		v.Uint = n

	case ParamTypeBytes:
		b, err := hexutil.Decode(raw)
		if err != nil {
			return Value{}, fmt.Errorf("expected 0x-prefixed hex bytes: %w", err)
		}
		v.Bytes = b

	case ParamTypeBool:
		switch raw {
		case "true":
			v.Bool = true
		case "false":
			v.Bool = false
		default:
			return Value{}, errors.New("expected true or false")
		}

	case ParamTypeString:
		// any text is a string

	default:
		return Value{}, fmt.Errorf("unsupported parameter type %q", t)
	}

	return v, nil
}

// MustParseValue is ParseValue for values known to be well-formed, such as built-in defaults.
func MustParseValue(t ParameterType, raw string) Value {
	v, err := ParseValue(t, raw)
	if err != nil {
		panic(fmt.Sprintf("domain: bad %s literal %q: %v", t, raw, err))
	}
	return v
}

// ZeroValue returns the zero value of t
func ZeroValue(t ParameterType) Value {
	switch t {
	case ParamTypeAddress:
		return Value{Type: t, Raw: ZeroAddress}
	case ParamTypeUint256:
		return Value{Type: t, Raw: "0", Uint: new(big.Int)}
	case ParamTypeBytes:
		return Value{Type: t, Raw: "0x", Bytes: []byte{}}
	case ParamTypeBool:
		return Value{Type: t, Raw: "false"}
	default:
		return Value{Type: t}
	}
}

// FutureValue returns the placeholder for the deployed address of futureID
func FutureValue(futureID string) Value {
	return Value{Type: ParamTypeAddress, Raw: futureID, Future: futureID}
}

// AddressValue returns a resolved address value
func AddressValue(addr common.Address) Value {
	return Value{Type: ParamTypeAddress, Raw: addr.Hex(), Address: addr}
}

// InferValue guesses the type of an untyped literal: address, bytes, uint256, bool, then string.
func InferValue(raw string) Value {
	for _, t := range []ParameterType{ParamTypeAddress, ParamTypeBytes, ParamTypeUint256, ParamTypeBool} {
		if t == ParamTypeUint256 && !isDecimal(raw) {
			continue
		}
		if v, err := ParseValue(t, raw); err == nil {
			return v
		}
	}
	return Value{Type: ParamTypeString, Raw: raw}
}

// InferType returns the type InferValue would pick for raw
func InferType(raw string) ParameterType {
	return InferValue(raw).Type
}

func parseAddress(raw string) (common.Address, error) {
	if !strings.HasPrefix(raw, "0x") {
		return common.Address{}, errors.New("expected a 0x-prefixed 20 byte hex address")
	}
	if !common.IsHexAddress(raw) {
		return common.Address{}, errors.New("expected a 0x-prefixed 20 byte hex address")
	}

	addr := common.HexToAddress(raw)
	body := raw[2:]
	if body != strings.ToLower(body) && body != strings.ToUpper(body) && addr.Hex() != raw {
		return common.Address{}, fmt.Errorf("bad EIP-55 checksum (expected %s)", addr.Hex())
	}
	return addr, nil
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
