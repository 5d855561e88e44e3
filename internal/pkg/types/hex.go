package types

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// Hex represents a hexadecimal-encoded unsigned integer as a string
// (e.g., "0x1a"). Values are arbitrary precision, which makes the type
// suitable for token amounts expressed in base units.
//
// It provides validation, JSON marshaling/unmarshaling, and conversion
// to and from math/big integers.
type Hex string

// HexFromString validates the input string and returns a Hex value if valid.
func HexFromString(s string) (Hex, error) {
	if err := validateHex(s); err != nil {
		return "", err
	}
	return Hex(s), nil
}

// HexFromBig encodes a non-negative big integer as a Hex value.
// A nil input is treated as zero.
func HexFromBig(n *big.Int) Hex {
	if n == nil || n.Sign() == 0 {
		return Hex("0x0")
	}
	return Hex("0x" + n.Text(16))
}

// validateHex checks whether a string is a valid hexadecimal number starting
// with "0x" or "0X".
func validateHex(s string) error {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return fmt.Errorf("hex string must start with 0x")
	}

	if _, ok := new(big.Int).SetString(s[2:], 16); !ok {
		return fmt.Errorf("invalid hexadecimal value: %q", s)
	}

	return nil
}

// MarshalJSON encodes the Hex as a JSON string.
func (h Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(h))
}

// UnmarshalJSON parses and validates a JSON-encoded hexadecimal string.
func (h *Hex) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid hex string: %w", err)
	}

	if err := validateHex(s); err != nil {
		return err
	}

	*h = Hex(s)
	return nil
}

// Big returns the decoded big integer value from the hexadecimal string.
// If parsing fails, it returns zero.
func (h Hex) Big() *big.Int {
	s := string(h)
	if len(s) < 2 {
		return new(big.Int)
	}

	v, ok := new(big.Int).SetString(s[2:], 16)
	if !ok {
		return new(big.Int)
	}
	return v
}

// Int returns the decoded int64 value from the hexadecimal string.
// Values that do not fit in an int64 (and invalid values) yield zero.
func (h Hex) Int() int64 {
	v := h.Big()
	if !v.IsInt64() {
		return 0
	}
	return v.Int64()
}
