package entities

import (
	"database/sql/driver"
	"fmt"
	"math/big"
)

// BigInt is a wrapper for *big.Int that implements Scanner and Valuer.
type BigInt struct {
	*big.Int
}

// Scan implements the sql.Scanner interface.
func (b *BigInt) Scan(value interface{}) error {
	if value == nil {
		b.Int = nil
		return nil
	}

	switch v := value.(type) {
	case string:
		return b.setString(v)
	case []byte:
		return b.setString(string(v))
	case int64:
		b.Int = big.NewInt(v)
		return nil
	default:
		return fmt.Errorf("cannot scan type %T into BigInt", value)
	}
}

func (b *BigInt) setString(s string) error {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return fmt.Errorf("failed to parse BigInt from %q", s)
	}
	b.Int = n
	return nil
}

// Value implements the driver.Valuer interface.
func (b BigInt) Value() (driver.Value, error) {
	if b.Int == nil {
		return nil, nil
	}
	return b.String(), nil
}

// GormDataType stores amounts as arbitrary precision numerics.
func (BigInt) GormDataType() string {
	return "numeric"
}

// NewBigInt creates a new BigInt from a *big.Int.
func NewBigInt(i *big.Int) BigInt {
	return BigInt{i}
}

// ToBigInt converts BigInt back to *big.Int.
func (b BigInt) ToBigInt() *big.Int {
	return b.Int
}
