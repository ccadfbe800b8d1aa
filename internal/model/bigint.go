package model

import (
	"database/sql/driver"
	"fmt"
	"math/big"
	"strings"
)

// BigInt carries population counts that can exceed the 53-bit range of JSON
// numbers. It marshals as a decimal string and accepts either a string or a
// bare number on input.
type BigInt struct {
	big.Int
}

// NewBigInt parses a decimal string into a BigInt.
func NewBigInt(s string) (*BigInt, error) {
	b := &BigInt{}
	if _, ok := b.SetString(s, 10); !ok {
		return nil, fmt.Errorf("invalid integer value %q", s)
	}
	return b, nil
}

// MustBigInt is a test/seed helper that panics on malformed input.
func MustBigInt(s string) BigInt {
	b, err := NewBigInt(s)
	if err != nil {
		panic(err)
	}
	return *b
}

func (b BigInt) MarshalJSON() ([]byte, error) {
	return []byte(`"` + b.String() + `"`), nil
}

func (b *BigInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return fmt.Errorf("invalid integer value %q", s)
	}
	if _, ok := b.SetString(s, 10); !ok {
		return fmt.Errorf("invalid integer value %q", s)
	}
	return nil
}

// Value stores the number as its decimal string so NUMERIC (postgres) and
// TEXT (sqlite) columns both keep full precision.
func (b BigInt) Value() (driver.Value, error) {
	return b.String(), nil
}

func (b *BigInt) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		b.SetInt64(0)
		return nil
	case int64:
		b.SetInt64(v)
		return nil
	case []byte:
		return b.setString(string(v))
	case string:
		return b.setString(v)
	default:
		return fmt.Errorf("cannot scan %T into BigInt", src)
	}
}

func (b *BigInt) setString(s string) error {
	if _, ok := b.SetString(s, 10); !ok {
		return fmt.Errorf("cannot scan %q into BigInt", s)
	}
	return nil
}

// NullBigInt is the nullable counterpart of BigInt, following the
// database/sql Null* convention.
type NullBigInt struct {
	Int   BigInt
	Valid bool
}

func (n NullBigInt) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Int.MarshalJSON()
}

func (n *NullBigInt) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		n.Valid = false
		return nil
	}
	if err := n.Int.UnmarshalJSON(data); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

func (n NullBigInt) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Int.Value()
}

func (n *NullBigInt) Scan(src interface{}) error {
	if src == nil {
		n.Valid = false
		return nil
	}
	if err := n.Int.Scan(src); err != nil {
		return err
	}
	n.Valid = true
	return nil
}
