package components

import (
	"encoding/binary"
	"io"

	"github.com/luxfi/fingerprint/internal/isocurrency"
)

// CurrencyComponent serializes a currency as its ISO-4217 numeric code,
// big-endian, in 2 bytes (§3).
type CurrencyComponent struct {
	numericCode uint16
}

// NewCurrencyComponent resolves an ISO-4217 alphabetic code, rejecting
// unknown and special codes (InvalidInput per §7).
func NewCurrencyComponent(alpha string) (CurrencyComponent, error) {
	code, err := isocurrency.NumericCode(alpha)
	if err != nil {
		return CurrencyComponent{}, err
	}
	return CurrencyComponent{numericCode: code}, nil
}

func (CurrencyComponent) Size() int { return 2 }

func (c CurrencyComponent) Serialize(w io.Writer) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], c.numericCode)
	_, err := w.Write(buf[:])
	return err
}

// NumericCode returns the underlying ISO-4217 numeric code.
func (c CurrencyComponent) NumericCode() uint16 { return c.numericCode }
