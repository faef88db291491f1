package isocurrency

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumericCodeResolvesOrdinaryCurrency(t *testing.T) {
	code, err := NumericCode("EUR")
	require.NoError(t, err)
	require.Equal(t, uint16(978), code)
}

func TestNumericCodeRejectsSpecialCurrency(t *testing.T) {
	_, err := NumericCode("XAU")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrSpecialCurrency))
}

func TestNumericCodeRejectsUnknownCurrency(t *testing.T) {
	_, err := NumericCode("ZZZ")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnknownCurrency))
}

func TestIsSpecial(t *testing.T) {
	require.True(t, IsSpecial("XXX"))
	require.False(t, IsSpecial("USD"))
}
