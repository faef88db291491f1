package components

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/fingerprint/pkg/poseidon"
)

func specDC(t *testing.T) *poseidon.Spec {
	t.Helper()
	return poseidon.NewSpec(4, 3, 8, 57)
}

func TestBankIdentifierRoundTrip(t *testing.T) {
	c, err := NewBankIdentifierComponent("BCEELU21")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, c.Serialize(&buf))
	require.Equal(t, 8, buf.Len())
	require.Equal(t, "BCEELU21", buf.String())
}

func TestBankIdentifierRejectsWrongLength(t *testing.T) {
	_, err := NewBankIdentifierComponent("SHORT")
	require.ErrorIs(t, err, ErrInvalidBIC)
}

func TestAmountSerializesBigEndianHalves(t *testing.T) {
	c := NewAmountComponent(1000, 0)
	var buf bytes.Buffer
	require.NoError(t, c.Serialize(&buf))
	require.Equal(t, 16, buf.Len())
	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 3, 0xE8, 0, 0, 0, 0, 0, 0, 0, 0}, buf.Bytes())
}

func TestCurrencyResolvesNumericCode(t *testing.T) {
	c, err := NewCurrencyComponent("EUR")
	require.NoError(t, err)
	require.Equal(t, uint16(978), c.NumericCode())

	var buf bytes.Buffer
	require.NoError(t, c.Serialize(&buf))
	require.Equal(t, []byte{0x03, 0xD2}, buf.Bytes())
}

func TestCurrencyRejectsSpecialCode(t *testing.T) {
	_, err := NewCurrencyComponent("XAU")
	require.Error(t, err)
}

func TestDateTimeAtExactEpochSucceeds(t *testing.T) {
	// Construction accepts date_time == EPOCH and wwd == EPOCH.date; the
	// resulting days == 0 division-by-zero boundary (scenario 3) is
	// rejected later, by Squeeze, as the next test checks.
	_, err := NewDateTimeComponent(0, 0, Epoch, Epoch)
	require.NoError(t, err)
}

func TestDateTimeBeforeEpochRejected(t *testing.T) {
	before := Epoch.Add(-time.Second)
	_, err := NewDateTimeComponent(1000, 0, before, Epoch)
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestDateTimeZeroDayOffsetRejectedWithoutPanic(t *testing.T) {
	dt, err := NewDateTimeComponent(0, 0, Epoch, Epoch)
	require.NoError(t, err)

	require.NotPanics(t, func() {
		_, err = dt.Squeeze(specDC(t))
	})
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestDateTimeSqueezeIsDeterministic(t *testing.T) {
	spec := specDC(t)
	dt, err := NewDateTimeComponent(1000, 0, time.Date(2025, 9, 16, 12, 34, 56, 0, time.UTC), time.Date(2025, 9, 16, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	a, err := dt.Squeeze(spec)
	require.NoError(t, err)
	b, err := dt.Squeeze(spec)
	require.NoError(t, err)
	require.True(t, a.Equal(b))
}

func TestDateTimeSqueezeChangesWithAmount(t *testing.T) {
	spec := specDC(t)
	base := time.Date(2025, 9, 16, 12, 34, 56, 0, time.UTC)
	wwd := time.Date(2025, 9, 16, 0, 0, 0, 0, time.UTC)

	dt1, err := NewDateTimeComponent(1000, 0, base, wwd)
	require.NoError(t, err)
	dt2, err := NewDateTimeComponent(1001, 0, base, wwd)
	require.NoError(t, err)

	f1, err := dt1.Squeeze(spec)
	require.NoError(t, err)
	f2, err := dt2.Squeeze(spec)
	require.NoError(t, err)
	require.False(t, f1.Equal(f2))
}

func TestBytes32ComponentRoundTrip(t *testing.T) {
	raw := make([]byte, 32)
	for i := range raw {
		raw[i] = byte(i)
	}
	c, err := NewBytes32Component(raw)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, c.Serialize(&buf))
	require.Equal(t, raw, buf.Bytes())
}

func TestBytes32ComponentRejectsWrongLength(t *testing.T) {
	_, err := NewBytes32Component(make([]byte, 31))
	require.ErrorIs(t, err, ErrInvalidBytes32)
}
