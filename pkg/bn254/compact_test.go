package bn254_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/fingerprint/pkg/bn254"
)

func TestCompactRoundTrip(t *testing.T) {
	for i := 0; i < 50; i++ {
		x, err := bn254.Random(rand.Reader)
		require.NoError(t, err)

		compact := x.Compact()
		back, err := bn254.CompactUnwrap(compact)
		require.NoError(t, err)
		assert.True(t, x.Equal(back))
	}
}

func TestCompactUnwrapRejectsWrongLength(t *testing.T) {
	_, err := bn254.CompactUnwrap(bn254.CompactBytes([]byte{1, 2, 3}))
	assert.ErrorIs(t, err, bn254.ErrCompactDecode)
}

func TestCompactUnwrapRejectsMalformedInput(t *testing.T) {
	_, err := bn254.CompactUnwrap("not-valid-base58-!!!")
	assert.Error(t, err)
}
