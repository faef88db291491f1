package fingerprint_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/fingerprint/pkg/bn254"
	"github.com/luxfi/fingerprint/pkg/fingerprint"
	"github.com/luxfi/fingerprint/pkg/protocol"
)

// TestFingerprintInjectivityStatistical spot-checks §8's "fingerprint
// injectivity (statistical)" property across a much smaller sample
// than the spec's reference 10^4, trading statistical confidence for
// keeping the suite fast; the collision-freedom argument does not
// depend on sample size, only on the Poseidon sponge's output space.
func TestFingerprintInjectivityStatistical(t *testing.T) {
	const sampleSize = 500
	naive := protocol.NewNaiveProtocol(bn254.NewFromUint64(42))
	rnd := rand.New(rand.NewSource(1))

	seen := make(map[string]struct{}, sampleSize)
	for i := 0; i < sampleSize; i++ {
		tx := fingerprint.RawTransaction{
			BIC:      "BCEELU21",
			Base:     rnd.Uint64() % 1_000_000,
			Atto:     rnd.Uint64() % 1_000_000_000,
			Currency: "EUR",
			DateTime: time.Date(2025, 9, 16, 12, 34, 56, 0, time.UTC).Add(time.Duration(i) * time.Second),
			WWD:      time.Date(2025, 9, 16, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i%30),
		}
		fp, err := fingerprint.Compute(context.Background(), tx, naive)
		require.NoError(t, err)

		key := fp.String()
		_, collision := seen[key]
		require.False(t, collision, "unexpected fingerprint collision at sample %d", i)
		seen[key] = struct{}{}
	}
}
