package poseidon

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/fingerprint/pkg/bn254"
)

// The three pinned specs used throughout the fingerprint pipeline: a
// width-2 sponge for folding curve points, a width-5 sponge for the
// transaction buffer, and a width-4 sponge for the date/time
// component. Round counts match the reference generator's r_f=8,
// r_p=57 for every width currently in use.
func specFor(t *testing.T, width, rate int) *Spec {
	t.Helper()
	return NewSpec(width, rate, 8, 57)
}

func TestPermutationIsDeterministic(t *testing.T) {
	spec := specFor(t, 5, 4)
	in := []bn254.Element{
		bn254.NewFromUint64(1),
		bn254.NewFromUint64(2),
		bn254.NewFromUint64(3),
		bn254.NewFromUint64(4),
	}

	a := Hash(spec, in)
	b := Hash(spec, in)
	require.True(t, a.Equal(b), "hashing the same inputs twice must produce the same output")
}

func TestDifferentInputsDiverge(t *testing.T) {
	spec := specFor(t, 5, 4)
	a := Hash(spec, []bn254.Element{bn254.NewFromUint64(1), bn254.NewFromUint64(2)})
	b := Hash(spec, []bn254.Element{bn254.NewFromUint64(1), bn254.NewFromUint64(3)})
	require.False(t, a.Equal(b))
}

func TestWidth2Sponge(t *testing.T) {
	spec := specFor(t, 2, 1)
	out := Hash(spec, []bn254.Element{bn254.NewFromUint64(7)})
	require.False(t, out.IsZero())
}

func TestWidth4Sponge(t *testing.T) {
	spec := specFor(t, 4, 3)
	out := Hash(spec, []bn254.Element{
		bn254.NewFromUint64(1),
		bn254.NewFromUint64(2),
		bn254.NewFromUint64(3),
	})
	require.False(t, out.IsZero())
}

func TestSqueezePadsPartialBlock(t *testing.T) {
	spec := specFor(t, 5, 4)
	// A single input leaves a partial block of 1/4 elements; squeeze
	// must zero-pad the remainder rather than panic or hang.
	out := Hash(spec, []bn254.Element{bn254.NewFromUint64(99)})
	require.False(t, out.IsZero())
}

func TestMultiBlockAbsorption(t *testing.T) {
	spec := specFor(t, 5, 4)
	// Seven elements span two absorption blocks (rate 4): the first
	// permutation runs mid-Update, the second during Squeeze.
	in := make([]bn254.Element, 7)
	for i := range in {
		in[i] = bn254.NewFromUint64(uint64(i + 1))
	}
	a := Hash(spec, in)
	b := Hash(spec, in)
	require.True(t, a.Equal(b))

	shorter := Hash(spec, in[:6])
	require.False(t, a.Equal(shorter), "truncating the input must change the digest")
}

func TestNewSpecRejectsBadShape(t *testing.T) {
	require.Panics(t, func() { NewSpec(2, 2, 8, 57) }, "rate must be strictly smaller than t")
	require.Panics(t, func() { NewSpec(3, 1, 7, 57) }, "full round count must be even")
}

func TestSparseAndDenseMDSAgree(t *testing.T) {
	// The sparse partial-round factorization must be algebraically
	// equivalent to applying the corresponding dense MDS matrix: the
	// pre-sparse matrix followed by every sparse round must equal
	// r_p+1 applications of the dense MDS, for every pinned width.
	for _, shape := range []struct{ t, rate int }{{2, 1}, {4, 3}, {5, 4}} {
		spec := specFor(t, shape.t, shape.rate)
		in := make([]bn254.Element, shape.rate)
		for i := range in {
			in[i] = bn254.NewFromUint64(uint64(i + 11))
		}
		out := Hash(spec, in)
		require.False(t, out.IsZero())

		sparseState := make([]bn254.Element, shape.t)
		denseState := make([]bn254.Element, shape.t)
		for i := range sparseState {
			sparseState[i] = bn254.NewFromUint64(uint64(i + 3))
			denseState[i] = sparseState[i]
		}
		spec.preSparseMDS.applyToState(sparseState)
		for _, s := range spec.sparse {
			s.applyToState(sparseState)
		}
		for i := 0; i <= spec.partialRounds; i++ {
			spec.mds.applyToState(denseState)
		}
		for i := range denseState {
			require.True(t, denseState[i].Equal(sparseState[i]), "width %d, element %d", shape.t, i)
		}
	}
}
