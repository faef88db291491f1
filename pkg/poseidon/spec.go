package poseidon

import "github.com/luxfi/fingerprint/pkg/bn254"

// fieldBits is the bit length of the BN254 scalar field modulus,
// fed into the Grain parameter derivation alongside (t, r_f, r_p).
const fieldBits = 254

// Spec is an immutable, shareable Poseidon configuration: state width
// T, rate R, full/partial round counts, and the derived round
// constants and MDS matrices (§3). Three Specs are built once at
// process start (SPEC, SPEC_BIG, SPEC_DC) and reused for every hash.
type Spec struct {
	t, rate   int
	fullRounds, partialRounds int

	startConstants   [][]bn254.Element // len = fullRounds/2 + 1, each of length t
	partialConstants []bn254.Element   // len = partialRounds
	endConstants     [][]bn254.Element // len = fullRounds/2 - 1, each of length t

	mds          matrix
	preSparseMDS matrix
	sparse       []sparseMatrix // len = partialRounds
}

// NewSpec derives a Spec for the given state width, rate, and round
// counts. Two Specs built with identical (t, rate, rFull, rPartial)
// are always identical, since every constant is a pure function of
// that tuple via the Grain LFSR (§4.1).
func NewSpec(t, rate, rFull, rPartial int) *Spec {
	if rate >= t {
		panic("poseidon: rate must be smaller than state width")
	}
	if rFull%2 != 0 {
		panic("poseidon: full round count must be even")
	}

	g := newGrainLFSR(fieldBits, t, rFull, rPartial)
	halfFull := rFull / 2

	start := make([][]bn254.Element, halfFull+1)
	for i := range start {
		start[i] = drawVector(g, t)
	}
	partial := make([]bn254.Element, rPartial)
	for i := range partial {
		partial[i] = g.nextFieldElement(fieldBits)
	}
	end := make([][]bn254.Element, halfFull-1)
	for i := range end {
		end[i] = drawVector(g, t)
	}

	mds := cauchyMDS(g, fieldBits, t)

	mdsT := mds.transpose()
	acc := mdsT
	sparseRounds := make([]sparseMatrix, 0, rPartial)
	for i := 0; i < rPartial; i++ {
		next, sparse := factorizeOneRound(acc)
		sparseRounds = append(sparseRounds, sparse)
		acc = mdsT.mulMatrix(next)
	}
	preSparseMDS := acc.transpose()
	// The rounds were peeled off starting from the *last* partial
	// round; reverse to get forward application order.
	for i, j := 0, len(sparseRounds)-1; i < j; i, j = i+1, j-1 {
		sparseRounds[i], sparseRounds[j] = sparseRounds[j], sparseRounds[i]
	}

	return &Spec{
		t:                t,
		rate:             rate,
		fullRounds:       rFull,
		partialRounds:    rPartial,
		startConstants:   start,
		partialConstants: partial,
		endConstants:     end,
		mds:              mds,
		preSparseMDS:     preSparseMDS,
		sparse:           sparseRounds,
	}
}

func drawVector(g *grainLFSR, t int) []bn254.Element {
	v := make([]bn254.Element, t)
	for i := range v {
		v[i] = g.nextFieldElement(fieldBits)
	}
	return v
}

// T returns the configured state width.
func (s *Spec) T() int { return s.t }

// Rate returns the configured absorption rate.
func (s *Spec) Rate() int { return s.rate }
