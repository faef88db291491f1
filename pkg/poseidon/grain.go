package poseidon

import "github.com/luxfi/fingerprint/pkg/bn254"

// grainLFSR is a Go port of the Grain-style self-shrinking LFSR used
// by the Poseidon reference scripts to derive round constants and MDS
// seed sequences deterministically from a spec's shape (field size,
// state width, round counts), so that two processes configured with
// the same (t, r_f, r_p) always agree on the same constants without
// shipping a constant table.
type grainLFSR struct {
	state [80]bool
}

// newGrainLFSR seeds the register from the Poseidon parameter tuple:
// a 1-bit field-type flag (1 = prime field), a 4-bit S-box identifier
// (0 = x^5), 12 bits of field size, 12 bits of t, 10 bits of r_f, 10
// bits of r_p, and a constant 30-bit padding tail.
func newGrainLFSR(fieldBits, t, rF, rP int) *grainLFSR {
	g := &grainLFSR{}
	pos := 0
	pushBits := func(value, width int) {
		for i := width - 1; i >= 0; i-- {
			g.state[pos] = (value>>uint(i))&1 == 1
			pos++
		}
	}
	pushBits(1, 1)        // prime field
	pushBits(0, 4)        // x^5 S-box
	pushBits(fieldBits, 12)
	pushBits(t, 12)
	pushBits(rF, 10)
	pushBits(rP, 10)
	for pos < 80 {
		g.state[pos] = true
		pos++
	}
	// Discard the first 160 output bits, as specified by the Grain
	// initialization procedure, before any usable bit is produced.
	for i := 0; i < 160; i++ {
		g.nextBit()
	}
	return g
}

func (g *grainLFSR) nextBit() bool {
	// Feedback polynomial taps, following the 80-bit Grain SR used by
	// the reference Poseidon parameter generator.
	b := g.state[0] != g.state[13] != g.state[23] != g.state[38] != g.state[51] != g.state[62]
	copy(g.state[:79], g.state[1:])
	g.state[79] = b
	return b
}

// nextFieldElement draws field-sized bits from the stream and rejects
// (redraws) samples that would exceed the field modulus, exactly as
// the reference generator does for uniformity.
func (g *grainLFSR) nextFieldElement(fieldBits int) bn254.Element {
	for {
		var buf [32]byte
		// Pack fieldBits bits, most-significant-bit first, into the
		// big-endian scratch buffer, then hand it to the field decoder
		// by round-tripping through the little-endian canonical form.
		total := fieldBits
		byteIdx := 31
		bitIdx := 0
		cur := byte(0)
		for i := 0; i < total; i++ {
			bit := g.nextBit()
			cur <<= 1
			if bit {
				cur |= 1
			}
			bitIdx++
			if bitIdx == 8 {
				buf[byteIdx] = cur
				cur = 0
				bitIdx = 0
				byteIdx--
			}
		}
		if bitIdx > 0 {
			buf[byteIdx] = cur << uint(8-bitIdx)
		}
		var le [32]byte
		for i := 0; i < 32; i++ {
			le[i] = buf[31-i]
		}
		if el, err := bn254.FromBytes(le); err == nil {
			return el
		}
		// Exceeded the modulus: discard and redraw, per the reference
		// algorithm's rejection sampling.
	}
}
