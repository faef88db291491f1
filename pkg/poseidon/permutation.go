package poseidon

import "github.com/luxfi/fingerprint/pkg/bn254"

// permute applies the Poseidon permutation in place to a T-element
// state, following the five-step design of §4.1: a first half of full
// rounds (ending with the pre-sparse MDS), r_p partial rounds using
// the optimized sparse matrices, and a symmetric second half of full
// rounds.
func (s *Spec) permute(state []bn254.Element) {
	addConstants(state, s.startConstants[0])
	for _, rc := range s.startConstants[1 : len(s.startConstants)-1] {
		sboxFull(state)
		addConstants(state, rc)
		s.mds.applyToState(state)
	}
	sboxFull(state)
	addConstants(state, s.startConstants[len(s.startConstants)-1])
	s.preSparseMDS.applyToState(state)

	for i := 0; i < s.partialRounds; i++ {
		sboxPartial(state)
		state[0] = state[0].Add(s.partialConstants[i])
		s.sparse[i].applyToState(state)
	}

	for _, rc := range s.endConstants {
		sboxFull(state)
		addConstants(state, rc)
		s.mds.applyToState(state)
	}
	sboxFull(state)
	s.mds.applyToState(state)
}

func addConstants(state []bn254.Element, constants []bn254.Element) {
	for i := range state {
		state[i] = state[i].Add(constants[i])
	}
}

func sboxFull(state []bn254.Element) {
	for i := range state {
		state[i] = state[i].Pow5()
	}
}

func sboxPartial(state []bn254.Element) {
	state[0] = state[0].Pow5()
}
