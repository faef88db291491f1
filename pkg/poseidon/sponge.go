package poseidon

import "github.com/luxfi/fingerprint/pkg/bn254"

// State is a Poseidon sponge state bound to a Spec. The zero value is
// not usable; construct with NewState. A State is owned exclusively by
// its caller and is consumed once per request (§5); it carries no
// shared mutable state across goroutines.
type State struct {
	spec   *Spec
	state  []bn254.Element
	buffer []bn254.Element
}

// NewState initializes a fresh sponge state (all-zero) for the given
// spec.
func NewState(spec *Spec) *State {
	return &State{
		spec:  spec,
		state: make([]bn254.Element, spec.t),
	}
}

// Update absorbs a slice of field elements. Whenever the internal
// buffer accumulates Rate() elements, a permutation runs over a state
// formed by adding the buffered inputs element-wise into the last Rate
// positions of the state (§4.1).
func (st *State) Update(inputs []bn254.Element) {
	for _, in := range inputs {
		st.buffer = append(st.buffer, in)
		if len(st.buffer) == st.spec.rate {
			st.absorbBuffer()
		}
	}
}

func (st *State) absorbBuffer() {
	offset := st.spec.t - st.spec.rate
	for i, v := range st.buffer {
		st.state[offset+i] = st.state[offset+i].Add(v)
	}
	st.buffer = st.buffer[:0]
	st.spec.permute(st.state)
}

// Squeeze finalizes the sponge: any trailing partial block is padded
// with zeros up to Rate(), one final permutation runs, and the
// element at state position 1 is returned as the squeezed output.
func (st *State) Squeeze() bn254.Element {
	if len(st.buffer) > 0 {
		for len(st.buffer) < st.spec.rate {
			st.buffer = append(st.buffer, bn254.Zero())
		}
		st.absorbBuffer()
	} else {
		// An empty trailing buffer still requires a finalizing
		// permutation so that squeeze is well-defined even when the
		// input length is an exact multiple of the rate.
		st.spec.permute(st.state)
	}
	return st.state[1]
}

// Hash is a convenience helper that absorbs inputs into a fresh state
// for spec and squeezes once.
func Hash(spec *Spec, inputs []bn254.Element) bn254.Element {
	st := NewState(spec)
	st.Update(inputs)
	return st.Squeeze()
}
