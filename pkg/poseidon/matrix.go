package poseidon

import "github.com/luxfi/fingerprint/pkg/bn254"

// matrix is a dense T x T matrix over the BN254 scalar field, used for
// the MDS layer and its sparse-round factorization.
type matrix [][]bn254.Element

func newMatrix(t int) matrix {
	m := make(matrix, t)
	for i := range m {
		m[i] = make([]bn254.Element, t)
	}
	return m
}

func identityMatrix(t int) matrix {
	m := newMatrix(t)
	for i := 0; i < t; i++ {
		m[i][i] = bn254.One()
	}
	return m
}

// cauchyMDS builds the standard Cauchy MDS matrix M[i][j] = 1/(x_i+y_j)
// from two disjoint field-element sequences drawn from the Grain
// stream, guaranteeing the maximum-distance-separable property as
// long as all x_i+y_j are distinct and non-zero (true with high
// probability for field elements this large; the reference generator
// accepts this as given).
func cauchyMDS(g *grainLFSR, fieldBits, t int) matrix {
	xs := make([]bn254.Element, t)
	ys := make([]bn254.Element, t)
	for i := 0; i < t; i++ {
		xs[i] = g.nextFieldElement(fieldBits)
	}
	for i := 0; i < t; i++ {
		ys[i] = g.nextFieldElement(fieldBits)
	}
	m := newMatrix(t)
	for i := 0; i < t; i++ {
		for j := 0; j < t; j++ {
			m[i][j] = xs[i].Add(ys[j]).Inverse()
		}
	}
	return m
}

func (m matrix) t() int { return len(m) }

func (m matrix) clone() matrix {
	out := newMatrix(m.t())
	for i := range m {
		copy(out[i], m[i])
	}
	return out
}

func (m matrix) transpose() matrix {
	t := m.t()
	out := newMatrix(t)
	for i := 0; i < t; i++ {
		for j := 0; j < t; j++ {
			out[j][i] = m[i][j]
		}
	}
	return out
}

// mulMatrix returns m * other.
func (m matrix) mulMatrix(other matrix) matrix {
	t := m.t()
	out := newMatrix(t)
	for i := 0; i < t; i++ {
		for j := 0; j < t; j++ {
			acc := bn254.Zero()
			for k := 0; k < t; k++ {
				acc = acc.Add(m[i][k].Mul(other[k][j]))
			}
			out[i][j] = acc
		}
	}
	return out
}

// applyToState overwrites state with m * state (state read as a
// column vector), the full dense MDS application of §4.1 step 2/5.
func (m matrix) applyToState(state []bn254.Element) {
	t := m.t()
	out := make([]bn254.Element, t)
	for i := 0; i < t; i++ {
		acc := bn254.Zero()
		for j := 0; j < t; j++ {
			acc = acc.Add(m[i][j].Mul(state[j]))
		}
		out[i] = acc
	}
	copy(state, out)
}

// invert computes m^-1 via Gauss-Jordan elimination over the field.
// t is always small (2, 4, or 5 for the three specs in use), so the
// cubic cost is negligible and is paid only once, at process start.
func (m matrix) invert() matrix {
	t := m.t()
	work := m.clone()
	inv := identityMatrix(t)

	for col := 0; col < t; col++ {
		pivotRow := -1
		for r := col; r < t; r++ {
			if !work[r][col].IsZero() {
				pivotRow = r
				break
			}
		}
		if pivotRow < 0 {
			panic("poseidon: MDS matrix is singular")
		}
		work[col], work[pivotRow] = work[pivotRow], work[col]
		inv[col], inv[pivotRow] = inv[pivotRow], inv[col]

		pivotInv := work[col][col].Inverse()
		for c := 0; c < t; c++ {
			work[col][c] = work[col][c].Mul(pivotInv)
			inv[col][c] = inv[col][c].Mul(pivotInv)
		}

		for r := 0; r < t; r++ {
			if r == col {
				continue
			}
			factor := work[r][col]
			if factor.IsZero() {
				continue
			}
			for c := 0; c < t; c++ {
				work[r][c] = work[r][c].Sub(factor.Mul(work[col][c]))
				inv[r][c] = inv[r][c].Sub(factor.Mul(inv[col][c]))
			}
		}
	}
	return inv
}

// sparseMatrix is the optimized factorization of one partial round's
// MDS application: a dense first row plus a single dense left column,
// with the trailing (t-1)x(t-1) block reduced to the identity. This
// lets the permutation apply each partial round in O(t) field
// multiplications instead of O(t^2).
type sparseMatrix struct {
	row []bn254.Element // row[0..t), the dense top row
	col []bn254.Element // col[0..t-1), the dense left column below the pivot
}

// applyToState overwrites state with this sparse matrix times state.
func (s sparseMatrix) applyToState(state []bn254.Element) {
	t := len(state)
	out := make([]bn254.Element, t)

	acc := bn254.Zero()
	for j := 0; j < t; j++ {
		acc = acc.Add(s.row[j].Mul(state[j]))
	}
	out[0] = acc

	for i := 1; i < t; i++ {
		out[i] = s.col[i-1].Mul(state[0]).Add(state[i])
	}
	copy(state, out)
}

// factorizeOneRound peels one partial-round sparse matrix off the
// accumulated dense MDS matrix acc, following the standard optimized
// Poseidon factorization (Poseidon paper, appendix B; mirrored by the
// privacy-scaling-explorations poseidon crate that the original Rust
// core vendors). It returns the block-diagonal factor M' and the sparse
// matrix extracted for this round; the caller multiplies M' by the
// transposed MDS matrix to form the accumulator for the preceding round.
func factorizeOneRound(acc matrix) (matrix, sparseMatrix) {
	t := acc.t()

	// acc = [ m00   v^T ]
	//       [ w     mHat ]
	mHat := newMatrix(t - 1)
	for i := 1; i < t; i++ {
		for j := 1; j < t; j++ {
			mHat[i-1][j-1] = acc[i][j]
		}
	}
	mHatInv := mHat.invert()

	v := make([]bn254.Element, t-1)
	for j := 1; j < t; j++ {
		v[j-1] = acc[0][j]
	}
	w := make([]bn254.Element, t-1)
	for i := 1; i < t; i++ {
		w[i-1] = acc[i][0]
	}

	// w' = mHat^-1 * w absorbs the coupling between state[0] and the
	// rest of the state that mHat would otherwise have mixed in.
	wPrime := make([]bn254.Element, t-1)
	for i := 0; i < t-1; i++ {
		s := bn254.Zero()
		for j := 0; j < t-1; j++ {
			s = s.Add(mHatInv[i][j].Mul(w[j]))
		}
		wPrime[i] = s
	}

	// M' is mHat embedded as a block-diagonal matrix: the v/w coupling
	// is captured by this round's sparse matrix, and M' commutes with
	// the partial-round S-box, which touches state[0] only.
	next := newMatrix(t)
	next[0][0] = bn254.One()
	for i := 1; i < t; i++ {
		for j := 1; j < t; j++ {
			next[i][j] = mHat[i-1][j-1]
		}
	}

	// acc is the transpose of the matrix being factored, so the sparse
	// matrix applied to the state is the transpose of [m00 v^T; w' I].
	sparse := sparseMatrix{
		row: append([]bn254.Element{acc[0][0]}, wPrime...),
		col: v,
	}

	return next, sparse
}
