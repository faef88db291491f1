package components

import "github.com/holiman/uint256"

// cantorPair implements the Cantor pairing function over U256
// arithmetic: (x^2 + 3x + 2xy + y + y^2) / 2, with integer (floor)
// division. Both operands and the result are unsigned 256-bit
// integers, matching the original's wide-integer date/amount
// compression (§4.3 step 4).
func cantorPair(x, y *uint256.Int) *uint256.Int {
	xSq := new(uint256.Int).Mul(x, x)
	ySq := new(uint256.Int).Mul(y, y)
	threeX := new(uint256.Int).Mul(x, uint256.NewInt(3))
	twoXY := new(uint256.Int).Mul(uint256.NewInt(2), new(uint256.Int).Mul(x, y))

	sum := new(uint256.Int).Add(xSq, threeX)
	sum.Add(sum, twoXY)
	sum.Add(sum, y)
	sum.Add(sum, ySq)

	return new(uint256.Int).Rsh(sum, 1) // / 2, floor division by a power of two
}
