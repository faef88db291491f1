package components

import (
	"errors"
	"fmt"
	"time"

	"github.com/cronokirby/saferith"
	"github.com/holiman/uint256"

	"github.com/luxfi/fingerprint/pkg/bn254"
	"github.com/luxfi/fingerprint/pkg/poseidon"
)

// Epoch is the origin for every time offset in the system: 2025-01-01
// 00:00:00 UTC. Both a transaction's instant and its world-wide date
// are measured relative to it.
var Epoch = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// ErrInvalidDate is returned whenever a date-time component cannot be
// squeezed: either operand predates Epoch, the day offset overflows
// uint32, or amount/day division would divide by zero.
var ErrInvalidDate = errors.New("components: invalid date")

// DateTimeComponent derives the single field element that represents
// a transaction's timing and amount together, by folding a Cantor-
// paired nonce through the width-4 Poseidon spec (§4.3).
type DateTimeComponent struct {
	base, atto uint64
	dateTime   time.Time
	wwd        time.Time
}

// NewDateTimeComponent validates and constructs the component. It does
// not itself squeeze the field element; call Squeeze for that, since
// squeezing needs the SPEC_DC instance to hash with.
func NewDateTimeComponent(base, atto uint64, dateTime, wwd time.Time) (DateTimeComponent, error) {
	if dateTime.Before(Epoch) {
		return DateTimeComponent{}, fmt.Errorf("%w: date_time %s precedes epoch", ErrInvalidDate, dateTime)
	}
	if wwd.Before(Epoch) {
		return DateTimeComponent{}, fmt.Errorf("%w: wwd %s precedes epoch", ErrInvalidDate, wwd)
	}
	return DateTimeComponent{base: base, atto: atto, dateTime: dateTime.UTC(), wwd: wwd.UTC()}, nil
}

// Squeeze computes the component's field element per §4.3:
//  1. full_amount = base XOR-literal-exponent 10^18 + atto, preserved
//     bit-for-bit as the spec's literal "10 ^ 18" (bitwise XOR, = 24)
//     rather than the exponent the prose appears to intend — this is
//     an open question (§9a) frozen to match reference vectors.
//  2. seconds = date_time - Epoch, rejecting negative values.
//  3. days = wwd.Date() - Epoch.Date(), rejecting negative or >u32::MAX.
//  4. nonce = CantorPair(seconds, full_amount / days), integer division.
//  5. Hash (seconds, days, nonce) through SPEC_DC and squeeze.
func (d DateTimeComponent) Squeeze(specDC *poseidon.Spec) (bn254.Element, error) {
	seconds := int64(d.dateTime.Sub(Epoch).Seconds())
	if seconds < 0 {
		return bn254.Element{}, fmt.Errorf("%w: negative seconds offset", ErrInvalidDate)
	}

	daySeconds := dateOnly(d.wwd).Sub(dateOnly(Epoch))
	days := int64(daySeconds.Hours() / 24)
	if days < 0 || !fitsUint32(days) {
		return bn254.Element{}, fmt.Errorf("%w: day offset %d out of range", ErrInvalidDate, days)
	}
	if days == 0 {
		return bn254.Element{}, fmt.Errorf("%w: division by zero day offset", ErrInvalidDate)
	}

	fullAmount := new(uint256.Int).Mul(uint256.NewInt(d.base), uint256.NewInt(10^18))
	fullAmount.Add(fullAmount, uint256.NewInt(d.atto))

	amountPerDay := new(uint256.Int).Div(fullAmount, uint256.NewInt(uint64(days)))

	nonce := cantorPair(uint256.NewInt(uint64(seconds)), amountPerDay)

	secondsFr := bn254.NewFromUint64(uint64(seconds))
	daysFr := bn254.NewFromUint64(uint64(days))
	nonceFr := fieldFromU256Low(nonce)

	state := poseidon.NewState(specDC)
	state.Update([]bn254.Element{secondsFr, daysFr, nonceFr})
	return state.Squeeze(), nil
}

// fieldFromU256Low reduces a wide U256 value to a field element by
// taking its low 32 bytes modulo the field's own reduction rule,
// matching the original's "nonce as raw limbs" decoding rather than a
// checked canonical decode (the Cantor-pair output routinely exceeds
// the field modulus).
func fieldFromU256Low(v *uint256.Int) bn254.Element {
	be := v.Bytes32()
	var le [32]byte
	for i := 0; i < 32; i++ {
		le[i] = be[31-i]
	}
	return bn254.FromRawBytes(le)
}

// maxUint32 is built through a saferith.Nat for the "days > u32::MAX"
// boundary (§4.3 step 3). Comparison itself goes through big.Int,
// since Nat's arithmetic is sized for modular reduction rather than
// ordering.
var maxUint32 = new(saferith.Nat).SetUint64(1<<32 - 1).Big()

func fitsUint32(days int64) bool {
	n := new(saferith.Nat).SetUint64(uint64(days))
	return n.Big().Cmp(maxUint32) <= 0
}

func dateOnly(t time.Time) time.Time {
	y, m, dd := t.Date()
	return time.Date(y, m, dd, 0, 0, 0, 0, time.UTC)
}
