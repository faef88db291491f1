// Package fingerprint implements the L3 transaction digest: assembling
// the canonical per-transaction byte buffer, limb-splitting it for the
// wide Poseidon sponge, and combining the result with a seed produced
// by a FingerprintProtocol (§4.4).
package fingerprint

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/luxfi/fingerprint/pkg/bn254"
	"github.com/luxfi/fingerprint/pkg/components"
	"github.com/luxfi/fingerprint/pkg/poseidon"
	"github.com/luxfi/fingerprint/pkg/protocol"
)

// magicPrefix domain-separates the transaction buffer from any other
// caller of the shared width-5 sponge.
var magicPrefix = [8]byte{0xFF, 0xFE, 0xED, 0xDD, 0xCC, 0x00, 0xDD, 0xEE}

// ErrInvalidInput covers BIC length, unknown/special currency, and any
// other malformed RawTransaction field.
var ErrInvalidInput = errors.New("fingerprint: invalid input")

// RawTransaction is the validated input to a fingerprint computation:
// a bank identifier, an amount, a currency, the instant the
// transaction occurred, and its world-wide calendar date (§3).
type RawTransaction struct {
	BIC       string
	Base      uint64
	Atto      uint64
	Currency  string
	DateTime  time.Time
	WWD       time.Time
}

// components assembles and validates every L2 component, returning an
// error before any hashing occurs if a single field is malformed
// (§7's "input validation errors surface synchronously before any
// hashing").
func (tx RawTransaction) components() (components.BankIdentifierComponent, components.AmountComponent, components.CurrencyComponent, components.DateTimeComponent, error) {
	bic, err := components.NewBankIdentifierComponent(tx.BIC)
	if err != nil {
		return components.BankIdentifierComponent{}, components.AmountComponent{}, components.CurrencyComponent{}, components.DateTimeComponent{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	currency, err := components.NewCurrencyComponent(tx.Currency)
	if err != nil {
		return components.BankIdentifierComponent{}, components.AmountComponent{}, components.CurrencyComponent{}, components.DateTimeComponent{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	amount := components.NewAmountComponent(tx.Base, tx.Atto)
	dt, err := components.NewDateTimeComponent(tx.Base, tx.Atto, tx.DateTime, tx.WWD)
	if err != nil {
		// InvalidDate is a distinct error kind from InvalidInput (§7);
		// propagate it unwrapped.
		return components.BankIdentifierComponent{}, components.AmountComponent{}, components.CurrencyComponent{}, components.DateTimeComponent{}, err
	}
	return bic, amount, currency, dt, nil
}

// buffer assembles the 66-byte per-transaction fingerprint buffer:
// magic prefix, BIC, amount, currency, and the date-time field's
// squeezed element encoded canonically (§3).
func buffer(bic components.BankIdentifierComponent, amount components.AmountComponent, currency components.CurrencyComponent, dateField bn254.Element) ([66]byte, error) {
	var buf bytes.Buffer
	buf.Write(magicPrefix[:])
	if err := bic.Serialize(&buf); err != nil {
		return [66]byte{}, err
	}
	if err := amount.Serialize(&buf); err != nil {
		return [66]byte{}, err
	}
	if err := currency.Serialize(&buf); err != nil {
		return [66]byte{}, err
	}
	fieldBytes := dateField.Bytes()
	buf.Write(fieldBytes[:])

	var out [66]byte
	copy(out[:], buf.Bytes())
	return out, nil
}

// limbs splits buf into four 16-byte limbs, each zero-padded into its
// own 32-byte little-endian field element (§4.4 step 3). Decoding a
// 16-byte limb as a field element can never exceed the modulus, so
// the fallback to zero specified for a hypothetical failure is
// unreachable in practice but implemented for literal fidelity.
func limbs(buf [66]byte) [4]bn254.Element {
	var out [4]bn254.Element
	limbSize := len(buf) / 4
	for i := 0; i < 4; i++ {
		var padded [32]byte
		copy(padded[:limbSize], buf[i*limbSize:(i+1)*limbSize])
		out[i] = bn254.FromBytesOrZero(padded)
	}
	return out
}

// SpecBig is the width-5, rate-4 Poseidon instance that hashes the
// transaction buffer (§3).
var SpecBig = poseidon.NewSpec(5, 4, 8, 57)

// SpecDC is the width-4, rate-3 Poseidon instance that hashes the
// date-time triple (§3).
var SpecDC = poseidon.NewSpec(4, 3, 8, 57)

// Compute performs the full L2→L3→L4 fingerprint pipeline for tx under
// the given protocol: it derives the date-time seed, asks the
// protocol to process it into a blinded field element, then folds
// every component into the final transaction digest (§4.4).
func Compute(ctx context.Context, tx RawTransaction, proto protocol.FingerprintProtocol) (bn254.Element, error) {
	bic, amount, currency, dt, err := tx.components()
	if err != nil {
		return bn254.Element{}, err
	}

	seed, err := dt.Squeeze(SpecDC)
	if err != nil {
		return bn254.Element{}, err
	}

	processed, err := proto.Process(ctx, seed)
	if err != nil {
		return bn254.Element{}, err
	}

	buf, err := buffer(bic, amount, currency, processed)
	if err != nil {
		return bn254.Element{}, err
	}

	state := poseidon.NewState(SpecBig)
	state.Update(limbs(buf)[:])
	return state.Squeeze(), nil
}
