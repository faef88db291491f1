package components

import (
	"encoding/binary"
	"io"
)

// AmountComponent serializes a transaction amount as two big-endian
// u64 halves: a whole-unit base and a sub-unit remainder (atto),
// written base first (§3).
type AmountComponent struct {
	Base, Atto uint64
}

func NewAmountComponent(base, atto uint64) AmountComponent {
	return AmountComponent{Base: base, Atto: atto}
}

func (AmountComponent) Size() int { return 16 }

func (c AmountComponent) Serialize(w io.Writer) error {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[0:8], c.Base)
	binary.BigEndian.PutUint64(buf[8:16], c.Atto)
	_, err := w.Write(buf[:])
	return err
}
