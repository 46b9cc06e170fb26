// Package bcs adapts github.com/fardream/go-bcs to the shapes the argument
// encoder needs: chained writes of fixed width integers, booleans, fixed
// width addresses and ULEB128 length prefixed sequences.
package bcs

import (
	"bytes"
	"errors"
	"fmt"

	gobcs "github.com/fardream/go-bcs/bcs"
)

// MaxSequenceLength is the largest length a sequence prefix may carry
const MaxSequenceLength = 1<<31 - 1

// a u32 takes at most five ULEB128 bytes
const maxPrefixBytes = 5

var (
	ErrSequenceTooLong = errors.New("sequence length exceeds limit")
	ErrUnexpectedEOF   = errors.New("unexpected end of input")
	ErrInvalidBool     = errors.New("invalid bool byte")
	ErrNonCanonical    = errors.New("non canonical length prefix")
)

// SequenceLengthPrefix returns the ULEB128 prefix written before a
// sequence of n elements
func SequenceLengthPrefix(n int) ([]byte, error) {
	if n < 0 || n > MaxSequenceLength {
		return nil, fmt.Errorf("%w: %d", ErrSequenceTooLong, n)
	}

	return gobcs.ULEB128Encode(uint32(n)), nil
}

// Encoder appends canonical encodings to an internal buffer
type Encoder struct {
	buf []byte
	err error
}

func NewEncoder() *Encoder {
	return &Encoder{}
}

// marshal appends the library encoding of v, keeping the first error
func (e *Encoder) marshal(v interface{}) *Encoder {
	if e.err != nil {
		return e
	}

	b, err := gobcs.Marshal(v)
	if err != nil {
		e.err = err

		return e
	}

	e.buf = append(e.buf, b...)

	return e
}

func (e *Encoder) Bool(v bool) *Encoder {
	return e.marshal(v)
}

func (e *Encoder) U8(v uint8) *Encoder {
	return e.marshal(v)
}

func (e *Encoder) U64(v uint64) *Encoder {
	return e.marshal(v)
}

// U128 writes a 128 bit integer given as its low and high words; the
// little-endian layout puts the low word first
func (e *Encoder) U128(lo, hi uint64) *Encoder {
	return e.marshal(lo).marshal(hi)
}

// Fixed writes b as is, for fixed width values such as addresses
func (e *Encoder) Fixed(b []byte) *Encoder {
	e.buf = append(e.buf, b...)

	return e
}

// SequenceLength writes the prefix of a sequence of n elements
func (e *Encoder) SequenceLength(n int) *Encoder {
	prefix, err := SequenceLengthPrefix(n)
	if err != nil {
		if e.err == nil {
			e.err = err
		}

		return e
	}

	e.buf = append(e.buf, prefix...)

	return e
}

// Bytes writes a length prefixed byte vector
func (e *Encoder) Bytes(b []byte) *Encoder {
	return e.SequenceLength(len(b)).Fixed(b)
}

// Result returns the encoded bytes or the first error hit while encoding
func (e *Encoder) Result() ([]byte, error) {
	if e.err != nil {
		return nil, e.err
	}

	return e.buf, nil
}

// Decoder reads canonical encodings from a buffer
type Decoder struct {
	buf []byte
	pos int
}

func NewDecoder(b []byte) *Decoder {
	return &Decoder{buf: b}
}

func (d *Decoder) take(n int) ([]byte, error) {
	if n < 0 || len(d.buf)-d.pos < n {
		return nil, ErrUnexpectedEOF
	}

	b := d.buf[d.pos : d.pos+n]
	d.pos += n

	return b, nil
}

func (d *Decoder) Bool() (bool, error) {
	b, err := d.take(1)
	if err != nil {
		return false, err
	}

	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%w: %d", ErrInvalidBool, b[0])
	}
}

func (d *Decoder) U8() (uint8, error) {
	b, err := d.take(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

func (d *Decoder) U64() (uint64, error) {
	b, err := d.take(8)
	if err != nil {
		return 0, err
	}

	var v uint64
	if _, err := gobcs.Unmarshal(b, &v); err != nil {
		return 0, err
	}

	return v, nil
}

func (d *Decoder) Fixed(n int) ([]byte, error) {
	return d.take(n)
}

func (d *Decoder) SequenceLength() (int, error) {
	rest := d.buf[d.pos:]

	// the prefix ends at the first byte without the continuation bit
	end := -1

	for i, c := range rest {
		if i == maxPrefixBytes {
			return 0, ErrSequenceTooLong
		}

		if c&0x80 == 0 {
			end = i + 1

			break
		}
	}

	if end < 0 {
		return 0, ErrUnexpectedEOF
	}

	v, _, err := gobcs.ULEB128Decode[uint32](bytes.NewReader(rest[:end]))
	if err != nil || v > MaxSequenceLength {
		return 0, fmt.Errorf("%w: %x", ErrSequenceTooLong, rest[:end])
	}

	// the shortest form is the only valid one
	if len(gobcs.ULEB128Encode(v)) != end {
		return 0, ErrNonCanonical
	}

	d.pos += end

	return int(v), nil
}

func (d *Decoder) Bytes() ([]byte, error) {
	n, err := d.SequenceLength()
	if err != nil {
		return nil, err
	}

	return d.take(n)
}

// Remaining is the count of bytes not consumed yet
func (d *Decoder) Remaining() int {
	return len(d.buf) - d.pos
}
