// Package parcel implements the flat little-endian buffer used by the
// Android Parcel wire format. Every primitive occupies a multiple of four
// bytes, so positions stay 4-byte aligned.
package parcel

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var (
	ErrTruncated       = errors.New("parcel truncated")
	ErrInvalidPosition = errors.New("invalid parcel position")
)

type Parcel struct {
	data []byte
	pos  int
}

func New() *Parcel {
	return &Parcel{data: make([]byte, 0, 64)}
}

// FromBytes wraps data for reading. The slice is not copied.
func FromBytes(data []byte) *Parcel {
	return &Parcel{data: data}
}

func (p *Parcel) Bytes() []byte {
	return p.data
}

func (p *Parcel) Len() int {
	return len(p.data)
}

func (p *Parcel) Position() int {
	return p.pos
}

func (p *Parcel) Remaining() int {
	return len(p.data) - p.pos
}

func (p *Parcel) SetPosition(pos int) error {
	if pos < 0 || pos > len(p.data) {
		return fmt.Errorf("%w: %d (size %d)", ErrInvalidPosition, pos, len(p.data))
	}
	p.pos = pos
	return nil
}

func (p *Parcel) WriteInt32(v int32) {
	p.put(4, func(b []byte) { binary.LittleEndian.PutUint32(b, uint32(v)) })
}

func (p *Parcel) WriteInt64(v int64) {
	p.put(8, func(b []byte) { binary.LittleEndian.PutUint64(b, uint64(v)) })
}

func (p *Parcel) WriteFloat32(v float32) {
	p.put(4, func(b []byte) { binary.LittleEndian.PutUint32(b, math.Float32bits(v)) })
}

func (p *Parcel) WriteFloat64(v float64) {
	p.put(8, func(b []byte) { binary.LittleEndian.PutUint64(b, math.Float64bits(v)) })
}

func (p *Parcel) ReadInt32() (int32, error) {
	b, err := p.take(4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b)), nil
}

func (p *Parcel) ReadInt64() (int64, error) {
	b, err := p.take(8)
	if err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b)), nil
}

func (p *Parcel) ReadFloat32() (float32, error) {
	b, err := p.take(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b)), nil
}

func (p *Parcel) ReadFloat64() (float64, error) {
	b, err := p.take(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b)), nil
}

// put writes n bytes at the current position, overwriting existing data and
// growing the buffer when the write runs past the end.
func (p *Parcel) put(n int, fill func([]byte)) {
	end := p.pos + n
	if end > len(p.data) {
		p.data = append(p.data, make([]byte, end-len(p.data))...)
	}
	fill(p.data[p.pos:end])
	p.pos = end
}

func (p *Parcel) take(n int) ([]byte, error) {
	if p.Remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes at %d, have %d", ErrTruncated, n, p.pos, p.Remaining())
	}
	b := p.data[p.pos : p.pos+n]
	p.pos += n
	return b, nil
}
