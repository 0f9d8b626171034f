package safeparcel

import (
	"fmt"

	"github.com/marcos-nsantos/latlng-parcel/internal/pkg/parcel"
)

type WireType int

const (
	WireInt32 WireType = iota + 1
	WireFloat64
)

func (w WireType) Size() int {
	switch w {
	case WireInt32:
		return 4
	case WireFloat64:
		return 8
	default:
		return 0
	}
}

func (w WireType) String() string {
	switch w {
	case WireInt32:
		return "int32"
	case WireFloat64:
		return "float64"
	default:
		return fmt.Sprintf("WireType(%d)", int(w))
	}
}

// Field binds one tag to a getter on the immutable value T and a setter on
// the decode record B.
type Field[T, B any] struct {
	ID    int
	Type  WireType
	write func(p *parcel.Parcel, v T)
	read  func(p *parcel.Parcel, b *B) error
}

func Int32[T, B any](id int, get func(T) int32, set func(*B, int32)) Field[T, B] {
	return Field[T, B]{
		ID:    id,
		Type:  WireInt32,
		write: func(p *parcel.Parcel, v T) { p.WriteInt32(get(v)) },
		read: func(p *parcel.Parcel, b *B) error {
			v, err := p.ReadInt32()
			if err != nil {
				return err
			}
			set(b, v)
			return nil
		},
	}
}

func Float64[T, B any](id int, get func(T) float64, set func(*B, float64)) Field[T, B] {
	return Field[T, B]{
		ID:    id,
		Type:  WireFloat64,
		write: func(p *parcel.Parcel, v T) { p.WriteFloat64(get(v)) },
		read: func(p *parcel.Parcel, b *B) error {
			v, err := p.ReadFloat64()
			if err != nil {
				return err
			}
			set(b, v)
			return nil
		},
	}
}

// Schema is the fixed tag table for one SafeParcelable type. Fields are
// written in declaration order; on read, unknown tags are skipped.
type Schema[T, B any] struct {
	fields []Field[T, B]
	byID   map[int]Field[T, B]
}

// NewSchema panics on duplicate or out-of-range ids; schemas are package
// level values built at init.
func NewSchema[T, B any](fields ...Field[T, B]) *Schema[T, B] {
	byID := make(map[int]Field[T, B], len(fields))
	for _, f := range fields {
		if f.ID <= 0 || f.ID > 0xFFFF || f.ID == ObjectHeaderID {
			panic(fmt.Sprintf("safeparcel: invalid field id %d", f.ID))
		}
		if _, dup := byID[f.ID]; dup {
			panic(fmt.Sprintf("safeparcel: duplicate field id %d", f.ID))
		}
		byID[f.ID] = f
	}
	return &Schema[T, B]{fields: fields, byID: byID}
}

func (s *Schema[T, B]) Fields() []Field[T, B] {
	return s.fields
}

func (s *Schema[T, B]) Write(p *parcel.Parcel, v T) error {
	start := BeginObject(p)
	for _, f := range s.fields {
		WriteHeader(p, f.ID, f.Type.Size())
		f.write(p, v)
	}
	return EndObject(p, start)
}

// Read decodes one object into b. Fields absent from the stream leave b
// untouched, so callers pre-fill b with placeholders.
func (s *Schema[T, B]) Read(p *parcel.Parcel, b *B) error {
	end, err := ReadObjectHeader(p)
	if err != nil {
		return err
	}

	for p.Position() < end {
		id, size, err := ReadHeader(p)
		if err != nil {
			return err
		}
		if p.Position()+size > end {
			return fmt.Errorf("%w: field %d overruns object end", ErrTruncated, id)
		}

		f, ok := s.byID[id]
		if !ok {
			if err := p.SetPosition(p.Position() + size); err != nil {
				return err
			}
			continue
		}
		if size != f.Type.Size() {
			return fmt.Errorf("%w: field %d is %s, want %d bytes, got %d", ErrFieldSize, id, f.Type, f.Type.Size(), size)
		}
		if err := f.read(p, b); err != nil {
			return fmt.Errorf("reading field %d: %w", id, err)
		}
	}

	return p.SetPosition(end)
}
