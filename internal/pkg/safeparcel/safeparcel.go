// Package safeparcel reads and writes the tagged-field framing used by
// SafeParcelable objects on top of a parcel.Parcel.
//
// Each field is prefixed with an int32 header holding its id in the low 16
// bits and its payload size in the high 16 bits. Sizes of 0xFFFF and above
// use an extended header: the high half is 0xFFFF and the real size follows
// as a second int32. An object is a field with id ObjectHeaderID whose
// payload is the object's fields; its header is always extended so the size
// can be patched in after the fields are written.
package safeparcel

import (
	"errors"
	"fmt"

	"github.com/marcos-nsantos/latlng-parcel/internal/pkg/parcel"
)

const ObjectHeaderID = 0x4F45

const extendedSize = 0xFFFF

var (
	ErrBadHeader = errors.New("bad safeparcel object header")
	ErrFieldSize = errors.New("unexpected safeparcel field size")
	ErrTruncated = parcel.ErrTruncated
)

func WriteHeader(p *parcel.Parcel, id, size int) {
	if size >= extendedSize {
		p.WriteInt32(extendedHeader(id))
		p.WriteInt32(int32(size))
		return
	}
	p.WriteInt32(int32(uint32(size)<<16 | uint32(id&0xFFFF)))
}

func extendedHeader(id int) int32 {
	return int32(uint32(extendedSize<<16) | uint32(id&0xFFFF))
}

func ReadHeader(p *parcel.Parcel) (id, size int, err error) {
	h, err := p.ReadInt32()
	if err != nil {
		return 0, 0, fmt.Errorf("reading field header: %w", err)
	}
	id = int(uint32(h) & 0xFFFF)
	size = int(uint32(h) >> 16)
	if size == extendedSize {
		ext, err := p.ReadInt32()
		if err != nil {
			return 0, 0, fmt.Errorf("reading extended size of field %d: %w", id, err)
		}
		if ext < 0 {
			return 0, 0, fmt.Errorf("%w: field %d declares %d bytes", ErrFieldSize, id, ext)
		}
		size = int(ext)
	}
	return id, size, nil
}

// BeginObject writes an object header with a placeholder size and returns
// the position of the first field. Pass it to EndObject once all fields are
// written.
func BeginObject(p *parcel.Parcel) int {
	p.WriteInt32(extendedHeader(ObjectHeaderID))
	p.WriteInt32(0)
	return p.Position()
}

func EndObject(p *parcel.Parcel, start int) error {
	end := p.Position()
	if err := p.SetPosition(start - 4); err != nil {
		return fmt.Errorf("patching object size: %w", err)
	}
	p.WriteInt32(int32(end - start))
	return p.SetPosition(end)
}

// ReadObjectHeader consumes an object header and returns the position just
// past the object's last field.
func ReadObjectHeader(p *parcel.Parcel) (int, error) {
	id, size, err := ReadHeader(p)
	if err != nil {
		return 0, err
	}
	if id != ObjectHeaderID {
		return 0, fmt.Errorf("%w: got id 0x%04x", ErrBadHeader, id)
	}
	end := p.Position() + size
	if end > p.Len() {
		return 0, fmt.Errorf("%w: object declares %d bytes, %d remain", ErrTruncated, size, p.Remaining())
	}
	return end, nil
}
