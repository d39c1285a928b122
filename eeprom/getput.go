package eeprom

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"strings"
)

// Values are laid out packed and little-endian, the way avr-gcc stores them.
var byteOrder = binary.LittleEndian

// SizeOf returns the number of cells a value of type T occupies.
// It panics if T is not a fixed-layout type.
func SizeOf[T any]() int {
	var v T
	return fixedSize(&v)
}

func fixedSize(v any) int {
	n := binary.Size(v)
	if n < 0 {
		panic(fmt.Sprintf("eeprom: %T is not a fixed-layout type", v))
	}
	if f, ok := unexportedField(reflect.TypeOf(v)); ok {
		panic(fmt.Sprintf("eeprom: %T is not a fixed-layout type: field %s is unexported", v, f))
	}
	return n
}

// unexportedField finds a named unexported struct field anywhere inside t.
// encoding/binary can read such fields but cannot set them.
func unexportedField(t reflect.Type) (string, bool) {
	switch t.Kind() {
	case reflect.Pointer, reflect.Array, reflect.Slice:
		return unexportedField(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.Name == "_" {
				continue
			}
			if !f.IsExported() {
				return f.Name, true
			}
			if name, ok := unexportedField(f.Type); ok {
				return f.Name + "." + name, true
			}
		}
	}
	return "", false
}

// Get reads a T from the cells starting at index into out and returns out.
//
// T must be fixed-layout: booleans, sized numbers, arrays of them, or structs
// with exported fields of such types. Anything else panics, so Get and Put
// accept the same types. Any string type is read as null-terminated text,
// see GetString.
func Get[T any](e *EEPROM, index int, out *T) *T {
	if rv := reflect.ValueOf(out).Elem(); rv.Kind() == reflect.String {
		rv.SetString(e.GetString(index))
		return out
	}

	size := fixedSize(out)
	buf := make([]uint8, size)
	e.store.ReadBlock(buf, index, size)
	if _, err := binary.Decode(buf, byteOrder, out); err != nil {
		panic(fmt.Sprintf("eeprom: couldn't decode %T: %s", out, err))
	}
	return out
}

// Put writes v to the cells starting at index and returns v unchanged.
// Any string type is written as null-terminated text, see PutString.
func Put[T any](e *EEPROM, index int, v T) T {
	if rv := reflect.ValueOf(&v).Elem(); rv.Kind() == reflect.String {
		e.PutString(index, rv.String())
		return v
	}

	size := fixedSize(&v)
	buf := make([]uint8, size)
	if _, err := binary.Encode(buf, byteOrder, &v); err != nil {
		panic(fmt.Sprintf("eeprom: couldn't encode %T: %s", v, err))
	}
	e.store.WriteBlock(buf, index, size)
	return v
}

// PutString writes the bytes of s followed by a 0x00 terminator.
// Cells already holding the right byte are not rewritten.
func (e *EEPROM) PutString(index int, s string) string {
	p := NewPtr(e.store, index)
	for i := 0; i < len(s); i++ {
		p.Ref().Update(s[i])
		p.Next()
	}
	p.Ref().Update(0)
	return s
}

// GetString reads bytes starting at index up to the 0x00 terminator, which
// is consumed but not returned. The scan stops at the end of the store when
// no terminator is found.
func (e *EEPROM) GetString(index int) string {
	var sb strings.Builder
	end := e.End()
	for p := NewPtr(e.store, index); p.NotEqual(end); p.Next() {
		c := p.Ref().Get()
		if c == 0 {
			break
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
