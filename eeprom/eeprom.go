// Package eeprom emulates the Arduino EEPROM library in process memory so that
// code written against it can be tested on a host. Nothing is persisted: the
// cells live as long as the process does.
//
// The package is not safe for concurrent use. It models a single-threaded
// microcontroller; callers sharing an EEPROM between goroutines must
// synchronize themselves.
package eeprom

import "iter"

// EEPROM represents the entire EEPROM space.
type EEPROM struct {
	store *Store
}

func New(store *Store) *EEPROM {
	return &EEPROM{store: store}
}

func (e *EEPROM) Store() *Store {
	return e.store
}

// At returns a reference to the cell at index.
func (e *EEPROM) At(index int) Ref {
	return NewRef(e.store, index)
}

func (e *EEPROM) Read(index int) uint8 {
	return e.At(index).Get()
}

func (e *EEPROM) Write(index int, data uint8) {
	e.At(index).Set(data)
}

func (e *EEPROM) Update(index int, data uint8) {
	e.At(index).Update(data)
}

func (e *EEPROM) Begin() Ptr {
	return NewPtr(e.store, 0)
}

// End returns the pointer after the last valid cell. It must not be dereferenced.
func (e *EEPROM) End() Ptr {
	return NewPtr(e.store, e.Length())
}

// Length returns the number of cells.
// The Arduino library reports one more than that; see DESIGN.md.
func (e *EEPROM) Length() int {
	return e.store.Size()
}

// All iterates over every cell in order.
func (e *EEPROM) All() iter.Seq2[int, Ref] {
	return func(yield func(int, Ref) bool) {
		for p := e.Begin(); p.NotEqual(e.End()); p.Next() {
			if !yield(p.Index(), p.Ref()) {
				return
			}
		}
	}
}
