package eeprom

// Ptr is a bidirectional pointer to EEPROM cells.
// Dereferencing it yields a Ref, so writes through it mutate the store.
type Ptr struct {
	mem   ReadWriter
	index int
}

func NewPtr(mem ReadWriter, index int) Ptr {
	return Ptr{mem: mem, index: index}
}

// Index returns the raw position.
func (p Ptr) Index() int {
	return p.index
}

// Set repositions the pointer.
func (p *Ptr) Set(index int) *Ptr {
	p.index = index
	return p
}

// Ref dereferences the pointer. Never call it on an end pointer.
func (p Ptr) Ref() Ref {
	return Ref{mem: p.mem, index: p.index}
}

// NotEqual compares positions only.
func (p Ptr) NotEqual(other Ptr) bool {
	return p.index != other.index
}

func (p *Ptr) Next() *Ptr {
	p.index++
	return p
}

func (p *Ptr) Prev() *Ptr {
	p.index--
	return p
}

// PostNext advances the pointer and returns a copy of it taken before the move.
func (p *Ptr) PostNext() Ptr {
	old := *p
	p.index++
	return old
}

func (p *Ptr) PostPrev() Ptr {
	old := *p
	p.index--
	return old
}
