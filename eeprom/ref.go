package eeprom

import "fmt"

// Op is a compound update applied to a cell as read-modify-write.
type Op uint8

const (
	OpAdd Op = iota + 1 // +=
	OpSub               // -=
	OpMul               // *=
	OpDiv               // /=
	OpXor               // ^=
	OpMod               // %=
	OpAnd               // &=
	OpOr                // |=
	OpShl               // <<=
	OpShr               // >>=
)

var opNames = map[Op]string{
	OpAdd: "+=",
	OpSub: "-=",
	OpMul: "*=",
	OpDiv: "/=",
	OpXor: "^=",
	OpMod: "%=",
	OpAnd: "&=",
	OpOr:  "|=",
	OpShl: "<<=",
	OpShr: ">>=",
}

func (op Op) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Op(%d)", uint8(op))
}

// arithmetic wraps modulo 256; OpDiv and OpMod by zero panic
func (op Op) eval(a, b uint8) uint8 {
	switch op {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	case OpDiv:
		return a / b
	case OpXor:
		return a ^ b
	case OpMod:
		return a % b
	case OpAnd:
		return a & b
	case OpOr:
		return a | b
	case OpShl:
		return a << b
	case OpShr:
		return a >> b
	}
	panic(fmt.Sprintf("eeprom: unknown op %s", op))
}

// Ref references a single EEPROM cell.
// It behaves like a byte variable whose storage lives behind a ReadWriter.
// A Ref owns nothing: refs to the same index see each other's writes immediately.
type Ref struct {
	mem   ReadWriter
	index int
}

func NewRef(mem ReadWriter, index int) Ref {
	return Ref{mem: mem, index: index}
}

func (r Ref) Index() int {
	return r.index
}

func (r Ref) Get() uint8 {
	return r.mem.Read8(r.index)
}

func (r Ref) Set(data uint8) Ref {
	r.mem.Write8(r.index, data)
	return r
}

// Assign copies the value of another cell into this one.
func (r Ref) Assign(other Ref) Ref {
	return r.Set(other.Get())
}

// Apply reads the cell, evaluates op against operand and writes the result back.
func (r Ref) Apply(op Op, operand uint8) Ref {
	return r.Set(op.eval(r.Get(), operand))
}

func (r Ref) Add(v uint8) Ref { return r.Apply(OpAdd, v) }
func (r Ref) Sub(v uint8) Ref { return r.Apply(OpSub, v) }
func (r Ref) Mul(v uint8) Ref { return r.Apply(OpMul, v) }
func (r Ref) Div(v uint8) Ref { return r.Apply(OpDiv, v) }
func (r Ref) Xor(v uint8) Ref { return r.Apply(OpXor, v) }
func (r Ref) Mod(v uint8) Ref { return r.Apply(OpMod, v) }
func (r Ref) And(v uint8) Ref { return r.Apply(OpAnd, v) }
func (r Ref) Or(v uint8) Ref  { return r.Apply(OpOr, v) }
func (r Ref) Shl(v uint8) Ref { return r.Apply(OpShl, v) }
func (r Ref) Shr(v uint8) Ref { return r.Apply(OpShr, v) }

// Update writes data only if it differs from the stored value.
// On real hardware this saves an erase/write cycle.
func (r Ref) Update(data uint8) Ref {
	if data != r.Get() {
		r.Set(data)
	}
	return r
}

// Inc is the prefix increment: it returns the ref after the update.
func (r Ref) Inc() Ref {
	return r.Add(1)
}

func (r Ref) Dec() Ref {
	return r.Sub(1)
}

// PostInc is the postfix increment: it returns the value held before the update.
func (r Ref) PostInc() uint8 {
	ret := r.Get()
	r.Inc()
	return ret
}

func (r Ref) PostDec() uint8 {
	ret := r.Get()
	r.Dec()
	return ret
}

func (r Ref) String() string {
	return fmt.Sprintf("[%04X]=$%02X", r.index, r.Get())
}
