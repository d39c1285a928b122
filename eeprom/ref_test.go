package eeprom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type memMock struct {
	mock.Mock
}

func (m *memMock) Read8(index int) uint8 {
	args := m.Called(index)
	return args.Get(0).(uint8)
}

func (m *memMock) Write8(index int, data uint8) {
	m.Called(index, data)
}

func Test_Ref_Apply(t *testing.T) {
	type testArgs struct {
		op       Op
		initial  uint8
		operand  uint8
		expected uint8
	}

	testDo := func(t *testing.T, in testArgs) {
		s := NewStore(4)
		s.Write8(2, in.initial)

		ref := NewRef(s, 2).Apply(in.op, in.operand)

		assert.Equal(t, in.expected, ref.Get(), "%d %s %d", in.initial, in.op, in.operand)
		assert.Equal(t, in.expected, s.Read8(2))
		assert.Equal(t, uint8(0), s.Read8(1))
		assert.Equal(t, uint8(0), s.Read8(3))
	}

	t.Run("add wraps", func(t *testing.T) {
		testDo(t, testArgs{op: OpAdd, initial: 200, operand: 100, expected: 44})
	})
	t.Run("sub wraps", func(t *testing.T) {
		testDo(t, testArgs{op: OpSub, initial: 5, operand: 10, expected: 251})
	})
	t.Run("mul wraps", func(t *testing.T) {
		testDo(t, testArgs{op: OpMul, initial: 16, operand: 17, expected: 16})
	})
	t.Run("div truncates", func(t *testing.T) {
		testDo(t, testArgs{op: OpDiv, initial: 200, operand: 7, expected: 28})
	})
	t.Run("xor", func(t *testing.T) {
		testDo(t, testArgs{op: OpXor, initial: 0xf0, operand: 0xff, expected: 0x0f})
	})
	t.Run("mod", func(t *testing.T) {
		testDo(t, testArgs{op: OpMod, initial: 200, operand: 7, expected: 4})
	})
	t.Run("and", func(t *testing.T) {
		testDo(t, testArgs{op: OpAnd, initial: 0xf0, operand: 0x3c, expected: 0x30})
	})
	t.Run("or", func(t *testing.T) {
		testDo(t, testArgs{op: OpOr, initial: 0xf0, operand: 0x0f, expected: 0xff})
	})
	t.Run("shl drops high bit", func(t *testing.T) {
		testDo(t, testArgs{op: OpShl, initial: 0x81, operand: 1, expected: 0x02})
	})
	t.Run("shl by width clears", func(t *testing.T) {
		testDo(t, testArgs{op: OpShl, initial: 0x01, operand: 8, expected: 0})
	})
	t.Run("shr", func(t *testing.T) {
		testDo(t, testArgs{op: OpShr, initial: 0x80, operand: 7, expected: 0x01})
	})
}

func Test_Ref_OperatorHelpers(t *testing.T) {
	s := NewStore(4)
	ref := NewRef(s, 1)

	ref.Set(10).Add(5).Mul(3).Sub(1).Div(2).Mod(9)
	assert.Equal(t, uint8(4), ref.Get()) // ((10+5)*3-1)/2 = 22, 22%9 = 4

	ref.Or(0x80).And(0x84).Xor(0x01).Shl(1).Shr(2)
	assert.Equal(t, uint8(0x02), ref.Get()) // 0x84^0x01 = 0x85, <<1 = 0x0a, >>2 = 0x02
}

func Test_Ref_DivByZeroPanics(t *testing.T) {
	ref := NewRef(NewStore(1), 0)
	assert.Panics(t, func() { ref.Div(0) })
	assert.Panics(t, func() { ref.Mod(0) })
}

func Test_Ref_ApplyIsReadModifyWrite(t *testing.T) {
	mem := &memMock{}
	mem.On("Read8", 5).Return(uint8(200)).Once()
	mem.On("Write8", 5, uint8(44)).Once()

	NewRef(mem, 5).Add(100)

	mem.AssertExpectations(t)
}

func Test_Ref_Update(t *testing.T) {
	t.Run("equal value does not write", func(t *testing.T) {
		mem := &memMock{}
		mem.On("Read8", 3).Return(uint8(7))

		NewRef(mem, 3).Update(7)

		mem.AssertExpectations(t)
		mem.AssertNotCalled(t, "Write8", mock.Anything, mock.Anything)
	})

	t.Run("different value writes once", func(t *testing.T) {
		mem := &memMock{}
		mem.On("Read8", 3).Return(uint8(7))
		mem.On("Write8", 3, uint8(8)).Once()

		NewRef(mem, 3).Update(8)

		mem.AssertExpectations(t)
	})
}

func Test_Ref_IncDec(t *testing.T) {
	s := NewStore(2)
	ref := NewRef(s, 0)

	ref.Set(254)
	assert.Equal(t, uint8(255), ref.Inc().Get())
	assert.Equal(t, uint8(0), ref.Inc().Get())
	assert.Equal(t, uint8(255), ref.Dec().Get())

	assert.Equal(t, uint8(255), ref.PostInc())
	assert.Equal(t, uint8(0), ref.Get())

	assert.Equal(t, uint8(0), ref.PostDec())
	assert.Equal(t, uint8(255), ref.Get())
}

func Test_Ref_Aliasing(t *testing.T) {
	s := NewStore(4)
	a := NewRef(s, 2)
	b := NewRef(s, 2)
	c := NewRef(s, 3)

	a.Set(9)
	assert.Equal(t, uint8(9), b.Get())

	c.Assign(b)
	assert.Equal(t, uint8(9), c.Get())
	b.Set(1)
	assert.Equal(t, uint8(9), c.Get())
}

func Test_Op_String(t *testing.T) {
	assert.Equal(t, "+=", OpAdd.String())
	assert.Equal(t, ">>=", OpShr.String())
	assert.Equal(t, "Op(0)", Op(0).String())
	assert.Panics(t, func() { NewRef(NewStore(1), 0).Apply(Op(0), 1) })
}
