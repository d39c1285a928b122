package eeprom

// ReadWriter is the single-cell access a Ref and a Ptr resolve through.
type ReadWriter interface {
	Read8(index int) uint8
	Write8(index int, data uint8)
}

// Store is the backing array standing in for the EEPROM cells.
// It is zero-filled on creation and does no bounds checking:
// an index outside [0, Size()) panics the way a slice index does.
type Store struct {
	data   []uint8
	writes uint64
}

func NewStore(size int) *Store {
	return &Store{data: make([]uint8, size)}
}

func (s *Store) Read8(index int) uint8 {
	return s.readByte(&index)
}

func (s *Store) Write8(index int, data uint8) {
	s.writeByte(&index, data)
}

// a nil index addresses cell 0, same as eeprom_read_byte with a null address.
// Read8 and Write8 always pass a non-nil index; nil only reaches here from inside the package.
func (s *Store) readByte(index *int) uint8 {
	i := 0
	if index != nil {
		i = *index
	}
	checkRange(s, i, 1)
	return s.data[i]
}

func (s *Store) writeByte(index *int, data uint8) {
	i := 0
	if index != nil {
		i = *index
	}
	checkRange(s, i, 1)
	s.data[i] = data
	s.writes++
}

// ReadBlock copies size cells starting at index into dst.
func (s *Store) ReadBlock(dst []uint8, index, size int) {
	checkRange(s, index, size)
	copy(dst[:size], s.data[index:index+size])
}

// WriteBlock copies size bytes of src into the cells starting at index.
func (s *Store) WriteBlock(src []uint8, index, size int) {
	checkRange(s, index, size)
	copy(s.data[index:index+size], src[:size])
	s.writes += uint64(size)
}

func (s *Store) Size() int {
	return len(s.data)
}

// Writes returns the number of cell stores performed since creation or the last Clear.
func (s *Store) Writes() uint64 {
	return s.writes
}

// Clear zero-fills every cell and resets the write counter.
func (s *Store) Clear() {
	for i := range s.data {
		s.data[i] = 0
	}
	s.writes = 0
}
