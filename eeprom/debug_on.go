//go:build eepromdebug

package eeprom

import "fmt"

// checkRange is only compiled into builds tagged eepromdebug.
func checkRange(s *Store, index, size int) {
	if index < 0 || size < 0 || index+size > len(s.data) {
		panic(fmt.Sprintf("eeprom: access out of range: index %d size %d with len %d", index, size, len(s.data)))
	}
}
