package eeprom

import (
	"log"
	"strconv"
)

// DefaultSize is the capacity of the process-wide EEPROM unless overridden at link time:
//
//	go build -ldflags "-X github.com/nevisdale/eepromfake/eeprom.configuredSize=4096"
const DefaultSize = 1024

var configuredSize string

var std = New(NewStore(parseSize(configuredSize)))

// Default returns the process-wide EEPROM. Its capacity is fixed for the process lifetime.
func Default() *EEPROM {
	return std
}

func parseSize(s string) int {
	if s == "" {
		return DefaultSize
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		log.Fatalf("eeprom: invalid configured size %q", s)
	}
	return n
}
