package main

import (
	"log"
	"os"

	"github.com/nevisdale/eepromfake/eeprom"
	"github.com/nevisdale/eepromfake/internal/cli"
	"github.com/nevisdale/eepromfake/internal/ui"
)

func main() {
	viewer := func(e *eeprom.EEPROM) error {
		return ui.RunUI(ui.New(e))
	}

	if err := cli.NewRootCommand(viewer).Execute(); err != nil {
		log.Printf("eepromfake: %s\n", err.Error())
		os.Exit(1)
	}
}
