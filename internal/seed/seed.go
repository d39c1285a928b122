// Package seed preloads an EEPROM from a YAML description, so a host-side run
// can start from the contents a device would have after a previous boot.
package seed

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nevisdale/eepromfake/eeprom"
)

// File is a seed document:
//
//	cells:
//	  - index: 0
//	    value: 10
//	strings:
//	  - index: 16
//	    text: hello
type File struct {
	Cells   []Cell `yaml:"cells"`
	Strings []Text `yaml:"strings"`
}

type Cell struct {
	Index int   `yaml:"index"`
	Value uint8 `yaml:"value"`
	// Update skips the write when the cell already holds Value.
	Update bool `yaml:"update"`
}

type Text struct {
	Index int    `yaml:"index"`
	Text  string `yaml:"text"`
}

// Load reads and parses a seed file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a seed document, rejecting unknown fields.
func Parse(data []byte) (*File, error) {
	var f File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("couldn't parse seed: %w", err)
	}
	return &f, nil
}

// Apply validates every entry against the EEPROM length and then writes them,
// cells first. Nothing is written if any entry is out of range.
func (f *File) Apply(e *eeprom.EEPROM) error {
	if err := f.validate(e.Length()); err != nil {
		return err
	}

	for _, c := range f.Cells {
		if c.Update {
			e.Update(c.Index, c.Value)
			continue
		}
		e.Write(c.Index, c.Value)
	}
	for _, s := range f.Strings {
		e.PutString(s.Index, s.Text)
	}
	return nil
}

func (f *File) validate(length int) error {
	for i, c := range f.Cells {
		if c.Index < 0 || c.Index >= length {
			return fmt.Errorf("cells[%d]: index %d out of range [0, %d)", i, c.Index, length)
		}
	}
	for i, s := range f.Strings {
		// the terminator needs a cell too
		if s.Index < 0 || s.Index+len(s.Text)+1 > length {
			return fmt.Errorf("strings[%d]: %q at %d does not fit in %d cells", i, s.Text, s.Index, length)
		}
	}
	return nil
}
