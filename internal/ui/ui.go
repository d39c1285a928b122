package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/nevisdale/eepromfake/eeprom"
)

// Arrows - move the cursor
// = / - : increment / decrement the cell
// Z - write 0, F - update to 0xFF
// PageUp / PageDown - scroll one page

type UI struct {
	eeprom *eeprom.EEPROM

	cursor int
	page   int
}

func New(e *eeprom.EEPROM) *UI {
	return &UI{eeprom: e}
}

func (ui *UI) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		ui.move(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		ui.move(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		ui.move(gridColumns)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		ui.move(-gridColumns)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		ui.move(gridColumns * gridRows)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		ui.move(-gridColumns * gridRows)
	}

	ref := ui.eeprom.At(ui.cursor)
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		ref.Inc()
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		ref.Dec()
	case inpututil.IsKeyJustPressed(ebiten.KeyZ):
		ref.Set(0)
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		ref.Update(0xff)
	}
	return nil
}

// move keeps the cursor inside [0, Length()) and the page on the cursor
func (ui *UI) move(delta int) {
	ui.cursor = min(max(ui.cursor+delta, 0), ui.eeprom.Length()-1)
	ui.page = ui.cursor / (gridColumns * gridRows)
}

func (ui *UI) Draw(screen *ebiten.Image) {
	first := ui.page * gridColumns * gridRows
	last := min(first+gridColumns*gridRows, ui.eeprom.Length())

	for i := first; i < last; i++ {
		v := ui.eeprom.Read(i)
		x := float32((i-first)%gridColumns) * cellSize
		y := float32((i-first)/gridColumns) * cellSize
		vector.DrawFilledRect(screen, x+1, y+1, cellSize-2, cellSize-2, color.RGBA{v, v, v, 255}, false)
		if i == ui.cursor {
			vector.StrokeRect(screen, x, y, cellSize, cellSize, 2, color.RGBA{255, 64, 64, 255}, false)
		}
	}

	store := ui.eeprom.Store()
	var infoStr strings.Builder
	fmt.Fprintf(&infoStr, " FPS: %0.0f\n", ebiten.ActualFPS())
	fmt.Fprintf(&infoStr, " LENGTH: %d\n", ui.eeprom.Length())
	fmt.Fprintf(&infoStr, " WRITES: %d\n", store.Writes())
	fmt.Fprintf(&infoStr, " PAGE: %d\n", ui.page)
	fmt.Fprintf(&infoStr, " CELL: %s [%03d]\n", ui.eeprom.At(ui.cursor), ui.eeprom.Read(ui.cursor))
	fmt.Fprintf(&infoStr, " TEXT: %q\n", ui.eeprom.GetString(ui.cursor))

	debugScreenOffsetX := float32(gridColumns * cellSize)
	vector.DrawFilledRect(screen, debugScreenOffsetX, 0, debugScreenWidth, screenHeight, color.RGBA{50, 50, 50, 255}, false)
	ebitenutil.DebugPrintAt(screen, infoStr.String(), int(debugScreenOffsetX), 0)
}

const (
	gridColumns = 16
	gridRows    = 16
	cellSize    = 24

	debugScreenWidth = 286
	screenHeight     = gridRows * cellSize
)

func (ui *UI) Layout(_, _ int) (int, int) {
	return gridColumns*cellSize + debugScreenWidth, screenHeight
}

func RunUI(ui *UI) error {
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize((gridColumns*cellSize+debugScreenWidth)*2, screenHeight*2)
	ebiten.SetWindowTitle("eepromfake")
	ebiten.SetTPS(60)
	return ebiten.RunGame(ui)
}
