package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}

// Style returns the tcell style used to draw the item's tile.
// Items with missing or malformed colours fall back to the default palette.
func (i *ItemDef) Style() tcell.Style {
	bg, err := ParseHexColor(i.Color)
	if err != nil {
		bg = tcell.ColorLightBlue
	}
	fg, err := ParseHexColor(i.TextColor)
	if err != nil {
		fg = tcell.ColorNavy
	}
	return tcell.StyleDefault.Background(bg).Foreground(fg).Bold(true)
}
