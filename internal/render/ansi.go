package render

import (
	"strconv"
	"strings"
)

const (
	esc   = "\x1b"
	csi   = esc + "["
	Reset = csi + "0m"
)

// ClearScreen clears the entire screen.
func ClearScreen() string {
	return csi + "2J" + csi + "H"
}

// HideCursor hides the terminal cursor.
func HideCursor() string {
	return csi + "?25l"
}

// ShowCursor shows the terminal cursor.
func ShowCursor() string {
	return csi + "?25h"
}

// EnableAltScreen switches to the alternate screen buffer.
func EnableAltScreen() string {
	return csi + "?1049h"
}

// DisableAltScreen switches back from the alternate screen buffer.
func DisableAltScreen() string {
	return csi + "?1049l"
}

// Cell is one terminal cell with full RGB color.
type Cell struct {
	Ch            rune
	FgR, FgG, FgB uint8
	BgR, BgG, BgB uint8
}

// writeCellSGR writes a cell's combined SGR + character. A full reset per
// cell avoids state leakage between cells.
func writeCellSGR(sb *strings.Builder, c Cell) {
	sb.WriteString("\x1b[0;38;2;")
	sb.WriteString(strconv.Itoa(int(c.FgR)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.FgG)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.FgB)))
	sb.WriteString(";48;2;")
	sb.WriteString(strconv.Itoa(int(c.BgR)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.BgG)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.BgB)))
	sb.WriteByte('m')
	sb.WriteRune(c.Ch)
}
