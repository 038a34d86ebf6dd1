package core

// Color represents a foreground color for a screen cell.
// Values are mapped to ANSI 256-color codes by the platform renderer.
type Color uint8

// Palette used by the swipes renderer.
const (
	ColorDefault Color = iota
	ColorDim           // unvisited tree nodes, guide lines
	ColorNode          // the number currently in play
	ColorPath          // nodes already passed on the way down
	ColorTarget        // the value being searched for
	ColorCorrect       // correct swipes, level complete
	ColorWrong         // wrong swipes, timeouts
	ColorAccent        // HUD labels, countdown digits
	ColorWarning       // timer bar once it runs low
)

// String returns the palette name of the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorDim:
		return "dim"
	case ColorNode:
		return "node"
	case ColorPath:
		return "path"
	case ColorTarget:
		return "target"
	case ColorCorrect:
		return "correct"
	case ColorWrong:
		return "wrong"
	case ColorAccent:
		return "accent"
	case ColorWarning:
		return "warning"
	default:
		return "unknown"
	}
}
