package canvas

import (
	"fmt"
	"strings"
)

// Anchor selects where the old content sits inside a resized grid.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorTop
	AnchorTopRight
	AnchorLeft
	AnchorCenter
	AnchorRight
	AnchorBottomLeft
	AnchorBottom
	AnchorBottomRight
)

var anchorNames = [...]string{
	AnchorTopLeft:     "top-left",
	AnchorTop:         "top",
	AnchorTopRight:    "top-right",
	AnchorLeft:        "left",
	AnchorCenter:      "center",
	AnchorRight:       "right",
	AnchorBottomLeft:  "bottom-left",
	AnchorBottom:      "bottom",
	AnchorBottomRight: "bottom-right",
}

func (a Anchor) String() string {
	if a < 0 || int(a) >= len(anchorNames) {
		return fmt.Sprintf("Anchor(%d)", int(a))
	}
	return anchorNames[a]
}

// Next cycles through the anchors in reading order.
func (a Anchor) Next() Anchor {
	return (a + 1) % Anchor(len(anchorNames))
}

// ParseAnchor accepts the names produced by Anchor.String, case-insensitively.
// Underscores and spaces are treated as dashes.
func ParseAnchor(s string) (Anchor, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.NewReplacer("_", "-", " ", "-").Replace(name)
	if name == "centre" || name == "middle" {
		name = "center"
	}
	for i, n := range anchorNames {
		if n == name {
			return Anchor(i), nil
		}
	}
	return AnchorTopLeft, fmt.Errorf("unknown anchor %q", s)
}

type alignment int

const (
	alignLow alignment = iota
	alignMid
	alignHigh
)

// axes splits the anchor into its horizontal and vertical alignment.
func (a Anchor) axes() (x, y alignment) {
	return alignment(int(a) % 3), alignment(int(a) / 3)
}

// ResizePlan is the block copy that carries content into a resized grid.
// The copied block is min(old, new) along each axis.
type ResizePlan struct {
	CopyX, CopyY   int // top-left of the block in the old grid
	PasteX, PasteY int // top-left of the block in the new grid
}

// ResolveResize computes how the content of an oldW x oldH grid is placed in a
// newW x newH grid for the given anchor. Shrinking crops the old grid, growing
// pads the new one; an axis never does both.
func ResolveResize(oldW, oldH, newW, newH int, anchor Anchor) ResizePlan {
	ax, ay := anchor.axes()
	var p ResizePlan
	p.CopyX, p.PasteX = resolveAxis(newW, oldW, ax)
	p.CopyY, p.PasteY = resolveAxis(newH, oldH, ay)
	return p
}

func resolveAxis(target, origin int, align alignment) (copyStart, paste int) {
	switch align {
	case alignHigh:
		if target < origin {
			return origin - target, 0
		}
		return 0, target - origin
	case alignMid:
		if target < origin {
			return (origin - target) / 2, 0
		}
		return 0, (target - origin) / 2
	default:
		return 0, 0
	}
}
