package layout

import (
	"github.com/gravitas-games/eisenhex/internal/config"
	"github.com/gravitas-games/eisenhex/pkg/hex"
)

// Layout maps hexes onto a pixel canvas whose y axis grows downward.
type Layout struct {
	Size    float64 // pixels per unit of lattice distance
	OriginX float64
	OriginY float64
}

// New returns the layout described by cfg.
func New(cfg config.LayoutConfig) Layout {
	return Layout{Size: cfg.Size, OriginX: cfg.OriginX, OriginY: cfg.OriginY}
}

// ToPixel converts the center of h to pixel coordinates.
// Adjacent centers end up Size*√3 pixels apart.
func (l Layout) ToPixel(h hex.Hex) (x, y float64) {
	ux, uy := h.Coordinates()
	x = l.OriginX + l.Size*ux
	y = l.OriginY - l.Size*uy
	return
}
