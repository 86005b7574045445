package mode

import (
	"github.com/vovakirdan/tui-picross/internal/assets"
	"github.com/vovakirdan/tui-picross/internal/config"
)

// TorchMode limits what the player can see to a circle around the cursor.
// It changes no rules; renderers query Visible.
type TorchMode struct {
	radius int
}

// NewTorchMode creates a torch modifier.
func NewTorchMode(cfg config.TorchConfig, cat assets.Catalog) (*TorchMode, error) {
	if err := assets.Require(cat, "Torch", assets.Sprite("torch_mask")); err != nil {
		return nil, err
	}
	return &TorchMode{radius: orDefaultInt(cfg.Radius, 2)}, nil
}

func (*TorchMode) Name() string           { return "Torch" }
func (*TorchMode) Update(*State, float64) {}

// Radius returns the light radius in cells.
func (m *TorchMode) Radius() int { return m.radius }

// Visible reports whether cell (x, y) is lit by a torch held at (cx, cy).
func (m *TorchMode) Visible(cx, cy, x, y int) bool {
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= m.radius*m.radius
}
