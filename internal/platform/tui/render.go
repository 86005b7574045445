package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-picross/internal/core"
)

// ansiColors maps core.Color to terminal color codes.
var ansiColors = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorDarkGray:      "238",
}

// Painter turns Screen buffers into styled strings for one output. SSH
// sessions get their own so the color profile matches the client terminal.
type Painter struct {
	plain  lipgloss.Style
	styles map[core.Color]lipgloss.Style
}

// NewPainter creates a painter for r; nil uses the default renderer.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := &Painter{
		plain:  r.NewStyle(),
		styles: make(map[core.Color]lipgloss.Style, len(ansiColors)),
	}
	for c, code := range ansiColors {
		p.styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return p
}

func (p *Painter) style(c core.Color) lipgloss.Style {
	if st, ok := p.styles[c]; ok {
		return st
	}
	return p.plain
}

// Paint renders s row by row, styling each run of same-colored cells once.
func (p *Painter) Paint(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		run.Reset()
		runColor := core.ColorDefault
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if x > 0 && cell.Color != runColor {
				sb.WriteString(p.style(runColor).Render(run.String()))
				run.Reset()
			}
			runColor = cell.Color
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			sb.WriteString(p.style(runColor).Render(run.String()))
		}
	}
	return sb.String()
}

var defaultPainter = NewPainter(nil)

// RenderScreen paints s with the default renderer.
func RenderScreen(s *core.Screen) string {
	return defaultPainter.Paint(s)
}
