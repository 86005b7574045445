package picross

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-picross/internal/core"
	"github.com/vovakirdan/tui-picross/internal/mode"
)

const (
	cellW     = 3 // Screen columns per grid cell
	hudLines  = 5
	minScreen = 40
)

// Glyphs
const (
	glyphMarked  = '█'
	glyphEmpty   = '·'
	glyphDark    = '░'
	glyphWrong   = 'x'
	glyphMissed  = '▒'
	glyphWeb     = '#'
	glyphHeart   = '♥'
	glyphNoHeart = '♡'
)

// rowHintText returns the clue text of row y.
func (g *Game) rowHintText(y int) string {
	return joinInts(g.grid.Hints().Row(y))
}

func (g *Game) rowHintWidth() int {
	w := 0
	for y := 0; y < g.grid.Size(); y++ {
		w = max(w, len(g.rowHintText(y)))
	}
	return w
}

// layoutSize returns the screen size the puzzle needs.
func (g *Game) layoutSize() (w, h int) {
	n := g.grid.Size()
	w = max(g.rowHintWidth()+1+n*cellW, minScreen)
	h = 2 + g.grid.Hints().MaxColHeight() + n + 1 + hudLines
	return w, h
}

// Render draws the board, the clues and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		dst.DrawTextCentered(dst.Height()/2-1, "Cannot start this mode", core.ColorBrightRed)
		dst.DrawTextCentered(dst.Height()/2, g.err.Error(), core.ColorRed)
		dst.DrawTextCentered(dst.Height()/2+2, "Press Q to quit", core.ColorGray)
		return
	}
	if g.tooSmall {
		w, h := g.layoutSize()
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("need %dx%d", w, h), core.ColorGray)
		return
	}

	g.drawHeader(dst)

	n := g.grid.Size()
	hints := g.grid.Hints()
	colH := hints.MaxColHeight()
	left := g.rowHintWidth() + 1
	top := 2 + colH

	g.drawColHints(dst, left, 2, colH)
	g.drawRowHints(dst, left-1, top)
	g.drawCells(dst, left, top)
	g.drawHUD(dst, top+n+1)

	if g.jumpscareLeft > 0 {
		drawJumpscare(dst, left+n*cellW/2, top+n/2)
	}
	g.drawOverlay(dst, top+n/2)
}

func (g *Game) drawHeader(dst *core.Screen) {
	title := "PICROSS"
	if g.setup.Level != nil {
		title += " - " + g.setup.Level.Name
	}
	color := core.ColorBrightWhite
	if g.hurtLeft > 0 {
		color = core.ColorBrightRed
	}
	dst.DrawTextColored(0, 0, title, color)

	name := g.chain.String()
	dst.DrawTextColored(dst.Width()-len(name), 0, name, core.ColorCyan)
}

func (g *Game) drawColHints(dst *core.Screen, left, top, height int) {
	for x := 0; x < g.grid.Size(); x++ {
		col := g.grid.Hints().Col(x)
		webbed := g.chain.Webbed(mode.HintLine{Axis: mode.AxisCol, Index: x})
		highlight := x == g.cursor.X
		for i, v := range col {
			y := top + height - len(col) + i
			text := fmt.Sprintf("%2d", v)
			color := hintColor(highlight)
			if webbed {
				text, color = "##", core.ColorDarkGray
			}
			dst.DrawTextColored(left+x*cellW, y, text, color)
		}
	}
}

func (g *Game) drawRowHints(dst *core.Screen, right, top int) {
	for y := 0; y < g.grid.Size(); y++ {
		text := g.rowHintText(y)
		color := hintColor(y == g.cursor.Y)
		if g.chain.Webbed(mode.HintLine{Axis: mode.AxisRow, Index: y}) {
			text = strings.Repeat(string(glyphWeb), len(text))
			color = core.ColorDarkGray
		}
		dst.DrawTextColored(right-len(text), top+y, text, color)
	}
}

func hintColor(highlight bool) core.Color {
	if highlight {
		return core.ColorBrightYellow
	}
	return core.ColorWhite
}

func (g *Game) drawCells(dst *core.Screen, left, top int) {
	torch, hasTorch := mode.Find[*mode.TorchMode](g.chain)
	disco, hasDisco := mode.Find[*mode.DiscoFeverMode](g.chain)

	n := g.grid.Size()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			b := g.grid.Block(x, y)
			r, c := glyphEmpty, core.ColorGray
			if b.IsCompleted() {
				r, c = glyphMarked, core.ColorBrightWhite
				if hasDisco {
					c = core.DiscoPalette[(disco.Palette()+x+y)%len(core.DiscoPalette)]
				}
			}

			switch {
			case g.over():
				r, c = revealGlyph(b.IsCorrect(), b.IsCompleted())
			case hasTorch && !torch.Visible(g.cursor.X, g.cursor.Y, x, y):
				r, c = glyphDark, core.ColorDarkGray
			}

			sx := left + x*cellW
			if x == g.cursor.X && y == g.cursor.Y && !g.over() {
				dst.SetColored(sx, top+y, '[', core.ColorBrightYellow)
				dst.SetColored(sx+2, top+y, ']', core.ColorBrightYellow)
			}
			dst.SetColored(sx+1, top+y, r, c)
		}
	}
}

// revealGlyph shows the solution once the game is over.
func revealGlyph(correct, completed bool) (rune, core.Color) {
	switch {
	case correct && completed:
		return glyphMarked, core.ColorBrightGreen
	case completed:
		return glyphWrong, core.ColorBrightRed
	case correct:
		return glyphMissed, core.ColorGray
	default:
		return glyphEmpty, core.ColorDarkGray
	}
}

func (g *Game) drawHUD(dst *core.Screen, y int) {
	x := 0
	if g.chain.ShouldDisplayScore() {
		s := "Score: " + strconv.Itoa(g.chain.Score())
		dst.DrawTextColored(x, y, s, core.ColorBrightYellow)
		x += len(s) + 3
	}
	if cur, total := g.chain.Health(); total > 0 {
		dst.DrawTextColored(x, y, hearts(cur, total), core.ColorBrightRed)
	}

	dst.DrawText(0, y+1, g.statusLine())
	if line := g.hazardLine(); line != "" {
		dst.DrawTextColored(0, y+2, line, core.ColorMagenta)
	}
	dst.DrawTextColored(0, y+hudLines-1, g.helpLine(), core.ColorDarkGray)
}

func hearts(cur, total int) string {
	if total > 10 {
		return fmt.Sprintf("%c %d/%d", glyphHeart, cur, total)
	}
	return strings.Repeat(string(glyphHeart), cur) + strings.Repeat(string(glyphNoHeart), total-cur)
}

// statusLine reports timers of the time, alchemy and disco layers.
func (g *Game) statusLine() string {
	var parts []string
	if t, ok := mode.Find[*mode.TimeMode](g.chain); ok {
		parts = append(parts, fmt.Sprintf("decay in %.0fs", t.UntilDecay()))
	}
	if a, ok := mode.Find[*mode.AlchemyMode](g.chain); ok {
		if p, ok := a.Potion(); ok {
			parts = append(parts, fmt.Sprintf("%s potion %.0fs [E]", p.Kind, p.TTL))
		}
		if f := a.FortuneLeft(); f > 0 {
			parts = append(parts, fmt.Sprintf("fortune %.0fs", f))
		}
	}
	if d, ok := mode.Find[*mode.DiscoFeverMode](g.chain); ok && d.InFever() {
		parts = append(parts, "FEVER!")
	}
	return strings.Join(parts, "  ")
}

// hazardLine reports spiders and the enderman.
func (g *Game) hazardLine() string {
	var parts []string
	if s, ok := mode.Find[*mode.SpidersMode](g.chain); ok {
		for _, sp := range s.Spiders() {
			axis := "row"
			if sp.Line.Axis == mode.AxisCol {
				axis = "col"
			}
			parts = append(parts, fmt.Sprintf("spider on %s %d (%.0fs)", axis, sp.Line.Index+1, sp.BiteIn))
		}
		if len(parts) > 0 {
			parts[len(parts)-1] += " [X]"
		}
	}
	if e, ok := mode.Find[*mode.EndermanMode](g.chain); ok && e.Present() {
		parts = append(parts, "an enderman is watching...")
	}
	return strings.Join(parts, "  ")
}

func (g *Game) helpLine() string {
	if g.over() {
		return "r restart  q quit"
	}
	return "arrows move  space mark  e drink  x squash  p pause  q quit"
}

func (g *Game) drawOverlay(dst *core.Screen, y int) {
	switch {
	case g.won:
		dst.DrawTextCentered(y, " SOLVED! ", core.ColorBrightGreen)
	case g.lost:
		dst.DrawTextCentered(y, " GAME OVER ", core.ColorBrightRed)
	case g.paused:
		dst.DrawTextCentered(y, " PAUSED ", core.ColorBrightYellow)
	}
}

func drawJumpscare(dst *core.Screen, cx, cy int) {
	face := []string{
		"┌────────┐",
		"│ ▀▄  ▄▀ │",
		"│        │",
		"└────────┘",
	}
	for i, line := range face {
		dst.DrawTextColored(cx-5, cy-2+i, line, core.ColorBrightMagenta)
	}
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
