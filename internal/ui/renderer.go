package ui

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/farmsim/internal/entity"
	"github.com/samdwyer/farmsim/internal/farm"
	"github.com/samdwyer/farmsim/internal/world"
)

const (
	// CellWidth is how many terminal columns one field cell occupies.
	CellWidth = 3

	sidebarX   = world.Size*CellWidth + 2
	statusY    = world.Size + 1
	panelWidth = 58
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	theme  *Theme
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, theme *Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// ScreenToGrid maps a terminal position to the field cell drawn there.
func ScreenToGrid(x, y int) (world.Point, bool) {
	if x < 0 || y < 0 {
		return world.Point{}, false
	}
	p := world.Pt(x/CellWidth, y)
	return p, p.InBounds()
}

// Render draws the field, actors, sidebar, status line and any open menu.
func (r *Renderer) Render(s *farm.State, status string) {
	r.screen.Clear()

	for y := 0; y < world.Size; y++ {
		for x := 0; x < world.Size; x++ {
			v := r.theme.Cell(s.Field.Cells[y][x])
			r.drawCell(world.Pt(x, y), v.Text, tcell.StyleDefault.Foreground(v.Fg).Background(v.Bg))
		}
	}

	if s.HasHelper() {
		r.drawActor(s, s.Helper, r.theme.Palette.Color("helper"))
	}
	r.drawActor(s, s.Player, r.theme.Palette.Color("player"))

	for i, line := range r.theme.Sidebar(s) {
		r.screen.DrawText(sidebarX, i, line.Text, tcell.StyleDefault.Foreground(line.Color))
	}

	if status != "" {
		r.screen.DrawText(0, statusY, status, tcell.StyleDefault.Foreground(r.theme.Palette.Color("text")))
	}

	if panel, ok := r.theme.Panel(s); ok {
		r.drawPanel(panel)
	}

	r.screen.Show()
}

// drawCell writes text centred in a field cell.
func (r *Renderer) drawCell(p world.Point, text string, style tcell.Style) {
	x0 := p.X * CellWidth
	r.screen.Fill(x0, p.Y, CellWidth, 1, style)
	n := utf8.RuneCountInString(text)
	if n > CellWidth {
		n = CellWidth
	}
	r.screen.DrawText(x0+(CellWidth-n)/2, p.Y, text, style)
}

// drawActor marks an actor's cell, keeping the cell's background colour.
func (r *Renderer) drawActor(s *farm.State, a *entity.Actor, fg tcell.Color) {
	bg := r.theme.Cell(s.Field.At(a.Pos)).Bg
	style := tcell.StyleDefault.Foreground(fg).Background(bg).Bold(true)
	r.drawCell(a.Pos, "["+string(a.Symbol)+"]", style)
}

// drawPanel draws a bordered menu box centred over the field.
func (r *Renderer) drawPanel(p Panel) {
	height := len(p.Lines) + 6
	x0 := max(0, (world.Size*CellWidth-panelWidth)/2)
	y0 := max(0, (world.Size-height)/2)

	bg := tcell.StyleDefault.Background(r.theme.Palette.Color("panel"))
	border := bg.Foreground(r.theme.Palette.Color("gold"))
	r.screen.Fill(x0, y0, panelWidth, height, bg)

	for x := x0; x < x0+panelWidth; x++ {
		r.screen.SetContent(x, y0, tcell.RuneHLine, border)
		r.screen.SetContent(x, y0+height-1, tcell.RuneHLine, border)
	}
	for y := y0; y < y0+height; y++ {
		r.screen.SetContent(x0, y, tcell.RuneVLine, border)
		r.screen.SetContent(x0+panelWidth-1, y, tcell.RuneVLine, border)
	}
	r.screen.SetContent(x0, y0, tcell.RuneULCorner, border)
	r.screen.SetContent(x0+panelWidth-1, y0, tcell.RuneURCorner, border)
	r.screen.SetContent(x0, y0+height-1, tcell.RuneLLCorner, border)
	r.screen.SetContent(x0+panelWidth-1, y0+height-1, tcell.RuneLRCorner, border)

	r.drawCentered(x0, y0+1, p.Title, border.Bold(true))
	for i, line := range p.Lines {
		r.screen.DrawText(x0+3, y0+3+i, line.Text, bg.Foreground(line.Color))
	}
	if p.Footer != "" {
		r.drawCentered(x0, y0+height-2, p.Footer, bg.Foreground(r.theme.Palette.Color("text")))
	}
}

func (r *Renderer) drawCentered(x0, y int, text string, style tcell.Style) {
	n := utf8.RuneCountInString(text)
	r.screen.DrawText(x0+max(1, (panelWidth-n)/2), y, text, style)
}
