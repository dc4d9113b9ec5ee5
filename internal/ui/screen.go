// Package ui provides terminal rendering using tcell.
package ui

import "github.com/gdamore/tcell/v2"

// Screen wraps tcell.Screen with a simplified interface.
type Screen struct {
	screen tcell.Screen
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenFrom(s)
}

// NewScreenFrom initializes an existing tcell screen, such as a simulation
// screen in tests.
func NewScreenFrom(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.EnableMouse()
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close finalizes the screen and restores terminal state.
// Any goroutine started by Events exits once the screen is closed.
func (s *Screen) Close() {
	s.screen.Fini()
}

// Events starts a goroutine that forwards terminal events to the returned
// channel so a fixed-rate loop can drain them without blocking. The channel
// is closed when the screen is closed or quit is closed.
func (s *Screen) Events(quit <-chan struct{}) <-chan tcell.Event {
	ch := make(chan tcell.Event, 64)
	go func() {
		defer close(ch)
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case ch <- ev:
			case <-quit:
				return
			}
		}
	}()
	return ch
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent sets a single cell's content at the given position.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// DrawText writes a single line of text starting at x, y.
func (s *Screen) DrawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		s.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

// Fill paints a rectangle with spaces in the given style.
func (s *Screen) Fill(x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}
