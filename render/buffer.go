package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/happyletty/particle/core"
)

// cell is one compositor slot; depth gates overwrites so near
// particles win without a global sort
type cell struct {
	ch    rune
	fg    core.RGB
	depth float64
	set   bool
}

// Buffer composites one frame before flushing to the screen
type Buffer struct {
	cells  []cell
	width  int
	height int
}

func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		cells:  make([]cell, width*height),
		width:  width,
		height: height,
	}
}

// Resize reallocates only when capacity is insufficient
func (b *Buffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = cell{}
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set places a glyph if the cell is empty or the new depth is nearer
func (b *Buffer) Set(x, y int, ch rune, fg core.RGB, depth float64) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	if c.set && c.depth <= depth {
		return
	}
	*c = cell{ch: ch, fg: fg, depth: depth, set: true}
}

// Add accumulates light onto a cell without claiming its glyph,
// used by glow overlays and meteor trails
func (b *Buffer) Add(x, y int, fg core.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	if !c.set {
		*c = cell{ch: '░', fg: fg, depth: 1e9, set: true}
		return
	}
	c.fg = c.fg.Add(fg)
}

// Text writes a string row without depth testing (HUD layer)
func (b *Buffer) Text(x, y int, s string, fg core.RGB) {
	for _, r := range s {
		if b.inBounds(x, y) {
			b.cells[y*b.width+x] = cell{ch: r, fg: fg, set: true}
		}
		x++
	}
}

// Flush pushes the composed frame to the terminal
func (b *Buffer) Flush(screen tcell.Screen) {
	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := &b.cells[y*b.width+x]
			if !c.set {
				screen.SetContent(x, y, ' ', nil, style)
				continue
			}
			fg := tcell.NewRGBColor(int32(c.fg.R), int32(c.fg.G), int32(c.fg.B))
			screen.SetContent(x, y, c.ch, nil, style.Foreground(fg))
		}
	}
	screen.Show()
}
