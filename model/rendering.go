package model

import (
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

const (
	gridPosLive = "▣"
	gridPosDead = "▢"
)

// Renderer draws generations as text, one glyph per cell of the bounding box.
// Rows run north-up: the first line is the largest y.
type Renderer struct {
	live string
	dead string
}

// NewRenderer builds a renderer from the configured glyphs, colouring live
// cells when config.Color is set
func NewRenderer(config utils.Config) *Renderer {
	live, dead := config.LiveGlyph, config.DeadGlyph
	if live == "" {
		live = gridPosLive
	}
	if dead == "" {
		dead = gridPosDead
	}
	au := aurora.NewAurora(config.Color)
	return &Renderer{
		live: au.Green(live).String(),
		dead: dead,
	}
}

// Render returns the grid for g, a newline after each row
func (r *Renderer) Render(g Generation) string {
	box := CornersOf(g)

	var sb strings.Builder
	sb.Grow(box.Area()*len(r.live) + box.Height())
	for y := box.TopRight.Y; y >= box.BottomLeft.Y; y-- {
		for x := box.BottomLeft.X; x <= box.TopRight.X; x++ {
			if Contains(g, Cell{X: x, Y: y}) {
				sb.WriteString(r.live)
			} else {
				sb.WriteString(r.dead)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Display writes the grid for g to w
func (r *Renderer) Display(w io.Writer, g Generation) error {
	if _, err := io.WriteString(w, r.Render(g)); err != nil {
		return errors.Wrap(err, "[Display] failed to write grid")
	}
	return nil
}

// PrintCells renders g with the default glyphs and no colour
func PrintCells(g Generation) string {
	return (&Renderer{live: gridPosLive, dead: gridPosDead}).Render(g)
}
