package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/snake"
)

const hudHeight = 1

// playfield maps world positions onto screen cells. One tile is one row
// high and cw columns wide.
type playfield struct {
	arena  core.Arena
	ox, oy int
	cw     int
}

func newPlayfield(arena core.Arena, screenW int) playfield {
	// Edges are inclusive, so a W-tile arena spans W+1 tile centres.
	cols := arena.Width + 1
	cw := 2
	if cols*cw+2 > screenW {
		cw = 1
	}
	ox := (screenW - (cols*cw + 2)) / 2
	if ox < 0 {
		ox = 0
	}
	return playfield{arena: arena, ox: ox, oy: hudHeight, cw: cw}
}

func (p playfield) bounds() core.Rect {
	return core.NewRect(p.ox, p.oy, (p.arena.Width+1)*p.cw+2, p.arena.Height+1+2)
}

func (p playfield) cell(pos core.Vec2) (x, y int) {
	tx, ty := p.arena.ToTile(pos)
	x = p.ox + 1 + (tx+p.arena.Width/2)*p.cw
	y = p.oy + 1 + (p.arena.Height/2 - ty)
	return x, y
}

func (p playfield) set(dst *core.Screen, pos core.Vec2, r rune, c core.Color) {
	x, y := p.cell(pos)
	b := p.bounds()
	if x <= b.X || x >= b.Right()-1 || y <= b.Y || y >= b.Bottom()-1 {
		return
	}
	dst.SetColored(x, y, r, c)
}

// fits reports whether the whole arena is visible on dst.
func (p playfield) fits(dst *core.Screen) bool {
	b := p.bounds()
	return b.Right() <= dst.Width() && b.Bottom() <= dst.Height()
}

func headGlyph(d snake.Direction) rune {
	switch d {
	case snake.DirUp:
		return '^'
	case snake.DirDown:
		return 'v'
	case snake.DirLeft:
		return '<'
	default:
		return '>'
	}
}

// DrawRound renders a round snapshot with its HUD and overlays.
func DrawRound(dst *core.Screen, snap snake.Snapshot, arena core.Arena, best int) {
	dst.Clear()
	pf := newPlayfield(arena, dst.Width())

	if !pf.fits(dst) {
		b := pf.bounds()
		dst.DrawTextCentered(dst.Height()/2-1, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("need %dx%d", b.Right(), b.Bottom()))
		return
	}

	drawHUD(dst, snap, best)
	dst.DrawBox(pf.bounds(), core.ColorGray)

	pf.set(dst, snap.Apple, '●', core.ColorRed)

	for _, sv := range snap.Snakes {
		color := core.PlayerColor(sv.Index)
		if sv.Dead {
			color = core.ColorGray
		}
		for i := len(sv.Segments) - 1; i >= 0; i-- {
			seg := sv.Segments[i]
			r := 'o'
			if seg.Role == snake.RoleTail {
				r = '·'
			}
			pf.set(dst, seg.Pos, r, color)
		}
		head := headGlyph(sv.Direction)
		if sv.Dead {
			head = 'x'
		}
		pf.set(dst, sv.Head.Pos, head, color)
	}

	mid := pf.oy + (arena.Height+3)/2
	switch snap.Phase {
	case snake.PhasePaused:
		dst.DrawTextCentered(mid, " PAUSED ")
	case snake.PhaseDead:
		dst.DrawTextCentered(mid-1, " GAME OVER ")
		for i, sv := range snap.Snakes {
			dst.DrawTextCentered(mid+i, fmt.Sprintf(" %s: %d (%s) ", sv.Player, sv.Score, sv.Cause))
		}
	}
}

func drawHUD(dst *core.Screen, snap snake.Snapshot, best int) {
	parts := make([]string, 0, len(snap.Snakes)+2)
	for _, sv := range snap.Snakes {
		parts = append(parts, fmt.Sprintf("%s %d", sv.Player, sv.Score))
	}
	parts = append(parts, fmt.Sprintf("tick %dms", snap.Interval.Milliseconds()))
	if best > 0 {
		parts = append(parts, fmt.Sprintf("best %d", best))
	}
	dst.DrawTextCentered(0, strings.Join(parts, "   "))
}
