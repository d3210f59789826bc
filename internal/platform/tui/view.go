package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/render"
)

// Glyphs for the world's bodies.
const (
	obstacleGlyph   = 'o'
	projectileGlyph = '•'
	departedGlyph   = '✦'
)

// craftGlyphs indexed by 45-degree sector of the craft orientation, starting
// at screen-right and turning clockwise on screen (world +Y points down).
var craftGlyphs = []rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// View renders the latest snapshot plus HUD and help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.drawHUD()
	m.drawWorld()
	if m.ended {
		m.drawGameOver()
	}

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// drawHUD draws the status row above the play field.
func (m Model) drawHUD() {
	secs := m.latest.Time / int64(m.runtime.TickRate)
	left := fmt.Sprintf(" %02d:%02d  rocks %d  shots %d",
		secs/60, secs%60, len(m.latest.Obstacles), len(m.latest.Projectiles))
	m.screen.DrawText(0, 0, left, render.ColorGray)

	seed := fmt.Sprintf("seed %d ", m.runtime.Seed)
	m.screen.DrawText(m.screen.Width()-len(seed), 0, seed, render.ColorGray)
}

// drawWorld projects the snapshot onto the play field below the HUD row.
func (m Model) drawWorld() {
	fieldH := m.screen.Height() - 1
	if fieldH < 1 {
		return
	}
	proj := render.NewProjection(m.cfg.World.BoundSize, m.screen.Width(), fieldH)

	for _, o := range m.latest.Obstacles {
		x, y := proj.Point(o.Position)
		rx, ry := proj.Radii(o.Radius)
		m.screen.DrawEllipse(x, y+1, rx, ry, obstacleGlyph, render.ColorGray)
	}

	for _, p := range m.latest.Projectiles {
		x, y := proj.Point(p.Position)
		m.screen.Set(x, y+1, projectileGlyph, render.ColorBrightYellow)
	}

	// One-frame destruction flash; the next snapshot carries a fresh
	// departed set, so these erase themselves.
	for _, d := range m.latest.Departed {
		x, y := proj.Point(d.Position)
		m.screen.Set(x, y+1, departedGlyph, render.ColorBrightRed)
	}

	x, y := proj.Point(m.latest.Craft.Position)
	m.screen.Set(x, y+1, craftGlyph(m.latest.Craft.Orientation), render.ColorCyan)
}

// craftGlyph picks the arrow for the craft's current heading.
func craftGlyph(orientation float64) rune {
	deg := math.Mod(orientation, 360)
	if deg < 0 {
		deg += 360
	}
	sector := int(math.Round(deg/45)) % len(craftGlyphs)
	return craftGlyphs[sector]
}

// drawGameOver draws the end-of-session overlay.
func (m Model) drawGameOver() {
	title := "GAME OVER"
	subtitle := "Press R to restart, Q to quit"

	w := len(subtitle) + 4
	h := 5
	x := (m.screen.Width() - w) / 2
	y := (m.screen.Height() - h) / 2

	m.screen.FillRect(x, y, w, h, ' ', render.ColorDefault)
	m.screen.DrawBox(x, y, w, h, render.ColorBrightRed)
	m.screen.DrawTextCentered(y+1, title, render.ColorBrightRed)
	m.screen.DrawTextCentered(y+3, subtitle, render.ColorWhite)
}
