package paperplane

import (
	"fmt"
	"math"

	"github.com/vovakirdan/paper-plane/internal/core"
)

// Visual characters for rendering
const (
	StarChar     = '★'
	GoalChar     = '◎'
	GoalRingChar = '·'
	HubChar      = '+'
	BladeChar    = '•'
	BalloonChar  = 'O'
	BasketChar   = '#'
	GroundChar   = '▀'
	SoilChar     = '░'
)

// Plane glyphs by heading sector, clockwise from east with y pointing down.
var planeGlyphs = [8]rune{'>', '\\', 'v', '/', '<', '\\', '^', '/'}

// Zone arrows by force sector, same orientation as planeGlyphs.
var zoneArrows = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

const hudRows = 1

// viewport maps world coordinates onto screen cells below the HUD.
type viewport struct {
	w, h   int
	sx, sy float64
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	w := dst.Width()
	h := dst.Height() - hudRows
	return viewport{w: w, h: h, sx: float64(w) / worldW, sy: float64(h) / worldH}
}

func (v viewport) cell(p core.Vec2) (int, int) {
	return int(math.Floor(p.X * v.sx)), hudRows + int(math.Floor(p.Y*v.sy))
}

func (v viewport) set(dst *core.Screen, p core.Vec2, r rune, c core.Color) {
	x, y := v.cell(p)
	if y < hudRows {
		return
	}
	dst.SetColor(x, y, r, c)
}

// sector quantizes an angle to one of eight compass directions.
func sector(angle float64) int {
	s := int(math.Round(angle/(math.Pi/4))) % 8
	if s < 0 {
		s += 8
	}
	return s
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall || g.session == nil {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	snap := g.session.Snapshot()
	vp := newViewport(dst, g.cfg.Playfield.Width, g.cfg.Playfield.Height)

	renderGround(dst, vp, g.session.Bounds().Bottom)
	renderZones(dst, vp, &snap)
	renderGoal(dst, vp, snap.Goal)
	renderStars(dst, vp, snap.Stars)
	renderObstacles(dst, vp, snap.Obstacles)
	if !snap.CrashActive {
		renderPlane(dst, vp, snap.Plane, snap.Heading)
	}
	renderParticles(dst, vp, snap.Particles)

	g.renderHUD(dst, &snap)
	g.renderOverlay(dst, &snap)
}

func renderGround(dst *core.Screen, vp viewport, bottom float64) {
	_, y := vp.cell(core.V(0, bottom))
	for row := y; row < dst.Height(); row++ {
		ch := SoilChar
		if row == y {
			ch = GroundChar
		}
		for x := range dst.Width() {
			dst.SetColor(x, row, ch, core.ColorGreen)
		}
	}
}

// renderZones fills visible zones with a sparse grid of arrows along their
// current force.
func renderZones(dst *core.Screen, vp viewport, snap *Snapshot) {
	for i, z := range snap.Zones {
		if !z.Visible {
			continue
		}
		arrow := zoneArrows[sector(snap.Forces[i].Angle())]
		x0, y0 := vp.cell(core.V(z.Rect.X, z.Rect.Y))
		x1, y1 := vp.cell(core.V(z.Rect.Right(), z.Rect.Bottom()))
		for y := y0; y <= y1; y += 2 {
			for x := x0; x <= x1; x += 4 {
				if y >= hudRows {
					dst.SetColor(x, y, arrow, core.ColorCyan)
				}
			}
		}
	}
}

func renderGoal(dst *core.Screen, vp viewport, goal Goal) {
	color := core.ColorMagenta
	if goal.Glow > goal.BaseGlow {
		color = core.ColorBrightMagenta
	}
	if goal.Completed {
		color = core.ColorBrightGreen
	}

	ring := goal.Radius + goal.Glow/2
	for a := 0.0; a < 2*math.Pi; a += math.Pi / 8 {
		vp.set(dst, goal.Pos.Add(core.FromAngle(a, ring)), GoalRingChar, color)
	}
	vp.set(dst, goal.Pos, GoalChar, color)
}

func renderStars(dst *core.Screen, vp viewport, stars []Star) {
	for _, s := range stars {
		if s.Collected {
			continue
		}
		vp.set(dst, core.V(s.Pos.X, s.CurrentY), StarChar, core.ColorBrightYellow)
	}
}

func renderObstacles(dst *core.Screen, vp viewport, obstacles []Obstacle) {
	for _, o := range obstacles {
		switch o := o.(type) {
		case *Windmill:
			for _, a := range o.BladeAngles() {
				for f := 0.25; f <= 1.0; f += 0.25 {
					vp.set(dst, o.Pos.Add(core.FromAngle(a, o.Radius*f)), BladeChar, core.ColorWhite)
				}
			}
			vp.set(dst, o.Pos, HubChar, core.ColorGray)
		case *Balloon:
			vp.set(dst, o.Basket().Center(), BasketChar, core.ColorOrange)
			vp.set(dst, o.Pos, BalloonChar, core.ColorRed)
		}
	}
}

func renderPlane(dst *core.Screen, vp viewport, p Plane, heading float64) {
	vp.set(dst, p.Center(), planeGlyphs[sector(heading)], core.ColorBrightWhite)
}

func renderParticles(dst *core.Screen, vp viewport, particles []Particle) {
	for _, p := range particles {
		ch := '.'
		if p.Size >= 4 {
			ch = '*'
		}
		vp.set(dst, p.Pos, ch, p.Color)
	}
}

// renderHUD draws score, clock and level on the top row.
func (g *Game) renderHUD(dst *core.Screen, snap *Snapshot) {
	scoreText := fmt.Sprintf("Score: %d", snap.Score.Display)
	if snap.Score.Highest > 0 {
		scoreText += fmt.Sprintf("  Best: %d %s", snap.Score.Highest, snap.Score.Holder)
	}
	dst.DrawText(1, 0, scoreText)

	if snap.TimeLeft >= 0 {
		color := core.ColorDefault
		if snap.TimeLeft < 10 {
			color = core.ColorBrightRed
		}
		dst.DrawTextCenteredColor(0, fmt.Sprintf("Time: %d", int(math.Ceil(snap.TimeLeft))), color)
	} else {
		dst.DrawTextCentered(0, fmt.Sprintf("Wind %+.1f %+.1f", snap.Wind.X, snap.Wind.Y))
	}

	levelText := fmt.Sprintf("Level: %d/%d", snap.Level, snap.MaxLevels)
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)
}

// renderOverlay draws state messages.
func (g *Game) renderOverlay(dst *core.Screen, snap *Snapshot) {
	switch {
	case snap.Paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume", core.ColorDefault)

	case snap.State == StateIntro:
		drawCenteredBox(dst, g.Title(), "Arrows: wind  Click: gust  Drag: steer  |  Any key to fly", core.ColorDefault)

	case snap.State == StateGameOver:
		title := "CRASHED"
		if snap.CrashCause == CauseTimeout {
			title = "OUT OF TIME"
		}
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score.Current)
		drawCenteredBox(dst, title, subtitle, core.ColorBrightRed)

	case snap.Won:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", snap.Score.Current)
		drawCenteredBox(dst, "YOU WIN!", subtitle, core.ColorBrightYellow)

	case snap.Transition != PhaseIdle:
		color := alphaColor(snap.Alpha)
		y := dst.Height() / 2
		switch snap.Transition {
		case PhaseFadeInComplete, PhaseHoldComplete, PhaseFadeOutComplete:
			dst.DrawTextCenteredColor(y-1, fmt.Sprintf("LEVEL %d COMPLETE", snap.Level), color)
			dst.DrawTextCenteredColor(y+1, fmt.Sprintf("+%d", snap.Score.LevelEarned()), color)
		default:
			dst.DrawTextCenteredColor(y, fmt.Sprintf("LEVEL %d", snap.Level), color)
		}
	}
}

// alphaColor approximates fade opacity with three gray levels.
func alphaColor(alpha float64) core.Color {
	switch {
	case alpha < 0.34:
		return core.ColorGray
	case alpha < 0.67:
		return core.ColorWhite
	default:
		return core.ColorBrightWhite
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := min(max(len([]rune(title)), len([]rune(subtitle)))+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBoxColor(core.NewRect(boxX, boxY, boxW, boxH), c)

	dst.DrawTextColor(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, c)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
