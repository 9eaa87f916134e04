package game

import (
	"fmt"

	"github.com/vovakirdan/square-catch/internal/core"
)

// Visual characters for rendering
const (
	TargetChar = '█'
	AvatarChar = '●'
)

const namePlaceholder = "Enter nickname"

// Layout returns the viewport mapping the world into a screen of the given
// size: row 0 holds the HUD and the field box fills the rest.
func Layout(fieldW, fieldH, screenW, screenH int) core.Viewport {
	return core.Viewport{
		Origin: core.Pt(1, 2),
		Cols:   core.Max(screenW-2, 1),
		Rows:   core.Max(screenH-3, 1),
		WorldW: fieldW,
		WorldH: fieldH,
	}
}

// Viewport returns the layout for dst.
func (s *Session) Viewport(dst *core.Screen) core.Viewport {
	return Layout(s.cfg.Field.Width, s.cfg.Field.Height, dst.Width(), dst.Height())
}

// Render draws the current state into dst.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	switch s.phase {
	case PhaseNameEntry:
		s.renderNameEntry(dst)
	case PhasePlaying:
		s.renderPlaying(dst)
	case PhaseRoundEnd:
		s.renderRoundEnd(dst)
	}
}

func (s *Session) renderNameEntry(dst *core.Screen) {
	mid := dst.Height() / 2

	dst.DrawTextCentered(mid-4, "SQUARE CATCH", core.ColorBrightMagenta)
	dst.DrawTextCentered(mid-2, fmt.Sprintf("Catch as many squares as you can in %d seconds", int(s.cfg.Session.Budget.Seconds())), core.ColorGray)

	text, color := string(s.name)+"_", core.ColorDodgerBlue
	if len(s.name) == 0 {
		text, color = namePlaceholder, core.ColorSkyBlue
	}

	boxW := core.Max(s.cfg.Session.MaxNameLength, len([]rune(namePlaceholder))) + 4
	box := core.NewRect((dst.Width()-boxW)/2, mid, boxW, 3)
	dst.DrawBox(box, color)
	dst.DrawTextColored(box.X+2, box.Y+1, text, color)

	dst.DrawTextCentered(mid+4, "Enter: start   Esc: quit", core.ColorGray)
}

func (s *Session) renderPlaying(dst *core.Screen) {
	vp := s.Viewport(dst)
	s.drawField(dst, vp)

	for _, t := range s.targets {
		dst.DrawRect(vp.CellRect(t.Rect()), TargetChar, core.ColorRed)
	}

	sx, sy := vp.ScaleX(), vp.ScaleY()
	cx := float64(vp.Origin.X) + float64(s.avatar.X)*sx
	cy := float64(vp.Origin.Y) + float64(s.avatar.Y)*sy
	r := float64(s.cfg.Avatar.Radius)
	dst.FillEllipse(cx, cy, r*sx, r*sy, AvatarChar, core.ColorMagenta)

	// HUD
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", s.player.Score), core.ColorBrightWhite)
	timer := fmt.Sprintf("Time: %d s", int(s.Remaining(s.now).Seconds()))
	dst.DrawTextColored(dst.Width()-len(timer)-1, 0, timer, core.ColorBrightWhite)
}

func (s *Session) renderRoundEnd(dst *core.Screen) {
	vp := s.Viewport(dst)
	s.drawField(dst, vp)

	dst.DrawTextCentered(vp.ToCell(core.Pt(0, 20)).Y,
		fmt.Sprintf("TIME UP - %s scored %d", s.player.Name, s.player.Score), core.ColorBrightWhite)

	row := vp.ToCell(core.Pt(0, 60)).Y
	dst.DrawTextCentered(row, fmt.Sprintf("Top-%d players:", s.cfg.Leaderboard.Size), core.ColorBrightWhite)
	for i, e := range s.top {
		color := core.ColorWhite
		if e.RoundID == s.roundID {
			color = core.ColorBrightMagenta
		}
		dst.DrawTextCentered(row+1+i, FormatRank(i+1, e), color)
	}

	if s.saveErr != nil {
		dst.DrawTextCentered(row+2+len(s.top), "Score could not be saved", core.ColorBrightRed)
	}

	drawButton(dst, vp.CellRect(RestartButton), "Restart (R)", core.ColorGreen)
	drawButton(dst, vp.CellRect(EndButton), "End game (E)", core.ColorRed)
}

func (s *Session) drawField(dst *core.Screen, vp core.Viewport) {
	b := vp.Bounds()
	dst.DrawBox(core.NewRect(b.X-1, b.Y-1, b.W+2, b.H+2), core.ColorGray)
}

// drawButton fills r and centers label on its middle row.
func drawButton(dst *core.Screen, r core.Rect, label string, c core.Color) {
	dst.DrawRect(r, '░', c)
	x := r.X + (r.W-len([]rune(label)))/2
	dst.DrawTextColored(x, r.Y+r.H/2, label, core.ColorBrightWhite)
}
