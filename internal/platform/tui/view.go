package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/game"
)

// Layout constants in screen cells.
const (
	hudRows     = 1
	groundRows  = 1
	minColumns  = 20
	minRows     = 8
	entityRune  = '@'
	pipeRune    = '█'
	groundRune  = '═'
	backdropGap = 13
)

// fieldView maps field pixels onto the screen rows between the HUD and the ground.
type fieldView struct {
	cols, rows int
	sx, sy     float64
}

func newFieldView(s *core.Screen, opts game.Options) fieldView {
	rows := s.Height() - hudRows - groundRows
	return fieldView{
		cols: s.Width(),
		rows: rows,
		sx:   float64(s.Width()) / opts.FieldWidth,
		sy:   float64(rows) / opts.FieldHeight,
	}
}

func (v fieldView) col(x float64) int { return int(x * v.sx) }

func (v fieldView) row(y float64) int { return hudRows + int(y*v.sy) }

// DrawFrame renders a snapshot into the screen buffer.
func DrawFrame(s *core.Screen, snap game.Snapshot, opts game.Options) {
	s.Clear()
	if s.Width() < minColumns || s.Height() < minRows {
		s.DrawTextCentered(s.Height()/2, "Terminal too small", core.ColorRed)
		return
	}

	v := newFieldView(s, opts)
	drawBackdrop(s, v, snap.Tick)
	for _, o := range snap.Obstacles {
		drawObstacle(s, v, o, opts)
	}
	drawEntity(s, v, snap.EntityY, opts)
	s.DrawHLine(0, s.Height()-groundRows, s.Width(), groundRune, core.ColorYellow)
	drawHUD(s, snap)

	switch snap.State {
	case game.NotStarted:
		drawMessage(s, core.ColorCyan, "FLAPPY", "Press space or click to start")
	case game.GameOver:
		drawMessage(s, core.ColorRed,
			"GAME OVER",
			fmt.Sprintf("Score: %d | space to restart", snap.Score),
		)
	}
}

// drawBackdrop scatters slow-moving dots behind the field.
func drawBackdrop(s *core.Screen, v fieldView, tick int) {
	shift := tick / 8
	for y := 0; y < v.rows; y += 3 {
		for x := 0; x < v.cols; x++ {
			if (x+shift+y*5)%backdropGap == 0 {
				s.SetColor(x, hudRows+y, '·', core.ColorGray)
			}
		}
	}
}

func drawObstacle(s *core.Screen, v fieldView, o game.Obstacle, opts game.Options) {
	left := v.col(o.X)
	right := v.col(o.X + opts.ObstacleWidth)
	if right == left {
		right = left + 1
	}
	gapTop := v.row(o.GapTop)
	gapBottom := v.row(o.GapTop + opts.GapHeight)

	for x := max(left, 0); x < min(right, v.cols); x++ {
		for y := hudRows; y < hudRows+v.rows; y++ {
			if y >= gapTop && y < gapBottom {
				continue
			}
			s.SetColor(x, y, pipeRune, core.ColorGreen)
		}
	}
}

func drawEntity(s *core.Screen, v fieldView, y float64, opts game.Options) {
	left := v.col(opts.EntityX)
	right := max(v.col(opts.EntityX+opts.EntitySize), left+1)
	top := v.row(y)
	bottom := max(v.row(y+opts.EntitySize), top+1)
	bottom = min(bottom, hudRows+v.rows)

	for x := left; x < right; x++ {
		for row := top; row < bottom; row++ {
			s.SetColor(x, row, entityRune, core.ColorYellow)
		}
	}
}

func drawHUD(s *core.Screen, snap game.Snapshot) {
	s.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorWhite)
	state := snap.State.String()
	s.DrawTextColor(s.Width()-len(state)-1, 0, state, core.ColorGray)
}

// drawMessage draws a boxed two-line message in the middle of the field.
func drawMessage(s *core.Screen, c core.Color, title, body string) {
	w := max(len([]rune(title)), len([]rune(body))) + 4
	h := 4
	box := core.NewRect((s.Width()-w)/2, (s.Height()-h)/2, w, h)
	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, c)
	s.DrawTextCentered(box.Y+1, title, c)
	s.DrawTextCentered(box.Y+2, body, core.ColorWhite)
}
