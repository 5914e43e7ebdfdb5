package main

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/artillery/pkg/components"
	"github.com/decker502/artillery/pkg/config"
	"github.com/decker502/artillery/pkg/game"
	"github.com/decker502/artillery/pkg/utils"
)

var (
	styleHUD        = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	stylePrompt     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleBanner     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleGround     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleCannon     = tcell.StyleDefault.Foreground(tcell.ColorLightGray)
	styleTarget     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleSecondary  = tcell.StyleDefault.Foreground(tcell.PaletteColor(51)) // Cyan in 256-color palette
	styleBarrier    = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleArrow      = tcell.StyleDefault.Foreground(tcell.PaletteColor(153))
	styleProjectile = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// cellAt 世界坐标对应的终端格子
func cellAt(layout config.Layout, cam components.CameraComponent, wx, wy float64) (int, int) {
	sx, sy := utils.WorldToScreen(wx, wy, layout, cam)
	return int(math.Floor(sx)), int(math.Floor(sy))
}

type renderer struct {
	screen tcell.Screen
	layout config.Layout
}

func (r *renderer) set(x, y int, ch rune, style tcell.Style) {
	w, h := r.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *renderer) setWorld(cam components.CameraComponent, wx, wy float64, ch rune, style tcell.Style) {
	x, y := cellAt(r.layout, cam, wx, wy)
	r.set(x, y, ch, style)
}

func (r *renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.set(x+i, y, ch, style)
	}
}

func (r *renderer) draw(snap game.Snapshot) {
	r.screen.Clear()
	cam := snap.Camera
	w, h := r.screen.Size()

	_, groundY := cellAt(r.layout, cam, 0, -4)
	for y := groundY; y < h; y++ {
		for x := 0; x < w; x++ {
			r.set(x, y, '▒', styleGround)
		}
	}

	if snap.BarriersActive {
		for _, cy := range []float64{snap.Barriers.UpY, snap.Barriers.DownY} {
			for wy := cy - 2.16; wy <= cy+2.16; wy += 0.2 {
				r.setWorld(cam, 1, wy, '█', styleBarrier)
			}
		}
	}

	if snap.BlowerActive {
		offset := float64(snap.ArrowFrame) * 0.15
		for wy := -4 + offset; wy < 4; wy += 0.9 {
			r.setWorld(cam, 2.05, wy, '^', styleArrow)
		}
	}

	for _, t := range snap.Targets {
		r.setWorld(cam, t.X, t.Y, 'O', styleTarget)
		x, y := cellAt(r.layout, cam, t.X, t.Y)
		r.text(x+1, y, t.ID, styleTarget)
	}

	if snap.SecondaryActive {
		r.setWorld(cam, snap.Secondary.X, snap.Secondary.Y, '●', styleSecondary)
	}

	// 炮管沿瞄准方向
	rad := snap.Aim.Angle * math.Pi / 180
	for d := 0.0; d <= 1.1; d += 0.2 {
		r.setWorld(cam, -6.4+d*math.Cos(rad), -3.4+d*math.Sin(rad), '#', styleCannon)
	}

	r.setWorld(cam, snap.Projectile.X, snap.Projectile.Y, '*', styleProjectile)

	for i, line := range snap.StatusLines() {
		r.text(1, i, line, styleHUD)
	}

	switch {
	case snap.GameOver && snap.Won:
		r.text(w/2-4, h/2-1, "YOU WIN", styleBanner)
	case snap.GameOver:
		r.text(w/2-4, h/2-1, "GAME OVER", styleBanner)
	case snap.ShowReloadPrompt:
		r.text(w/2-len(game.ReloadPrompt)/2, h/2, game.ReloadPrompt, stylePrompt)
	}

	r.screen.Show()
}
