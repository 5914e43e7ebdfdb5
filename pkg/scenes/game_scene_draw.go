package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/artillery/pkg/components"
	"github.com/decker502/artillery/pkg/game"
	"github.com/decker502/artillery/pkg/utils"
)

// 场景几何（世界单位），只影响绘制
const (
	barrierCenterX    = 1.0
	barrierHalfWidth  = 0.1
	barrierHalfHeight = 2.16
	cannonBaseRadius  = 0.45
	barrelLength      = 1.15
	barrelWidth       = 0.3
	groundTopY        = -4.0
	arrowSpacing      = 0.9
)

// 调色板
var (
	skyColor        = color.RGBA{R: 20, G: 26, B: 44, A: 255}
	groundColor     = color.RGBA{R: 58, G: 84, B: 48, A: 255}
	cannonColor     = color.RGBA{R: 150, G: 150, B: 160, A: 255}
	projectileColor = color.RGBA{R: 240, G: 200, B: 80, A: 255}
	targetColor     = color.RGBA{R: 220, G: 70, B: 70, A: 255}
	secondaryColor  = color.RGBA{R: 90, G: 180, B: 230, A: 255}
	barrierColor    = color.RGBA{R: 170, G: 120, B: 70, A: 255}
	arrowColor      = color.RGBA{R: 200, G: 230, B: 255, A: 160}
	hudColor        = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	promptColor     = color.RGBA{R: 255, G: 220, B: 120, A: 255}
	bannerColor     = color.RGBA{R: 255, G: 110, B: 110, A: 255}
)

// Draw 绘制当前快照
func (s *GameScene) Draw(screen *ebiten.Image) {
	snap := s.sim.Snapshot()
	cam := snap.Camera

	screen.Fill(skyColor)
	s.fillWorldRect(screen, cam, -100, -100, 100, groundTopY, groundColor)

	if snap.BarriersActive {
		s.fillWorldRect(screen, cam,
			barrierCenterX-barrierHalfWidth, snap.Barriers.UpY-barrierHalfHeight,
			barrierCenterX+barrierHalfWidth, snap.Barriers.UpY+barrierHalfHeight, barrierColor)
		s.fillWorldRect(screen, cam,
			barrierCenterX-barrierHalfWidth, snap.Barriers.DownY-barrierHalfHeight,
			barrierCenterX+barrierHalfWidth, snap.Barriers.DownY+barrierHalfHeight, barrierColor)
	}

	if snap.BlowerActive {
		s.drawBlower(screen, snap)
	}

	for _, t := range snap.Targets {
		s.fillWorldCircle(screen, cam, t.X, t.Y, t.Radius, targetColor)
		sx, sy := utils.WorldToScreen(t.X, t.Y, s.layout, cam)
		s.drawText(screen, t.ID, sx-3, sy-6, hudColor)
	}

	if snap.SecondaryActive {
		b := snap.Secondary
		s.fillWorldCircle(screen, cam, b.X, b.Y, 0.3535, secondaryColor)
	}

	s.drawCannon(screen, snap)

	p := snap.Projectile
	s.fillWorldCircle(screen, cam, p.X, p.Y, p.Radius, projectileColor)

	s.drawHUD(screen, snap)
}

// drawCannon 炮座和沿瞄准方向的炮管
func (s *GameScene) drawCannon(screen *ebiten.Image, snap game.Snapshot) {
	cam := snap.Camera
	ox, oy := -6.4, -3.4

	rad := snap.Aim.Angle * math.Pi / 180
	ex, ey := ox+barrelLength*math.Cos(rad), oy+barrelLength*math.Sin(rad)

	x0, y0 := utils.WorldToScreen(ox, oy, s.layout, cam)
	x1, y1 := utils.WorldToScreen(ex, ey, s.layout, cam)
	scale, _ := utils.WorldScale(s.layout, cam)
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), float32(barrelWidth*scale), cannonColor, true)

	s.fillWorldCircle(screen, cam, ox, oy, cannonBaseRadius, cannonColor)
}

// drawBlower 气流带上移动的箭头
func (s *GameScene) drawBlower(screen *ebiten.Image, snap game.Snapshot) {
	cam := snap.Camera
	offset := float64(snap.ArrowFrame) * arrowSpacing / 6
	scale, _ := utils.WorldScale(s.layout, cam)

	for y := groundTopY + offset; y < 4; y += arrowSpacing {
		tipX, tipY := utils.WorldToScreen(2.05, y+0.3, s.layout, cam)
		baseX, baseY := utils.WorldToScreen(2.05, y, s.layout, cam)
		w := float32(0.04 * scale)
		vector.StrokeLine(screen, float32(baseX), float32(baseY), float32(tipX), float32(tipY), w, arrowColor, true)
		vector.StrokeLine(screen, float32(tipX), float32(tipY), float32(tipX)-w*3, float32(tipY)+w*3, w, arrowColor, true)
		vector.StrokeLine(screen, float32(tipX), float32(tipY), float32(tipX)+w*3, float32(tipY)+w*3, w, arrowColor, true)
	}
}

func (s *GameScene) drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	for i, line := range snap.StatusLines() {
		s.drawText(screen, line, 12, float64(12+i*18), hudColor)
	}

	cx := s.layout.Width / 2
	cy := s.layout.Height / 2
	if snap.GameOver {
		banner := "GAME OVER"
		if snap.Won {
			banner = "YOU WIN"
		}
		s.drawText(screen, banner, cx-float64(len(banner))*3.5, cy-20, bannerColor)
		final := fmt.Sprintf("Final score: %d", snap.Score)
		s.drawText(screen, final, cx-float64(len(final))*3.5, cy, hudColor)
		return
	}

	if snap.ShowReloadPrompt {
		s.drawText(screen, game.ReloadPrompt, cx-float64(len(game.ReloadPrompt))*3.5, cy, promptColor)
	}
}

func (s *GameScene) drawText(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, s.face, op)
}

func (s *GameScene) fillWorldCircle(screen *ebiten.Image, cam components.CameraComponent, x, y, r float64, clr color.Color) {
	sx, sy := utils.WorldToScreen(x, y, s.layout, cam)
	scale, _ := utils.WorldScale(s.layout, cam)
	vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(r*scale), clr, true)
}

func (s *GameScene) fillWorldRect(screen *ebiten.Image, cam components.CameraComponent, x0, y0, x1, y1 float64, clr color.Color) {
	left, top := utils.WorldToScreen(x0, y1, s.layout, cam)
	right, bottom := utils.WorldToScreen(x1, y0, s.layout, cam)
	vector.DrawFilledRect(screen, float32(left), float32(top), float32(right-left), float32(bottom-top), clr, false)
}
