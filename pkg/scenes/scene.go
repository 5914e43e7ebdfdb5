package scenes

import "github.com/hajimehoshi/ebiten/v2"

// Scene 一个可独立更新和绘制的画面
type Scene interface {
	// Update 更新场景逻辑，deltaTime 为距上一帧的秒数
	Update(deltaTime float64)

	// Draw 绘制场景
	Draw(screen *ebiten.Image)
}
