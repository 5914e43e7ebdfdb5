package systems

import (
	"github.com/decker502/artillery/pkg/game"
)

// CameraSystem 镜头缩放与平移
// 只修改 GameState.Camera，模拟本身不读取镜头状态
type CameraSystem struct{}

// NewCameraSystem 创建镜头系统
func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Zoom 缩放，正值放大
//
// 参数:
//   - amount: 缩放量（世界单位）
func (cs *CameraSystem) Zoom(gs *game.GameState, amount float64) bool {
	if gs.IsGameOver() {
		return false
	}
	c := gs.Physics.Camera
	zoom := clamp(gs.Camera.Zoom+amount, c.MinZoom, c.MaxZoom)
	if zoom == gs.Camera.Zoom {
		return false
	}
	gs.Camera.Zoom = zoom
	return true
}

// Pan 水平平移，正值向右
func (cs *CameraSystem) Pan(gs *game.GameState, amount float64) bool {
	if gs.IsGameOver() || amount == 0 {
		return false
	}
	gs.Camera.Pan += amount
	return true
}
