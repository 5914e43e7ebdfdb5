package systems

import (
	"github.com/decker502/artillery/pkg/game"
)

// SecondaryBodySystem 副球体在发射台上的弹跳
// 与炮弹共享当前重力，只在 shooter / shooter-blower 模式中运行
type SecondaryBodySystem struct{}

// NewSecondaryBodySystem 创建副球体系统
func NewSecondaryBodySystem() *SecondaryBodySystem {
	return &SecondaryBodySystem{}
}

// Update 推进一个副球体 tick
func (ss *SecondaryBodySystem) Update(gs *game.GameState) {
	if !gs.Level.Mode.HasSecondaryBody() {
		return
	}

	b := &gs.Secondary
	dt := gs.Physics.TickStep
	g := gs.Level.Gravity

	if !b.Falling && b.VY > 0 {
		b.VY -= g * dt
		b.Y += b.VY * dt
	}
	if b.VY <= 0 {
		b.Falling = true
	}
	if b.Falling {
		b.VY += g * dt
		b.Y -= b.VY * dt

		sc := gs.Physics.Secondary
		if b.Y <= sc.FloorY {
			b.Y = sc.RestY
			b.VY = b.BounceVelocity
			b.Falling = false
		}
	}
}
