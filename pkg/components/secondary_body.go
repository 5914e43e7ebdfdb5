package components

// SecondaryBody 副球体：发射台上独立弹跳的球
// 仅在 shooter / shooter-blower 模式中被模拟
type SecondaryBody struct {
	X, Y float64
	VY   float64

	// Falling 是否处于下落段
	Falling bool

	// BounceVelocity 落地后重置的上升速度（随关卡变化）
	BounceVelocity float64
}

// Launch 立即赋予上升速度并切换到上升段
func (b *SecondaryBody) Launch(v float64) {
	b.VY = v
	b.Falling = false
}
