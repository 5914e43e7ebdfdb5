package components

// Projectile 炮弹状态
//
// 由模拟 tick 独占修改：发射时进入飞行，装填时复位。
// 各阶段标志互相独立，便于渲染层直接读取。
type Projectile struct {
	X, Y   float64 // 世界坐标
	VX, VY float64 // 速度分量
	Radius float64

	// LaunchVY 发射瞬间的竖直速度，落地反弹以它为基准衰减
	LaunchVY float64

	// Friction 水平方向的"风"阻，每次装填时随机化
	Friction float64

	// Restitution 当前反弹系数，每次落地乘以 damping²，装填时复位为 1
	Restitution float64

	// Bounces 本次发射的落地次数
	Bounces int

	InFlight   bool // 已发射
	Descending bool // 已越过最高点，处于下落段
	Settled    bool // 落地后速度衰减到阈值以下，可以重新装填
	Rebounded  bool // 撞挡板后反向运动

	// ShowReloadPrompt 提示玩家装填（静止或飞出边界）
	ShowReloadPrompt bool
}

// ResetFlight 清除本次发射的所有瞬时标志
func (p *Projectile) ResetFlight() {
	p.InFlight = false
	p.Descending = false
	p.Settled = false
	p.Rebounded = false
	p.ShowReloadPrompt = false
	p.Restitution = 1
	p.Bounces = 0
	p.LaunchVY = 0
}
