package systems

import (
	"log"
	"math"

	"github.com/decker502/artillery/pkg/game"
	"github.com/decker502/artillery/pkg/types"
)

// KinematicsSystem 炮弹运动积分
//
// 每个主 tick 推进固定的虚拟时间步长，与帧率无关：
//   - 竖直：上升段与下降段分开积分（下降段位移取反，保持原有手感）
//   - 水平：受风力摩擦减速，撞挡板后反向
//   - 鼓风机气流带临时把重力改为向上
//   - 触地反弹与出界提示
type KinematicsSystem struct{}

// NewKinematicsSystem 创建运动积分系统
func NewKinematicsSystem() *KinematicsSystem {
	return &KinematicsSystem{}
}

// Update 推进一个主 tick
//
// 未发射时炮弹只跟随炮口。
//
// 参数:
//   - gs: 游戏状态
func (ks *KinematicsSystem) Update(gs *game.GameState) {
	p := &gs.Projectile
	if !p.InFlight {
		gs.TrackMuzzle()
		return
	}

	ks.integrateVertical(gs)
	ks.integrateHorizontal(gs)
	ks.applyBlower(gs)
	ks.resolveFloor(gs)
	ks.checkBounds(gs)
}

func (ks *KinematicsSystem) integrateVertical(gs *game.GameState) {
	p := &gs.Projectile
	if p.Settled {
		return
	}

	dt := gs.Physics.TickStep
	g := gs.Level.Gravity

	if !p.Descending && p.VY > 0 {
		p.VY -= g * dt
		p.Y += p.VY * dt
	}
	if p.VY <= 0 {
		p.Descending = true
	}
	if p.Descending {
		p.VY += g * dt
		p.Y -= p.VY * dt
	}
}

func (ks *KinematicsSystem) integrateHorizontal(gs *game.GameState) {
	p := &gs.Projectile
	dt := gs.Physics.TickStep

	if !p.Rebounded {
		p.VX -= p.Friction * dt
		if p.VX < 0 {
			p.VX = 0
		}
	} else {
		p.VX += p.Friction * dt
		if p.VX > 0 {
			p.VX = 0
		}
	}

	if p.VX > 0 || (p.VX < 0 && p.Rebounded) {
		p.X += p.VX * dt
	}

	// 挡板只在间隙之外阻挡，检测窗口为本 tick 可能越过的距离
	b := gs.Physics.Barrier
	if gs.Level.Mode.HasBarriers() && p.X >= b.X && p.X <= b.X+p.VX*dt && (p.Y <= b.GapLow || p.Y >= b.GapHigh) {
		p.VX = -p.VX
		p.Rebounded = true
		gs.Emit(types.EventRebound)
	}
}

// applyBlower 上升气流覆盖重力，连续生效若干 tick 后在下一个 tick 恢复
func (ks *KinematicsSystem) applyBlower(gs *game.GameState) {
	p := &gs.Projectile
	bc := gs.Physics.Blower
	dt := gs.Physics.TickStep

	if gs.Blower.Clearing {
		gs.Level.Gravity = gs.Level.BaseGravity
		gs.Blower = game.BlowerState{}
	}

	if gs.Level.Mode != types.ModeBlower {
		return
	}
	if p.X >= bc.BandX && p.X <= bc.BandX+p.VX*dt {
		gs.Level.Gravity = bc.Gravity
		if gs.Blower.Ticks >= bc.Ticks {
			gs.Blower.Clearing = true
		}
		gs.Blower.Ticks++
	}
}

// resolveFloor 触地反弹
// 反弹系数每次乘以 damping²，第 n 次反弹速度为 damping^(2n) * 发射竖直速度
func (ks *KinematicsSystem) resolveFloor(gs *game.GameState) {
	p := &gs.Projectile
	phys := gs.Physics
	if p.Settled || p.Y > phys.Floor.ContactY {
		return
	}

	p.Y = phys.Floor.RestY
	p.Restitution *= phys.Damping * phys.Damping
	p.Bounces++
	p.VY = p.Restitution * p.LaunchVY
	p.Descending = false

	if p.VY < phys.SettleThreshold {
		p.VY = 0
		p.Settled = true
		p.Friction = phys.SettledFriction
		p.ShowReloadPrompt = true
		gs.Emit(types.EventSettled)
		log.Printf("[KinematicsSystem] Projectile settled at x=%.2f after %d bounces", p.X, p.Bounces)
		return
	}
	gs.Emit(types.EventBounce)
}

func (ks *KinematicsSystem) checkBounds(gs *game.GameState) {
	p := &gs.Projectile
	w := gs.Physics.World
	if p.ShowReloadPrompt {
		return
	}
	if math.Abs(p.X) > w.HalfWidth || math.Abs(p.Y) > w.HalfHeight {
		p.ShowReloadPrompt = true
		gs.Emit(types.EventOutOfBounds)
	}
}
