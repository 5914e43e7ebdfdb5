package systems

import (
	"math"

	"github.com/decker502/artillery/pkg/game"
)

// AimSystem 把输入映射为发射角和力度
//
// 键盘调整在飞行中也生效（作用于下一发），指针瞄准在飞行中被忽略。
// 游戏结束后所有调整都被忽略。
type AimSystem struct{}

// NewAimSystem 创建瞄准系统
func NewAimSystem() *AimSystem {
	return &AimSystem{}
}

// AimAt 让炮管指向世界坐标 (wx, wy)
//
// 角度限制在 [0, MaxPointerAngle]，指针正好在炮座正上/正下方时取 90°/0°。
//
// 返回:
//   - bool: 是否生效
func (as *AimSystem) AimAt(gs *game.GameState, wx, wy float64) bool {
	if gs.IsGameOver() || gs.Projectile.InFlight {
		return false
	}

	c := gs.Physics.Cannon
	dx := wx - c.OriginX
	dy := wy - c.OriginY

	var angle float64
	if dx == 0 {
		if dy >= 0 {
			angle = 90
		}
	} else {
		angle = math.Atan2(dy, dx) * 180 / math.Pi
	}
	angle = clamp(angle, 0, c.MaxPointerAngle)

	gs.Aim.Angle = angle
	gs.Aim.Offset = (angle - c.BaseAngle) / c.DegreesPerStep
	gs.TrackMuzzle()
	return true
}

// NudgeAngle 按档位调整炮管角度
//
// 参数:
//   - dir: +1 抬高，-1 压低
func (as *AimSystem) NudgeAngle(gs *game.GameState, dir int) bool {
	if gs.IsGameOver() {
		return false
	}

	c := gs.Physics.Cannon
	offset := clamp(gs.Aim.Offset+float64(dir)*c.OffsetStep, c.MinOffset, c.MaxOffset)
	if offset == gs.Aim.Offset {
		return false
	}

	gs.Aim.Offset = offset
	gs.Aim.Angle = c.BaseAngle + c.DegreesPerStep*offset
	gs.TrackMuzzle()
	return true
}

// NudgePower 按步长调整力度
//
// 参数:
//   - dir: +1 增加，-1 减小
func (as *AimSystem) NudgePower(gs *game.GameState, dir int) bool {
	if gs.IsGameOver() {
		return false
	}

	c := gs.Physics.Cannon
	speed := clamp(snap(gs.Aim.Speed+float64(dir)*c.SpeedStep), c.MinSpeed, c.MaxSpeed)
	if speed == gs.Aim.Speed {
		return false
	}

	gs.Aim.Speed = speed
	gs.TrackMuzzle()
	return true
}

// CyclePower 力度加一档，到达上限后回到最小值
func (as *AimSystem) CyclePower(gs *game.GameState) bool {
	if gs.IsGameOver() {
		return false
	}

	c := gs.Physics.Cannon
	if gs.Aim.Speed < c.MaxSpeed-1e-9 {
		gs.Aim.Speed = clamp(snap(gs.Aim.Speed+c.SpeedStep), c.MinSpeed, c.MaxSpeed)
	} else {
		gs.Aim.Speed = c.MinSpeed
	}
	gs.TrackMuzzle()
	return true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// snap 消除反复加减步长累积的浮点误差
func snap(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
