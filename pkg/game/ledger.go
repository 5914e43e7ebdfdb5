package game

import (
	"log"

	"github.com/decker502/artillery/pkg/types"
)

// FireShot 发射炮弹并扣除一条生命
//
// 仅在未发射、未结束且仍有生命时生效。
//
// 返回：
//   - bool: 是否成功发射
func (gs *GameState) FireShot() bool {
	if gs.Projectile.InFlight || gs.IsGameOver() || gs.Level.Lives <= 0 {
		return false
	}

	gs.TrackMuzzle()
	gs.Projectile.InFlight = true
	gs.Projectile.LaunchVY = gs.Projectile.VY
	gs.Level.Lives--
	gs.Emit(types.EventFired)
	log.Printf("[Ledger] Shot fired: angle=%.1f speed=%.1f lives=%d", gs.Aim.Angle, gs.Aim.Speed, gs.Level.Lives)
	return true
}

// Reload 装填：复位炮弹并重新随机风力
//
// 除摩擦外重复调用结果相同。生命耗尽时进入游戏结束。
func (gs *GameState) Reload() {
	gs.Projectile.ResetFlight()
	gs.Projectile.Friction = gs.RandomFriction()
	gs.Blower = BlowerState{}
	gs.Level.Gravity = gs.Level.BaseGravity

	if gs.Level.Lives <= 0 {
		gs.EnterGameOver(false)
		gs.Emit(types.EventGameOver)
		log.Printf("[Ledger] Reload with no lives left, game over (score=%d)", gs.Level.Score)
	}

	gs.TrackMuzzle()
}

// Award 按当前难度和剩余生命加分
// 必须在转换修改难度和生命之前调用
//
// 返回：
//   - int: 本次得分
func (gs *GameState) Award() int {
	points := gs.Level.Difficulty * gs.Levels.ScorePerLife * (gs.Level.Lives + 1)
	gs.Level.Score += points
	return points
}
