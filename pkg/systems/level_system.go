package systems

import (
	"log"
	"slices"

	"github.com/decker502/artillery/pkg/config"
	"github.com/decker502/artillery/pkg/game"
	"github.com/decker502/artillery/pkg/types"
)

// LevelSystem 关卡状态机
//
// 职责：
//   - 按转换表顺序匹配碰撞，第一条命中的规则生效
//   - 结算得分并应用转换效果
//   - 推进挡板
//   - 慢 tick 上的游戏结束判定与计时
//
// 一个主 tick 最多触发一次转换。刚触发过的碰撞体在炮弹离开之前不会再次触发。
type LevelSystem struct{}

// NewLevelSystem 创建关卡状态机
func NewLevelSystem() *LevelSystem {
	return &LevelSystem{}
}

// Update 主 tick：处理碰撞触发的转换并推进挡板
//
// 参数:
//   - gs: 游戏状态
//   - contacts: 本 tick 炮弹接触的碰撞体（见 CollisionSystem.Detect）
//
// 返回:
//   - *config.TransitionConfig: 触发的转换，没有时为 nil
func (ls *LevelSystem) Update(gs *game.GameState, contacts []string) *config.TransitionConfig {
	if gs.LatchedTrigger != "" && !slices.Contains(contacts, gs.LatchedTrigger) {
		gs.LatchedTrigger = ""
	}

	fired := ls.matchTransition(gs, contacts)
	if fired != nil {
		ls.applyTransition(gs, fired)
	}

	ls.driftBarriers(gs)
	return fired
}

func (ls *LevelSystem) matchTransition(gs *game.GameState, contacts []string) *config.TransitionConfig {
	if len(contacts) == 0 || gs.IsGameOver() {
		return nil
	}

	for i := range gs.Levels.Transitions {
		tr := &gs.Levels.Transitions[i]
		if tr.FromMode != gs.Level.Mode {
			continue
		}
		if tr.Level != 0 && tr.Level != gs.Level.Level {
			continue
		}
		if tr.Trigger == gs.LatchedTrigger || !slices.Contains(contacts, tr.Trigger) {
			continue
		}
		return tr
	}
	return nil
}

// applyTransition 结算得分后应用转换效果
func (ls *LevelSystem) applyTransition(gs *game.GameState, tr *config.TransitionConfig) {
	points := gs.Award()
	lvl := &gs.Level

	lvl.Difficulty += tr.DifficultyBonus
	if tr.Lives != nil {
		lvl.Lives = *tr.Lives
	}
	if tr.Gravity != nil {
		lvl.BaseGravity = *tr.Gravity
		lvl.Gravity = *tr.Gravity
	}
	if tr.ResetBarriers {
		gs.ResetBarriers()
	}

	bounce := gs.Secondary.BounceVelocity
	if tr.SecondaryBounce != nil {
		bounce = *tr.SecondaryBounce
	}
	if tr.ResetSecondary {
		gs.ResetSecondary(bounce)
	} else {
		gs.Secondary.BounceVelocity = bounce
	}
	if tr.SecondaryLaunch != nil {
		gs.Secondary.Launch(*tr.SecondaryLaunch)
	}
	if tr.SecondaryMs > 0 {
		gs.SecondaryInterval = config.TickConfig{SecondaryMs: tr.SecondaryMs}.SecondaryInterval()
	}

	gs.LatchedTrigger = tr.Trigger

	if tr.AdvancesLevel() {
		lvl.Level++
	}
	if tr.Victory {
		gs.EnterGameOver(true)
		gs.Emit(types.EventVictory)
		log.Printf("[LevelSystem] %s: victory with score %d (+%d)", tr.Name, lvl.Score, points)
		return
	}

	lvl.Mode = tr.ToMode
	gs.Emit(types.EventLevelCleared)
	log.Printf("[LevelSystem] %s: level %d, mode %s, score %d (+%d)", tr.Name, lvl.Level, lvl.Mode, lvl.Score, points)
}

// driftBarriers 挡板向中间收拢直到极限位置
func (ls *LevelSystem) driftBarriers(gs *game.GameState) {
	if !gs.Level.Mode.HasBarriers() {
		return
	}

	b := gs.Physics.Barrier
	bar := &gs.Level.Barriers
	if bar.UpY > b.UpLimit {
		bar.UpY -= b.UpStep
	}
	if bar.DownY < b.DownLimit {
		bar.DownY += b.DownStep
	}
}

// SlowTick 慢 tick：箭头动画、游戏结束判定与计时、副球体落地重置
func (ls *LevelSystem) SlowTick(gs *game.GameState) {
	frames := gs.Physics.Ticks.ArrowFrames
	if gs.ArrowFrame < frames {
		gs.ArrowFrame++
	} else {
		gs.ArrowFrame = 0
	}

	if !gs.IsGameOver() && gs.Level.Lives <= 0 && gs.ShotSpent() {
		gs.EnterGameOver(false)
		gs.Emit(types.EventGameOver)
		log.Printf("[LevelSystem] Out of lives, game over (score=%d)", gs.Level.Score)
	}

	if gs.IsGameOver() {
		gs.Level.GameOverTicks++
	}

	if gs.Level.Mode.HasSecondaryBody() && gs.Secondary.Y <= gs.Physics.Secondary.FloorY {
		gs.Secondary.VY = gs.Secondary.BounceVelocity
	}
}

// Finished 游戏结束后经过足够的慢 tick，展示层可以退出
func (ls *LevelSystem) Finished(gs *game.GameState) bool {
	return gs.IsGameOver() && gs.Level.GameOverTicks >= gs.Physics.Ticks.GameOverTicks
}
