package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/decker502/artillery/pkg/components"
	"github.com/decker502/artillery/pkg/config"
	"github.com/decker502/artillery/pkg/types"
)

// LevelState 关卡进度与计分
type LevelState struct {
	Mode       types.Mode
	Level      int
	Difficulty int
	Lives      int // 始终 >= 0
	Score      int

	Barriers components.Barriers

	// BaseGravity 装填时恢复的重力，Gravity 为当前生效的重力（可能被上升气流覆盖）
	BaseGravity float64
	Gravity     float64

	Won bool

	// GameOverTicks 进入游戏结束后经过的慢 tick 数
	GameOverTicks int
}

// BlowerState 上升气流覆盖状态
type BlowerState struct {
	Ticks    int  // 在气流带中累计的 tick 数
	Clearing bool // 下一个 tick 恢复基础重力
}

// GameState 整个模拟唯一持有的聚合状态
//
// 所有系统都只修改传入的 GameState，不持有自己的游戏状态。
// 不是并发安全的，只能在模拟所在的 goroutine 中访问。
type GameState struct {
	Physics *config.PhysicsConfig
	Levels  *config.LevelConfig

	Projectile components.Projectile
	Secondary  components.SecondaryBody
	Aim        components.AimVector
	Targets    []components.Target
	Level      LevelState
	Camera     components.CameraComponent
	Blower     BlowerState

	// ArrowFrame 鼓风机箭头动画帧
	ArrowFrame int

	// SecondaryInterval 副球体 tick 间隔（随关卡变化）
	SecondaryInterval time.Duration

	// LatchedTrigger 刚触发过转换、仍与炮弹接触的碰撞体，分离前不会再次触发
	LatchedTrigger string

	rng    *rand.Rand
	events []types.Event
}

// NewGameState 按配置创建开局状态
//
// 参数：
//   - physics: 物理常量，nil 时使用内置默认值
//   - levels: 关卡配置，nil 时使用内置默认值
//   - rng: 随机源（风力），nil 时使用固定种子 1
//
// 返回：
//   - *GameState: 新的游戏状态，炮弹停在炮口
func NewGameState(physics *config.PhysicsConfig, levels *config.LevelConfig, rng *rand.Rand) *GameState {
	if physics == nil {
		physics = config.DefaultPhysicsConfig()
	}
	if levels == nil {
		levels = config.DefaultLevelConfig()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	gs := &GameState{
		Physics: physics,
		Levels:  levels,
		rng:     rng,
	}

	start := levels.Initial
	gs.Level = LevelState{
		Mode:        start.StartMode,
		Level:       start.Level,
		Difficulty:  start.Difficulty,
		Lives:       start.Lives,
		BaseGravity: start.Gravity,
		Gravity:     start.Gravity,
	}
	gs.ResetBarriers()

	gs.Targets = make([]components.Target, 0, len(levels.Targets))
	for _, t := range levels.Targets {
		gs.Targets = append(gs.Targets, components.Target{ID: t.ID, X: t.X, Y: t.Y, Radius: t.Radius})
	}

	gs.Aim = components.AimVector{
		Angle: physics.Cannon.InitialAngle,
		Speed: physics.Cannon.InitialSpeed,
	}

	gs.Projectile.ResetFlight()
	gs.Projectile.Radius = physics.Projectile.Radius
	gs.Projectile.Friction = physics.Wind.Unit

	gs.ResetSecondary(start.SecondaryBounce)
	gs.SecondaryInterval = physics.Ticks.SecondaryInterval()

	gs.TrackMuzzle()
	return gs
}

// ResetBarriers 将两块挡板移回屏幕外的起始位置
func (gs *GameState) ResetBarriers() {
	gs.Level.Barriers = components.Barriers{
		UpY:   gs.Physics.Barrier.StartUpY,
		DownY: gs.Physics.Barrier.StartDownY,
	}
}

// ResetSecondary 将副球体放回发射台，以 bounce 作为落地速度和初速度
func (gs *GameState) ResetSecondary(bounce float64) {
	sc := gs.Physics.Secondary
	gs.Secondary = components.SecondaryBody{
		X:              sc.StartX,
		Y:              sc.StartY,
		VY:             bounce,
		BounceVelocity: bounce,
	}
}

// TrackMuzzle 未发射时让炮弹跟随炮口，速度跟随瞄准向量
func (gs *GameState) TrackMuzzle() {
	if gs.Projectile.InFlight {
		return
	}

	c := gs.Physics.Cannon
	rad := gs.Aim.Offset * c.DegreesPerStep * math.Pi / 180.0
	cos, sin := math.Cos(rad), math.Sin(rad)

	gs.Projectile.X = c.MuzzleX*cos - c.MuzzleY*sin + c.OriginX
	gs.Projectile.Y = c.MuzzleY*cos + c.MuzzleX*sin + c.OriginY
	gs.Projectile.VX, gs.Projectile.VY = gs.Aim.Components()
}

// IsGameOver 是否已进入游戏结束（失败或胜利）
func (gs *GameState) IsGameOver() bool {
	return gs.Level.Mode == types.ModeGameOver
}

// EnterGameOver 切换到游戏结束模式，之后不再接受发射
func (gs *GameState) EnterGameOver(won bool) {
	if gs.IsGameOver() {
		return
	}
	gs.Level.Mode = types.ModeGameOver
	gs.Level.Won = won
	gs.Level.GameOverTicks = 0
}

// ShotSpent 已发射的炮弹不可能再命中任何东西：静止，或从左右两侧、底部飞出
// 从顶部飞出的炮弹还会落回画面
func (gs *GameState) ShotSpent() bool {
	p := &gs.Projectile
	if !p.InFlight {
		return false
	}
	w := gs.Physics.World
	return p.Settled || math.Abs(p.X) > w.HalfWidth || p.Y < -w.HalfHeight
}

// ActiveTargets 返回当前模式下可触发转换的固定目标
func (gs *GameState) ActiveTargets() []components.Target {
	var active []components.Target
	for _, t := range gs.Targets {
		for _, tr := range gs.Levels.Transitions {
			if tr.FromMode == gs.Level.Mode && tr.Trigger == t.ID {
				active = append(active, t)
				break
			}
		}
	}
	return active
}

// RandomFriction 随机生成新的水平摩擦（风力）
func (gs *GameState) RandomFriction() float64 {
	w := gs.Physics.Wind
	if w.Steps <= 0 {
		return 0
	}
	return float64(gs.rng.Intn(w.Steps)) * w.Unit
}
