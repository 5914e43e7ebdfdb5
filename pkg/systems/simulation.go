package systems

import (
	"log"
	"time"

	"github.com/decker502/artillery/pkg/game"
	"github.com/decker502/artillery/pkg/types"
)

// Simulation 模拟核心的唯一入口
//
// 展示层只需要：
//   - 每帧调用 Update(clock.Now())
//   - 把输入转换为 Handle / AimAt / Scroll / PanBy
//   - 用 Snapshot 渲染，用 Events 播放音效
//
// 单 goroutine 使用，不加锁。
type Simulation struct {
	gs        *game.GameState
	scheduler *TickScheduler

	kinematics *KinematicsSystem
	collision  *CollisionSystem
	level      *LevelSystem
	aim        *AimSystem
	secondary  *SecondaryBodySystem
	camera     *CameraSystem

	quit bool
}

// NewSimulation 创建模拟
//
// 参数:
//   - gs: 游戏状态，由模拟独占修改
//   - start: 时钟起点，三个节拍从此刻开始计时
func NewSimulation(gs *game.GameState, start time.Duration) *Simulation {
	t := gs.Physics.Ticks
	s := &Simulation{
		gs:         gs,
		scheduler:  NewTickScheduler(t.PrimaryInterval(), t.SlowInterval(), gs.SecondaryInterval),
		kinematics: NewKinematicsSystem(),
		collision:  NewCollisionSystem(),
		level:      NewLevelSystem(),
		aim:        NewAimSystem(),
		secondary:  NewSecondaryBodySystem(),
		camera:     NewCameraSystem(),
	}
	s.scheduler.Reset(start)
	return s
}

// Update 按时钟推进到期的 tick
//
// 同一次调用中主 tick 总是先于慢 tick 和副球体 tick 执行。
//
// 参数:
//   - now: 单调时钟读数
//
// 返回:
//   - Ticks: 本次执行了哪些 tick
func (s *Simulation) Update(now time.Duration) Ticks {
	due := s.scheduler.Due(now)

	if due.Primary {
		s.stepPrimary()
	}
	if due.Slow {
		s.level.SlowTick(s.gs)
	}
	if due.Secondary {
		s.secondary.Update(s.gs)
	}

	s.scheduler.SetSecondaryInterval(s.gs.SecondaryInterval)
	return due
}

func (s *Simulation) stepPrimary() {
	s.kinematics.Update(s.gs)
	contacts := s.collision.Detect(s.gs)
	s.level.Update(s.gs, contacts)
}

// Handle 处理一个离散输入动作
//
// 返回:
//   - bool: 动作是否改变了状态
func (s *Simulation) Handle(action types.Action) bool {
	gs := s.gs
	cam := gs.Physics.Camera

	switch action {
	case types.ActionIncreaseAngle:
		return s.aim.NudgeAngle(gs, 1)
	case types.ActionDecreaseAngle:
		return s.aim.NudgeAngle(gs, -1)
	case types.ActionIncreasePower:
		return s.aim.NudgePower(gs, 1)
	case types.ActionDecreasePower:
		return s.aim.NudgePower(gs, -1)
	case types.ActionCyclePower:
		return s.aim.CyclePower(gs)
	case types.ActionFire:
		return gs.FireShot()
	case types.ActionReload:
		if gs.IsGameOver() {
			return false
		}
		gs.Reload()
		return true
	case types.ActionZoomIn:
		return s.camera.Zoom(gs, cam.ZoomStep)
	case types.ActionZoomOut:
		return s.camera.Zoom(gs, -cam.ZoomStep)
	case types.ActionPanLeft:
		return s.camera.Pan(gs, -cam.PanStep)
	case types.ActionPanRight:
		return s.camera.Pan(gs, cam.PanStep)
	case types.ActionQuit:
		if !s.quit {
			log.Printf("[Simulation] Quit requested (score=%d)", gs.Level.Score)
		}
		s.quit = true
		return true
	}
	return false
}

// AimAt 指针瞄准（世界坐标）
func (s *Simulation) AimAt(wx, wy float64) bool {
	return s.aim.AimAt(s.gs, wx, wy)
}

// Scroll 滚轮缩放
//
// 参数:
//   - dy: 滚轮纵向偏移，正值放大
func (s *Simulation) Scroll(dy float64) bool {
	return s.camera.Zoom(s.gs, dy*s.gs.Physics.Camera.ScrollZoom)
}

// PanBy 拖拽平移（世界单位）
func (s *Simulation) PanBy(dx float64) bool {
	return s.camera.Pan(s.gs, dx)
}

// Snapshot 当前状态的只读副本
func (s *Simulation) Snapshot() game.Snapshot {
	return s.gs.Snapshot()
}

// Events 取走自上次调用以来发生的事件
func (s *Simulation) Events() []types.Event {
	return s.gs.DrainEvents()
}

// Finished 游戏结束计时已满或玩家要求退出
func (s *Simulation) Finished() bool {
	return s.quit || s.level.Finished(s.gs)
}

// State 返回底层游戏状态（测试和工具使用）
func (s *Simulation) State() *game.GameState {
	return s.gs
}
