package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/decker502/artillery/pkg/config"
	"github.com/decker502/artillery/pkg/sound"
	"github.com/decker502/artillery/pkg/systems"
	"github.com/decker502/artillery/pkg/types"
	"github.com/decker502/artillery/pkg/utils"
)

// GameScene 游戏主画面
//
// 职责：
//   - 把键盘/鼠标输入转换为模拟动作
//   - 每帧按时钟推进模拟
//   - 播放事件提示音
//   - 绘制模拟快照
type GameScene struct {
	sim      *systems.Simulation
	clock    utils.Clock
	sounds   *sound.SoundManager
	layout   config.Layout
	bindings []KeyBinding
	face     text.Face

	// 右键拖拽起点（屏幕 X）
	dragStartX float64
	dragging   bool
}

// NewGameScene 创建游戏画面
//
// 参数:
//   - sim: 模拟核心
//   - clock: 单调时钟，与创建 sim 时使用的是同一个
//   - sounds: 音效管理器，可为 nil
func NewGameScene(sim *systems.Simulation, clock utils.Clock, sounds *sound.SoundManager) *GameScene {
	return &GameScene{
		sim:      sim,
		clock:    clock,
		sounds:   sounds,
		layout:   config.DefaultLayout(),
		bindings: DefaultKeyBindings(),
		face:     text.NewGoXFace(basicfont.Face7x13),
	}
}

// Update 处理输入并推进模拟
func (s *GameScene) Update(deltaTime float64) {
	for _, action := range ActionsFor(s.bindings, inpututil.KeyPressDuration) {
		s.sim.Handle(action)
	}
	s.handleMouse()

	s.sim.Update(s.clock.Now())

	events := s.sim.Events()
	if s.sounds != nil {
		s.sounds.PlayAll(events)
	}
	for _, e := range events {
		log.Printf("[GameScene] Event: %s", e)
	}
}

// handleMouse 鼠标输入
//
//	左键按下瞄准，松开发射
//	中键装填
//	右键拖拽平移，松开时力度加一档
//	滚轮缩放
func (s *GameScene) handleMouse() {
	cx, cy := ebiten.CursorPosition()
	px, py := float64(cx), float64(cy)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		wx, wy := utils.ScreenToWorld(px, py, s.layout)
		s.sim.AimAt(wx, wy)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		s.sim.Handle(types.ActionFire)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		s.sim.Handle(types.ActionReload)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		s.dragStartX = px
		s.dragging = true
	}
	if s.dragging && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		s.sim.PanBy(DragPan(s.dragStartX, px, s.layout))
		s.sim.Handle(types.ActionCyclePower)
		s.dragging = false
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		s.sim.Scroll(dy)
	}
}

// DragPan 把右键拖拽的屏幕距离换算为镜头平移量
// 向右拖动画面跟随鼠标，镜头向左移动
func DragPan(startX, endX float64, layout config.Layout) float64 {
	return -(endX - startX) / layout.UnitsToPixelX
}

// Finished 模拟结束（游戏结束计时已满或玩家退出）
func (s *GameScene) Finished() bool {
	return s.sim.Finished()
}

// Simulation 返回场景驱动的模拟
func (s *GameScene) Simulation() *systems.Simulation {
	return s.sim
}
