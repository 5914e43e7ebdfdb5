package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/artillery/pkg/types"
)

// KeyBinding 键盘按键到动作的映射
type KeyBinding struct {
	Key    ebiten.Key
	Action types.Action
	Repeat bool // 按住时连续触发
}

// DefaultKeyBindings 默认键位
//
//	A / B        抬高 / 压低炮管
//	F / S        加大 / 减小力度
//	Space        发射
//	R            装填
//	↑ / ↓        放大 / 缩小
//	← / →        平移
//	Esc / Q      退出
func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Key: ebiten.KeyA, Action: types.ActionIncreaseAngle, Repeat: true},
		{Key: ebiten.KeyB, Action: types.ActionDecreaseAngle, Repeat: true},
		{Key: ebiten.KeyF, Action: types.ActionIncreasePower, Repeat: true},
		{Key: ebiten.KeyS, Action: types.ActionDecreasePower, Repeat: true},
		{Key: ebiten.KeySpace, Action: types.ActionFire},
		{Key: ebiten.KeyR, Action: types.ActionReload},
		{Key: ebiten.KeyArrowUp, Action: types.ActionZoomIn, Repeat: true},
		{Key: ebiten.KeyArrowDown, Action: types.ActionZoomOut, Repeat: true},
		{Key: ebiten.KeyArrowLeft, Action: types.ActionPanLeft, Repeat: true},
		{Key: ebiten.KeyArrowRight, Action: types.ActionPanRight, Repeat: true},
		{Key: ebiten.KeyEscape, Action: types.ActionQuit},
		{Key: ebiten.KeyQ, Action: types.ActionQuit},
	}
}

// shouldFire 根据按住的帧数判断本帧是否触发
// 第 1 帧立即触发，按住 30 帧后每 3 帧触发一次
func shouldFire(b KeyBinding, pressDuration int) bool {
	if pressDuration == 1 {
		return true
	}
	return b.Repeat && pressDuration >= 30 && pressDuration%3 == 0
}

// ActionsFor 根据每个按键的按住帧数返回本帧的动作
//
// 参数:
//   - bindings: 键位表
//   - pressDuration: 查询按键按住帧数的函数（通常是 inpututil.KeyPressDuration）
func ActionsFor(bindings []KeyBinding, pressDuration func(ebiten.Key) int) []types.Action {
	var actions []types.Action
	for _, b := range bindings {
		if shouldFire(b, pressDuration(b.Key)) {
			actions = append(actions, b.Action)
		}
	}
	return actions
}
