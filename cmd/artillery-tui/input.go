package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/decker502/artillery/pkg/types"
)

// actionForKey 终端按键到动作的映射
// 终端自带按键重复，每个按键事件对应一次动作
func actionForKey(key tcell.Key, r rune) types.Action {
	switch key {
	case tcell.KeyUp:
		return types.ActionZoomIn
	case tcell.KeyDown:
		return types.ActionZoomOut
	case tcell.KeyLeft:
		return types.ActionPanLeft
	case tcell.KeyRight:
		return types.ActionPanRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return types.ActionQuit
	case tcell.KeyRune:
	default:
		return types.ActionNone
	}

	switch r {
	case 'a', 'A':
		return types.ActionIncreaseAngle
	case 'b', 'B':
		return types.ActionDecreaseAngle
	case 'f', 'F':
		return types.ActionIncreasePower
	case 's', 'S':
		return types.ActionDecreasePower
	case ' ':
		return types.ActionFire
	case 'r', 'R':
		return types.ActionReload
	case 'q', 'Q':
		return types.ActionQuit
	}
	return types.ActionNone
}

const mouseButtons = tcell.Button1 | tcell.Button2 | tcell.Button3

// mouseState 跟踪鼠标按键，把终端的按键掩码转换为按下/松开边沿
type mouseState struct {
	held       tcell.ButtonMask
	dragStartX int
}

// mouseEdges 本次事件的按下和松开边沿
type mouseEdges struct {
	pressed, released tcell.ButtonMask
}

func (m *mouseState) update(buttons tcell.ButtonMask) mouseEdges {
	current := buttons & mouseButtons
	edges := mouseEdges{
		pressed:  current &^ m.held,
		released: m.held &^ current,
	}
	m.held = current
	return edges
}
