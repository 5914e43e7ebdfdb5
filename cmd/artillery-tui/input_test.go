package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/artillery/pkg/components"
	"github.com/decker502/artillery/pkg/config"
	"github.com/decker502/artillery/pkg/types"
)

// TestActionForKey 测试终端键位
func TestActionForKey(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		want types.Action
	}{
		{"a 抬高", tcell.KeyRune, 'a', types.ActionIncreaseAngle},
		{"B 压低", tcell.KeyRune, 'B', types.ActionDecreaseAngle},
		{"f 加力", tcell.KeyRune, 'f', types.ActionIncreasePower},
		{"s 减力", tcell.KeyRune, 's', types.ActionDecreasePower},
		{"空格发射", tcell.KeyRune, ' ', types.ActionFire},
		{"r 装填", tcell.KeyRune, 'r', types.ActionReload},
		{"q 退出", tcell.KeyRune, 'q', types.ActionQuit},
		{"Esc 退出", tcell.KeyEscape, 0, types.ActionQuit},
		{"上 放大", tcell.KeyUp, 0, types.ActionZoomIn},
		{"右 平移", tcell.KeyRight, 0, types.ActionPanRight},
		{"未绑定字母", tcell.KeyRune, 'z', types.ActionNone},
		{"未绑定按键", tcell.KeyF5, 0, types.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := actionForKey(tt.key, tt.r); got != tt.want {
				t.Errorf("actionForKey() = %s, want %s", got, tt.want)
			}
		})
	}
}

// TestMouseEdges 测试按下/松开边沿
func TestMouseEdges(t *testing.T) {
	var m mouseState

	e := m.update(tcell.Button1)
	if e.pressed != tcell.Button1 || e.released != 0 {
		t.Errorf("press: %+v", e)
	}

	e = m.update(tcell.Button1 | tcell.WheelUp)
	if e.pressed != 0 || e.released != 0 {
		t.Errorf("hold with wheel: %+v", e)
	}

	e = m.update(tcell.ButtonNone)
	if e.pressed != 0 || e.released != tcell.Button1 {
		t.Errorf("release: %+v", e)
	}
}

// TestCellAt 测试世界坐标到终端格子
func TestCellAt(t *testing.T) {
	layout := config.TerminalLayout(80, 20)

	x, y := cellAt(layout, components.CameraComponent{}, 0, 0)
	if x != 40 || y != 10 {
		t.Errorf("origin = (%d, %d), want (40, 10)", x, y)
	}

	x, y = cellAt(layout, components.CameraComponent{}, -8, 4)
	if x != 0 || y != 0 {
		t.Errorf("top-left = (%d, %d), want (0, 0)", x, y)
	}
}
