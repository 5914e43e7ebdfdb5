package types

// Action 离散输入动作
// 与具体输入设备无关：键盘、鼠标、终端按键最终都映射为 Action
type Action int

const (
	ActionNone Action = iota
	ActionIncreaseAngle
	ActionDecreaseAngle
	ActionIncreasePower
	ActionDecreasePower
	ActionCyclePower
	ActionFire
	ActionReload
	ActionQuit
	ActionZoomIn
	ActionZoomOut
	ActionPanLeft
	ActionPanRight
)

var actionNames = map[Action]string{
	ActionNone:          "none",
	ActionIncreaseAngle: "increase-angle",
	ActionDecreaseAngle: "decrease-angle",
	ActionIncreasePower: "increase-power",
	ActionDecreasePower: "decrease-power",
	ActionCyclePower:    "cycle-power",
	ActionFire:          "fire",
	ActionReload:        "reload",
	ActionQuit:          "quit",
	ActionZoomIn:        "zoom-in",
	ActionZoomOut:       "zoom-out",
	ActionPanLeft:       "pan-left",
	ActionPanRight:      "pan-right",
}

// String 返回动作名称
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction 根据名称查找动作，未知名称返回 ActionNone
func ParseAction(name string) Action {
	for a, n := range actionNames {
		if n == name {
			return a
		}
	}
	return ActionNone
}
