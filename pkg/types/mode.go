// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "fmt"

// Mode 定义当前的玩法配置（关卡形态）
//
// 四种可玩形态加一个终止态，构成封闭枚举：
// 任何不在此列表中的值都视为非法。
type Mode int

const (
	// ModeCannon 纯加农炮：只有目标 A
	ModeCannon Mode = iota
	// ModeBlower 鼓风机：目标 B + 两块移动挡板 + 上升气流
	ModeBlower
	// ModeShooter 发射台：目标为弹跳的副球体
	ModeShooter
	// ModeShooterBlower 发射台 + 挡板组合
	ModeShooterBlower
	// ModeGameOver 终止态，不再接受发射
	ModeGameOver
)

// modeNames 模式名称（配置文件中使用）
var modeNames = [...]string{
	ModeCannon:        "cannon",
	ModeBlower:        "blower",
	ModeShooter:       "shooter",
	ModeShooterBlower: "shooter-blower",
	ModeGameOver:      "game-over",
}

// String 返回模式的配置名称
func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Valid 检查模式是否属于封闭枚举
func (m Mode) Valid() bool {
	return m >= ModeCannon && m <= ModeGameOver
}

// Playable 返回该模式下是否可以继续发射
func (m Mode) Playable() bool {
	return m.Valid() && m != ModeGameOver
}

// HasBarriers 返回该模式是否启用两块移动挡板
func (m Mode) HasBarriers() bool {
	return m == ModeBlower || m == ModeShooterBlower
}

// HasSecondaryBody 返回该模式是否启用副球体
func (m Mode) HasSecondaryBody() bool {
	return m == ModeShooter || m == ModeShooterBlower
}

// ParseMode 将配置名称解析为 Mode
//
// 参数：
//   - name: 模式名称，如 "cannon", "shooter-blower"
//
// 返回：
//   - Mode: 解析结果
//   - bool: 名称是否合法
func ParseMode(name string) (Mode, bool) {
	for m, n := range modeNames {
		if n == name {
			return Mode(m), true
		}
	}
	return ModeCannon, false
}
