package systems

import (
	"github.com/decker502/artillery/pkg/components"
	"github.com/decker502/artillery/pkg/config"
	"github.com/decker502/artillery/pkg/game"
)

// CheckCollision 判断炮弹是否触碰以 (x, y) 为中心、半径为 r 的圆
//
// 参数:
//   - p: 炮弹
//   - x, y: 碰撞体中心
//   - r: 碰撞体半径
//
// 返回:
//   - bool: 两圆相交或相切时返回 true
func CheckCollision(p *components.Projectile, x, y, r float64) bool {
	return components.Distance(p.X, p.Y, x, y) <= r+p.Radius
}

// CollisionSystem 检测炮弹当前接触的碰撞体
type CollisionSystem struct{}

// NewCollisionSystem 创建碰撞检测系统
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// Detect 返回炮弹当前接触的所有碰撞体
//
// 固定目标以 ID 表示，副球体（仅在存在时）以 config.TriggerSecondary 表示。
// 是否触发转换由关卡系统根据当前模式决定。
//
// 参数:
//   - gs: 游戏状态
//
// 返回:
//   - []string: 接触的碰撞体，未发射时为 nil
func (cs *CollisionSystem) Detect(gs *game.GameState) []string {
	p := &gs.Projectile
	if !p.InFlight {
		return nil
	}

	var contacts []string
	for _, t := range gs.Targets {
		if CheckCollision(p, t.X, t.Y, t.Radius) {
			contacts = append(contacts, t.ID)
		}
	}

	if gs.Level.Mode.HasSecondaryBody() {
		b := gs.Secondary
		if CheckCollision(p, b.X, b.Y, gs.Physics.Secondary.Radius) {
			contacts = append(contacts, config.TriggerSecondary)
		}
	}
	return contacts
}
