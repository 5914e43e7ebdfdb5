package systems

import "time"

// TickGate 按固定间隔放行的闸门
// 每次查询最多放行一次，不补发错过的 tick
type TickGate struct {
	Interval time.Duration
	last     time.Duration
}

// Ready 距上次放行已过 Interval 时返回 true 并记录本次时间
func (g *TickGate) Ready(now time.Duration) bool {
	if now-g.last < g.Interval {
		return false
	}
	g.last = now
	return true
}

// Reset 以 now 作为上次放行时间
func (g *TickGate) Reset(now time.Duration) {
	g.last = now
}

// Ticks 一次 Update 中到期的 tick
type Ticks struct {
	Primary   bool
	Slow      bool
	Secondary bool
}

// TickScheduler 主 tick、慢 tick、副球体 tick 三个独立节拍
type TickScheduler struct {
	primary   TickGate
	slow      TickGate
	secondary TickGate
}

// NewTickScheduler 创建调度器
//
// 参数:
//   - primary: 主物理 tick 间隔
//   - slow: 慢 tick 间隔
//   - secondary: 副球体 tick 初始间隔
func NewTickScheduler(primary, slow, secondary time.Duration) *TickScheduler {
	return &TickScheduler{
		primary:   TickGate{Interval: primary},
		slow:      TickGate{Interval: slow},
		secondary: TickGate{Interval: secondary},
	}
}

// SetSecondaryInterval 修改副球体 tick 间隔（关卡转换时）
func (ts *TickScheduler) SetSecondaryInterval(d time.Duration) {
	ts.secondary.Interval = d
}

// Due 查询 now 时刻到期的 tick
func (ts *TickScheduler) Due(now time.Duration) Ticks {
	return Ticks{
		Primary:   ts.primary.Ready(now),
		Slow:      ts.slow.Ready(now),
		Secondary: ts.secondary.Ready(now),
	}
}

// Reset 以 now 重新开始三个节拍
func (ts *TickScheduler) Reset(now time.Duration) {
	ts.primary.Reset(now)
	ts.slow.Reset(now)
	ts.secondary.Reset(now)
}
