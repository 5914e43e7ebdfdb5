package utils

import "time"

// Clock 单调时钟来源
// 模拟核心只通过它查询经过时间，不直接调用 time.Now
type Clock interface {
	Now() time.Duration
}

// RealClock 基于系统单调时钟，返回自创建以来经过的时间
type RealClock struct {
	start time.Time
}

// NewRealClock 创建从当前时刻开始计时的时钟
func NewRealClock() *RealClock {
	return &RealClock{start: time.Now()}
}

// Now 返回自创建以来经过的时间
func (c *RealClock) Now() time.Duration {
	return time.Since(c.start)
}

// ManualClock 可手动推进的时钟，用于测试和无界面模拟
type ManualClock struct {
	now time.Duration
}

// NewManualClock 创建从 start 开始的手动时钟
func NewManualClock(start time.Duration) *ManualClock {
	return &ManualClock{now: start}
}

// Now 返回当前的虚拟时间
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Advance 推进虚拟时间
func (c *ManualClock) Advance(d time.Duration) {
	c.now += d
}

// Set 直接设置虚拟时间
func (c *ManualClock) Set(d time.Duration) {
	c.now = d
}
