package game

import "time"

// Clock 单调时钟
// 所有阶段计时、倒计时与光环动画都以 Clock.Now() 为准，
// 返回值是相对时钟起点的时长，不受系统时间调整影响
type Clock interface {
	Now() time.Duration
}

// MonotonicClock 基于 time.Since 的真实时钟
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock 创建从当前时刻开始计时的时钟
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Now 返回自创建以来经过的时间
func (c *MonotonicClock) Now() time.Duration {
	return time.Since(c.start)
}

// ManualClock 手动推进的时钟，用于测试和效果预览工具
type ManualClock struct {
	now time.Duration
}

// Now 返回当前手动设置的时间
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Advance 将时钟向前推进 d
func (c *ManualClock) Advance(d time.Duration) {
	c.now += d
}

// Set 直接设置当前时间
func (c *ManualClock) Set(now time.Duration) {
	c.now = now
}
