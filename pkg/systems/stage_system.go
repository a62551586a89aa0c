package systems

import (
	"log"
	"time"

	"github.com/decker502/bdaygreet/pkg/components"
	"github.com/decker502/bdaygreet/pkg/config"
	"github.com/decker502/bdaygreet/pkg/utils"
)

// 阶段内的节点（按阶段时长的比例）
const (
	CountdownStart         = 3
	BirthdayBalloonAt      = 0.58 // 生日标题阶段放出气球的时间点
	WishBalloonAt          = 0.60 // 愿望阶段放出气球的时间点
	SparkProgressThreshold = 0.92 // 倒计时数字进度超过该值后开始消散

	birthdayRise    = 72.0 // 淡入时上移距离
	birthdayRiseOut = 90.0 // 淡出时继续上移距离
	wishRise        = 69.0
	wishRiseOut     = 88.0
)

// StageEventKind 阶段推进产生的事件
type StageEventKind int

const (
	// EventCountdownTick 倒计时减一（放出计数气球并清空火花）
	EventCountdownTick StageEventKind = iota
	// EventStageEntered 进入新阶段
	EventStageEntered
	// EventBirthdayBalloonDue 生日气球可以放出（只在不存在时生成）
	EventBirthdayBalloonDue
	// EventWishBalloonDue 愿望气球可以放出
	EventWishBalloonDue
)

// String 返回事件名称
func (k StageEventKind) String() string {
	switch k {
	case EventCountdownTick:
		return "CountdownTick"
	case EventStageEntered:
		return "StageEntered"
	case EventBirthdayBalloonDue:
		return "BirthdayBalloonDue"
	case EventWishBalloonDue:
		return "WishBalloonDue"
	default:
		return "Unknown"
	}
}

// StageEvent 阶段事件
type StageEvent struct {
	Kind      StageEventKind
	Stage     components.Stage // 事件发生后的阶段
	Countdown int              // 事件发生后的倒计时数字
}

// MessageFade 标题文字的淡入淡出状态
type MessageFade struct {
	Alpha   float64 // 0~1，乘到文字基础透明度上
	OffsetY float64 // 相对基准位置的竖直偏移（负值向上）
}

// StageSequencer 阶段序列
//
// 阶段只会向前推进：Start → Countdown → BirthdayMessage → WishMessage → Closing。
// Start → Countdown 由首次点击触发，其余转换都由 Advance 按经过时间判断。
// 所有时间都来自同一个单调时钟。
type StageSequencer struct {
	timings     config.Timings
	stage       components.Stage
	stageStart  time.Duration
	tickStart   time.Duration
	countdown   int
	showButtons bool
	started     bool
	events      []StageEvent
}

// NewStageSequencer 创建阶段序列，初始处于 Start 阶段
func NewStageSequencer(timings config.Timings) *StageSequencer {
	return &StageSequencer{
		timings:   timings,
		stage:     components.StageStart,
		countdown: CountdownStart,
		events:    make([]StageEvent, 0, 4),
	}
}

// Start 首次交互：进入倒计时
func (s *StageSequencer) Start(now time.Duration) {
	s.started = true
	s.restart(now)
	log.Printf("[StageSequencer] Started at %v", now)
}

// Reset Replay：回到倒计时开头并隐藏按钮
func (s *StageSequencer) Reset(now time.Duration) {
	s.restart(now)
	log.Printf("[StageSequencer] Reset at %v", now)
}

func (s *StageSequencer) restart(now time.Duration) {
	s.stage = components.StageCountdown
	s.countdown = CountdownStart
	s.stageStart = now
	s.tickStart = now
	s.showButtons = false
}

// Advance 按当前时间推进阶段，返回本帧产生的事件
// 返回的切片在下一次调用前有效
func (s *StageSequencer) Advance(now time.Duration) []StageEvent {
	s.events = s.events[:0]

	switch s.stage {
	case components.StageCountdown:
		if now-s.tickStart >= s.timings.CountdownInterval {
			s.countdown--
			s.tickStart = now
			s.emit(EventCountdownTick)
			if s.countdown <= 0 {
				s.countdown = 0
				s.enter(components.StageBirthdayMessage, now)
			}
		}

	case components.StageBirthdayMessage:
		elapsed := now - s.stageStart
		if fraction(elapsed, s.timings.BirthdayFade) >= BirthdayBalloonAt {
			s.emit(EventBirthdayBalloonDue)
		}
		if elapsed >= s.timings.BirthdayDuration() {
			s.enter(components.StageWishMessage, now)
		}

	case components.StageWishMessage:
		elapsed := now - s.stageStart
		if fraction(elapsed, s.timings.WishFade) >= WishBalloonAt {
			s.emit(EventWishBalloonDue)
		}
		if elapsed >= s.timings.WishDuration() {
			s.showButtons = true
			s.enter(components.StageClosing, now)
		}
	}

	return s.events
}

func (s *StageSequencer) enter(stage components.Stage, now time.Duration) {
	s.stage = stage
	s.stageStart = now
	s.emit(EventStageEntered)
	log.Printf("[StageSequencer] Entered %s at %v", stage, now)
}

func (s *StageSequencer) emit(kind StageEventKind) {
	s.events = append(s.events, StageEvent{Kind: kind, Stage: s.stage, Countdown: s.countdown})
}

// Stage 当前阶段
func (s *StageSequencer) Stage() components.Stage {
	return s.stage
}

// Countdown 当前倒计时数字
func (s *StageSequencer) Countdown() int {
	return s.countdown
}

// ShowButtons 是否显示右侧按钮（进入结束阶段后一直为 true，直到 Replay）
func (s *StageSequencer) ShowButtons() bool {
	return s.showButtons
}

// Started 是否已经过首次交互
func (s *StageSequencer) Started() bool {
	return s.started
}

// StageElapsed 当前阶段已经历的时间
func (s *StageSequencer) StageElapsed(now time.Duration) time.Duration {
	return now - s.stageStart
}

// CountdownProgress 当前倒计时数字的进度 0~1
func (s *StageSequencer) CountdownProgress(now time.Duration) float64 {
	return utils.Clamp01(fraction(now-s.tickStart, s.timings.CountdownInterval))
}

// SparksDue 倒计时数字即将切换，应补充消散火花
func (s *StageSequencer) SparksDue(now time.Duration) bool {
	return s.stage == components.StageCountdown &&
		s.countdown > 0 &&
		s.CountdownProgress(now) > SparkProgressThreshold
}

// MessageFade 标题文字的淡入淡出
//
// 淡入期间文字向上移动，淡出期间继续上移；非标题阶段返回零值。
func (s *StageSequencer) MessageFade(now time.Duration) MessageFade {
	var fade, fadeOut time.Duration
	var rise, riseOut float64
	switch s.stage {
	case components.StageBirthdayMessage:
		fade, fadeOut = s.timings.BirthdayFade, s.timings.BirthdayFadeOut
		rise, riseOut = birthdayRise, birthdayRiseOut
	case components.StageWishMessage:
		fade, fadeOut = s.timings.WishFade, s.timings.WishFadeOut
		rise, riseOut = wishRise, wishRiseOut
	default:
		return MessageFade{}
	}

	t := now - s.stageStart
	fadeIn := utils.Clamp01(fraction(t, s.timings.FadeIn))
	remain := utils.Clamp01(fraction(fade-t, fadeOut))
	return MessageFade{
		Alpha:   fadeIn * remain,
		OffsetY: utils.Lerp(0, -rise, fadeIn) - riseOut*(1-remain),
	}
}

func fraction(d, total time.Duration) float64 {
	if total <= 0 {
		return 1
	}
	return float64(d) / float64(total)
}
