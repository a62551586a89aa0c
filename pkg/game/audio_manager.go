package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Track 可播放的音轨
// 真实实现包装 *audio.Player；音频文件缺失时使用静音音轨占位
type Track interface {
	Play()
	Stop()
	IsPlaying() bool
}

// playerTrack 包装 Ebitengine 播放器
type playerTrack struct {
	name   string
	player *audio.Player
	loop   bool // 播放到结尾后从头继续
}

func (t *playerTrack) Play() {
	t.player.Play()
}

// Stop 暂停并回到开头，下次 Play 从头播放
func (t *playerTrack) Stop() {
	t.player.Pause()
	if err := t.player.SetPosition(0); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind %s: %v", t.name, err)
	}
}

func (t *playerTrack) IsPlaying() bool {
	return t.player.IsPlaying()
}

// silentTrack 静音音轨，只记录播放状态
type silentTrack struct {
	playing bool
}

// NewSilentTrack 创建静音音轨
func NewSilentTrack() Track {
	return &silentTrack{}
}

func (t *silentTrack) Play()           { t.playing = true }
func (t *silentTrack) Stop()           { t.playing = false }
func (t *silentTrack) IsPlaying() bool { return t.playing }

// AudioManager 音频管理器
// 职责：
//   - 背景音乐的播放、停止与重新开始
//   - 可选曲目（Little Fun）的切换，同一时间只播放一首
//   - 记录最近一次选择的曲目
type AudioManager struct {
	background Track
	songs      []Track
	lastPlayed int
}

// NewAudioManager 创建音频管理器
//
// 参数：
//   - background: 背景音乐（可为 nil，视为静音）
//   - songs: 可选曲目，顺序与选歌弹窗中的行一致
func NewAudioManager(background Track, songs []Track) *AudioManager {
	if background == nil {
		background = NewSilentTrack()
	}
	for i, s := range songs {
		if s == nil {
			songs[i] = NewSilentTrack()
		}
	}
	return &AudioManager{
		background: background,
		songs:      songs,
		lastPlayed: -1,
	}
}

// PlayBackground 播放背景音乐（已在播放时不重复开始）
func (am *AudioManager) PlayBackground() {
	if am.background.IsPlaying() {
		return
	}
	am.background.Play()
	log.Printf("[AudioManager] Background music started")
}

// StopBackground 停止背景音乐
func (am *AudioManager) StopBackground() {
	am.background.Stop()
}

// RestartBackground 停止所有音轨后从头播放背景音乐
func (am *AudioManager) RestartBackground() {
	am.StopAll()
	am.background.Play()
	log.Printf("[AudioManager] Background music restarted")
}

// IsBackgroundPlaying 背景音乐是否正在播放
func (am *AudioManager) IsBackgroundPlaying() bool {
	return am.background.IsPlaying()
}

// StopAll 停止背景音乐和所有曲目
func (am *AudioManager) StopAll() {
	am.background.Stop()
	for _, s := range am.songs {
		s.Stop()
	}
}

// PlaySong 播放第 i 首曲目
// 该曲目总是从头开始；其它曲目与背景音乐都会停止
//
// 返回：
//   - bool: 索引无效时返回 false，不产生任何副作用
func (am *AudioManager) PlaySong(i int) bool {
	if i < 0 || i >= len(am.songs) {
		log.Printf("[AudioManager] Warning: song index %d out of range (%d songs)", i, len(am.songs))
		return false
	}

	// Stop 会回到开头，已播完的歌曲也能重新播放
	for _, s := range am.songs {
		s.Stop()
	}
	am.background.Stop()

	am.songs[i].Play()
	am.lastPlayed = i
	log.Printf("[AudioManager] Playing song %d", i)
	return true
}

// LastPlayed 最近一次选择的曲目索引，未选择过时为 -1
func (am *AudioManager) LastPlayed() int {
	return am.lastPlayed
}

// SongCount 可选曲目数量
func (am *AudioManager) SongCount() int {
	return len(am.songs)
}

// IsSongPlaying 第 i 首曲目是否正在播放
func (am *AudioManager) IsSongPlaying(i int) bool {
	if i < 0 || i >= len(am.songs) {
		return false
	}
	return am.songs[i].IsPlaying()
}
