// Package audio 为 HUD 事件播放简短的提示音
package audio

import (
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/gonewx/wavesurf/pkg/components"
	"github.com/gonewx/wavesurf/pkg/systems"
)

const sampleRate = beep.SampleRate(44100)

// 提示音时长
const (
	launchToneDuration    = 60 * time.Millisecond
	trickLowToneDuration  = 80 * time.Millisecond
	trickHighToneDuration = 120 * time.Millisecond
	wipeoutToneDuration   = 300 * time.Millisecond
)

// Cue 提示音类型
type Cue int

const (
	CueLaunch Cue = iota
	CueTrick
	CueWipeout
)

// cueForField 字段从隐藏变为可见时播放的提示音
var cueForField = map[components.TextField]Cue{
	components.TextJumpHeight:           CueLaunch,
	components.TextRotationAnnouncement: CueTrick,
	components.TextDeathAnnouncement:    CueWipeout,
}

// CuePlayer HUD 输出装饰器
//
// 把所有写入转发给内层 DisplaySink，同时在腾空、技巧播报、坠毁文本出现时播放提示音。
// 音频设备不可用时只转发。
type CuePlayer struct {
	inner systems.DisplaySink

	mu      sync.Locker // 保护 mixer，真实设备下为 speaker 的锁
	mixer   *beep.Mixer
	enabled bool
	volume  float64

	visible map[components.TextField]bool
}

// speakerLocker 把 speaker.Lock/Unlock 包装为 sync.Locker
type speakerLocker struct{}

func (speakerLocker) Lock()   { speaker.Lock() }
func (speakerLocker) Unlock() { speaker.Unlock() }

// NewCuePlayer 初始化扬声器并创建提示音播放器
//
// 初始化失败不是致命错误：记录日志后返回仅转发的播放器。
func NewCuePlayer(inner systems.DisplaySink, volume float64) *CuePlayer {
	mixer := &beep.Mixer{}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Printf("[CuePlayer] Audio initialization failed: %v (cues disabled)", err)
		return newCuePlayer(inner, nil, nil, volume)
	}
	speaker.Play(mixer)
	log.Printf("[CuePlayer] Speaker ready at %d Hz", sampleRate)
	return newCuePlayer(inner, mixer, speakerLocker{}, volume)
}

func newCuePlayer(inner systems.DisplaySink, mixer *beep.Mixer, mu sync.Locker, volume float64) *CuePlayer {
	return &CuePlayer{
		inner:   inner,
		mu:      mu,
		mixer:   mixer,
		enabled: mixer != nil,
		volume:  volume,
		visible: make(map[components.TextField]bool),
	}
}

// SetVisible 转发可见性；字段由隐藏变为可见时播放对应提示音
func (p *CuePlayer) SetVisible(field components.TextField, visible bool) {
	wasVisible := p.visible[field]
	p.visible[field] = visible
	p.inner.SetVisible(field, visible)

	if !visible || wasVisible {
		return
	}
	if cue, ok := cueForField[field]; ok {
		p.Play(cue)
	}
}

// SetText 直接转发
func (p *CuePlayer) SetText(field components.TextField, text string) {
	p.inner.SetText(field, text)
}

// SetEnabled 开关提示音（设备不可用时保持关闭）
func (p *CuePlayer) SetEnabled(enabled bool) {
	p.enabled = enabled && p.mixer != nil
}

// Enabled 提示音是否开启
func (p *CuePlayer) Enabled() bool {
	return p.enabled
}

// SetVolume 设置音量，只影响之后播放的提示音
func (p *CuePlayer) SetVolume(volume float64) {
	p.volume = math.Max(0, math.Min(volume, 1))
}

// Play 播放提示音
func (p *CuePlayer) Play(cue Cue) {
	if !p.enabled {
		return
	}
	streamer := withVolume(cueStreamer(cue), p.volume)
	if streamer == nil {
		return
	}

	p.mu.Lock()
	p.mixer.Add(streamer)
	p.mu.Unlock()
}

// Close 停止播放并释放扬声器
func (p *CuePlayer) Close() {
	if p.mixer == nil {
		return
	}
	p.mu.Lock()
	p.mixer.Clear()
	p.mu.Unlock()
	if _, ok := p.mu.(speakerLocker); ok {
		speaker.Close()
	}
	p.mixer = nil
	p.enabled = false
}

// cueStreamer 生成提示音，正弦波生成失败时返回 nil
func cueStreamer(cue Cue) beep.Streamer {
	switch cue {
	case CueLaunch:
		return tone(440, launchToneDuration)
	case CueTrick:
		low, high := tone(660, trickLowToneDuration), tone(990, trickHighToneDuration)
		if low == nil || high == nil {
			return nil
		}
		return beep.Seq(low, high)
	case CueWipeout:
		return tone(196, wipeoutToneDuration)
	default:
		return nil
	}
}

func tone(freq float64, duration time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		log.Printf("[CuePlayer] Failed to create %.0f Hz tone: %v", freq, err)
		return nil
	}
	return beep.Take(sampleRate.N(duration), sine)
}

// withVolume 线性音量转换为 effects.Volume 的 log2 表示，0 为静音
func withVolume(s beep.Streamer, volume float64) beep.Streamer {
	if s == nil {
		return nil
	}
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(math.Min(volume, 1))}
}
