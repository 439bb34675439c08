package systems

import (
	"github.com/chewxy/math32"

	"github.com/gonewx/wavesurf/pkg/components"
)

// HeightTracker 记录一次腾空中相对浪面分界线的最高高度
type HeightTracker struct {
	threshold float32
	state     components.HeightState
}

// NewHeightTracker 创建高度追踪器
//
// 参数:
//   - waveHeightThreshold: 浪面与空中的分界高度，得分按超出部分计算
func NewHeightTracker(waveHeightThreshold float32) *HeightTracker {
	return &HeightTracker{threshold: waveHeightThreshold}
}

// Start 以起跳时的高度作为最高点种子
func (h *HeightTracker) Start(currentAltitude float32) {
	h.state = components.HeightState{
		IsTracking:       true,
		MaxHeightReached: currentAltitude,
	}
}

// Update 用当前高度刷新最高点
//
// 返回:
//   - int: 当前最高点超出分界线的整数米数（向下取整，不小于 0）
//   - bool: 本次调用是否刷新了最高点（用于决定是否更新 HUD）
func (h *HeightTracker) Update(currentAltitude float32) (int, bool) {
	if !h.state.IsTracking {
		return 0, false
	}
	raised := false
	if currentAltitude > h.state.MaxHeightReached {
		h.state.MaxHeightReached = currentAltitude
		raised = true
	}
	return h.peakAboveThreshold(), raised
}

// Stop 结束追踪并返回高度得分 floor(max - threshold)，负数按 0 计
func (h *HeightTracker) Stop() int {
	if !h.state.IsTracking {
		return 0
	}
	score := h.peakAboveThreshold()
	h.state = components.HeightState{}
	return score
}

// IsTracking 是否正在追踪
func (h *HeightTracker) IsTracking() bool {
	return h.state.IsTracking
}

// State 返回状态副本
func (h *HeightTracker) State() components.HeightState {
	return h.state
}

func (h *HeightTracker) peakAboveThreshold() int {
	score := int(math32.Floor(h.state.MaxHeightReached - h.threshold))
	if score < 0 {
		return 0
	}
	return score
}
