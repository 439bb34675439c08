package components

// ScoreState 分数与连击状态
// 跨跳跃保留，生命耗尽时分数清零
type ScoreState struct {
	TotalScore int

	// ComboCount 连续获得旋转奖励的跳跃数；任何一次未达最低档位的落水都会清零
	ComboCount int

	LastJumpEarnedRotationReward bool
}

// LivesState 生命状态，CurrentLives ∈ [0, MaxLives]
type LivesState struct {
	CurrentLives int
	MaxLives     int
}

// AnnouncementTimer 播报文本的自动隐藏计时器
type AnnouncementTimer struct {
	Active  bool
	Elapsed float32
}

// Start 重新开始计时
func (t *AnnouncementTimer) Start() {
	t.Active = true
	t.Elapsed = 0
}

// Stop 停止计时
func (t *AnnouncementTimer) Stop() {
	t.Active = false
	t.Elapsed = 0
}

// Advance 推进计时器，到期时返回 true（只返回一次）
func (t *AnnouncementTimer) Advance(dt, duration float32) bool {
	if !t.Active {
		return false
	}
	t.Elapsed += dt
	if t.Elapsed >= duration {
		t.Stop()
		return true
	}
	return false
}
