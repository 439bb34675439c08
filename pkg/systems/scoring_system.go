package systems

import (
	"fmt"
	"log"
	"strings"

	"github.com/gonewx/wavesurf/pkg/components"
	"github.com/gonewx/wavesurf/pkg/config"
)

// DeathAnnouncementText 坠毁时显示的文本
const DeathAnnouncementText = "WIPEOUT!"

// DisplaySink HUD 文本输出
//
// 每个事件一次调用，不关心返回值。实现方在字段不存在时应记录日志并忽略，
// 不能中断模拟 tick。
type DisplaySink interface {
	SetVisible(field components.TextField, visible bool)
	SetText(field components.TextField, text string)
}

// JumpResult 一次跳跃的结算结果
type JumpResult struct {
	HeightPoints   int
	RotationReward int // 命中档位的基础分，0 表示未命中
	RotationPoints int // 基础分 × 连击数
	ComboCount     int
	Label          string
}

// ScoringSystem 分数、连击与生命
//
// 跨跳跃保留分数与连击，生命耗尽时分数清零、生命回满。
type ScoringSystem struct {
	cfg     *config.SessionConfig
	display DisplaySink

	score components.ScoreState
	lives components.LivesState

	rotationTimer components.AnnouncementTimer
	comboTimer    components.AnnouncementTimer
}

// NewScoringSystem 创建计分系统，生命初始化为 MaxLives
//
// 参数:
//   - cfg: 已校验的会话配置
//   - display: HUD 输出
func NewScoringSystem(cfg *config.SessionConfig, display DisplaySink) *ScoringSystem {
	return &ScoringSystem{
		cfg:     cfg,
		display: display,
		lives: components.LivesState{
			CurrentLives: cfg.MaxLives,
			MaxLives:     cfg.MaxLives,
		},
	}
}

// Reset 回到会话初始状态并刷新全部相关 HUD 字段
func (s *ScoringSystem) Reset() {
	s.score = components.ScoreState{}
	s.lives.CurrentLives = s.lives.MaxLives
	s.hideAnnouncements()
	s.publishScore()
	s.publishLives()
}

// RewardForRotation 按阈值从高到低查找命中的档位（含边界）
//
// 返回:
//   - config.RotationTier: 命中的档位
//   - bool: 是否命中任一档位
func (s *ScoringSystem) RewardForRotation(totalRotationDegrees float32) (config.RotationTier, bool) {
	tiers := s.cfg.RotationTiers
	for i := len(tiers) - 1; i >= 0; i-- {
		if totalRotationDegrees >= tiers[i].MinDegrees {
			return tiers[i], true
		}
	}
	return config.RotationTier{}, false
}

// SettleJump 入水时结算一次跳跃
//
// 高度分无条件加入总分；旋转奖励命中时连击 +1（上一跳未命中则从 1 开始），
// 得分为基础分 × 连击数；未命中时连击清零并隐藏连击徽章。
func (s *ScoringSystem) SettleJump(heightScore int, totalRotationDegrees float32) JumpResult {
	result := JumpResult{}

	if heightScore > 0 {
		s.score.TotalScore += heightScore
		result.HeightPoints = heightScore
		s.publishScore()
	}

	tier, ok := s.RewardForRotation(totalRotationDegrees)
	if !ok {
		s.score.ComboCount = 0
		s.score.LastJumpEarnedRotationReward = false
		s.publishCombo()
		return result
	}

	if s.score.LastJumpEarnedRotationReward {
		s.score.ComboCount++
	} else {
		s.score.ComboCount = 1
	}

	points := tier.Reward * s.score.ComboCount
	s.score.TotalScore += points
	s.score.LastJumpEarnedRotationReward = true
	s.publishScore()
	s.publishCombo()

	s.display.SetText(components.TextRotationAnnouncement, FormatTrickAnnouncement(tier.Label, s.score.ComboCount, points))
	s.display.SetVisible(components.TextRotationAnnouncement, true)
	s.rotationTimer.Start()

	result.RotationReward = tier.Reward
	result.RotationPoints = points
	result.ComboCount = s.score.ComboCount
	result.Label = tier.Label

	log.Printf("[ScoringSystem] %s %.0f° → +%d (combo x%d), total %d",
		tier.Label, totalRotationDegrees, points, s.score.ComboCount, s.score.TotalScore)
	return result
}

// OnDeath 扣除一条生命
//
// 生命归零时生命回满、分数清零。连击总是清零。
//
// 返回:
//   - bool: 本次死亡是否导致游戏结束（生命耗尽）
func (s *ScoringSystem) OnDeath() bool {
	s.lives.CurrentLives--

	gameOver := s.lives.CurrentLives <= 0
	if gameOver {
		log.Printf("[ScoringSystem] Game over, final score %d", s.score.TotalScore)
		s.lives.CurrentLives = s.lives.MaxLives
		s.score.TotalScore = 0
		s.publishScore()
	}

	s.score.ComboCount = 0
	s.score.LastJumpEarnedRotationReward = false
	s.hideAnnouncements()

	s.publishLives()
	s.display.SetText(components.TextDeathAnnouncement, DeathAnnouncementText)
	s.display.SetVisible(components.TextDeathAnnouncement, true)
	return gameOver
}

// Update 推进播报计时器，到期后隐藏对应字段
func (s *ScoringSystem) Update(deltaTime float32) {
	duration := s.cfg.AnnouncementDurationSeconds
	if s.rotationTimer.Advance(deltaTime, duration) {
		s.display.SetVisible(components.TextRotationAnnouncement, false)
	}
	if s.comboTimer.Advance(deltaTime, duration) {
		s.display.SetVisible(components.TextComboAnnouncement, false)
	}
}

// Score 返回分数状态副本
func (s *ScoringSystem) Score() components.ScoreState {
	return s.score
}

// Lives 返回生命状态副本
func (s *ScoringSystem) Lives() components.LivesState {
	return s.lives
}

func (s *ScoringSystem) publishScore() {
	s.display.SetText(components.TextScore, fmt.Sprintf("Score: %d", s.score.TotalScore))
}

func (s *ScoringSystem) publishLives() {
	s.display.SetText(components.TextLives, fmt.Sprintf("Lives: %d", s.lives.CurrentLives))
}

// publishCombo 连击数大于 1 时显示徽章，否则隐藏
func (s *ScoringSystem) publishCombo() {
	if s.score.ComboCount > 1 {
		s.display.SetText(components.TextComboAnnouncement, fmt.Sprintf("COMBO x%d", s.score.ComboCount))
		s.display.SetVisible(components.TextComboAnnouncement, true)
		s.comboTimer.Start()
		return
	}
	s.display.SetVisible(components.TextComboAnnouncement, false)
	s.comboTimer.Stop()
}

func (s *ScoringSystem) hideAnnouncements() {
	s.display.SetVisible(components.TextRotationAnnouncement, false)
	s.display.SetVisible(components.TextComboAnnouncement, false)
	s.rotationTimer.Stop()
	s.comboTimer.Stop()
}

// FormatTrickAnnouncement 生成技巧播报文本
//
// 格式: "{档位}\n[COMBO x{n}!\n]+{分数} POINTS!"，连击行仅在连击数大于 1 时出现。
func FormatTrickAnnouncement(label string, comboCount, points int) string {
	var b strings.Builder
	b.WriteString(label)
	b.WriteString("\n")
	if comboCount > 1 {
		fmt.Fprintf(&b, "COMBO x%d!\n", comboCount)
	}
	fmt.Fprintf(&b, "+%d POINTS!", points)
	return b.String()
}
