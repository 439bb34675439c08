package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// RotationTier 旋转技巧奖励档位
//
// 空中累计旋转角度达到 MinDegrees 即命中该档位（首档 270° 即算完成一圈）。
type RotationTier struct {
	// MinDegrees 命中该档位所需的最小累计旋转角度（含边界）
	MinDegrees float32 `yaml:"minDegrees"`

	// Reward 命中该档位的基础分（连击倍率之前）
	Reward int `yaml:"reward"`

	// Label 播报文本，如 "DOUBLE 360!"
	Label string `yaml:"label"`
}

// SessionConfig 冲浪会话配置
//
// 启动时加载一次，之后只读。
// 配置文件位置: data/session.yaml
type SessionConfig struct {
	// BaseSpeed 浪面上自然加速到的巡航速度
	BaseSpeed float32 `yaml:"baseSpeed"`

	// MaxSpeed 速度上限（上推摇杆额外加速也不会超过）
	MaxSpeed float32 `yaml:"maxSpeed"`

	// RotationTurnRate 朝向插值速率，每 tick 的插值系数为 RotationTurnRate*dt（上限 1）
	RotationTurnRate float32 `yaml:"rotationTurnRate"`

	// AccelerationRate 加速度（单位/秒²）
	AccelerationRate float32 `yaml:"accelerationRate"`

	// WaveHeightThreshold 浪面与空中的分界高度
	WaveHeightThreshold float32 `yaml:"waveHeightThreshold"`

	// DeathHeight 低于此高度即坠毁
	DeathHeight float32 `yaml:"deathHeight"`

	// MinSafeEntryAngleDegrees 入水时与水平面的最小夹角
	MinSafeEntryAngleDegrees float32 `yaml:"minSafeEntryAngleDegrees"`

	// MaxLives 每局生命数
	MaxLives int `yaml:"maxLives"`

	// DeathLockDurationSeconds 坠毁后锁定输入、显示死亡文本的时长
	DeathLockDurationSeconds float32 `yaml:"deathLockDurationSeconds"`

	// AnnouncementDurationSeconds 技巧/连击播报的显示时长
	AnnouncementDurationSeconds float32 `yaml:"announcementDurationSeconds"`

	// Gravity 竖直方向重力加速度（负值向下）
	Gravity float32 `yaml:"gravity"`

	// StartPosition 出生点（也是每次坠毁后的复位点）
	StartPosition [3]float32 `yaml:"startPosition"`

	// TickRate 固定模拟频率（tick/秒）
	TickRate int `yaml:"tickRate"`

	// RotationTiers 旋转奖励档位，按 MinDegrees 严格递增排列
	RotationTiers []RotationTier `yaml:"rotationTiers"`
}

// DefaultSessionConfig 返回内置默认配置
func DefaultSessionConfig() *SessionConfig {
	return &SessionConfig{
		BaseSpeed:                   10,
		MaxSpeed:                    15,
		RotationTurnRate:            100,
		AccelerationRate:            3,
		WaveHeightThreshold:         5,
		DeathHeight:                 -5,
		MinSafeEntryAngleDegrees:    30,
		MaxLives:                    3,
		DeathLockDurationSeconds:    2,
		AnnouncementDurationSeconds: 2,
		Gravity:                     -9.81,
		StartPosition:               [3]float32{0, 0, 0},
		TickRate:                    50,
		RotationTiers: []RotationTier{
			{MinDegrees: 270, Reward: 10, Label: "360!"},
			{MinDegrees: 630, Reward: 100, Label: "DOUBLE 360!"},
			{MinDegrees: 990, Reward: 1000, Label: "TRIPLE 360!"},
		},
	}
}

// ErrInvalidSessionConfig 所有校验失败都包装此错误
var ErrInvalidSessionConfig = errors.New("invalid session config")

// LoadSessionConfig 从磁盘加载会话配置
//
// 参数:
//   - path: 配置文件路径（如 "data/session.yaml"）
//
// 返回:
//   - *SessionConfig: 校验通过的配置
//   - error: 读取、解析或校验失败
func LoadSessionConfig(path string) (*SessionConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read session config: %w", err)
	}
	return ParseSessionConfig(data)
}

// ParseSessionConfig 解析 YAML 格式的会话配置
//
// 文件中未出现的字段保留默认值（空文件即默认配置），未知字段视为错误（通常是拼写错误）。
func ParseSessionConfig(data []byte) (*SessionConfig, error) {
	cfg := DefaultSessionConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse session config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查项：
//   - 速度、加速度、转向速率为正，且 BaseSpeed <= MaxSpeed
//   - DeathHeight < WaveHeightThreshold
//   - MinSafeEntryAngleDegrees 在 [0, 90) 内
//   - MaxLives > 0，TickRate > 0
//   - 旋转档位非空、阈值严格递增、奖励为正、文本非空
func (c *SessionConfig) Validate() error {
	if c.BaseSpeed <= 0 {
		return invalidf("baseSpeed must be > 0, got %.2f", c.BaseSpeed)
	}
	if c.MaxSpeed < c.BaseSpeed {
		return invalidf("maxSpeed(%.2f) must be >= baseSpeed(%.2f)", c.MaxSpeed, c.BaseSpeed)
	}
	if c.AccelerationRate <= 0 {
		return invalidf("accelerationRate must be > 0, got %.2f", c.AccelerationRate)
	}
	if c.RotationTurnRate <= 0 {
		return invalidf("rotationTurnRate must be > 0, got %.2f", c.RotationTurnRate)
	}
	if c.DeathHeight >= c.WaveHeightThreshold {
		return invalidf("deathHeight(%.2f) must be below waveHeightThreshold(%.2f)",
			c.DeathHeight, c.WaveHeightThreshold)
	}
	if c.MinSafeEntryAngleDegrees < 0 || c.MinSafeEntryAngleDegrees >= 90 {
		return invalidf("minSafeEntryAngleDegrees must be in [0, 90), got %.2f", c.MinSafeEntryAngleDegrees)
	}
	if c.MaxLives <= 0 {
		return invalidf("maxLives must be > 0, got %d", c.MaxLives)
	}
	if c.DeathLockDurationSeconds < 0 {
		return invalidf("deathLockDurationSeconds must be >= 0, got %.2f", c.DeathLockDurationSeconds)
	}
	if c.AnnouncementDurationSeconds < 0 {
		return invalidf("announcementDurationSeconds must be >= 0, got %.2f", c.AnnouncementDurationSeconds)
	}
	if c.TickRate <= 0 {
		return invalidf("tickRate must be > 0, got %d", c.TickRate)
	}
	if c.StartPosition[1] < c.DeathHeight || c.StartPosition[1] >= c.WaveHeightThreshold {
		return invalidf("startPosition height %.2f must lie between deathHeight and waveHeightThreshold",
			c.StartPosition[1])
	}

	if len(c.RotationTiers) == 0 {
		return invalidf("rotationTiers must not be empty")
	}
	for i, tier := range c.RotationTiers {
		if tier.MinDegrees <= 0 {
			return invalidf("rotationTiers[%d].minDegrees must be > 0, got %.2f", i, tier.MinDegrees)
		}
		if tier.Reward <= 0 {
			return invalidf("rotationTiers[%d].reward must be > 0, got %d", i, tier.Reward)
		}
		if tier.Label == "" {
			return invalidf("rotationTiers[%d].label must not be empty", i)
		}
		if i > 0 && tier.MinDegrees <= c.RotationTiers[i-1].MinDegrees {
			return invalidf("rotationTiers thresholds must be strictly increasing: [%d]=%.2f after [%d]=%.2f",
				i, tier.MinDegrees, i-1, c.RotationTiers[i-1].MinDegrees)
		}
	}

	return nil
}

// FixedDeltaTime 返回固定 tick 时长（秒）
func (c *SessionConfig) FixedDeltaTime() float32 {
	return 1 / float32(c.TickRate)
}

// StartPositionVec 以向量形式返回出生点
func (c *SessionConfig) StartPositionVec() mgl32.Vec3 {
	return mgl32.Vec3(c.StartPosition)
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidSessionConfig, fmt.Sprintf(format, args...))
}
