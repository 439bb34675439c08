package game

import (
	"fmt"
	"log"
	"math"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/gonewx/wavesurf/pkg/utils"
)

// Settings 玩家偏好设置
// 只保存显示与音效偏好，不保存任何会话进度或分数
type Settings struct {
	// 音效设置
	SoundEnabled bool    `yaml:"soundEnabled"` // 技巧/坠毁提示音开关
	CueVolume    float64 `yaml:"cueVolume"`    // 提示音音量 0.0 ~ 1.0

	// 显示设置
	Fullscreen       bool `yaml:"fullscreen"`       // 启动时是否全屏
	ShowDebugOverlay bool `yaml:"showDebugOverlay"` // 是否显示调试信息（阶段、速度、朝向）
}

// DefaultSettings 返回默认设置
func DefaultSettings() *Settings {
	return &Settings{
		SoundEnabled:     true,
		CueVolume:        0.6,
		Fullscreen:       false,
		ShowDebugOverlay: false,
	}
}

// SettingsManager 设置管理器
// 负责偏好设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *Settings
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "preferences"
)

// NewSettingsManager 创建设置管理器，并尝试加载已保存的设置
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 加载失败不是致命错误，记录日志后使用默认设置。
func NewSettingsManager(gdataManager *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}
	return sm
}

// OpenSettingsManager 打开应用数据目录并创建设置管理器
//
// 存储不可用时退化为仅内存设置。
func OpenSettingsManager(appName string) *SettingsManager {
	if dir, err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[SettingsManager] Warning: %v", err)
	} else if dir != "" {
		log.Printf("[SettingsManager] Using storage directory %s", dir)
	}

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[SettingsManager] Warning: storage unavailable: %v (settings will not persist)", err)
		return NewSettingsManager(nil)
	}
	return NewSettingsManager(manager)
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或数据不存在，使用默认设置
//
// 返回：
//   - error: 如果读取或反序列化失败返回错误（此时设置已回退为默认值）
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	// 从默认值开始解码，旧版本缺少的字段保持默认
	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	loaded.CueVolume = clampVolume(loaded.CueVolume)

	sm.settings = loaded
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// Settings 获取当前设置
func (sm *SettingsManager) Settings() *Settings {
	return sm.settings
}

// SetSoundEnabled 设置提示音开关
//
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// SetCueVolume 设置提示音音量，超出 0.0 ~ 1.0 的值会被截断
func (sm *SettingsManager) SetCueVolume(volume float64) {
	sm.settings.CueVolume = clampVolume(volume)
}

// AdjustCueVolume 按步长调整提示音音量，返回调整后的值
//
// 结果保留一位小数，避免多次累加后出现 0.30000000000000004
func (sm *SettingsManager) AdjustCueVolume(delta float64) float64 {
	sm.SetCueVolume(math.Round((sm.settings.CueVolume+delta)*10) / 10)
	return sm.settings.CueVolume
}

// SetFullscreen 设置全屏模式
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// ToggleDebugOverlay 切换调试信息显示，返回切换后的状态
func (sm *SettingsManager) ToggleDebugOverlay() bool {
	sm.settings.ShowDebugOverlay = !sm.settings.ShowDebugOverlay
	return sm.settings.ShowDebugOverlay
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
