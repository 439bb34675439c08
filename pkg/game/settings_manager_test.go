package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestStorage 在临时目录下打开 gdata 存储
func openTestStorage(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_DATA_HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return manager
}

// TestDefaultSettings 测试默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if !settings.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if settings.CueVolume != 0.6 {
		t.Errorf("CueVolume: got %v, want 0.6", settings.CueVolume)
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if settings.ShowDebugOverlay {
		t.Error("ShowDebugOverlay: got true, want false")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	if sm.Settings() == nil {
		t.Fatal("Settings() returned nil in degraded mode")
	}
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should return nil, got: %v", err)
	}

	sm.SetFullscreen(true)
	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode should return nil, got: %v", err)
	}
	if sm.Settings().Fullscreen {
		t.Error("After Load() in degraded mode, Fullscreen: got true, want false")
	}
}

// TestSettingsLoadSave 测试保存后重新加载
func TestSettingsLoadSave(t *testing.T) {
	manager := openTestStorage(t, "wavesurf_test_settings")

	sm1 := NewSettingsManager(manager)
	sm1.SetSoundEnabled(false)
	sm1.SetCueVolume(0.25)
	sm1.SetFullscreen(true)
	sm1.ToggleDebugOverlay()

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2 := NewSettingsManager(manager)
	settings := sm2.Settings()

	if settings.SoundEnabled {
		t.Error("Loaded SoundEnabled: got true, want false")
	}
	if settings.CueVolume != 0.25 {
		t.Errorf("Loaded CueVolume: got %v, want 0.25", settings.CueVolume)
	}
	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
	if !settings.ShowDebugOverlay {
		t.Error("Loaded ShowDebugOverlay: got false, want true")
	}
}

// TestSettingsLoadPartialData 旧数据缺少的字段保持默认值
func TestSettingsLoadPartialData(t *testing.T) {
	manager := openTestStorage(t, "wavesurf_test_partial")

	if err := manager.SaveObjectProp(settingsObject, settingsProperty, []byte("fullscreen: true\ncueVolume: 3\n")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	settings := NewSettingsManager(manager).Settings()
	if !settings.Fullscreen {
		t.Error("Fullscreen: got false, want true")
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled should keep its default when missing")
	}
	if settings.CueVolume != 1.0 {
		t.Errorf("CueVolume: got %v, want clamped 1.0", settings.CueVolume)
	}
}

// TestSettingsLoadCorruptData 损坏的数据回退到默认设置
func TestSettingsLoadCorruptData(t *testing.T) {
	manager := openTestStorage(t, "wavesurf_test_corrupt")

	if err := manager.SaveObjectProp(settingsObject, settingsProperty, []byte("fullscreen: [unclosed")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm := NewSettingsManager(manager)
	if sm.Settings().Fullscreen {
		t.Error("corrupt data should fall back to defaults")
	}
	if err := sm.Load(); err == nil {
		t.Error("Load() on corrupt data should return an error")
	}
}

// TestToggleDebugOverlay 测试调试信息开关
func TestToggleDebugOverlay(t *testing.T) {
	sm := NewSettingsManager(nil)

	if !sm.ToggleDebugOverlay() {
		t.Error("first toggle: got false, want true")
	}
	if sm.ToggleDebugOverlay() {
		t.Error("second toggle: got true, want false")
	}
}

// TestClampVolume 测试 clampVolume 辅助函数
func TestClampVolume(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{0.5, 0.5},
		{0.0, 0.0},
		{1.0, 1.0},
		{-1.0, 0.0},
		{2.0, 1.0},
		{0.001, 0.001},
	}

	for _, tt := range tests {
		if result := clampVolume(tt.input); result != tt.expected {
			t.Errorf("clampVolume(%v): got %v, want %v", tt.input, result, tt.expected)
		}
	}
}

// TestAdjustCueVolume 测试按步长调整音量并截断到有效范围
func TestAdjustCueVolume(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		delta float64
		want  float64
	}{
		{"step up", 0.6, 0.1, 0.7},
		{"step down", 0.6, -0.1, 0.5},
		{"clamp at max", 0.95, 0.1, 1.0},
		{"clamp at zero", 0.05, -0.1, 0.0},
		{"rounds accumulated error", 0.2, 0.1, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSettingsManager(nil)
			sm.SetCueVolume(tt.start)
			if got := sm.AdjustCueVolume(tt.delta); got != tt.want {
				t.Errorf("AdjustCueVolume(%v) from %v = %v, want %v", tt.delta, tt.start, got, tt.want)
			}
			if sm.Settings().CueVolume != tt.want {
				t.Errorf("stored CueVolume = %v, want %v", sm.Settings().CueVolume, tt.want)
			}
		})
	}
}
