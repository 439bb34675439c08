//go:build !mobile

package utils

import "testing"

// TestIsMobile_Desktop 测试桌面端编译时 IsMobile() 的结果
func TestIsMobile_Desktop(t *testing.T) {
	t.Setenv(MobileEmulateEnv, "")
	if IsMobile() {
		t.Error("IsMobile() should return false on desktop")
	}

	t.Setenv(MobileEmulateEnv, "1")
	if !IsMobile() {
		t.Error("IsMobile() should return true when emulation is enabled")
	}
}

// TestEnsureStorageDir_Desktop 非 Android 平台由 gdata 自行创建目录
func TestEnsureStorageDir_Desktop(t *testing.T) {
	dir, err := EnsureStorageDir()
	if err != nil {
		t.Errorf("EnsureStorageDir() error: %v", err)
	}
	if dir != "" {
		t.Errorf("EnsureStorageDir() = %q, want empty so gdata picks the path", dir)
	}
}
