package utils

import "os"

// MobileEmulateEnv 设为 "1" 时桌面端也按移动端处理（用于本地调试触摸摇杆）
const MobileEmulateEnv = "WAVESURF_MOBILE_EMULATE"

// IsMobile 是否显示触摸摇杆等移动端界面
func IsMobile() bool {
	return mobileBuild || os.Getenv(MobileEmulateEnv) == "1"
}
