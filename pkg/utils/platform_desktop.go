//go:build !mobile

package utils

// 桌面构建，移动模式只能通过环境变量模拟
const mobileBuild = false
