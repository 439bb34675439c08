//go:build mobile

package utils

// ebitenmobile 绑定构建，始终显示触摸摇杆
const mobileBuild = true
