package main

import (
	"github.com/gonewx/wavesurf/pkg/components"
)

// 终端网格比例：字符格通常高约为宽的两倍
const (
	colsPerMeter = 2
	rowsPerMeter = 1
)

// worldToRow 把世界高度映射到终端行，高度 0 位于屏幕 60% 处
func worldToRow(worldY float32, height int) int {
	origin := height * 3 / 5
	return origin - int(worldY*rowsPerMeter)
}

// craftGlyph 按前进方向选择冲浪板字符
//
// 朝向角 θ 的前进方向为 (-cosθ, -sinθ)，字符只区分所在直线，不区分正反。
func craftGlyph(headingDegrees float32) rune {
	h := int(headingDegrees+22.5) % 180
	if h < 0 {
		h += 180
	}
	switch {
	case h < 45:
		return '-'
	case h < 90:
		return '/'
	case h < 135:
		return '|'
	default:
		return '\\'
	}
}

// hudLayout 返回各 HUD 字段在终端中的位置
func hudLayout(width, height int) map[components.TextField][2]int {
	center := width / 2
	return map[components.TextField][2]int{
		components.TextScore:                {1, 0},
		components.TextLives:                {1, 1},
		components.TextJumpHeight:           {width - 8, 0},
		components.TextRotationAnnouncement: {center - 6, 3},
		components.TextComboAnnouncement:    {center - 4, 7},
		components.TextDeathAnnouncement:    {center - 4, height / 2},
	}
}
