// Package hud 维护屏幕上的文本字段
//
// 会话只通过 SetVisible/SetText 写入字段，前端在绘制时按注册顺序读取可见字段。
package hud

import (
	"log"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/gonewx/wavesurf/pkg/components"
	"github.com/gonewx/wavesurf/pkg/config"
)

// TextEntry 一个文本字段的当前内容与位置
type TextEntry struct {
	Field   components.TextField
	Text    string
	Visible bool
	X, Y    int
}

// TextRegistry 文本字段注册表
//
// 按注册顺序保存字段，写入未注册的字段只记录日志。
// 不是并发安全的，只能在模拟所在的 goroutine 中使用。
type TextRegistry struct {
	entries *orderedmap.OrderedMap[components.TextField, *TextEntry]
}

// NewTextRegistry 创建空注册表
func NewTextRegistry() *TextRegistry {
	return &TextRegistry{
		entries: orderedmap.NewOrderedMap[components.TextField, *TextEntry](),
	}
}

// NewDefaultTextRegistry 创建包含全部 HUD 字段的注册表
//
// 位置取自 config 中的布局常量，所有字段初始可见且为空文本。
func NewDefaultTextRegistry() *TextRegistry {
	r := NewTextRegistry()
	r.Register(components.TextScore, config.ScoreTextX, config.ScoreTextY)
	r.Register(components.TextLives, config.LivesTextX, config.LivesTextY)
	r.Register(components.TextJumpHeight, config.JumpHeightTextX, config.JumpHeightTextY)
	r.Register(components.TextRotationAnnouncement, config.RotationTextX, config.RotationTextY)
	r.Register(components.TextComboAnnouncement, config.ComboTextX, config.ComboTextY)
	r.Register(components.TextDeathAnnouncement, config.DeathTextX, config.DeathTextY)
	return r
}

// Register 注册字段；已注册的字段只更新位置，保留原有顺序与内容
func (r *TextRegistry) Register(field components.TextField, x, y int) {
	if entry, ok := r.entries.Get(field); ok {
		entry.X, entry.Y = x, y
		return
	}
	r.entries.Set(field, &TextEntry{Field: field, Visible: true, X: x, Y: y})
}

// SetVisible 设置字段可见性
func (r *TextRegistry) SetVisible(field components.TextField, visible bool) {
	entry, ok := r.entries.Get(field)
	if !ok {
		log.Printf("[TextRegistry] SetVisible: field %s does not exist", field)
		return
	}
	entry.Visible = visible
}

// SetText 设置字段文本
func (r *TextRegistry) SetText(field components.TextField, text string) {
	entry, ok := r.entries.Get(field)
	if !ok {
		log.Printf("[TextRegistry] SetText: field %s does not exist", field)
		return
	}
	entry.Text = text
}

// Entry 返回字段的副本
func (r *TextRegistry) Entry(field components.TextField) (TextEntry, bool) {
	entry, ok := r.entries.Get(field)
	if !ok {
		return TextEntry{}, false
	}
	return *entry, true
}

// VisibleEntries 按注册顺序返回可见且文本非空的字段
func (r *TextRegistry) VisibleEntries() []TextEntry {
	visible := make([]TextEntry, 0, r.entries.Len())
	for el := r.entries.Front(); el != nil; el = el.Next() {
		if el.Value.Visible && el.Value.Text != "" {
			visible = append(visible, *el.Value)
		}
	}
	return visible
}

// Len 已注册字段数
func (r *TextRegistry) Len() int {
	return r.entries.Len()
}
