package components

// TextField HUD 文本字段标识
type TextField int

const (
	TextScore TextField = iota
	TextLives
	TextJumpHeight
	TextRotationAnnouncement
	TextComboAnnouncement
	TextDeathAnnouncement
)

// AllTextFields 按绘制顺序列出所有字段
var AllTextFields = []TextField{
	TextScore,
	TextLives,
	TextJumpHeight,
	TextRotationAnnouncement,
	TextComboAnnouncement,
	TextDeathAnnouncement,
}

// String 返回 TextField 的字符串表示（同时用作日志中的字段名）
func (f TextField) String() string {
	switch f {
	case TextScore:
		return "score"
	case TextLives:
		return "lives"
	case TextJumpHeight:
		return "jumpHeight"
	case TextRotationAnnouncement:
		return "rotationAnnouncement"
	case TextComboAnnouncement:
		return "comboAnnouncement"
	case TextDeathAnnouncement:
		return "deathAnnouncement"
	default:
		return "unknown"
	}
}
