package config

// 布局配置常量
// 本文件定义了屏幕尺寸、世界到屏幕的缩放以及 HUD 文本位置

// Window Configuration (窗口配置)
const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 960

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 540

	// PixelsPerMeter 世界坐标 1 米对应的像素数
	PixelsPerMeter = 24.0

	// CraftScreenX 冲浪板固定绘制在屏幕的横坐标，世界随其水平滚动
	CraftScreenX = GameWindowWidth / 3

	// WorldOriginScreenY 世界高度 0 对应的屏幕纵坐标
	WorldOriginScreenY = GameWindowHeight * 0.55
)

// HUD Text Layout (HUD 文本位置，屏幕坐标，文本左上角)
const (
	ScoreTextX = 16
	ScoreTextY = 12

	LivesTextX = 16
	LivesTextY = 30

	JumpHeightTextX = GameWindowWidth - 80
	JumpHeightTextY = 12

	RotationTextX = GameWindowWidth/2 - 48
	RotationTextY = 90

	ComboTextX = GameWindowWidth/2 - 32
	ComboTextY = 150

	DeathTextX = GameWindowWidth/2 - 24
	DeathTextY = GameWindowHeight / 2
)

// WorldToScreen 把世界坐标 (x, y) 转换为屏幕坐标
//
// 镜头水平方向跟随冲浪板（cameraX 为冲浪板世界 X），竖直方向固定。
//
// 参数：
//   - worldX, worldY: 世界坐标（米，Y 向上）
//   - cameraX: 镜头对准的世界 X
//
// 返回：
//   - screenX, screenY: 屏幕坐标（像素，Y 向下）
func WorldToScreen(worldX, worldY, cameraX float32) (screenX, screenY float32) {
	screenX = CraftScreenX + (worldX-cameraX)*PixelsPerMeter
	screenY = WorldOriginScreenY - worldY*PixelsPerMeter
	return screenX, screenY
}
