package config

// Window defaults

const (
	// GameWindowWidth 默认窗口宽度（逻辑像素）
	GameWindowWidth = 1280

	// GameWindowHeight 默认窗口高度（逻辑像素）
	GameWindowHeight = 720

	// WindowTitle 窗口标题
	WindowTitle = "folio"
)
