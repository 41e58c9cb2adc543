package config

import "time"

// Home page constants

const (
	// HomeCharDelay 首页多行打字机每个字符的间隔
	HomeCharDelay = 55 * time.Millisecond

	// HomeLinePause 每行结束后的停顿
	HomeLinePause = 300 * time.Millisecond

	// HomeResetPause 全部打完后清空重来前的停顿
	HomeResetPause = 1200 * time.Millisecond

	// RevealThreshold 区块可见比例达到该值时显示
	RevealThreshold float64 = 0.2

	// HomeSectionHeight 首页每个区块的高度（逻辑像素）
	HomeSectionHeight float64 = 520

	// HomeScrollStep 每格滚轮滚动的距离（逻辑像素）
	HomeScrollStep float64 = 48
)

// HomeTypewriterLines 首页标题区循环打出的文字
var HomeTypewriterLines = []string{
	"Hello,",
	"meet the creative",
	"Full Stack Developer",
	"in this era.",
}

// HomeSections 首页滚动区块标题
var HomeSections = []string{
	"CREATIVE ✦ DEVELOPER",
	"/ ART DIRECTION  / WEB DESIGN (UX/UI)  / WEB DEVELOPMENT",
	"I CAN  develop. innovate. design. build.",
	"PROJECTS  1 kaska  2 greenprompt  3 dreampartner  4 spotifyclone",
}

// HomeProjects 数字键 1-4 对应的项目预设
var HomeProjects = []string{"kaska", "greenprompt", "dreampartner", "spotifyclone"}
