package config

import "time"

// Loader sequencer timing constants

const (
	// LoaderCountTick 计数器每次 +1 的间隔
	LoaderCountTick = 20 * time.Millisecond

	// LoaderCountMax 计数器终值
	LoaderCountMax = 100

	// LoaderPostCountDelay 计数到 100 后进入标记阶段前的延迟
	LoaderPostCountDelay = 700 * time.Millisecond

	// LoaderCharInterval 打字机每个字符的间隔
	LoaderCharInterval = 80 * time.Millisecond

	// LoaderNavigatePause 打字完成后跳转前的停顿
	LoaderNavigatePause = 1000 * time.Millisecond

	// LoaderMark 标记阶段显示的双字母标记
	LoaderMark = "KR"

	// LoaderTarget 打字机阶段显示的文字
	LoaderTarget = "KRITIKA RUHELA"

	// LoaderFontSize 加载界面文字字号（逻辑像素）
	LoaderFontSize float64 = 64
)

// Converging marker physics. Lengths are logical pixels, speeds are logical
// pixels per frame; both are multiplied by the device pixel ratio.
const (
	MarkerRadius          float64 = 46
	MarkerApproachSpeed   float64 = 3.0
	MarkerBandWidth       float64 = 190
	MarkerSettleDecay     float64 = 18
	MarkerWobblePeriod    float64 = 11
	MarkerWobbleAmplitude float64 = 2
	MarkerSettleFrames            = 52
	MarkerConvergeSpeed   float64 = 4.2
	MarkerApartSpeed      float64 = 5.0
	MarkerApartFrames             = 68
	MarkerAlpha           float64 = 0.92
	MarkerGlow            float64 = 18
)
