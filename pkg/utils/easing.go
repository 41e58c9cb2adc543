package utils

import "math"

// 缓动函数：输入进度 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 参考：https://easings.net/

// EaseOutCubic 三次方缓出，用于区块淡入上移
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic 三次方缓入缓出，用于项目页标题淡入
func EaseInOutCubic(t float64) float64 {
	t = Clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将 v 限制到 [0, 1]
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Approach 将 current 向 target 移动最多 step，不越过目标
func Approach(current, target, step float64) float64 {
	if step <= 0 {
		return current
	}
	if current < target {
		return math.Min(current+step, target)
	}
	return math.Max(current-step, target)
}
