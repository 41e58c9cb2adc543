//go:build !mobile

package utils

import "os"

// MobileEmulateEnv 强制移动模式的环境变量（本地调试触摸布局用）
const MobileEmulateEnv = "FOLIO_MOBILE_EMULATE"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false，除非设置了 FOLIO_MOBILE_EMULATE=1
func IsMobile() bool {
	return os.Getenv(MobileEmulateEnv) == "1"
}
