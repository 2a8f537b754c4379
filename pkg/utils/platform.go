//go:build !mobile

package utils

import "os"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false
// 设置环境变量 MAGNUMOPUS_MOBILE_EMULATE=1 可在桌面端模拟移动模式（触摸滚动、紧凑布局）
func IsMobile() bool {
	return os.Getenv("MAGNUMOPUS_MOBILE_EMULATE") == "1"
}
