//go:build !mobile

package utils

import "testing"

// TestIsMobile_Desktop 测试桌面端编译时 IsMobile() 默认返回 false
func TestIsMobile_Desktop(t *testing.T) {
	t.Setenv("MAGNUMOPUS_MOBILE_EMULATE", "")
	if IsMobile() {
		t.Error("IsMobile() should return false on desktop")
	}
}

// TestIsMobile_Emulate 环境变量开启模拟
func TestIsMobile_Emulate(t *testing.T) {
	t.Setenv("MAGNUMOPUS_MOBILE_EMULATE", "1")
	if !IsMobile() {
		t.Error("期望模拟移动模式时 IsMobile() 返回 true")
	}
}
