//go:build mobile

package utils

// IsMobile 移动端编译时恒为 true：页面使用触摸拖动滚动与紧凑布局
func IsMobile() bool {
	return true
}
