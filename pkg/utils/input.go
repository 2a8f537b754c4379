// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GetPointerPosition 获取当前指针位置（触摸或鼠标）
// 优先返回触摸位置，如果没有触摸则返回鼠标位置
func GetPointerPosition() (int, int) {
	// 检查触摸
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}

	// 返回鼠标位置
	return ebiten.CursorPosition()
}

// IsTouchDevice 检测当前是否为触摸设备
// 通过检查是否有活动的触摸来判断
func IsTouchDevice() bool {
	touchIDs := ebiten.AppendTouchIDs(nil)
	return len(touchIDs) > 0
}

// GetWheelDelta 返回本帧的垂直滚轮增量
// 向下滚动为正（与页面滚动偏移方向一致）
func GetWheelDelta() float64 {
	_, dy := ebiten.Wheel()
	return -dy
}

// GetKeyScrollDelta 返回键盘滚动意图
//
// 返回：
//   - lines: 行滚动数（方向键、空格），向下为正
//   - pages: 整页滚动数（PageUp/PageDown）
//   - jump: -1 跳到顶部（Home），1 跳到底部（End），0 无
func GetKeyScrollDelta() (lines, pages float64, jump int) {
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		lines++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		lines--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		pages++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		pages--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		jump = -1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		jump = 1
	}
	return lines, pages, jump
}

// TouchDrag 跟踪单指拖动，用于移动端滚动
type TouchDrag struct {
	active bool
	id     ebiten.TouchID
	lastY  int
}

// Update 返回本帧拖动产生的滚动增量（手指上移为正）
func (d *TouchDrag) Update() float64 {
	if !d.active {
		justPressed := inpututil.AppendJustPressedTouchIDs(nil)
		if len(justPressed) == 0 {
			return 0
		}
		d.active = true
		d.id = justPressed[0]
		_, d.lastY = ebiten.TouchPosition(d.id)
		return 0
	}

	if inpututil.IsTouchJustReleased(d.id) {
		d.active = false
		return 0
	}

	_, y := ebiten.TouchPosition(d.id)
	delta := float64(d.lastY - y)
	d.lastY = y
	return delta
}
