// Package scroll maps page scroll position to normalized section progress.
//
// A Source owns the page scroll offset and a set of trackers. Every scroll (or
// resize) dispatch recomputes each tracker's progress from the live bounding
// rect of its element and calls the handler synchronously. There is no queue:
// the last dispatch wins.
package scroll

import (
	"math"

	"github.com/gonewx/magnumopus/pkg/utils"
)

// Rect is an element's bounding box in viewport space (Top is relative to the
// viewport's top edge; negative once the element has scrolled past it).
type Rect struct {
	Top    float64
	Height float64
}

// Bottom returns Top+Height.
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// Progress 计算滚动进度
//
// progress = clamp(-top / (height - viewportHeight), 0, 1)
//
// 元素比视口矮（分母 <= 0）或输入非有限值时返回 0，保证不会产生 NaN/Inf 变换。
func Progress(top, height, viewportHeight float64) float64 {
	total := height - viewportHeight
	if !(total > 0) || math.IsInf(total, 0) || math.IsNaN(top) || math.IsInf(top, 0) {
		return 0
	}
	return utils.Clamp01(-top / total)
}

// RectProgress 是 Progress 的 Rect 版本
func RectProgress(r Rect, viewportHeight float64) float64 {
	return Progress(r.Top, r.Height, viewportHeight)
}

// StickyOffset 返回 sticky(top:0) 容器相对视口顶部的 y 偏移
//
// 区块进入视口时容器随区块移动；区块覆盖视口期间固定在 0；
// 区块底部离开时容器随区块底部上移。
func StickyOffset(r Rect, viewportHeight float64) float64 {
	return math.Max(r.Top, math.Min(0, r.Bottom()-viewportHeight))
}

// Visible 元素与视口是否有交集
func (r Rect) Visible(viewportHeight float64) bool {
	return r.Bottom() > 0 && r.Top < viewportHeight
}
