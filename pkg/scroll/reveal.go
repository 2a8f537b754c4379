package scroll

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gonewx/magnumopus/pkg/utils"
)

// Box is an element rectangle in viewport space.
type Box struct {
	X, Y, W, H float64
}

// Margin grows (positive) or shrinks (negative) the viewport before the
// intersection test, like IntersectionObserver's rootMargin.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// RevealOptions 配置显现触发器
type RevealOptions struct {
	Threshold  float64 // 可见面积比例阈值
	RootMargin string  // CSS 风格，如 "0px 0px -50px 0px"
}

// DefaultRevealOptions 返回默认配置
func DefaultRevealOptions() RevealOptions {
	return RevealOptions{Threshold: 0.1, RootMargin: "0px 0px -50px 0px"}
}

// ParseRootMargin 解析 1~4 个像素值（顺序同 CSS margin 简写）
func ParseRootMargin(s string) (Margin, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 4 {
		return Margin{}, fmt.Errorf("root margin %q: expected 1-4 values", s)
	}

	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSuffix(f, "px"), 64)
		if err != nil {
			return Margin{}, fmt.Errorf("root margin %q: %w", s, err)
		}
		values[i] = v
	}

	switch len(values) {
	case 1:
		return Margin{values[0], values[0], values[0], values[0]}, nil
	case 2:
		return Margin{values[0], values[1], values[0], values[1]}, nil
	case 3:
		return Margin{values[0], values[1], values[2], values[1]}, nil
	default:
		return Margin{values[0], values[1], values[2], values[3]}, nil
	}
}

// RevealObserver 一次性可见性触发器
//
// 元素进入（经 margin 调整后的）视口且可见比例达到阈值时标记为已显现，
// 之后不再观察。核心驱动器不依赖它。
type RevealObserver struct {
	threshold float64
	margin    Margin
	observed  map[string]func() (Box, bool)
	revealed  map[string]float64 // 显现后经过的时间（秒），用于淡入
}

// NewRevealObserver 创建显现触发器
func NewRevealObserver(opts RevealOptions) (*RevealObserver, error) {
	margin, err := ParseRootMargin(opts.RootMargin)
	if err != nil {
		return nil, err
	}
	return &RevealObserver{
		threshold: utils.Clamp01(opts.Threshold),
		margin:    margin,
		observed:  make(map[string]func() (Box, bool)),
		revealed:  make(map[string]float64),
	}, nil
}

// Observe 开始观察元素；已显现的元素忽略
func (o *RevealObserver) Observe(id string, box func() (Box, bool)) {
	if _, done := o.revealed[id]; done {
		return
	}
	o.observed[id] = box
}

// Unobserve 停止观察
func (o *RevealObserver) Unobserve(id string) {
	delete(o.observed, id)
}

// Observing 返回仍在观察中的元素数量
func (o *RevealObserver) Observing() int {
	return len(o.observed)
}

// Check 对所有观察中的元素做一次相交测试
func (o *RevealObserver) Check(vp utils.Viewport) {
	root := Box{
		X: -o.margin.Left,
		Y: -o.margin.Top,
		W: vp.Width + o.margin.Left + o.margin.Right,
		H: vp.Height + o.margin.Top + o.margin.Bottom,
	}

	for id, boxFn := range o.observed {
		box, ok := boxFn()
		if !ok {
			continue
		}
		if intersectionRatio(box, root) >= o.threshold && intersects(box, root) {
			o.revealed[id] = 0
			delete(o.observed, id)
		}
	}
}

// Update 推进淡入计时
func (o *RevealObserver) Update(dt float64) {
	for id, elapsed := range o.revealed {
		o.revealed[id] = elapsed + dt
	}
}

// Revealed 元素是否已显现
func (o *RevealObserver) Revealed(id string) bool {
	_, ok := o.revealed[id]
	return ok
}

// Fade 返回元素的淡入进度（0~1，duration 秒内 EaseOutCubic）
func (o *RevealObserver) Fade(id string, duration float64) float64 {
	elapsed, ok := o.revealed[id]
	if !ok {
		return 0
	}
	if duration <= 0 {
		return 1
	}
	return utils.EaseOutCubic(utils.Clamp01(elapsed / duration))
}

// FadeDelayed 与 Fade 相同，但淡入在显现 delay 秒后才开始（transition-delay）
func (o *RevealObserver) FadeDelayed(id string, delay, duration float64) float64 {
	elapsed, ok := o.revealed[id]
	if !ok || elapsed < delay {
		return 0
	}
	if duration <= 0 {
		return 1
	}
	return utils.EaseOutCubic(utils.Clamp01((elapsed - delay) / duration))
}

func intersects(a, b Box) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// intersectionRatio 返回 a 被 b 覆盖的面积比例
func intersectionRatio(a, b Box) float64 {
	area := a.W * a.H
	if area <= 0 {
		return 0
	}
	w := min(a.X+a.W, b.X+b.W) - max(a.X, b.X)
	h := min(a.Y+a.H, b.Y+b.H) - max(a.Y, b.Y)
	if w <= 0 || h <= 0 {
		return 0
	}
	return (w * h) / area
}
