package helix

import (
	"cmp"
	"math"
	"slices"

	"github.com/gonewx/magnumopus/pkg/utils"
)

// Projection is a card or point after the group transform and perspective,
// in screen pixels.
type Projection struct {
	X, Y  float64
	Depth float64 // 旋转后的 z，越大越靠近观察者
	Scale float64 // 透视缩放
	// WidthFactor 卡片绕 Y 轴旋转后可见宽度的比例 |cos(θ)|
	WidthFactor float64
	Visible     bool
}

// rotateY 绕 Y 轴旋转 (x, z)，与 CSS rotateY 同向
func rotateY(x, z, deg float64) (float64, float64) {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return x*cos + z*sin, -x*sin + z*cos
}

func perspective(p, z float64) (float64, bool) {
	if p <= 0 {
		return 1, true
	}
	if z >= p {
		return 0, false
	}
	return p / (p - z), true
}

// Project maps a card from group-local space to the screen. The group
// rotates about the viewport center, then translates vertically.
func Project(item ItemFrame, group GroupTransform, vp utils.Viewport, persp float64) Projection {
	center := vp.Center()
	x, z := rotateY(item.X, item.Z, group.RotateY)
	y := item.Y + group.TranslateY

	s, ok := perspective(persp, z)
	if !ok {
		return Projection{Depth: z}
	}
	total := item.RotateY + group.RotateY
	return Projection{
		X:           center.X + x*s,
		Y:           center.Y + y*s,
		Depth:       z,
		Scale:       s * item.Scale,
		WidthFactor: math.Abs(math.Cos(total * math.Pi / 180)),
		Visible:     true,
	}
}

// ProjectPoint maps a point of the full-screen guide layer through the group
// transform. The layer lies in the z = 0 plane.
func ProjectPoint(pt utils.Point, group GroupTransform, vp utils.Viewport, persp float64) (utils.Point, bool) {
	center := vp.Center()
	x, z := rotateY(pt.X-center.X, 0, group.RotateY)
	y := pt.Y - center.Y + group.TranslateY

	s, ok := perspective(persp, z)
	if !ok {
		return utils.Point{}, false
	}
	return utils.Point{X: center.X + x*s, Y: center.Y + y*s}, true
}

// DrawOrder 按 z-index 再按深度排序的卡片下标，先画的在后面
func DrawOrder(items []ItemFrame, proj []Projection) []int {
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		if c := cmp.Compare(items[a].Style.Z, items[b].Style.Z); c != 0 {
			return c
		}
		return cmp.Compare(proj[a].Depth, proj[b].Depth)
	})
	return order
}
