package geometry

import (
	"math"

	"github.com/gonewx/magnumopus/pkg/utils"
)

// ViewBox is the side of the square design space the figure is authored in.
// The figure center is (ViewBox/2, ViewBox/2).
const ViewBox = 600.0

// FigureVMin 图形边长占视口短边的比例（65vmin）
const FigureVMin = 0.65

// Part identifies one independently animated group of the figure.
type Part int

const (
	PartOuter Part = iota
	PartTriangleA
	PartTriangleB
	PartSquare
	PartCenter
	PartScatter
)

var partNames = [...]string{"outer", "triangle-a", "triangle-b", "square", "center", "scatter"}

func (p Part) String() string {
	if p < 0 || int(p) >= len(partNames) {
		return "unknown"
	}
	return partNames[p]
}

// Parts lists every part in paint order.
var Parts = []Part{PartOuter, PartTriangleA, PartTriangleB, PartSquare, PartCenter, PartScatter}

// ShapeKind 形状类型
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapePolyline
)

// Shape is one stroke of the figure, in ViewBox coordinates.
type Shape struct {
	Kind   ShapeKind
	Center utils.Point // ShapeCircle
	Radius float64     // ShapeCircle
	Points []utils.Point
	Closed bool
	Fill   bool
	Dashed bool
	Width  float64
}

// PartGroup is a part with its colour, glow filter flag and strokes.
type PartGroup struct {
	Part   Part
	Paint  utils.Paint
	Glow   bool
	Shapes []Shape
}

func circle(cx, cy, r, width float64, fill bool) Shape {
	return Shape{Kind: ShapeCircle, Center: utils.Point{X: cx, Y: cy}, Radius: r, Width: width, Fill: fill}
}

func poly(width float64, closed bool, xy ...float64) Shape {
	pts := make([]utils.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		pts = append(pts, utils.Point{X: xy[i], Y: xy[i+1]})
	}
	return Shape{Kind: ShapePolyline, Points: pts, Closed: closed, Width: width}
}

// rotatedSquare 绕 (cx, cy) 旋转 deg 度的正方形
func rotatedSquare(x, y, size, cx, cy, deg, width float64) Shape {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	corners := [][2]float64{{x, y}, {x + size, y}, {x + size, y + size}, {x, y + size}}
	xy := make([]float64, 0, 8)
	for _, c := range corners {
		dx, dy := c[0]-cx, c[1]-cy
		xy = append(xy, cx+dx*cos-dy*sin, cy+dx*sin+dy*cos)
	}
	return poly(width, true, xy...)
}

// Figure returns the sacred-geometry figure. The slice is freshly built on
// every call and safe to modify.
func Figure() []PartGroup {
	outerDash := circle(300, 300, 280, 1, false)
	outerDash.Dashed = true

	return []PartGroup{
		{
			Part:  PartOuter,
			Paint: utils.MustHex("#8B6508").WithAlpha(0.5),
			Shapes: []Shape{
				outerDash,
				circle(300, 300, 260, 4, false),
				poly(2, false, 300, 20, 300, 40),
				poly(2, false, 300, 560, 300, 580),
				poly(2, false, 20, 300, 40, 300),
				poly(2, false, 560, 300, 580, 300),
			},
		},
		{
			Part:  PartTriangleA,
			Paint: utils.MustHex("#B8860B"),
			Glow:  true,
			Shapes: []Shape{
				poly(2, true, 300, 50, 516.5, 425, 83.5, 425),
				circle(300, 50, 5, 0, true),
				circle(516.5, 425, 5, 0, true),
				circle(83.5, 425, 5, 0, true),
			},
		},
		{
			Part:  PartTriangleB,
			Paint: utils.MustHex("#C5A059"),
			Glow:  true,
			Shapes: []Shape{
				poly(2, true, 300, 550, 516.5, 175, 83.5, 175),
				poly(1, false, 300, 550, 300, 300),
				poly(1, false, 516.5, 175, 300, 300),
				poly(1, false, 83.5, 175, 300, 300),
			},
		},
		{
			Part:  PartSquare,
			Paint: utils.MustHex("#D4AF37"),
			Shapes: []Shape{
				rotatedSquare(200, 200, 200, 300, 300, 45, 3),
			},
		},
		{
			Part:  PartCenter,
			Paint: utils.MustHex("#F9F1D0"),
			Shapes: []Shape{
				circle(300, 300, 50, 3, false),
				circle(300, 300, 10, 0, true),
				poly(1, false, 300, 250, 300, 350),
				poly(1, false, 250, 300, 350, 300),
			},
		},
		{
			Part:  PartScatter,
			Paint: utils.MustHex("#AA6C39"),
			Shapes: []Shape{
				poly(2, false, 100, 100, 120, 120),
				poly(2, false, 120, 100, 100, 120),
				circle(500, 100, 10, 1, false),
				poly(1, true, 100, 500, 120, 500, 120, 520, 100, 520),
				poly(1, true, 500, 500, 510, 480, 520, 500),
			},
		},
	}
}

// StrokeCount 图形中可闪烁的笔画总数
func StrokeCount(groups []PartGroup) int {
	n := 0
	for _, g := range groups {
		n += len(g.Shapes)
	}
	return n
}
