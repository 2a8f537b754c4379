package utils

import "math"

// Point 二维坐标点
type Point struct {
	X, Y float64
}

// Add 返回 p+q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub 返回 p-q
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale 返回 p*k
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Dist 返回两点间欧氏距离
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Viewport 视口尺寸（逻辑像素）
// 每次计算都读取当前尺寸，不做响应式断点处理
type Viewport struct {
	Width  float64
	Height float64
}

// VMin 返回较短边长度（CSS vmin 的 100 倍）
func (v Viewport) VMin() float64 {
	return math.Min(v.Width, v.Height)
}

// Center 返回视口中心点
func (v Viewport) Center() Point {
	return Point{X: v.Width / 2, Y: v.Height / 2}
}

// Valid 视口两边都为正
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// SpiralPathParams 螺旋引导线采样参数
type SpiralPathParams struct {
	SpacingY     float64 // 相邻条目的垂直间距（像素）
	RadiusBase   float64 // 半径系数，半径 = vmin × RadiusBase
	AngleStepDeg float64 // 相邻条目的角度步进（度）
	ItemsSpan    float64 // 引导线覆盖的条目数（垂直总高度 = SpacingY × ItemsSpan）
	Points       int     // 分段数，返回 Points+1 个点
	DepthOffset  float64 // z 方向投影到 y 轴的偏移幅度
}

// SampleSpiralPath 沿螺旋条目的"角度-高度"关系采样引导线
//
// 角度与 y 的关系与条目布局一致：angle = (relativeY / SpacingY) × AngleStep，
// x = cx + cos(angle) × r，y = currentY + sin(angle) × DepthOffset。
// Points <= 0 或视口无效时返回 nil。
func SampleSpiralPath(vp Viewport, params SpiralPathParams) []Point {
	if params.Points <= 0 || !vp.Valid() || params.SpacingY == 0 {
		return nil
	}

	center := vp.Center()
	radius := vp.VMin() * params.RadiusBase
	totalHeight := params.SpacingY * params.ItemsSpan
	startY := center.Y - totalHeight/2

	points := make([]Point, 0, params.Points+1)
	for i := 0; i <= params.Points; i++ {
		t := float64(i) / float64(params.Points)
		currentY := startY + t*totalHeight

		relativeY := currentY - center.Y
		angle := (relativeY / params.SpacingY) * params.AngleStepDeg * math.Pi / 180

		points = append(points, Point{
			X: center.X + math.Cos(angle)*radius,
			Y: currentY + math.Sin(angle)*params.DepthOffset,
		})
	}
	return points
}
