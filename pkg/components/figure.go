package components

import "github.com/gonewx/magnumopus/pkg/geometry"

// FigurePartComponent 神圣几何图形中独立动画的一组笔画
type FigurePartComponent struct {
	Group geometry.PartGroup
	// FirstStroke 本组第一笔在整幅图形中的序号，用于随机闪烁
	FirstStroke int
}

// GlyphComponent 文字环上的一个字符
type GlyphComponent struct {
	Index int
	Rune  rune
}
