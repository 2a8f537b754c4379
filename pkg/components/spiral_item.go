package components

import "github.com/gonewx/magnumopus/pkg/helix"

// SymbolContent 卡片的静态文案
type SymbolContent struct {
	Name        string
	Quote       string
	Source      string
	QuoteAlign  string // "left" | "right"
	Orb         string // 圆球主题
	Description string
}

// SpiralItemComponent 螺旋上的一张符号卡片
//
// Frame 由 HelixSystem 在每次滚动时写入；Projection 由渲染系统按视口计算。
type SpiralItemComponent struct {
	Index      int
	Content    SymbolContent
	Frame      helix.ItemFrame
	Projection helix.Projection
}
