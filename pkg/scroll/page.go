package scroll

import (
	"github.com/gonewx/magnumopus/pkg/utils"
)

// Section is one vertically stacked block of the page. Height is expressed in
// viewport-height units (1 = 100vh).
type Section struct {
	ID       string
	HeightVH float64
}

// Page is a virtual document: sections stacked top to bottom, scrolled by a
// single offset. Rects are recomputed from the current viewport on every call.
type Page struct {
	sections []Section
	viewport utils.Viewport

	offset float64

	// 平滑滚动动画
	animFrom     float64
	animTo       float64
	animElapsed  float64
	animDuration float64
	animating    bool
}

// NewPage 创建页面
func NewPage(viewport utils.Viewport, sections ...Section) *Page {
	return &Page{
		sections:     sections,
		viewport:     viewport,
		animDuration: 0.25,
	}
}

// SetSmoothDuration 设置平滑滚动时长（秒），0 表示立即跳转
func (p *Page) SetSmoothDuration(seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	p.animDuration = seconds
}

// Viewport 返回当前视口
func (p *Page) Viewport() utils.Viewport {
	return p.viewport
}

// Resize 更新视口，滚动偏移重新限制在合法范围
func (p *Page) Resize(viewport utils.Viewport) {
	p.viewport = viewport
	p.offset = p.clampOffset(p.offset)
	p.animTo = p.clampOffset(p.animTo)
}

// Height 返回页面总高度（像素）
func (p *Page) Height() float64 {
	total := 0.0
	for _, s := range p.sections {
		total += s.HeightVH * p.viewport.Height
	}
	return total
}

// MaxOffset 返回最大滚动偏移
func (p *Page) MaxOffset() float64 {
	max := p.Height() - p.viewport.Height
	if max < 0 {
		return 0
	}
	return max
}

// Offset 返回当前滚动偏移
func (p *Page) Offset() float64 {
	return p.offset
}

func (p *Page) clampOffset(v float64) float64 {
	return utils.Clamp(v, 0, p.MaxOffset())
}

// ScrollTo 立即跳转到指定偏移，返回偏移是否变化
func (p *Page) ScrollTo(offset float64) bool {
	p.animating = false
	next := p.clampOffset(offset)
	changed := next != p.offset
	p.offset = next
	p.animTo = next
	return changed
}

// ScrollBy 以平滑动画滚动 delta 像素
// 动画进行中再次滚动时从当前位置累加到新的目标
func (p *Page) ScrollBy(delta float64) {
	if delta == 0 {
		return
	}
	base := p.offset
	if p.animating {
		base = p.animTo
	}
	target := p.clampOffset(base + delta)
	if p.animDuration <= 0 {
		p.ScrollTo(target)
		return
	}
	p.animFrom = p.offset
	p.animTo = target
	p.animElapsed = 0
	p.animating = true
}

// AnimateTo 以平滑动画滚动到指定偏移（锚点跳转）
func (p *Page) AnimateTo(offset float64) {
	base := p.offset
	if p.animating {
		base = p.animTo
	}
	p.ScrollBy(p.clampOffset(offset) - base)
}

// Update 推进平滑滚动，返回偏移是否变化（变化即一次 scroll 事件）
func (p *Page) Update(dt float64) bool {
	if !p.animating {
		return false
	}
	p.animElapsed += dt
	t := utils.Clamp01(p.animElapsed / p.animDuration)
	next := utils.Lerp(p.animFrom, p.animTo, utils.EaseOutQuad(t))
	if t >= 1 {
		next = p.animTo
		p.animating = false
	}
	changed := next != p.offset
	p.offset = next
	return changed
}

// SectionTop 返回区块在文档中的顶部位置（像素）
func (p *Page) SectionTop(id string) (float64, bool) {
	top := 0.0
	for _, s := range p.sections {
		if s.ID == id {
			return top, true
		}
		top += s.HeightVH * p.viewport.Height
	}
	return 0, false
}

// SectionRect 返回区块在视口坐标系中的边界（相当于 getBoundingClientRect）
func (p *Page) SectionRect(id string) (Rect, bool) {
	top, ok := p.SectionTop(id)
	if !ok {
		return Rect{}, false
	}
	for _, s := range p.sections {
		if s.ID == id {
			return Rect{Top: top - p.offset, Height: s.HeightVH * p.viewport.Height}, true
		}
	}
	return Rect{}, false
}

// Bounds 返回区块的 BoundsFunc，供 Source.Track 使用
func (p *Page) Bounds(id string) BoundsFunc {
	return func() (Rect, bool) {
		return p.SectionRect(id)
	}
}

// Sections 返回区块列表
func (p *Page) Sections() []Section {
	return p.sections
}
