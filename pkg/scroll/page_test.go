package scroll

import (
	"math"
	"testing"

	"github.com/gonewx/magnumopus/pkg/utils"
)

func newTestPage() *Page {
	return NewPage(utils.Viewport{Width: 1000, Height: 500},
		Section{ID: "hero", HeightVH: 1},
		Section{ID: "geometry", HeightVH: 5},
		Section{ID: "footer", HeightVH: 0.4},
	)
}

func TestPageHeight(t *testing.T) {
	page := newTestPage()
	if got := page.Height(); got != 3200 {
		t.Errorf("Height = %v, 期望 3200", got)
	}
	if got := page.MaxOffset(); got != 2700 {
		t.Errorf("MaxOffset = %v, 期望 2700", got)
	}
}

func TestPageSectionRect(t *testing.T) {
	page := newTestPage()
	page.ScrollTo(700)

	r, ok := page.SectionRect("geometry")
	if !ok {
		t.Fatal("geometry 区块应存在")
	}
	if r.Top != -200 || r.Height != 2500 {
		t.Errorf("SectionRect = %+v, 期望 {Top:-200 Height:2500}", r)
	}

	if _, ok := page.SectionRect("missing"); ok {
		t.Error("不存在的区块应返回 false")
	}
}

func TestPageScrollClamp(t *testing.T) {
	page := newTestPage()
	if changed := page.ScrollTo(-100); changed {
		t.Error("从 0 滚到负值不应改变偏移")
	}
	page.ScrollTo(99999)
	if page.Offset() != page.MaxOffset() {
		t.Errorf("Offset = %v, 期望限制在 %v", page.Offset(), page.MaxOffset())
	}
}

func TestPageSmoothScroll(t *testing.T) {
	page := newTestPage()
	page.SetSmoothDuration(0.2)
	page.ScrollBy(400)

	changedFrames := 0
	prev := page.Offset()
	for i := 0; i < 30; i++ {
		if page.Update(1.0 / 60) {
			changedFrames++
			if page.Offset() < prev {
				t.Fatalf("平滑滚动不应回退: %v < %v", page.Offset(), prev)
			}
			prev = page.Offset()
		}
	}

	if changedFrames == 0 {
		t.Fatal("平滑滚动应产生 scroll 事件")
	}
	if math.Abs(page.Offset()-400) > 1e-9 {
		t.Errorf("最终 Offset = %v, 期望 400", page.Offset())
	}
	if page.Update(1.0 / 60) {
		t.Error("动画结束后不应再产生事件")
	}
}

func TestPageAnimateTo(t *testing.T) {
	page := newTestPage()
	page.SetSmoothDuration(0.2)

	page.ScrollBy(300)
	page.AnimateTo(1000)
	for range 20 {
		page.Update(0.05)
	}
	if got := page.Offset(); got != 1000 {
		t.Errorf("AnimateTo(1000) 结束后 Offset = %v, 期望 1000", got)
	}

	page.AnimateTo(99999)
	for range 20 {
		page.Update(0.05)
	}
	if got := page.Offset(); got != page.MaxOffset() {
		t.Errorf("超出范围应夹取到 MaxOffset，实际 %v", got)
	}
}

func TestPageResizeClampsOffset(t *testing.T) {
	page := newTestPage()
	page.ScrollTo(page.MaxOffset())
	page.Resize(utils.Viewport{Width: 1000, Height: 250})
	if page.Offset() > page.MaxOffset() {
		t.Errorf("Resize 后 Offset %v 超过 MaxOffset %v", page.Offset(), page.MaxOffset())
	}
}
