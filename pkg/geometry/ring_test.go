package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gonewx/magnumopus/pkg/utils"
)

func TestRingLayoutStructure(t *testing.T) {
	vp := utils.Viewport{Width: 1000, Height: 600}
	phrase := "VISITA • INTERIORA • TERRAE • "
	layout := NewRingLayout(vp, phrase, rand.New(rand.NewSource(42)))

	if got, want := len(layout.Glyphs), len([]rune(phrase)); got != want {
		t.Fatalf("glyph 数量 = %d, 期望 %d", got, want)
	}
	if !approx(layout.Radius, 252) {
		t.Errorf("Radius = %v, 期望 252 (42vmin)", layout.Radius)
	}

	step := 360.0 / float64(len(layout.Glyphs))
	for i, g := range layout.Glyphs {
		if d := math.Hypot(g.TargetX, g.TargetY); math.Abs(d-layout.Radius) > 1e-6 {
			t.Errorf("glyph %d 目标点不在圆上: r = %v", i, d)
		}
		if !approx(g.TargetRot, float64(i)*step) {
			t.Errorf("glyph %d TargetRot = %v, 期望 %v", i, g.TargetRot, float64(i)*step)
		}
		if math.Abs(g.StartX) > vp.Width*0.75 || math.Abs(g.StartY) > vp.Height*0.75 {
			t.Errorf("glyph %d 起点超出 1.5 倍视口: (%v, %v)", i, g.StartX, g.StartY)
		}
		if g.StartRot < 0 || g.StartRot >= 360 {
			t.Errorf("glyph %d StartRot = %v", i, g.StartRot)
		}
	}

	// 第一个字符位于正上方
	first := layout.Glyphs[0]
	if math.Abs(first.TargetX) > 1e-9 || !approx(first.TargetY, -layout.Radius) {
		t.Errorf("第一个字符目标 = (%v, %v), 期望 (0, %v)", first.TargetX, first.TargetY, -layout.Radius)
	}
}

func TestRingLayoutDeterministic(t *testing.T) {
	vp := utils.Viewport{Width: 800, Height: 800}
	a := NewRingLayout(vp, "LAPIDEM", rand.New(rand.NewSource(9)))
	b := NewRingLayout(vp, "LAPIDEM", rand.New(rand.NewSource(9)))
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("相同种子应得到相同布局 (-a +b):\n%s", diff)
	}
}

func TestRingLayoutEmptyPhrase(t *testing.T) {
	layout := NewRingLayout(utils.Viewport{Width: 800, Height: 600}, "", nil)
	if len(layout.Glyphs) != 0 {
		t.Errorf("空短语 glyph 数 = %d", len(layout.Glyphs))
	}
}

func TestFigureStrokes(t *testing.T) {
	groups := Figure()
	if len(groups) != len(Parts) {
		t.Fatalf("Figure parts = %d, 期望 %d", len(groups), len(Parts))
	}
	for i, g := range groups {
		if g.Part != Parts[i] {
			t.Errorf("groups[%d].Part = %v, 期望 %v", i, g.Part, Parts[i])
		}
	}
	if n := StrokeCount(groups); n != 24 {
		t.Errorf("StrokeCount = %d, 期望 24", n)
	}
}

func TestGlowScheduler(t *testing.T) {
	g := NewGlowScheduler(1000, 0.5, rand.New(rand.NewSource(1)))

	g.Update(0.4)
	if g.ActiveCount() != 0 {
		t.Fatal("初始延迟内不应发光")
	}

	g.Update(0.1)
	if g.ActiveCount() != 1 {
		t.Fatalf("初始延迟结束应立即触发一次, ActiveCount = %d", g.ActiveCount())
	}

	// 触发间隔最多 0.8s，2s 内至少再触发两次
	g.Update(1.9)
	if g.ActiveCount() < 2 {
		t.Errorf("ActiveCount = %d, 期望至少 2", g.ActiveCount())
	}

	// 没有新触发时全部熄灭
	idle := NewGlowScheduler(0, 0, nil)
	idle.Update(5)
	if idle.ActiveCount() != 0 {
		t.Error("无笔画时不应发光")
	}
}

func TestGlowExpires(t *testing.T) {
	g := NewGlowScheduler(1, 0, rand.New(rand.NewSource(1)))
	g.Update(0)
	if !g.Active(0) {
		t.Fatal("stroke 0 应发光")
	}
	// 停止触发后，已点亮的笔画按时熄灭
	g.strokes = 0
	g.Update(GlowDuration + GlowDelayMax)
	if g.Active(0) {
		t.Error("超过持续时间后应熄灭")
	}
}
