package systems

import (
	"math"
	"testing"

	"github.com/gonewx/magnumopus/pkg/components"
	"github.com/gonewx/magnumopus/pkg/ecs"
	"github.com/gonewx/magnumopus/pkg/entities"
	"github.com/gonewx/magnumopus/pkg/geometry"
	"github.com/gonewx/magnumopus/pkg/utils"
)

const eps = 1e-9

func mountGeometry(t *testing.T) (*ecs.EntityManager, *entities.GeometryEntities, *GeometrySystem) {
	t.Helper()
	em := ecs.NewEntityManager()
	vp := utils.Viewport{Width: 1000, Height: 800}
	layout := geometry.NewRingLayout(vp, "VISITA • ", nil)
	g := entities.NewGeometryEntities(em, GeometrySection, geometry.Figure(), layout)
	return em, g, NewGeometrySystem(em, layout)
}

func TestGeometrySystemApply(t *testing.T) {
	tests := []struct {
		name          string
		progress      float64
		wantOuterOp   float64
		wantClip      float64
		wantCinematic float64
		wantLayerOp   float64
	}{
		{"起点", 0, 0, 0, 0, 1},
		{"重组完成", 0.6, 1, 0, 0, 1},
		{"擦除完成", 0.8, 1, geometry.ClipOvershoot, 0, 0},
		{"影像完全显现", 0.98, 1, geometry.ClipOvershoot, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em, g, sys := mountGeometry(t)
			sys.Apply(tt.progress)

			outer, _ := ecs.GetComponent[*components.TransformComponent](em, g.Parts[0])
			if math.Abs(outer.Opacity-tt.wantOuterOp) > eps {
				t.Errorf("外圈透明度: 期望 %v，得到 %v", tt.wantOuterOp, outer.Opacity)
			}

			portal, _ := ecs.GetComponent[*components.LayerComponent](em, g.Layers[components.LayerGeometryPortal])
			if math.Abs(portal.ClipRadius-tt.wantClip) > eps {
				t.Errorf("裁剪半径: 期望 %v，得到 %v", tt.wantClip, portal.ClipRadius)
			}

			cin, _ := ecs.GetComponent[*components.LayerComponent](em, g.Layers[components.LayerCinematic])
			if math.Abs(cin.Opacity-tt.wantCinematic) > eps {
				t.Errorf("影像层透明度: 期望 %v，得到 %v", tt.wantCinematic, cin.Opacity)
			}

			for _, l := range []components.Layer{components.LayerGeometryTitle, components.LayerGeometryFigure, components.LayerGeometryRing} {
				layer, _ := ecs.GetComponent[*components.LayerComponent](em, g.Layers[l])
				if math.Abs(layer.Opacity-tt.wantLayerOp) > eps {
					t.Errorf("%s 透明度: 期望 %v，得到 %v", l, tt.wantLayerOp, layer.Opacity)
				}
			}
		})
	}
}

func TestGeometrySystemGlyphsReachRing(t *testing.T) {
	em, g, sys := mountGeometry(t)
	sys.Apply(1)

	layout := sys.Layout()
	for i, id := range g.Glyphs {
		tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		want := layout.Glyphs[i]
		if math.Abs(tr.TranslateX-want.TargetX) > 1e-6 || math.Abs(tr.TranslateY-want.TargetY) > 1e-6 {
			t.Errorf("字符 %d: 期望 (%v,%v)，得到 (%v,%v)", i, want.TargetX, want.TargetY, tr.TranslateX, tr.TranslateY)
		}
		if tr.Opacity != 1 {
			t.Errorf("字符 %d: 期望完全不透明，得到 %v", i, tr.Opacity)
		}
	}
}

func TestGeometrySystemMissingTargets(t *testing.T) {
	em := ecs.NewEntityManager()
	sys := NewGeometrySystem(em, nil)

	// 没有任何实体时不应 panic
	f := sys.Apply(0.5)
	if len(f.Glyphs) != 0 {
		t.Errorf("没有布局时不应有字符帧，得到 %d", len(f.Glyphs))
	}

	// 索引越界的字符被跳过
	id := em.CreateEntity()
	em.AddComponent(id, &components.GlyphComponent{Index: 5, Rune: 'X'})
	em.AddComponent(id, &components.TransformComponent{TranslateX: 42})
	sys.Apply(1)
	tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
	if tr.TranslateX != 42 {
		t.Errorf("越界字符不应被修改，得到 %v", tr.TranslateX)
	}

	if _, ok := sys.Frame(); !ok {
		t.Error("Apply 之后应有帧")
	}
}

func TestGeometrySystemIgnoresOtherSections(t *testing.T) {
	em, _, sys := mountGeometry(t)
	id := em.CreateEntity()
	em.AddComponent(id, &components.NodeComponent{Section: SymbolsSection, Layer: components.LayerCinematic})
	em.AddComponent(id, &components.LayerComponent{Opacity: 0.25})

	sys.Apply(1)
	layer, _ := ecs.GetComponent[*components.LayerComponent](em, id)
	if layer.Opacity != 0.25 {
		t.Errorf("其他区块的层不应被修改，得到 %v", layer.Opacity)
	}
}

func TestPortalRadius(t *testing.T) {
	vp := utils.Viewport{Width: 300, Height: 400}
	// 对角线 500，100% 对应 500/√2
	if got, want := PortalRadius(100, vp), 500/math.Sqrt2; math.Abs(got-want) > 1e-9 {
		t.Errorf("期望 %v，得到 %v", want, got)
	}
	if PortalRadius(0, vp) != 0 {
		t.Error("0% 应得到 0")
	}
}
