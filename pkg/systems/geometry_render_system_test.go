package systems

import (
	"math/rand"
	"testing"

	"github.com/gonewx/magnumopus/pkg/config"
	"github.com/gonewx/magnumopus/pkg/ecs"
	"github.com/gonewx/magnumopus/pkg/geometry"
)

func TestGeometryRenderSystemTexture(t *testing.T) {
	em, _, sys := mountGeometry(t)
	render := NewGeometryRenderSystem(em, config.GeometryContent{Caption: "MAGNUM OPUS"}, nil, 1)

	sys.Apply(0.5)
	render.Update(0.016)
	if render.texDirty {
		t.Error("影像层不可见时不应生成纹理")
	}

	sys.Apply(0.9)
	render.Update(0.016)
	if !render.texDirty {
		t.Fatal("影像层可见时应生成纹理")
	}
	for i := 3; i < len(render.texPixels); i += 4 {
		if render.texPixels[i] != 0xff {
			t.Fatalf("纹理像素 %d 应不透明", i/4)
		}
	}
}

func TestGeometryRenderSystemAdvancesGlow(t *testing.T) {
	em, _, _ := mountGeometry(t)
	glow := geometry.NewGlowScheduler(geometry.StrokeCount(geometry.Figure()), 0.5, rand.New(rand.NewSource(2)))
	render := NewGeometryRenderSystem(em, config.GeometryContent{}, glow, 1)

	render.Update(0.4)
	if glow.ActiveCount() != 0 {
		t.Errorf("初始延迟内不应有闪烁，得到 %d", glow.ActiveCount())
	}
	render.Update(0.2)
	if glow.ActiveCount() == 0 {
		t.Error("初始延迟之后应有笔画在闪烁")
	}
}

func TestGeometryRenderSystemRamp(t *testing.T) {
	em := ecs.NewEntityManager()
	render := NewGeometryRenderSystem(em, config.GeometryContent{}, nil, 1)
	first, last := render.ramp[0], render.ramp[255]
	if first.A != 0xff || last.A != 0xff {
		t.Error("色带应完全不透明")
	}
	if int(last.R)+int(last.G) <= int(first.R)+int(first.G) {
		t.Errorf("色带应从暗到亮: %+v -> %+v", first, last)
	}
}
