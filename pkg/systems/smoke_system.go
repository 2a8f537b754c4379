package systems

import (
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ojrac/opensimplex-go"

	"github.com/gonewx/magnumopus/pkg/components"
	"github.com/gonewx/magnumopus/pkg/ecs"
	"github.com/gonewx/magnumopus/pkg/utils"
)

// 烟雾参数
const (
	SmokeLifetimeMin = 12.0
	SmokeLifetimeMax = 18.0
	SmokeDrift       = 0.06 // 漂移幅度（视口比例）
	SmokeDriftSpeed  = 0.05
	smokeLayers      = 8
)

// SmokeAnchor 一团烟雾的基准位置与颜色
type SmokeAnchor struct {
	X, Y     float64 // 视口比例
	Radius   float64 // vmin 比例
	Paint    utils.Paint
	MaxAlpha float64
}

// DefaultSmokeAnchors 左上蓝、右下紫、中央金
func DefaultSmokeAnchors() []SmokeAnchor {
	return []SmokeAnchor{
		{X: 0.25, Y: 0.25, Radius: 0.5, Paint: utils.MustHex("#1E3A8A"), MaxAlpha: 0.10},
		{X: 0.75, Y: 0.75, Radius: 0.5, Paint: utils.MustHex("#581C87"), MaxAlpha: 0.10},
		{X: 0.50, Y: 0.50, Radius: 0.6, Paint: utils.MustHex("#713F12"), MaxAlpha: 0.05},
	}
}

// SmokeSystem 背景烟雾：每个锚点保持一团，按噪声漂移，寿命结束后在附近重生
//
// 过期删除交给 LifetimeSystem，本系统只补齐缺失的锚点。
type SmokeSystem struct {
	entityManager *ecs.EntityManager
	anchors       []SmokeAnchor
	noise         opensimplex.Noise
	rng           *rand.Rand
	elapsed       float64
}

// NewSmokeSystem 创建烟雾系统
func NewSmokeSystem(em *ecs.EntityManager, anchors []SmokeAnchor, seed int64) *SmokeSystem {
	return &SmokeSystem{
		entityManager: em,
		anchors:       anchors,
		noise:         opensimplex.New(seed),
		rng:           rand.New(rand.NewSource(seed)),
	}
}

// Update 补齐烟雾并推进漂移
func (s *SmokeSystem) Update(deltaTime float64) {
	s.elapsed += deltaTime

	present := make([]bool, len(s.anchors))
	for _, id := range ecs.GetEntitiesWith1[*components.SmokePuffComponent](s.entityManager) {
		puff, _ := ecs.GetComponent[*components.SmokePuffComponent](s.entityManager, id)
		if puff.Anchor < 0 || puff.Anchor >= len(s.anchors) {
			continue
		}
		present[puff.Anchor] = true

		a := s.anchors[puff.Anchor]
		t := s.elapsed * SmokeDriftSpeed
		puff.X = a.X + utils.Clamp(s.noise.Eval2(puff.NoiseOffset, t), -1, 1)*SmokeDrift
		puff.Y = a.Y + utils.Clamp(s.noise.Eval2(puff.NoiseOffset+100, t), -1, 1)*SmokeDrift
	}

	for i, ok := range present {
		if !ok {
			s.spawn(i)
		}
	}
}

func (s *SmokeSystem) spawn(anchor int) ecs.EntityID {
	a := s.anchors[anchor]
	id := s.entityManager.CreateEntity()
	s.entityManager.AddComponent(id, &components.SmokePuffComponent{
		Anchor:      anchor,
		X:           a.X,
		Y:           a.Y,
		Radius:      a.Radius * (0.9 + 0.2*s.rng.Float64()),
		NoiseOffset: s.rng.Float64() * 1000,
		MaxAlpha:    a.MaxAlpha,
		Paint:       a.Paint,
	})
	s.entityManager.AddComponent(id, &components.LifetimeComponent{
		MaxLifetime: SmokeLifetimeMin + s.rng.Float64()*(SmokeLifetimeMax-SmokeLifetimeMin),
	})
	return id
}

// PuffAlpha 随寿命淡入淡出
func PuffAlpha(maxAlpha, fraction float64) float64 {
	return maxAlpha * math.Sin(math.Pi*utils.Clamp01(fraction))
}

// Draw 以多层同心圆近似大半径模糊
func (s *SmokeSystem) Draw(screen *ebiten.Image, vp utils.Viewport) {
	if !vp.Valid() {
		return
	}
	for _, id := range ecs.GetEntitiesWith2[*components.SmokePuffComponent, *components.LifetimeComponent](s.entityManager) {
		puff, _ := ecs.GetComponent[*components.SmokePuffComponent](s.entityManager, id)
		life, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)

		alpha := PuffAlpha(puff.MaxAlpha, life.Fraction())
		if alpha <= 0 {
			continue
		}
		c := utils.Point{X: puff.X * vp.Width, Y: puff.Y * vp.Height}
		r := puff.Radius * vp.VMin()
		for i := 0; i < smokeLayers; i++ {
			k := 1 - 0.7*float64(i)/smokeLayers
			utils.FillCircle(screen, c, r*k, puff.Paint.WithAlpha(alpha/smokeLayers*2))
		}
	}
}
