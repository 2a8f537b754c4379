package alchemy

import (
	"errors"
	"testing"

	"github.com/gonewx/magnumopus/pkg/frame"
	"github.com/gonewx/magnumopus/pkg/utils"
)

func newTestEngine(t *testing.T, mutate func(*Config)) *Engine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Particles = 50
	cfg.Seed = 42
	if mutate != nil {
		mutate(&cfg)
	}
	e, err := NewEngine(cfg, testBounds)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	t.Cleanup(e.Close)
	return e
}

func TestNewEngine(t *testing.T) {
	e := newTestEngine(t, nil)
	if got := len(e.Particles()); got != 50 {
		t.Fatalf("粒子数 = %d, 期望 50", got)
	}
	if c := e.Counts(); c.Transmuted != 0 || c.Untransformed != 50 {
		t.Errorf("Counts = %+v, 期望 {0 50}", c)
	}
	if len(e.Sparks()) != 0 || len(e.Bonds()) != 0 {
		t.Error("初始不应有火花或键合")
	}

	if _, err := NewEngine(Config{Particles: -1}, testBounds); err == nil {
		t.Error("无效配置应返回错误")
	}
}

func TestEngineDeterministicWithSeed(t *testing.T) {
	a := newTestEngine(t, nil)
	b := newTestEngine(t, nil)
	for i := 0; i < 20; i++ {
		a.Tick()
		b.Tick()
	}
	pa, pb := a.Particles(), b.Particles()
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("相同种子的粒子 %d 不一致: %+v vs %+v", i, pa[i], pb[i])
		}
	}
}

func TestEngineTransmutesUnderPointer(t *testing.T) {
	e := newTestEngine(t, func(c *Config) { c.PointerSparkChance = 0 })
	target := e.Particles()[0].Pos

	e.PointerMove(target.X, target.Y)
	e.Tick()

	c := e.Counts()
	if c.Transmuted < 1 {
		t.Fatalf("指针下的粒子应被嬗变, Counts = %+v", c)
	}
	if c.Transmuted+c.Untransformed != 50 {
		t.Errorf("统计之和 = %d, 期望 50", c.Transmuted+c.Untransformed)
	}
	if len(e.Sparks()) < 3*c.Transmuted {
		t.Errorf("火花数 = %d, 每次嬗变至少 3 个", len(e.Sparks()))
	}

	// 离开后嬗变数只增不减
	e.PointerLeave()
	if e.Pointer().Present {
		t.Fatal("PointerLeave 后指针应不存在")
	}
	prev := c.Transmuted
	for i := 0; i < 100; i++ {
		e.Tick()
		if got := e.Counts().Transmuted; got < prev {
			t.Fatalf("tick %d: 嬗变数从 %d 减少到 %d", i, prev, got)
		}
	}
	if len(e.Particles()) != 50 {
		t.Error("粒子池大小应保持不变")
	}
}

func TestEngineSparksExpire(t *testing.T) {
	e := newTestEngine(t, func(c *Config) {
		c.SparkChance = 0
		c.PointerSparkChance = 1
	})
	e.PointerMove(-1000, -1000) // 画布外，只产生指针火花
	if len(e.Sparks()) != 1 || !e.Sparks()[0].Pointer {
		t.Fatalf("PointerSparkChance=1 时应生成一个指针火花, got %+v", e.Sparks())
	}
	e.PointerLeave()

	prevLife := e.Sparks()[0].Life
	e.Tick()
	if s := e.Sparks(); len(s) == 1 && s[0].Life >= prevLife {
		t.Errorf("火花寿命应递减: %v -> %v", prevLife, s[0].Life)
	}

	for i := 0; i < 150; i++ {
		e.Tick()
	}
	if n := len(e.Sparks()); n != 0 {
		t.Errorf("寿命耗尽后火花应被移除, 剩余 %d", n)
	}
}

func TestEngineLoop(t *testing.T) {
	e := newTestEngine(t, nil)
	clock := frame.NewClock()

	frames := 0
	cancel, err := e.Start(clock, func(*Engine) { frames++ })
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := e.Start(clock, nil); !errors.Is(err, ErrLoopRunning) {
		t.Errorf("重复 Start err = %v, 期望 ErrLoopRunning", err)
	}

	for i := 0; i < 5; i++ {
		clock.Pump(1.0 / 60)
	}
	if e.Ticks() != 5 || frames != 5 {
		t.Errorf("Ticks = %d, frames = %d, 期望 5/5", e.Ticks(), frames)
	}

	cancel()
	cancel()
	for i := 0; i < 3; i++ {
		clock.Pump(1.0 / 60)
	}
	if e.Ticks() != 5 {
		t.Errorf("取消后仍在 tick: Ticks = %d", e.Ticks())
	}
	if clock.Pending() != 0 || e.Running() {
		t.Errorf("取消后不应有待执行帧: Pending = %d", clock.Pending())
	}

	e.Close()
	if _, err := e.Start(clock, nil); !errors.Is(err, ErrEngineStopped) {
		t.Errorf("Close 后 Start err = %v, 期望 ErrEngineStopped", err)
	}
}

func TestEngineCloseCancelsLoop(t *testing.T) {
	e := newTestEngine(t, nil)
	clock := frame.NewClock()
	if _, err := e.Start(clock, nil); err != nil {
		t.Fatalf("Start: %v", err)
	}
	clock.Pump(0)
	e.Close()
	clock.Pump(0)
	if e.Ticks() != 1 {
		t.Errorf("Close 后仍在 tick: Ticks = %d", e.Ticks())
	}
}

type call struct {
	op    string
	a, b  utils.Point
	size  float64
	paint utils.Paint
	glow  float64
}

type recordingSurface struct {
	calls []call
}

func (r *recordingSurface) Clear() { r.calls = append(r.calls, call{op: "clear"}) }

func (r *recordingSurface) Line(from, to utils.Point, width float64, paint utils.Paint) {
	r.calls = append(r.calls, call{op: "line", a: from, b: to, size: width, paint: paint})
}

func (r *recordingSurface) Disc(center utils.Point, radius float64, paint utils.Paint, glow float64) {
	r.calls = append(r.calls, call{op: "disc", a: center, size: radius, paint: paint, glow: glow})
}

func TestRender(t *testing.T) {
	e := newTestEngine(t, nil)
	e.particles = []Particle{
		{Pos: utils.Point{X: 0, Y: 0}, Size: 2, GoldAlpha: 0.8, Transmuted: true, Progress: 1},
		{Pos: utils.Point{X: 40, Y: 0}, Size: 2, LeadAlpha: 0.4},
	}
	e.particles[1].Transmuted = true
	e.particles[1].GoldAlpha = 0.5
	e.particles[1].Progress = 0.5
	e.bonds = ComputeBonds(e.particles, 80, 0.2)
	e.sparks = []Spark{{Pos: utils.Point{X: 5, Y: 5}, Size: 2, Life: 0.6, Pointer: true}}

	s := &recordingSurface{}
	e.Render(s)

	ops := make([]string, len(s.calls))
	for i, c := range s.calls {
		ops[i] = c.op
	}
	want := []string{"clear", "line", "disc", "disc", "line", "line", "disc"}
	if len(ops) != len(want) {
		t.Fatalf("ops = %v, 期望 %v", ops, want)
	}
	for i := range want {
		if ops[i] != want[i] {
			t.Fatalf("ops = %v, 期望 %v", ops, want)
		}
	}

	if bond := s.calls[1]; bond.size != BondWidth || bond.paint.A < 0.0999 || bond.paint.A > 0.1001 {
		t.Errorf("键合线 = %+v, 期望宽 0.5 透明度 0.1", bond)
	}
	if d := s.calls[2]; d.size != 3 || d.glow != 10 || d.paint.A != 0.8 {
		t.Errorf("金粒子 = %+v, 期望半径 3 发光 10", d)
	}
	if d := s.calls[3]; d.size != 2.5 || d.glow != 5 {
		t.Errorf("半嬗变粒子 = %+v, 期望半径 2.5 发光 5", d)
	}
	if sp := s.calls[6]; sp.size != 1 || sp.paint.A != 0.6 || sp.paint.R != 255 || sp.paint.B != 255 {
		t.Errorf("指针火花 = %+v, 期望白色 透明度 0.6", sp)
	}
}
