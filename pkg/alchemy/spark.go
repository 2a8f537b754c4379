package alchemy

import (
	"math"
	"math/rand"

	"github.com/gonewx/magnumopus/pkg/utils"
)

// Spark is a short-lived decorative mote. Life starts at 1 and falls by
// Decay every tick; the spark is removed once Life <= 0.
type Spark struct {
	Pos   utils.Point
	Vel   utils.Point
	Size  float64
	Life  float64
	Decay float64
	// Pointer 由指针移动产生的火花（白色），否则为金色
	Pointer bool
}

// NewSpark 在 at 附近生成火花：位置抖动 ±10，速度 ±0.5
func NewSpark(at utils.Point, pointer bool, rng *rand.Rand) Spark {
	return Spark{
		Pos: utils.Point{
			X: at.X + (rng.Float64()-0.5)*20,
			Y: at.Y + (rng.Float64()-0.5)*20,
		},
		Vel:     utils.Point{X: rng.Float64() - 0.5, Y: rng.Float64() - 0.5},
		Size:    rng.Float64()*2 + 0.5,
		Life:    1,
		Decay:   rng.Float64()*0.03 + 0.01,
		Pointer: pointer,
	}
}

// AdvanceSpark moves the spark, lifts it by drift and decays its life.
func AdvanceSpark(s Spark, drift float64) Spark {
	s.Pos = s.Pos.Add(s.Vel)
	s.Pos.Y -= drift
	s.Life -= s.Decay
	return s
}

// Alive 火花是否仍应保留
func (s Spark) Alive() bool {
	return s.Life > 0
}

// Bond is a connective line between two transmuted particles.
type Bond struct {
	A, B  int // 粒子下标，A < B
	From  utils.Point
	To    utils.Point
	Alpha float64
}

// ComputeBonds returns a bond for every distinct pair of transmuted
// particles closer than maxDist, with alpha falling linearly to 0 at maxDist.
// Complexity is O(n²) in the pool size.
func ComputeBonds(particles []Particle, maxDist, maxAlpha float64) []Bond {
	var bonds []Bond
	for i := range particles {
		if !particles[i].Transmuted {
			continue
		}
		for j := i + 1; j < len(particles); j++ {
			if !particles[j].Transmuted {
				continue
			}
			a, b := particles[i].Pos, particles[j].Pos
			d := math.Hypot(a.X-b.X, a.Y-b.Y)
			if d < maxDist {
				bonds = append(bonds, Bond{
					A: i, B: j,
					From:  a,
					To:    b,
					Alpha: maxAlpha * (1 - d/maxDist),
				})
			}
		}
	}
	return bonds
}
