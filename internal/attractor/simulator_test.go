package attractor_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/chaosviz/internal/attractor"
)

func snapshot(sim *attractor.Simulator) []attractor.Point {
	return append([]attractor.Point(nil), sim.Points()...)
}

func smallOptions(maxPoints int) attractor.Options {
	opts := attractor.DefaultOptions()
	opts.MaxPoints = maxPoints
	return opts
}

var _ = Describe("Step", func() {
	It("matches the hand-computed first point from the seed", func() {
		p := attractor.Step(attractor.Seed, 0.208, 0.05)

		Expect(p.X).To(BeNumerically("~", 0.09896, 1e-9))
		Expect(p.Y).To(BeNumerically("==", 0))
		Expect(p.Z).To(BeNumerically("~", 0.0049917, 1e-7))
	})

	It("is bit-for-bit deterministic", func() {
		for _, b := range []float64{0, 0.18, 0.208, 0.5, 1} {
			p := attractor.Point{X: 1.1, Y: -2.3, Z: 0.7}
			a := attractor.Step(p, b, 0.05)
			c := attractor.Step(p, b, 0.05)

			Expect(math.Float64bits(a.X)).To(Equal(math.Float64bits(c.X)))
			Expect(math.Float64bits(a.Y)).To(Equal(math.Float64bits(c.Y)))
			Expect(math.Float64bits(a.Z)).To(Equal(math.Float64bits(c.Z)))
		}
	})
})

var _ = Describe("Simulator", func() {
	var sim *attractor.Simulator

	BeforeEach(func() {
		sim = attractor.New(0.208, attractor.DefaultOptions())
	})

	It("starts with only the seed point", func() {
		Expect(sim.Len()).To(Equal(1))
		Expect(sim.Points()).To(Equal([]attractor.Point{{X: 0.1, Y: 0, Z: 0}}))
		Expect(sim.Dissipation()).To(Equal(0.208))
		Expect(sim.Angle()).To(BeZero())
	})

	It("appends the integrated points in generation order", func() {
		sim.Advance()
		pts := sim.Points()

		Expect(pts[1]).To(Equal(attractor.Step(pts[0], 0.208, attractor.DefaultDt)))
		for i := 1; i < len(pts); i++ {
			Expect(pts[i]).To(Equal(attractor.Step(pts[i-1], 0.208, attractor.DefaultDt)))
		}
	})

	Describe("literal growth", func() {
		It("appends 150 points per frame below the cap and 50 forever after", func() {
			frames := 0
			for sim.Len() < attractor.DefaultMaxPoints {
				Expect(sim.Advance()).To(Equal(150))
				frames++
			}
			Expect(frames).To(Equal(667))
			Expect(sim.Len()).To(Equal(1 + 667*150))
			Expect(sim.Capped()).To(BeTrue())

			for i := 0; i < 20; i++ {
				before := sim.Len()
				Expect(sim.Advance()).To(Equal(50))
				Expect(sim.Len()).To(Equal(before + 50))
			}
		})

		It("checks the cap after the base batch", func() {
			sim = attractor.New(0.208, smallOptions(40))

			Expect(sim.Advance()).To(Equal(50))
			Expect(sim.Advance()).To(Equal(50))
			Expect(sim.Len()).To(Equal(101))
		})

		It("lets the bloom batch overshoot the cap", func() {
			sim = attractor.New(0.208, smallOptions(1000))

			for i := 0; i < 7; i++ {
				Expect(sim.Advance()).To(Equal(150))
			}
			Expect(sim.Len()).To(Equal(1051))
			Expect(sim.Advance()).To(Equal(50))
		})
	})

	Describe("hard-stop growth", func() {
		BeforeEach(func() {
			opts := smallOptions(1000)
			opts.Growth = attractor.GrowthHardStop
			sim = attractor.New(0.208, opts)
		})

		It("never exceeds the cap and then stops appending", func() {
			for i := 0; i < 6; i++ {
				Expect(sim.Advance()).To(Equal(150))
			}
			Expect(sim.Advance()).To(Equal(99))
			Expect(sim.Len()).To(Equal(1000))

			for i := 0; i < 10; i++ {
				Expect(sim.Advance()).To(BeZero())
			}
			Expect(sim.Len()).To(Equal(1000))
			Expect(sim.Frames()).To(Equal(uint64(17)))
		})

		It("produces the same prefix as literal growth", func() {
			literal := attractor.New(0.208, smallOptions(1000))
			for i := 0; i < 10; i++ {
				sim.Advance()
				literal.Advance()
			}
			Expect(literal.Points()[:sim.Len()]).To(Equal(sim.Points()))
		})

		It("grows again after a reset", func() {
			for !sim.Capped() {
				sim.Advance()
			}
			sim.Reset()
			Expect(sim.Advance()).To(Equal(150))
		})
	})

	Describe("Reset", func() {
		It("truncates to the seed and keeps dissipation and angle", func() {
			sim.SetDissipation(0.3)
			for i := 0; i < 25; i++ {
				sim.Advance()
				sim.Rotate()
			}
			angle := sim.Angle()

			sim.Reset()

			Expect(sim.Len()).To(Equal(1))
			Expect(sim.Points()).To(Equal([]attractor.Point{attractor.Seed}))
			Expect(sim.Dissipation()).To(Equal(0.3))
			Expect(sim.Angle()).To(Equal(angle))
		})

		It("resets from the capped state too", func() {
			sim = attractor.New(0.208, smallOptions(200))
			for i := 0; i < 10; i++ {
				sim.Advance()
			}
			sim.Reset()
			Expect(sim.Len()).To(Equal(1))
			Expect(sim.Last()).To(Equal(attractor.Seed))
		})
	})

	It("never mutates points that were already generated", func() {
		for i := 0; i < 5; i++ {
			sim.Advance()
		}
		before := snapshot(sim)

		for i := 0; i < 10; i++ {
			sim.Advance()
		}

		Expect(sim.Points()[:len(before)]).To(Equal(before))
	})

	Describe("dissipation changes", func() {
		It("only affect points generated after the change", func() {
			reference := attractor.New(0.208, attractor.DefaultOptions())
			for i := 0; i < 3; i++ {
				sim.Advance()
				reference.Advance()
			}
			n := sim.Len()
			old := snapshot(sim)

			sim.SetDissipation(0.1)
			sim.Advance()
			reference.Advance()

			Expect(sim.Points()[:n]).To(Equal(old))
			Expect(sim.Points()[n]).To(Equal(attractor.Step(old[n-1], 0.1, attractor.DefaultDt)))
			Expect(sim.Points()[n]).NotTo(Equal(reference.Points()[n]))
		})

		It("clamps to the slider range", func() {
			sim.SetDissipation(1.5)
			Expect(sim.Dissipation()).To(Equal(1.0))

			sim.SetDissipation(-0.2)
			Expect(sim.Dissipation()).To(Equal(0.0))

			sim.SetDissipation(math.NaN())
			Expect(sim.Dissipation()).To(Equal(0.0))
		})

		It("clamps the constructor value", func() {
			Expect(attractor.New(3, attractor.DefaultOptions()).Dissipation()).To(Equal(1.0))
		})
	})

	Describe("Rotate", func() {
		It("advances the angle by the step each call", func() {
			Expect(sim.Rotate()).To(BeNumerically("~", 0.01, 1e-15))
			Expect(sim.Rotate()).To(BeNumerically("~", 0.02, 1e-15))
		})

		It("wraps without changing the viewing direction", func() {
			opts := attractor.DefaultOptions()
			opts.WrapAngle = true
			wrapped := attractor.New(0.208, opts)

			for i := 0; i < 1000; i++ {
				sim.Rotate()
				wrapped.Rotate()
			}

			Expect(wrapped.Angle()).To(BeNumerically(">=", 0))
			Expect(wrapped.Angle()).To(BeNumerically("<", 2*math.Pi))
			Expect(math.Sin(wrapped.Angle())).To(BeNumerically("~", math.Sin(sim.Angle()), 1e-9))
			Expect(math.Cos(wrapped.Angle())).To(BeNumerically("~", math.Cos(sim.Angle()), 1e-9))
		})
	})
})

var _ = DescribeTable("ParseGrowth",
	func(in string, want attractor.Growth, ok bool) {
		g, err := attractor.ParseGrowth(in)
		if !ok {
			Expect(err).To(MatchError(attractor.ErrUnknownGrowth))
			return
		}
		Expect(err).NotTo(HaveOccurred())
		Expect(g).To(Equal(want))
		Expect(g.String()).NotTo(BeEmpty())
	},
	Entry("empty defaults to literal", "", attractor.GrowthLiteral, true),
	Entry("literal", "literal", attractor.GrowthLiteral, true),
	Entry("hard_stop", "hard_stop", attractor.GrowthHardStop, true),
	Entry("hard-stop", "Hard-Stop", attractor.GrowthHardStop, true),
	Entry("unknown", "ring", attractor.GrowthLiteral, false),
)
