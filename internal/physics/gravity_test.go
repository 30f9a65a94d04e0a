package physics_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/galaxsim/internal/dynamo"
	"github.com/san-kum/galaxsim/internal/physics"
)

func allContributors() physics.Params {
	p := physics.DefaultParams()
	p.MassCutoff = 0
	return p
}

func accumulate(g *physics.Gravity, bodies []dynamo.Body) []dynamo.Body {
	g.Accumulate(bodies, dynamo.Capture(bodies, nil))
	return bodies
}

var _ = Describe("Gravity", func() {
	var g *physics.Gravity

	BeforeEach(func() {
		var err error
		g, err = physics.NewGravity(allContributors())
		Expect(err).NotTo(HaveOccurred())
	})

	It("applies G*m1*m2/r^2 along the separation", func() {
		bodies := accumulate(g, []dynamo.Body{
			dynamo.NewBody(dynamo.Vec2{X: 0, Y: 0}, dynamo.Vec2{}, 10),
			dynamo.NewBody(dynamo.Vec2{X: 3, Y: 4}, dynamo.Vec2{}, 20),
		})

		mag := physics.DefaultG * 10 * 20 / 25
		Expect(bodies[0].Force.X).To(BeNumerically("~", mag*0.6, 1e-12))
		Expect(bodies[0].Force.Y).To(BeNumerically("~", mag*0.8, 1e-12))
	})

	It("obeys Newton's third law for equal masses", func() {
		bodies := accumulate(g, []dynamo.Body{
			dynamo.NewBody(dynamo.Vec2{X: 5, Y: 5}, dynamo.Vec2{}, 7),
			dynamo.NewBody(dynamo.Vec2{X: 11, Y: 2}, dynamo.Vec2{}, 7),
		})

		Expect(bodies[0].Force.Norm()).To(BeNumerically("~", bodies[1].Force.Norm(), 1e-12))
		Expect(bodies[0].Force.X).To(BeNumerically("~", -bodies[1].Force.X, 1e-12))
		Expect(bodies[0].Force.Y).To(BeNumerically("~", -bodies[1].Force.Y, 1e-12))
	})

	It("sums contributions independently of iteration order", func() {
		base := []dynamo.Body{
			dynamo.NewBody(dynamo.Vec2{X: 0, Y: 0}, dynamo.Vec2{}, 5),
			dynamo.NewBody(dynamo.Vec2{X: 10, Y: 1}, dynamo.Vec2{}, 300),
			dynamo.NewBody(dynamo.Vec2{X: -4, Y: 7}, dynamo.Vec2{}, 120),
			dynamo.NewBody(dynamo.Vec2{X: 2, Y: -9}, dynamo.Vec2{}, 40),
		}
		forward := accumulate(g, dynamo.CloneBodies(base))

		reversed := dynamo.CloneBodies(base)
		for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
			reversed[i], reversed[j] = reversed[j], reversed[i]
		}
		reversed = accumulate(g, reversed)

		var expected dynamo.Vec2
		for j := 1; j < len(base); j++ {
			f, ok := g.PairForce(
				dynamo.PosMass{Pos: base[0].Pos, Mass: base[0].Mass},
				dynamo.PosMass{Pos: base[j].Pos, Mass: base[j].Mass},
			)
			Expect(ok).To(BeTrue())
			expected = expected.Add(f)
		}

		last := len(base) - 1
		Expect(forward[0].Force.X).To(BeNumerically("~", expected.X, 1e-12))
		Expect(forward[0].Force.Y).To(BeNumerically("~", expected.Y, 1e-12))
		Expect(reversed[last].Force.X).To(BeNumerically("~", expected.X, 1e-12))
		Expect(reversed[last].Force.Y).To(BeNumerically("~", expected.Y, 1e-12))
	})

	It("never attracts a body to itself", func() {
		bodies := accumulate(g, []dynamo.Body{
			dynamo.NewBody(dynamo.Vec2{X: 3, Y: 3}, dynamo.Vec2{}, 1e6),
		})
		Expect(bodies[0].Force).To(Equal(dynamo.Vec2{}))
	})

	DescribeTable("proximity filter on Manhattan distance",
		func(other dynamo.Vec2, applied bool) {
			_, ok := g.PairForce(
				dynamo.PosMass{Pos: dynamo.Vec2{}, Mass: 1},
				dynamo.PosMass{Pos: other, Mass: 1},
			)
			Expect(ok).To(Equal(applied))
		},
		Entry("coincident", dynamo.Vec2{}, false),
		Entry("exactly at threshold", dynamo.Vec2{X: 0.5, Y: 0.5}, false),
		Entry("euclidean below 1 but manhattan above", dynamo.Vec2{X: 0.6, Y: 0.6}, true),
		Entry("far", dynamo.Vec2{X: 10, Y: 0}, true),
	)

	It("ignores contributors below the mass cutoff", func() {
		p := physics.DefaultParams()
		cut, err := physics.NewGravity(p)
		Expect(err).NotTo(HaveOccurred())

		bodies := accumulate(cut, []dynamo.Body{
			dynamo.NewBody(dynamo.Vec2{X: 0, Y: 0}, dynamo.Vec2{}, 1),
			dynamo.NewBody(dynamo.Vec2{X: 10, Y: 0}, dynamo.Vec2{}, 1000),
		})

		Expect(bodies[0].Force.X).To(BeNumerically(">", 0))
		Expect(bodies[1].Force).To(Equal(dynamo.Vec2{}))
	})

	It("produces the same forces in parallel", func() {
		bodies := make([]dynamo.Body, 300)
		for i := range bodies {
			angle := float64(i) * 0.37
			r := 5 + float64(i%40)
			bodies[i] = dynamo.NewBody(dynamo.Vec2{X: r * math.Cos(angle), Y: r * math.Sin(angle)}, dynamo.Vec2{}, float64(1+i%7))
		}

		serial := accumulate(g, dynamo.CloneBodies(bodies))

		p := allContributors()
		p.Parallel = true
		par, err := physics.NewGravity(p)
		Expect(err).NotTo(HaveOccurred())
		parallel := accumulate(par, dynamo.CloneBodies(bodies))

		for i := range serial {
			Expect(parallel[i].Force).To(Equal(serial[i].Force))
		}
	})
})

var _ = Describe("Params", func() {
	DescribeTable("rejects invalid values",
		func(mutate func(*physics.Params)) {
			p := physics.DefaultParams()
			mutate(&p)
			_, err := physics.NewGravity(p)
			Expect(errors.Is(err, dynamo.ErrInvalidParams)).To(BeTrue())
		},
		Entry("zero G", func(p *physics.Params) { p.G = 0 }),
		Entry("negative G", func(p *physics.Params) { p.G = -1 }),
		Entry("negative threshold", func(p *physics.Params) { p.ProximityThreshold = -0.1 }),
		Entry("negative cutoff", func(p *physics.Params) { p.MassCutoff = -5 }),
	)

	It("computes circular orbit speed", func() {
		Expect(physics.OrbitSpeed(0.02, 10, 100000)).To(BeNumerically("~", math.Sqrt(200), 1e-12))
	})
})

var _ = Describe("Diagnostics", func() {
	It("computes energy for a two body system", func() {
		g, err := physics.NewGravity(allContributors())
		Expect(err).NotTo(HaveOccurred())

		bodies := []dynamo.Body{
			dynamo.NewBody(dynamo.Vec2{X: 0, Y: 0}, dynamo.Vec2{X: 1, Y: 0}, 2),
			dynamo.NewBody(dynamo.Vec2{X: 4, Y: 0}, dynamo.Vec2{}, 3),
		}
		expected := 0.5*2*1 - physics.DefaultG*2*3/4
		Expect(g.Energy(bodies)).To(BeNumerically("~", expected, 1e-12))
	})

	It("computes momentum, angular momentum and centre of mass", func() {
		bodies := []dynamo.Body{
			dynamo.NewBody(dynamo.Vec2{X: 1, Y: 0}, dynamo.Vec2{X: 0, Y: 2}, 2),
			dynamo.NewBody(dynamo.Vec2{X: 3, Y: 0}, dynamo.Vec2{X: 0, Y: -1}, 2),
		}

		Expect(physics.Momentum(bodies)).To(Equal(dynamo.Vec2{X: 0, Y: 2}))
		Expect(physics.AngularMomentum(bodies)).To(BeNumerically("~", 2*1*2+2*3*-1, 1e-12))
		Expect(physics.CenterOfMass(bodies)).To(Equal(dynamo.Vec2{X: 2, Y: 0}))
	})
})
