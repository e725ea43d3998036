package relativity_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/GerhardMe/spacetime/internal/relativity"
)

var subluminal = []float64{-0.999, -0.9, -0.6, -0.3, 0, 0.3, 0.6, 0.9, 0.999}

var _ = Describe("velocity composition", func() {
	It("never composes past the light barrier", func() {
		for _, u := range subluminal {
			for _, v := range subluminal {
				w := relativity.ComposeVelocity(u, v)
				Expect(math.Abs(w)).To(BeNumerically("<", 1), "u=%v v=%v", u, v)
			}
		}
	})

	It("leaves velocities alone in the lab frame", func() {
		for _, u := range subluminal {
			Expect(relativity.ComposeVelocity(u, 0)).To(Equal(u))
		}
	})

	It("inverts by negating the frame velocity", func() {
		for _, u := range subluminal {
			for _, v := range subluminal {
				w := relativity.ComposeVelocity(u, v)
				Expect(relativity.ComposeVelocity(w, -v)).To(
					BeNumerically("~", u, 1e-9), "u=%v v=%v", u, v)
			}
		}
	})

	It("pins light speed in every frame", func() {
		for _, v := range subluminal {
			Expect(relativity.ComposeVelocity(1, v)).To(Equal(1.0))
			Expect(relativity.ComposeVelocity(-1, v)).To(Equal(-1.0))
		}
	})
})

var _ = Describe("boost", func() {
	It("fixes the origin for every frame velocity", func() {
		for _, v := range subluminal {
			got := relativity.Boost(relativity.Event{}, v)
			Expect(got.X).To(BeZero(), "v=%v", v)
			Expect(got.T).To(BeZero(), "v=%v", v)
		}
	})

	It("preserves the spacetime interval", func() {
		a := relativity.Event{X: -2, T: 1}
		b := relativity.Event{X: 3, T: 4.5}
		want := relativity.Interval(a, b)
		for _, v := range subluminal {
			got := relativity.Interval(relativity.Boost(a, v), relativity.Boost(b, v))
			Expect(got).To(BeNumerically("~", want, 1e-6), "v=%v", v)
		}
	})

	It("inverts by negating the velocity", func() {
		e := relativity.Event{X: 7.25, T: -3}
		for _, v := range subluminal {
			back := relativity.Boost(relativity.Boost(e, v), -v)
			Expect(back.X).To(BeNumerically("~", e.X, 1e-6), "v=%v", v)
			Expect(back.T).To(BeNumerically("~", e.T, 1e-6), "v=%v", v)
		}
	})

	It("sends lightlike pairs to lightlike pairs", func() {
		a := relativity.Event{}
		b := relativity.Event{X: 2, T: 2}
		for _, v := range subluminal {
			got := relativity.Classify(relativity.Boost(a, v), relativity.Boost(b, v))
			Expect(got).To(Equal(relativity.Lightlike), "v=%v", v)
		}
	})
})

var _ = Describe("frames", func() {
	It("round-trips events between lab and frame coordinates", func() {
		f := relativity.Frame{V: 0.72, X0: -3.5}
		events := []relativity.Event{{}, {X: 5, T: -2}, {X: -11, T: 7}}
		for _, e := range events {
			back := f.FromFrame(f.ToFrame(e))
			Expect(back.X).To(BeNumerically("~", e.X, 1e-9))
			Expect(back.T).To(BeNumerically("~", e.T, 1e-9))
		}
	})

	It("sees a comoving object at rest on the origin", func() {
		for _, v := range subluminal {
			f := relativity.Frame{V: v, X0: 1.25}
			x, ok := f.Locate(1.25, v)
			Expect(ok).To(BeTrue(), "v=%v", v)
			Expect(x).To(BeNumerically("~", 0, 1e-12), "v=%v", v)
			Expect(f.VelocityOf(v)).To(BeZero(), "v=%v", v)
		}
	})

	It("reports reciprocal light-speed combinations as degenerate", func() {
		near := 1 - 1e-11
		Expect(relativity.Frame{V: near}.WorldLine(5, near, 0, 10)).To(BeEmpty())
	})

	It("keeps the observer on its own origin", func() {
		line := relativity.ObserverWorldLine(-4, 4)
		Expect(line).To(HaveLen(2))
		Expect(line[0]).To(Equal(relativity.Event{X: 0, T: -4}))
		Expect(line[1]).To(Equal(relativity.Event{X: 0, T: 4}))
	})
})
