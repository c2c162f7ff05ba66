package session_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/orrery"
	"github.com/san-kum/orrery/internal/render"
	"github.com/san-kum/orrery/internal/session"
)

const tol = 1e-9

func step(s *session.Session, dt float64, n int) {
	for i := 0; i < n; i++ {
		s.Update(dt)
	}
}

var _ = Describe("Session", func() {
	var s *session.Session

	BeforeEach(func() {
		s = session.New(orbit.SolarSystem())
	})

	Describe("frame updates", func() {
		It("advances every body by speed·dt·timeScale", func() {
			s.SetTimeScale(2)
			step(s, 0.5, 100)

			for i, b := range s.System().Bodies() {
				want := orbit.WrapAngle(b.OrbitSpeed * 0.5 * 2 * 100)
				if b.Central {
					want = 0
				}
				Expect(b.Angle).To(BeNumerically("~", want, 1e-9), "body %d", i)
			}
			Expect(s.Frames()).To(Equal(100))
			Expect(s.Time()).To(BeNumerically("~", 50, tol))
		})

		It("rewinds to the start on Reset", func() {
			step(s, 1, 30)
			s.Reset()
			for _, a := range s.System().Angles() {
				Expect(a).To(BeZero())
			}
			Expect(s.Time()).To(BeZero())
		})
	})

	Describe("following", func() {
		It("converges on the followed body once the transition settles", func() {
			s.Follow(3)
			step(s, 0.1, 11)

			cam := s.Camera()
			Expect(cam.Settled()).To(BeTrue())
			earth, ok := s.System().PositionAt(3)
			Expect(ok).To(BeTrue())
			Expect(cam.Center().Sub(earth).Length()).To(BeNumerically("<", tol))

			// settled cameras track the body exactly
			step(s, 0.1, 5)
			earth, _ = s.System().PositionAt(3)
			Expect(cam.Center().Sub(earth).Length()).To(BeNumerically("<", tol))
		})

		It("resolves follow(none) to the origin regardless of the prior target", func() {
			s.Follow(5)
			step(s, 0.1, 20)
			Expect(s.Camera().Center().Length()).To(BeNumerically(">", 1))

			s.Follow(-1)
			Expect(s.FollowTarget()).To(Equal(orrery.Vec3{}))
			step(s, 0.1, 11)
			Expect(s.Camera().Center().Length()).To(BeNumerically("<", tol))
		})

		It("treats an out-of-range index as the origin", func() {
			s.Follow(42)
			Expect(s.FollowTarget()).To(Equal(orrery.Vec3{}))
			Expect(func() { step(s, 0.1, 15) }).NotTo(Panic())
			Expect(s.Camera().Center().Length()).To(BeNumerically("<", tol))
		})

		It("never jumps when re-targeted mid-transition", func() {
			s.Follow(8)
			step(s, 0.1, 4)

			before := s.Camera().Center()
			s.Follow(4)
			s.Update(0.1)
			after := s.Camera().Center()

			target := s.FollowTarget()
			bound := 0.1 / s.Camera().TransitionDuration() * target.Sub(before).Length()
			Expect(after.Sub(before).Length()).To(BeNumerically("<=", bound+tol))
		})
	})

	Describe("queries", func() {
		It("reports body count and names", func() {
			Expect(s.BodyCount()).To(Equal(9))
			name, ok := s.BodyName(3)
			Expect(ok).To(BeTrue())
			Expect(name).To(Equal("Earth"))
		})

		It("returns absent for out-of-range names", func() {
			_, ok := s.BodyName(9)
			Expect(ok).To(BeFalse())
			_, ok = s.BodyName(-1)
			Expect(ok).To(BeFalse())
		})
	})

	Describe("rendering", func() {
		var rec *render.Recorder

		BeforeEach(func() {
			rec = &render.Recorder{}
		})

		It("projects (1,0,0) at distance 3 to (1/3, 0)", func() {
			s = session.New(orbit.NewSystem(orbit.NewBody("p", 0.3, 1, 0, orrery.Color{R: 1})))
			s.SetCameraDistance(3)
			Expect(s.Render(rec)).To(Succeed())

			Expect(rec.Calls).To(HaveLen(1))
			m := rec.Calls[0].Matrix
			Expect(m[12]).To(BeNumerically("~", 1.0/3, tol))
			Expect(m[13]).To(BeNumerically("~", 0, tol))
		})

		It("draws every body in index order with its color", func() {
			Expect(s.Render(rec)).To(Succeed())
			Expect(rec.DepthClears).To(Equal(1))
			Expect(rec.Calls).To(HaveLen(9))
			for i, b := range s.System().Bodies() {
				Expect(rec.Calls[i].Color).To(Equal(b.Color))
			}
		})

		It("switches to line lists in wireframe mode", func() {
			s.SetWireframe(true)
			Expect(s.Render(rec)).To(Succeed())
			for _, c := range rec.Calls {
				Expect(c.Wireframe).To(BeTrue())
				Expect(len(c.Vertices) % 2).To(BeZero())
			}
		})

		It("clears with the configured background", func() {
			bg := orrery.RGBA{R: 0.1, G: 0.2, B: 0.3, A: 1}
			s.SetBackground(bg)
			Expect(s.Render(rec)).To(Succeed())
			Expect(rec.Clears).To(ConsistOf(bg))
		})

		It("keeps drawing after a failed body and reports it", func() {
			boom := errors.New("upload failed")
			rec.FailOn = func(i int) error {
				if i == 2 {
					return boom
				}
				return nil
			}

			err := s.Render(rec)
			Expect(err).To(MatchError(boom))
			Expect(rec.Calls).To(HaveLen(9))

			var de *render.DrawError
			Expect(errors.As(err, &de)).To(BeTrue())
			Expect(de.Name).To(Equal("Venus"))
		})

		It("only changes the aspect on resize", func() {
			d := s.Camera().Distance
			s.Resize(1600, 800)
			Expect(s.Camera().Aspect()).To(BeNumerically("~", 2, tol))
			Expect(s.Camera().Distance).To(Equal(d))

			s.Resize(0, 800)
			Expect(s.Camera().Aspect()).To(BeNumerically("~", 2, tol))
		})
	})

	Describe("FromConfig", func() {
		It("applies camera, scene and star settings", func() {
			cfg := config.DefaultConfig()
			cfg.Camera.Distance = 5
			cfg.Camera.Follow = 2
			cfg.Wireframe = true
			cfg.TimeScale = 3
			cfg.Stars.Count = 50

			s, err := session.FromConfig(cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Camera().Distance).To(Equal(5.0))
			idx, ok := s.Camera().Followed()
			Expect(ok).To(BeTrue())
			Expect(idx).To(Equal(2))
			Expect(s.Scene().Wireframe).To(BeTrue())
			Expect(s.Scene().Stars).To(HaveLen(50))
			Expect(s.System().TimeScale()).To(Equal(3.0))
		})

		It("rejects invalid configs", func() {
			cfg := config.DefaultConfig()
			cfg.Dt = 0
			_, err := session.FromConfig(cfg)
			Expect(err).To(MatchError(orrery.ErrInvalidConfig))
		})

		It("replays identically from the same config", func() {
			a, _ := session.FromConfig(config.DefaultConfig())
			b, _ := session.FromConfig(config.DefaultConfig())
			step(a, 0.016, 250)
			step(b, 0.016, 250)
			Expect(a.System().Angles()).To(Equal(b.System().Angles()))
			Expect(math.Abs(a.Time() - b.Time())).To(BeZero())
		})
	})
})
