package survey_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gravwell/internal/relativity"
	"github.com/san-kum/gravwell/internal/survey"
)

var _ = Describe("Linspace", func() {
	It("returns an empty slice for non-positive counts", func() {
		Expect(survey.Linspace(0, 1, 0)).To(BeEmpty())
		Expect(survey.Linspace(0, 1, -3)).To(BeEmpty())
	})

	It("returns just the start for a single point", func() {
		Expect(survey.Linspace(2.5, 10, 1)).To(Equal([]float64{2.5}))
	})

	It("includes both endpoints with even spacing", func() {
		pts := survey.Linspace(1, 3, 5)
		Expect(pts).To(HaveLen(5))
		Expect(pts[0]).To(Equal(1.0))
		Expect(pts[4]).To(Equal(3.0))
		Expect(pts[2]).To(BeNumerically("~", 2.0, 1e-12))
	})

	It("sweeps downward when start exceeds stop", func() {
		pts := survey.Linspace(10, 2, 3)
		Expect(pts).To(Equal([]float64{10, 6, 2}))
	})
})

var _ = Describe("OrbitData", func() {
	const mass = 10.0
	rs := relativity.SchwarzschildRadius(mass)

	It("produces the requested number of samples", func() {
		orbits, err := survey.OrbitData(mass, 6)
		Expect(err).NotTo(HaveOccurred())
		Expect(orbits).To(HaveLen(6))
	})

	It("sweeps strictly increasing radii from 1.5 Rs to 10 Rs", func() {
		orbits, err := survey.OrbitData(mass, 6)
		Expect(err).NotTo(HaveOccurred())

		Expect(orbits[0].RadiusKm).To(BeNumerically("~", 1.5*rs, 1e-6))
		Expect(orbits[5].RadiusKm).To(BeNumerically("~", 10*rs, 1e-6))

		for i := 1; i < len(orbits); i++ {
			Expect(orbits[i].RadiusKm).To(BeNumerically(">", orbits[i-1].RadiusKm))
		}
	})

	It("annotates every sample consistently", func() {
		orbits, err := survey.OrbitData(mass, 5)
		Expect(err).NotTo(HaveOccurred())

		for _, o := range orbits {
			Expect(o.TimeDilation).To(BeNumerically(">", 0))
			Expect(o.TimeDilation).To(BeNumerically("<", 1))
			Expect(o.OrbitalVelocityC).To(BeNumerically("~", o.OrbitalVelocityMS/relativity.C, 1e-12))
			// Period is circumference over speed.
			Expect(o.OrbitalPeriodS).To(BeNumerically("~", 2*math.Pi*o.RadiusKm*1000/o.OrbitalVelocityMS, 1e-6))
			// The distant observer always sees a longer period.
			Expect(o.PerceivedPeriodS).To(BeNumerically(">", o.OrbitalPeriodS))
			Expect(o.OrbitalPeriodFormatted).NotTo(BeEmpty())
		}
	})

	It("propagates invalid-argument errors from the formula layer", func() {
		_, err := survey.OrbitData(0, 4)
		Expect(err).To(MatchError(relativity.ErrNonPositiveRadius))
	})
})

var _ = Describe("FallingTrajectory", func() {
	const mass = 10.0
	rs := relativity.SchwarzschildRadius(mass)

	It("is empty when the drop starts at or inside the horizon", func() {
		Expect(survey.FallingTrajectory(rs, rs, 50)).To(BeEmpty())
		Expect(survey.FallingTrajectory(0.5*rs, rs, 50)).To(BeEmpty())
	})

	It("samples exactly n points ending just above the horizon", func() {
		traj := survey.FallingTrajectory(10*rs, rs, 100)
		Expect(traj).To(HaveLen(100))

		last := traj[len(traj)-1]
		Expect(last.RadiusKm).To(BeNumerically("~", 1.01*rs, 1e-6))
		Expect(math.Abs(last.RadiusKm-rs) / rs).To(BeNumerically("<=", 0.01+1e-9))
	})

	It("accelerates monotonically toward the horizon", func() {
		traj := survey.FallingTrajectory(10*rs, rs, 50)

		for i := 1; i < len(traj); i++ {
			Expect(traj[i].RadiusKm).To(BeNumerically("<", traj[i-1].RadiusKm))
			Expect(traj[i].FallVelocityMS).To(BeNumerically(">", traj[i-1].FallVelocityMS))
		}
		Expect(traj[0].Step).To(Equal(0))
		Expect(traj[49].Step).To(Equal(49))
	})

	It("clamps the fall speed to c at the horizon", func() {
		traj := survey.FallingTrajectory(1.005*rs, rs, 2)
		// Sweep target 1.01 Rs lies above the start here; both points sit
		// above the horizon, so no clamping happens and speeds stay sub-c
		// by the approximation in use.
		Expect(traj).To(HaveLen(2))
		for _, p := range traj {
			Expect(p.FallVelocityC).To(BeNumerically("<=", 1.0))
		}
	})
})

var _ = Describe("SpaghettificationDistance", func() {
	It("round-trips through the tidal-force formula to the lethal threshold", func() {
		for _, mass := range []float64{10.0, 100.0, 1000.0} {
			d := survey.SpaghettificationDistance(mass, 2.0)
			Expect(d).To(BeNumerically(">", 0))

			tidal, err := relativity.TidalForce(d, mass, 2.0)
			Expect(err).NotTo(HaveOccurred())
			Expect(tidal).To(BeNumerically("~", 10*relativity.EarthGravity, 1e-6))
		}
	})

	It("grows with the cube root of mass", func() {
		d1 := survey.SpaghettificationDistance(10, 2.0)
		d8 := survey.SpaghettificationDistance(80, 2.0)
		Expect(d8 / d1).To(BeNumerically("~", 2.0, 1e-9))
	})
})

var _ = Describe("CompareTimePassages", func() {
	const mass = 10.0
	rs := relativity.SchwarzschildRadius(mass)

	It("halves proper time at twice the Schwarzschild radius", func() {
		cmp := survey.CompareTimePassages(2*rs, rs, 1.0)

		Expect(cmp.TimeDilationFactor).To(BeNumerically("~", math.Sqrt(0.5), 1e-9))
		Expect(cmp.LocalTimeHours).To(BeNumerically("~", math.Sqrt(0.5), 1e-9))
		Expect(cmp.TimeRatio).To(BeNumerically("~", math.Sqrt2, 1e-9))
		Expect(cmp.DistanceRs).To(BeNumerically("~", 2.0, 1e-12))
		Expect(cmp.LocalTimeFormatted).NotTo(BeEmpty())
	})

	It("reports stopped time at the horizon", func() {
		cmp := survey.CompareTimePassages(rs, rs, 5.0)

		Expect(cmp.TimeDilationFactor).To(BeZero())
		Expect(cmp.LocalTimeHours).To(BeZero())
		Expect(math.IsInf(cmp.TimeRatio, 1)).To(BeTrue())
		Expect(cmp.LocalTimeFormatted).To(Equal("time stopped"))
	})
})

var _ = Describe("HorizonProps", func() {
	It("derives geometry from the Schwarzschild radius", func() {
		props, err := survey.HorizonProps(10)
		Expect(err).NotTo(HaveOccurred())

		rs := relativity.SchwarzschildRadius(10)
		Expect(props.SchwarzschildRadiusKm).To(BeNumerically("~", rs, 1e-9))
		Expect(props.HorizonCircumferenceKm).To(BeNumerically("~", 2*math.Pi*rs, 1e-6))
		Expect(props.HorizonAreaKm2).To(BeNumerically("~", 4*math.Pi*rs*rs, 1e-3))
		Expect(props.SurfaceGravityG).To(BeNumerically("~", props.SurfaceGravityMS2/relativity.EarthGravity, 1e-6))
		Expect(props.HawkingTemperatureK).To(BeNumerically(">", 0))
		Expect(props.SchwarzschildRadiusFormatted).NotTo(BeEmpty())
	})

	It("rejects negative mass", func() {
		_, err := survey.HorizonProps(-1)
		Expect(err).To(MatchError(relativity.ErrNegativeMass))
	})
})

var _ = Describe("Formatting", func() {
	DescribeTable("FormatTime picks the unit by magnitude",
		func(seconds float64, want string) {
			Expect(survey.FormatTime(seconds)).To(Equal(want))
		},
		Entry("seconds", 42.0, "42.00 seconds"),
		Entry("minutes", 120.0, "2.00 minutes"),
		Entry("hours", 7200.0, "2.00 hours"),
		Entry("days", 172800.0, "2.00 days"),
		Entry("years", 63072000.0, "2.00 years"),
	)

	DescribeTable("FormatDistance picks the unit by magnitude",
		func(km float64, want string) {
			Expect(survey.FormatDistance(km)).To(Equal(want))
		},
		Entry("meters", 0.5, "500.00 m"),
		Entry("kilometers", 42.0, "42.00 km"),
		Entry("thousand kilometers", 29532.5, "29.53 thousand km"),
		Entry("astronomical units", 2*relativity.AUKm, "2.00 AU"),
		Entry("light-years", 2*relativity.LightYearKm, "2.00 light-years"),
	)
})

var _ = Describe("DataTable", func() {
	It("renders one row per requested distance", func() {
		table := survey.DataTable(10, []float64{0.5, 2, 10})

		Expect(table).To(ContainSubstring("10 solar masses"))
		Expect(table).To(ContainSubstring("infinite"))
		Expect(table).To(ContainSubstring("slower"))
	})
})

var _ = Describe("SafeDistance", func() {
	It("scales the horizon radius by the safety factor", func() {
		rs := relativity.SchwarzschildRadius(10)
		Expect(survey.SafeDistance(10, 10)).To(BeNumerically("~", 10*rs, 1e-9))
	})
})

var _ = Describe("TimeToCrossHorizon", func() {
	rs := relativity.SchwarzschildRadius(10)

	It("is zero at or inside the horizon", func() {
		Expect(survey.TimeToCrossHorizon(rs, rs)).To(BeZero())
		Expect(survey.TimeToCrossHorizon(0.1*rs, rs)).To(BeZero())
	})

	It("grows with the release radius", func() {
		near := survey.TimeToCrossHorizon(2*rs, rs)
		far := survey.TimeToCrossHorizon(10*rs, rs)
		Expect(near).To(BeNumerically(">", 0))
		Expect(far).To(BeNumerically(">", near))
	})
})
