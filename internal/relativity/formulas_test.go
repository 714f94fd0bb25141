package relativity

import (
	"errors"
	"math"
	"testing"
)

func TestSchwarzschildRadiusKnownMasses(t *testing.T) {
	tests := []struct {
		massSolar float64
		wantKm    float64
		tolKm     float64
	}{
		{1, 2953.25, 0.5},
		{10, 29532.5, 1.0},
	}

	for _, tt := range tests {
		got := SchwarzschildRadius(tt.massSolar)
		if math.Abs(got-tt.wantKm) > tt.tolKm {
			t.Errorf("SchwarzschildRadius(%g) = %f, want %f +/- %f", tt.massSolar, got, tt.wantKm, tt.tolKm)
		}
	}
}

func TestSchwarzschildRadiusScalesLinearly(t *testing.T) {
	rs1 := SchwarzschildRadius(1)
	if rs1 <= 0 {
		t.Fatalf("expected positive radius, got %f", rs1)
	}

	for _, m := range []float64{2, 10, 50, 4.3e6} {
		got := SchwarzschildRadius(m)
		want := m * rs1
		if math.Abs(got-want)/want > 1e-12 {
			t.Errorf("SchwarzschildRadius(%g) = %f, want %f (linear in mass)", m, got, want)
		}
	}
}

func TestSchwarzschildRadiusZeroMass(t *testing.T) {
	if got := SchwarzschildRadius(0); got != 0 {
		t.Errorf("expected zero radius for zero mass, got %f", got)
	}
}

func TestTimeDilationInsideHorizon(t *testing.T) {
	rs := SchwarzschildRadius(10)

	for _, r := range []float64{0, rs * 0.5, rs} {
		if got := TimeDilation(r, rs); got != 0 {
			t.Errorf("TimeDilation(%f, %f) = %f, want exactly 0", r, rs, got)
		}
	}
}

func TestTimeDilationOutsideHorizon(t *testing.T) {
	rs := SchwarzschildRadius(10)

	got := TimeDilation(2*rs, rs)
	if math.Abs(got-math.Sqrt(0.5)) > 1e-9 {
		t.Errorf("TimeDilation(2rs, rs) = %f, want %f", got, math.Sqrt(0.5))
	}

	for _, factor := range []float64{1.001, 1.5, 3, 100} {
		f := TimeDilation(factor*rs, rs)
		if f <= 0 || f >= 1 {
			t.Errorf("TimeDilation(%g*rs) = %f, want in (0,1)", factor, f)
		}
	}
}

func TestTimeDilationApproachesOne(t *testing.T) {
	rs := SchwarzschildRadius(10)

	if got := TimeDilation(1e9*rs, rs); got < 0.9999999 {
		t.Errorf("TimeDilation far from horizon = %f, want ~1", got)
	}

	// Monotone increasing in r.
	prev := 0.0
	for _, factor := range []float64{1.1, 1.5, 2, 5, 10, 1000} {
		f := TimeDilation(factor*rs, rs)
		if f <= prev {
			t.Errorf("dilation not increasing at %g*rs: %f <= %f", factor, f, prev)
		}
		prev = f
	}
}

func TestEscapeVelocity(t *testing.T) {
	rs := SchwarzschildRadius(10)

	// At the horizon the escape velocity is the speed of light.
	v, err := EscapeVelocity(rs, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(v-C)/C > 1e-9 {
		t.Errorf("escape velocity at rs = %f, want c = %d", v, C)
	}

	v4, err := EscapeVelocity(4*rs, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(v4-C/2)/C > 1e-9 {
		t.Errorf("escape velocity at 4rs = %f, want c/2", v4)
	}
}

func TestEscapeVelocityInvalidArgs(t *testing.T) {
	tests := []struct {
		name string
		rKm  float64
		mass float64
		want error
	}{
		{"zero radius", 0, 10, ErrNonPositiveRadius},
		{"negative radius", -100, 10, ErrNonPositiveRadius},
		{"negative mass", 1000, -1, ErrNegativeMass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EscapeVelocity(tt.rKm, tt.mass)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestOrbitalVelocityAndPeriodConsistent(t *testing.T) {
	rs := SchwarzschildRadius(10)
	r := 5 * rs

	v, err := OrbitalVelocity(r, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	period, err := OrbitalPeriod(r, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Circumference / speed must equal the Keplerian period.
	want := 2 * math.Pi * r * 1000 / v
	if math.Abs(period-want)/want > 1e-9 {
		t.Errorf("period %f inconsistent with circumference/velocity %f", period, want)
	}
}

func TestOrbitalPeriodInvalidArgs(t *testing.T) {
	if _, err := OrbitalPeriod(-1, 10); !errors.Is(err, ErrNonPositiveRadius) {
		t.Errorf("expected ErrNonPositiveRadius, got %v", err)
	}
	if _, err := OrbitalPeriod(1000, -1); !errors.Is(err, ErrNegativeMass) {
		t.Errorf("expected ErrNegativeMass, got %v", err)
	}
}

func TestGravitationalRedshift(t *testing.T) {
	rs := SchwarzschildRadius(10)

	if z := GravitationalRedshift(rs, rs); !math.IsInf(z, 1) {
		t.Errorf("redshift at horizon = %f, want +Inf", z)
	}
	if z := GravitationalRedshift(rs/2, rs); !math.IsInf(z, 1) {
		t.Errorf("redshift inside horizon = %f, want +Inf", z)
	}

	// Monotonically decreasing, approaching 0 far away.
	prev := math.Inf(1)
	for _, factor := range []float64{1.1, 1.5, 2, 5, 10, 100} {
		z := GravitationalRedshift(factor*rs, rs)
		if z >= prev {
			t.Errorf("redshift not decreasing at %g*rs: %f >= %f", factor, z, prev)
		}
		if z <= 0 {
			t.Errorf("redshift at %g*rs = %f, want > 0", factor, z)
		}
		prev = z
	}

	if z := GravitationalRedshift(1e9*rs, rs); z > 1e-6 {
		t.Errorf("redshift far from horizon = %f, want ~0", z)
	}

	// z = 1/sqrt(1-1/2) - 1 = sqrt(2) - 1 at 2rs.
	z := GravitationalRedshift(2*rs, rs)
	if math.Abs(z-(math.Sqrt2-1)) > 1e-9 {
		t.Errorf("redshift at 2rs = %f, want %f", z, math.Sqrt2-1)
	}
}

func TestTidalForce(t *testing.T) {
	rs := SchwarzschildRadius(10)

	near, err := TidalForce(1.5*rs, 10, 2.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	far, err := TidalForce(10*rs, 10, 2.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if near <= far {
		t.Errorf("tidal force should grow toward the horizon: %e <= %e", near, far)
	}

	// Inverse cube: doubling r divides the force by 8.
	f1, _ := TidalForce(2*rs, 10, 2.0)
	f2, _ := TidalForce(4*rs, 10, 2.0)
	if math.Abs(f1/f2-8) > 1e-9 {
		t.Errorf("expected 1/r^3 scaling, got ratio %f", f1/f2)
	}

	if _, err := TidalForce(0, 10, 2.0); !errors.Is(err, ErrNonPositiveRadius) {
		t.Errorf("expected ErrNonPositiveRadius, got %v", err)
	}
}

func TestCharacteristicRadii(t *testing.T) {
	for _, m := range []float64{1, 10, 100, 4.3e6} {
		rs := SchwarzschildRadius(m)

		if got := PhotonSphereRadius(m); math.Abs(got-1.5*rs) > 1e-9*rs {
			t.Errorf("PhotonSphereRadius(%g) = %f, want %f", m, got, 1.5*rs)
		}
		if got := InnermostStableOrbit(m); math.Abs(got-3*rs) > 1e-9*rs {
			t.Errorf("InnermostStableOrbit(%g) = %f, want %f", m, got, 3*rs)
		}
	}

	if got := PhotonSphereRadius(10); math.Abs(got-44298.7) > 1.5 {
		t.Errorf("PhotonSphereRadius(10) = %f, want ~44298.7 km", got)
	}
}
