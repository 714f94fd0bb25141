package viz

import (
	"math"
	"testing"
)

func TestProjectCenter(t *testing.T) {
	cam := NewCamera()
	x, y, _, ok := cam.Project(Vec3{}, 64, 64)
	if !ok {
		t.Fatal("origin should be visible")
	}
	if x != 32 || y != 32 {
		t.Fatalf("origin projected to (%d,%d), want (32,32)", x, y)
	}
}

func TestProjectAxes(t *testing.T) {
	cam := &Camera{Distance: 50, Zoom: 1}

	x, _, _, ok := cam.Project(Vec3{X: 1}, 64, 64)
	if !ok || x <= 32 {
		t.Fatalf("+X should land right of center, got x=%d ok=%v", x, ok)
	}

	_, y, _, ok := cam.Project(Vec3{Y: 1}, 64, 64)
	if !ok || y >= 32 {
		t.Fatalf("+Y should land above center, got y=%d ok=%v", y, ok)
	}
}

func TestProjectBehindCamera(t *testing.T) {
	cam := &Camera{Distance: 50, Zoom: 1}
	if _, _, _, ok := cam.Project(Vec3{Z: 100}, 64, 64); ok {
		t.Fatal("point behind the camera plane must not be visible")
	}
}

func TestZoomClamp(t *testing.T) {
	cam := NewCamera()
	for i := 0; i < 40; i++ {
		cam.ZoomIn()
	}
	if cam.Zoom > 10 {
		t.Fatalf("zoom %v exceeds upper clamp", cam.Zoom)
	}
	for i := 0; i < 80; i++ {
		cam.ZoomOut()
	}
	if cam.Zoom < 0.1 {
		t.Fatalf("zoom %v below lower clamp", cam.Zoom)
	}
}

func TestRingWireframe(t *testing.T) {
	w := RingWireframe(2, 16)
	if len(w.Edges) != 16 {
		t.Fatalf("got %d edges, want 16", len(w.Edges))
	}
	for _, e := range w.Edges {
		for _, p := range []Vec3{e.Start, e.End} {
			if math.Abs(p.Length()-2) > 1e-9 {
				t.Fatalf("ring vertex at radius %v, want 2", p.Length())
			}
			if p.Y != 0 {
				t.Fatalf("equatorial ring vertex has Y=%v", p.Y)
			}
		}
	}

	if got := len(RingWireframe(1, 2).Edges); got != 3 {
		t.Fatalf("degenerate segment count should clamp to 3, got %d", got)
	}
}

func TestSphereWireframe(t *testing.T) {
	w := SphereWireframe(2, 4, 8)
	// 3 latitude rings of 8 edges plus 2 meridians of 8.
	if len(w.Edges) != 40 {
		t.Fatalf("got %d edges, want 40", len(w.Edges))
	}
	for _, e := range w.Edges {
		for _, p := range []Vec3{e.Start, e.End} {
			if p.Length() > 2+1e-9 {
				t.Fatalf("sphere vertex at radius %v exceeds 2", p.Length())
			}
		}
	}
}

func TestGridWireframeWarp(t *testing.T) {
	w := GridWireframe(1, 1, func(r float64) float64 { return -0.5 })
	if len(w.Edges) == 0 {
		t.Fatal("grid is empty")
	}
	for _, e := range w.Edges {
		if e.Start.Y != -0.5 || e.End.Y != -0.5 {
			t.Fatalf("warp not applied: %+v", e)
		}
	}

	if got := len(GridWireframe(1, 0, nil).Edges); got != 0 {
		t.Fatalf("zero step should yield no edges, got %d", got)
	}
}

func TestRenderPoint(t *testing.T) {
	c := NewCanvas(10, 10)
	w := NewWireframe()
	w.AddPoint(Vec3{})
	Render(c, w, NewCamera())
	if !c.On(10, 20) {
		t.Fatal("origin point should land at canvas center")
	}
}

func TestRenderNilSafe(t *testing.T) {
	Render(nil, nil, nil)
	Render(NewCanvas(2, 2), nil, NewCamera())
}
