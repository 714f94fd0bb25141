package viz

import (
	"math"
	"sort"
)

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Length() float64      { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Camera projects world coordinates onto the canvas with simple rotation
// and perspective divide.
type Camera struct {
	Distance         float64
	RotX, RotY, RotZ float64
	Zoom             float64
}

func NewCamera() *Camera {
	return &Camera{Distance: 50, RotX: -0.35, Zoom: 1.0}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) RotateZ(a float64) { c.RotZ += a }

func (c *Camera) ZoomIn()  { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

func (c *Camera) rotate(p Vec3) Vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cz, sz := math.Cos(c.RotZ), math.Sin(c.RotZ)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	return p
}

// Project maps a world point to sub-pixel canvas coordinates. The last
// return reports whether the point lands on the canvas.
func (c *Camera) Project(p Vec3, sw, sh int) (int, int, float64, bool) {
	rot := c.rotate(p).Scale(c.Zoom)
	if rot.Z >= c.Distance-0.1 {
		return 0, 0, 0, false
	}
	persp := c.Distance / (c.Distance - rot.Z)
	minDim := math.Min(float64(sw), float64(sh))
	scale := minDim / 3.0
	sx := int(rot.X*persp*scale) + sw/2
	sy := int(-rot.Y*persp*scale) + sh/2
	return sx, sy, rot.Z, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

type Edge struct {
	Start, End Vec3
}

type Wireframe struct {
	Edges []Edge
}

func NewWireframe() *Wireframe { return &Wireframe{} }

func (w *Wireframe) AddEdge(s, e Vec3) { w.Edges = append(w.Edges, Edge{s, e}) }
func (w *Wireframe) AddPoint(p Vec3)   { w.Edges = append(w.Edges, Edge{p, p}) }

func (w *Wireframe) Merge(o *Wireframe) { w.Edges = append(w.Edges, o.Edges...) }

// Render draws the wireframe back-to-front so nearer edges overwrite
// farther ones.
func Render(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	sw, sh := c.Width*2, c.Height*4

	type projected struct {
		x1, y1, x2, y2 int
		depth          float64
	}
	proj := make([]projected, 0, len(w.Edges))
	for _, e := range w.Edges {
		x1, y1, d1, v1 := cam.Project(e.Start, sw, sh)
		x2, y2, d2, v2 := cam.Project(e.End, sw, sh)
		if v1 || v2 {
			proj = append(proj, projected{x1, y1, x2, y2, (d1 + d2) / 2})
		}
	}
	sort.Slice(proj, func(i, j int) bool { return proj[i].depth < proj[j].depth })

	for _, e := range proj {
		if e.x1 == e.x2 && e.y1 == e.y2 {
			c.Set(e.x1, e.y1)
		} else {
			c.DrawLine(e.x1, e.y1, e.x2, e.y2)
		}
	}
}

// SphereWireframe builds latitude/longitude rings for the event horizon.
func SphereWireframe(radius float64, rings, segments int) *Wireframe {
	w := NewWireframe()

	for i := 1; i < rings; i++ {
		phi := math.Pi * float64(i) / float64(rings)
		y := radius * math.Cos(phi)
		r := radius * math.Sin(phi)
		w.Merge(ringAt(r, y, segments))
	}

	// Two meridians give the sphere volume from any viewing angle.
	for _, offset := range []float64{0, math.Pi / 2} {
		prev := Vec3{0, radius, 0}
		for i := 1; i <= segments; i++ {
			phi := math.Pi * float64(i) / float64(segments)
			p := Vec3{
				math.Sin(phi) * math.Cos(offset) * radius,
				math.Cos(phi) * radius,
				math.Sin(phi) * math.Sin(offset) * radius,
			}
			w.AddEdge(prev, p)
			prev = p
		}
	}

	return w
}

// RingWireframe builds a flat circular orbit ring in the equatorial
// plane.
func RingWireframe(radius float64, segments int) *Wireframe {
	return ringAt(radius, 0, segments)
}

func ringAt(radius, y float64, segments int) *Wireframe {
	w := NewWireframe()
	if segments < 3 {
		segments = 3
	}
	prev := Vec3{radius, y, 0}
	for i := 1; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		p := Vec3{radius * math.Cos(a), y, radius * math.Sin(a)}
		w.AddEdge(prev, p)
		prev = p
	}
	return w
}

// GridWireframe builds a flat square grid in the equatorial plane,
// vertically displaced by warp(r) to suggest the gravity well. half is
// the grid's half-extent in world units, step the line spacing.
func GridWireframe(half, step float64, warp func(r float64) float64) *Wireframe {
	w := NewWireframe()
	if step <= 0 || half <= 0 {
		return w
	}
	at := func(x, z float64) Vec3 {
		y := 0.0
		if warp != nil {
			y = warp(math.Hypot(x, z))
		}
		return Vec3{x, y, z}
	}
	for x := -half; x <= half+1e-9; x += step {
		for z := -half; z < half-1e-9; z += step {
			w.AddEdge(at(x, z), at(x, z+step))
			w.AddEdge(at(z, x), at(z+step, x))
		}
	}
	return w
}
