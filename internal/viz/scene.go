package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/gravwell/internal/config"
	"github.com/san-kum/gravwell/internal/relativity"
	"github.com/san-kum/gravwell/internal/survey"
)

const (
	sceneCols = 64
	sceneRows = 28
	sceneFPS  = 30

	// World-space radius of the outermost (10 Rs) orbit; everything else
	// scales relative to it.
	worldRadius = 1.35

	// Seconds of wall time for the innermost body to complete one orbit
	// at speed 1. Orbital ratios between bodies stay physical.
	innerOrbitSecs = 8.0

	maxTrail = 220
)

type SceneTickMsg time.Time

type sceneReloadMsg *config.Config

// SceneModel animates bodies on circular orbits around the event horizon.
// Any parameter change (keys or a watched config file) re-derives the
// orbit table from the formulas.
type SceneModel struct {
	massSolar float64
	numOrbits int
	speed     float64

	rsKm   float64
	orbits []survey.OrbitSample
	angles []float64
	clocks []float64
	farT   float64

	canvas *Canvas
	camera *Camera
	trails [][]Vec3

	paused     bool
	autoRotate bool
	showTrails bool
	showLabels bool
	showGrid   bool
	showHelp   bool

	presetIdx int
	watcher   *config.Watcher
	loadErr   error
}

// NewScene builds the scene from cfg. watcher may be nil; when set, its
// Changes feed live parameter reloads.
func NewScene(cfg *config.Config, watcher *config.Watcher) SceneModel {
	m := SceneModel{
		massSolar:  cfg.MassSolar,
		numOrbits:  cfg.NumOrbits,
		speed:      cfg.Speed,
		canvas:     NewCanvas(sceneCols, sceneRows),
		camera:     NewCamera(),
		showTrails: true,
		showLabels: true,
		presetIdx:  -1,
		watcher:    watcher,
	}
	m.rebuild()
	return m
}

// rebuild re-derives everything that depends on mass and orbit count.
func (m *SceneModel) rebuild() {
	m.rsKm = relativity.SchwarzschildRadius(m.massSolar)
	orbits, err := survey.OrbitData(m.massSolar, m.numOrbits)
	m.loadErr = err
	m.orbits = orbits

	m.angles = make([]float64, len(orbits))
	m.clocks = make([]float64, len(orbits))
	m.trails = make([][]Vec3, len(orbits))
	for i := range m.angles {
		m.angles[i] = 2 * math.Pi * float64(i) / float64(len(orbits))
	}
	m.farT = 0
}

func (m SceneModel) Init() tea.Cmd {
	cmds := []tea.Cmd{sceneTick()}
	if m.watcher != nil {
		cmds = append(cmds, waitForReload(m.watcher))
	}
	return tea.Batch(cmds...)
}

func sceneTick() tea.Cmd {
	return tea.Tick(time.Second/sceneFPS, func(t time.Time) tea.Msg { return SceneTickMsg(t) })
}

func waitForReload(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		cfg, ok := <-w.Changes
		if !ok {
			return nil
		}
		return sceneReloadMsg(cfg)
	}
}

func (m SceneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case SceneTickMsg:
		if !m.paused {
			m.advance(1.0 / sceneFPS)
		}
		if m.autoRotate {
			m.camera.RotateY(0.008)
		}
		return m, sceneTick()
	case sceneReloadMsg:
		cfg := (*config.Config)(msg)
		m.massSolar = cfg.MassSolar
		m.numOrbits = cfg.NumOrbits
		m.speed = cfg.Speed
		m.rebuild()
		return m, waitForReload(m.watcher)
	}
	return m, nil
}

func (m SceneModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if m.watcher != nil {
			m.watcher.Stop()
		}
		return m, tea.Quit
	case " ":
		m.paused = !m.paused
	case "r":
		m.rebuild()
	case "a":
		m.autoRotate = !m.autoRotate
	case "t":
		m.showTrails = !m.showTrails
		for i := range m.trails {
			m.trails[i] = m.trails[i][:0]
		}
	case "l":
		m.showLabels = !m.showLabels
	case "g":
		m.showGrid = !m.showGrid
	case "m":
		m.massSolar *= 1.25
		m.rebuild()
	case "M":
		if m.massSolar/1.25 >= 0.1 {
			m.massSolar /= 1.25
			m.rebuild()
		}
	case "o":
		if m.numOrbits < 10 {
			m.numOrbits++
			m.rebuild()
		}
	case "O":
		if m.numOrbits > 1 {
			m.numOrbits--
			m.rebuild()
		}
	case "s":
		m.speed = math.Min(5.0, m.speed*1.25)
	case "S":
		m.speed = math.Max(0.1, m.speed/1.25)
	case "p":
		slugs := config.ListPresets()
		m.presetIdx = (m.presetIdx + 1) % len(slugs)
		m.massSolar = config.Presets[slugs[m.presetIdx]].MassSolar
		m.rebuild()
	case "x":
		m.camera.RotateX(0.1)
	case "X":
		m.camera.RotateX(-0.1)
	case "y":
		m.camera.RotateY(0.1)
	case "Y":
		m.camera.RotateY(-0.1)
	case "z":
		m.camera.RotateZ(0.1)
	case "Z":
		m.camera.RotateZ(-0.1)
	case "+", "=":
		m.camera.ZoomIn()
	case "-", "_":
		m.camera.ZoomOut()
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// advance moves every body along its orbit and ticks the local clocks.
// Angular velocities are normalized so the innermost orbit takes
// innerOrbitSecs of wall time, keeping the ratios between orbits
// physical for any mass.
func (m *SceneModel) advance(dt float64) {
	if len(m.orbits) == 0 {
		return
	}

	omegaInner := m.orbits[0].OrbitalVelocityMS / (m.orbits[0].RadiusKm * 1000)
	if omegaInner == 0 {
		return
	}

	m.farT += dt * m.speed
	for i, o := range m.orbits {
		omega := o.OrbitalVelocityMS / (o.RadiusKm * 1000)
		m.angles[i] += omega / omegaInner * 2 * math.Pi / innerOrbitSecs * dt * m.speed
		m.clocks[i] += dt * m.speed * o.TimeDilation

		if m.showTrails {
			m.trails[i] = append(m.trails[i], m.bodyPos(i))
			if len(m.trails[i]) > maxTrail {
				m.trails[i] = m.trails[i][1:]
			}
		}
	}
}

// worldScale maps km to scene units so the outermost orbit sits at
// worldRadius.
func (m *SceneModel) worldScale() float64 {
	outer := 10 * m.rsKm
	if outer == 0 {
		return 1
	}
	return worldRadius / outer
}

func (m *SceneModel) bodyPos(i int) Vec3 {
	r := m.orbits[i].RadiusKm * m.worldScale()
	return Vec3{r * math.Cos(m.angles[i]), 0, r * math.Sin(m.angles[i])}
}

func (m *SceneModel) draw() {
	m.canvas.Clear()

	scale := m.worldScale()
	wf := NewWireframe()

	if m.showGrid {
		horizonW := m.rsKm * scale
		wf.Merge(GridWireframe(worldRadius*1.2, worldRadius/5, func(r float64) float64 {
			return -0.35 * horizonW / (r + horizonW)
		}))
	}

	wf.Merge(SphereWireframe(m.rsKm*scale, 4, 24))
	wf.Merge(RingWireframe(relativity.PhotonSphereRadius(m.massSolar)*scale, 48))
	wf.Merge(RingWireframe(relativity.InnermostStableOrbit(m.massSolar)*scale, 48))

	for i, o := range m.orbits {
		wf.Merge(RingWireframe(o.RadiusKm*scale, 64))
		if m.showTrails {
			for _, p := range m.trails[i] {
				wf.AddPoint(p)
			}
		}
		// Fat body marker.
		p := m.bodyPos(i)
		wf.AddEdge(p.Add(Vec3{-0.02, 0, 0}), p.Add(Vec3{0.02, 0, 0}))
		wf.AddEdge(p.Add(Vec3{0, -0.02, 0}), p.Add(Vec3{0, 0.02, 0}))
	}

	Render(m.canvas, wf, m.camera)
}

func (m SceneModel) View() string {
	m.draw()

	var s strings.Builder
	s.WriteString(titleStyle.Render("GRAVWELL") + " " + subtleStyle.Render("orbit scene") + "\n\n")

	status := "RUNNING"
	if m.paused {
		status = "PAUSED"
	}
	s.WriteString(accentStyle.Render(status) + "\n\n")

	s.WriteString(labelStyle.Render("mass") + valueStyle.Render(fmt.Sprintf("%g solar masses", m.massSolar)) + "\n")
	s.WriteString(labelStyle.Render("horizon") + valueStyle.Render(survey.FormatDistance(m.rsKm)) + "\n")
	s.WriteString(labelStyle.Render("photon sphere") + valueStyle.Render(survey.FormatDistance(relativity.PhotonSphereRadius(m.massSolar))) + "\n")
	s.WriteString(labelStyle.Render("stable orbit") + valueStyle.Render(survey.FormatDistance(relativity.InnermostStableOrbit(m.massSolar))) + "\n")
	s.WriteString(labelStyle.Render("speed") + valueStyle.Render(fmt.Sprintf("%.2fx", m.speed)) + "\n")
	s.WriteString(labelStyle.Render("far-away clock") + valueStyle.Render(survey.FormatTime(m.farT)) + "\n")

	if m.loadErr != nil {
		s.WriteString("\n" + warnStyle.Render(m.loadErr.Error()) + "\n")
	}

	if m.showLabels {
		s.WriteString("\n" + subtleStyle.Render("ORBITS") + "\n")
		for i, o := range m.orbits {
			line := fmt.Sprintf("%4.1f Rs  dilation %.4f  clock %s",
				o.RadiusRs, o.TimeDilation, survey.FormatTime(m.clocks[i]))
			s.WriteString(DilationStyle(o.TimeDilation).Render(line) + "\n")
		}
	}

	if m.watcher != nil {
		s.WriteString("\n" + dimStyle.Render("watching config for changes") + "\n")
	}

	s.WriteString(helpStyle.Render("m/M mass  o/O orbits  s/S speed  p preset\nspace pause  a rotate  t trails  l labels  g grid\nx/y/z camera  +/- zoom  r reset  ? help  q quit"))

	panel := panelStyle.Render(s.String())
	canvasView := canvasStyle.Render(m.canvas.String())
	view := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, panel)

	if m.showHelp {
		return helpOverlay + "\n" + view
	}
	return view
}

const helpOverlay = `  KEYS
    space   pause / resume
    m / M   raise / lower mass
    o / O   add / remove an orbit
    s / S   faster / slower animation
    p       cycle known black holes
    a       toggle auto-rotation
    t       toggle orbit trails
    l       toggle the orbit readout
    g       toggle distortion grid
    x y z   rotate camera (shift reverses)
    + -     zoom
    r       reset clocks and trails
    q       quit`

// Snapshot renders a single frame of the orbit scene to a canvas without
// starting the interactive program.
func Snapshot(cfg *config.Config, width, height int) *Canvas {
	m := NewScene(cfg, nil)
	m.canvas = NewCanvas(width, height)
	m.draw()
	return m.canvas
}

// RunScene starts the interactive 3D scene.
func RunScene(cfg *config.Config, watcher *config.Watcher) error {
	p := tea.NewProgram(NewScene(cfg, watcher), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
