package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/gravwell/internal/config"
	"github.com/san-kum/gravwell/internal/survey"
)

var demoInfo = map[string]string{
	"basic":    "size and escape velocity",
	"dilation": "time dilation by distance",
	"orbits":   "stable orbit survey",
	"extreme":  "tidal forces and spaghettification",
	"redshift": "gravitational redshift",
	"compare":  "known black holes side by side",
	"fall":     "falling toward the horizon",
	"horizon":  "event horizon properties",
	"table":    "raw data table",
	"plot":     "dilation curve",
	"masses":   "dilation curves, several masses",
	"scene":    "interactive 3d orbit scene",
}

var demoOrder = []string{
	"basic", "dilation", "orbits", "extreme", "redshift", "compare",
	"fall", "horizon", "table", "plot", "masses", "scene",
}

const (
	menuStateMenu = iota
	menuStateParams
	menuStateOutput
	menuStateScene
)

type menuModel struct {
	state, cursor int
	selected      string
	params        map[string]float64
	paramNames    []string
	paramCursor   int
	editing       bool
	editBuf       string
	output        string
	scene         SceneModel
	width, height int
}

func NewMenuApp() *menuModel {
	return &menuModel{
		state: menuStateMenu,
		params: map[string]float64{
			"mass": 10, "orbits": 4, "start_rs": 3, "points": 100,
			"height": 2, "hours": 1, "speed": 1,
		},
		width: 80, height: 24,
	}
}

func (m menuModel) Init() tea.Cmd { return nil }

func (m menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	default:
		if m.state == menuStateScene {
			newScene, cmd := m.scene.Update(msg)
			m.scene = newScene.(SceneModel)
			return m, cmd
		}
	}
	return m, nil
}

func (m menuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case menuStateMenu:
		return m.menuKey(msg)
	case menuStateParams:
		return m.paramKey(msg)
	case menuStateOutput:
		switch msg.String() {
		case "q", "escape", "enter":
			m.state = menuStateMenu
		case "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	case menuStateScene:
		if msg.String() == "escape" {
			m.state = menuStateMenu
			return m, nil
		}
		newScene, cmd := m.scene.Update(msg)
		m.scene = newScene.(SceneModel)
		return m, cmd
	}
	return m, nil
}

func (m menuModel) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(demoOrder)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.selected = demoOrder[m.cursor]
		m.paramNames = paramsForDemo(m.selected)
		m.paramCursor = 0
		if len(m.paramNames) == 0 {
			return m.run()
		}
		m.state = menuStateParams
	}
	return m, nil
}

func (m menuModel) paramKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			var val float64
			fmt.Sscanf(m.editBuf, "%f", &val)
			m.params[m.paramNames[m.paramCursor]] = val
			m.editing, m.editBuf = false, ""
		case "escape":
			m.editing, m.editBuf = false, ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == 'e' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}
	switch msg.String() {
	case "q", "escape":
		m.state = menuStateMenu
	case "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.paramNames)-1 {
			m.paramCursor++
		}
	case "enter", " ":
		m.editing = true
		m.editBuf = fmt.Sprintf("%g", m.params[m.paramNames[m.paramCursor]])
	case "left", "h":
		name := m.paramNames[m.paramCursor]
		m.params[name] = maxf(paramStep(name), m.params[name]-paramStep(name))
	case "right", "l":
		name := m.paramNames[m.paramCursor]
		m.params[name] += paramStep(name)
	case "s":
		return m.run()
	}
	return m, nil
}

func paramsForDemo(slug string) []string {
	switch slug {
	case "basic", "compare", "masses":
		return nil
	case "dilation", "redshift", "table", "plot":
		return []string{"mass"}
	case "orbits":
		return []string{"mass", "orbits"}
	case "extreme":
		return []string{"height"}
	case "fall":
		return []string{"mass", "start_rs", "points"}
	case "horizon":
		return []string{"mass", "height", "hours"}
	case "scene":
		return []string{"mass", "orbits", "speed"}
	}
	return nil
}

func paramStep(name string) float64 {
	switch name {
	case "mass":
		return 1
	case "orbits":
		return 1
	case "points":
		return 10
	default:
		return 0.5
	}
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func (m menuModel) run() (tea.Model, tea.Cmd) {
	mass := m.params["mass"]
	switch m.selected {
	case "basic":
		m.output = BasicReport()
	case "dilation":
		m.output = DilationReport(mass, config.DefaultConfig().DistancesRs)
	case "orbits":
		out, err := OrbitReport(mass, int(m.params["orbits"]))
		m.output = orText(out, err)
	case "extreme":
		m.output = ExtremeReport(m.params["height"])
	case "redshift":
		m.output = RedshiftReport(mass)
	case "compare":
		m.output = CompareReport()
	case "fall":
		m.output = FallReport(mass, m.params["start_rs"], int(m.params["points"]))
	case "horizon":
		out, err := HorizonReport(mass, m.params["height"], m.params["hours"])
		m.output = orText(out, err)
	case "table":
		m.output = survey.DataTable(mass, config.DefaultConfig().DistancesRs)
	case "plot":
		m.output = DilationPlot(mass, 70, 16)
	case "masses":
		m.output = MultiMassPlot([]float64{3, 10, 100, 4.3e6}, 70, 16)
	case "scene":
		cfg := config.DefaultConfig()
		cfg.MassSolar = mass
		cfg.NumOrbits = int(m.params["orbits"])
		cfg.Speed = m.params["speed"]
		m.scene = NewScene(cfg, nil)
		m.state = menuStateScene
		return m, m.scene.Init()
	}
	m.state = menuStateOutput
	return m, nil
}

func orText(out string, err error) string {
	if err != nil {
		return warnStyle.Render(err.Error())
	}
	return out
}

func (m menuModel) View() string {
	switch m.state {
	case menuStateMenu:
		return m.viewMenu()
	case menuStateParams:
		return m.viewParams()
	case menuStateOutput:
		return m.output + "\n" + helpStyle.Render("esc back  ctrl+c quit")
	case menuStateScene:
		return m.scene.View()
	}
	return ""
}

func (m menuModel) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + titleStyle.Render("GRAVWELL") + "\n")
	b.WriteString("    " + subtleStyle.Render("black hole calculator") + "\n")
	b.WriteString("    " + subtleStyle.Render("─────────────────────────") + "\n\n")
	for i, slug := range demoOrder {
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n",
				keyStyle.Render("▸"),
				valueStyle.Bold(true).Render(fmt.Sprintf("%-10s", slug)),
				accentStyle.Render(demoInfo[slug])))
		} else {
			b.WriteString(fmt.Sprintf("      %s  %s\n",
				subtleStyle.Render(fmt.Sprintf("%-10s", slug)),
				dimStyle.Render(demoInfo[slug])))
		}
	}
	b.WriteString("\n    " + keyStyle.Render("j/k") + subtleStyle.Render(" navigate  ") +
		keyStyle.Render("enter") + subtleStyle.Render(" select  ") +
		keyStyle.Render("q") + subtleStyle.Render(" quit") + "\n")
	return b.String()
}

func (m menuModel) viewParams() string {
	var b strings.Builder
	b.WriteString("\n\n    " + titleStyle.Render(strings.ToUpper(m.selected)) + "\n")
	b.WriteString("    " + subtleStyle.Render(demoInfo[m.selected]) + "\n")
	b.WriteString("    " + subtleStyle.Render("─────────────────────────") + "\n\n")
	for i, name := range m.paramNames {
		valStr := fmt.Sprintf("%10g", m.params[name])
		if m.editing && i == m.paramCursor {
			valStr = fmt.Sprintf("%10s", m.editBuf+"_")
		}
		if i == m.paramCursor {
			b.WriteString(fmt.Sprintf("    %s %s %s\n",
				keyStyle.Render("▸"),
				valueStyle.Bold(true).Render(fmt.Sprintf("%-10s", name)),
				accentStyle.Render(valStr)))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s\n",
				subtleStyle.Render(fmt.Sprintf("%-10s", name)),
				dimStyle.Render(valStr)))
		}
	}
	b.WriteString("\n    " + keyStyle.Render("j/k") + subtleStyle.Render(" select  ") +
		keyStyle.Render("h/l") + subtleStyle.Render(" adjust  ") +
		keyStyle.Render("enter") + subtleStyle.Render(" edit  ") +
		keyStyle.Render("s") + subtleStyle.Render(" run  ") +
		keyStyle.Render("esc") + subtleStyle.Render(" back") + "\n")
	return b.String()
}

// RunInteractive starts the demo menu.
func RunInteractive() error {
	_, err := tea.NewProgram(NewMenuApp(), tea.WithAltScreen()).Run()
	return err
}
