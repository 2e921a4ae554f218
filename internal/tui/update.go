package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"mapexpr/internal/geom"
)

// evalZooms are the tile zoom levels the t key cycles through.
var evalZooms = []uint8{0, 2, 4, 8, 12}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateMapSize()
		if m.showSidebar {
			m.l.SetSize(28-2, m.height-1-2) // provisional; refined in View
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				w := strings.TrimSpace(m.ta.Value())
				if w == "" {
					m.status = "paste: empty"
					return m, nil
				}
				cands, _, err := geom.ParseWKTPoints(w)
				if err != nil {
					m.status = "wkt error: " + err.Error()
					return m, nil
				}
				m.candidates = cands
				m.selPath = ""
				m.reEvaluate()
				m.status = fmt.Sprintf("pasted %d candidate(s)  inside=%d", len(cands), m.insideCount())
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1":
			m.showPolygon = !m.showPolygon
			m.status = fmt.Sprintf("polygon: %v", m.showPolygon)
		case "2":
			m.showCandidates = !m.showCandidates
			m.status = fmt.Sprintf("candidates: %v", m.showCandidates)
		case "+", "=":
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.05 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "t":
			for i, z := range evalZooms {
				if z == m.evalZoom {
					m.evalZoom = evalZooms[(i+1)%len(evalZooms)]
					break
				}
			}
			m.reEvaluate()
			m.status = fmt.Sprintf("tile zoom: %d  inside=%d", m.evalZoom, m.insideCount())
		case "tab":
			m.showSidebar = !m.showSidebar
			m.updateMapSize()
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(28-2, m.height-1-2)
			}
		case "p":
			m.pasteMode = !m.pasteMode
			if m.pasteMode {
				m.ta.SetValue("")
				m.status = "paste mode"
				m.ta.Focus()
			} else {
				m.status = "view mode"
				m.ta.Blur()
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showTable = !m.showTable
			if m.showTable {
				m.refreshTable()
			}
		case "i":
			if v, ok := m.inspectNearest(); ok {
				name := v.name
				if name == "" {
					name = "<unnamed>"
				}
				state := "outside"
				if v.inside {
					state = "inside"
				}
				src := "<pasted>"
				if m.selPath != "" {
					src = filepath.Base(m.selPath)
				}
				id := geom.TileAt(v.pt, m.evalZoom)
				meta := []string{
					fmt.Sprintf("candidate: %s", name),
					fmt.Sprintf("source: %s", src),
					fmt.Sprintf("lon=%.6f lat=%.6f", v.pt.X, v.pt.Y),
					fmt.Sprintf("tile: %d/%d/%d", id.Z, id.X, id.Y),
					fmt.Sprintf("verdict: %s", state),
				}
				m.inspectPopup = strings.Join(meta, "\n")
				m.status = "inspect popup"
			} else {
				m.inspectPopup = "no candidate nearby"
				m.status = m.inspectPopup
			}
		case "esc":
			m.inspectPopup = ""
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		case "up":
			m.offsetY -= 1
		case "down":
			m.offsetY += 1
		case "left":
			m.offsetX -= 2
		case "right":
			m.offsetX += 2
		}
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateMapSize mirrors View's layout math so inspectNearest sees the real
// viewport dimensions.
func (m *Model) updateMapSize() {
	sidebarWidth := 0
	if m.showSidebar {
		sidebarWidth = 28
	}
	contentHeight := m.height - 3
	if contentHeight < 4 {
		contentHeight = 4
	}
	contentWidth := max(10, m.width)
	m.mapW = max(10, contentWidth-sidebarWidth-1)
	m.mapH = max(4, contentHeight)
}

func (m Model) insideCount() int {
	n := 0
	for _, v := range m.verdicts {
		if v.inside {
			n++
		}
	}
	return n
}
