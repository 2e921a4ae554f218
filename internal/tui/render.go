package tui

import (
	"sort"
	"strings"
)

// screenXY maps lon/lat to screen cell coordinates under the current zoom
// and pan.
func (m Model) screenXY(p [2]float64, w, h int) (int, int, bool) {
	if !m.bbox.Valid() {
		return 0, 0, false
	}
	nx := (p[0] - m.bbox.MinX) / (m.bbox.MaxX - m.bbox.MinX)
	ny := (p[1] - m.bbox.MinY) / (m.bbox.MaxY - m.bbox.MinY)
	// zoom around the viewport center
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	sx := int(zx*float64(w-1)) + m.offsetX
	sy := int((1.0-zy)*float64(h-1)) + m.offsetY
	return sx, sy, true
}

// screenXYMicro maps lon/lat into the 2x4 microgrid used by the braille
// canvas.
func (m Model) screenXYMicro(p [2]float64, w, h int) (int, int, bool) {
	if !m.bbox.Valid() {
		return 0, 0, false
	}
	nx := (p[0] - m.bbox.MinX) / (m.bbox.MaxX - m.bbox.MinX)
	ny := (p[1] - m.bbox.MinY) / (m.bbox.MaxY - m.bbox.MinY)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}

func (m Model) renderMap(w, h int) string {
	lines := make([]string, h)
	blank := strings.Repeat(" ", w)
	for y := range lines {
		lines[y] = blank
	}
	cv := newCanvas(w, h)

	// Reference polygon: scanline fill on the outer ring, braille edges for
	// every ring so holes stay visible.
	if m.showPolygon && len(m.polygon) > 0 {
		var ringsMic [][][2]int
		for _, ring := range m.polygon {
			var sm [][2]int
			for _, p := range ring {
				mx, my, ok := m.screenXYMicro([2]float64{p.X, p.Y}, w, h)
				if !ok {
					continue
				}
				sm = append(sm, [2]int{mx, my})
			}
			if len(sm) >= 3 {
				ringsMic = append(ringsMic, sm)
			}
		}
		if len(ringsMic) > 0 {
			fillRing(cv, ringsMic[0], h*4)
			for _, r := range ringsMic {
				for i := 0; i < len(r); i++ {
					a := r[i]
					b := r[(i+1)%len(r)]
					cv.line(a[0], a[1], b[0], b[1])
				}
			}
		}
	}

	// Composite the braille layer onto the base lines.
	for y, bl := range cv.rows() {
		if y >= h {
			break
		}
		base := []rune(lines[y])
		for x, r := range []rune(bl) {
			if r != ' ' && x < len(base) {
				base[x] = r
			}
		}
		lines[y] = string(base)
	}

	// Candidate markers on top, colored by verdict. Replacements run
	// right-to-left per row so styled inserts do not shift pending indexes.
	if m.showCandidates && len(m.verdicts) > 0 {
		type marker struct {
			x      int
			inside bool
		}
		perRow := make(map[int][]marker)
		for _, v := range m.verdicts {
			sx, sy, ok := m.screenXY([2]float64{v.pt.X, v.pt.Y}, w, h)
			if !ok || sx < 0 || sx >= w || sy < 0 || sy >= h {
				continue
			}
			perRow[sy] = append(perRow[sy], marker{x: sx, inside: v.inside})
		}
		for y, ms := range perRow {
			sort.Slice(ms, func(i, j int) bool { return ms[i].x > ms[j].x })
			line := lines[y]
			for _, mk := range ms {
				r := []rune(line)
				if mk.x >= len(r) {
					continue
				}
				glyph := outsideStyle.Render("●")
				if mk.inside {
					glyph = insideStyle.Render("●")
				}
				line = string(r[:mk.x]) + glyph + string(r[mk.x+1:])
			}
			lines[y] = line
		}
	}
	return strings.Join(lines, "\n")
}

// fillRing scan-fills the interior of one ring on the microgrid using the
// even-odd rule.
func fillRing(cv *canvas, ring [][2]int, hMic int) {
	for yMic := 0; yMic < hMic; yMic++ {
		var xs []int
		for i := 0; i < len(ring); i++ {
			a := ring[i]
			b := ring[(i+1)%len(ring)]
			if a[1] == b[1] { // horizontal edge: skip
				continue
			}
			y0, y1 := a[1], b[1]
			x0, x1 := a[0], b[0]
			if (yMic >= y0 && yMic < y1) || (yMic >= y1 && yMic < y0) {
				t := float64(yMic-y0) / float64(y1-y0)
				xs = append(xs, int(float64(x0)+t*float64(x1-x0)))
			}
		}
		if len(xs) < 2 {
			continue
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0, x1 := xs[i], xs[i+1]
			if x0 > x1 {
				x0, x1 = x1, x0
			}
			for x := max(0, x0); x <= x1; x++ {
				cv.set(x, yMic)
			}
		}
	}
}

// inspectNearest returns the evaluated candidate closest to the viewport
// center.
func (m Model) inspectNearest() (verdict, bool) {
	if len(m.verdicts) == 0 {
		return verdict{}, false
	}
	w, h := m.mapW, m.mapH
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	cx, cy := w/2, h/2
	bestD := 1<<31 - 1
	var best verdict
	for _, v := range m.verdicts {
		sx, sy, ok := m.screenXY([2]float64{v.pt.X, v.pt.Y}, w, h)
		if !ok {
			continue
		}
		dx := sx - cx
		dy := sy - cy
		if d := dx*dx + dy*dy; d < bestD {
			bestD = d
			best = v
		}
	}
	if bestD == 1<<31-1 {
		return verdict{}, false
	}
	return best, true
}
