package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"mapexpr/internal/expr"
	"mapexpr/internal/geom"
	"mapexpr/internal/tui"
)

func main() {
	exprPath := flag.String("expr", "", "within expression JSON file")
	featPath := flag.String("features", "", "candidate features (.geojson/.json/.csv/.kml/.wkt); with -expr, run headless")
	zoom := flag.Uint("z", 0, "tile zoom used to synthesize tile-local coordinates")
	flag.Parse()

	if *exprPath != "" && *featPath != "" {
		if err := runCheck(*exprPath, *featPath, uint8(*zoom)); err != nil {
			log.Fatal(err)
		}
		return
	}

	var m tea.Model
	switch {
	case flag.NArg() > 0:
		m = tui.NewWithPath(flag.Arg(0))
	case *exprPath != "":
		m = tui.NewWithPath(*exprPath)
	default:
		m = tui.New()
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}

// runCheck evaluates every candidate feature against the expression and
// prints one verdict per line.
func runCheck(exprPath, featPath string, z uint8) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	data, err := os.ReadFile(exprPath)
	if err != nil {
		return err
	}
	var pctx expr.ParsingContext
	node, err := expr.ParseWithin(gjson.ParseBytes(data), &pctx)
	if err != nil {
		return err
	}

	cands, _, err := geom.LoadCandidates(featPath)
	if err != nil {
		return err
	}

	obs := expr.NewZapObserver(logger)
	inside := 0
	for _, c := range cands {
		id := geom.TileAt(c.Point, z)
		local := id.FromLonLat(c.Point)
		f := geom.NewPointFeature(local)
		ok := node.Evaluate(expr.EvaluationContext{Feature: f, Canonical: &id, Observer: obs})
		verdict := "outside"
		if ok {
			verdict = "inside"
			inside++
		}
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("(%.6f %.6f)", c.Point.X, c.Point.Y)
		}
		fmt.Printf("%s\t%s\n", name, verdict)
	}
	logger.Info("within check complete",
		zap.Int("features", len(cands)),
		zap.Int("inside", inside),
		zap.Uint8("zoom", z))
	return nil
}
