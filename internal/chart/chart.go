// Package chart renders a loan schedule to an SVG or PNG image.
package chart

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/amort/internal/cli"
	"github.com/theirongolddev/amort/internal/loan"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	defaultWidth  = 1240
	defaultHeight = 720
)

// Render writes a balance + cumulative-cost chart for the schedule to path.
// The image format is chosen by the file extension (.svg or .png).
func Render(s *loan.Schedule, path string) error {
	format, err := formatFor(path)
	if err != nil {
		return err
	}

	graph := build(s)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(format, f); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}

func formatFor(path string) (chart.RendererProvider, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return chart.SVG, nil
	case ".png":
		return chart.PNG, nil
	default:
		return nil, fmt.Errorf("unsupported chart format %q (use .svg or .png)", filepath.Ext(path))
	}
}

func build(s *loan.Schedule) chart.Chart {
	balance := s.BalanceSeries()
	cost := s.CumulativeCostSeries()

	xs := make([]float64, len(balance))
	for i := range xs {
		xs[i] = float64(i)
	}

	graph := chart.Chart{
		Title:  "Loan Payment Progress",
		Width:  defaultWidth,
		Height: defaultHeight,
		XAxis: chart.XAxis{
			Name: "Term",
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v any) string {
				if f, ok := v.(float64); ok {
					return cli.FormatMoneyShort(f)
				}
				return ""
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Remaining balance",
				XValues: xs,
				YValues: balance,
				Style: chart.Style{
					StrokeColor: drawing.ColorRed,
					StrokeWidth: 2,
				},
			},
			chart.ContinuousSeries{
				Name:    "Cumulative cost",
				XValues: xs,
				YValues: cost,
				Style: chart.Style{
					StrokeColor: drawing.ColorBlack,
					StrokeWidth: 2,
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph
}
