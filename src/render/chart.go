package render

import (
	"math"
	"strings"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"upload-report/src/models"
)

// timeTickLayout is the x axis tick label form.
const timeTickLayout = "2006-01-02 15:04"

// annotationBandRatio is the share of the image height reserved below the
// plot for the rotated tick labels and the summary block.
const annotationBandRatio = 0.35

// -----------------------------------------------------------------------------

// BuildChart assembles the cumulative uploads chart for the sorted series.
func BuildChart(cfg models.MChartConfig, xs []time.Time, ys []float64) chart.Chart {
	minT := xs[0]
	maxT := xs[len(xs)-1]

	yMax := 0.0
	for _, v := range ys {
		if v > yMax {
			yMax = v
		}
	}
	yTicks := makeCountTicks(yMax)
	yTop := yTicks[len(yTicks)-1].Value

	gridStyle := chart.Style{
		StrokeColor: drawing.Color{R: 220, G: 220, B: 220, A: 255},
		StrokeWidth: 1.0,
	}

	ch := chart.Chart{
		Title:      cfg.Title,
		TitleStyle: chart.Style{FontSize: 16},
		Width:      cfg.Width,
		Height:     cfg.Height,
		Background: chart.Style{Padding: chart.Box{
			Top:    20,
			Left:   20,
			Right:  20,
			Bottom: int(annotationBandRatio * float64(cfg.Height)),
		}},
		XAxis: chart.XAxis{
			Name:           "Time",
			NameStyle:      chart.Style{FontSize: 14},
			Style:          chart.Style{TextRotationDegrees: 45.0},
			Ticks:          makeTimeTicks(minT, maxT),
			Range:          &chart.ContinuousRange{Min: chart.TimeToFloat64(minT), Max: chart.TimeToFloat64(maxT)},
			GridMajorStyle: gridStyle,
		},
		YAxis: chart.YAxis{
			Name:           "Cumulative Uploads",
			NameStyle:      chart.Style{FontSize: 14},
			Ticks:          yTicks,
			Range:          &chart.ContinuousRange{Min: 0, Max: yTop},
			GridMajorStyle: gridStyle,
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Cumulative Uploads",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: colorFromName(cfg.LineColor),
					StrokeWidth: 2.0,
				},
			},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return ch
}

// -----------------------------------------------------------------------------

// makeTimeTicks places ticks on step boundaries across [minT, maxT], every
// label in the full date-time form.
func makeTimeTicks(minT, maxT time.Time) []chart.Tick {
	step := pickTimeStep(maxT.Sub(minT))

	var ticks []chart.Tick
	start := minT.Truncate(step)
	if start.Before(minT) {
		start = start.Add(step)
	}
	for t := start; !t.After(maxT); t = t.Add(step) {
		ticks = append(ticks, chart.Tick{Value: chart.TimeToFloat64(t), Label: t.Format(timeTickLayout)})
	}

	// go-chart needs at least two ticks to lay out the axis
	if len(ticks) < 2 {
		ticks = []chart.Tick{
			{Value: chart.TimeToFloat64(minT), Label: minT.Format(timeTickLayout)},
			{Value: chart.TimeToFloat64(maxT), Label: maxT.Format(timeTickLayout)},
		}
	}
	return ticks
}

// -----------------------------------------------------------------------------

// pickTimeStep returns a tick spacing that keeps the axis readable for the span.
func pickTimeStep(span time.Duration) time.Duration {
	steps := []time.Duration{
		time.Minute,
		2 * time.Minute,
		5 * time.Minute,
		10 * time.Minute,
		15 * time.Minute,
		30 * time.Minute,
		time.Hour,
		2 * time.Hour,
		3 * time.Hour,
		6 * time.Hour,
		12 * time.Hour,
		24 * time.Hour,
		48 * time.Hour,
		7 * 24 * time.Hour,
	}
	const maxTicks = 8

	for _, s := range steps {
		if span <= s*maxTicks {
			return s
		}
	}
	return steps[len(steps)-1]
}

// -----------------------------------------------------------------------------

// makeCountTicks builds y ticks from zero up to a padded maximum at a round
// step, so every tick lands on a whole number.
func makeCountTicks(maxVal float64) []chart.Tick {
	if maxVal <= 0 {
		maxVal = 1
	}
	step := niceStep(maxVal / 5)
	top := math.Ceil(maxVal/step) * step

	var ticks []chart.Tick
	for v := 0.0; v <= top+step/2; v += step {
		ticks = append(ticks, chart.Tick{Value: v, Label: FormatCountShort(v)})
	}
	return ticks
}

// -----------------------------------------------------------------------------

// niceStep rounds a raw step up to 1, 2 or 5 times a power of ten.
func niceStep(raw float64) float64 {
	if raw <= 0 {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	norm := raw / mag
	switch {
	case norm <= 1:
		return mag
	case norm <= 2:
		return 2 * mag
	case norm <= 5:
		return 5 * mag
	}
	return 10 * mag
}

// -----------------------------------------------------------------------------

// colorFromName maps the configured line color onto the chart palette.
func colorFromName(name string) drawing.Color {
	switch strings.ToLower(name) {
	case "blue":
		return chart.ColorBlue
	case "red":
		return chart.ColorRed
	case "gray", "grey":
		return chart.ColorAlternateGray
	default:
		return chart.ColorGreen
	}
}
