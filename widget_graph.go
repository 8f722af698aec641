package cozyui

import (
	"fmt"
	"strings"

	"github.com/go-theft-auto/cozyui/arc"
)

// GraphData represents a single data series in a graph.
type GraphData struct {
	Label  string
	Values []float32
	Color  uint32
}

// GraphState holds the interactive state of a graph widget.
type GraphState struct {
	HoveredIndex int // Index of hovered data point (-1 = none)
}

// Graph draws a line graph for time-series data.
// height specifies the graph height in pixels.
//
// Usage:
//
//	data := []cozyui.GraphData{
//	    {Label: "ms", Values: history.Values(), Color: cozyui.ColorWhite},
//	}
//	ctx.Graph("frame_times", data, 100, cozyui.WithGraphGridLines(4))
func (ctx *Context) Graph(id string, data []GraphData, height float32, opts ...Option) {
	if len(data) == 0 {
		return
	}

	pos := ctx.ItemPos()
	o := applyOptions(opts)
	graphID := ctx.GetID(id)

	state := GetState(ctx, graphID, GraphState{HoveredIndex: -1})

	w := ctx.currentLayoutWidth()
	if width := GetOpt(o, OptWidth); width > 0 {
		w = width
	}

	yMin, yMax := GetOpt(o, OptGraphYMin), GetOpt(o, OptGraphYMax)
	maxLen := 0
	for _, series := range data {
		maxLen = max(maxLen, len(series.Values))
	}
	if yMin == yMax {
		yMin, yMax = graphRange(data)
	}

	if maxLen < 2 {
		// Need at least 2 points to draw a line
		ctx.advanceCursor(Vec2{w, height})
		return
	}

	dl := ctx.DrawList
	dl.AddRectFilledRounded(pos.X, pos.Y, w, height, ctx.style.Rounding, ctx.style.InputBgColor)

	if gridLines := GetOpt(o, OptGraphGridLines); gridLines > 0 {
		gridColor := RGBA(80, 80, 80, 100)
		for i := range gridLines + 1 {
			y := pos.Y + height*float32(i)/float32(gridLines)
			dl.AddLine(pos.X, y, pos.X+w, y, gridColor, 1)
		}
	}

	xAt := func(i int) float32 { return pos.X + float32(i)*w/float32(maxLen-1) }
	yAt := func(v float32) float32 {
		return arc.RemapClamp(v, yMin, yMax, pos.Y+height, pos.Y)
	}

	points := make([]arc.Point, 0, maxLen)
	for _, series := range data {
		if len(series.Values) < 2 {
			continue
		}
		points = points[:0]
		for i, v := range series.Values {
			points = append(points, arc.Point{X: xAt(i), Y: yAt(v)})
		}
		dl.AddPolyline(points, series.Color, 1.5, false)
	}

	graphRect := Rect{X: pos.X, Y: pos.Y, W: w, H: height}
	state.HoveredIndex = -1

	if ctx.Input != nil && ctx.activeID == 0 && graphRect.Contains(ctx.Input.MousePos()) {
		relX := ctx.Input.MouseX - pos.X
		idx := int(relX/w*float32(maxLen-1) + 0.5)
		if idx >= 0 && idx < maxLen {
			state.HoveredIndex = idx

			hoverX := xAt(idx)
			dl.AddLine(hoverX, pos.Y, hoverX, pos.Y+height, RGBA(255, 255, 255, 100), 1)

			var lines []string
			for _, series := range data {
				if idx < len(series.Values) {
					lines = append(lines, fmt.Sprintf("%s: %.2f", series.Label, series.Values[idx]))
				}
			}
			ctx.Tooltip(strings.Join(lines, "\n"))
		}
	}

	if GetOpt(o, OptGraphLegend) && len(data) > 1 {
		legendX := pos.X + 4
		legendY := pos.Y + 4
		for _, series := range data {
			dl.AddRect(legendX, legendY+2, 8, 8, series.Color)
			ctx.addText(legendX+12, legendY, series.Label, ctx.style.TextColor)
			legendY += ctx.lineHeight()
		}
	}

	// Y-axis labels (min/max)
	labelColor := ctx.style.TextDisabledColor
	ctx.addText(pos.X+2, pos.Y+2, fmt.Sprintf("%.1f", yMax), labelColor)
	ctx.addText(pos.X+2, pos.Y+height-ctx.lineHeight()-2, fmt.Sprintf("%.1f", yMin), labelColor)

	dl.AddRectOutline(pos.X, pos.Y, w, height, ctx.style.BorderColor, 1)

	SetState(ctx, graphID, state)

	ctx.advanceCursor(Vec2{w, height})
}

// graphRange returns the data range padded by 10%, or by 1 for flat data.
func graphRange(data []GraphData) (lo, hi float32) {
	lo, hi = float32(1e9), float32(-1e9)
	for _, series := range data {
		for _, v := range series.Values {
			lo = minf(lo, v)
			hi = maxf(hi, v)
		}
	}
	if lo > hi {
		return 0, 1
	}
	padding := (hi - lo) * 0.1
	if padding == 0 {
		padding = 1
	}
	return lo - padding, hi + padding
}
