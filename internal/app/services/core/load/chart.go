package load

import (
	"embed"
	"fmt"
	"io"
	"opd-scheduler-service/internal/app/models"
	"strconv"
	"text/template"
)

//go:embed templates/chart.svg.tmpl
var chartFS embed.FS

const (
	ChartTitle  = "OPD Appointment Clustering"
	chartWidth  = 720
	chartHeight = 440
	plotLeft    = 60
	plotRight   = 580
	plotTop     = 50
	plotBottom  = 380
	legendX     = 600
)

var seriesColors = []string{"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd", "#8c564b", "#e377c2", "#7f7f7f"}

var chartTemplate = template.Must(template.New("chart.svg.tmpl").Funcs(template.FuncMap{
	"legendY":     func(i int) int { return plotTop + i*20 },
	"legendTextX": func(x int) int { return x + 16 },
	"legendTextY": func(i int) int { return plotTop + i*20 + 10 },
}).ParseFS(chartFS, "templates/chart.svg.tmpl"))

type chartPoint struct {
	X, Y string
}

type chartSeries struct {
	Name   string
	Color  string
	Points []chartPoint
}

type chartTick struct {
	Pos   string
	Label string
}

type chartData struct {
	Width, Height                            int
	PlotLeft, PlotRight, PlotTop, PlotBottom int
	TitleX, XTickY, YTickX, XLabelY, YLabelY int
	LegendX                                  int
	Title, XLabel, YLabel                    string
	XTicks, YTicks                           []chartTick
	Series                                   []chartSeries
}

// RenderChart writes an SVG scatter of the clustering with Hour on x and Day on y.
func RenderChart(w io.Writer, clustering *models.LoadClustering) error {
	data := chartData{
		Width:      chartWidth,
		Height:     chartHeight,
		PlotLeft:   plotLeft,
		PlotRight:  plotRight,
		PlotTop:    plotTop,
		PlotBottom: plotBottom,
		TitleX:     (plotLeft + plotRight) / 2,
		XTickY:     plotBottom + 18,
		YTickX:     plotLeft - 8,
		XLabelY:    plotBottom + 42,
		YLabelY:    (plotTop + plotBottom) / 2,
		LegendX:    legendX,
		Title:      ChartTitle,
		XLabel:     "Hour",
		YLabel:     "Day",
	}

	for hour := models.FirstSlotHour; hour <= models.LastSlotHour; hour++ {
		data.XTicks = append(data.XTicks, chartTick{Pos: scaleX(float64(hour)), Label: strconv.Itoa(hour)})
	}
	for _, day := range models.WorkingDays {
		data.YTicks = append(data.YTicks, chartTick{Pos: scaleY(float64(day)), Label: strconv.Itoa(day.Number())})
	}

	data.Series = make([]chartSeries, clustering.K)
	for i := range data.Series {
		data.Series[i] = chartSeries{
			Name:  fmt.Sprintf("Cluster %d", i),
			Color: seriesColors[i%len(seriesColors)],
		}
	}
	for _, point := range clustering.Points {
		if point.Cluster < 0 || point.Cluster >= len(data.Series) {
			return fmt.Errorf("point assigned to unknown cluster %d", point.Cluster)
		}
		data.Series[point.Cluster].Points = append(data.Series[point.Cluster].Points, chartPoint{
			X: scaleX(float64(point.Hour)),
			Y: scaleY(float64(point.Day)),
		})
	}

	return chartTemplate.Execute(w, data)
}

// scaleX maps hours 8.5..16.5 onto the plot width.
func scaleX(hour float64) string {
	span := float64(models.LastSlotHour-models.FirstSlotHour) + 1
	x := plotLeft + (hour-float64(models.FirstSlotHour)+0.5)/span*(plotRight-plotLeft)
	return strconv.FormatFloat(x, 'f', 1, 64)
}

// scaleY maps days 0.5..5.5 onto the plot height, Monday at the bottom.
func scaleY(day float64) string {
	span := float64(len(models.WorkingDays))
	y := plotBottom - (day-0.5)/span*(plotBottom-plotTop)
	return strconv.FormatFloat(y, 'f', 1, 64)
}
