package render

import (
	"fmt"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"path/filepath"
	"scheduling-simulator/internal/responses"
)

// Chart saves a bar chart of the three averages to dir/metrics_<algorithm>.png
// and returns the file path.
func Chart(dir string, response responses.ScheduleResponse) (string, error) {
	p := plot.New()
	p.Title.Text = response.Title
	p.Y.Label.Text = "Time"
	p.X.Label.Text = "Metrics"

	values := plotter.Values{
		response.AverageWaitingTime,
		response.AverageTurnAroundTime,
		response.AverageResponseTime,
	}
	barChart, err := plotter.NewBarChart(values, vg.Points(50))
	if err != nil {
		return "", fmt.Errorf("building bar chart: %w", err)
	}
	p.Add(barChart)
	p.NominalX("Waiting", "Turnaround", "Response")

	path := filepath.Join(dir, fmt.Sprintf("metrics_%s.png", response.Algorithm))
	if err := p.Save(4*vg.Inch, 4*vg.Inch, path); err != nil {
		return "", fmt.Errorf("saving chart: %w", err)
	}
	return path, nil
}
