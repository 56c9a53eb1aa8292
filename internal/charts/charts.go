package charts

import (
	"fmt"

	charts "github.com/vicanso/go-charts/v2"

	"github.com/quantfolio/portfolio-analytics/pkg/models"
	"github.com/quantfolio/portfolio-analytics/pkg/utils/errors"
)

// Series names accepted by Render.
const (
	SeriesPerformance = "performance"
	SeriesDrawdown    = "drawdown"
)

// Render draws the requested series of a portfolio as a PNG line chart.
func Render(portfolio *models.Portfolio, series string) ([]byte, error) {
	switch series {
	case SeriesPerformance:
		return renderPerformance(portfolio)
	case SeriesDrawdown:
		return renderDrawdown(portfolio)
	default:
		return nil, errors.InvalidArgument("unknown chart series: " + series)
	}
}

func renderPerformance(portfolio *models.Portfolio) ([]byte, error) {
	points := portfolio.PerformanceData
	if len(points) == 0 {
		return nil, errors.InvalidArgument("portfolio has no performance data")
	}

	values := make([][]float64, 2)
	values[0] = make([]float64, len(points))
	values[1] = make([]float64, len(points))
	labels := make([]string, len(points))
	for i, pt := range points {
		values[0][i] = pt.PortfolioReturn
		values[1][i] = pt.BenchmarkReturn
		labels[i] = pt.Date[2:7] // "06-01" ticks keep the axis readable over two years
	}

	title := fmt.Sprintf("%s vs %s", portfolio.Summary.Name, portfolio.Summary.Benchmark)
	subtitle := fmt.Sprintf("Return: %.2f%% | Sharpe: %.2f | Vol: %.2f%% | MaxDD: %.2f%%",
		portfolio.RiskMetrics.AnnualizedReturn,
		portfolio.RiskMetrics.SharpeRatio,
		portfolio.RiskMetrics.AnnualizedVolatility,
		portfolio.RiskMetrics.MaxDrawdown)

	p, err := charts.LineRender(
		values,
		charts.TitleTextOptionFunc(title+"\n"+subtitle),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        labels,
			SplitNumber: 8,
			BoundaryGap: charts.FalseFlag(),
		}),
		charts.LegendOptionFunc(charts.LegendOption{
			Data: []string{"Portfolio", "Benchmark"},
		}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render performance chart")
	}
	buf, err := p.Bytes()
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode performance chart")
	}
	return buf, nil
}

func renderDrawdown(portfolio *models.Portfolio) ([]byte, error) {
	points := portfolio.DrawdownData
	if len(points) == 0 {
		return nil, errors.InvalidArgument("portfolio has no drawdown data")
	}

	values := make([]float64, len(points))
	labels := make([]string, len(points))
	yMax := 0.0
	yMin := 0.0
	for i, pt := range points {
		values[i] = pt.Drawdown
		labels[i] = pt.Date[2:7]
		if pt.Drawdown < yMin {
			yMin = pt.Drawdown
		}
	}
	yMin -= 2 // headroom below the deepest trough

	p, err := charts.LineRender(
		[][]float64{values},
		charts.TitleTextOptionFunc(portfolio.Summary.Name+" Drawdown"),
		charts.XAxisOptionFunc(charts.XAxisOption{
			Data:        labels,
			SplitNumber: 8,
			BoundaryGap: charts.FalseFlag(),
		}),
		charts.YAxisOptionFunc(charts.YAxisOption{
			Min:         &yMin,
			Max:         &yMax,
			DivideCount: 5,
		}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render drawdown chart")
	}
	buf, err := p.Bytes()
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode drawdown chart")
	}
	return buf, nil
}
