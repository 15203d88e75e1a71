package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/datagaze-labs/datagaze/internal/dataset"
	"github.com/datagaze-labs/datagaze/internal/query"
	"github.com/datagaze-labs/datagaze/internal/report"
	"github.com/datagaze-labs/datagaze/internal/stats"
)

// SummaryOptions holds the filter flags for the summary command.
type SummaryOptions struct {
	State       string
	City        string
	From        string
	To          string
	Granularity string
}

// NewSummaryCommand creates the summary command.
func NewSummaryCommand() *cobra.Command {
	opts := &SummaryOptions{}
	cmd := &cobra.Command{
		Use:   "summary [education|pollution]",
		Short: "Print dashboard metrics on the command line",
		Long: `Compute the dashboard metrics for one dataset and print them.

The same filters the web UI offers are available as flags; the output
format follows the global --output flag.`,
		Example: `  # Literacy metrics for one state
  datagaze summary education --state Kerala

  # City air quality over a date range, as JSON
  datagaze summary pollution --city Delhi --from 2015-01-01 --to 2015-12-31 -o json`,
		ValidArgs: []string{"education", "pollution"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cc := NewCommandContext(cmd)

			ds, err := dataset.Load(datasetOptions(cc.Cfg), cc.Logger)
			if err != nil {
				return fmt.Errorf("failed to load datasets: %w", err)
			}

			w := cmd.OutOrStdout()
			switch args[0] {
			case "education":
				return summarizeEducation(w, cc.Cfg.OutputFormat, ds, opts)
			default:
				return summarizePollution(w, cc.Cfg.OutputFormat, ds, opts)
			}
		},
	}

	cmd.Flags().StringVar(&opts.State, "state", query.All, "State to filter districts by")
	cmd.Flags().StringVar(&opts.City, "city", query.All, "City to filter readings by")
	cmd.Flags().StringVar(&opts.From, "from", "", "Start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&opts.To, "to", "", "End date (YYYY-MM-DD, inclusive)")
	cmd.Flags().StringVar(&opts.Granularity, "granularity", string(stats.Monthly), "Trend granularity (Monthly|Yearly)")

	return cmd
}

type districtRow struct {
	District string  `json:"district" yaml:"district"`
	State    string  `json:"state" yaml:"state"`
	Literacy float64 `json:"literacy" yaml:"literacy"`
}

type groupRow struct {
	Key   string  `json:"key" yaml:"key"`
	Mean  float64 `json:"mean" yaml:"mean"`
	Count int     `json:"count" yaml:"count"`
}

type educationSummary struct {
	State        string        `json:"state" yaml:"state"`
	HasData      bool          `json:"has_data" yaml:"has_data"`
	AvgLiteracy  float64       `json:"avg_literacy,omitempty" yaml:"avg_literacy,omitempty"`
	Districts    int           `json:"districts" yaml:"districts"`
	TopDistricts []districtRow `json:"top_districts,omitempty" yaml:"top_districts,omitempty"`
	States       []groupRow    `json:"states,omitempty" yaml:"states,omitempty"`
}

func summarizeEducation(w io.Writer, format string, ds *dataset.Datasets, opts *SummaryOptions) error {
	p := query.NewEducationParams()
	p.State = opts.State
	view := report.BuildEducationView(ds.Education, p)

	if !view.HasData {
		if structuredFormat(format) {
			return renderValue(w, format, educationSummary{State: view.State})
		}
		_, _ = fmt.Fprintf(w, "No districts match state %q\n", p.State)
		return nil
	}

	if structuredFormat(format) {
		out := educationSummary{
			State:       view.State,
			HasData:     true,
			AvgLiteracy: view.AvgLiteracy,
			Districts:   view.Districts,
		}
		for _, d := range view.TopDistricts {
			out.TopDistricts = append(out.TopDistricts, districtRow{District: d.District, State: d.State, Literacy: d.Literacy})
		}
		for _, g := range view.StateComparison {
			out.States = append(out.States, groupRow{Key: g.Key, Mean: g.Mean, Count: g.Count})
		}
		return renderValue(w, format, out)
	}

	_, _ = fmt.Fprintf(w, "State: %s\n", view.State)
	_, _ = fmt.Fprintf(w, "Average literacy: %s%%\n", report.Metric(view.AvgLiteracy))
	_, _ = fmt.Fprintf(w, "Districts: %d\n\n", view.Districts)

	_, _ = fmt.Fprintln(w, "Top districts by literacy rate:")
	rows := make([][]string, 0, len(view.TopDistricts))
	for _, d := range view.TopDistricts {
		rows = append(rows, []string{d.District, d.State, report.Metric(d.Literacy)})
	}
	if err := renderRows(w, format, []string{"District", "State", "Literacy"}, rows); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(w, "\nAverage literacy by state:")
	rows = rows[:0]
	for _, g := range view.StateComparison {
		rows = append(rows, []string{g.Key, report.Metric(g.Mean), fmt.Sprintf("%d", g.Count)})
	}
	return renderRows(w, format, []string{"State", "Average Literacy", "Districts"}, rows)
}

type trendRow struct {
	Period string  `json:"period" yaml:"period"`
	Mean   float64 `json:"mean" yaml:"mean"`
	Count  int     `json:"count" yaml:"count"`
}

type pollutionSummary struct {
	City      string     `json:"city" yaml:"city"`
	HasData   bool       `json:"has_data" yaml:"has_data"`
	AvgAQI    float64    `json:"avg_aqi,omitempty" yaml:"avg_aqi,omitempty"`
	AQIBand   string     `json:"aqi_band,omitempty" yaml:"aqi_band,omitempty"`
	MaxPM25   float64    `json:"max_pm25,omitempty" yaml:"max_pm25,omitempty"`
	MaxPM10   float64    `json:"max_pm10,omitempty" yaml:"max_pm10,omitempty"`
	Trend     []trendRow `json:"trend,omitempty" yaml:"trend,omitempty"`
	TopCities []groupRow `json:"top_cities,omitempty" yaml:"top_cities,omitempty"`
}

func summarizePollution(w io.Writer, format string, ds *dataset.Datasets, opts *SummaryOptions) error {
	p := query.NewPollutionParams()
	p.City = opts.City
	var err error
	if p.From, err = parseDateFlag("from", opts.From); err != nil {
		return err
	}
	if p.To, err = parseDateFlag("to", opts.To); err != nil {
		return err
	}
	p.Granularity = stats.ParseGranularity(opts.Granularity)
	view := report.BuildPollutionView(ds.Pollution, p)

	if !view.HasData {
		if structuredFormat(format) {
			return renderValue(w, format, pollutionSummary{City: view.City})
		}
		_, _ = fmt.Fprintln(w, "No readings match the given filters")
		return nil
	}

	if structuredFormat(format) {
		out := pollutionSummary{
			City:    view.City,
			HasData: true,
			AvgAQI:  view.AvgAQI,
			AQIBand: view.AQIBand,
			MaxPM25: view.MaxPM25,
			MaxPM10: view.MaxPM10,
		}
		for _, t := range view.Trend {
			out.Trend = append(out.Trend, trendRow{Period: t.Label, Mean: t.Mean, Count: t.Count})
		}
		for _, g := range view.TopCities {
			out.TopCities = append(out.TopCities, groupRow{Key: g.Key, Mean: g.Mean, Count: g.Count})
		}
		return renderValue(w, format, out)
	}

	_, _ = fmt.Fprintf(w, "City: %s\n", view.City)
	_, _ = fmt.Fprintf(w, "Average AQI: %s", report.Metric(view.AvgAQI))
	if view.AQIBand != "" {
		_, _ = fmt.Fprintf(w, " (%s)", view.AQIBand)
	}
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "Max PM2.5: %s µg/m³\n", report.Metric(view.MaxPM25))
	_, _ = fmt.Fprintf(w, "Max PM10: %s µg/m³\n\n", report.Metric(view.MaxPM10))

	_, _ = fmt.Fprintf(w, "Mean AQI per %s period:\n", view.Params.Granularity)
	rows := make([][]string, 0, len(view.Trend))
	for _, t := range view.Trend {
		rows = append(rows, []string{t.Label, report.Metric(t.Mean), fmt.Sprintf("%d", t.Count)})
	}
	if err := renderRows(w, format, []string{"Period", "Mean AQI", "Readings"}, rows); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(w, "\nTop cities by average AQI:")
	rows = rows[:0]
	for _, g := range view.TopCities {
		rows = append(rows, []string{g.Key, report.Metric(g.Mean), fmt.Sprintf("%d", g.Count)})
	}
	return renderRows(w, format, []string{"City", "Average AQI", "Readings"}, rows)
}

func parseDateFlag(name, s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s date %q: expected YYYY-MM-DD", name, s)
	}
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &t, nil
}
