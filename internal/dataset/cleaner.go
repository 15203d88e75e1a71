package dataset

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Column labels in the source files sometimes carry stray whitespace, so
// header lookup always trims before matching.
func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, label := range header {
		idx[strings.TrimSpace(label)] = i
	}
	return idx
}

// dateLayouts accepted for the pollution Date column.
var dateLayouts = []string{"2006-01-02", "2006-01-02 15:04:05"}

// cleanEducation turns raw rows into an EducationTable: trims labels,
// parses Literacy, and drops rows where Literacy is null.
func cleanEducation(raw *rawTable) (EducationTable, CleanReport, error) {
	idx := columnIndex(raw.header)
	report := CleanReport{RowsRead: len(raw.rows)}

	for _, col := range []string{"State", "District", "Literacy"} {
		if _, ok := idx[col]; !ok {
			return nil, report, &ParseError{File: raw.path, Line: 1, Column: col, Reason: "column not found"}
		}
	}

	table := make(EducationTable, 0, len(raw.rows))
	for i, row := range raw.rows {
		line := raw.lines[i]
		lit, err := parseNullableFloat(row[idx["Literacy"]])
		if err != nil {
			return nil, report, &ParseError{File: raw.path, Line: line, Column: "Literacy", Reason: err.Error()}
		}
		if IsNull(lit) {
			report.DroppedNullKey++
			continue
		}
		table = append(table, EducationRecord{
			State:    strings.TrimSpace(row[idx["State"]]),
			District: strings.TrimSpace(row[idx["District"]]),
			Literacy: lit,
		})
	}
	report.RowsKept = len(table)
	return table, report, nil
}

// cleanPollution turns raw rows into a PollutionTable: trims labels,
// parses the Date column, projects onto the fixed seven-column subset
// (all other source columns are discarded), and drops rows where AQI is
// null. An unparseable date aborts the load unless dropBadDates is set.
func cleanPollution(raw *rawTable, dropBadDates bool) (PollutionTable, CleanReport, error) {
	idx := columnIndex(raw.header)
	report := CleanReport{RowsRead: len(raw.rows)}

	required := append([]string{"City", "Date"}, PollutantColumns...)
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return nil, report, &ParseError{File: raw.path, Line: 1, Column: col, Reason: "column not found"}
		}
	}

	table := make(PollutionTable, 0, len(raw.rows))
	for i, row := range raw.rows {
		line := raw.lines[i]

		date, err := parseDate(row[idx["Date"]])
		if err != nil {
			if dropBadDates {
				report.DroppedBadDates++
				continue
			}
			return nil, report, &ParseError{File: raw.path, Line: line, Column: "Date", Reason: err.Error()}
		}

		rec := PollutionRecord{City: strings.TrimSpace(row[idx["City"]]), Date: date}
		cells := map[string]*float64{
			"PM2.5": &rec.PM25,
			"PM10":  &rec.PM10,
			"NO2":   &rec.NO2,
			"SO2":   &rec.SO2,
			"AQI":   &rec.AQI,
		}
		for col, dst := range cells {
			v, err := parseNullableFloat(row[idx[col]])
			if err != nil {
				return nil, report, &ParseError{File: raw.path, Line: line, Column: col, Reason: err.Error()}
			}
			*dst = v
		}

		if IsNull(rec.AQI) {
			report.DroppedNullKey++
			continue
		}
		table = append(table, rec)
	}
	report.RowsKept = len(table)
	return table, report, nil
}

// parseNullableFloat parses a numeric cell. Empty cells and the usual CSV
// null markers parse as NaN rather than failing, matching how the source
// files encode missing readings.
func parseNullableFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "", "NA", "N/A", "NaN", "nan", "null":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}

// parseDate parses a Date cell and normalizes it to midnight UTC.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
