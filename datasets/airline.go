// SPDX-License-Identifier: MIT

package datasets

import (
	_ "embed"
	"fmt"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tsmtype/frame"
)

//go:embed airline.yaml
var airlineYAML []byte

// seriesDoc is the on-disk form of an embedded monthly series.
// Values may be nested one level (one row per year) for readability.
type seriesDoc struct {
	Name      string      `yaml:"name"`
	Frequency string      `yaml:"frequency"`
	Start     string      `yaml:"start"`
	Values    [][]float64 `yaml:"values"`
}

var loadAirline = sync.OnceValues(func() (*frame.Series, error) {
	return decodeMonthly(airlineYAML)
})

// LoadAirline returns the airline passengers series over a monthly
// PeriodIndex starting 1949-01.
func LoadAirline() (*frame.Series, error) {
	s, err := loadAirline()
	if err != nil {
		return nil, err
	}

	return s.Clone(), nil
}

// Airline is LoadAirline for callers that treat the embedded data as
// trusted. It panics if the data does not decode.
func Airline() *frame.Series {
	s, err := LoadAirline()
	if err != nil {
		panic(err)
	}

	return s
}

func decodeMonthly(data []byte) (*frame.Series, error) {
	var doc seriesDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	if doc.Frequency != "monthly" {
		return nil, fmt.Errorf("%w: frequency %q", ErrCorruptData, doc.Frequency)
	}
	start, err := time.Parse("2006-01", doc.Start)
	if err != nil {
		return nil, fmt.Errorf("%w: start %q: %v", ErrCorruptData, doc.Start, err)
	}
	var values []float64
	for _, row := range doc.Values {
		values = append(values, row...)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no values", ErrCorruptData)
	}

	return frame.NewSeriesWithIndex(doc.Name, frame.NewMonthlyIndex(start.Year(), start.Month(), len(values)), values)
}
