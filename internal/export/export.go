package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/responsiv/internal/layout"
	"github.com/san-kum/responsiv/internal/metrics"
	"github.com/san-kum/responsiv/internal/sim"
)

var ErrUnknownFormat = errors.New("unknown export format")

// Report is one recorded metrics run.
type Report struct {
	Quality  string           `json:"quality"`
	Rendered string           `json:"rendered"`
	Ticks    int              `json:"ticks"`
	Interval string           `json:"interval"`
	Headline metrics.Headline `json:"headline"`
	Values   []float64        `json:"values"`
}

func NewReport(q sim.Quality, ticks int, interval time.Duration, values []float64) Report {
	return Report{
		Quality:  q.String(),
		Rendered: layout.Resolve(q).String(),
		Ticks:    ticks,
		Interval: interval.String(),
		Headline: metrics.HeadlineFor(q),
		Values:   append([]float64(nil), values...),
	}
}

func WriteJSON(w io.Writer, r Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

// WriteCSV writes one "index,value" row per point after a header.
func WriteCSV(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"index", "value"}); err != nil {
		return err
	}
	for i, v := range r.Values {
		if err := cw.Write([]string{strconv.Itoa(i), strconv.FormatFloat(v, 'f', 2, 64)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile picks the format from the file extension.
func WriteFile(path string, r Report) error {
	ext := strings.ToLower(filepath.Ext(path))
	var write func(io.Writer, Report) error
	switch ext {
	case ".json":
		write = WriteJSON
	case ".csv":
		write = WriteCSV
	case ".svg":
		write = func(w io.Writer, r Report) error {
			_, err := io.WriteString(w, SeriesToSVG(r, 640, 240))
			return err
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file, r); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
