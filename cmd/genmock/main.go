// Command genmock writes a deterministic synthetic training_ready_data.csv
// for local runs and demos. It scores the generated rows with the real domain
// package and prints the statistics tests and screenshots can assert against.
//
// Usage:
//
//	go run ./cmd/genmock -out data/mock/training_ready_data.csv -rows 2000 -seed 42
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/couchcryptid/svi-heatmap/internal/domain"
)

// anchor is a real place rows are scattered around.
type anchor struct {
	name  string
	state string
	lat   float64
	lon   float64
}

var anchors = []anchor{
	{"Philadelphia", "PA", 39.9526, -75.1652},
	{"Pittsburgh", "PA", 40.4406, -79.9959},
	{"Columbus", "OH", 39.9612, -82.9988},
	{"Cleveland", "OH", 41.4993, -81.6944},
	{"Chicago", "IL", 41.8781, -87.6298},
	{"Detroit", "MI", 42.3314, -83.0458},
	{"Atlanta", "GA", 33.7490, -84.3880},
	{"Houston", "TX", 29.7604, -95.3698},
	{"Dallas", "TX", 32.7767, -96.7970},
	{"Phoenix", "AZ", 33.4484, -112.0740},
	{"Denver", "CO", 39.7392, -104.9903},
	{"Seattle", "WA", 47.6062, -122.3321},
}

// Fractions of rows with deliberately missing values.
const (
	nullCoordRate   = 0.03
	nullDensityRate = 0.02
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output path for the generated CSV")
	rows := flag.Int("rows", 1000, "number of rows to generate")
	seed := flag.Uint64("seed", 42, "random seed; the same seed yields the same file")
	flag.Parse()

	if *out == "" || *rows <= 0 {
		flag.Usage()
		return fmt.Errorf("missing required flags: -out, -rows > 0")
	}

	header := domain.RequiredColumns()
	records := generate(header, *rows, rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15)))

	if err := writeCSV(*out, header, records); err != nil {
		return fmt.Errorf("writing dataset: %w", err)
	}
	log.Printf("wrote %d rows: %s", len(records), *out)

	return printStats(header, records)
}

func generate(header []string, n int, rng *rand.Rand) [][]string {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[h] = i
	}

	records := make([][]string, n)
	for i := range records {
		a := anchors[rng.IntN(len(anchors))]
		rec := make([]string, len(header))

		rec[idx[domain.ColLocation]] = fmt.Sprintf("%s tract %04d", a.name, i+1)
		rec[idx[domain.ColState]] = a.state
		if rng.Float64() >= nullCoordRate {
			rec[idx[domain.ColLatitude]] = formatFloat(a.lat+rng.NormFloat64()*0.15, 5)
			rec[idx[domain.ColLongitude]] = formatFloat(a.lon+rng.NormFloat64()*0.15, 5)
		}
		rec[idx[domain.ColDOM]] = strconv.Itoa(5 + rng.IntN(120))
		if rng.Float64() >= nullDensityRate {
			rec[idx[domain.ColDensityDOM]] = formatFloat(rng.ExpFloat64()*3, 3)
		}
		rec[idx[domain.ColDensityGroupQ]] = formatFloat(rng.ExpFloat64()*3, 3)
		for _, field := range domain.DemographicFields {
			rec[idx[field]] = strconv.Itoa(rng.IntN(5000))
		}
		records[i] = rec
	}
	return records
}

func formatFloat(f float64, prec int) string {
	return strconv.FormatFloat(f, 'f', prec, 64)
}

func writeCSV(path string, header []string, records [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return err
	}
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

type stateCount struct {
	state string
	count int
}

// printStats runs the generated rows through the scoring stages so the
// numbers printed match what the dashboard will show.
func printStats(header []string, records [][]string) error {
	rows := make([]domain.Row, len(records))
	for i, rec := range records {
		row := make(domain.Row, len(rec))
		for j, cell := range rec {
			row[j] = domain.ParseValue(cell)
		}
		rows[i] = row
	}
	tbl, err := domain.NewTable(header, rows)
	if err != nil {
		return err
	}
	scored, err := domain.Score(tbl)
	if err != nil {
		return err
	}
	summary, err := domain.Summarize(scored)
	if err != nil {
		return err
	}
	heat, err := domain.BuildHeatLayer(scored)
	if err != nil {
		return err
	}
	markers, err := domain.BuildMarkerLayer(scored)
	if err != nil {
		return err
	}

	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Rows: %d (scored=%d, null score=%d)\n", summary.Rows, summary.Scored, summary.Nulls)
	fmt.Printf("Score: min=%.4f max=%.4f mean=%.4f sd=%.4f\n", summary.Min, summary.Max, summary.Mean, summary.StdDev)
	fmt.Printf("Heat points: %d, markers: %d\n", len(heat), len(markers))

	counts := map[string]int{}
	stateCol, err := scored.ColumnIndex(domain.ColState)
	if err != nil {
		return err
	}
	for i := range scored.Len() {
		counts[scored.Row(i)[stateCol].String()]++
	}
	sc := make([]stateCount, 0, len(counts))
	for s, c := range counts {
		sc = append(sc, stateCount{s, c})
	}
	sort.Slice(sc, func(i, j int) bool {
		if sc[i].count != sc[j].count {
			return sc[i].count > sc[j].count
		}
		return sc[i].state < sc[j].state
	})
	fmt.Printf("States (%d): ", len(sc))
	for _, s := range sc {
		fmt.Printf("%s=%d ", s.state, s.count)
	}
	fmt.Println()
	return nil
}
