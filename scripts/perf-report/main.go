// Package main runs reproducible combinator throughput measurements for parsekit.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/kpumuk/parsekit"
	"github.com/kpumuk/parsekit/prim"
)

const (
	setSmall   = "small"
	setTypical = "typical"
	setLarge   = "large"

	smallElements   = 16
	typicalElements = 1024
	largeElements   = 65536

	randSeed = 7
)

type config struct {
	iterations int
	warmup     int
	jsonPath   string
}

type sampleStats struct {
	Samples int     `json:"samples"`
	P50MS   float64 `json:"p50_ms"`
	P95MS   float64 `json:"p95_ms"`
	MinMS   float64 `json:"min_ms"`
	MaxMS   float64 `json:"max_ms"`
	MeanMS  float64 `json:"mean_ms"`
}

type workloadReport struct {
	Set        string      `json:"set"`
	Workload   string      `json:"workload"`
	InputBytes int         `json:"input_bytes"`
	Iterations int         `json:"iterations"`
	Stats      sampleStats `json:"stats"`
}

type report struct {
	GeneratedAt string           `json:"generated_at"`
	Workloads   []workloadReport `json:"workloads"`
}

type workload struct {
	name   string
	input  string
	parser parsekit.Parser[int]
}

func main() {
	cfg := parseFlags()

	var rep report
	rep.GeneratedAt = time.Now().UTC().Format(time.RFC3339)

	for _, set := range []struct {
		name     string
		elements int
	}{
		{setSmall, smallElements},
		{setTypical, typicalElements},
		{setLarge, largeElements},
	} {
		for _, w := range buildWorkloads(set.elements) {
			wr := measure(set.name, w, cfg)
			rep.Workloads = append(rep.Workloads, wr)
			fmt.Printf("%-8s %-12s %8d B  p50=%8.3fms  p95=%8.3fms  mean=%8.3fms\n",
				wr.Set, wr.Workload, wr.InputBytes, wr.Stats.P50MS, wr.Stats.P95MS, wr.Stats.MeanMS)
		}
	}

	if cfg.jsonPath != "" {
		if err := writeJSON(cfg.jsonPath, rep); err != nil {
			fmt.Fprintf(os.Stderr, "perf-report: %v\n", err)
			os.Exit(1)
		}
	}
}

func parseFlags() config {
	var cfg config
	flag.IntVar(&cfg.iterations, "iterations", 50, "measured parses per workload")
	flag.IntVar(&cfg.warmup, "warmup", 5, "discarded warmup parses per workload")
	flag.StringVar(&cfg.jsonPath, "json", "", "optional path for a JSON report")
	flag.Parse()
	return cfg
}

// buildWorkloads returns one deterministic input and parser per combinator
// under measurement. Inputs derive from a fixed seed so runs are comparable.
func buildWorkloads(elements int) []workload {
	rng := rand.New(rand.NewSource(randSeed))

	list := commaInts(rng, elements)
	soup := digitSoup(rng, elements*4)
	units := assignmentUnits(rng, elements)

	sepBy := prim.Map(
		parsekit.SepBy(prim.Int(), prim.Literal(",")),
		func(vs []int) int { return len(vs) },
	)
	fold := parsekit.Fold(
		prim.AnyLiteral("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
		0,
		func(acc int, _ string) int { return acc + 1 },
	)
	manyN := prim.Map(
		parsekit.ManyN(prim.Delimited(prim.Literal("k="), prim.Int(), prim.Literal(";")), elements),
		func(vs []int) int { return len(vs) },
	)

	return []workload{
		{name: "sep_by", input: list, parser: sepBy},
		{name: "fold", input: soup, parser: fold},
		{name: "many_n", input: units, parser: manyN},
	}
}

func measure(setName string, w workload, cfg config) workloadReport {
	for i := 0; i < cfg.warmup; i++ {
		mustParse(w)
	}

	samples := make([]float64, 0, cfg.iterations)
	for i := 0; i < cfg.iterations; i++ {
		start := time.Now()
		mustParse(w)
		samples = append(samples, float64(time.Since(start).Nanoseconds())/1e6)
	}

	return workloadReport{
		Set:        setName,
		Workload:   w.name,
		InputBytes: len(w.input),
		Iterations: cfg.iterations,
		Stats:      stats(samples),
	}
}

func mustParse(w workload) {
	if _, _, err := w.parser.Parse(w.input); err != nil {
		fmt.Fprintf(os.Stderr, "perf-report: workload %s failed: %v\n", w.name, err)
		os.Exit(1)
	}
}

func stats(samples []float64) sampleStats {
	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	sum := 0.0
	for _, s := range sorted {
		sum += s
	}

	return sampleStats{
		Samples: len(sorted),
		P50MS:   percentile(sorted, 0.50),
		P95MS:   percentile(sorted, 0.95),
		MinMS:   sorted[0],
		MaxMS:   sorted[len(sorted)-1],
		MeanMS:  sum / float64(len(sorted)),
	}
}

func percentile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(q * float64(len(sorted)-1))
	return sorted[idx]
}

func commaInts(rng *rand.Rand, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(rng.Intn(100000)))
	}
	return b.String()
}

func digitSoup(rng *rand.Rand, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + rng.Intn(10)))
	}
	return b.String()
}

func assignmentUnits(rng *rand.Rand, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString("k=")
		b.WriteString(strconv.Itoa(rng.Intn(100000)))
		b.WriteByte(';')
	}
	return b.String()
}

func writeJSON(path string, rep report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
