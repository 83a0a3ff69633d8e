// Package main provides a performance benchmarking tool for the TrafficLens CLI.
// It measures chart generation times across different dataset sizes and chart types,
// running each test multiple times, treating the first run as cold and averaging the rest as warm,
// generating CSV output for performance analysis and documentation.
//
// Prerequisites:
// - trafficlens binary installed and available in PATH
//
// Usage: go run benchmark/main.go [output-dir]
//
//	output-dir: Directory for generated datasets and the results CSV
package main

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (cold run and average of warm runs).
type BenchmarkResult struct {
	Dataset  string
	Command  string
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	OutputDir    string
	Timeout      time.Duration
	Runs         int
	DatasetSizes []int
}

// chartCases lists the chart invocations to benchmark against every dataset.
var chartCases = map[string][]string{
	"line":      {"--time-field", "crash_date", "--categories", "crash_type", "--chart", "line"},
	"pie":       {"--categories", "crash_type", "--chart", "pie"},
	"heatmap":   {"--time-field", "crash_date", "--location-field", "borough", "--chart", "heatmap"},
	"grouped":   {"--location-field", "borough", "--categories", "crash_type", "--chart", "grouped_bar"},
	"multiaxis": {"--time-field", "crash_date", "--categories", "crash_type,borough,severity", "--chart", "multi_axis"},
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [output-dir]\n", os.Args[0])
		os.Exit(1)
	}

	config := BenchmarkConfig{
		OutputDir:    os.Args[1],
		Timeout:      2 * time.Minute,
		Runs:         4,
		DatasetSizes: []int{1000, 10000, 100000},
	}

	if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
		fmt.Printf("Failed to create output dir: %v\n", err)
		os.Exit(1)
	}

	var results []BenchmarkResult
	for _, size := range config.DatasetSizes {
		dataset := fmt.Sprintf("events_%d", size)
		path := filepath.Join(config.OutputDir, dataset+".csv")
		if err := generateDataset(path, size); err != nil {
			fmt.Printf("Failed to generate %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("Generated %s (%d rows)\n", path, size)

		for name, args := range chartCases {
			res, err := runBenchmark(config, dataset, path, name, args)
			if err != nil {
				fmt.Printf("Benchmark %s/%s failed: %v\n", dataset, name, err)
				continue
			}
			results = append(results, res)
			fmt.Printf("  %-10s cold=%s warm=%s\n", name, res.ColdTime, res.WarmTime)
		}
	}

	if err := writeResults(filepath.Join(config.OutputDir, "benchmark_results.csv"), results); err != nil {
		fmt.Printf("Failed to write results: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Benchmark complete.")
}

// generateDataset writes a synthetic crash dataset with n rows.
func generateDataset(path string, n int) error {
	boroughs := []string{"Queens", "Bronx", "Brooklyn", "Manhattan", "Staten Island"}
	crashTypes := []string{"CRASH", "STALL", "SPINOUT", "DEBRIS"}
	severities := []string{"LOW", "MEDIUM", "HIGH"}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"crash_date", "borough", "crash_type", "severity", "injuries"}); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(42))
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for range n {
		ts := base.Add(time.Duration(rng.Intn(365*24)) * time.Hour)
		rec := []string{
			ts.Format("2006-01-02T15:04:05Z07:00"),
			boroughs[rng.Intn(len(boroughs))],
			crashTypes[rng.Intn(len(crashTypes))],
			severities[rng.Intn(len(severities))],
			strconv.Itoa(rng.Intn(5)),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// runBenchmark times one chart invocation: first run cold, remaining runs averaged as warm.
func runBenchmark(config BenchmarkConfig, dataset, path, name string, args []string) (BenchmarkResult, error) {
	fullArgs := append([]string{"chart", path, "--output", "json", "--output-file", os.DevNull}, args...)

	var cold time.Duration
	var warmTotal time.Duration
	warmRuns := 0

	for i := range config.Runs {
		elapsed, err := timeCommand(config.Timeout, fullArgs)
		if err != nil {
			return BenchmarkResult{}, err
		}
		if i == 0 {
			cold = elapsed
		} else {
			warmTotal += elapsed
			warmRuns++
		}
	}

	warm := warmTotal
	if warmRuns > 0 {
		warm = warmTotal / time.Duration(warmRuns)
	}
	return BenchmarkResult{
		Dataset:  dataset,
		Command:  name,
		ColdTime: cold.Round(time.Millisecond).String(),
		WarmTime: warm.Round(time.Millisecond).String(),
	}, nil
}

// timeCommand runs the trafficlens binary once and returns the elapsed time.
func timeCommand(timeout time.Duration, args []string) (time.Duration, error) {
	cmd := exec.Command("trafficlens", args...)
	start := time.Now()
	done := make(chan error, 1)
	if err := cmd.Start(); err != nil {
		return 0, err
	}
	go func() { done <- cmd.Wait() }()

	select {
	case err := <-done:
		return time.Since(start), err
	case <-time.After(timeout):
		_ = cmd.Process.Kill()
		return 0, fmt.Errorf("command timed out after %s", timeout)
	}
}

// writeResults writes benchmark results to a CSV file.
func writeResults(path string, results []BenchmarkResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"dataset", "command", "cold_time", "warm_time"}); err != nil {
		return err
	}
	for _, r := range results {
		if err := w.Write([]string{r.Dataset, r.Command, r.ColdTime, r.WarmTime}); err != nil {
			return err
		}
	}
	return nil
}
