// Command solver loads a delivery-list JSON instance, encodes it as a QUBO,
// anneals it with the reference sampler and writes the decoded solution as
// JSON, stamped with basic system information.
//
// Usage:
//
//	solver -input instance.json [-output solution.json] [-config solve.yaml]
//	       [-model cvrp|vrp] [-metric euclidean|haversine] [-vehicles 1]
//	       [-sample 5] [-seed 0] [-log 2]
//
// When -output is empty the solution is written next to the input file with
// a ".solution.json" suffix.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qroute/anneal"
	"github.com/katalvlaran/qroute/cvrp"
	"github.com/katalvlaran/qroute/matrix"
	"github.com/katalvlaran/qroute/solver"
)

// config is the optional YAML configuration file: encoding constants and the
// annealing schedule. Zero values fall back to the library defaults.
type config struct {
	CostConst       float64 `yaml:"cost_const"`
	ConstraintConst float64 `yaml:"constraint_const"`
	Sweeps          int     `yaml:"sweeps"`
	Restarts        int     `yaml:"restarts"`
	InitialTemp     float64 `yaml:"initial_temp"`
	CoolingRate     float64 `yaml:"cooling_rate"`
}

// sysInfo records the basic hardware the solve ran on.
type sysInfo struct {
	Platform string `json:"platform"`
	CPU      string `json:"cpu"`
	RAM      string `json:"ram"`
}

// solutionFile is the on-disk solution schema: the decoded solution plus
// run metadata.
type solutionFile struct {
	cvrp.Solution
	Model   string  `json:"model"`
	Time    string  `json:"time"`
	System  sysInfo `json:"system"`
	Comment string  `json:"comment"`
}

var logLvl = 2

// logf prints leveled progress messages: 1 = errors, 2 = info, 3 = debug.
func logf(lvl int, format string, args ...interface{}) {
	if lvl > logLvl {
		return
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

func main() {
	inputF := flag.String("input", "input.json", "Path to the input instance")
	outputF := flag.String("output", "", "Path to the output file (default: <input>.solution.json)")
	configF := flag.String("config", "", "Optional YAML config with constants and annealing schedule")
	modelF := flag.String("model", "cvrp", "Objective model: cvrp or vrp")
	metricF := flag.String("metric", "haversine", "Distance metric: euclidean or haversine")
	vehicles := flag.Int("vehicles", 1, "Number of vehicles")
	sampleSize := flag.Int("sample", 5, "Max deliveries sampled from the instance (0 = all)")
	seed := flag.Int64("seed", 0, "RNG seed for sampling and annealing (0 = deterministic default)")
	logF := flag.Int("log", 2, "Log verbosity 1-3")
	flag.Parse()
	logLvl = *logF

	// Resolve model and metric names.
	var model solver.Model
	switch strings.ToLower(*modelF) {
	case "vrp":
		model = solver.VRP
	case "cvrp":
		model = solver.CVRP
	default:
		logf(1, "unknown model %q (want cvrp or vrp)", *modelF)
		os.Exit(2)
	}
	var metric matrix.Metric
	switch strings.ToLower(*metricF) {
	case "euclidean":
		metric = matrix.Euclidean
	case "haversine":
		metric = matrix.Haversine
	default:
		logf(1, "unknown metric %q (want euclidean or haversine)", *metricF)
		os.Exit(2)
	}

	// Optional YAML config overlays the defaults.
	cfg, err := loadConfig(*configF)
	if err != nil {
		logf(1, "config %s: %s", *configF, err)
		os.Exit(1)
	}

	// Load and (deterministically) down-sample the instance.
	p, err := cvrp.LoadProblem(*inputF, cvrp.LoadOptions{
		SampleSize:  *sampleSize,
		Seed:        *seed,
		NumVehicles: *vehicles,
	})
	if err != nil {
		logf(1, "at %s: %s", *inputF, err)
		os.Exit(1)
	}
	logf(2, "instance %q: %d locations, %d vehicles x %d slots",
		p.Identifier, p.Locations(), p.NumVehicles, p.MaxDeliveries)

	// Assemble solve and annealing options.
	solveOpts := solver.DefaultOptions(
		solver.WithModel(model),
		solver.WithMetric(metric),
	)
	if cfg.CostConst > 0 {
		solveOpts.CostConst = cfg.CostConst
	}
	if cfg.ConstraintConst > 0 {
		solveOpts.ConstraintConst = cfg.ConstraintConst
	}

	annealOpts := anneal.DefaultOptions(anneal.WithSeed(*seed))
	if cfg.Sweeps > 0 {
		annealOpts.Sweeps = cfg.Sweeps
	}
	if cfg.Restarts > 0 {
		annealOpts.Restarts = cfg.Restarts
	}
	if cfg.InitialTemp > 0 {
		annealOpts.InitialTemp = cfg.InitialTemp
	}
	if cfg.CoolingRate > 0 {
		annealOpts.CoolingRate = cfg.CoolingRate
	}
	sampler, err := anneal.New(annealOpts)
	if err != nil {
		logf(1, "annealer: %s", err)
		os.Exit(1)
	}

	// Solve and time the run.
	start := time.Now()
	sol, err := solver.Solve(p, sampler, solveOpts)
	elapsed := time.Since(start)
	if err != nil {
		logf(1, "solve %q: %s", p.Identifier, err)
		os.Exit(1)
	}
	logf(2, "solved %q in %s: cost=%.4f routes=%d", p.Identifier, elapsed, sol.Cost, len(sol.Routes))
	logf(3, "routes: %v demands: %v", sol.Routes, sol.TotalDemands)

	// Stamp with system info and write.
	out := solutionFile{
		Solution: sol,
		Model:    model.String(),
		Time:     elapsed.String(),
		System:   collectSysInfo(),
		Comment: fmt.Sprintf("Solver-Settings: model=%s, metric=%s, sweeps=%d, restarts=%d, seed=%d",
			model, metric, annealOpts.Sweeps, annealOpts.Restarts, *seed),
	}
	target := *outputF
	if target == "" {
		target = strings.TrimSuffix(*inputF, ".json") + ".solution.json"
	}
	if err = writeJSON(target, out); err != nil {
		logf(1, "write %s: %s", target, err)
		os.Exit(1)
	}
	logf(2, "wrote %s", target)
}

// loadConfig reads the optional YAML config; an empty path yields zero
// values (library defaults apply).
func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// collectSysInfo gathers platform/CPU/RAM via gopsutil; failures degrade to
// empty fields rather than aborting the solve.
func collectSysInfo() sysInfo {
	var info sysInfo
	if hostStat, err := host.Info(); err == nil {
		info.Platform = hostStat.Platform
	}
	if cpuStat, err := cpu.Info(); err == nil && len(cpuStat) > 0 {
		info.CPU = cpuStat[0].ModelName
	}
	if vmStat, err := mem.VirtualMemory(); err == nil {
		info.RAM = fmt.Sprintf("%d GB", vmStat.Total/1024/1024/1024)
	}

	return info
}

// writeJSON marshals v with indentation and writes it to path.
func writeJSON(path string, v interface{}) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, raw, 0o644)
}
