package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"power-bidding/internal/analysis"
	"power-bidding/internal/bidding"
	"power-bidding/internal/config"
	"power-bidding/internal/forecast"
	"power-bidding/internal/model"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "forecast":
		cmdForecast(os.Args[2:])
	case "optimize":
		cmdOptimize(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli forecast --date 2025-06-30 --model ensemble --seed 42 --out results/forecast.csv")
	fmt.Println("  cli optimize --prices results/forecast.csv --max-capacity 1000 --risk medium --out results/bids.csv")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - forecast writes 96 quarter-hour predictions with confidence bounds")
	fmt.Println("  - optimize reads the predicted_price column and writes the bid curve")
}

func cmdForecast(args []string) {
	fs := flag.NewFlagSet("forecast", flag.ExitOnError)
	dateStr := fs.String("date", "", "Target date (YYYY-MM-DD)")
	modelName := fs.String("model", "", "Forecast model name (default from config)")
	seed := fs.Int64("seed", 0, "Optional RNG seed for reproducible output (0=time-based)")
	cfgPath := fs.String("config", "", "Optional YAML config path")
	outPath := fs.String("out", "results/forecast.csv", "Output CSV path")
	_ = fs.Parse(args)

	if *dateStr == "" {
		fmt.Println("--date is required")
		os.Exit(2)
	}
	date, err := forecast.ParseDate(*dateStr)
	if err != nil {
		panic(err)
	}

	cfg := loadConfig(*cfgPath)
	var opts []forecast.Option
	if *seed != 0 {
		opts = append(opts, forecast.WithSeed(*seed))
	}
	engine := forecast.New(cfg.ProfileTable(), cfg.Forecast, opts...)

	res, err := engine.Forecast(date, *modelName)
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := forecast.WriteSeriesCSV(*outPath, res.Series); err != nil {
		panic(err)
	}

	stats := analysis.SummarizeSeries(res.Series)
	fmt.Printf("Wrote %d slots to %s (model=%s)\n", stats.Count, *outPath, res.Model.Name)
	fmt.Printf("avg=%.2f min=%.2f max=%.2f confidence=%.3f\n",
		stats.AveragePrice, stats.MinPrice, stats.MaxPrice, stats.AverageConfidence)
	fmt.Printf("first=%s last=%s\n",
		res.Series.Slots[0].Timestamp.Format(time.RFC3339),
		res.Series.Slots[len(res.Series.Slots)-1].Timestamp.Format(time.RFC3339))
}

func cmdOptimize(args []string) {
	fs := flag.NewFlagSet("optimize", flag.ExitOnError)
	pricesPath := fs.String("prices", "", "CSV with a predicted_price column (e.g. forecast output)")
	maxCap := fs.Float64("max-capacity", 0, "Max capacity per slot (default from config)")
	minCap := fs.Float64("min-capacity", 0, "Min capacity per slot (default from config)")
	risk := fs.String("risk", "", "Risk level: low|medium|high (default from config)")
	cfgPath := fs.String("config", "", "Optional YAML config path")
	outPath := fs.String("out", "results/bids.csv", "Output CSV path")
	_ = fs.Parse(args)

	if *pricesPath == "" {
		fmt.Println("--prices is required")
		os.Exit(2)
	}
	prices, err := forecast.ReadPricesCSV(*pricesPath)
	if err != nil {
		panic(err)
	}

	cfg := loadConfig(*cfgPath)
	if *maxCap == 0 {
		*maxCap = cfg.Bidding.DefaultMaxCapacity
	}
	if *minCap == 0 {
		*minCap = cfg.Bidding.DefaultMinCapacity
	}
	if *risk == "" {
		*risk = cfg.Bidding.DefaultRiskLevel
	}

	table := cfg.ProfileTable()
	optimizer := bidding.New(table, cfg.Bidding.EnforceMinCapacity)
	portfolio, err := optimizer.Optimize(prices, *maxCap, *minCap, model.RiskLevel(*risk))
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := bidding.WritePortfolioCSV(*outPath, portfolio); err != nil {
		panic(err)
	}

	s := portfolio.Summary
	fmt.Printf("Wrote %d bids to %s\n", s.TotalBids, *outPath)
	fmt.Printf("capacity=%.0f avg_win=%.1f%% profit=%.0f avg_bid=%.2f\n",
		s.TotalCapacity, s.AverageWinProbability*100, s.ExpectedProfit, s.AverageBidPrice)
	if len(portfolio.FallbackSlots) > 0 {
		fmt.Printf("note: %d slots filled with the mean of %d supplied prices\n",
			len(portfolio.FallbackSlots), len(prices))
	}
	for _, rec := range analysis.Recommendations(table, portfolio) {
		fmt.Printf("- %s\n", rec)
	}
}

func loadConfig(path string) *config.Config {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}
