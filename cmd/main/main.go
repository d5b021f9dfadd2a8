package main

import (
	"flag"
	"fmt"
	"os"

	"upload-report/src/analysis"
	"upload-report/src/config"
	"upload-report/src/data_source/csvfile"
	"upload-report/src/helpers"
	"upload-report/src/interfaces"
	"upload-report/src/logger"
	"upload-report/src/render"
	"upload-report/src/report"
)

// -----------------------------------------------------------------------------

func main() {

	// Parse command line flags
	configPath := flag.String("config", "", "path to config file (optional, defaults apply without one)")
	inputPath := flag.String("input", "", "path to the stats CSV (overrides config)")
	outputDir := flag.String("output", "", "directory for the plot file (overrides config)")
	flag.Parse()

	// Load config from YAML file, or fall back to the built-in defaults
	conf := config.DefaultConfig()
	if *configPath != "" {
		var err error
		conf, err = config.NewConfig(*configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if *inputPath != "" {
		conf.Input.Path = *inputPath
	}
	if *outputDir != "" {
		conf.Chart.OutputDir = *outputDir
	}

	// Setup logger
	appLogger := logger.NewLogger(conf, conf.Name)

	// 2. Setup Components
	var source interfaces.IRecordSource = csvfile.NewCSVFileSource(conf.MConfig)
	var analyzer *analysis.AnalysisFacade = analysis.NewAnalysisFacade(conf.MConfig, appLogger)
	var renderer interfaces.IChartRenderer = render.NewPNGRenderer(conf.MConfig)

	// 3. Load Records
	records, _, err := source.Load()
	if err != nil {
		if helpers.IsLoaderFailure(err) {
			appLogger.Critical("%v", err)
		}
		appLogger.Critical("Failed to load records from %s: %v", source.Name(), err)
	}

	// 4. Normalize and Aggregate
	rep, err := analyzer.BuildReport(records)
	if err != nil {
		appLogger.Critical("%v", err)
	}

	// 5. Render the Plot
	outPath, err := renderer.Render(rep.Series, rep.Stats)
	if err != nil {
		appLogger.Critical("Failed to render chart: %v", err)
	}

	// 6. Final Report
	report.DumpBuckets(appLogger, rep.Buckets)
	report.PrintSummary(rep, outPath)
}
