package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"golang-equity-advisor/internal/advisor/config"
	"golang-equity-advisor/internal/advisor/dto"
	"golang-equity-advisor/internal/advisor/repository"
	"golang-equity-advisor/internal/advisor/service"
	"golang-equity-advisor/pkg/decoder"
	"golang-equity-advisor/pkg/logger"

	"google.golang.org/genai"

	"github.com/spf13/cobra"
)

var (
	configPath  string
	sector      string
	concurrency int
	format      string
	outputPath  string
)

var rootCmd = &cobra.Command{
	Use:   "equity-advisor",
	Short: "A CLI for the equity advisory services",
	Long:  `Equity Advisor produces buy/watch/avoid decisions by combining a sector-aware value score, RSI, and an attributed narrative assessment.`,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [tickers...]",
	Short: "Analyze tickers once and print the decisions",
	Args:  cobra.MinimumNArgs(1),
	Run:   runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	yahooFinanceRepo, err := repository.NewYahooFinanceRepository(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize Yahoo Finance repository", logger.ErrorField(err))
	}
	alphaVantageRepo := repository.NewAlphaVantageRepository(cfg, appLogger)
	newsRepo := repository.NewNewsRepository(cfg, appLogger, decoder.NewGoogleDecoder(appLogger))

	genAiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.Gemini.APIKey,
	})
	if err != nil {
		appLogger.Fatal("Failed to initialize Gemini AI client", logger.ErrorField(err))
	}
	aiRepo, err := repository.NewGeminiAIRepository(cfg, appLogger, genAiClient)
	if err != nil {
		appLogger.Fatal("Failed to initialize Gemini AI repository", logger.ErrorField(err))
	}

	// One-shot runs keep decisions in memory; nothing is persisted.
	decisionRepo := repository.NewMemoryDecisionRepository()

	analyzerSvc := service.NewAnalyzerService(cfg, appLogger, nil, aiRepo, yahooFinanceRepo, alphaVantageRepo, newsRepo, decisionRepo, nil)
	batchSvc := service.NewBatchService(appLogger, analyzerSvc)

	results := batchSvc.AnalyzeMany(ctx, args, sector, concurrency)

	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			appLogger.Fatal("Failed to create output file", logger.ErrorField(err), logger.StringField("path", outputPath))
		}
		defer f.Close()
		out = f
	}

	switch strings.ToLower(format) {
	case "json":
		if err := writeJSON(out, results); err != nil {
			appLogger.Fatal("Failed to write JSON output", logger.ErrorField(err))
		}
	case "csv":
		if err := writeCSV(out, results); err != nil {
			appLogger.Fatal("Failed to write CSV output", logger.ErrorField(err))
		}
	default:
		appLogger.Fatal("Invalid output format, want json or csv", logger.StringField("format", format))
	}
}

func writeJSON(w io.Writer, results []dto.TickerResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func writeCSV(w io.Writer, results []dto.TickerResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"ticker", "decision", "confidence", "risk_level", "normalized_score", "rsi", "matrix_row", "missing_data", "error"}); err != nil {
		return err
	}
	for _, r := range results {
		if r.Response == nil {
			if err := cw.Write([]string{r.Ticker, "", "", "", "", "", "", "", r.Error}); err != nil {
				return err
			}
			continue
		}
		rsi := ""
		if r.Response.RSI != nil {
			rsi = strconv.FormatFloat(*r.Response.RSI, 'f', 2, 64)
		}
		row := []string{
			r.Response.Ticker,
			r.Response.Decision,
			r.Response.Confidence,
			r.Response.RiskLevel,
			strconv.Itoa(r.Response.NormalizedScore),
			rsi,
			r.Response.MatrixRow,
			strings.Join(r.Response.MissingData, ";"),
			"",
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func main() {
	analyzeCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-api.yaml", "Path to the configuration file")
	analyzeCmd.Flags().StringVarP(&sector, "sector", "s", "", "Sector hint applied to every ticker")
	analyzeCmd.Flags().IntVarP(&concurrency, "concurrency", "n", 3, "Maximum concurrent analyses")
	analyzeCmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json or csv")
	analyzeCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (defaults to stdout)")

	rootCmd.AddCommand(analyzeCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your CLI '%s'", err)
		os.Exit(1)
	}
}
