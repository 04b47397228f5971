package main

import (
	"encoding/json"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/leadgen-cli/internal/config"
	"github.com/sells-group/leadgen-cli/internal/export"
	"github.com/sells-group/leadgen-cli/internal/message"
	"github.com/sells-group/leadgen-cli/internal/model"
	"github.com/sells-group/leadgen-cli/internal/pipeline"
	"github.com/sells-group/leadgen-cli/internal/scorer"
	"github.com/sells-group/leadgen-cli/internal/scrape"
	"github.com/sells-group/leadgen-cli/internal/search"
	anthropicpkg "github.com/sells-group/leadgen-cli/pkg/anthropic"
	"github.com/sells-group/leadgen-cli/pkg/apollo"
	"github.com/sells-group/leadgen-cli/pkg/ollama"
)

var (
	runSeedFile string
	runOutDir   string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full lead generation pipeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Find leads: seed file when given, otherwise provider search
		// with its own static fallback.
		var leads []model.Lead
		if runSeedFile != "" {
			var err error
			leads, err = search.LoadSeedFile(runSeedFile)
			if err != nil {
				return eris.Wrap(err, "load seed file")
			}
			zap.L().Info("seed file loaded", zap.Int("leads", len(leads)))
		} else {
			searcher := search.New(newApolloClient(cfg))
			leads = searcher.Search(ctx, model.DefaultCriteria())
		}

		gen, err := newGenerator(cfg)
		if err != nil {
			return err
		}

		scraper := scrape.NewLocalScraper(
			scrape.WithTimeout(time.Duration(cfg.Scrape.TimeoutSecs)*time.Second),
			scrape.WithUserAgent(cfg.Scrape.UserAgent),
		)
		synth := message.NewSynthesizer(gen, cfg.Generator.MaxTokens, cfg.Generator.Temperature)

		p := pipeline.New(scraper, synth, scorer.New(nil))
		enriched := p.EnrichBatch(ctx, leads)

		outDir := runOutDir
		if outDir == "" {
			outDir = cfg.Export.OutputDir
		}
		if err := export.WriteAll(ctx, enriched, outDir); err != nil {
			return eris.Wrap(err, "export leads")
		}

		zap.L().Info("pipeline complete",
			zap.Int("leads", len(enriched)),
			zap.String("output_dir", outDir),
		)

		// Print result JSON to stdout
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(enriched)
	},
}

// newApolloClient builds the search provider client from config.
func newApolloClient(cfg *config.Config) apollo.Client {
	return apollo.NewClient(cfg.Apollo.Key,
		apollo.WithBaseURL(cfg.Apollo.BaseURL),
		apollo.WithQPS(cfg.Apollo.QPS),
	)
}

// newGenerator builds the configured message generator backend.
func newGenerator(cfg *config.Config) (message.Generator, error) {
	switch cfg.Generator.Provider {
	case "ollama":
		client := ollama.NewClient(
			ollama.WithBaseURL(cfg.Ollama.BaseURL),
			ollama.WithModel(cfg.Ollama.Model),
		)
		return message.NewOllamaGenerator(client, cfg.Ollama.Model), nil
	case "anthropic":
		return message.NewAnthropicGenerator(anthropicpkg.NewClient(cfg.Anthropic.Key), cfg.Anthropic.Model), nil
	default:
		return nil, eris.Errorf("unknown generator provider %q", cfg.Generator.Provider)
	}
}

func init() {
	runCmd.Flags().StringVar(&runSeedFile, "seed-file", "", "YAML file of leads to enrich instead of searching")
	runCmd.Flags().StringVar(&runOutDir, "out-dir", "", "directory for output artifacts (default from config)")
	rootCmd.AddCommand(runCmd)
}
