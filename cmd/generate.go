package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xkilldash9x/skelgen-cli/api/schemas"
	"github.com/xkilldash9x/skelgen-cli/internal/assembler"
	"github.com/xkilldash9x/skelgen-cli/internal/config"
	"github.com/xkilldash9x/skelgen-cli/internal/layout"
	"github.com/xkilldash9x/skelgen-cli/internal/observability"
	"github.com/xkilldash9x/skelgen-cli/internal/orchestrator"
	"github.com/xkilldash9x/skelgen-cli/internal/scanner"
)

// generateConcurrency bounds parallel input processing.
const generateConcurrency = 4

// newGenerateCmd creates the `generate` command: scans HTML files or live
// URLs and writes skeleton spec JSON, the build-time generation path.
func newGenerateCmd() *cobra.Command {
	var (
		rulesPath string
		outDir    string
	)

	generateCmd := &cobra.Command{
		Use:   "generate [inputs...]",
		Short: "Generates skeleton specs from HTML files or live URLs",
		Args:  cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Bind flags so CLI overrides win over config file and env.
			if err := viper.BindPFlag("generator.preserve_layout", cmd.Flags().Lookup("preserve-layout")); err != nil {
				return err
			}
			if err := viper.BindPFlag("generator.strategy", cmd.Flags().Lookup("strategy")); err != nil {
				return err
			}
			if err := viper.BindPFlag("browser.headless", cmd.Flags().Lookup("headless")); err != nil {
				return err
			}
			return viper.BindPFlag("browser.selector", cmd.Flags().Lookup("selector"))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := observability.GetLogger()

			var cfg config.Config
			if err := viper.Unmarshal(&cfg); err != nil {
				return fmt.Errorf("failed to unmarshal config with flag overrides: %w", err)
			}

			custom, err := loadRules(rulesPath)
			if err != nil {
				return err
			}

			return runGenerate(cmd.Context(), logger, &cfg, args, custom, outDir, cmd)
		},
	}

	generateCmd.Flags().StringVarP(&rulesPath, "rules", "r", "", "JSON file with custom mapping rules")
	generateCmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default: stdout)")
	generateCmd.Flags().Bool("preserve-layout", true, "compute layout-preserving dimensions")
	generateCmd.Flags().String("strategy", "auto", "dimension strategy: auto, preserve, flexible, minimal")
	generateCmd.Flags().Bool("headless", true, "run the capture browser headless")
	generateCmd.Flags().String("selector", "body", "scan root selector for URL inputs")
	return generateCmd
}

func loadRules(path string) ([]schemas.MappingRule, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening rules file: %w", err)
	}
	defer f.Close()
	return schemas.DecodeRules(f)
}

func runGenerate(ctx context.Context, logger *zap.Logger, cfg *config.Config, inputs []string, custom []schemas.MappingRule, outDir string, cmd *cobra.Command) error {
	opts := assembler.Options{
		PreserveLayout: cfg.Generator().PreserveLayout,
		Strategy:       schemas.Strategy(cfg.Generator().Strategy),
		StyleOptions: layout.StyleOptions{
			IncludeConstraints:  cfg.Generator().IncludeConstraints,
			PreserveAspectRatio: cfg.Generator().PreserveAspectRatio,
		},
	}

	specs := make([]*schemas.SkeletonSpec, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(generateConcurrency)
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			elements, err := loadElements(gctx, logger, cfg, input)
			if err != nil {
				return err
			}
			spec, err := orchestrator.Generate(logger, elements, custom, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			specs[i] = spec
			logger.Info("Skeleton spec generated",
				zap.String("input", input),
				zap.Int("primitives", len(spec.Children)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, spec := range specs {
		if outDir == "" {
			if err := schemas.EncodeSpec(cmd.OutOrStdout(), spec); err != nil {
				return err
			}
			continue
		}
		path := filepath.Join(outDir, specFileName(inputs[i]))
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		if err := schemas.EncodeSpec(f, spec); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		logger.Info("Skeleton spec written", zap.String("path", path))
	}
	return nil
}

// loadElements scans an input: URLs go through the live browser capture,
// everything else is read as a static HTML file.
func loadElements(ctx context.Context, logger *zap.Logger, cfg *config.Config, input string) ([]schemas.ElementMetadata, error) {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		return scanner.CaptureURL(ctx, logger, input, scanner.CaptureOptions{
			Selector: cfg.Browser().Selector,
			Timeout:  cfg.Browser().Timeout,
			Headless: cfg.Browser().Headless,
		})
	}

	f, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", input, err)
	}
	defer f.Close()

	root, err := scanner.ParseHTML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", input, err)
	}
	return scanner.Scan(root), nil
}

// specFileName derives the output name: page.html -> page.skeleton.json.
func specFileName(input string) string {
	base := filepath.Base(input)
	if ext := filepath.Ext(base); ext != "" && !strings.HasPrefix(base, "http") {
		base = strings.TrimSuffix(base, ext)
	}
	base = strings.NewReplacer("/", "_", ":", "_").Replace(base)
	return base + ".skeleton.json"
}
