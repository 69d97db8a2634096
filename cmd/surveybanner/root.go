package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/shouni/go-http-kit/pkg/httpkit"
	"github.com/shouni/go-remote-io/pkg/gcsfactory"
	"github.com/spf13/cobra"

	"github.com/shouni/survey-banner-kit/pkg/banner"
	"github.com/shouni/survey-banner-kit/pkg/config"
	"github.com/shouni/survey-banner-kit/pkg/domain"
	"github.com/shouni/survey-banner-kit/pkg/fallback"
	"github.com/shouni/survey-banner-kit/pkg/generator"
	"github.com/shouni/survey-banner-kit/pkg/packager"
	"github.com/shouni/survey-banner-kit/pkg/storage"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "surveybanner",
		Short:        "Generate medical survey campaign banners with Gemini and a local fallback",
		SilenceUsage: true,
	}
	root.AddCommand(newGenerateCmd(), newTemplateCmd())
	return root
}

type outputFlags struct {
	printBase64  bool
	printDataURI bool
}

func newGenerateCmd() *cobra.Command {
	var (
		name        string
		specialty   string
		tone        string
		style       string
		noText      bool
		filename    string
		outputFlags outputFlags
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a banner for a survey",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("--name is required")
			}
			svc, cleanup, err := buildService(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			req := domain.NewGenerationRequest(name,
				domain.WithSpecialty(specialty),
				domain.WithTone(tone),
				domain.WithStyle(style),
				domain.WithIncludeText(!noText),
				domain.WithFilename(filename),
			)
			return report(cmd, svc.GenerateSurveyImage(cmd.Context(), req), outputFlags)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "survey name")
	cmd.Flags().StringVarP(&specialty, "specialty", "s", string(domain.SpecialtyGeneral), "medical specialty")
	cmd.Flags().StringVar(&tone, "tone", "professional", "visual tone")
	cmd.Flags().StringVar(&style, "style", string(domain.StyleProfessional), "image style (professional, infographic, medical_illustration, clean_modern)")
	cmd.Flags().BoolVar(&noText, "no-text", false, "generate the image without a text overlay")
	cmd.Flags().StringVarP(&filename, "filename", "o", "", "output file name inside the output directory")
	cmd.Flags().BoolVar(&outputFlags.printBase64, "base64", false, "print the base64 PNG payload")
	cmd.Flags().BoolVar(&outputFlags.printDataURI, "data-uri", false, "print the payload as a data:image/png URI")
	return cmd
}

func newTemplateCmd() *cobra.Command {
	var (
		specialty   string
		style       string
		outputFlags outputFlags
	)

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Generate a reusable text-free template for a specialty",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cleanup, err := buildService(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			return report(cmd, svc.GenerateTemplate(cmd.Context(), specialty, style), outputFlags)
		},
	}

	cmd.Flags().StringVarP(&specialty, "specialty", "s", string(domain.SpecialtyGeneral), "medical specialty")
	cmd.Flags().StringVar(&style, "style", string(domain.StyleProfessional), "image style")
	cmd.Flags().BoolVar(&outputFlags.printBase64, "base64", false, "print the base64 PNG payload")
	cmd.Flags().BoolVar(&outputFlags.printDataURI, "data-uri", false, "print the payload as a data:image/png URI")
	return cmd
}

// newIOFactory は gs:// の読み込みに使うファクトリを生成します。テストで差し替えます。
var newIOFactory = gcsfactory.New

// buildService は設定を読み込み、依存関係を組み立てます。
// APIキーが無い場合は起動エラーです。返された cleanup は処理後に必ず呼び出してください。
func buildService(ctx context.Context) (*banner.Service, func(), error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	setupLogger(cfg)

	store, err := storage.NewFileStore(cfg.OutputDir)
	if err != nil {
		return nil, nil, err
	}
	slog.InfoContext(ctx, "出力ディレクトリ", "path", store.BasePath())

	var primary banner.PrimaryGenerator
	model, err := generator.NewGenAIModel(ctx, cfg.GeminiAPIKey)
	if err != nil {
		slog.WarnContext(ctx, "Geminiクライアントを初期化できませんでした。フォールバックのみで動作します", "error", err)
	} else {
		opts := []generator.Option{generator.WithTimeout(cfg.RemoteTimeout)}
		if cfg.Seed != nil {
			opts = append(opts, generator.WithSeed(*cfg.Seed))
		}
		gen, err := generator.NewGeminiGenerator(model, store, cfg.GeminiModel, opts...)
		if err != nil {
			return nil, nil, err
		}
		slog.InfoContext(ctx, "一次生成器を初期化しました", "model", gen.Model(), "timeout", cfg.RemoteTimeout)
		primary = gen
	}

	cleanup := func() {}
	var fb fallback.Renderer
	switch cfg.FallbackStrategy {
	case config.FallbackStock:
		var opts []fallback.StockOption
		opts, cleanup, err = stockOptions(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		fb, err = fallback.NewStockRenderer(httpkit.New(cfg.FetchTimeout), store, opts...)
	default:
		fb, err = fallback.NewPlaceholderRenderer(store)
	}
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	svc, err := banner.NewService(primary, fb)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}

// stockOptions は設定されたストック画像URLを StockRenderer のオプションに変換します。
// gs:// の取得元がある場合のみ GCS クライアントを初期化します。
func stockOptions(ctx context.Context, cfg *config.Config) ([]fallback.StockOption, func(), error) {
	opts := make([]fallback.StockOption, 0, len(cfg.StockImageURLs)+1)
	for sp, u := range cfg.StockImageURLs {
		opts = append(opts, fallback.WithStockURL(sp, u))
	}

	if !cfg.UsesGCS() {
		return opts, func() {}, nil
	}

	factory, err := newIOFactory(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("GCSクライアントの初期化に失敗しました: %w", err)
	}
	reader, err := factory.InputReader()
	if err != nil {
		_ = factory.Close()
		return nil, nil, fmt.Errorf("GCSリーダーの取得に失敗しました: %w", err)
	}
	opts = append(opts, fallback.WithRemoteReader(reader))

	cleanup := func() {
		if err := factory.Close(); err != nil {
			slog.WarnContext(ctx, "GCSクライアントのクローズに失敗しました", "error", err)
		}
	}
	return opts, cleanup, nil
}

func setupLogger(cfg *config.Config) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(cfg.LogFormat, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func report(cmd *cobra.Command, res domain.GenerationResult, flags outputFlags) error {
	out := cmd.OutOrStdout()
	if !res.OK() {
		fmt.Fprintf(out, "status:   %s\n", res.Message)
		return fmt.Errorf("image generation failed")
	}
	fmt.Fprintf(out, "file:     %s\n", res.Filename)
	fmt.Fprintf(out, "source:   %s\n", res.Source)
	fmt.Fprintf(out, "status:   %s\n", res.Message)
	fmt.Fprintf(out, "base64:   %d bytes\n", len(res.Base64))
	if flags.printBase64 {
		fmt.Fprintln(out, res.Base64)
	}
	if flags.printDataURI {
		fmt.Fprintln(out, packager.DataURI(res.Base64))
	}
	return nil
}
