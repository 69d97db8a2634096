package generator

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"

	"github.com/shouni/survey-banner-kit/pkg/domain"
	"github.com/shouni/survey-banner-kit/pkg/imgutil"
	"github.com/shouni/survey-banner-kit/pkg/prompt"
	"github.com/shouni/survey-banner-kit/pkg/utils"
)

const (
	// DefaultModel は画像出力に対応した Gemini モデルです。
	DefaultModel = "gemini-2.5-flash-image"
	// DefaultTimeout はリモート呼び出し1回あたりの上限時間です。
	DefaultTimeout = 60 * time.Second
	// BannerAspectRatio はバナー画像のアスペクト比です。
	BannerAspectRatio = "16:9"

	filenamePrefix = "survey_image"
)

// SuccessMessage は生成成功時のステータスメッセージです。
const SuccessMessage = "AI-generated image created successfully"

// Option は GeminiGenerator の任意設定です。
type Option func(*GeminiGenerator)

// WithTimeout はリモート呼び出しのタイムアウトを設定します。0 以下なら無効です。
func WithTimeout(d time.Duration) Option {
	return func(g *GeminiGenerator) { g.timeout = d }
}

// WithSeed は生成に使うシード値を固定します。同じプロンプトで再現性のある出力を得たいときに使います。
func WithSeed(seed int64) Option {
	return func(g *GeminiGenerator) { g.seed = &seed }
}

// WithClock はファイル名のタイムスタンプに使う時計を差し替えます。
func WithClock(now func() time.Time) Option {
	return func(g *GeminiGenerator) { g.now = now }
}

// GeminiGenerator はリモートの Gemini API からバナー画像を取得する一次生成器です。
// 1回の呼び出しにつき API を1度だけ叩き、リトライはしません。
type GeminiGenerator struct {
	aiClient ContentGenerator
	store    ImageStore
	model    string
	timeout  time.Duration
	seed     *int64
	now      func() time.Time
}

// NewGeminiGenerator は依存関係を注入して GeminiGenerator を初期化します。
func NewGeminiGenerator(aiClient ContentGenerator, store ImageStore, model string, opts ...Option) (*GeminiGenerator, error) {
	if aiClient == nil {
		return nil, fmt.Errorf("aiClient (ContentGenerator) is required")
	}
	if store == nil {
		return nil, fmt.Errorf("store (ImageStore) is required")
	}
	if model == "" {
		model = DefaultModel
	}

	g := &GeminiGenerator{
		aiClient: aiClient,
		store:    store,
		model:    model,
		timeout:  DefaultTimeout,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Model は使用するモデル名を返します。
func (g *GeminiGenerator) Model() string {
	return g.model
}

// TryGenerate はプロンプトから画像を生成し、出力ディレクトリに保存します。
// 失敗はすべて *domain.RemoteGenerationError として返り、呼び出し側はフォールバックへ進みます。
func (g *GeminiGenerator) TryGenerate(ctx context.Context, promptText, surveyName, desiredFilename string) (rendered *domain.RenderedImage, err error) {
	// クライアントや SDK 内部の panic もフォールバック対象の失敗として扱う。
	defer func() {
		if r := recover(); r != nil {
			rendered = nil
			err = g.fail(ctx, "generate", promptText, fmt.Errorf("panic: %v", r))
		}
	}()

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	slog.InfoContext(ctx, "Geminiに画像生成をリクエストします", "model", g.model, "survey", surveyName)

	parts := []*genai.Part{{Text: promptText}}
	resp, err := g.aiClient.GenerateWithParts(ctx, g.model, parts, gemini.GenerateOptions{
		AspectRatio: BannerAspectRatio,
		Seed:        g.seed,
	})
	if err != nil {
		return nil, g.fail(ctx, "generate", promptText, err)
	}

	out, err := parseToResponse(resp)
	if err != nil {
		return nil, g.fail(ctx, "parse", promptText, err)
	}

	img, format, err := imgutil.Decode(out.Data)
	if err != nil {
		return nil, g.fail(ctx, "decode", promptText, err)
	}

	filename := desiredFilename
	if filename == "" {
		filename = utils.BuildFilename(filenamePrefix, surveyName, g.now())
	}

	data, err := imgutil.EncodePNG(img)
	if err != nil {
		return nil, g.fail(ctx, "encode", promptText, err)
	}
	path, err := g.store.Write(ctx, filename, data)
	if err != nil {
		return nil, g.fail(ctx, "save", promptText, err)
	}

	filename = filepath.Base(path)

	slog.InfoContext(ctx, "Gemini画像を保存しました", "path", path, "source_format", format, "mime_type", out.MimeType)
	return &domain.RenderedImage{Image: img, Filename: filename}, nil
}

func (g *GeminiGenerator) fail(ctx context.Context, op, promptText string, err error) error {
	slog.WarnContext(ctx, "Gemini画像生成に失敗しました",
		"stage", op,
		"model", g.model,
		"prompt", prompt.Truncate(promptText, 100),
		"error", err)
	return &domain.RemoteGenerationError{Op: op, Err: err}
}
