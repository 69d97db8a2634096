// Package banner はサーベイバナー生成のフォールバックチェーンを実行します。
//
// START → PRIMARY_ATTEMPTED → (SUCCESS | FALLBACK_ATTEMPTED) → (SUCCESS | TOTAL_FAILURE)
//
// 一次生成器が nil（起動時に利用不可）の場合は FALLBACK_ATTEMPTED から始まります。
// どの終端状態でも GenerationResult を返し、エラーは呼び出し元に伝播しません。
package banner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/survey-banner-kit/pkg/domain"
	"github.com/shouni/survey-banner-kit/pkg/fallback"
	"github.com/shouni/survey-banner-kit/pkg/generator"
	"github.com/shouni/survey-banner-kit/pkg/packager"
	"github.com/shouni/survey-banner-kit/pkg/prompt"
)

// TemplateSurveyName はテンプレート生成時のサーベイ名です。
const TemplateSurveyName = "Medical Research Template"

// PrimaryGenerator はリモート生成を試みる一次生成器です。
type PrimaryGenerator interface {
	TryGenerate(ctx context.Context, promptText, surveyName, desiredFilename string) (*domain.RenderedImage, error)
}

var _ PrimaryGenerator = (*generator.GeminiGenerator)(nil)

// Service はプロンプト構築・一次生成・フォールバック・パッケージングをつなぐ窓口です。
// 状態を持たないため、複数の goroutine から同時に呼び出せます。
type Service struct {
	primary  PrimaryGenerator
	fallback fallback.Renderer
}

// NewService は Service を初期化します。primary は nil を許容し、その場合は常にフォールバックを使います。
func NewService(primary PrimaryGenerator, fb fallback.Renderer) (*Service, error) {
	if fb == nil {
		return nil, fmt.Errorf("fallback renderer is required")
	}
	return &Service{primary: primary, fallback: fb}, nil
}

// PrimaryAvailable は一次生成器が設定されているかを返します。
func (s *Service) PrimaryAvailable() bool {
	return s.primary != nil
}

// GenerateSurveyImage はリクエストに対してバナー画像を1枚生成します。
func (s *Service) GenerateSurveyImage(ctx context.Context, req domain.GenerationRequest) domain.GenerationResult {
	promptText := prompt.Build(req.SurveyName, req.Specialty, req.Tone, req.Style, req.IncludeText)

	slog.InfoContext(ctx, "サーベイ画像を生成します",
		"survey", req.SurveyName,
		"specialty", req.Specialty,
		"style", req.Style,
		"tone", req.Tone)

	var primaryErr error
	if s.primary != nil {
		out, err := s.primary.TryGenerate(ctx, promptText, req.SurveyName, req.DesiredFilename)
		if err == nil {
			return s.finish(ctx, out, domain.SourcePrimary, generator.SuccessMessage)
		}
		primaryErr = err
		slog.WarnContext(ctx, "フォールバック画像生成に切り替えます",
			"stage", domain.StagePrimaryAttempted,
			"specialty", req.Specialty,
			"prompt", prompt.Truncate(promptText, 100),
			"error", err)
	} else {
		slog.InfoContext(ctx, "一次生成器が利用できないためフォールバックを使用します", "specialty", req.Specialty)
	}

	out, err := s.fallback.Render(ctx, req.SurveyName, req.Specialty, req.DesiredFilename)
	if err != nil {
		return s.totalFailure(ctx, req, primaryErr, err)
	}

	msg := fallback.SuccessMessage
	if primaryErr != nil {
		msg = fmt.Sprintf("%s (AI generation failed: %v)", msg, primaryErr)
	} else {
		msg += " (AI generation unavailable)"
	}
	return s.finish(ctx, out, domain.SourceFallback, msg)
}

// GenerateTemplate はサーベイ固有のテキストを含まない再利用可能なテンプレート画像を生成します。
// ファイル名は正規化済みのキーを使った template_{specialty}_{style}.png です。
func (s *Service) GenerateTemplate(ctx context.Context, specialty, style string) domain.GenerationResult {
	sp := domain.ParseSpecialty(specialty)
	st := domain.ParseStyle(style)
	req := domain.NewGenerationRequest(TemplateSurveyName,
		domain.WithSpecialty(string(sp)),
		domain.WithStyle(string(st)),
		domain.WithIncludeText(false),
		domain.WithFilename(fmt.Sprintf("template_%s_%s.png", sp, st)),
	)
	return s.GenerateSurveyImage(ctx, req)
}

func (s *Service) finish(ctx context.Context, out *domain.RenderedImage, source domain.Source, msg string) domain.GenerationResult {
	filename, payload, err := packager.Package(out.Image, out.Filename)
	if err != nil {
		slog.ErrorContext(ctx, "画像のパッケージングに失敗しました", "filename", out.Filename, "error", err)
		return domain.GenerationResult{
			Message: err.Error(),
			Source:  domain.SourceNone,
			Stage:   domain.StageTotalFailure,
		}
	}
	slog.InfoContext(ctx, "サーベイ画像の生成が完了しました", "filename", filename, "source", source)
	return domain.GenerationResult{
		Image:    out.Image,
		Filename: filename,
		Base64:   payload,
		Message:  msg,
		Source:   source,
		Stage:    domain.StageSuccess,
	}
}

func (s *Service) totalFailure(ctx context.Context, req domain.GenerationRequest, primaryErr, fallbackErr error) domain.GenerationResult {
	slog.ErrorContext(ctx, "フォールバック画像の生成にも失敗しました",
		"stage", domain.StageFallbackAttempted,
		"specialty", req.Specialty,
		"primary_error", primaryErr,
		"error", fallbackErr)
	return domain.GenerationResult{
		Message: fallbackErr.Error(),
		Source:  domain.SourceNone,
		Stage:   domain.StageTotalFailure,
	}
}
