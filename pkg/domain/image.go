package domain

import "image"

// GenerationRequest はサーベイバナー生成の入力です。生成後は変更しない前提です。
type GenerationRequest struct {
	SurveyName      string
	Specialty       string
	Tone            string
	Style           string
	IncludeText     bool
	DesiredFilename string
}

// RequestOption は NewGenerationRequest のデフォルト値を上書きします。
type RequestOption func(*GenerationRequest)

// WithSpecialty は診療科を指定します。
func WithSpecialty(s string) RequestOption {
	return func(r *GenerationRequest) { r.Specialty = s }
}

// WithTone はトーンを指定します。
func WithTone(t string) RequestOption {
	return func(r *GenerationRequest) { r.Tone = t }
}

// WithStyle はスタイルを指定します。
func WithStyle(s string) RequestOption {
	return func(r *GenerationRequest) { r.Style = s }
}

// WithIncludeText はテキストオーバーレイの有無を指定します。
func WithIncludeText(b bool) RequestOption {
	return func(r *GenerationRequest) { r.IncludeText = b }
}

// WithFilename は保存ファイル名を固定します。
func WithFilename(name string) RequestOption {
	return func(r *GenerationRequest) { r.DesiredFilename = name }
}

// NewGenerationRequest はデフォルト値 (general / professional / professional / テキストあり) を
// 適用したリクエストを作成します。
func NewGenerationRequest(surveyName string, opts ...RequestOption) GenerationRequest {
	req := GenerationRequest{
		SurveyName:  surveyName,
		Specialty:   string(SpecialtyGeneral),
		Tone:        "professional",
		Style:       string(StyleProfessional),
		IncludeText: true,
	}
	for _, opt := range opts {
		opt(&req)
	}
	return req
}

// Source は結果画像の出どころです。
type Source string

const (
	SourceNone     Source = "none"
	SourcePrimary  Source = "primary"
	SourceFallback Source = "fallback"
)

// Stage はオーケストレーションの状態です。
type Stage string

const (
	StageStart             Stage = "START"
	StagePrimaryAttempted  Stage = "PRIMARY_ATTEMPTED"
	StageFallbackAttempted Stage = "FALLBACK_ATTEMPTED"
	StageSuccess           Stage = "SUCCESS"
	StageTotalFailure      Stage = "TOTAL_FAILURE"
)

// RenderedImage は各ステージが生成した画像と、保存済みのファイル名です。
type RenderedImage struct {
	Image    image.Image
	Filename string
}

// GenerationResult は呼び出し元に必ず返される結果です。
// 全段失敗時は Image / Filename / Base64 が空になり、Message に原因が入ります。
type GenerationResult struct {
	Image    image.Image
	Filename string
	Base64   string
	Message  string
	Source   Source
	Stage    Stage
}

// OK は画像が得られたかどうかを返します。
func (r GenerationResult) OK() bool {
	return r.Image != nil
}
