package fallback

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/shouni/survey-banner-kit/pkg/domain"
	"github.com/shouni/survey-banner-kit/pkg/imgutil"
)

const (
	PlaceholderWidth  = 1280
	PlaceholderHeight = 720
	labelFontSize     = 20
)

var (
	placeholderBackground = color.RGBA{135, 206, 235, 255}
	titleColor            = color.RGBA{0, 0, 255, 255}
)

type shapeKind int

const (
	shapeNone shapeKind = iota
	shapeEllipse
	shapeRect
	shapeTriangle
	shapeLine
)

// accent は診療科ごとのラベルと図形です。
type accent struct {
	Label  string
	Color  color.RGBA
	Shape  shapeKind
	Box    image.Rectangle
	Filled bool
}

var accents = map[domain.Specialty]accent{
	domain.SpecialtyCardiology:        {"Heart & ECG", color.RGBA{255, 0, 0, 255}, shapeEllipse, image.Rect(50, 100, 150, 200), true},
	domain.SpecialtyOncology:          {"Cells & Microscope", color.RGBA{255, 165, 0, 255}, shapeEllipse, image.Rect(50, 100, 100, 150), true},
	domain.SpecialtyPrimaryCare:       {"Patient Care", color.RGBA{0, 128, 0, 255}, shapeRect, image.Rect(50, 100, 150, 200), false},
	domain.SpecialtyNeurology:         {"Brain & Neurons", color.RGBA{128, 0, 128, 255}, shapeEllipse, image.Rect(50, 100, 150, 150), true},
	domain.SpecialtyPharmacy:          {"Medications", color.RGBA{0, 0, 255, 255}, shapeRect, image.Rect(50, 100, 100, 150), true},
	domain.SpecialtyPediatrics:        {"Child Care", color.RGBA{255, 215, 0, 255}, shapeEllipse, image.Rect(50, 100, 100, 150), true},
	domain.SpecialtyPsychiatry:        {"Mental Health", color.RGBA{75, 0, 130, 255}, shapeTriangle, image.Rect(50, 100, 150, 150), true},
	domain.SpecialtySurgery:           {"Surgical Tools", color.RGBA{139, 69, 19, 255}, shapeLine, image.Rect(50, 100, 150, 100), false},
	domain.SpecialtyEmergencyMedicine: {"Urgent Care", color.RGBA{255, 0, 0, 255}, shapeRect, image.Rect(50, 100, 150, 150), false},
	domain.SpecialtyRadiology:         {"Scans & Imaging", color.RGBA{0, 255, 255, 255}, shapeRect, image.Rect(50, 100, 150, 120), true},
	domain.SpecialtyGeneral:           {"General Medical", color.RGBA{0, 0, 0, 255}, shapeNone, image.Rectangle{}, false},
}

func accentFor(s domain.Specialty) accent {
	if a, ok := accents[s]; ok {
		return a
	}
	return accents[domain.SpecialtyGeneral]
}

var parseFont = sync.OnceValues(func() (*truetype.Font, error) {
	return truetype.Parse(goregular.TTF)
})

func newLabelFace() (font.Face, error) {
	f, err := parseFont()
	if err != nil {
		return nil, fmt.Errorf("フォントの読み込みに失敗しました: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: labelFontSize}), nil
}

// PlaceholderRenderer は単色背景にタイトルと診療科のアクセントを描いた画像を生成します。
type PlaceholderRenderer struct {
	store ImageStore
	now   func() time.Time
}

// NewPlaceholderRenderer は PlaceholderRenderer を初期化します。
func NewPlaceholderRenderer(store ImageStore) (*PlaceholderRenderer, error) {
	if store == nil {
		return nil, fmt.Errorf("store (ImageStore) is required")
	}
	return &PlaceholderRenderer{store: store, now: time.Now}, nil
}

// Render はプレースホルダー画像を描画して保存します。失敗は *domain.FallbackError です。
func (r *PlaceholderRenderer) Render(ctx context.Context, surveyName, specialty, desiredFilename string) (_ *domain.RenderedImage, err error) {
	defer recoverAsError("draw", &err)

	img, err := DrawPlaceholder(surveyName, specialty)
	if err != nil {
		return nil, fallbackErr("draw", err)
	}

	data, err := imgutil.EncodePNG(img)
	if err != nil {
		return nil, fallbackErr("encode", err)
	}

	filename := resolveFilename(desiredFilename, surveyName, r.now)
	path, err := r.store.Write(ctx, filename, data)
	if err != nil {
		slog.ErrorContext(ctx, "フォールバック画像の保存に失敗しました", "specialty", specialty, "error", err)
		return nil, fallbackErr("save", err)
	}

	slog.InfoContext(ctx, "フォールバック画像を保存しました", "path", path, "strategy", "placeholder")
	return &domain.RenderedImage{Image: img, Filename: filepath.Base(path)}, nil
}

// DrawPlaceholder は 1280x720 のプレースホルダー画像をメモリ上に描画します。
func DrawPlaceholder(surveyName, specialty string) (image.Image, error) {
	face, err := newLabelFace()
	if err != nil {
		return nil, err
	}
	defer face.Close()

	dc := gg.NewContext(PlaceholderWidth, PlaceholderHeight)
	dc.SetColor(placeholderBackground)
	dc.Clear()
	dc.SetFontFace(face)

	dc.SetColor(titleColor)
	dc.DrawStringAnchored(fmt.Sprintf("%s - %s", surveyName, specialty), 10, 10, 0, 1)

	a := accentFor(domain.ParseSpecialty(specialty))
	dc.SetColor(a.Color)
	dc.DrawStringAnchored(a.Label, 10, 50, 0, 1)
	drawShape(dc, a)

	return dc.Image(), nil
}

func drawShape(dc *gg.Context, a accent) {
	b := a.Box
	x0, y0, x1, y1 := float64(b.Min.X), float64(b.Min.Y), float64(b.Max.X), float64(b.Max.Y)

	switch a.Shape {
	case shapeEllipse:
		dc.DrawEllipse((x0+x1)/2, (y0+y1)/2, (x1-x0)/2, (y1-y0)/2)
	case shapeRect:
		dc.DrawRectangle(x0, y0, x1-x0, y1-y0)
	case shapeTriangle:
		dc.MoveTo(x0, y0)
		dc.LineTo((x0+x1)/2, y1)
		dc.LineTo(x1, y0)
		dc.ClosePath()
	case shapeLine:
		dc.SetLineWidth(5)
		dc.DrawLine(x0, y0, x1, y1)
		dc.Stroke()
		return
	default:
		return
	}

	if a.Filled {
		dc.Fill()
		return
	}
	dc.SetLineWidth(1)
	dc.Stroke()
}
