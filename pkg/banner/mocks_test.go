package banner

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"

	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"

	"github.com/shouni/survey-banner-kit/pkg/domain"
)

// --- Mocks ---

type mockAIClient struct {
	resp      *gemini.Response
	err       error
	panicWith any
	lastParts []*genai.Part
}

func (m *mockAIClient) GenerateWithParts(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error) {
	m.lastParts = parts
	if m.panicWith != nil {
		panic(m.panicWith)
	}
	return m.resp, m.err
}

type failingStore struct {
	err error
}

func (f *failingStore) Write(ctx context.Context, name string, data []byte) (string, error) {
	return "", f.err
}

type mockPrimary struct {
	out *domain.RenderedImage
	err error

	lastPrompt   string
	lastFilename string
}

func (m *mockPrimary) TryGenerate(ctx context.Context, promptText, surveyName, desiredFilename string) (*domain.RenderedImage, error) {
	m.lastPrompt = promptText
	m.lastFilename = desiredFilename
	return m.out, m.err
}

type mockRenderer struct {
	out    *domain.RenderedImage
	err    error
	called bool
}

func (m *mockRenderer) Render(ctx context.Context, surveyName, specialty, desiredFilename string) (*domain.RenderedImage, error) {
	m.called = true
	return m.out, m.err
}

func imageResponse(t *testing.T) *gemini.Response {
	t.Helper()
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, image.NewRGBA(image.Rect(0, 0, 32, 18))); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return &gemini.Response{
		RawResponse: &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content: &genai.Content{
					Parts: []*genai.Part{{InlineData: &genai.Blob{MIMEType: "image/png", Data: buf.Bytes()}}},
				},
			}},
		},
	}
}
