package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSurveyName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Heart Study: 2025!", "Heart_Study_2025"},
		{"Oncology-Trial_v2", "Oncology-Trial_v2"},
		{"trailing   ", "trailing"},
		{"  leading", "__leading"},
		{"a/b\\c", "abc"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := SanitizeSurveyName(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Regexp(t, regexp.MustCompile(`^[\p{L}\p{N}_-]*$`), got)
		})
	}
}

func TestBuildFilename(t *testing.T) {
	now := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)

	got := BuildFilename("survey_image", "Heart Study: 2025!", now)
	assert.Equal(t, "survey_image_Heart_Study_2025_20250304_050607.png", got)
}

func TestIsSafeURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"パブリックIP直指定", "https://8.8.8.8/image.png", false},
		{"GCSスキーム (gs://)", "gs://my-bucket/path/to/image.png", true},
		{"不正なスキーム", "gopher://example.com", true},
		{"ループバック", "http://127.0.0.1/admin", true},
		{"プライベートIP (クラスA)", "http://10.255.255.254/metadata", true},
		{"リンクローカル", "http://169.254.169.254/latest/meta-data", true},
		{"パース不能", "::not a url", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			safe, err := IsSafeURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				assert.False(t, safe)
				return
			}
			assert.NoError(t, err)
			assert.True(t, safe)
		})
	}
}
