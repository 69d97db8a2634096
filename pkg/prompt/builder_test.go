package prompt

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shouni/survey-banner-kit/pkg/domain"
)

func TestBuild_Specialty(t *testing.T) {
	t.Run("登録済みの診療科はビジュアル要素を含む", func(t *testing.T) {
		for _, s := range domain.Specialties() {
			got := Build("Survey", string(s), "professional", "professional", true)
			assert.Contains(t, got, s.Profile().VisualElements, s)
		}
	})

	t.Run("大文字小文字を区別しない", func(t *testing.T) {
		got := Build("Survey", "CarDiology", "professional", "professional", true)
		assert.Contains(t, got, domain.SpecialtyCardiology.Profile().VisualElements)
	})

	t.Run("未知の診療科は general の要素を含む", func(t *testing.T) {
		got := Build("Survey", "dermatology", "professional", "professional", true)
		assert.Contains(t, got, domain.SpecialtyGeneral.Profile().VisualElements)
		assert.Contains(t, got, "focusing on dermatology specialty")
	})
}

func TestBuild_Style(t *testing.T) {
	t.Run("登録済みのスタイルは対応する指示ブロックを含む", func(t *testing.T) {
		for _, st := range domain.Styles() {
			got := Build("Survey", "oncology", "professional", string(st), true)
			p := st.Profile()
			assert.Contains(t, got, p.Heading+":", st)
			for _, line := range p.Instructions {
				want := line
				if strings.Contains(line, "%[1]s") {
					want = fmt.Sprintf(line, "oncology")
				}
				assert.Contains(t, got, "- "+want, st)
			}
		}
	})

	t.Run("未知のスタイルは professional に落ちる", func(t *testing.T) {
		got := Build("Survey", "oncology", "professional", "watercolor", true)
		assert.Contains(t, got, "PROFESSIONAL STYLE:")
		assert.Contains(t, got, "Clean, corporate medical aesthetic")
		assert.NotContains(t, got, "INFOGRAPHIC STYLE")
	})

	t.Run("スタイル内の診療科プレースホルダが置換される", func(t *testing.T) {
		got := Build("Survey", "neurology", "professional", "infographic", true)
		assert.Contains(t, got, "statistics) related to neurology")
		assert.NotContains(t, got, "%[1]s")
	})
}

func TestBuild_TextOverlay(t *testing.T) {
	t.Run("includeText=true は見出し指示を含む", func(t *testing.T) {
		got := Build("Heart Study", "cardiology", "professional", "professional", true)
		assert.Contains(t, got, "TEXT OVERLAY REQUIREMENTS:")
		assert.Contains(t, got, `Main headline: "Heart Study"`)
		assert.NotContains(t, got, NoTextDirective)
	})

	t.Run("includeText=false は見出しを含まずテキストなし指示を含む", func(t *testing.T) {
		got := Build("Heart Study", "cardiology", "professional", "professional", false)
		assert.NotContains(t, got, "Main headline")
		assert.NotContains(t, got, "Subtitle")
		assert.Contains(t, got, NoTextDirective)
	})
}

func TestBuild_Structure(t *testing.T) {
	got := Build("Heart Study", "cardiology", "calm", "clean_modern", true)

	order := []string{
		"CAMPAIGN DETAILS:",
		"- Visual Tone: calm",
		"VISUAL REQUIREMENTS:",
		"- Specialty Elements: MANDATORY INCLUSION of",
		"CLEAN MODERN STYLE:",
		"TEXT OVERLAY REQUIREMENTS:",
		"COMPOSITION GUIDELINES:",
		"TECHNICAL SPECIFICATIONS:",
		"Focus SOLELY on cardiology-related medical imagery.",
	}
	last := -1
	for _, s := range order {
		idx := strings.Index(got, s)
		if assert.GreaterOrEqual(t, idx, 0, "missing %q", s) {
			assert.Greater(t, idx, last, "%q out of order", s)
			last = idx
		}
	}
	assert.True(t, strings.HasSuffix(got, "medical imagery."))
}

func TestBuild_Idempotent(t *testing.T) {
	a := Build("Heart Study", "cardiology", "professional", "infographic", false)
	b := Build("Heart Study", "cardiology", "professional", "infographic", false)
	assert.Equal(t, a, b)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "ab...", Truncate("abcdef", 2))
	assert.Equal(t, "心臓...", Truncate("心臓研究", 2))
}
