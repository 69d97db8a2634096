// Package prompt は医療サーベイ用バナー画像の生成プロンプトを組み立てます。
package prompt

import (
	"fmt"
	"strings"

	"github.com/shouni/survey-banner-kit/pkg/domain"
)

// NoTextDirective は includeText=false の時に付与される指示です。
const NoTextDirective = "- Create image without text overlay (background/template only)"

// Build はサーベイ名・診療科・トーン・スタイルからプロンプト文字列を生成します。
// 副作用のない純粋関数で、同じ引数なら常に同じ文字列を返します。
func Build(surveyName, specialty, tone, style string, includeText bool) string {
	sp := domain.ParseSpecialty(specialty)
	st := domain.ParseStyle(style)

	name := strings.TrimSpace(specialty)
	if name == "" {
		name = string(sp)
	}
	styleName := strings.TrimSpace(style)
	if styleName == "" {
		styleName = string(st)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Create a high-quality, professional medical survey campaign image EXCLUSIVELY for healthcare professionals, focusing on %s specialty.\n\n", name)

	b.WriteString("CAMPAIGN DETAILS:\n")
	fmt.Fprintf(&b, "- Survey Focus: %s\n", surveyName)
	fmt.Fprintf(&b, "- Target Specialty: %s (PRIORITIZE MEDICAL RELEVANCE)\n", name)
	fmt.Fprintf(&b, "- Visual Tone: %s\n", tone)
	fmt.Fprintf(&b, "- Style: %s (MANDATORY)\n\n", styleName)

	b.WriteString("VISUAL REQUIREMENTS:\n")
	b.WriteString("- Dimensions: 16:9 landscape format, suitable for email headers and web banners\n")
	b.WriteString("- Resolution: High-resolution, crisp and clear\n")
	b.WriteString("- Color scheme: Professional medical colors (blues, teals, whites, subtle accent colors)\n")
	fmt.Fprintf(&b, "- MUST INCLUDE medical imagery specific to %s\n", name)
	b.WriteString("- Clean, uncluttered design with plenty of white space\n")
	fmt.Fprintf(&b, "- Specialty Elements: MANDATORY INCLUSION of %s\n", sp.Profile().VisualElements)

	writeStyleBlock(&b, st.Profile(), name)

	if includeText {
		b.WriteString("\nTEXT OVERLAY REQUIREMENTS:\n")
		fmt.Fprintf(&b, "- Main headline: %q (prominent, readable typography)\n", surveyName)
		b.WriteString("- Subtitle: \"Healthcare Professional Survey\" or \"Medical Research Study\"\n")
		b.WriteString("- Call-to-action element: \"Share Your Expertise\" or \"Join the Research\"\n")
		b.WriteString("- Text must be easily readable against the background\n")
		b.WriteString("- Use professional, medical-appropriate fonts\n")
		b.WriteString("- Ensure text contrast meets accessibility standards\n")
	} else {
		b.WriteString("\n" + NoTextDirective + "\n")
	}

	b.WriteString("\nCOMPOSITION GUIDELINES:\n")
	b.WriteString("- Center-weighted composition with clear focal point\n")
	b.WriteString("- Balance between imagery and negative space\n")
	b.WriteString("- Professional lighting and color temperature\n")
	b.WriteString("- Avoid overly complex or busy designs\n")
	b.WriteString("- Ensure scalability from large banners to small email thumbnails\n")
	b.WriteString("- Create a sense of trust, expertise, and medical authority\n")
	b.WriteString("- Make it appealing to busy healthcare professionals\n")
	fmt.Fprintf(&b, "- Include SUBTLE ELEMENTS that suggest collaboration and knowledge sharing in a %s context\n", name)

	b.WriteString("\nTECHNICAL SPECIFICATIONS:\n")
	b.WriteString("- High contrast for readability\n")
	b.WriteString("- Professional color grading\n")
	b.WriteString("- Sharp, crisp details\n")
	b.WriteString("- Suitable for both digital and print applications\n")
	b.WriteString("- Optimized for professional medical communications\n")

	fmt.Fprintf(&b, "\nDO NOT generate generic or non-medical images. Focus SOLELY on %s-related medical imagery.", name)

	return strings.TrimSpace(b.String())
}

func writeStyleBlock(b *strings.Builder, p domain.StyleProfile, specialty string) {
	fmt.Fprintf(b, "\n%s:\n", p.Heading)
	for _, line := range p.Instructions {
		if strings.Contains(line, "%[1]s") {
			line = fmt.Sprintf(line, specialty)
		}
		fmt.Fprintf(b, "- %s\n", line)
	}
}

// Truncate はログ出力用にプロンプトを先頭 n 文字 (rune) に切り詰めます。
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
