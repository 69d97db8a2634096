package domain

import "strings"

// Style は画像スタイルの列挙型です。未知の値は StyleProfessional に落ちます。
type Style string

const (
	StyleProfessional        Style = "professional"
	StyleInfographic         Style = "infographic"
	StyleMedicalIllustration Style = "medical_illustration"
	StyleCleanModern         Style = "clean_modern"
)

// StyleProfile はスタイルごとの指示ブロックです。
// Instructions 内の %[1]s は診療科名に置換されます。
type StyleProfile struct {
	Heading      string
	Instructions []string
}

var styleProfiles = map[Style]StyleProfile{
	StyleProfessional: {
		Heading: "PROFESSIONAL STYLE",
		Instructions: []string{
			"Clean, corporate medical aesthetic",
			"Subtle gradients and professional typography",
			"Medical professionals in business attire",
			"Hospital or clinic environment backgrounds",
			"Sophisticated color palette with medical blues and whites",
			"Icons and symbols MUST BE minimal and elegant",
		},
	},
	StyleInfographic: {
		Heading: "INFOGRAPHIC STYLE",
		Instructions: []string{
			"Data visualization elements (charts, graphs, statistics) related to %[1]s",
			"Clear information hierarchy",
			"Iconography representing survey benefits in a medical context",
			"Step-by-step visual flow",
			"Bold, readable typography",
			"Engaging data presentation elements",
		},
	},
	StyleMedicalIllustration: {
		Heading: "MEDICAL ILLUSTRATION STYLE",
		Instructions: []string{
			"Detailed medical diagrams and anatomical elements specific to %[1]s",
			"Scientific accuracy in medical representations",
			"Educational poster aesthetic",
			"Medical textbook illustration quality",
			"Precise, technical visual elements",
			"Professional medical publication style",
		},
	},
	StyleCleanModern: {
		Heading: "CLEAN MODERN STYLE",
		Instructions: []string{
			"Minimalist design with lots of white space",
			"Modern typography and clean lines",
			"Subtle shadows and depth",
			"Contemporary medical technology elements related to %[1]s",
			"Fresh, approachable color palette",
			"Modern healthcare facility aesthetics",
		},
	},
}

// ParseStyle は自由入力を Style に正規化します。未知の値は StyleProfessional です。
func ParseStyle(s string) Style {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)

	switch key {
	case "infographic":
		return StyleInfographic
	case "medical_illustration":
		return StyleMedicalIllustration
	case "clean_modern":
		return StyleCleanModern
	default:
		return StyleProfessional
	}
}

// Profile はスタイルの指示ブロックを返します。
func (s Style) Profile() StyleProfile {
	if p, ok := styleProfiles[s]; ok {
		return p
	}
	return styleProfiles[StyleProfessional]
}

// Styles は登録済みのスタイルを一覧します。
func Styles() []Style {
	return []Style{StyleProfessional, StyleInfographic, StyleMedicalIllustration, StyleCleanModern}
}
