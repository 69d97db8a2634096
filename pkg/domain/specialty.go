package domain

import "strings"

// Specialty は診療科を表す列挙型です。未知の値は ParseSpecialty で SpecialtyGeneral に落ちます。
type Specialty string

const (
	SpecialtyGeneral           Specialty = "general"
	SpecialtyCardiology        Specialty = "cardiology"
	SpecialtyOncology          Specialty = "oncology"
	SpecialtyPrimaryCare       Specialty = "primary_care"
	SpecialtyNeurology         Specialty = "neurology"
	SpecialtyPediatrics        Specialty = "pediatrics"
	SpecialtyPsychiatry        Specialty = "psychiatry"
	SpecialtyEmergencyMedicine Specialty = "emergency_medicine"
	SpecialtySurgery           Specialty = "surgery"
	SpecialtyRadiology         Specialty = "radiology"
	SpecialtyPharmacy          Specialty = "pharmacy"
)

// SpecialtyProfile は診療科ごとの静的データです。
type SpecialtyProfile struct {
	// VisualElements はプロンプトに注入するビジュアル要素の説明です。
	VisualElements string
	// StockImageURL はストック写真フォールバック用の画像URLです。
	StockImageURL string
}

var specialtyProfiles = map[Specialty]SpecialtyProfile{
	SpecialtyCardiology: {
		VisualElements: "subtle heart imagery, ECG patterns, stethoscope elements, cardiovascular icons",
		StockImageURL:  "https://plus.unsplash.com/premium_photo-1718349374495-b1d09644f973?q=80&w=1632&auto=format&fit=crop",
	},
	SpecialtyOncology: {
		VisualElements: "cellular imagery, research lab elements, microscope motifs, hope and healing themes",
		StockImageURL:  "https://images.unsplash.com/photo-1586773831566-893f3648d9f7?w=500&auto=format&fit=crop&q=60",
	},
	SpecialtyPrimaryCare: {
		VisualElements: "diverse patient care imagery, family medicine elements, community health themes",
		StockImageURL:  "https://plus.unsplash.com/premium_photo-1673953509975-576678fa6710?w=500&auto=format&fit=crop&q=60",
	},
	SpecialtyNeurology: {
		VisualElements: "brain imagery, neural networks, neurological examination tools",
		StockImageURL:  "https://plus.unsplash.com/premium_photo-1722684650552-bfaf747e3c9f?q=80&w=1740&auto=format&fit=crop",
	},
	SpecialtyPediatrics: {
		VisualElements: "child-friendly colors, pediatric care elements, family-centered themes",
		StockImageURL:  "https://plus.unsplash.com/premium_photo-1681995280561-d11f4b5ba8f3?q=80&w=1740&auto=format&fit=crop",
	},
	SpecialtyPsychiatry: {
		VisualElements: "mental health awareness imagery, brain and mind connection themes",
		StockImageURL:  "https://plus.unsplash.com/premium_photo-1682148380543-a6fd43607dea?q=80&w=1740&auto=format&fit=crop",
	},
	SpecialtyEmergencyMedicine: {
		VisualElements: "urgent care elements, emergency room themes, critical care imagery",
		StockImageURL:  "https://plus.unsplash.com/premium_photo-1679615911754-fafb37c81998?q=80&w=1863&auto=format&fit=crop",
	},
	SpecialtySurgery: {
		VisualElements: "surgical precision imagery, OR themes, medical precision elements",
		StockImageURL:  "https://images.unsplash.com/photo-1640876777012-bdb00a6323e2?q=80&w=1887&auto=format&fit=crop",
	},
	SpecialtyRadiology: {
		VisualElements: "imaging equipment, scan imagery, diagnostic themes",
		StockImageURL:  "https://plus.unsplash.com/premium_photo-1664302322745-7337f0902e13?q=80&w=1740&auto=format&fit=crop",
	},
	SpecialtyPharmacy: {
		VisualElements: "pharmaceutical elements, medication management themes",
		StockImageURL:  "https://images.unsplash.com/photo-1603706580932-6befcf7d8521?q=80&w=1887&auto=format&fit=crop",
	},
	SpecialtyGeneral: {
		VisualElements: "universal medical symbols, healthcare collaboration imagery, medical professionalism",
		StockImageURL:  "https://plus.unsplash.com/premium_photo-1673953509975-576678fa6710?w=500&auto=format&fit=crop&q=60",
	},
}

// ParseSpecialty は自由入力を大文字小文字を無視して Specialty に正規化します。
// 全域関数であり、未知の値は SpecialtyGeneral を返します。
func ParseSpecialty(s string) Specialty {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)

	switch key {
	case "cardiology":
		return SpecialtyCardiology
	case "oncology":
		return SpecialtyOncology
	case "primary_care":
		return SpecialtyPrimaryCare
	case "neurology":
		return SpecialtyNeurology
	case "pediatrics":
		return SpecialtyPediatrics
	case "psychiatry", "psychiatrist":
		return SpecialtyPsychiatry
	case "emergency_medicine":
		return SpecialtyEmergencyMedicine
	case "surgery":
		return SpecialtySurgery
	case "radiology":
		return SpecialtyRadiology
	case "pharmacy":
		return SpecialtyPharmacy
	default:
		return SpecialtyGeneral
	}
}

// Profile は診療科の静的データを返します。
func (s Specialty) Profile() SpecialtyProfile {
	if p, ok := specialtyProfiles[s]; ok {
		return p
	}
	return specialtyProfiles[SpecialtyGeneral]
}

// Specialties は登録済みの診療科を一覧します (general を含む)。
func Specialties() []Specialty {
	return []Specialty{
		SpecialtyCardiology,
		SpecialtyOncology,
		SpecialtyPrimaryCare,
		SpecialtyNeurology,
		SpecialtyPediatrics,
		SpecialtyPsychiatry,
		SpecialtyEmergencyMedicine,
		SpecialtySurgery,
		SpecialtyRadiology,
		SpecialtyPharmacy,
		SpecialtyGeneral,
	}
}
