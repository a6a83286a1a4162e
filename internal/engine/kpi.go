package engine

import (
	"github.com/Brandea-ai/ck-immo-finanz/internal/models"
	"github.com/Brandea-ai/ck-immo-finanz/internal/phasen"
)

// DetailKPIs ist die vollständige Kennzahlen-Reduktion über das Portfolio.
// "Aktiv" heißt Phase < 11; Prozentwerte sind kaufmännisch gerundet.
type DetailKPIs struct {
	// Basis
	PipelineWert float64 `json:"pipelineWert"`
	AktiveFaelle int     `json:"aktiveFaelle"`
	Abschluesse  int     `json:"abschluesse"`

	// Status
	KritischeFaelle int `json:"kritischeFaelle"`
	Warnungen       int `json:"warnungen"`
	OkFaelle        int `json:"okFaelle"`

	// Prozess
	NeueLeads              int `json:"neueLeads"`
	StauFaelle             int `json:"stauFaelle"`
	DurchlaufzeitPhase1bis3 int `json:"durchlaufzeitPhase1bis3"`

	// Qualität
	UnterlagenVollstaendig int `json:"unterlagenVollstaendig"` // Prozent
	RedFlagRate            int `json:"redFlagRate"`            // Prozent der Fälle mit Red Flags

	// Pro Berater, Schlüssel ist die Berater-ID
	FaelleProBerater  map[uint]int     `json:"faelleProBerater"`
	VolumenProBerater map[uint]float64 `json:"volumenProBerater"`
}

// BerechneDetailKPIs reduziert das Portfolio auf die Dashboard-Kennzahlen.
// Ein leeres Portfolio liefert Nullwerte ohne Divisionsfehler:
// Vollständigkeit 100% (leere Grundmenge), Red-Flag-Rate 0%.
func BerechneDetailKPIs(kunden []models.Kunde) DetailKPIs {
	kpi := DetailKPIs{
		FaelleProBerater:  make(map[uint]int),
		VolumenProBerater: make(map[uint]float64),
	}

	var aktiv []*models.Kunde
	for i := range kunden {
		k := &kunden[i]
		if k.Phase < phasen.Letzte {
			aktiv = append(aktiv, k)
		}
		if k.Phase >= 10 {
			kpi.Abschluesse++
		}
		if k.Phase == 1 {
			kpi.NeueLeads++
		}

		switch BerechneStatus(k) {
		case models.StatusKritisch:
			kpi.KritischeFaelle++
		case models.StatusWarnung:
			kpi.Warnungen++
		default:
			kpi.OkFaelle++
		}
	}
	kpi.AktiveFaelle = len(aktiv)

	// Durchlaufzeit Phase 1-3 (gerundeter Mittelwert, 0 ohne Fälle)
	summe, anzahl := 0, 0
	for i := range kunden {
		if kunden[i].Phase >= 1 && kunden[i].Phase <= 3 {
			summe += kunden[i].TageInPhase
			anzahl++
		}
	}
	if anzahl > 0 {
		kpi.DurchlaufzeitPhase1bis3 = runden(float64(summe) / float64(anzahl))
	}

	// Unterlagen-Vollständigkeit: aktive Fälle ab Phase 3
	mitUnterlagen, vollstaendig := 0, 0
	for _, k := range aktiv {
		if k.Phase < 3 {
			continue
		}
		mitUnterlagen++
		if len(k.FehlendeDokumente) == 0 {
			vollstaendig++
		}
	}
	kpi.UnterlagenVollstaendig = 100
	if mitUnterlagen > 0 {
		kpi.UnterlagenVollstaendig = runden(float64(vollstaendig) / float64(mitUnterlagen) * 100)
	}

	// Red-Flag-Rate über aktive Fälle
	mitRedFlags := 0
	for _, k := range aktiv {
		if len(ErkenneRedFlags(k)) > 0 {
			mitRedFlags++
		}
	}
	if len(aktiv) > 0 {
		kpi.RedFlagRate = runden(float64(mitRedFlags) / float64(len(aktiv)) * 100)
	}

	kpi.StauFaelle = len(ErkenneStau(kunden))

	// Ein Durchlauf über die aktiven Fälle für beide Berater-Maps
	for _, k := range aktiv {
		kpi.PipelineWert += k.Finanzierungsvolumen
		kpi.FaelleProBerater[k.BeraterID]++
		kpi.VolumenProBerater[k.BeraterID] += k.Finanzierungsvolumen
	}

	return kpi
}
