package engine

import (
	"fmt"
	"sort"

	"github.com/Brandea-ai/ck-immo-finanz/internal/models"
	"github.com/Brandea-ai/ck-immo-finanz/internal/phasen"
)

// StauWarnung meldet einen Fall, der deutlich über der erwarteten
// Verweildauer seiner Phase liegt. Wird pro Portfolio-Scan frisch
// berechnet und nie persistiert.
type StauWarnung struct {
	KundeID     uint   `json:"kundeId"`
	KundeName   string `json:"kundeName"`
	Phase       int    `json:"phase"`
	TageInPhase int    `json:"tageInPhase"`
	Grund       string `json:"grund"`
	Empfehlung  string `json:"empfehlung"`
}

// ErkenneStau durchsucht das Portfolio nach Fällen mit Stillstand.
// Stau heißt: mehr als erwartete Tage + 2 Tage Puffer in der Phase.
// Fälle in der Nachbetreuung (Phase 11) sind ausgenommen. Das Ergebnis
// ist absteigend nach Verweildauer sortiert, der dringendste Fall zuerst.
func ErkenneStau(kunden []models.Kunde) []StauWarnung {
	var warnungen []StauWarnung

	for i := range kunden {
		k := &kunden[i]
		if k.Phase >= phasen.Letzte {
			continue
		}
		phase, ok := phasen.ByID(k.Phase)
		if !ok {
			continue
		}
		if k.TageInPhase <= phase.ExpectedDays+2 {
			continue
		}

		grund := "Keine Aktivität"
		empfehlung := "Kunde kontaktieren"
		switch {
		case len(k.FehlendeDokumente) > 0:
			grund = fmt.Sprintf("%d Dokumente fehlen", len(k.FehlendeDokumente))
			empfehlung = "Unterlagen erneut anfordern"
		case k.Phase == 7:
			grund = "Wartet auf Objektzusage/Notartermin"
			empfehlung = "Status beim Kunden erfragen"
		case k.Phase == 8:
			grund = "Möglicherweise Bank-Rückfragen"
			empfehlung = "Bei Bank nachfassen"
		}

		warnungen = append(warnungen, StauWarnung{
			KundeID:     k.ID,
			KundeName:   k.Name,
			Phase:       k.Phase,
			TageInPhase: k.TageInPhase,
			Grund:       grund,
			Empfehlung:  empfehlung,
		})
	}

	sort.SliceStable(warnungen, func(i, j int) bool {
		return warnungen[i].TageInPhase > warnungen[j].TageInPhase
	})
	return warnungen
}
