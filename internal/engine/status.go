package engine

import "github.com/Brandea-ai/ck-immo-finanz/internal/models"

// BerechneStatus leitet die Ampel eines Falls ab. Strikte Wasserfall-
// Reihenfolge, der erste Treffer gewinnt:
//
//	kritisch: kritische Red Flags, >= 5 Tage Stillstand (vor Phase 10)
//	          oder >= 3 fehlende Dokumente
//	warnung:  Warn-Flags, >= 3 Tage Stillstand (vor Phase 10)
//	          oder fehlende Dokumente
//	ok:       sonst
//
// Der Status wird bei jedem Aufruf komplett neu abgeleitet; es gibt
// keinen gemerkten Zustand.
func BerechneStatus(k *models.Kunde) models.Status {
	flags := ErkenneRedFlags(k)

	kritisch := false
	warnung := false
	for _, f := range flags {
		switch f.Severity {
		case SeverityKritisch:
			kritisch = true
		case SeverityWarnung:
			warnung = true
		}
	}

	if kritisch {
		return models.StatusKritisch
	}
	if k.TageInPhase >= 5 && k.Phase < 10 {
		return models.StatusKritisch
	}
	if len(k.FehlendeDokumente) >= 3 {
		return models.StatusKritisch
	}

	if warnung {
		return models.StatusWarnung
	}
	if k.TageInPhase >= 3 && k.Phase < 10 {
		return models.StatusWarnung
	}
	if len(k.FehlendeDokumente) > 0 {
		return models.StatusWarnung
	}

	return models.StatusOK
}
