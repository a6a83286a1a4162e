package engine

import (
	"fmt"

	"github.com/Brandea-ai/ck-immo-finanz/internal/models"
	"github.com/Brandea-ai/ck-immo-finanz/internal/phasen"
)

// Phasenwechsel beschreibt, ob ein Fall die aktuelle Phase verlassen kann.
type Phasenwechsel struct {
	Phase       int      `json:"phase"`
	CanAdvance  bool     `json:"canAdvance"`
	Blockers    []string `json:"blockers"`
	NextActions []string `json:"nextActions"`
}

// PruefePhasenwechsel wertet die Phasen-Regeltabelle gegen die Live-Daten
// des Falls aus. Harte Blocker gibt es nur in den Phasen 2, 3 und 8; alle
// anderen Phasen liefern rein beratende nächste Schritte. Phase 11 ist
// terminal und nie advanceable.
func PruefePhasenwechsel(k *models.Kunde) Phasenwechsel {
	blockers := []string{}
	nextActions := []string{}

	switch k.Phase {
	case 1: // Lead & Erstkontakt
		nextActions = append(nextActions,
			"Erstgespräch terminieren",
			"Kontaktdaten vervollständigen",
		)

	case 2: // Erstgespräch & Bedarfsklärung
		if k.NettoEinkommen == nil {
			blockers = append(blockers, "Einkommen nicht erfasst")
		}
		if k.Kaufpreis == nil {
			blockers = append(blockers, "Kaufpreis nicht erfasst")
		}
		nextActions = append(nextActions,
			"Unterlagenliste erstellen und versenden",
			"Bedarfsanalyse dokumentieren",
		)

	case 3: // Unterlagenprüfung & Analyse
		if n := len(k.FehlendeDokumente); n > 0 {
			blockers = append(blockers, fmt.Sprintf("%d Dokumente fehlen noch", n))
			nextActions = append(nextActions, "Fehlende Unterlagen anfordern")
		} else {
			nextActions = append(nextActions,
				"Selbstauskunft erstellen",
				"Bonität prüfen",
			)
		}

	case 4: // Selbstauskunft
		nextActions = append(nextActions,
			"Selbstauskunft an Kunden senden",
			"Telefonische Abstimmung zur Prüfung",
			"Unterschrift einholen",
		)

	case 5: // Finanzierungskonzept
		nextActions = append(nextActions,
			"Angebote über EuroPace einholen",
			"Konditionen vergleichen",
			"Empfehlung vorbereiten",
		)

	case 6: // Angebotsbesprechung
		nextActions = append(nextActions,
			"Angebotstermin vereinbaren",
			"Angebote mit Kunde besprechen",
			"Angebotsannahme einholen",
		)

	case 7: // Objektzusage & Konditionen
		nextActions = append(nextActions,
			"Auf Notartermin warten",
			"Konditionen bei Termin aktualisieren",
			"Erneute Angebotsannahme bei Änderung",
		)

	case 8: // Antrag & Unterlagen
		if len(k.FehlendeDokumente) > 0 {
			blockers = append(blockers, "Unterlagen unvollständig für Bankeinreichung")
		}
		nextActions = append(nextActions,
			"Finale Unterlagenprüfung",
			"Bei Bank einreichen",
			"Rückfragen klären",
		)

	case 9: // Kreditzusage & Vertrag
		nextActions = append(nextActions,
			"Kreditzusage prüfen",
			"Vertragsdetails erklären",
			"Beratungsprotokoll erstellen",
			"Unterschriftstermin",
		)

	case 10: // Abschluss & Auszahlung
		nextActions = append(nextActions,
			"Notartermin begleiten",
			"Auszahlung koordinieren",
			"Google-Bewertung anfragen",
		)

	case 11: // Nachbetreuung
		nextActions = append(nextActions,
			"Geburtstagsgruß planen",
			"Anschlussfinanzierung tracken",
			"Empfehlungen generieren",
		)
	}

	return Phasenwechsel{
		Phase:       k.Phase,
		CanAdvance:  len(blockers) == 0 && k.Phase < phasen.Letzte,
		Blockers:    blockers,
		NextActions: nextActions,
	}
}

// EmpfohleneAktion liefert die dringendste Einzel-Anweisung für den Fall:
// erst Blocker lösen, sonst der erste empfohlene Schritt.
func EmpfohleneAktion(k *models.Kunde) string {
	req := PruefePhasenwechsel(k)

	if len(req.Blockers) > 0 {
		return req.Blockers[0]
	}
	if len(req.NextActions) > 0 {
		return req.NextActions[0]
	}
	return "Status prüfen"
}
