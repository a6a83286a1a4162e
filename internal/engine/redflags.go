package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/Brandea-ai/ck-immo-finanz/internal/models"
	"github.com/Brandea-ai/ck-immo-finanz/internal/phasen"
)

// Severity einer Red Flag.
type Severity string

const (
	SeverityWarnung  Severity = "warning"
	SeverityKritisch Severity = "critical"
)

// RedFlag ist ein transient berechnetes Risikosignal. Sie wird nie
// persistiert, sondern bei jeder Bewertung neu abgeleitet.
type RedFlag struct {
	ID        string   `json:"id"`
	Message   string   `json:"message"`
	Severity  Severity `json:"severity"`
	Kategorie string   `json:"kategorie"`
}

// ErkenneRedFlags prüft alle sechs Red-Flag-Regeln gegen einen Fall.
// Fehlende optionale Felder sind kein Fehler: die betroffene Regel
// greift dann schlicht nicht.
func ErkenneRedFlags(k *models.Kunde) []RedFlag {
	var flags []RedFlag

	// 1. Dokumente fehlen länger als 5 Tage
	if len(k.FehlendeDokumente) > 0 && k.TageInPhase >= 5 {
		flags = append(flags, RedFlag{
			ID:        "docs_overdue",
			Message:   fmt.Sprintf("%d Dokumente fehlen seit %d Tagen", len(k.FehlendeDokumente), k.TageInPhase),
			Severity:  SeverityKritisch,
			Kategorie: "Unterlagen",
		})
	}

	// 2. Stau in Phase (> 3 Tage ohne Fortschritt)
	if k.TageInPhase >= 3 && k.Phase < 10 {
		if phase, ok := phasen.ByID(k.Phase); ok && k.TageInPhase > phase.ExpectedDays {
			sev := SeverityWarnung
			if k.TageInPhase >= 5 {
				sev = SeverityKritisch
			}
			flags = append(flags, RedFlag{
				ID:        "phase_stuck",
				Message:   fmt.Sprintf("Überschreitet erwartete %d Tage in Phase %d", phase.ExpectedDays, k.Phase),
				Severity:  sev,
				Kategorie: "Prozess",
			})
		}
	}

	// 3. Selbstständige ohne aktuelle BWA
	if k.Beschaeftigung == models.BeschaeftigungSelbststaendig && fehltDokument(k, "bwa") {
		flags = append(flags, RedFlag{
			ID:        "bwa_missing",
			Message:   "BWA fehlt - kritisch für Selbstständige",
			Severity:  SeverityKritisch,
			Kategorie: "Bonität",
		})
	}

	// 4. Teilungserklärung mit Nachträgen prüfen (bei ETW)
	if k.Objekttyp == models.ObjektETW && (fehltDokument(k, "teilungserklärung") || fehltDokument(k, "nachtrag")) {
		flags = append(flags, RedFlag{
			ID:        "te_incomplete",
			Message:   "Teilungserklärung unvollständig - Nachträge prüfen!",
			Severity:  SeverityKritisch,
			Kategorie: "Objekt",
		})
	}

	// 5. Hohes Finanzierungsvolumen ohne ausreichend Eigenkapital.
	// Unter 5% feuern beide Flags gleichzeitig.
	if k.Eigenkapital != nil && k.Kaufpreis != nil && *k.Kaufpreis > 0 {
		quote := *k.Eigenkapital / *k.Kaufpreis * 100
		if quote < 10 {
			flags = append(flags, RedFlag{
				ID:        "ek_low",
				Message:   fmt.Sprintf("Eigenkapital nur %.1f%% - unter 10%%", quote),
				Severity:  SeverityWarnung,
				Kategorie: "Bonität",
			})
		}
		if quote < 5 {
			flags = append(flags, RedFlag{
				ID:        "ek_critical",
				Message:   fmt.Sprintf("Eigenkapital kritisch niedrig (%.1f%%)", quote),
				Severity:  SeverityKritisch,
				Kategorie: "Bonität",
			})
		}
	}

	// 6. Finanzierungsvolumen vs. Einkommen (Faktor strikt > 8)
	if k.NettoEinkommen != nil && *k.NettoEinkommen > 0 && k.Finanzierungsvolumen > 0 {
		faktor := k.Finanzierungsvolumen / (*k.NettoEinkommen * 12)
		if faktor > 8 {
			sev := SeverityWarnung
			if faktor > 10 {
				sev = SeverityKritisch
			}
			flags = append(flags, RedFlag{
				ID:        "income_ratio",
				Message:   fmt.Sprintf("Finanzierung %.1fx Jahreseinkommen - prüfen", faktor),
				Severity:  sev,
				Kategorie: "Bonität",
			})
		}
	}

	return flags
}

// RedFlagTexte liefert nur die Meldungen, für die Anzeige am Fall.
func RedFlagTexte(k *models.Kunde) []string {
	flags := ErkenneRedFlags(k)
	out := make([]string, 0, len(flags))
	for _, f := range flags {
		out = append(out, f.Message)
	}
	return out
}

func fehltDokument(k *models.Kunde, substr string) bool {
	for _, d := range k.FehlendeDokumente {
		if strings.Contains(strings.ToLower(d), substr) {
			return true
		}
	}
	return false
}

func contains(s, sub string) bool {
	return strings.Contains(s, sub)
}

// runden entspricht kaufmännischem Runden auf ganze Zahlen.
func runden(f float64) int {
	return int(math.Round(f))
}
