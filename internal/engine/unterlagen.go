// Package engine enthält die reine Fallbewertung: Pflichtunterlagen,
// Red Flags, Status-Ampel, Phasen-Gate, Stau-Erkennung und KPIs.
// Alle Funktionen sind zustandslos und nebenwirkungsfrei; die Mutation
// der Fälle passiert in den Fachpaketen, die das Engine-Ergebnis schreiben.
package engine

import (
	"fmt"

	"github.com/Brandea-ai/ck-immo-finanz/internal/models"
)

// Pflichtunterlagen je Beschäftigungsart.
var unterlagenPerson = map[models.Beschaeftigung][]string{
	models.BeschaeftigungAngestellt: {
		"Personalausweis (Vorder- + Rückseite)",
		"Gehaltsnachweise (letzte 3 Monate)",
		"Arbeitsvertrag (unbefristet prüfen!)",
		"Kontoauszüge (letzte 3 Monate)",
		"Renteninformation",
		"Eigenkapitalnachweis",
	},
	models.BeschaeftigungSelbststaendig: {
		"Personalausweis (Vorder- + Rückseite)",
		"BWA (aktuell, max. 3 Monate alt)",
		"Jahresabschlüsse (letzte 2-3 Jahre)",
		"Einkommensteuerbescheide (letzte 2-3 Jahre)",
		"EÜR oder Bilanz",
		"Kontoauszüge (letzte 3 Monate, privat + geschäftlich)",
		"Krankenversicherungsnachweis",
		"Eigenkapitalnachweis",
	},
	models.BeschaeftigungVerbeamtet: {
		"Personalausweis (Vorder- + Rückseite)",
		"Bezügemitteilung (letzte 3 Monate)",
		"Ernennungsurkunde",
		"Kontoauszüge (letzte 3 Monate)",
		"Eigenkapitalnachweis",
	},
}

// Pflichtunterlagen je Objekttyp.
var unterlagenObjekt = map[models.Objekttyp][]string{
	models.ObjektETW: {
		"Exposé mit Grundriss",
		"Grundbuchauszug (max. 3 Monate alt)",
		"Teilungserklärung (VOLLSTÄNDIG mit allen Nachträgen!)",
		"Wohnflächenberechnung",
		"Energieausweis",
		"Kaufvertragsentwurf",
	},
	models.ObjektEFH: {
		"Exposé mit Grundriss",
		"Grundbuchauszug (max. 3 Monate alt)",
		"Flurkarte/Lageplan",
		"Wohnflächenberechnung",
		"Baupläne",
		"Energieausweis",
		"Kaufvertragsentwurf",
	},
	models.ObjektDHH: {
		"Exposé mit Grundriss",
		"Grundbuchauszug (max. 3 Monate alt)",
		"Teilungserklärung (falls vorhanden)",
		"Wohnflächenberechnung",
		"Baupläne",
		"Energieausweis",
		"Kaufvertragsentwurf",
	},
	models.ObjektMFH: {
		"Exposé mit Grundrissen aller Einheiten",
		"Grundbuchauszug (max. 3 Monate alt)",
		"Teilungserklärung (VOLLSTÄNDIG)",
		"Mieterliste mit Miethöhen",
		"Nebenkostenabrechnung",
		"Wohnflächenberechnung",
		"Energieausweis",
		"Kaufvertragsentwurf",
	},
	models.ObjektGrundstueck: {
		"Exposé",
		"Grundbuchauszug (max. 3 Monate alt)",
		"Flurkarte/Lageplan",
		"Bebauungsplan/Bauvoranfrage",
		"Kaufvertragsentwurf",
	},
	models.ObjektGewerbe: {
		"Exposé mit Grundriss",
		"Grundbuchauszug (max. 3 Monate alt)",
		"Mietvertrag/Pachtvertrag",
		"Flächenberechnung",
		"Energieausweis",
		"Kaufvertragsentwurf",
	},
}

// Zusätzliche Unterlagen bei Kapitalanlage.
var unterlagenKapitalanlage = []string{
	"Mietvertrag (aktuell)",
	"Mieterliste mit Miethöhen",
	"Hausgeldabrechnung (bei ETW)",
}

// Pflichtunterlagen liefert die vollständige, deduplizierte Unterlagenliste
// für einen Kunden. Unbekannte Beschäftigungsart oder Objekttyp sind ein
// Programmierfehler des Aufrufers und werden als Fehler gemeldet statt
// stillschweigend eine leere Liste zu liefern.
func Pflichtunterlagen(k *models.Kunde) ([]string, error) {
	person, ok := unterlagenPerson[k.Beschaeftigung]
	if !ok {
		return nil, fmt.Errorf("unbekannte Beschäftigungsart %q", k.Beschaeftigung)
	}
	objekt, ok := unterlagenObjekt[k.Objekttyp]
	if !ok {
		return nil, fmt.Errorf("unbekannter Objekttyp %q", k.Objekttyp)
	}

	docs := make([]string, 0, len(person)+len(objekt)+len(unterlagenKapitalanlage))
	docs = append(docs, person...)
	docs = append(docs, objekt...)
	if k.Nutzungsart == models.NutzungKapitalanlage {
		docs = append(docs, unterlagenKapitalanlage...)
	}

	// Deduplizieren, Reihenfolge des ersten Vorkommens bleibt erhalten.
	seen := make(map[string]struct{}, len(docs))
	out := docs[:0]
	for _, d := range docs {
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out, nil
}

// Unterlagenstatus fasst Pflicht- und Fehlliste mit Vollständigkeitsgrad zusammen.
type Unterlagenstatus struct {
	Pflicht      []string `json:"pflicht"`
	Fehlend      []string `json:"fehlend"`
	Vollstaendig int      `json:"vollstaendig"` // Prozent
}

// BerechneUnterlagenstatus prüft die Dokumentenvollständigkeit eines Falls.
// Die Fehlliste des Kunden ist maßgeblich; Einträge werden per beidseitigem
// Substring den Pflichtunterlagen zugeordnet.
func BerechneUnterlagenstatus(k *models.Kunde) (Unterlagenstatus, error) {
	pflicht, err := Pflichtunterlagen(k)
	if err != nil {
		return Unterlagenstatus{}, err
	}

	erhalten := 0
	for _, doc := range pflicht {
		fehlt := false
		for _, m := range k.FehlendeDokumente {
			if contains(doc, m) || contains(m, doc) {
				fehlt = true
				break
			}
		}
		if !fehlt {
			erhalten++
		}
	}

	prozent := 100
	if len(pflicht) > 0 {
		prozent = runden(float64(erhalten) / float64(len(pflicht)) * 100)
	}
	return Unterlagenstatus{
		Pflicht:      pflicht,
		Fehlend:      k.FehlendeDokumente,
		Vollstaendig: prozent,
	}, nil
}
