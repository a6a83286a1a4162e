// Package phasen hält den statischen Katalog der 11 Prozessphasen
// aus dem Prozess A-Z.
package phasen

// Phase beschreibt eine Prozessstufe mit erwarteter Verweildauer.
type Phase struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Beschreibung string `json:"beschreibung"`
	ExpectedDays int    `json:"expectedDays"`
}

const (
	// Erste und letzte Phase des Prozesses.
	Erste  = 1
	Letzte = 11
)

var katalog = []Phase{
	{1, "Lead & Erstkontakt", "Anfrage über Website, Empfehlung oder Direktkontakt. Zeitnahe telefonische Kontaktaufnahme.", 1},
	{2, "Erstgespräch & Bedarfsklärung", "Analyse des Finanzierungsvorhabens: Einkommen, Eigenkapital, Objekt, Ziele und Risiken.", 2},
	{3, "Unterlagenprüfung & Analyse", "Prüfung auf Vollständigkeit und Werthaltigkeit. Analyse der Bonität und des Objekts.", 3},
	{4, "Selbstauskunft", "Selbstauskunft wird erstellt und dem Kunden zur Prüfung und Unterschrift zugesendet.", 2},
	{5, "Finanzierungskonzept", "Ausarbeitung der Finanzierungsstruktur über EuroPace. Vergleich passender Angebote.", 2},
	{6, "Angebotsbesprechung", "Durchsprache der Angebote mit dem Kunden. Anpassungen und Angebotsannahme.", 2},
	{7, "Objektzusage & Konditionen", "Abwarten der Objektzusage. Aktualisierung der Konditionen bei Notartermin.", 5},
	{8, "Antrag & Unterlagen", "Finale Überprüfung aller Unterlagen. Einreichung bei der Bank.", 3},
	{9, "Kreditzusage & Vertrag", "Prüfung der Kreditzusage und Vertragskonditionen. Beratungsprotokoll.", 5},
	{10, "Abschluss & Auszahlung", "Notarielle Abwicklung. Auszahlung nach Fälligkeitsvoraussetzungen.", 10},
	{11, "Nachbetreuung", "Aktive Nachbetreuung: Geburtstage, Updates, Anschlussfinanzierung.", 0},
}

// Alle liefert den vollständigen Katalog in Prozessreihenfolge.
func Alle() []Phase {
	out := make([]Phase, len(katalog))
	copy(out, katalog)
	return out
}

// ByID liefert die Phase zu einer ID.
func ByID(id int) (Phase, bool) {
	if !Valid(id) {
		return Phase{}, false
	}
	return katalog[id-1], true
}

// Valid meldet, ob id eine gültige Phasen-ID ist.
func Valid(id int) bool {
	return id >= Erste && id <= Letzte
}
