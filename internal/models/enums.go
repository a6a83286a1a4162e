package models

import "fmt"

// Status ist die kanonische Ampel eines Falls.
// Die Alt-Darstellung green/yellow/red wird nur am DTO-Rand gemappt.
type Status string

const (
	StatusOK       Status = "ok"
	StatusWarnung  Status = "warnung"
	StatusKritisch Status = "kritisch"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOK, StatusWarnung, StatusKritisch:
		return true
	}
	return false
}

// Ampel liefert die Alt-Darstellung (green/yellow/red) für Clients,
// die noch das alte Vokabular sprechen.
func (s Status) Ampel() string {
	switch s {
	case StatusKritisch:
		return "red"
	case StatusWarnung:
		return "yellow"
	default:
		return "green"
	}
}

// StatusVonAmpel übersetzt das alte Vokabular zurück in den kanonischen Status.
func StatusVonAmpel(ampel string) (Status, error) {
	switch ampel {
	case "green":
		return StatusOK, nil
	case "yellow":
		return StatusWarnung, nil
	case "red":
		return StatusKritisch, nil
	}
	return "", fmt.Errorf("unbekannte Ampel %q", ampel)
}

// Beschaeftigung ist die Beschäftigungsart des Kunden.
type Beschaeftigung string

const (
	BeschaeftigungAngestellt     Beschaeftigung = "angestellt"
	BeschaeftigungSelbststaendig Beschaeftigung = "selbststaendig"
	BeschaeftigungVerbeamtet     Beschaeftigung = "verbeamtet"
)

func (b Beschaeftigung) Valid() bool {
	switch b {
	case BeschaeftigungAngestellt, BeschaeftigungSelbststaendig, BeschaeftigungVerbeamtet:
		return true
	}
	return false
}

// Objekttyp des zu finanzierenden Objekts.
type Objekttyp string

const (
	ObjektETW         Objekttyp = "ETW"
	ObjektEFH         Objekttyp = "EFH"
	ObjektDHH         Objekttyp = "DHH"
	ObjektMFH         Objekttyp = "MFH"
	ObjektGrundstueck Objekttyp = "Grundstück"
	ObjektGewerbe     Objekttyp = "Gewerbe"
)

func (o Objekttyp) Valid() bool {
	switch o {
	case ObjektETW, ObjektEFH, ObjektDHH, ObjektMFH, ObjektGrundstueck, ObjektGewerbe:
		return true
	}
	return false
}

// Nutzungsart: Eigennutzung oder Kapitalanlage.
type Nutzungsart string

const (
	NutzungEigennutzer   Nutzungsart = "eigennutzer"
	NutzungKapitalanlage Nutzungsart = "kapitalanlage"
)

func (n Nutzungsart) Valid() bool {
	return n == NutzungEigennutzer || n == NutzungKapitalanlage
}

// Rolle im Team.
type Rolle string

const (
	RolleGF       Rolle = "GF"
	RolleBerater  Rolle = "BERATER"
	RolleAzubi    Rolle = "AZUBI"
	RolleAushilfe Rolle = "AUSHILFE"
)

func (r Rolle) Valid() bool {
	switch r {
	case RolleGF, RolleBerater, RolleAzubi, RolleAushilfe:
		return true
	}
	return false
}

// AktivitaetsTyp eines Protokolleintrags.
type AktivitaetsTyp string

const (
	AktivitaetNotiz         AktivitaetsTyp = "notiz"
	AktivitaetAnruf         AktivitaetsTyp = "anruf"
	AktivitaetEmail         AktivitaetsTyp = "email"
	AktivitaetWhatsApp      AktivitaetsTyp = "whatsapp"
	AktivitaetDokument      AktivitaetsTyp = "dokument"
	AktivitaetStatuswechsel AktivitaetsTyp = "statuswechsel"
	AktivitaetPhasenwechsel AktivitaetsTyp = "phasenwechsel"
)

func (t AktivitaetsTyp) Valid() bool {
	switch t {
	case AktivitaetNotiz, AktivitaetAnruf, AktivitaetEmail, AktivitaetWhatsApp,
		AktivitaetDokument, AktivitaetStatuswechsel, AktivitaetPhasenwechsel:
		return true
	}
	return false
}

// DokumentStatus eines einzelnen Checklisten-Dokuments.
type DokumentStatus string

const (
	DokumentVorhanden DokumentStatus = "vorhanden"
	DokumentFehlend   DokumentStatus = "fehlend"
	DokumentPruefung  DokumentStatus = "pruefung"
	DokumentAbgelehnt DokumentStatus = "abgelehnt"
)

func (d DokumentStatus) Valid() bool {
	switch d {
	case DokumentVorhanden, DokumentFehlend, DokumentPruefung, DokumentAbgelehnt:
		return true
	}
	return false
}
