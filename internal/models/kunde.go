package models

import (
	"time"

	"gorm.io/gorm"
)

// Kunde ist ein Finanzierungsfall im 11-Phasen-Prozess.
type Kunde struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Name    string `gorm:"not null" json:"name"`
	Email   string `json:"email"`
	Telefon string `json:"telefon"`
	Adresse string `json:"adresse,omitempty"`

	// Finanzierung
	Finanzierungsvolumen float64  `gorm:"not null" json:"finanzierungsvolumen"`
	Eigenkapital         *float64 `json:"eigenkapital,omitempty"`
	Kaufpreis            *float64 `json:"kaufpreis,omitempty"`

	// Objekt
	Objekttyp     Objekttyp   `gorm:"size:20;not null" json:"objekttyp"`
	Objektadresse string      `json:"objektadresse,omitempty"`
	Nutzungsart   Nutzungsart `gorm:"size:20;not null" json:"nutzungsart"`
	Wohnflaeche   *float64    `json:"wohnflaeche,omitempty"`

	// Einkommen
	Beschaeftigung Beschaeftigung `gorm:"size:20;not null" json:"beschaeftigung"`
	NettoEinkommen *float64       `json:"nettoEinkommen,omitempty"`
	Arbeitgeber    string         `json:"arbeitgeber,omitempty"`

	// Prozess
	Phase       int    `gorm:"not null;default:1" json:"phase"`
	Status      Status `gorm:"size:10;not null;default:ok" json:"status"`
	BeraterID   uint   `gorm:"index" json:"beraterId"`
	TageInPhase int    `gorm:"not null;default:0" json:"tageInPhase"`

	// Tracking
	NaechsteAktion    string   `json:"naechsteAktion"`
	FehlendeDokumente []string `gorm:"type:jsonb;serializer:json" json:"fehlendeDokumente"`
	RedFlags          []string `gorm:"type:jsonb;serializer:json" json:"redFlags"`

	Aktivitaeten []Aktivitaet `gorm:"foreignKey:KundeID;constraint:OnDelete:CASCADE" json:"aktivitaeten"`
	Dokumente    []Dokument   `gorm:"foreignKey:KundeID;constraint:OnDelete:CASCADE" json:"dokumente"`
}

// Aktivitaet ist ein Eintrag im Fallprotokoll. Append-only:
// Einträge werden nie geändert oder gelöscht.
type Aktivitaet struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	KundeID uint           `gorm:"not null;index" json:"kundeId"`
	Typ     AktivitaetsTyp `gorm:"size:20;not null" json:"typ"`
	Inhalt  string         `gorm:"not null" json:"inhalt"`
	// BeraterID des Verfassers; 0 bedeutet "system".
	BeraterID uint `json:"beraterId"`
	System    bool `json:"system"`
}

// Dokument ist ein Eintrag der Unterlagen-Checkliste eines Falls.
type Dokument struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	KundeID uint           `gorm:"not null;index" json:"kundeId"`
	Name    string         `gorm:"not null" json:"name"`
	Status  DokumentStatus `gorm:"size:20;not null;default:fehlend" json:"status"`
	Notiz   string         `json:"notiz,omitempty"`
}
