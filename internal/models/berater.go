package models

import "gorm.io/gorm"

// Berater ist ein Teammitglied. Fälle referenzieren den Berater
// über Kunde.BeraterID; der Berater hält keine eigene Fallliste.
type Berater struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"unique;not null" json:"email"`
	Telefon  string `json:"telefon"`
	Rolle    Rolle  `gorm:"size:20;not null;default:BERATER" json:"rolle"`
	Passwort string `json:"-"`
}
