// Package seed legt beim ersten Start Demo-Daten an (Team + Beispiel-
// Fälle), gesteuert über SEED_DEMO=true.
package seed

import (
	"log"

	"github.com/Brandea-ai/ck-immo-finanz/internal/engine"
	"github.com/Brandea-ai/ck-immo-finanz/internal/models"
	"github.com/Brandea-ai/ck-immo-finanz/internal/utils"
	"gorm.io/gorm"
)

func f(v float64) *float64 { return &v }

// Run befüllt eine leere Datenbank mit dem Demo-Team und Beispiel-Fällen.
// Existieren bereits Berater, passiert nichts.
func Run(db *gorm.DB) error {
	var anzahl int64
	if err := db.Model(&models.Berater{}).Count(&anzahl).Error; err != nil {
		return err
	}
	if anzahl > 0 {
		return nil
	}

	hash, err := utils.HashPasswort("wechselmich")
	if err != nil {
		return err
	}

	team := []models.Berater{
		{Name: "Christian Keller", Email: "keller@ck-immo.de", Telefon: "+49 123 456789", Rolle: models.RolleGF, Passwort: hash},
		{Name: "Sarah Weber", Email: "weber@ck-immo.de", Telefon: "+49 123 456780", Rolle: models.RolleBerater, Passwort: hash},
		{Name: "Thomas Schmidt", Email: "schmidt@ck-immo.de", Telefon: "+49 123 456781", Rolle: models.RolleBerater, Passwort: hash},
		{Name: "Lisa Müller", Email: "mueller@ck-immo.de", Telefon: "+49 123 456782", Rolle: models.RolleBerater, Passwort: hash},
		{Name: "Markus Wagner", Email: "wagner@ck-immo.de", Telefon: "+49 123 456783", Rolle: models.RolleBerater, Passwort: hash},
		{Name: "Eray", Email: "eray@ck-immo.de", Telefon: "+49 123 456784", Rolle: models.RolleAzubi, Passwort: hash},
		{Name: "Oguzhan", Email: "oguzhan@ck-immo.de", Telefon: "+49 123 456785", Rolle: models.RolleAushilfe, Passwort: hash},
	}
	if err := db.Create(&team).Error; err != nil {
		return err
	}

	kunden := []models.Kunde{
		{
			Name:                 "Michael Weber",
			Email:                "m.weber@email.de",
			Telefon:              "+49 171 1234567",
			Adresse:              "Musterstraße 1, 60311 Frankfurt",
			Finanzierungsvolumen: 890000,
			Eigenkapital:         f(150000),
			Kaufpreis:            f(920000),
			Objekttyp:            models.ObjektETW,
			Objektadresse:        "Parkstraße 15, 60322 Frankfurt",
			Nutzungsart:          models.NutzungEigennutzer,
			Wohnflaeche:          f(120),
			Beschaeftigung:       models.BeschaeftigungAngestellt,
			NettoEinkommen:       f(6500),
			Arbeitgeber:          "Deutsche Bank AG",
			Phase:                3,
			BeraterID:            team[1].ID,
			TageInPhase:          7,
			FehlendeDokumente:    []string{"Gehaltsnachweis Dezember", "Kontoauszug"},
		},
		{
			Name:                 "Anna Schneider",
			Email:                "a.schneider@email.de",
			Telefon:              "+49 172 2345678",
			Finanzierungsvolumen: 650000,
			Eigenkapital:         f(100000),
			Kaufpreis:            f(680000),
			Objekttyp:            models.ObjektEFH,
			Objektadresse:        "Waldweg 8, 65189 Wiesbaden",
			Nutzungsart:          models.NutzungEigennutzer,
			Wohnflaeche:          f(145),
			Beschaeftigung:       models.BeschaeftigungAngestellt,
			NettoEinkommen:       f(5200),
			Arbeitgeber:          "Lufthansa AG",
			Phase:                5,
			BeraterID:            team[2].ID,
			TageInPhase:          2,
			FehlendeDokumente:    []string{},
		},
		{
			Name:                 "Peter Hoffmann",
			Email:                "p.hoffmann@email.de",
			Telefon:              "+49 173 3456789",
			Finanzierungsvolumen: 1200000,
			Eigenkapital:         f(300000),
			Kaufpreis:            f(1350000),
			Objekttyp:            models.ObjektMFH,
			Objektadresse:        "Hauptstraße 42, 63065 Offenbach",
			Nutzungsart:          models.NutzungKapitalanlage,
			Wohnflaeche:          f(280),
			Beschaeftigung:       models.BeschaeftigungSelbststaendig,
			NettoEinkommen:       f(12000),
			Arbeitgeber:          "Selbstständig - IT Beratung",
			Phase:                6,
			BeraterID:            team[1].ID,
			TageInPhase:          4,
			FehlendeDokumente:    []string{"BWA aktuell"},
		},
		{
			Name:                 "Frank Schulz",
			Email:                "f.schulz@email.de",
			Telefon:              "+49 171 1122334",
			Finanzierungsvolumen: 560000,
			Eigenkapital:         f(110000),
			Kaufpreis:            f(590000),
			Objekttyp:            models.ObjektEFH,
			Objektadresse:        "Eichenallee 12, 65719 Hofheim",
			Nutzungsart:          models.NutzungEigennutzer,
			Wohnflaeche:          f(125),
			Beschaeftigung:       models.BeschaeftigungAngestellt,
			NettoEinkommen:       f(4800),
			Arbeitgeber:          "Siemens AG",
			Phase:                11,
			BeraterID:            team[2].ID,
			TageInPhase:          30,
			FehlendeDokumente:    []string{},
		},
	}

	for i := range kunden {
		k := &kunden[i]
		k.Status = engine.BerechneStatus(k)
		k.NaechsteAktion = engine.EmpfohleneAktion(k)
		k.RedFlags = engine.RedFlagTexte(k)
		if err := db.Create(k).Error; err != nil {
			return err
		}
		if err := db.Create(&models.Aktivitaet{
			KundeID: k.ID,
			Typ:     models.AktivitaetNotiz,
			Inhalt:  "Kunde angelegt (Demo-Daten)",
			System:  true,
		}).Error; err != nil {
			return err
		}
	}

	log.Printf("Demo-Daten angelegt: %d Berater, %d Kunden", len(team), len(kunden))
	return nil
}
