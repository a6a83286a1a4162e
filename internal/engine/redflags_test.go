package engine

import (
	"testing"

	"github.com/Brandea-ai/ck-immo-finanz/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fl(v float64) *float64 { return &v }

// testKunde liefert einen unauffälligen Fall ohne aktive Regeln.
func testKunde() *models.Kunde {
	return &models.Kunde{
		Name:                 "Testkunde",
		Finanzierungsvolumen: 400000,
		Objekttyp:            models.ObjektEFH,
		Nutzungsart:          models.NutzungEigennutzer,
		Beschaeftigung:       models.BeschaeftigungAngestellt,
		Phase:                1,
		TageInPhase:          0,
		FehlendeDokumente:    []string{},
	}
}

func flagIDs(flags []RedFlag) []string {
	ids := make([]string, 0, len(flags))
	for _, f := range flags {
		ids = append(ids, f.ID)
	}
	return ids
}

func TestErkenneRedFlags_UnauffaelligerFall(t *testing.T) {
	assert.Empty(t, ErkenneRedFlags(testKunde()))
}

func TestErkenneRedFlags_DokumenteUeberfaellig(t *testing.T) {
	k := testKunde()
	k.Phase = 9 // erwartete 5 Tage, 5 > 5 ist falsch: kein phase_stuck
	k.TageInPhase = 5
	k.FehlendeDokumente = []string{"Gehaltsnachweis Dezember", "Kontoauszug"}

	flags := ErkenneRedFlags(k)
	require.Len(t, flags, 1)
	assert.Equal(t, "docs_overdue", flags[0].ID)
	assert.Equal(t, SeverityKritisch, flags[0].Severity)
	assert.Equal(t, "Unterlagen", flags[0].Kategorie)
	assert.Equal(t, "2 Dokumente fehlen seit 5 Tagen", flags[0].Message)
}

func TestErkenneRedFlags_DokumenteUnterFuenfTagen(t *testing.T) {
	k := testKunde()
	k.Phase = 9
	k.TageInPhase = 4
	k.FehlendeDokumente = []string{"Kontoauszug"}

	assert.NotContains(t, flagIDs(ErkenneRedFlags(k)), "docs_overdue")
}

func TestErkenneRedFlags_PhasenStau(t *testing.T) {
	k := testKunde()
	k.Phase = 1 // erwartete Verweildauer: 1 Tag

	k.TageInPhase = 4
	flags := ErkenneRedFlags(k)
	require.Len(t, flags, 1)
	assert.Equal(t, "phase_stuck", flags[0].ID)
	assert.Equal(t, SeverityWarnung, flags[0].Severity)

	k.TageInPhase = 5
	flags = ErkenneRedFlags(k)
	require.Len(t, flags, 1)
	assert.Equal(t, SeverityKritisch, flags[0].Severity)
}

func TestErkenneRedFlags_KeinStauAbPhase10(t *testing.T) {
	k := testKunde()
	k.Phase = 10
	k.TageInPhase = 30

	assert.Empty(t, ErkenneRedFlags(k))
}

func TestErkenneRedFlags_BWANurFuerSelbststaendige(t *testing.T) {
	k := testKunde()
	k.Beschaeftigung = models.BeschaeftigungSelbststaendig
	k.FehlendeDokumente = []string{"BWA (aktuell, max. 3 Monate alt)"}

	flags := ErkenneRedFlags(k)
	require.Len(t, flags, 1)
	assert.Equal(t, "bwa_missing", flags[0].ID)
	assert.Equal(t, SeverityKritisch, flags[0].Severity)
	assert.Equal(t, "Bonität", flags[0].Kategorie)

	k.Beschaeftigung = models.BeschaeftigungAngestellt
	assert.Empty(t, ErkenneRedFlags(k))
}

func TestErkenneRedFlags_TeilungserklaerungBeiETW(t *testing.T) {
	k := testKunde()
	k.Objekttyp = models.ObjektETW
	k.FehlendeDokumente = []string{"Nachtrag 2 zur Teilungserklärung"}

	flags := ErkenneRedFlags(k)
	require.Len(t, flags, 1)
	assert.Equal(t, "te_incomplete", flags[0].ID)
	assert.Equal(t, "Objekt", flags[0].Kategorie)

	// gleicher Fehlbestand, aber kein ETW
	k.Objekttyp = models.ObjektEFH
	assert.Empty(t, ErkenneRedFlags(k))
}

func TestErkenneRedFlags_EigenkapitalGrenzen(t *testing.T) {
	k := testKunde()
	k.Eigenkapital = fl(45000)
	k.Kaufpreis = fl(500000) // exakt 9%

	flags := ErkenneRedFlags(k)
	require.Len(t, flags, 1)
	assert.Equal(t, "ek_low", flags[0].ID)
	assert.Equal(t, SeverityWarnung, flags[0].Severity)
	assert.Equal(t, "Eigenkapital nur 9.0% - unter 10%", flags[0].Message)

	// unter 5%: beide Flags gleichzeitig
	k.Eigenkapital = fl(20000) // 4%
	flags = ErkenneRedFlags(k)
	require.Len(t, flags, 2)
	assert.ElementsMatch(t, []string{"ek_low", "ek_critical"}, flagIDs(flags))
}

func TestErkenneRedFlags_EinkommensfaktorGrenze(t *testing.T) {
	k := testKunde()
	k.NettoEinkommen = fl(10000)

	// Faktor exakt 8.0: Regel verlangt strikt größer 8
	k.Finanzierungsvolumen = 960000
	assert.Empty(t, ErkenneRedFlags(k))

	k.Finanzierungsvolumen = 970000 // Faktor ~8.08
	flags := ErkenneRedFlags(k)
	require.Len(t, flags, 1)
	assert.Equal(t, "income_ratio", flags[0].ID)
	assert.Equal(t, SeverityWarnung, flags[0].Severity)
	assert.Equal(t, "Finanzierung 8.1x Jahreseinkommen - prüfen", flags[0].Message)

	k.Finanzierungsvolumen = 1300000 // Faktor ~10.8
	flags = ErkenneRedFlags(k)
	require.Len(t, flags, 1)
	assert.Equal(t, SeverityKritisch, flags[0].Severity)
}

func TestErkenneRedFlags_OptionaleFelderFehlen(t *testing.T) {
	// Ohne Eigenkapital/Kaufpreis/Einkommen greifen die Quoten-Regeln
	// schlicht nicht; es gibt keinen Fehler.
	k := testKunde()
	k.Finanzierungsvolumen = 2000000
	assert.Empty(t, ErkenneRedFlags(k))
}

func TestErkenneRedFlags_Idempotent(t *testing.T) {
	k := testKunde()
	k.Phase = 3
	k.TageInPhase = 7
	k.FehlendeDokumente = []string{"Kontoauszug", "Gehaltsnachweis"}
	k.Eigenkapital = fl(20000)
	k.Kaufpreis = fl(500000)

	erster := ErkenneRedFlags(k)
	zweiter := ErkenneRedFlags(k)
	assert.Equal(t, erster, zweiter)
}
