package engine

import (
	"testing"

	"github.com/Brandea-ai/ck-immo-finanz/internal/models"
	"github.com/Brandea-ai/ck-immo-finanz/internal/phasen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErkenneStau_PortfolioImPlan(t *testing.T) {
	// Jede Phase exakt bei ihrer erwarteten Verweildauer: kein Stau.
	var kunden []models.Kunde
	for _, p := range phasen.Alle() {
		k := testKunde()
		k.Phase = p.ID
		k.TageInPhase = p.ExpectedDays
		kunden = append(kunden, *k)
	}

	assert.Empty(t, ErkenneStau(kunden))
}

func TestErkenneStau_ZweiTagePuffer(t *testing.T) {
	k := testKunde()
	k.Phase = 1 // erwartete Verweildauer: 1 Tag

	k.TageInPhase = 3 // genau erwartete + 2: noch kein Stau
	assert.Empty(t, ErkenneStau([]models.Kunde{*k}))

	k.TageInPhase = 4
	warnungen := ErkenneStau([]models.Kunde{*k})
	require.Len(t, warnungen, 1)
	assert.Equal(t, 1, warnungen[0].Phase)
	assert.Equal(t, 4, warnungen[0].TageInPhase)
}

func TestErkenneStau_NachbetreuungAusgenommen(t *testing.T) {
	k := testKunde()
	k.Phase = phasen.Letzte
	k.TageInPhase = 99

	assert.Empty(t, ErkenneStau([]models.Kunde{*k}))
}

func TestErkenneStau_GrundUndEmpfehlung(t *testing.T) {
	mitDocs := testKunde()
	mitDocs.Phase = 7
	mitDocs.TageInPhase = 8
	mitDocs.FehlendeDokumente = []string{"Kaufvertragsentwurf"}

	notartermin := testKunde()
	notartermin.Phase = 7
	notartermin.TageInPhase = 8

	bank := testKunde()
	bank.Phase = 8
	bank.TageInPhase = 6

	funkstille := testKunde()
	funkstille.Phase = 2
	funkstille.TageInPhase = 5

	faelle := []struct {
		kunde      *models.Kunde
		grund      string
		empfehlung string
	}{
		{mitDocs, "1 Dokumente fehlen", "Unterlagen erneut anfordern"},
		{notartermin, "Wartet auf Objektzusage/Notartermin", "Status beim Kunden erfragen"},
		{bank, "Möglicherweise Bank-Rückfragen", "Bei Bank nachfassen"},
		{funkstille, "Keine Aktivität", "Kunde kontaktieren"},
	}
	for _, f := range faelle {
		warnungen := ErkenneStau([]models.Kunde{*f.kunde})
		require.Len(t, warnungen, 1)
		assert.Equal(t, f.grund, warnungen[0].Grund)
		assert.Equal(t, f.empfehlung, warnungen[0].Empfehlung)
	}
}

func TestErkenneStau_SortiertNachDringlichkeit(t *testing.T) {
	var kunden []models.Kunde
	for _, tage := range []int{6, 14, 9} {
		k := testKunde()
		k.Phase = 2
		k.TageInPhase = tage
		kunden = append(kunden, *k)
	}

	warnungen := ErkenneStau(kunden)
	require.Len(t, warnungen, 3)
	assert.Equal(t, 14, warnungen[0].TageInPhase)
	assert.Equal(t, 9, warnungen[1].TageInPhase)
	assert.Equal(t, 6, warnungen[2].TageInPhase)
}
