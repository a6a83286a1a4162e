package engine

import (
	"testing"

	"github.com/Brandea-ai/ck-immo-finanz/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestBerechneDetailKPIs_LeeresPortfolio(t *testing.T) {
	kpi := BerechneDetailKPIs(nil)

	assert.Zero(t, kpi.PipelineWert)
	assert.Zero(t, kpi.AktiveFaelle)
	assert.Zero(t, kpi.Abschluesse)
	assert.Zero(t, kpi.KritischeFaelle)
	assert.Zero(t, kpi.StauFaelle)
	assert.Zero(t, kpi.DurchlaufzeitPhase1bis3)

	// leere Grundmengen: Vollständigkeit 100%, Red-Flag-Rate 0%
	assert.Equal(t, 100, kpi.UnterlagenVollstaendig)
	assert.Equal(t, 0, kpi.RedFlagRate)

	assert.NotNil(t, kpi.FaelleProBerater)
	assert.NotNil(t, kpi.VolumenProBerater)
	assert.Empty(t, kpi.FaelleProBerater)
}

func TestBerechneDetailKPIs_GemischtesPortfolio(t *testing.T) {
	lead := testKunde()
	lead.Finanzierungsvolumen = 100000
	lead.BeraterID = 1

	problemfall := testKunde()
	problemfall.Phase = 3
	problemfall.TageInPhase = 7
	problemfall.FehlendeDokumente = []string{"Gehaltsnachweis Dezember", "Kontoauszug"}
	problemfall.Finanzierungsvolumen = 200000
	problemfall.BeraterID = 1

	abschluss := testKunde()
	abschluss.Phase = 11
	abschluss.TageInPhase = 30
	abschluss.Finanzierungsvolumen = 300000
	abschluss.BeraterID = 2

	kpi := BerechneDetailKPIs([]models.Kunde{*lead, *problemfall, *abschluss})

	// Pipeline zählt nur aktive Fälle, der Abschluss fällt raus
	assert.Equal(t, float64(300000), kpi.PipelineWert)
	assert.Equal(t, 2, kpi.AktiveFaelle)
	assert.Equal(t, 1, kpi.Abschluesse)
	assert.Equal(t, 1, kpi.NeueLeads)

	assert.Equal(t, 1, kpi.KritischeFaelle)
	assert.Equal(t, 0, kpi.Warnungen)
	assert.Equal(t, 2, kpi.OkFaelle) // Lead + abgeschlossener Fall

	assert.Equal(t, 1, kpi.StauFaelle)
	assert.Equal(t, 4, kpi.DurchlaufzeitPhase1bis3) // Mittel aus 0 und 7 Tagen, gerundet

	// einziger aktiver Fall ab Phase 3 hat offene Unterlagen
	assert.Equal(t, 0, kpi.UnterlagenVollstaendig)
	assert.Equal(t, 50, kpi.RedFlagRate)

	assert.Equal(t, map[uint]int{1: 2}, kpi.FaelleProBerater)
	assert.Equal(t, map[uint]float64{1: 300000}, kpi.VolumenProBerater)
}
