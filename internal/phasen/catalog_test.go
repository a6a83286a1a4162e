package phasen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlle(t *testing.T) {
	alle := Alle()
	require.Len(t, alle, 11)

	for i, p := range alle {
		assert.Equal(t, i+1, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Beschreibung)
	}

	// Nachbetreuung ist offen, alle anderen Phasen haben ein Zeitziel
	for _, p := range alle[:10] {
		assert.Positive(t, p.ExpectedDays, "Phase %d", p.ID)
	}
	assert.Zero(t, alle[10].ExpectedDays)

	// Rückgabe ist eine Kopie
	alle[0].Name = "manipuliert"
	assert.Equal(t, "Lead & Erstkontakt", Alle()[0].Name)
}

func TestByID(t *testing.T) {
	p, ok := ByID(7)
	require.True(t, ok)
	assert.Equal(t, "Objektzusage & Konditionen", p.Name)
	assert.Equal(t, 5, p.ExpectedDays)

	_, ok = ByID(0)
	assert.False(t, ok)
	_, ok = ByID(12)
	assert.False(t, ok)
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(Erste))
	assert.True(t, Valid(Letzte))
	assert.False(t, Valid(0))
	assert.False(t, Valid(Letzte+1))
}
