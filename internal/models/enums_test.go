package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusAmpelRundreise(t *testing.T) {
	for _, s := range []Status{StatusOK, StatusWarnung, StatusKritisch} {
		zurueck, err := StatusVonAmpel(s.Ampel())
		require.NoError(t, err)
		assert.Equal(t, s, zurueck)
	}
}

func TestStatusVonAmpel_Unbekannt(t *testing.T) {
	_, err := StatusVonAmpel("blue")
	assert.Error(t, err)
}

func TestEnumValidierung(t *testing.T) {
	assert.True(t, StatusWarnung.Valid())
	assert.False(t, Status("gelb").Valid())

	assert.True(t, BeschaeftigungVerbeamtet.Valid())
	assert.False(t, Beschaeftigung("freiberuflich").Valid())

	assert.True(t, ObjektGrundstueck.Valid())
	assert.False(t, Objekttyp("Schloss").Valid())

	assert.True(t, NutzungKapitalanlage.Valid())
	assert.False(t, Nutzungsart("gewerblich").Valid())

	assert.True(t, RolleGF.Valid())
	assert.False(t, Rolle("PRAKTIKANT").Valid())

	assert.True(t, AktivitaetWhatsApp.Valid())
	assert.False(t, AktivitaetsTyp("fax").Valid())

	assert.True(t, DokumentPruefung.Valid())
	assert.False(t, DokumentStatus("verloren").Valid())
}
