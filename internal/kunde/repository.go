package kunde

import (
	"github.com/Brandea-ai/ck-immo-finanz/internal/models"
	"gorm.io/gorm"
)

// Filter für die Fallliste; Nullwerte bedeuten "alle".
type Filter struct {
	Status    models.Status
	BeraterID uint
	Phase     int
	Suche     string
}

type Repository interface {
	Speichern(db *gorm.DB, k *models.Kunde) error
	ListeAlle(db *gorm.DB) ([]models.Kunde, error)
	ListeGefiltert(db *gorm.DB, f Filter) ([]models.Kunde, error)
	ListeNachBerater(db *gorm.DB, beraterID uint) ([]models.Kunde, error)
	ListeNachPhase(db *gorm.DB, phase int) ([]models.Kunde, error)
	FindeNachID(db *gorm.DB, id uint) (*models.Kunde, error)
	Aktualisieren(db *gorm.DB, k *models.Kunde) error
	Loeschen(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Speichern(db *gorm.DB, k *models.Kunde) error {
	return db.Create(k).Error
}

func (r *repositoryImpl) ListeAlle(db *gorm.DB) ([]models.Kunde, error) {
	var list []models.Kunde
	err := db.
		Preload("Aktivitaeten").
		Preload("Dokumente").
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListeGefiltert(db *gorm.DB, f Filter) ([]models.Kunde, error) {
	q := db.Preload("Aktivitaeten").Preload("Dokumente")
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.BeraterID != 0 {
		q = q.Where("berater_id = ?", f.BeraterID)
	}
	if f.Phase != 0 {
		q = q.Where("phase = ?", f.Phase)
	}
	if f.Suche != "" {
		muster := "%" + f.Suche + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ? OR telefon LIKE ?", muster, muster, muster)
	}

	var list []models.Kunde
	err := q.Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListeNachBerater(db *gorm.DB, beraterID uint) ([]models.Kunde, error) {
	var list []models.Kunde
	err := db.
		Where("berater_id = ?", beraterID).
		Preload("Aktivitaeten").
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListeNachPhase(db *gorm.DB, phase int) ([]models.Kunde, error) {
	var list []models.Kunde
	err := db.Where("phase = ?", phase).Find(&list).Error
	return list, err
}

func (r *repositoryImpl) FindeNachID(db *gorm.DB, id uint) (*models.Kunde, error) {
	var k models.Kunde
	err := db.
		Preload("Aktivitaeten").
		Preload("Dokumente").
		First(&k, id).Error
	return &k, err
}

func (r *repositoryImpl) Aktualisieren(db *gorm.DB, k *models.Kunde) error {
	return db.Save(k).Error
}

func (r *repositoryImpl) Loeschen(db *gorm.DB, id uint) error {
	return db.Delete(&models.Kunde{}, id).Error
}
