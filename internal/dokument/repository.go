package dokument

import (
	"github.com/Brandea-ai/ck-immo-finanz/internal/models"
	"gorm.io/gorm"
)

type Repository interface {
	Anlegen(db *gorm.DB, d *models.Dokument) error
	ListeNachKunde(db *gorm.DB, kundeID uint) ([]models.Dokument, error)
	FindeNachID(db *gorm.DB, id uint) (*models.Dokument, error)
	Aktualisieren(db *gorm.DB, d *models.Dokument) error
	Loeschen(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Anlegen(db *gorm.DB, d *models.Dokument) error {
	return db.Create(d).Error
}

func (r *repositoryImpl) ListeNachKunde(db *gorm.DB, kundeID uint) ([]models.Dokument, error) {
	var list []models.Dokument
	err := db.
		Where("kunde_id = ?", kundeID).
		Order("id asc").
		Find(&list).Error
	return list, err
}

func (r *repositoryImpl) FindeNachID(db *gorm.DB, id uint) (*models.Dokument, error) {
	var d models.Dokument
	err := db.First(&d, id).Error
	return &d, err
}

func (r *repositoryImpl) Aktualisieren(db *gorm.DB, d *models.Dokument) error {
	return db.Save(d).Error
}

func (r *repositoryImpl) Loeschen(db *gorm.DB, id uint) error {
	return db.Delete(&models.Dokument{}, id).Error
}
