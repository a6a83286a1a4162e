package berater

import (
	"github.com/Brandea-ai/ck-immo-finanz/internal/models"
	"gorm.io/gorm"
)

type Repository interface {
	Speichern(db *gorm.DB, b *models.Berater) error
	ListeAlle(db *gorm.DB) ([]models.Berater, error)
	FindeNachID(db *gorm.DB, id uint) (*models.Berater, error)
	FindeNachEmail(db *gorm.DB, email string) (*models.Berater, error)
	Aktualisieren(db *gorm.DB, b *models.Berater) error
	Loeschen(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Speichern(db *gorm.DB, b *models.Berater) error {
	return db.Create(b).Error
}

func (r *repositoryImpl) ListeAlle(db *gorm.DB) ([]models.Berater, error) {
	var list []models.Berater
	err := db.Order("id asc").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) FindeNachID(db *gorm.DB, id uint) (*models.Berater, error) {
	var b models.Berater
	err := db.First(&b, id).Error
	return &b, err
}

func (r *repositoryImpl) FindeNachEmail(db *gorm.DB, email string) (*models.Berater, error) {
	var b models.Berater
	err := db.Where("email = ?", email).First(&b).Error
	return &b, err
}

func (r *repositoryImpl) Aktualisieren(db *gorm.DB, b *models.Berater) error {
	return db.Save(b).Error
}

func (r *repositoryImpl) Loeschen(db *gorm.DB, id uint) error {
	return db.Delete(&models.Berater{}, id).Error
}
