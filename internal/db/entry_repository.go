package db

import (
	"github.com/terraincognita07/headlog/internal/models"
	"gorm.io/gorm"
)

type EntryRepository struct {
	database *gorm.DB
}

func NewEntryRepository(database *gorm.DB) *EntryRepository {
	return &EntryRepository{database: database}
}

func (repo *EntryRepository) ListByUser(userID uint) ([]models.EntryRow, error) {
	rows := make([]models.EntryRow, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("date ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (repo *EntryRepository) FindByUserAndID(userID uint, id string) (models.EntryRow, bool, error) {
	row := models.EntryRow{}
	result := repo.database.
		Where("user_id = ? AND id = ?", userID, id).
		Limit(1).
		Find(&row)
	if result.Error != nil {
		return models.EntryRow{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.EntryRow{}, false, nil
	}
	return row, true, nil
}

func (repo *EntryRepository) Create(row *models.EntryRow) error {
	return repo.database.Create(row).Error
}

// Save rewrites every column of an existing row, clearing legacy columns.
func (repo *EntryRepository) Save(row *models.EntryRow) error {
	return repo.database.Model(&models.EntryRow{}).
		Where("user_id = ? AND id = ?", row.UserID, row.ID).
		Select("*").
		Omit("user_id", "id").
		Updates(row).Error
}

func (repo *EntryRepository) DeleteByUserAndID(userID uint, id string) (bool, error) {
	result := repo.database.Where("user_id = ? AND id = ?", userID, id).Delete(&models.EntryRow{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
