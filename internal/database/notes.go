package database

import (
	"NoteKeeperBot/internal/database/models"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Category operations

func CreateCategory(name string) (*models.Category, error) {
	db := GetConnect()

	category := &models.Category{Name: name}

	result := db.Create(category)
	if result.Error != nil {
		return nil, result.Error
	}

	return category, nil
}

// SearchCategoriesByName returns every category matching the name, which is
// zero or one row while the unique index holds.
func SearchCategoriesByName(name string) ([]models.Category, error) {
	db := GetConnect()

	var categories []models.Category
	result := db.Where("name = ?", name).Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}

	return categories, nil
}

// FindCategoryByName expects exactly one match. Zero matches return
// gorm.ErrRecordNotFound; more than one is an error as well.
func FindCategoryByName(name string) (*models.Category, error) {
	db := GetConnect()

	var categories []models.Category
	result := db.Where("name = ?", name).Limit(2).Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}

	switch len(categories) {
	case 0:
		return nil, gorm.ErrRecordNotFound
	case 1:
		return &categories[0], nil
	default:
		return nil, fmt.Errorf("category name %q matches more than one row", name)
	}
}

func GetAllCategories() ([]models.Category, error) {
	db := GetConnect()

	var categories []models.Category
	result := db.Order("name ASC").Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}

	return categories, nil
}

func GetCategoryByID(categoryID uint) (*models.Category, error) {
	db := GetConnect()

	var category models.Category
	result := db.First(&category, categoryID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}
	if result.Error != nil {
		return nil, result.Error
	}

	return &category, nil
}

// DeleteCategory removes a category together with its notes.
func DeleteCategory(categoryID uint) error {
	db := GetConnect()

	if err := db.Where("category_id = ?", categoryID).Delete(&models.Note{}).Error; err != nil {
		return err
	}

	result := db.Delete(&models.Category{}, categoryID)
	return result.Error
}

// Note operations

func CreateNote(note *models.Note) error {
	db := GetConnect()
	result := db.Create(note)
	return result.Error
}

// GetCategoryNotes returns the notes of one category, oldest first.
func GetCategoryNotes(categoryID uint) ([]models.Note, error) {
	db := GetConnect()

	var notes []models.Note
	result := db.Where("category_id = ?", categoryID).Order("created_at ASC").Find(&notes)
	if result.Error != nil {
		return nil, result.Error
	}

	return notes, nil
}

func CountNotesByCategory(categoryID uint) (int64, error) {
	db := GetConnect()

	var count int64
	result := db.Model(&models.Note{}).Where("category_id = ?", categoryID).Count(&count)
	return count, result.Error
}
