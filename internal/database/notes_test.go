package database

import (
	"NoteKeeperBot/internal/database/models"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateCategory(t *testing.T) {
	resetTables(t)

	category, err := CreateCategory("work")
	require.NoError(t, err)
	require.NotZero(t, category.ID)

	found, err := FindCategoryByName("work")
	require.NoError(t, err)
	require.Equal(t, category.ID, found.ID)
}

func TestCreateCategoryDuplicateNameFails(t *testing.T) {
	resetTables(t)

	_, err := CreateCategory("work")
	require.NoError(t, err)

	_, err = CreateCategory("work")
	require.Error(t, err)

	var count int64
	require.NoError(t, instance.Model(&models.Category{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestFindCategoryByNameNotFound(t *testing.T) {
	resetTables(t)

	_, err := FindCategoryByName("missing")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestSearchCategoriesByName(t *testing.T) {
	resetTables(t)

	_, err := CreateCategory("travel")
	require.NoError(t, err)

	categories, err := SearchCategoriesByName("travel")
	require.NoError(t, err)
	require.Len(t, categories, 1)

	categories, err = SearchCategoriesByName("missing")
	require.NoError(t, err)
	require.Empty(t, categories)
}

func TestGetAllCategoriesSortedByName(t *testing.T) {
	resetTables(t)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, err := CreateCategory(name)
		require.NoError(t, err)
	}

	categories, err := GetAllCategories()
	require.NoError(t, err)
	require.Len(t, categories, 3)
	require.Equal(t, "alpha", categories[0].Name)
	require.Equal(t, "mid", categories[1].Name)
	require.Equal(t, "zeta", categories[2].Name)
}

func TestCreateNoteAndListByCategory(t *testing.T) {
	resetTables(t)

	category, err := CreateCategory("books")
	require.NoError(t, err)

	first := &models.Note{Text: "read the hobbit", CategoryID: category.ID}
	require.NoError(t, CreateNote(first))

	second := &models.Note{Text: "return library book", CategoryID: category.ID}
	require.NoError(t, CreateNote(second))

	notes, err := GetCategoryNotes(category.ID)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	require.Equal(t, "read the hobbit", notes[0].Text)
	require.Equal(t, "return library book", notes[1].Text)

	count, err := CountNotesByCategory(category.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)
}

func TestCreateNoteUnknownCategoryFails(t *testing.T) {
	resetTables(t)

	err := CreateNote(&models.Note{Text: "orphan", CategoryID: 9999})
	require.Error(t, err)

	var count int64
	require.NoError(t, instance.Model(&models.Note{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestDeleteCategoryRemovesNotes(t *testing.T) {
	resetTables(t)

	category, err := CreateCategory("chores")
	require.NoError(t, err)
	require.NoError(t, CreateNote(&models.Note{Text: "laundry", CategoryID: category.ID}))

	require.NoError(t, DeleteCategory(category.ID))

	_, err = FindCategoryByName("chores")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	count, err := CountNotesByCategory(category.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, count)
}

func TestGetCategoryByID(t *testing.T) {
	resetTables(t)

	category, err := CreateCategory("music")
	require.NoError(t, err)

	found, err := GetCategoryByID(category.ID)
	require.NoError(t, err)
	require.Equal(t, "music", found.Name)

	_, err = GetCategoryByID(9999)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
