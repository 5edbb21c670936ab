package database

import (
	"NoteKeeperBot/internal/database/models"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestMain wires the package singleton to an in-memory SQLite database so the
// helpers run against real constraints without a MySQL server.
func TestMain(m *testing.M) {
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	// one connection, or every pooled conn would get its own :memory: db
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&models.Category{}, &models.Note{})
	if err != nil {
		panic(err)
	}

	instance = db
	once.Do(func() {})

	os.Exit(m.Run())
}

func resetTables(t *testing.T) {
	t.Helper()
	require.NoError(t, instance.Exec("DELETE FROM notes").Error)
	require.NoError(t, instance.Exec("DELETE FROM categories").Error)
}

func TestSavePersistsCategory(t *testing.T) {
	resetTables(t)

	Save(&models.Category{Name: "groceries"})

	category, err := FindCategoryByName("groceries")
	require.NoError(t, err)
	require.Equal(t, "groceries", category.Name)
	require.NotZero(t, category.ID)
}

func TestSaveSwallowsDuplicateName(t *testing.T) {
	resetTables(t)

	_, err := CreateCategory("ideas")
	require.NoError(t, err)

	// best-effort save: the constraint error is logged, not returned
	Save(&models.Category{Name: "ideas"})

	var count int64
	require.NoError(t, instance.Model(&models.Category{}).Where("name = ?", "ideas").Count(&count).Error)
	require.EqualValues(t, 1, count)
}
