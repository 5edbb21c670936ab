package database

import (
	"NoteKeeperBot/internal/database/models"
	"fmt"
	"log"
	"os"
	"sync"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var (
	instance *gorm.DB
	once     sync.Once
)

func dsn(dbName string) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		os.Getenv("DB_USERNAME"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		dbName,
	)
}

// GetConnect returns the process-wide connection, opening it on first use.
func GetConnect() *gorm.DB {
	once.Do(func() {
		fmt.Println("Connecting to database ...")

		var err error
		instance, err = gorm.Open(mysql.Open(dsn(os.Getenv("DB_DATABASE"))), &gorm.Config{})
		if err != nil {
			log.Fatal("Database connection error: ", err)
		}

		sqlDB, err := instance.DB()
		if err != nil {
			log.Fatal("Database connection error: ", err)
		}

		err = sqlDB.Ping()
		if err != nil {
			log.Fatal("Database ping error: ", err)
		}

		fmt.Println("Connected to database")
	})

	return instance
}

// openServer connects without selecting a schema, for CREATE/DROP DATABASE.
func openServer() (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn("")), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("server connection: %w", err)
	}
	return db, nil
}

func closeServer(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	sqlDB.Close()
}

// Initialize creates the target database if it does not exist and migrates
// all tables. Safe to call on every start; existing tables are skipped.
func Initialize() error {
	srv, err := openServer()
	if err != nil {
		return err
	}
	defer closeServer(srv)

	name := os.Getenv("DB_DATABASE")
	if err := srv.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", name)).Error; err != nil {
		return fmt.Errorf("create database %s: %w", name, err)
	}

	db := GetConnect()
	err = db.AutoMigrate(
		&models.Category{},
		&models.Note{},
	)
	if err != nil {
		return err
	}

	log.Println("GORM migrations completed successfully")
	return nil
}

// Drop deletes the whole database if it exists.
func Drop() error {
	srv, err := openServer()
	if err != nil {
		return err
	}
	defer closeServer(srv)

	name := os.Getenv("DB_DATABASE")
	if err := srv.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS %s", name)).Error; err != nil {
		return fmt.Errorf("drop database %s: %w", name, err)
	}

	log.Printf("Dropped database %s", name)
	return nil
}

// Save persists one record immediately. Errors (for example a duplicate
// category name) are logged and swallowed; callers that need to react to
// failures should use the Create helpers instead.
func Save(record interface{}) {
	db := GetConnect()

	if err := db.Save(record).Error; err != nil {
		log.Printf("Error saving record %T: %v", record, err)
	}
}
