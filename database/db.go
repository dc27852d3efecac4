package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"member-auth/internal/config"
	"member-auth/internal/models"
)

// Connect opens the PostgreSQL connection using GORM. TranslateError maps
// driver duplicate-key failures onto gorm.ErrDuplicatedKey so the stores can
// report conflicts without parsing error strings.
func Connect(cfg config.DB) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Member{},
		&models.RefreshToken{})
}
