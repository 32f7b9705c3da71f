package db

import (
	"fmt"

	"rentora/config"
	"rentora/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func ConnectDB(cfg config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPwd, cfg.DBName, cfg.DBPort,
	)

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := Migrate(conn); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return conn, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Vendor{},
		&models.VendorBranch{},
		&models.GoodsCategory{},
		&models.Goods{},
	); err != nil {
		return err
	}

	// The stats endpoint scans goods by creation time constantly.
	if err := db.Exec(fmt.Sprintf(`
	  CREATE INDEX IF NOT EXISTS %s_created_at_idx
	  ON %s (created_at);
	`, models.GoodsTable, models.GoodsTable)).Error; err != nil {
		return err
	}

	return nil
}
