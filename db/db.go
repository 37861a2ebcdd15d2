package db

import (
	"fmt"

	"github.com/Master1941/foodgram-project-react/entity"
	"github.com/Master1941/foodgram-project-react/logger"
	"github.com/Master1941/foodgram-project-react/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the PostgreSQL connection. TranslateError is on so
// unique-constraint violations surface as gorm.ErrDuplicatedKey and can
// be mapped to conflicts instead of 500s.
func InitDB(c *entity.Config) error {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.PostgresConfig.Host,
		c.PostgresConfig.User,
		c.PostgresConfig.Password,
		c.PostgresConfig.DBName,
		c.PostgresConfig.Port,
		c.PostgresConfig.SSLMode,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return fmt.Errorf("could not connect to database: %w", err)
	}
	logger.Info("database connection established")
	return nil
}

// Migrate runs the schema migrations for all models.
func Migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&model.User{},
		&model.Tag{},
		&model.Ingredient{},
		&model.Recipe{},
		&model.RecipeIngredient{},
		&model.Favorite{},
		&model.ShoppingListItem{},
		&model.Subscription{},
	)
}

func Close() {
	sqlDB, err := DB.DB()
	if err != nil {
		logger.Warn("failed to retrieve sql.DB: " + err.Error())
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Warn("error closing the database connection: " + err.Error())
	}
}

func GetDBInstance() *gorm.DB {
	return DB
}
