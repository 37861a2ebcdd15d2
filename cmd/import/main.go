// Command import seeds the database from CSV files. It is an
// administrative one-time loading path, not part of the request-serving
// surface: rows that already exist are skipped so re-running the import
// is harmless.
package main

import (
	"encoding/csv"
	"flag"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Master1941/foodgram-project-react/config"
	"github.com/Master1941/foodgram-project-react/db"
	"github.com/Master1941/foodgram-project-react/logger"
	"github.com/Master1941/foodgram-project-react/model"
	"github.com/Master1941/foodgram-project-react/util"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	logger.InitializeLogger()
	defer logger.Close()

	dir := flag.String("dir", "data", "directory containing the CSV files")
	cfgPath := flag.String("config", config.GetEnv("CONFIG_PATH", "config/development.yaml"), "config file path")
	flag.Parse()

	cfg, err := config.ReadConfig(*cfgPath)
	if err != nil {
		logger.Fatal("could not read config", zap.Error(err))
	}
	if err := db.InitDB(cfg); err != nil {
		logger.Fatal("could not connect to database", zap.Error(err))
	}
	defer db.Close()

	gormDB := db.GetDBInstance()
	if err := db.Migrate(gormDB); err != nil {
		logger.Fatal("could not run migrations", zap.Error(err))
	}

	importTags(gormDB, filepath.Join(*dir, "tags.csv"))
	importIngredients(gormDB, filepath.Join(*dir, "ingredients.csv"))
	importUsers(gormDB, filepath.Join(*dir, "users.csv"))
	importRecipes(gormDB, filepath.Join(*dir, "recipes.csv"))
	importRecipeIngredients(gormDB, filepath.Join(*dir, "recipe_ingredients.csv"))
	importRecipeTags(gormDB, filepath.Join(*dir, "recipe_tags.csv"))
}

// readCSV reads all records of a CSV file. A missing file is not an
// error: each import step is optional.
func readCSV(path string) [][]string {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("skipping missing file", zap.String("path", path))
			return nil
		}
		logger.Fatal("could not open file", zap.String("path", path), zap.Error(err))
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		logger.Fatal("could not parse CSV", zap.String("path", path), zap.Error(err))
	}
	return records
}

// importTags loads rows of the form: name,color,slug
func importTags(gormDB *gorm.DB, path string) {
	var n int
	for _, rec := range readCSV(path) {
		if len(rec) != 3 {
			continue
		}
		tag := model.Tag{Name: rec[0], Color: rec[1], Slug: rec[2]}
		if err := gormDB.Where(model.Tag{Slug: tag.Slug}).FirstOrCreate(&tag).Error; err != nil {
			logger.Fatal("could not import tag", zap.String("slug", tag.Slug), zap.Error(err))
		}
		n++
	}
	logger.Info("tags imported", zap.Int("count", n))
}

// importIngredients loads rows of the form: name,measurement_unit
func importIngredients(gormDB *gorm.DB, path string) {
	var n int
	for _, rec := range readCSV(path) {
		if len(rec) != 2 {
			continue
		}
		ing := model.Ingredient{Name: rec[0], MeasurementUnit: rec[1]}
		err := gormDB.
			Where(model.Ingredient{Name: ing.Name, MeasurementUnit: ing.MeasurementUnit}).
			FirstOrCreate(&ing).Error
		if err != nil {
			logger.Fatal("could not import ingredient", zap.String("name", ing.Name), zap.Error(err))
		}
		n++
	}
	logger.Info("ingredients imported", zap.Int("count", n))
}

// importUsers loads rows of the form:
// username,email,first_name,last_name,password
func importUsers(gormDB *gorm.DB, path string) {
	var n int
	for _, rec := range readCSV(path) {
		if len(rec) != 5 {
			continue
		}
		hash, err := util.HashPassword(rec[4])
		if err != nil {
			logger.Fatal("could not hash password", zap.String("username", rec[0]), zap.Error(err))
		}
		user := model.User{
			Username:  rec[0],
			Email:     rec[1],
			FirstName: rec[2],
			LastName:  rec[3],
			Password:  hash,
		}
		if err := gormDB.Where(model.User{Username: user.Username}).FirstOrCreate(&user).Error; err != nil {
			logger.Fatal("could not import user", zap.String("username", user.Username), zap.Error(err))
		}
		n++
	}
	logger.Info("users imported", zap.Int("count", n))
}

// importRecipes loads rows of the form:
// author_username,name,image,text,cooking_time
func importRecipes(gormDB *gorm.DB, path string) {
	var n int
	for _, rec := range readCSV(path) {
		if len(rec) != 5 {
			continue
		}
		var author model.User
		if err := gormDB.Where("username = ?", rec[0]).First(&author).Error; err != nil {
			logger.Fatal("unknown recipe author", zap.String("username", rec[0]), zap.Error(err))
		}
		cookingTime, err := strconv.Atoi(rec[4])
		if err != nil {
			logger.Fatal("invalid cooking time", zap.String("recipe", rec[1]), zap.Error(err))
		}
		recipe := model.Recipe{
			AuthorID:    author.ID,
			Name:        rec[1],
			Image:       rec[2],
			Text:        rec[3],
			CookingTime: cookingTime,
		}
		err = gormDB.
			Where(model.Recipe{AuthorID: author.ID, Name: recipe.Name}).
			FirstOrCreate(&recipe).Error
		if err != nil {
			logger.Fatal("could not import recipe", zap.String("name", recipe.Name), zap.Error(err))
		}
		n++
	}
	logger.Info("recipes imported", zap.Int("count", n))
}

// importRecipeIngredients loads rows of the form:
// author_username,recipe_name,ingredient_name,measurement_unit,amount
func importRecipeIngredients(gormDB *gorm.DB, path string) {
	var n int
	for _, rec := range readCSV(path) {
		if len(rec) != 5 {
			continue
		}
		recipe, ok := findRecipe(gormDB, rec[0], rec[1])
		if !ok {
			continue
		}
		var ing model.Ingredient
		if err := gormDB.
			Where("name = ? AND measurement_unit = ?", rec[2], rec[3]).
			First(&ing).Error; err != nil {
			logger.Fatal("unknown ingredient", zap.String("name", rec[2]), zap.Error(err))
		}
		amount, err := strconv.ParseFloat(rec[4], 64)
		if err != nil {
			logger.Fatal("invalid amount", zap.String("recipe", rec[1]), zap.Error(err))
		}
		row := model.RecipeIngredient{RecipeID: recipe.ID, IngredientID: ing.ID, Amount: amount}
		err = gormDB.
			Where(model.RecipeIngredient{RecipeID: recipe.ID, IngredientID: ing.ID}).
			FirstOrCreate(&row).Error
		if err != nil {
			logger.Fatal("could not import recipe ingredient", zap.String("recipe", rec[1]), zap.Error(err))
		}
		n++
	}
	logger.Info("recipe ingredients imported", zap.Int("count", n))
}

// importRecipeTags loads rows of the form:
// author_username,recipe_name,tag_slug
func importRecipeTags(gormDB *gorm.DB, path string) {
	var n int
	for _, rec := range readCSV(path) {
		if len(rec) != 3 {
			continue
		}
		recipe, ok := findRecipe(gormDB, rec[0], rec[1])
		if !ok {
			continue
		}
		var tag model.Tag
		if err := gormDB.Where("slug = ?", rec[2]).First(&tag).Error; err != nil {
			logger.Fatal("unknown tag", zap.String("slug", rec[2]), zap.Error(err))
		}
		if err := gormDB.Model(recipe).Association("Tags").Append(&tag); err != nil {
			logger.Fatal("could not import recipe tag", zap.String("recipe", rec[1]), zap.Error(err))
		}
		n++
	}
	logger.Info("recipe tags imported", zap.Int("count", n))
}

func findRecipe(gormDB *gorm.DB, username, name string) (*model.Recipe, bool) {
	var author model.User
	if err := gormDB.Where("username = ?", username).First(&author).Error; err != nil {
		logger.Fatal("unknown recipe author", zap.String("username", username), zap.Error(err))
		return nil, false
	}
	var recipe model.Recipe
	if err := gormDB.Where("author_id = ? AND name = ?", author.ID, name).First(&recipe).Error; err != nil {
		logger.Fatal("unknown recipe", zap.String("name", name), zap.Error(err))
		return nil, false
	}
	return &recipe, true
}
