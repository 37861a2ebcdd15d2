package entity

import (
	"encoding/json"
	"time"
)

// User represents an application user.
type User struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MarshalJSON implements the custom JSON serialization for User
func (u User) MarshalJSON() ([]byte, error) {
	type Alias User // Create an alias to avoid infinite recursion
	return json.Marshal(&struct {
		*Alias
		Password string `json:"-"` // Exclude password field
	}{
		Alias:    (*Alias)(&u),
		Password: "",
	})
}

// Tag is an immutable recipe category (e.g. breakfast, dessert).
type Tag struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

// Ingredient is reference data; the same name may exist under
// different measurement units.
type Ingredient struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

// RecipeIngredient is the read shape of one ingredient row of a recipe:
// the ingredient identity plus the amount the recipe needs.
type RecipeIngredient struct {
	IngredientID    uint    `json:"id"`
	Name            string  `json:"name"`
	MeasurementUnit string  `json:"measurement_unit"`
	Amount          float64 `json:"amount"`
}

// Recipe represents a recipe with its full child sets.
type Recipe struct {
	ID          uint
	AuthorID    uint
	Name        string
	Image       string
	Text        string
	CookingTime int
	Tags        []Tag
	Ingredients []RecipeIngredient
	CreatedAt   time.Time

	Author *User
}

// RecipeFilter carries the recipe list query parameters.
// UserID is the authenticated requester (0 when anonymous); the
// membership filters are only applied for authenticated requesters.
type RecipeFilter struct {
	AuthorID      uint
	TagSlugs      []string
	OnlyFavorited bool
	OnlyInCart    bool
	UserID        uint
	Page          int
	Limit         int
}

// ShoppingItem is one aggregated line of the exported shopping list:
// amounts summed over every recipe in the cart that uses the
// (name, measurement unit) pair.
type ShoppingItem struct {
	Name            string
	MeasurementUnit string
	Amount          float64
}

// ShoppingListExport is the rendered plain-text shopping list.
type ShoppingListExport struct {
	Filename string
	Content  string
}
