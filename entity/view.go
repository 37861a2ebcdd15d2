package entity

// UserView is the read representation of a user, with the subscription
// flag computed relative to the requesting user.
type UserView struct {
	Email        string `json:"email"`
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

// RecipeView is the read representation of a recipe: nested author, tags
// and ingredients plus the membership flags computed relative to the
// requesting user.
type RecipeView struct {
	ID               uint               `json:"id"`
	Tags             []Tag              `json:"tags"`
	Author           UserView           `json:"author"`
	Ingredients      []RecipeIngredient `json:"ingredients"`
	IsFavorited      bool               `json:"is_favorited"`
	IsInShoppingCart bool               `json:"is_in_shopping_cart"`
	Name             string             `json:"name"`
	Image            string             `json:"image"`
	Text             string             `json:"text"`
	CookingTime      int                `json:"cooking_time"`
}

// RecipeMinified is the short recipe body returned by the favorite,
// shopping-cart and subscription endpoints.
type RecipeMinified struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

// UserWithRecipes is the subscription representation: the author plus an
// optionally capped list of their recipes and the total recipe count.
type UserWithRecipes struct {
	UserView
	Recipes      []RecipeMinified `json:"recipes"`
	RecipesCount int64            `json:"recipes_count"`
}
