package mapper

import (
	"github.com/Master1941/foodgram-project-react/entity"
	"github.com/Master1941/foodgram-project-react/model"
)

// UserEntityToModel maps a User entity to the corresponding model.
// The entity's Password field is expected to already hold a bcrypt hash.
func UserEntityToModel(e *entity.User) *model.User {
	return &model.User{
		ID:        e.ID,
		Username:  e.Username,
		Email:     e.Email,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Password:  []byte(e.Password),
	}
}

// UserModelToEntity maps a User model to the corresponding entity.
func UserModelToEntity(m *model.User) *entity.User {
	return &entity.User{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Password:  string(m.Password),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// TagModelToEntity maps a Tag model to the corresponding entity.
func TagModelToEntity(m *model.Tag) *entity.Tag {
	return &entity.Tag{
		ID:    m.ID,
		Name:  m.Name,
		Color: m.Color,
		Slug:  m.Slug,
	}
}

// TagEntityToModel maps a Tag entity to the corresponding model.
func TagEntityToModel(e *entity.Tag) *model.Tag {
	return &model.Tag{
		ID:    e.ID,
		Name:  e.Name,
		Color: e.Color,
		Slug:  e.Slug,
	}
}

// IngredientModelToEntity maps an Ingredient model to the corresponding entity.
func IngredientModelToEntity(m *model.Ingredient) *entity.Ingredient {
	return &entity.Ingredient{
		ID:              m.ID,
		Name:            m.Name,
		MeasurementUnit: m.MeasurementUnit,
	}
}

// IngredientEntityToModel maps an Ingredient entity to the corresponding model.
func IngredientEntityToModel(e *entity.Ingredient) *model.Ingredient {
	return &model.Ingredient{
		ID:              e.ID,
		Name:            e.Name,
		MeasurementUnit: e.MeasurementUnit,
	}
}

// RecipeModelToEntity maps a Recipe model, with its preloaded Author,
// Tags and Ingredients.Ingredient associations, to the corresponding
// entity.
func RecipeModelToEntity(m *model.Recipe) *entity.Recipe {
	e := &entity.Recipe{
		ID:          m.ID,
		AuthorID:    m.AuthorID,
		Name:        m.Name,
		Image:       m.Image,
		Text:        m.Text,
		CookingTime: m.CookingTime,
		CreatedAt:   m.CreatedAt,
	}
	if m.Author.ID != 0 {
		e.Author = UserModelToEntity(&m.Author)
	}
	for i := range m.Tags {
		e.Tags = append(e.Tags, *TagModelToEntity(&m.Tags[i]))
	}
	for i := range m.Ingredients {
		ri := &m.Ingredients[i]
		e.Ingredients = append(e.Ingredients, entity.RecipeIngredient{
			IngredientID:    ri.IngredientID,
			Name:            ri.Ingredient.Name,
			MeasurementUnit: ri.Ingredient.MeasurementUnit,
			Amount:          ri.Amount,
		})
	}
	return e
}

// RecipeEntityToModel maps the scalar fields of a Recipe entity to the
// corresponding model. Child sets are handled by the repository so the
// replace-all transaction stays explicit.
func RecipeEntityToModel(e *entity.Recipe) *model.Recipe {
	return &model.Recipe{
		ID:          e.ID,
		AuthorID:    e.AuthorID,
		Name:        e.Name,
		Image:       e.Image,
		Text:        e.Text,
		CookingTime: e.CookingTime,
	}
}

// RecipeEntityToMinified maps a Recipe entity to the short body returned
// by the membership and subscription endpoints.
func RecipeEntityToMinified(e *entity.Recipe) entity.RecipeMinified {
	return entity.RecipeMinified{
		ID:          e.ID,
		Name:        e.Name,
		Image:       e.Image,
		CookingTime: e.CookingTime,
	}
}

// UserEntityToView maps a User entity to its read representation.
func UserEntityToView(e *entity.User, isSubscribed bool) entity.UserView {
	return entity.UserView{
		Email:        e.Email,
		ID:           e.ID,
		Username:     e.Username,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		IsSubscribed: isSubscribed,
	}
}
