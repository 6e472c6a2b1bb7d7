package menu

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name          string             `bson:"name" json:"name"`
	Subcategories []string           `bson:"subcategories,omitempty" json:"subcategories"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type SizeOption struct {
	Name  string  `bson:"name" json:"name"`
	Price float64 `bson:"price" json:"price"`
}

type ToppingOption struct {
	Name  string  `bson:"name" json:"name"`
	Price float64 `bson:"price" json:"price"`
}

type Item struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Sizes       []SizeOption       `bson:"sizes,omitempty" json:"sizes"`
	Toppings    []ToppingOption    `bson:"toppings,omitempty" json:"toppings"`
	Category    string             `bson:"category" json:"category"`
	Subcategory string             `bson:"subcategory,omitempty" json:"subcategory,omitempty"`
	ImageURL    string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Available   bool               `bson:"available" json:"available"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type CategoryInput struct {
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories"`
}

type ItemInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	Sizes       []SizeOption    `json:"sizes"`
	Toppings    []ToppingOption `json:"toppings"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory"`
	ImageURL    string          `json:"imageUrl"`
	Available   *bool           `json:"available"`
}

// ItemFilter narrows item listings for the storefront menu.
type ItemFilter struct {
	Category      *string
	AvailableOnly bool
}
