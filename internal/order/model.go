package order

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusPaid      Status = "paid"
	StatusDeny      Status = "deny"
)

type Type string

const (
	TypeDineIn   Type = "dine-in"
	TypeTakeAway Type = "take-away"
	TypeDelivery Type = "delivery"
)

type Topping struct {
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Quantity int     `bson:"quantity" json:"quantity"`
}

// Item is a point-in-time snapshot of a menu item at order creation.
// Name and price are denormalized and never re-fetched.
type Item struct {
	MenuItemID string    `bson:"menuItemId" json:"menuItemId"`
	Name       string    `bson:"name" json:"name"`
	Quantity   int       `bson:"quantity" json:"quantity"`
	Size       *string   `bson:"size,omitempty" json:"size,omitempty"`
	Toppings   []Topping `bson:"toppings,omitempty" json:"toppings,omitempty"`
	Price      float64   `bson:"price" json:"price"`
}

type CustomerInfo struct {
	Name    string `bson:"name,omitempty" json:"name,omitempty"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
}

type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Table        *string            `bson:"table,omitempty"`
	Items        []Item             `bson:"items"`
	Status       Status             `bson:"status"`
	TypeOrder    Type               `bson:"typeOrder"`
	CustomerInfo *CustomerInfo      `bson:"customerInfo,omitempty"`
	TotalAmount  float64            `bson:"totalAmount"`
	Notes        string             `bson:"notes,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

// Filter narrows List results. Date bounds are inclusive.
type Filter struct {
	Status    *Status
	TypeOrder *Type
	FromDate  *time.Time
	ToDate    *time.Time
}

// CreateInput is the checkout submission shape.
type CreateInput struct {
	Table        *string            `json:"table"`
	Items        []CreateItemInput  `json:"items"`
	TypeOrder    Type               `json:"typeOrder"`
	CustomerInfo *CustomerInfoInput `json:"customerInfo"`
	TotalAmount  float64            `json:"totalAmount"`
	Notes        string             `json:"notes"`
}

type CreateItemInput struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Quantity int       `json:"quantity"`
	Size     *string   `json:"size"`
	Price    float64   `json:"price"`
	Toppings []Topping `json:"toppings"`
}

type CustomerInfoInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// StatusEvent is the realtime payload for a status change.
type StatusEvent struct {
	OrderID string `json:"orderId"`
	Status  Status `json:"status"`
}

// Stats is the admin dashboard aggregate.
type Stats struct {
	RevenueByDay []RevenuePoint `json:"revenueByDay"`
	TopProducts  []ProductSales `json:"topProducts"`
	StatusCounts map[Status]int `json:"statusCounts"`
	OrdersToday  int            `json:"ordersToday"`
}

type RevenuePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type ProductSales struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}
