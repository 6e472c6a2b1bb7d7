package order

import "time"

// APIOrder is the wire representation handed to HTTP clients and the
// realtime channel, with the ObjectID rendered as a hex string.
type APIOrder struct {
	ID           string           `json:"_id"`
	Table        *string          `json:"table,omitempty"`
	Items        []APIItem        `json:"items"`
	Status       Status           `json:"status"`
	TypeOrder    Type             `json:"typeOrder"`
	CustomerInfo *APICustomerInfo `json:"customerInfo,omitempty"`
	TotalAmount  float64          `json:"totalAmount"`
	Notes        string           `json:"notes,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

type APIItem struct {
	MenuItemID string    `json:"id"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	Size       *string   `json:"size,omitempty"`
	Toppings   []Topping `json:"toppings"`
	Price      float64   `json:"price"`
}

type APICustomerInfo struct {
	CustomerName    string `json:"customerName,omitempty"`
	PhoneNumber     string `json:"phoneNumber,omitempty"`
	DeliveryAddress string `json:"deliveryAddress,omitempty"`
}

func ToAPIOrder(o *Order) *APIOrder {
	if o == nil {
		return nil
	}

	items := make([]APIItem, 0, len(o.Items))
	for _, item := range o.Items {
		toppings := item.Toppings
		if toppings == nil {
			toppings = []Topping{}
		}
		items = append(items, APIItem{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			Size:       item.Size,
			Toppings:   toppings,
			Price:      item.Price,
		})
	}

	var customer *APICustomerInfo
	if o.CustomerInfo != nil {
		customer = &APICustomerInfo{
			CustomerName:    o.CustomerInfo.Name,
			PhoneNumber:     o.CustomerInfo.Phone,
			DeliveryAddress: o.CustomerInfo.Address,
		}
	}

	return &APIOrder{
		ID:           o.ID.Hex(),
		Table:        o.Table,
		Items:        items,
		Status:       o.Status,
		TypeOrder:    o.TypeOrder,
		CustomerInfo: customer,
		TotalAmount:  o.TotalAmount,
		Notes:        o.Notes,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

func ToAPIOrders(orders []*Order) []*APIOrder {
	out := make([]*APIOrder, 0, len(orders))
	for _, o := range orders {
		out = append(out, ToAPIOrder(o))
	}
	return out
}
