package order

import (
	"testing"
	"time"

	"quanngon-be/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestToAPIOrder(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		assert.Nil(t, ToAPIOrder(nil))
	})

	t.Run("FullOrder", func(t *testing.T) {
		now := time.Now().UTC()
		o := &Order{
			ID:        primitive.NewObjectID(),
			TypeOrder: TypeDelivery,
			Status:    StatusPending,
			CustomerInfo: &CustomerInfo{
				Name:    "Nguyễn Văn A",
				Phone:   "0912345678",
				Address: "12 Lê Lợi, Quận 1",
			},
			Items: []Item{
				{
					MenuItemID: "item-1",
					Name:       "Trà sữa",
					Quantity:   2,
					Size:       utils.StrPtr("L"),
					Toppings:   []Topping{{Name: "Trân châu", Price: 5000, Quantity: 1}},
					Price:      45000,
				},
				{MenuItemID: "item-2", Name: "Bánh mì", Quantity: 1, Price: 25000},
			},
			TotalAmount: 115000,
			Notes:       "giao trước 12h",
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		api := ToAPIOrder(o)

		require.NotNil(t, api)
		assert.Equal(t, o.ID.Hex(), api.ID)
		assert.Equal(t, StatusPending, api.Status)
		assert.Equal(t, TypeDelivery, api.TypeOrder)
		assert.Equal(t, float64(115000), api.TotalAmount)
		assert.Equal(t, "giao trước 12h", api.Notes)

		require.NotNil(t, api.CustomerInfo)
		assert.Equal(t, "Nguyễn Văn A", api.CustomerInfo.CustomerName)
		assert.Equal(t, "0912345678", api.CustomerInfo.PhoneNumber)
		assert.Equal(t, "12 Lê Lợi, Quận 1", api.CustomerInfo.DeliveryAddress)

		require.Len(t, api.Items, 2)
		assert.Equal(t, "item-1", api.Items[0].MenuItemID)
		assert.Equal(t, "L", *api.Items[0].Size)
		assert.Len(t, api.Items[0].Toppings, 1)

		// Missing toppings serialize as [], never null.
		assert.NotNil(t, api.Items[1].Toppings)
		assert.Empty(t, api.Items[1].Toppings)
	})
}

func TestToAPIOrders(t *testing.T) {
	orders := []*Order{
		{ID: primitive.NewObjectID(), Status: StatusPending},
		{ID: primitive.NewObjectID(), Status: StatusPaid},
	}

	out := ToAPIOrders(orders)

	require.Len(t, out, 2)
	assert.Equal(t, orders[0].ID.Hex(), out[0].ID)
	assert.Equal(t, orders[1].ID.Hex(), out[1].ID)

	assert.NotNil(t, ToAPIOrders(nil))
	assert.Empty(t, ToAPIOrders(nil))
}
