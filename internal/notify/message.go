package notify

import (
	"fmt"
	"strings"

	"quanngon-be/internal/order"
	"quanngon-be/internal/utils"
)

var typeLabels = map[order.Type]string{
	order.TypeDineIn:   "Tại bàn",
	order.TypeTakeAway: "Mang về",
	order.TypeDelivery: "Giao hàng",
}

var statusLabels = map[order.Status]string{
	order.StatusPending:   "chờ xử lý",
	order.StatusCompleted: "đã hoàn thành",
	order.StatusPaid:      "đã thanh toán",
	order.StatusDeny:      "đã hủy",
}

// BuildOrderMessage formats the staff chat alert for a new order.
func BuildOrderMessage(o *order.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🔔 Đơn hàng mới #%s\n", o.ID.Hex())
	fmt.Fprintf(&b, "Loại: %s\n", typeLabels[o.TypeOrder])

	if o.TypeOrder == order.TypeDineIn && o.Table != nil {
		fmt.Fprintf(&b, "Bàn: %s\n", *o.Table)
	}
	if info := o.CustomerInfo; info != nil {
		if info.Name != "" || info.Phone != "" {
			fmt.Fprintf(&b, "Khách: %s - %s\n", info.Name, info.Phone)
		}
		if o.TypeOrder == order.TypeDelivery && info.Address != "" {
			fmt.Fprintf(&b, "Địa chỉ: %s\n", info.Address)
		}
	}

	b.WriteString("----------------\n")
	for _, item := range o.Items {
		fmt.Fprintf(&b, "%dx %s", item.Quantity, item.Name)
		if item.Size != nil && *item.Size != "" {
			fmt.Fprintf(&b, " (%s)", *item.Size)
		}
		fmt.Fprintf(&b, " = %s\n", utils.FormatVND(item.Price*float64(item.Quantity)))

		for _, topping := range item.Toppings {
			fmt.Fprintf(&b, "   + %s x%d\n", topping.Name, topping.Quantity)
		}
	}
	b.WriteString("----------------\n")

	if o.Notes != "" {
		fmt.Fprintf(&b, "Ghi chú: %s\n", o.Notes)
	}
	fmt.Fprintf(&b, "Tổng cộng: %s", utils.FormatVND(o.TotalAmount))

	return b.String()
}

// BuildStatusMessage formats the staff chat alert for a status change.
func BuildStatusMessage(orderID string, status order.Status) string {
	label, ok := statusLabels[status]
	if !ok {
		label = string(status)
	}
	return fmt.Sprintf("📋 Đơn hàng #%s: %s", orderID, label)
}
