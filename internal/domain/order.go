package domain

// Size is a pizza size. Prices in the menu are keyed by it.
type Size string

const (
	SizeSmall  Size = "Small"
	SizeMedium Size = "Medium"
	SizeLarge  Size = "Large"
)

// Status is the lifecycle state of an order. No transition rules are
// enforced: an update may write any status over any other.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusPreparing Status = "Preparing"
	StatusDelivered Status = "Delivered"
	StatusCancelled Status = "Cancelled"
)

// OrderItem is a single line of an order.
type OrderItem struct {
	Pizza         string   `json:"pizza"`
	Size          Size     `json:"size"`
	Quantity      int      `json:"quantity"`
	ExtraToppings []string `json:"extraToppings"`
}

// Order is a stored customer order. OrderID is server-assigned, unique and
// immutable; ids start at 1001 and only grow.
type Order struct {
	OrderID  int         `json:"orderId"`
	Customer string      `json:"customer"`
	Address  string      `json:"address"`
	Items    []OrderItem `json:"items"`
	Total    float64     `json:"total"`
	Status   Status      `json:"status"`
}

// OrderDraft is an order as submitted by a client: the same shape as Order
// minus the id. Create and update bodies decode into it.
type OrderDraft struct {
	Customer string      `json:"customer"`
	Address  string      `json:"address"`
	Items    []OrderItem `json:"items"`
	Total    float64     `json:"total"`
	Status   Status      `json:"status"`
}

// Normalize fills defaults the wire format allows to be omitted. The stored
// form always carries an extraToppings array, never null.
func (d *OrderDraft) Normalize() {
	for i := range d.Items {
		if d.Items[i].ExtraToppings == nil {
			d.Items[i].ExtraToppings = []string{}
		}
	}
}

// ToOrder binds a draft to an id.
func (d OrderDraft) ToOrder(id int) Order {
	return Order{
		OrderID:  id,
		Customer: d.Customer,
		Address:  d.Address,
		Items:    d.Items,
		Total:    d.Total,
		Status:   d.Status,
	}
}

// Draft strips the id, giving back the client-submitted shape.
func (o Order) Draft() OrderDraft {
	return OrderDraft{
		Customer: o.Customer,
		Address:  o.Address,
		Items:    o.Items,
		Total:    o.Total,
		Status:   o.Status,
	}
}

const (
	DeleteStatusDeleted  = "deleted"
	DeleteStatusNotFound = "not found"
)

// DeleteResult is what a delete reports. Deleting an absent id is not an
// error: the result just says "not found".
type DeleteResult struct {
	OrderID int    `json:"orderId"`
	Status  string `json:"status"`
}
