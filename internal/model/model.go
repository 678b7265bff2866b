package model

// Collection names a write target in the document store.
type Collection string

const (
	CollectionOrders   Collection = "orders"
	CollectionProducts Collection = "products"
)

// ProductIDKey is the key holding the product identifier inside a ProductRef.
const ProductIDKey = "productId"

// ProductRef is a product snapshot embedded in an order at creation time.
// Any descriptive fields the client sent are kept as-is.
type ProductRef map[string]any

// ProductID returns the referenced product id, or "" when absent or not a string.
func (p ProductRef) ProductID() string {
	id, _ := p[ProductIDKey].(string)
	return id
}

type Order struct {
	ID              string       `json:"id"`
	DateOrdered     string       `json:"dateOrdered"`
	Total           string       `json:"total"`
	DeliveryAddress string       `json:"deliveryAddress"`
	OrderReference  string       `json:"orderReference"`
	Products        []ProductRef `json:"products"`
}

type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

// HistoryRow is one order_history row keyed by (product_id, order_reference).
// The flags are nullable: the table is filled by another system.
type HistoryRow struct {
	ProductID       string `db:"product_id"`
	OrderReference  string `db:"order_reference"`
	OrderPicked     *bool  `db:"order_picked"`
	OrderShipped    *bool  `db:"order_shipped"`
	ReturnRequested *bool  `db:"return_requested"`
	ReturnReceived  *bool  `db:"return_received"`
}

// Fields flattens the row using its column names as keys. NULL flags are left out.
func (h HistoryRow) Fields() map[string]any {
	out := map[string]any{
		"product_id":      h.ProductID,
		"order_reference": h.OrderReference,
	}
	for k, v := range map[string]*bool{
		"order_picked":     h.OrderPicked,
		"order_shipped":    h.OrderShipped,
		"return_requested": h.ReturnRequested,
		"return_received":  h.ReturnReceived,
	} {
		if v != nil {
			out[k] = *v
		}
	}
	return out
}

// OrderProducts is an order with its product list merged against order history.
type OrderProducts struct {
	Order
	Products []map[string]any `json:"products"`
}
