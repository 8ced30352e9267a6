package model

// CartLine is one product entry in a user's cart. A user holds at most one
// line per product; adding the same product again increments the quantity.
type CartLine struct {
	ID        int64
	UserID    int64
	ProductID int64
	Quantity  int
	Product   *Product
}
