package domain

// CartItem is one product/quantity pair in a user's cart. Carts live in
// Redis and carry no price data; prices are resolved at order placement.
type CartItem struct {
	ProductID int64
	Quantity  int32
}

// WishlistEntry marks a product a user saved for later.
type WishlistEntry struct {
	UserID    int64
	ProductID int64
}
