package model

// OrderNotification is what the operator sees. It holds no personal or
// payment data.
type OrderNotification struct {
	OrderID  string
	PlayerID string
	Product  string
	Amount   string
	Price    string
	CardType string
	Time     string
}
