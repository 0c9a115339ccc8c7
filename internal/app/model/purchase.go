package model

type PurchaseRequest struct {
	PlayerID     string `json:"playerId"`
	CurrencyType string `json:"currencyType"`
	Amount       string `json:"amount"`
	Price        string `json:"price"`
	FullName     string `json:"fullName"`
	DNI          string `json:"dni"`
	Country      string `json:"country"`
	Email        string `json:"email"`
	PaymentToken string `json:"paymentToken"`
	CardType     string `json:"cardType"`
}

type PurchaseResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID string `json:"orderId,omitempty"`
}
