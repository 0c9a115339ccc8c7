package entity

type CurrencyType string

const (
	CurrencyDiamonds CurrencyType = `diamonds`
	CurrencyGold     CurrencyType = `gold`
)

func (c CurrencyType) Valid() bool {
	return c == CurrencyDiamonds || c == CurrencyGold
}

func (c CurrencyType) Label() string {
	switch c {
	case CurrencyDiamonds:
		return "💎 Diamantes"
	case CurrencyGold:
		return "🪙 Oro"
	default:
		return string(c)
	}
}

type CardType string

const (
	CardCredit CardType = `credit`
	CardDebit  CardType = `debit`
)

func (c CardType) Valid() bool {
	return c == CardCredit || c == CardDebit
}

type OrderID string

func (id OrderID) String() string {
	return string(id)
}

// Order is one purchase attempt. Card details never appear here, payment is
// referenced only by the processor token.
type Order struct {
	ID           OrderID
	PlayerID     string
	CurrencyType CurrencyType
	Amount       string
	Price        string
	FullName     string
	DNI          string
	Country      string
	Email        string
	PaymentToken string
	CardType     CardType
}

// Field names as they appear on the wire, in validation order.
const (
	FieldPlayerID     = "playerId"
	FieldCurrencyType = "currencyType"
	FieldAmount       = "amount"
	FieldPrice        = "price"
	FieldFullName     = "fullName"
	FieldDNI          = "dni"
	FieldCountry      = "country"
	FieldEmail        = "email"
	FieldPaymentToken = "paymentToken"
	FieldCardType     = "cardType"

	FieldCardNumber = "cardNumber"
	FieldCardName   = "cardName"
	FieldExpiry     = "expiry"
	FieldCVV        = "cvv"
)

// OrderRequiredFields is checked by the purchase endpoint.
var OrderRequiredFields = []string{
	FieldPlayerID,
	FieldCurrencyType,
	FieldAmount,
	FieldPrice,
	FieldFullName,
	FieldDNI,
	FieldCountry,
	FieldEmail,
	FieldPaymentToken,
	FieldCardType,
}

// FormRequiredFields are the storefront inputs that gate the submit control.
var FormRequiredFields = []string{
	FieldPlayerID,
	FieldFullName,
	FieldDNI,
	FieldCountry,
	FieldEmail,
	FieldCardNumber,
	FieldCardName,
	FieldExpiry,
	FieldCVV,
}

// CardFields are handed to the payment tokenizer only and must never be sent
// to the purchase endpoint.
var CardFields = []string{
	FieldCardNumber,
	FieldCardName,
	FieldExpiry,
	FieldCVV,
}

func IsCardField(name string) bool {
	for _, f := range CardFields {
		if f == name {
			return true
		}
	}
	return false
}

// Value returns the order field stored under its wire name.
func (o Order) Value(field string) string {
	switch field {
	case FieldPlayerID:
		return o.PlayerID
	case FieldCurrencyType:
		return string(o.CurrencyType)
	case FieldAmount:
		return o.Amount
	case FieldPrice:
		return o.Price
	case FieldFullName:
		return o.FullName
	case FieldDNI:
		return o.DNI
	case FieldCountry:
		return o.Country
	case FieldEmail:
		return o.Email
	case FieldPaymentToken:
		return o.PaymentToken
	case FieldCardType:
		return string(o.CardType)
	default:
		return ""
	}
}
