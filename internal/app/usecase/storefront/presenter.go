package storefront

import (
	"context"
	"fmt"

	"github.com/avGenie/go-topup-store/internal/app/model"
)

const (
	LabelSubmit     = "🔒 Completar Compra Segura"
	LabelProcessing = "⏳ Procesando..."

	MsgConnection     = "Error de conexión. Por favor, intenta nuevamente."
	MsgPayment        = "No se pudo validar el medio de pago. Revisa los datos de la tarjeta."
	msgFailurePrefix  = "Error al procesar la compra"
	emptySummaryValue = "-"
	emptySummaryTotal = "$0.00"
)

// Presenter renders storefront state. Its methods are called with the
// storefront lock held and must not dispatch commands.
type Presenter interface {
	SetSubmitEnabled(enabled bool)
	SetSubmitLabel(label string)
	ShowSummary(summary Summary)
	ShowSuccess(confirmation Confirmation)
	ShowFailure(message string)
}

// Card is the raw card input. It only ever goes to the tokenizer.
type Card struct {
	Number     string
	HolderName string
	Expiry     string
	CVV        string
}

// PaymentTokenizer exchanges card input for a payment processor token.
type PaymentTokenizer interface {
	Tokenize(ctx context.Context, card Card) (string, error)
}

type PurchaseSender interface {
	SendPurchase(ctx context.Context, request model.PurchaseRequest) (model.PurchaseResponse, error)
}

type Summary struct {
	PlayerID string
	Product  string
	Amount   string
	Total    string
}

type Confirmation struct {
	PlayerID string
	Product  string
	Amount   string
	Total    string
	Currency string
	OrderID  string
}

func (c Confirmation) Message() string {
	return fmt.Sprintf(
		"¡Compra exitosa!\n\nID: %s\nProducto: %s %s\nTotal: %s\n\nLos %s serán agregados a tu cuenta en los próximos minutos.",
		c.PlayerID, c.Product, c.Amount, c.Total, c.Currency,
	)
}

func failureMessage(reason string) string {
	if len(reason) == 0 {
		return msgFailurePrefix
	}
	return msgFailurePrefix + ": " + reason
}
