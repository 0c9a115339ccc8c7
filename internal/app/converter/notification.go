package converter

import (
	"bytes"
	"strconv"
	"strings"
	"text/template"
	"time"
	_ "time/tzdata"

	"github.com/golang-module/carbon/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/avGenie/go-topup-store/internal/app/entity"
	"github.com/avGenie/go-topup-store/internal/app/model"
)

const notificationTimeLayout = "02/01/2006, 15:04:05"

var orderNotificationTemplate = template.Must(template.New("order").Parse(
	`🎮 *NUEVA COMPRA* 🎮

🧾 Pedido: ` + "`{{.OrderID}}`" + `
👤 Jugador: ` + "`{{.PlayerID}}`" + `

💎 *Producto:*
• Tipo: {{.Product}}
• Cantidad: {{.Amount}}
• Precio: ${{.Price}}
• Medio de pago: {{.CardType}}

⏰ Fecha: {{.Time}}
`))

var markdownEscaper = strings.NewReplacer(
	"_", `\_`,
	"*", `\*`,
	"`", "'",
	"[", `\[`,
)

var amountPrinter = message.NewPrinter(language.MustParse("es-AR"))

// FormatAmount renders a tier amount with es-AR digit grouping, e.g. 1.060.
func FormatAmount(amount string) string {
	n, err := strconv.ParseInt(amount, 10, 64)
	if err != nil {
		return amount
	}

	return amountPrinter.Sprintf("%d", n)
}

func CardTypeLabel(cardType entity.CardType) string {
	switch cardType {
	case entity.CardCredit:
		return "Crédito"
	case entity.CardDebit:
		return "Débito"
	default:
		return string(cardType)
	}
}

func ConvertOrderToNotification(order entity.Order, at time.Time, timezone string) model.OrderNotification {
	return model.OrderNotification{
		OrderID:  markdownEscaper.Replace(order.ID.String()),
		PlayerID: markdownEscaper.Replace(order.PlayerID),
		Product:  order.CurrencyType.Label(),
		Amount:   markdownEscaper.Replace(FormatAmount(order.Amount)),
		Price:    markdownEscaper.Replace(order.Price),
		CardType: CardTypeLabel(order.CardType),
		Time:     carbon.CreateFromStdTime(at).SetTimezone(timezone).Layout(notificationTimeLayout),
	}
}

func BuildOrderNotification(notification model.OrderNotification) (string, error) {
	var buf bytes.Buffer
	if err := orderNotificationTemplate.Execute(&buf, notification); err != nil {
		return "", err
	}

	return buf.String(), nil
}
