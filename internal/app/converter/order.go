package converter

import (
	"strings"

	"github.com/avGenie/go-topup-store/internal/app/entity"
	"github.com/avGenie/go-topup-store/internal/app/model"
)

func ConvertPurchaseRequestToOrder(request model.PurchaseRequest) entity.Order {
	return entity.Order{
		PlayerID:     strings.TrimSpace(request.PlayerID),
		CurrencyType: entity.CurrencyType(strings.TrimSpace(request.CurrencyType)),
		Amount:       strings.TrimSpace(request.Amount),
		Price:        strings.TrimSpace(request.Price),
		FullName:     strings.TrimSpace(request.FullName),
		DNI:          strings.TrimSpace(request.DNI),
		Country:      strings.TrimSpace(request.Country),
		Email:        strings.TrimSpace(request.Email),
		PaymentToken: strings.TrimSpace(request.PaymentToken),
		CardType:     entity.CardType(strings.TrimSpace(request.CardType)),
	}
}

func ConvertOrderToPurchaseRequest(order entity.Order) model.PurchaseRequest {
	return model.PurchaseRequest{
		PlayerID:     order.PlayerID,
		CurrencyType: string(order.CurrencyType),
		Amount:       order.Amount,
		Price:        order.Price,
		FullName:     order.FullName,
		DNI:          order.DNI,
		Country:      order.Country,
		Email:        order.Email,
		PaymentToken: order.PaymentToken,
		CardType:     string(order.CardType),
	}
}
