package purchase

//go:generate mockgen -destination=mock/notifier_mock.go -package=mock . OrderNotifier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/avGenie/go-topup-store/internal/app/converter"
	"github.com/avGenie/go-topup-store/internal/app/entity"
	"github.com/avGenie/go-topup-store/internal/app/model"
	"github.com/avGenie/go-topup-store/internal/app/usecase/validator"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	MsgSuccess       = "Compra procesada exitosamente"
	MsgRelayFailed   = "Error al procesar la compra"
	MsgInternal      = "Error interno del servidor"
	MsgInvalidBody   = "Cuerpo de la solicitud inválido"
	MsgCardData      = "Los datos de tarjeta no se aceptan, use un token de pago"
	MsgInvalidTier   = "Producto inválido"
	MsgInvalidCard   = "Tipo de tarjeta inválido"
	msgMissingFields = "Campos faltantes: %s"
)

type OrderNotifier interface {
	Notify(ctx context.Context, order entity.Order) error
}

type Purchase struct {
	notifier OrderNotifier
	catalog  entity.Catalog
}

func New(notifier OrderNotifier, catalog entity.Catalog) Purchase {
	return Purchase{
		notifier: notifier,
		catalog:  catalog,
	}
}

func (p *Purchase) CreatePurchase() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := p.parseOrder(w, r)
		if err != nil {
			zap.L().Info("purchase request rejected", zap.Error(err))
			return
		}

		order.ID = entity.OrderID(uuid.NewString())

		err = p.notifier.Notify(r.Context(), order)
		if err != nil {
			zap.L().Error(
				"error while relaying purchase",
				zap.String("order_id", order.ID.String()),
				zap.Error(err),
			)
			sendResponse(w, http.StatusInternalServerError, model.PurchaseResponse{Message: MsgRelayFailed})
			return
		}

		zap.L().Info(
			"purchase relayed",
			zap.String("order_id", order.ID.String()),
			zap.String("player_id", order.PlayerID),
			zap.String("currency", string(order.CurrencyType)),
			zap.String("amount", order.Amount),
		)

		sendResponse(w, http.StatusOK, model.PurchaseResponse{
			Success: true,
			Message: MsgSuccess,
			OrderID: order.ID.String(),
		})
	}
}

func (p *Purchase) parseOrder(w http.ResponseWriter, r *http.Request) (entity.Order, error) {
	defer r.Body.Close()

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		sendResponse(w, http.StatusBadRequest, model.PurchaseResponse{Message: MsgInvalidBody})
		return entity.Order{}, fmt.Errorf("error while decoding purchase body: %w", err)
	}

	if cardKeys := presentCardFields(raw); len(cardKeys) != 0 {
		sendResponse(w, http.StatusBadRequest, model.PurchaseResponse{Message: MsgCardData})
		return entity.Order{}, fmt.Errorf("purchase body carries raw card fields: %s", strings.Join(cardKeys, ", "))
	}

	request, err := decodeRequest(raw)
	if err != nil {
		sendResponse(w, http.StatusBadRequest, model.PurchaseResponse{Message: MsgInvalidBody})
		return entity.Order{}, err
	}

	order := converter.ConvertPurchaseRequestToOrder(request)

	missing := validator.MissingFields(order.Value, entity.OrderRequiredFields)
	if len(missing) != 0 {
		sendResponse(w, http.StatusBadRequest, model.PurchaseResponse{
			Message: fmt.Sprintf(msgMissingFields, strings.Join(missing, ", ")),
		})
		return entity.Order{}, fmt.Errorf("purchase body misses fields: %v", missing)
	}

	if !order.CardType.Valid() {
		sendResponse(w, http.StatusBadRequest, model.PurchaseResponse{Message: MsgInvalidCard})
		return entity.Order{}, fmt.Errorf("unknown card type %q", order.CardType)
	}

	if err := p.catalog.Match(order.CurrencyType, order.Amount, order.Price); err != nil {
		sendResponse(w, http.StatusBadRequest, model.PurchaseResponse{Message: MsgInvalidTier})
		return entity.Order{}, fmt.Errorf("purchase tier %s/%s/%s rejected: %w", order.CurrencyType, order.Amount, order.Price, err)
	}

	return order, nil
}

// decodeRequest accepts string values only. A JSON null counts as absent.
func decodeRequest(raw map[string]json.RawMessage) (model.PurchaseRequest, error) {
	values := make(map[string]string, len(entity.OrderRequiredFields))
	for _, field := range entity.OrderRequiredFields {
		data, ok := raw[field]
		if !ok || string(data) == "null" {
			continue
		}

		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return model.PurchaseRequest{}, fmt.Errorf("field %s is not a string: %w", field, err)
		}
		values[field] = value
	}

	return model.PurchaseRequest{
		PlayerID:     values[entity.FieldPlayerID],
		CurrencyType: values[entity.FieldCurrencyType],
		Amount:       values[entity.FieldAmount],
		Price:        values[entity.FieldPrice],
		FullName:     values[entity.FieldFullName],
		DNI:          values[entity.FieldDNI],
		Country:      values[entity.FieldCountry],
		Email:        values[entity.FieldEmail],
		PaymentToken: values[entity.FieldPaymentToken],
		CardType:     values[entity.FieldCardType],
	}, nil
}

func presentCardFields(raw map[string]json.RawMessage) []string {
	present := make([]string, 0)
	for _, field := range entity.CardFields {
		if _, ok := raw[field]; ok {
			present = append(present, field)
		}
	}

	return present
}

func sendResponse(w http.ResponseWriter, status int, response model.PurchaseResponse) {
	out, err := json.Marshal(response)
	if err != nil {
		zap.L().Error("error while marshalling purchase response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(out)
}

// SendInternalError writes the generic fault response used by the recovery
// middleware.
func SendInternalError(w http.ResponseWriter) {
	sendResponse(w, http.StatusInternalServerError, model.PurchaseResponse{Message: MsgInternal})
}
