package purchase

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avGenie/go-topup-store/internal/app/controller/http/purchase/mock"
	"github.com/avGenie/go-topup-store/internal/app/entity"
	"github.com/avGenie/go-topup-store/internal/app/model"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func purchaseBody(t *testing.T, drop []string, extra map[string]any) io.Reader {
	body := map[string]any{
		"playerId":     "123456789",
		"currencyType": "diamonds",
		"amount":       "1060",
		"price":        "9.99",
		"fullName":     "Ana Pérez",
		"dni":          "30111222",
		"country":      "AR",
		"email":        "ana@example.com",
		"paymentToken": "tok_visa_4242",
		"cardType":     "credit",
	}
	for _, field := range drop {
		delete(body, field)
	}
	for k, v := range extra {
		body[k] = v
	}

	data, err := json.Marshal(body)
	require.NoError(t, err)

	return strings.NewReader(string(data))
}

func TestCreatePurchase(t *testing.T) {
	type want struct {
		statusCode int
		success    bool
		message    string
	}
	tests := []struct {
		name      string
		body      io.Reader
		isNotify  bool
		notifyErr error

		want want
	}{
		{
			name:     "relayed",
			body:     purchaseBody(t, nil, nil),
			isNotify: true,

			want: want{
				statusCode: http.StatusOK,
				success:    true,
				message:    MsgSuccess,
			},
		},
		{
			name: "missing email and payment token",
			body: purchaseBody(t, []string{"paymentToken", "email"}, nil),

			want: want{
				statusCode: http.StatusBadRequest,
				message:    "Campos faltantes: email, paymentToken",
			},
		},
		{
			name: "blank and null fields",
			body: purchaseBody(t, nil, map[string]any{"playerId": "  ", "dni": nil}),

			want: want{
				statusCode: http.StatusBadRequest,
				message:    "Campos faltantes: playerId, dni",
			},
		},
		{
			name: "empty object",
			body: strings.NewReader(`{}`),

			want: want{
				statusCode: http.StatusBadRequest,
				message:    "Campos faltantes: playerId, currencyType, amount, price, fullName, dni, country, email, paymentToken, cardType",
			},
		},
		{
			name: "raw card data rejected",
			body: purchaseBody(t, nil, map[string]any{"cvv": "123", "cardNumber": "4111 1111 1111 1111"}),

			want: want{
				statusCode: http.StatusBadRequest,
				message:    MsgCardData,
			},
		},
		{
			name: "malformed json",
			body: strings.NewReader(`{"playerId":`),

			want: want{
				statusCode: http.StatusBadRequest,
				message:    MsgInvalidBody,
			},
		},
		{
			name: "non string value",
			body: purchaseBody(t, nil, map[string]any{"amount": 1060}),

			want: want{
				statusCode: http.StatusBadRequest,
				message:    MsgInvalidBody,
			},
		},
		{
			name: "price of another tier",
			body: purchaseBody(t, nil, map[string]any{"price": "0.99"}),

			want: want{
				statusCode: http.StatusBadRequest,
				message:    MsgInvalidTier,
			},
		},
		{
			name: "gold amount with diamonds",
			body: purchaseBody(t, nil, map[string]any{"amount": "50000", "price": "14.99"}),

			want: want{
				statusCode: http.StatusBadRequest,
				message:    MsgInvalidTier,
			},
		},
		{
			name: "unknown card type",
			body: purchaseBody(t, nil, map[string]any{"cardType": "prepaid"}),

			want: want{
				statusCode: http.StatusBadRequest,
				message:    MsgInvalidCard,
			},
		},
		{
			name:      "relay failure",
			body:      purchaseBody(t, nil, nil),
			isNotify:  true,
			notifyErr: errors.New("dial tcp: connection refused"),

			want: want{
				statusCode: http.StatusInternalServerError,
				message:    MsgRelayFailed,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/api/purchase", test.body)
			writer := httptest.NewRecorder()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			n := mock.NewMockOrderNotifier(ctrl)
			if test.isNotify {
				n.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(test.notifyErr)
			} else {
				n.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(0)
			}

			purchase := New(n, entity.DefaultCatalog)
			handler := purchase.CreatePurchase()
			handler(writer, request)

			res := writer.Result()
			defer res.Body.Close()

			assert.Equal(t, test.want.statusCode, res.StatusCode)
			assert.Equal(t, "application/json", res.Header.Get("Content-Type"))

			var out model.PurchaseResponse
			require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
			assert.Equal(t, test.want.success, out.Success)
			assert.Equal(t, test.want.message, out.Message)
			if test.want.success {
				assert.NotEmpty(t, out.OrderID)
			}
		})
	}
}

func TestCreatePurchaseRelaysOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	n := mock.NewMockOrderNotifier(ctrl)

	var relayed entity.Order
	n.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, order entity.Order) error {
			relayed = order
			return nil
		},
	)

	purchase := New(n, entity.DefaultCatalog)
	request := httptest.NewRequest(http.MethodPost, "/api/purchase", purchaseBody(t, nil, map[string]any{"cardType": "debit"}))
	writer := httptest.NewRecorder()
	purchase.CreatePurchase()(writer, request)

	require.Equal(t, http.StatusOK, writer.Code)
	assert.NotEmpty(t, relayed.ID)
	assert.Equal(t, "123456789", relayed.PlayerID)
	assert.Equal(t, entity.CurrencyDiamonds, relayed.CurrencyType)
	assert.Equal(t, "1060", relayed.Amount)
	assert.Equal(t, "9.99", relayed.Price)
	assert.Equal(t, entity.CardDebit, relayed.CardType)
}
