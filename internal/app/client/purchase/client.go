package purchase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/avGenie/go-topup-store/internal/app/model"
)

const purchasePath = "/api/purchase"

var ErrTransport = errors.New("purchase endpoint unreachable")

type Client struct {
	client  *http.Client
	address string
}

func New(baseURL string, client *http.Client) (*Client, error) {
	address, err := url.JoinPath(baseURL, purchasePath)
	if err != nil {
		return nil, fmt.Errorf("error while building purchase address: %w", err)
	}

	if client == nil {
		client = http.DefaultClient
	}

	return &Client{
		client:  client,
		address: address,
	}, nil
}

// SendPurchase posts one order. A nil error means the endpoint answered, the
// outcome is then in the response. Failure statuses always yield
// Success=false, and an undecodable body yields an empty message.
func (c *Client) SendPurchase(ctx context.Context, request model.PurchaseRequest) (model.PurchaseResponse, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return model.PurchaseResponse{}, fmt.Errorf("error while marshalling purchase: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.address, bytes.NewReader(body))
	if err != nil {
		return model.PurchaseResponse{}, fmt.Errorf("error while creating purchase request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return model.PurchaseResponse{}, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer res.Body.Close()

	var response model.PurchaseResponse
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		return model.PurchaseResponse{}, nil
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		response.Success = false
	}

	return response, nil
}
