package entity

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownCurrency = errors.New("unknown currency type")
	ErrUnknownTier     = errors.New("amount is not offered for currency")
	ErrPriceMismatch   = errors.New("price does not match tier")
)

// Tier is a fixed amount/price pairing of one currency.
type Tier struct {
	Amount string
	Price  string
}

type Catalog map[CurrencyType][]Tier

var DefaultCatalog = Catalog{
	CurrencyDiamonds: {
		{Amount: "100", Price: "0.99"},
		{Amount: "310", Price: "2.99"},
		{Amount: "520", Price: "4.99"},
		{Amount: "1060", Price: "9.99"},
		{Amount: "2180", Price: "19.99"},
		{Amount: "5600", Price: "49.99"},
	},
	CurrencyGold: {
		{Amount: "1000", Price: "0.49"},
		{Amount: "5000", Price: "1.99"},
		{Amount: "10000", Price: "3.49"},
		{Amount: "50000", Price: "14.99"},
	},
}

func (c Catalog) Tiers(currency CurrencyType) ([]Tier, error) {
	tiers, ok := c[currency]
	if !ok {
		return nil, ErrUnknownCurrency
	}
	return tiers, nil
}

func (c Catalog) Lookup(currency CurrencyType, amount string) (Tier, error) {
	tiers, err := c.Tiers(currency)
	if err != nil {
		return Tier{}, err
	}

	for _, tier := range tiers {
		if tier.Amount == amount {
			return tier, nil
		}
	}

	return Tier{}, ErrUnknownTier
}

// Match reports whether amount and price name the same tier. Prices compare
// numerically so "9.99" and "9.990" are the same tier.
func (c Catalog) Match(currency CurrencyType, amount, price string) error {
	tier, err := c.Lookup(currency, amount)
	if err != nil {
		return err
	}

	want, err := decimal.NewFromString(tier.Price)
	if err != nil {
		return err
	}
	got, err := decimal.NewFromString(price)
	if err != nil {
		return ErrPriceMismatch
	}
	if !want.Equal(got) {
		return ErrPriceMismatch
	}

	return nil
}
