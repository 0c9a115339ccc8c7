package selection

import (
	"errors"

	"github.com/avGenie/go-topup-store/internal/app/entity"
)

var ErrUnknownCardType = errors.New("unknown card type")

// State is the storefront product selection. Mutation goes through the
// Select* methods only, which keep currency, tier and card type consistent.
type State struct {
	catalog  entity.Catalog
	currency entity.CurrencyType
	tier     *entity.Tier
	cardType entity.CardType
}

func New(catalog entity.Catalog) *State {
	s := &State{catalog: catalog}
	s.Reset()

	return s
}

func (s *State) Reset() {
	s.currency = entity.CurrencyDiamonds
	s.tier = nil
	s.cardType = entity.CardCredit
}

// SelectCurrency switches the active currency. Tiers are not shared between
// currencies so a switch drops the selected tier.
func (s *State) SelectCurrency(currency entity.CurrencyType) error {
	if _, err := s.catalog.Tiers(currency); err != nil {
		return err
	}
	if currency == s.currency {
		return nil
	}

	s.currency = currency
	s.tier = nil

	return nil
}

func (s *State) SelectTier(amount string) error {
	tier, err := s.catalog.Lookup(s.currency, amount)
	if err != nil {
		return err
	}

	s.tier = &tier

	return nil
}

func (s *State) SelectCardType(cardType entity.CardType) error {
	if !cardType.Valid() {
		return ErrUnknownCardType
	}

	s.cardType = cardType

	return nil
}

func (s *State) Currency() entity.CurrencyType {
	return s.currency
}

func (s *State) CardType() entity.CardType {
	return s.cardType
}

// Tier returns the selected tier and whether one is selected.
func (s *State) Tier() (entity.Tier, bool) {
	if s.tier == nil {
		return entity.Tier{}, false
	}
	return *s.tier, true
}

func (s *State) HasTier() bool {
	return s.tier != nil
}

func (s *State) Tiers() []entity.Tier {
	tiers, _ := s.catalog.Tiers(s.currency)
	return tiers
}
