package storefront

import "github.com/avGenie/go-topup-store/internal/app/entity"

// Command is one user action on the storefront.
type Command interface {
	command()
}

type SelectCurrency struct {
	Currency entity.CurrencyType
}

type SelectTier struct {
	Amount string
}

type SelectCardType struct {
	CardType entity.CardType
}

// SetField carries the raw input of a form field, it is stored formatted.
type SetField struct {
	Name  string
	Value string
}

type Submit struct{}

func (SelectCurrency) command() {}
func (SelectTier) command()     {}
func (SelectCardType) command() {}
func (SetField) command()       {}
func (Submit) command()         {}
