package storefront

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/avGenie/go-topup-store/internal/app/converter"
	"github.com/avGenie/go-topup-store/internal/app/entity"
	"github.com/avGenie/go-topup-store/internal/app/usecase/formatter"
	"github.com/avGenie/go-topup-store/internal/app/usecase/selection"
	"github.com/avGenie/go-topup-store/internal/app/usecase/validator"
	"go.uber.org/zap"
)

var (
	ErrUnknownField   = errors.New("unknown form field")
	ErrUnknownCommand = errors.New("unknown storefront command")
)

type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSuccess
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Storefront owns the selection and form of one page session and runs
// purchase submissions, at most one at a time.
type Storefront struct {
	mu sync.Mutex

	selection *selection.State
	fields    map[string]string
	state     State

	presenter Presenter
	tokenizer PaymentTokenizer
	sender    PurchaseSender
}

func New(catalog entity.Catalog, presenter Presenter, tokenizer PaymentTokenizer, sender PurchaseSender) *Storefront {
	s := &Storefront{
		selection: selection.New(catalog),
		fields:    make(map[string]string, len(entity.FormRequiredFields)),
		presenter: presenter,
		tokenizer: tokenizer,
		sender:    sender,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.presenter.SetSubmitLabel(LabelSubmit)
	s.refresh()

	return s
}

// Dispatch applies one command. Submit blocks until the submission attempt
// ends; submitting while not eligible or while another attempt runs is a
// no-op.
func (s *Storefront) Dispatch(ctx context.Context, cmd Command) error {
	switch c := cmd.(type) {
	case Submit:
		s.submit(ctx)
		return nil
	case SelectCurrency:
		return s.mutate(func() error { return s.selection.SelectCurrency(c.Currency) })
	case SelectTier:
		return s.mutate(func() error { return s.selection.SelectTier(c.Amount) })
	case SelectCardType:
		return s.mutate(func() error { return s.selection.SelectCardType(c.CardType) })
	case SetField:
		return s.mutate(func() error { return s.setField(c.Name, c.Value) })
	default:
		return fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}
}

func (s *Storefront) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

func (s *Storefront) Field(name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.fields[name]
}

func (s *Storefront) Selection() (entity.CurrencyType, entity.Tier, bool, entity.CardType) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tier, ok := s.selection.Tier()
	return s.selection.Currency(), tier, ok, s.selection.CardType()
}

func (s *Storefront) mutate(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(); err != nil {
		return err
	}
	s.refresh()

	return nil
}

func (s *Storefront) setField(name, value string) error {
	if !knownField(name) {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}

	s.fields[name] = formatter.ForField(name)(value)

	return nil
}

func (s *Storefront) submit(ctx context.Context) {
	s.mu.Lock()
	if s.state != StateIdle || !s.eligible() {
		state := s.state
		s.mu.Unlock()
		zap.L().Debug("purchase submit ignored", zap.Stringer("state", state))
		return
	}

	s.state = StateSubmitting
	s.presenter.SetSubmitEnabled(false)
	s.presenter.SetSubmitLabel(LabelProcessing)

	order := s.buildOrder()
	card := s.buildCard()
	confirmation := s.confirmation()
	s.mu.Unlock()

	ok, message := s.send(ctx, order, card)

	s.mu.Lock()
	defer s.mu.Unlock()

	if ok {
		s.state = StateSuccess
		confirmation.OrderID = message
		s.presenter.ShowSuccess(confirmation)
		s.clear()
	} else {
		s.state = StateFailed
		s.presenter.ShowFailure(message)
	}

	s.presenter.SetSubmitLabel(LabelSubmit)
	s.state = StateIdle
	s.refresh()
}

// send runs the network part of a submission without the lock. On success
// the returned string is the order id, otherwise the user facing reason.
func (s *Storefront) send(ctx context.Context, order entity.Order, card Card) (bool, string) {
	token, err := s.tokenizer.Tokenize(ctx, card)
	if err != nil || len(strings.TrimSpace(token)) == 0 {
		zap.L().Warn("payment tokenization failed", zap.Error(err))
		return false, MsgPayment
	}
	order.PaymentToken = token

	response, err := s.sender.SendPurchase(ctx, converter.ConvertOrderToPurchaseRequest(order))
	if err != nil {
		zap.L().Warn("purchase submission failed", zap.Error(err))
		return false, MsgConnection
	}

	if !response.Success {
		return false, failureMessage(response.Message)
	}

	return true, response.OrderID
}

func (s *Storefront) buildOrder() entity.Order {
	tier, _ := s.selection.Tier()

	return entity.Order{
		PlayerID:     s.fields[entity.FieldPlayerID],
		CurrencyType: s.selection.Currency(),
		Amount:       tier.Amount,
		Price:        tier.Price,
		FullName:     s.fields[entity.FieldFullName],
		DNI:          s.fields[entity.FieldDNI],
		Country:      s.fields[entity.FieldCountry],
		Email:        s.fields[entity.FieldEmail],
		CardType:     s.selection.CardType(),
	}
}

func (s *Storefront) buildCard() Card {
	return Card{
		Number:     strings.ReplaceAll(s.fields[entity.FieldCardNumber], " ", ""),
		HolderName: s.fields[entity.FieldCardName],
		Expiry:     s.fields[entity.FieldExpiry],
		CVV:        s.fields[entity.FieldCVV],
	}
}

func (s *Storefront) confirmation() Confirmation {
	summary := s.summary()

	return Confirmation{
		PlayerID: s.fields[entity.FieldPlayerID],
		Product:  summary.Product,
		Amount:   summary.Amount,
		Total:    summary.Total,
		Currency: string(s.selection.Currency()),
	}
}

func (s *Storefront) clear() {
	for name := range s.fields {
		delete(s.fields, name)
	}
	s.selection.Reset()
}

func (s *Storefront) eligible() bool {
	return validator.Eligible(s.lookup, s.selection)
}

func (s *Storefront) lookup(field string) string {
	return s.fields[field]
}

func (s *Storefront) refresh() {
	s.presenter.SetSubmitEnabled(s.state == StateIdle && s.eligible())
	s.presenter.ShowSummary(s.summary())
}

func (s *Storefront) summary() Summary {
	summary := Summary{
		PlayerID: emptySummaryValue,
		Product:  emptySummaryValue,
		Amount:   emptySummaryValue,
		Total:    emptySummaryTotal,
	}

	if playerID := s.fields[entity.FieldPlayerID]; len(playerID) != 0 {
		summary.PlayerID = playerID
	}

	if tier, ok := s.selection.Tier(); ok {
		summary.Product = s.selection.Currency().Label()
		summary.Amount = converter.FormatAmount(tier.Amount)
		summary.Total = "$" + tier.Price
	}

	return summary
}

func knownField(name string) bool {
	for _, field := range entity.FormRequiredFields {
		if field == name {
			return true
		}
	}
	return false
}
