// Package payment checks out a shopping cart with an interchangeable payment
// method.
package payment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aalvaropc/patternkit/internal/domain"
	"github.com/aalvaropc/patternkit/internal/pattern/strategy"
)

var ErrInvalidAmount = errors.New("amount must be positive")

// Receipt describes a completed payment.
type Receipt struct {
	Method string
	Amount float64
	Detail string
}

func (r Receipt) String() string {
	return fmt.Sprintf("Paying %g %s", r.Amount, r.Detail)
}

// Method is a payment strategy.
type Method = strategy.Strategy[float64, Receipt]

type CreditCard struct{ Number string }

func (c CreditCard) Apply(amount float64) (Receipt, error) {
	return Receipt{Method: "credit-card", Amount: amount, Detail: "using credit card with card number " + c.Number}, nil
}

type EWallet struct{ WalletID string }

func (w EWallet) Apply(amount float64) (Receipt, error) {
	return Receipt{Method: "e-wallet", Amount: amount, Detail: "using e-wallet with ID " + w.WalletID}, nil
}

type CashOnDelivery struct{}

func (CashOnDelivery) Apply(amount float64) (Receipt, error) {
	return Receipt{Method: "cash-on-delivery", Amount: amount, Detail: "by cash on delivery."}, nil
}

// Cart delegates payment to its current method.
type Cart struct {
	pay *strategy.Context[float64, Receipt]
	log *slog.Logger
}

func NewCart(m Method, log *slog.Logger) (*Cart, error) {
	ctx, err := strategy.New(m)
	if err != nil {
		return nil, fmt.Errorf("new cart: %w", err)
	}
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Cart{pay: ctx, log: log}, nil
}

// Use swaps the payment method.
func (c *Cart) Use(m Method) error { return c.pay.Set(m) }

func (c *Cart) Checkout(amount float64) (Receipt, error) {
	if amount <= 0 {
		return Receipt{}, &domain.OpError{Op: "payment.checkout", Kind: domain.KindValidation, Err: ErrInvalidAmount}
	}
	r, err := c.pay.Perform(amount)
	if err != nil {
		return Receipt{}, fmt.Errorf("checkout: %w", err)
	}
	c.log.Debug("payment.checkout", "method", r.Method, "amount", amount)
	return r, nil
}

var (
	_ Method = CreditCard{}
	_ Method = EWallet{}
	_ Method = CashOnDelivery{}
)

type Demo struct {
	log *slog.Logger
}

func NewDemo(log *slog.Logger) *Demo {
	return &Demo{log: log}
}

func (d *Demo) Ref() domain.DemoRef {
	return domain.DemoRef{
		Name:    "strategy.payment",
		Pattern: "strategy",
		Summary: "Shopping cart paid by credit card, e-wallet or cash on delivery",
	}
}

func (d *Demo) Run(ctx context.Context, out io.Writer) error {
	const amount = 1000

	cart, err := NewCart(CreditCard{Number: "1234-5678-9101-1121"}, d.log)
	if err != nil {
		return err
	}
	for _, m := range []Method{nil, EWallet{WalletID: "mywallet123"}, CashOnDelivery{}} {
		if err := ctx.Err(); err != nil {
			return err
		}
		if m != nil {
			if err := cart.Use(m); err != nil {
				return err
			}
		}
		r, err := cart.Checkout(amount)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, r)
	}
	return nil
}
