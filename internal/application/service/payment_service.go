package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goapub/pos-api/internal/domain/billing"
	"github.com/goapub/pos-api/internal/domain/entity"
	"github.com/goapub/pos-api/internal/domain/enum"
	"github.com/goapub/pos-api/internal/domain/repository"
	"github.com/goapub/pos-api/pkg/apperror"
	"github.com/goapub/pos-api/pkg/metrics"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PaymentService validates payment attempts against a table's bill and
// drives the table through its billing states
type PaymentService struct {
	tableRepo   repository.TableRepository
	paymentRepo repository.PaymentRepository
	tx          repository.Transactor
	metrics     *metrics.Metrics
	log         *zap.Logger
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	tableRepo repository.TableRepository,
	paymentRepo repository.PaymentRepository,
	tx repository.Transactor,
	m *metrics.Metrics,
	log *zap.Logger,
) *PaymentService {
	return &PaymentService{
		tableRepo:   tableRepo,
		paymentRepo: paymentRepo,
		tx:          tx,
		metrics:     m,
		log:         log,
	}
}

// PaymentInput is one submission of the payment dialog
type PaymentInput struct {
	DiscountPercent decimal.Decimal
	Cash            decimal.Decimal
	Card            decimal.Decimal
}

// PaymentResult reports whether an attempt was applied. A refused attempt is
// not an error; Reason says why and the table is untouched.
type PaymentResult struct {
	Accepted bool
	NewBill  decimal.Decimal
	Reason   enum.RejectionReason
	Quote    billing.Quote
	Table    *entity.Table
}

func (r PaymentResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Accepted   bool                 `json:"accepted"`
		NewBill    float64              `json:"new_bill"`
		Reason     enum.RejectionReason `json:"reason,omitempty"`
		FinalTotal float64              `json:"final_total"`
		Tendered   float64              `json:"tendered"`
		Remaining  float64              `json:"remaining"`
		Table      *entity.Table        `json:"table"`
	}{
		Accepted:   r.Accepted,
		NewBill:    billing.Display(r.NewBill),
		Reason:     r.Reason,
		FinalTotal: billing.Display(r.Quote.Final),
		Tendered:   billing.Display(r.Quote.Tendered),
		Remaining:  billing.ClampDisplay(r.Quote.Remaining),
		Table:      r.Table,
	})
}

// QuoteResult is the payment dialog preview
type QuoteResult struct {
	billing.Quote
}

func (q QuoteResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Total           float64 `json:"total"`
		DiscountPercent float64 `json:"discount_percent"`
		DiscountAmount  float64 `json:"discount_amount"`
		FinalTotal      float64 `json:"final_total"`
		Cash            float64 `json:"cash"`
		Card            float64 `json:"card"`
		Tendered        float64 `json:"tendered"`
		Remaining       float64 `json:"remaining"`
		CanPayPartial   bool    `json:"can_pay_partial"`
		CanPayFull      bool    `json:"can_pay_full"`
	}{
		Total:           billing.Display(q.Total),
		DiscountPercent: q.DiscountPercent.InexactFloat64(),
		DiscountAmount:  billing.Display(q.DiscountAmount),
		FinalTotal:      billing.Display(q.Final),
		Cash:            billing.Display(q.Cash),
		Card:            billing.Display(q.Card),
		Tendered:        billing.Display(q.Tendered),
		Remaining:       billing.ClampDisplay(q.Remaining),
		CanPayPartial:   billing.PartialRejection(q.Quote) == enum.RejectionNone,
		CanPayFull:      billing.FullRejection(q.Quote) == enum.RejectionNone,
	})
}

// Quote previews the dialog arithmetic against the table's current bill
func (s *PaymentService) Quote(ctx context.Context, tableID string, input PaymentInput) (*QuoteResult, error) {
	if err := billing.ValidateInput(input.DiscountPercent, input.Cash, input.Card); err != nil {
		return nil, err
	}

	table, err := s.tableRepo.GetByID(ctx, tableID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, apperror.NewNotFoundError("Table")
	}

	q := billing.Calculate(table.CurrentBill, input.DiscountPercent, input.Cash, input.Card)
	return &QuoteResult{Quote: q}, nil
}

// AttemptPartialPayment takes the tendered amount off the raw bill. It is
// refused when nothing is tendered or when the tender already covers the
// discounted total.
func (s *PaymentService) AttemptPartialPayment(ctx context.Context, tableID string, input PaymentInput) (*PaymentResult, error) {
	return s.attempt(ctx, tableID, enum.PaymentKindPartial, input)
}

// AttemptFullPayment settles the table when the tender covers the discounted
// total. Overpayment is absorbed; no change is computed.
func (s *PaymentService) AttemptFullPayment(ctx context.Context, tableID string, input PaymentInput) (*PaymentResult, error) {
	return s.attempt(ctx, tableID, enum.PaymentKindFull, input)
}

func (s *PaymentService) attempt(ctx context.Context, tableID string, kind enum.PaymentKind, input PaymentInput) (*PaymentResult, error) {
	if err := billing.ValidateInput(input.DiscountPercent, input.Cash, input.Card); err != nil {
		return nil, err
	}

	result := &PaymentResult{}
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		table, err := s.tableRepo.GetByID(ctx, tableID)
		if err != nil {
			return err
		}
		if table == nil {
			return apperror.NewNotFoundError("Table")
		}

		q := billing.Calculate(table.CurrentBill, input.DiscountPercent, input.Cash, input.Card)
		result.Quote = q
		result.Table = table

		if kind == enum.PaymentKindPartial {
			result.Reason = billing.PartialRejection(q)
		} else {
			result.Reason = billing.FullRejection(q)
		}
		if result.Reason != enum.RejectionNone {
			result.NewBill = table.CurrentBill
			return nil
		}

		billBefore := table.CurrentBill
		// settling an already cleared table changes nothing and is not journaled
		settled := !table.Occupied && billBefore.IsZero() && table.Guests == nil

		if kind == enum.PaymentKindPartial {
			billing.ApplyPartialPayment(table, q.Tendered)
		} else {
			billing.ApplyFullPayment(table)
		}
		result.Accepted = true
		result.NewBill = table.CurrentBill

		if kind == enum.PaymentKindFull && settled {
			return nil
		}

		if err := s.tableRepo.Update(ctx, table); err != nil {
			return fmt.Errorf("failed to update table bill: %w", err)
		}

		payment := &entity.Payment{
			TableID:         table.ID,
			Kind:            kind,
			DiscountPercent: input.DiscountPercent,
			BillBefore:      billBefore,
			FinalTotal:      q.Final,
			Cash:            input.Cash,
			Card:            input.Card,
			BillAfter:       table.CurrentBill,
		}
		if err := s.paymentRepo.Create(ctx, payment); err != nil {
			return fmt.Errorf("failed to record payment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !result.Accepted {
		s.metrics.PaymentAttempt(string(kind), string(result.Reason))
		s.log.Info("payment rejected",
			zap.String("table_id", tableID),
			zap.String("kind", string(kind)),
			zap.String("reason", string(result.Reason)),
			zap.String("bill", result.NewBill.String()),
			zap.String("final", result.Quote.Final.String()),
			zap.String("tendered", result.Quote.Tendered.String()),
		)
		return result, nil
	}

	s.metrics.PaymentAttempt(string(kind), "accepted")
	s.log.Info("payment accepted",
		zap.String("table_id", tableID),
		zap.String("kind", string(kind)),
		zap.String("tendered", result.Quote.Tendered.String()),
		zap.String("bill", result.NewBill.String()),
	)
	return result, nil
}

// ListPayments returns the journal of accepted payments for a table
func (s *PaymentService) ListPayments(ctx context.Context, tableID string) ([]entity.Payment, error) {
	table, err := s.tableRepo.GetByID(ctx, tableID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, apperror.NewNotFoundError("Table")
	}
	return s.paymentRepo.ListByTable(ctx, tableID)
}
