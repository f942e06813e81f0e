package service

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/goapub/pos-api/internal/domain/billing"
	"github.com/goapub/pos-api/internal/domain/enum"
	"github.com/goapub/pos-api/internal/domain/repository"
	"github.com/goapub/pos-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// ReportService builds the end-of-day report from the payment journal and
// the order lines
type ReportService struct {
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
	loc         *time.Location
}

// NewReportService creates a new report service
func NewReportService(orderRepo repository.OrderRepository, paymentRepo repository.PaymentRepository, loc *time.Location) *ReportService {
	return &ReportService{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		loc:         loc,
	}
}

// DailyReport is the end-of-day summary
type DailyReport struct {
	Date        string          `json:"date"`
	Payments    int             `json:"payments"`
	Revenue     decimal.Decimal `json:"-"`
	Cash        decimal.Decimal `json:"-"`
	Card        decimal.Decimal `json:"-"`
	CashPercent float64         `json:"cash_percent"`
	CardPercent float64         `json:"card_percent"`
	ItemsSold   int             `json:"items_sold"`
	Products    []ProductSales  `json:"products"`
}

func (r DailyReport) MarshalJSON() ([]byte, error) {
	type Alias DailyReport
	return json.Marshal(&struct {
		Alias
		Revenue float64 `json:"revenue"`
		Cash    float64 `json:"cash"`
		Card    float64 `json:"card"`
	}{
		Alias:   Alias(r),
		Revenue: billing.Display(r.Revenue),
		Cash:    billing.Display(r.Cash),
		Card:    billing.Display(r.Card),
	})
}

// ProductSales is one row of the sold products table
type ProductSales struct {
	ProductID    string               `json:"product_id"`
	Name         string               `json:"name"`
	Category     enum.ProductCategory `json:"category"`
	Quantity     int                  `json:"quantity"`
	Revenue      decimal.Decimal      `json:"-"`
	AveragePrice decimal.Decimal      `json:"-"`
}

func (p ProductSales) MarshalJSON() ([]byte, error) {
	type Alias ProductSales
	return json.Marshal(&struct {
		Alias
		Revenue      float64 `json:"revenue"`
		AveragePrice float64 `json:"average_price"`
	}{
		Alias:        Alias(p),
		Revenue:      billing.Display(p.Revenue),
		AveragePrice: billing.Display(p.AveragePrice),
	})
}

// Daily builds the report for a calendar day (YYYY-MM-DD) in the configured
// timezone. An empty date means today.
func (s *ReportService) Daily(ctx context.Context, date string) (*DailyReport, error) {
	var day time.Time
	if date == "" {
		now := time.Now().In(s.loc)
		day = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	} else {
		var err error
		day, err = time.ParseInLocation("2006-01-02", date, s.loc)
		if err != nil {
			return nil, apperror.NewInvalidInputError("date", "must be formatted as YYYY-MM-DD")
		}
	}
	start := day.UTC()
	end := day.AddDate(0, 0, 1).UTC()

	payments, err := s.paymentRepo.ListBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	items, err := s.orderRepo.ListItemsBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	report := &DailyReport{
		Date:     day.Format("2006-01-02"),
		Payments: len(payments),
		Revenue:  decimal.Zero,
		Cash:     decimal.Zero,
		Card:     decimal.Zero,
		Products: []ProductSales{},
	}
	for i := range payments {
		report.Cash = report.Cash.Add(payments[i].Cash)
		report.Card = report.Card.Add(payments[i].Card)
	}
	report.Revenue = report.Cash.Add(report.Card)
	if report.Revenue.IsPositive() {
		report.CashPercent = percentOf(report.Cash, report.Revenue)
		report.CardPercent = percentOf(report.Card, report.Revenue)
	}

	index := make(map[string]int)
	for _, item := range items {
		i, ok := index[item.ProductID]
		if !ok {
			i = len(report.Products)
			index[item.ProductID] = i
			report.Products = append(report.Products, ProductSales{
				ProductID: item.ProductID,
				Name:      item.Name,
				Category:  item.Category,
				Revenue:   decimal.Zero,
			})
		}
		report.Products[i].Quantity += item.Quantity
		report.Products[i].Revenue = report.Products[i].Revenue.Add(item.Total)
		report.ItemsSold += item.Quantity
	}
	for i := range report.Products {
		p := &report.Products[i]
		p.AveragePrice = p.Revenue.Div(decimal.NewFromInt(int64(p.Quantity)))
	}
	sort.SliceStable(report.Products, func(i, j int) bool {
		return report.Products[i].Revenue.GreaterThan(report.Products[j].Revenue)
	})

	return report, nil
}

func percentOf(part, whole decimal.Decimal) float64 {
	return part.Mul(decimal.NewFromInt(100)).Div(whole).Round(1).InexactFloat64()
}
