package services

import (
	"sort"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "finch/internal/errors"
	"finch/internal/models"
)

// suggestedOrderSize bounds the payoff-priority list.
const suggestedOrderSize = 3

// insightService ranks a user's debts by derived interest burden.
type insightService struct {
	db *gorm.DB
}

// NewInsightService creates a new DebtInsightServicer.
func NewInsightService(db *gorm.DB) DebtInsightServicer {
	return &insightService{db: db}
}

// ComputeDebtInsights loads all of the user's active debts, derives an
// interest rate from each payment decomposition, and returns the top
// debts by rate plus portfolio-wide summary statistics. A user with no
// debts gets the defined empty shape, never an error.
func (s *insightService) ComputeDebtInsights(userID uint) (*DebtInsight, error) {
	var debts []models.Debt
	// id ASC fixes first-seen order so equal-rate debts rank reproducibly.
	if err := s.db.Where("user_id = ?", userID).Order("id ASC").Find(&debts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	insight := &DebtInsight{
		Debts:          []DebtBreakdown{},
		SuggestedOrder: []DebtRank{},
	}
	if len(debts) == 0 {
		return insight, nil
	}

	ranked := make([]DebtBreakdown, 0, len(debts))
	rateSum := decimal.Zero
	for i := range debts {
		rate := deriveInterestRate(debts[i].CapitalRepayment, debts[i].InterestRepayment)
		rateSum = rateSum.Add(decimal.NewFromFloat(rate))
		insight.Summary.TotalDebt += debts[i].Amount
		insight.Summary.MonthlyPayment += debts[i].MonthlyPayment
		ranked = append(ranked, DebtBreakdown{
			Name:           debts[i].Name,
			Amount:         debts[i].Amount,
			MonthlyPayment: debts[i].MonthlyPayment,
			InterestRate:   rate,
			PayDueDate:     debts[i].PayDueDate,
		})
	}

	// Stable sort keeps equal-rate debts in input order across calls.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].InterestRate > ranked[j].InterestRate
	})

	top := len(ranked)
	if top > suggestedOrderSize {
		top = suggestedOrderSize
	}
	insight.Debts = ranked[:top]
	for _, d := range ranked[:top] {
		insight.SuggestedOrder = append(insight.SuggestedOrder, DebtRank{
			Name:         d.Name,
			InterestRate: d.InterestRate,
		})
	}

	avg, _ := rateSum.Div(decimal.NewFromInt(int64(len(debts)))).Round(2).Float64()
	insight.Summary.AvgInterestRate = avg

	return insight, nil
}

// deriveInterestRate computes interest / (capital + interest) * 100 to two
// decimal places. A zero-sum decomposition yields a zero rate.
func deriveInterestRate(capital, interest int64) float64 {
	total := capital + interest
	if total == 0 {
		return 0
	}
	rate, _ := decimal.NewFromInt(interest).
		Div(decimal.NewFromInt(total)).
		Mul(decimal.NewFromInt(100)).
		Round(2).
		Float64()
	return rate
}
