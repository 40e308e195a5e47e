package validators

import (
	"regexp"

	"github.com/denmor86/ya-wallet/internal/models"
	"github.com/shopspring/decimal"
)

var (
	// дата транзакции: строгий формат YYYY-MM-DD
	dateRegexp = regexp.MustCompile(`^\d{4}-(0[1-9]|1[012])-(0[1-9]|[12][0-9]|3[01])$`)
	// период отчёта: строгий формат YYYY-MM
	periodRegexp = regexp.MustCompile(`^\d{4}-(0[1-9]|1[012])$`)
)

// CheckDate проверяет дату транзакции в формате YYYY-MM-DD
func CheckDate(date string) bool {
	return dateRegexp.MatchString(date)
}

// CheckPeriod проверяет период отчёта в формате YYYY-MM
func CheckPeriod(period string) bool {
	return periodRegexp.MatchString(period)
}

// CheckAmount проверяет, что сумма транзакции положительная
func CheckAmount(amount decimal.Decimal) bool {
	return amount.GreaterThan(decimal.Zero)
}

// CheckCategory проверяет, что категория входит в закрытый набор
func CheckCategory(category models.Category) bool {
	return category.IsValid()
}
