package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// NotAvailable - маркер месяца без транзакций, отличим от нулевой суммы
const NotAvailable = "N/A"

// appendAmount - сериализация суммы в JSON-число без кавычек
func appendAmount(buffer *bytes.Buffer, amount decimal.Decimal) {
	value, _ := amount.Float64()
	buffer.Write(strconv.AppendFloat(nil, value, 'f', -1, 64))
}

// MonthsStats - суммы транзакций по 12 календарным месяцам.
// Месяц без транзакций выдаётся как "N/A".
type MonthsStats struct {
	totals  [12]decimal.Decimal
	present [12]bool
}

// Add - добавление суммы в корзину месяца
func (s *MonthsStats) Add(month time.Month, amount decimal.Decimal) {
	index := int(month) - 1
	s.totals[index] = s.totals[index].Add(amount)
	s.present[index] = true
}

// Total - сумма по месяцу и признак наличия транзакций
func (s *MonthsStats) Total(month time.Month) (decimal.Decimal, bool) {
	index := int(month) - 1
	return s.totals[index], s.present[index]
}

// MarshalJSON - сериализация в объект с фиксированным порядком месяцев
func (s MonthsStats) MarshalJSON() ([]byte, error) {
	var buffer bytes.Buffer
	buffer.WriteByte('{')
	for i, name := range MonthNames {
		if i > 0 {
			buffer.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buffer.Write(key)
		buffer.WriteByte(':')
		if !s.present[i] {
			buffer.WriteString(`"` + NotAvailable + `"`)
			continue
		}
		appendAmount(&buffer, s.totals[i])
	}
	buffer.WriteByte('}')
	return buffer.Bytes(), nil
}

// categoryGroup - суммы по описаниям внутри одной категории
type categoryGroup struct {
	total        decimal.Decimal
	descriptions []string
	amounts      map[string]decimal.Decimal
}

// PeriodData - группировка сумм категория -> описание за период.
// Категории и описания хранятся в порядке первого появления.
type PeriodData struct {
	categories []Category
	groups     map[Category]*categoryGroup
}

// Add - добавление суммы в группу категории и описания
func (d *PeriodData) Add(category Category, description string, amount decimal.Decimal) {
	if d.groups == nil {
		d.groups = make(map[Category]*categoryGroup)
	}
	group, ok := d.groups[category]
	if !ok {
		group = &categoryGroup{amounts: make(map[string]decimal.Decimal)}
		d.groups[category] = group
		d.categories = append(d.categories, category)
	}
	group.total = group.total.Add(amount)
	if _, ok := group.amounts[description]; !ok {
		group.descriptions = append(group.descriptions, description)
	}
	group.amounts[description] = group.amounts[description].Add(amount)
}

// CategoryTotal - накопленная сумма по категории
func (d *PeriodData) CategoryTotal(category Category) decimal.Decimal {
	if group, ok := d.groups[category]; ok {
		return group.total
	}
	return decimal.Zero
}

// Categories - категории в порядке первого появления
func (d *PeriodData) Categories() []Category {
	return d.categories
}

// MarshalJSON - сериализация в объект категория -> {"total": ..., описание: ...}
// с сохранением порядка первого появления
func (d PeriodData) MarshalJSON() ([]byte, error) {
	var buffer bytes.Buffer
	buffer.WriteByte('{')
	for i, category := range d.categories {
		if i > 0 {
			buffer.WriteByte(',')
		}
		key, err := json.Marshal(string(category))
		if err != nil {
			return nil, err
		}
		buffer.Write(key)
		buffer.WriteString(`:{"total":`)
		group := d.groups[category]
		appendAmount(&buffer, group.total)
		for _, description := range group.descriptions {
			buffer.WriteByte(',')
			key, err := json.Marshal(description)
			if err != nil {
				return nil, err
			}
			buffer.Write(key)
			buffer.WriteByte(':')
			appendAmount(&buffer, group.amounts[description])
		}
		buffer.WriteByte('}')
	}
	buffer.WriteByte('}')
	return buffer.Bytes(), nil
}

// IncomeStatsResponse - модель ответа помесячной статистики доходов
type IncomeStatsResponse struct {
	Incomes     []TransactionResponse `json:"incomes"`
	MonthsStats MonthsStats           `json:"monthsStats"`
}

// ExpenseStatsResponse - модель ответа помесячной статистики расходов
type ExpenseStatsResponse struct {
	Expenses    []TransactionResponse `json:"expenses"`
	MonthsStats MonthsStats           `json:"monthsStats"`
}

// IncomesPeriodReport - итог и группировка доходов за период
type IncomesPeriodReport struct {
	Total float64    `json:"incomeTotal"`
	Data  PeriodData `json:"incomesData"`
}

// ExpensesPeriodReport - итог и группировка расходов за период
type ExpensesPeriodReport struct {
	Total float64    `json:"expenseTotal"`
	Data  PeriodData `json:"expensesData"`
}

// PeriodResponse - модель ответа отчёта за период
type PeriodResponse struct {
	Incomes  IncomesPeriodReport  `json:"incomes"`
	Expenses ExpensesPeriodReport `json:"expenses"`
}
