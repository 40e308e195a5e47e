package models

// Category - категория транзакции, закрытый набор значений
type Category string

// Категории доходов
const (
	CategorySalary           Category = "З/П"
	CategoryAdditionalIncome Category = "Доп. доход"
)

// Категории расходов
const (
	CategoryProducts      Category = "Продукты"
	CategoryAlcohol       Category = "Алкоголь"
	CategoryEntertainment Category = "Развлечения"
	CategoryHealth        Category = "Здоровье"
	CategoryTransport     Category = "Транспорт"
	CategoryForHome       Category = "Всё для дома"
	CategoryTechnics      Category = "Техника"
	CategoryUtilities     Category = "Коммуналка и связь"
	CategorySportAndHobby Category = "Спорт и хобби"
	CategoryEducation     Category = "Образование"
	CategoryOther         Category = "Прочее"
)

// categories - полный список категорий в фиксированном порядке выдачи
var categories = []Category{
	CategoryProducts,
	CategoryAlcohol,
	CategoryEntertainment,
	CategoryHealth,
	CategoryTransport,
	CategoryForHome,
	CategoryTechnics,
	CategoryUtilities,
	CategorySportAndHobby,
	CategoryEducation,
	CategoryOther,
	CategorySalary,
	CategoryAdditionalIncome,
}

// IsIncome - принадлежность категории к доходам.
// Знак изменения баланса определяется только этим признаком.
func (c Category) IsIncome() bool {
	return c == CategorySalary || c == CategoryAdditionalIncome
}

// IsValid - проверка, что категория входит в закрытый набор
func (c Category) IsValid() bool {
	for _, category := range categories {
		if c == category {
			return true
		}
	}
	return false
}

// IncomeCategories - список категорий доходов
func IncomeCategories() []Category {
	var result []Category
	for _, category := range categories {
		if category.IsIncome() {
			result = append(result, category)
		}
	}
	return result
}

// ExpenseCategories - список категорий расходов
func ExpenseCategories() []Category {
	var result []Category
	for _, category := range categories {
		if !category.IsIncome() {
			result = append(result, category)
		}
	}
	return result
}

// AllCategories - полный список категорий
func AllCategories() []Category {
	result := make([]Category, len(categories))
	copy(result, categories)
	return result
}

// MonthNames - названия календарных месяцев в порядке выдачи статистики
var MonthNames = [12]string{
	"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
	"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь",
}
