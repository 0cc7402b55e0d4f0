package settlement

// =============================================================================
// CATEGORY - Closed set of courier contractual classes
// =============================================================================

// Category identifies a courier contractual class. Each category has its own
// pay period window, tenure daily rate, and pay formula. The set is closed:
// adding a category means adding a formula implementation and registering it
// in formula.go, and asserting its divisor constant is nonzero.
type Category string

const (
	CategoryMotorcycle     Category = "Motorcycle"
	CategoryFoodTrial      Category = "Food Trial"
	CategoryFoodInhouseNew Category = "Food In-House New"
	CategoryFoodInhouseOld Category = "Food In-House Old"
	CategoryEcommerceWH    Category = "Ecommerce WH"
	CategoryEcommerce      Category = "Ecommerce"
	CategoryAjeer          Category = "Ajeer"
)

// CategoryAll is the sentinel request value meaning "compute every category
// and concatenate the results". It is not itself a Category.
const CategoryAll = "All"

// Categories returns the seven categories in their canonical order.
func Categories() []Category {
	return []Category{
		CategoryMotorcycle,
		CategoryFoodTrial,
		CategoryFoodInhouseNew,
		CategoryFoodInhouseOld,
		CategoryEcommerceWH,
		CategoryEcommerce,
		CategoryAjeer,
	}
}

// ParseCategory validates a category name. Unknown names (including "All")
// return an InvalidCategoryError.
func ParseCategory(name string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == name {
			return c, nil
		}
	}
	return "", &InvalidCategoryError{Name: name}
}

// ResolveCategories expands a request category value into the list of
// categories to compute: either the single named category, or all seven for
// the "All" sentinel.
func ResolveCategories(name string) ([]Category, error) {
	if name == CategoryAll {
		return Categories(), nil
	}
	c, err := ParseCategory(name)
	if err != nil {
		return nil, err
	}
	return []Category{c}, nil
}
