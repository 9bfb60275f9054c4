package types

// Category classifies a listed health-data asset. The set is fixed; consent
// is granted per (owner, category) pair and requests declare the categories
// they need.
type Category string

const (
	CategoryEHR           Category = "ehr"
	CategoryGenomic       Category = "genomic"
	CategoryImaging       Category = "imaging"
	CategoryWearable      Category = "wearable"
	CategoryLabResults    Category = "lab_results"
	CategoryClinicalNotes Category = "clinical_notes"
)

// validCategories is the set of recognized category values.
var validCategories = map[Category]bool{
	CategoryEHR:           true,
	CategoryGenomic:       true,
	CategoryImaging:       true,
	CategoryWearable:      true,
	CategoryLabResults:    true,
	CategoryClinicalNotes: true,
}

// Valid reports whether c is a recognized category.
func (c Category) Valid() bool {
	return validCategories[c]
}

// Categories returns all recognized categories in a stable order.
func Categories() []Category {
	return []Category{
		CategoryEHR,
		CategoryGenomic,
		CategoryImaging,
		CategoryWearable,
		CategoryLabResults,
		CategoryClinicalNotes,
	}
}

// BasePrice returns the reference market price for a category, used by the
// earnings projection. Returns 0 for unknown categories.
func (c Category) BasePrice() Money {
	return categoryBasePrices[c]
}

// categoryBasePrices is the reference price table, in smallest currency
// units per record.
var categoryBasePrices = map[Category]Money{
	CategoryEHR:           5_000_000,
	CategoryGenomic:       20_000_000,
	CategoryImaging:       10_000_000,
	CategoryWearable:      1_000_000,
	CategoryLabResults:    3_000_000,
	CategoryClinicalNotes: 2_000_000,
}
