package model

import "strings"

// Category classifies an expense into one of the fixed spending buckets.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryUtilities     Category = "Utilities"
	CategoryEntertainment Category = "Entertainment"
	CategoryHealth        Category = "Health"
	CategoryKid           Category = "Kid"
	CategoryPets          Category = "Pets"
	CategoryClothes       Category = "Clothes"
	CategoryHome          Category = "Home"
	CategoryOther         Category = "Other"
	CategoryRent          Category = "Rent"
	CategoryCash          Category = "Cash"
)

// Categories returns every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryFood, CategoryTransport, CategoryUtilities, CategoryEntertainment,
		CategoryHealth, CategoryKid, CategoryPets, CategoryClothes,
		CategoryHome, CategoryOther, CategoryRent, CategoryCash,
	}
}

// ParseCategory matches name against the fixed set, ignoring case, and
// returns the canonical spelling.
func ParseCategory(name string) (Category, bool) {
	for _, c := range Categories() {
		if strings.EqualFold(string(c), name) {
			return c, true
		}
	}
	return "", false
}

// CategoryList returns the categories joined for display, e.g. in usage text.
func CategoryList() string {
	cats := Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
