package catalog

import (
	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryOutside Category = "outside"
	CategoryCovered Category = "covered"
	CategoryIndoor  Category = "indoor"
)

var Categories = []Category{CategoryOutside, CategoryCovered, CategoryIndoor}

var categoryFactors = map[Category]decimal.Decimal{
	CategoryOutside: decimal.RequireFromString("0.50"),
	CategoryCovered: decimal.RequireFromString("0.75"),
	CategoryIndoor:  decimal.RequireFromString("1.00"),
}

var categoryLabels = map[Category]string{
	CategoryOutside: "Außenstellplatz",
	CategoryCovered: "Überdacht",
	CategoryIndoor:  "Halle",
}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

func (c Category) IsValid() bool {
	_, ok := categoryFactors[c]
	return ok
}

// Factor is the multiplier applied to the formula price.
func (c Category) Factor() decimal.Decimal {
	return categoryFactors[c]
}

func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

func (c Category) String() string { return string(c) }
