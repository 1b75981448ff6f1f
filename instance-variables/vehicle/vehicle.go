// Package vehicle computes depreciated value two ways: once by parking the
// query year on the receiver between method calls, once by passing it along.
//
// Both give the same numbers. Only Truck is safe to share.
package vehicle

// AnnualPercentageLost is the share of the original price a vehicle loses
// every year.
const AnnualPercentageLost = 10

// Depreciated returns price minus the straight-line loss from purchaseYear to
// queryYear. Integer arithmetic: the yearly loss is price*10/100.
func Depreciated(purchaseYear, price, queryYear int) int {
	return price - lostValue(purchaseYear, price, queryYear)
}

func lostValue(purchaseYear, price, queryYear int) int {
	return (queryYear - purchaseYear) * (price * AnnualPercentageLost / 100)
}

// Van uses a field to carry the query year from ValueOfTheYear to lostValue.
//
// currentYear is not an attribute of a van. It is scratch space that outlives
// the call, so a Van shared between goroutines races on it, and a later call
// to lostValue silently reuses whatever year the last caller asked about.
type Van struct {
	Year          int
	OriginalPrice int

	currentYear int
}

// NewVan returns a Van bought in year for price.
func NewVan(year, price int) *Van {
	return &Van{Year: year, OriginalPrice: price}
}

// ValueOfTheYear returns the van's value in year.
func (v *Van) ValueOfTheYear(year int) int {
	v.currentYear = year
	return v.OriginalPrice - v.lostValue()
}

func (v *Van) lostValue() int {
	return lostValue(v.Year, v.OriginalPrice, v.currentYear)
}

// Truck passes the query year as a parameter. Nothing is written to the
// receiver, so a Truck value can be shared freely.
type Truck struct {
	Year          int
	OriginalPrice int
}

// NewTruck returns a Truck bought in year for price.
func NewTruck(year, price int) Truck {
	return Truck{Year: year, OriginalPrice: price}
}

// ValueOfTheYear returns the truck's value in year.
func (t Truck) ValueOfTheYear(year int) int {
	return t.OriginalPrice - t.LostValue(year)
}

// LostValue returns how much value the truck has lost by year.
func (t Truck) LostValue(year int) int {
	return lostValue(t.Year, t.OriginalPrice, year)
}
