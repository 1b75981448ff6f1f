package vehicle

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/marcodamonte/semantics/internal/demo"
)

const (
	purchaseYear  = 2010
	originalPrice = 30000
	queryYear     = 2015
	reuseYear     = 2011
)

// Program returns the instance-variables demo.
func Program() demo.Program {
	return demo.Program{
		Name:    "instance-variables",
		Summary: "hidden receiver state vs. explicit parameters",
		Sections: []demo.Section{
			{Title: "Bad — Van stores the query year on the receiver", Run: demoVan},
			{Title: "Good — Truck passes the query year as a parameter", Run: demoTruck},
			{Title: "Why it matters — reusing one Van for two questions", Run: demoReusedVan},
		},
	}
}

// money groups thousands so 30000 reads as $30,000.
func money(v int) string {
	return message.NewPrinter(language.English).Sprintf("$%d", v)
}

func demoVan(w io.Writer) {
	sienna := NewVan(purchaseYear, originalPrice)
	fmt.Fprintf(w, "  Sienna bought in %d for %s\n", sienna.Year, money(sienna.OriginalPrice))
	fmt.Fprintf(w, "  Value of the Sienna in %d is %s\n", queryYear, money(sienna.ValueOfTheYear(queryYear)))
	fmt.Fprintf(w, "  ...and the van now remembers currentYear=%d\n", sienna.currentYear)
}

func demoTruck(w io.Writer) {
	tundra := NewTruck(purchaseYear, originalPrice)
	fmt.Fprintf(w, "  Tundra bought in %d for %s\n", tundra.Year, money(tundra.OriginalPrice))
	fmt.Fprintf(w, "  Lost value by %d is %s\n", queryYear, money(tundra.LostValue(queryYear)))
	fmt.Fprintf(w, "  Value of the Tundra in %d is %s\n", queryYear, money(tundra.ValueOfTheYear(queryYear)))

	fmt.Fprintln(w, "\n  The calculations are the same for a van and a truck, but Van has a major problem:")
	fmt.Fprintln(w, "  the current year is not an attribute of a van and should not be a field of Van.")
}

// demoReusedVan reuses one Van for two questions. The second caller's year
// is still on the receiver when the first caller comes back for the loss.
func demoReusedVan(w io.Writer) {
	van := NewVan(purchaseYear, originalPrice)
	truck := NewTruck(purchaseYear, originalPrice)

	fmt.Fprintf(w, "  caller A: van value in %d = %s\n", queryYear, money(van.ValueOfTheYear(queryYear)))
	fmt.Fprintf(w, "  caller B: van value in %d = %s\n", reuseYear, money(van.ValueOfTheYear(reuseYear)))
	fmt.Fprintf(w, "  caller A: van lost value = %s (currentYear=%d, expected %s)\n",
		money(van.lostValue()), van.currentYear, money(truck.LostValue(queryYear)))

	fmt.Fprintf(w, "\n  caller A: truck lost value by %d = %s, whoever asked in between\n",
		queryYear, money(truck.LostValue(queryYear)))
}
