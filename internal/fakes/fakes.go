// Package fakes synthesizes field values for the pet store entities. The
// vocabulary lists mirror what existing dashboards built on this demo data
// expect to see.
package fakes

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

var (
	PetSpecies = []string{"Dog", "Cat", "Fish", "Bird", "Hamster", "Rabbit", "Reptile"}
	DogBreeds  = []string{"Golden Retriever", "Labrador", "German Shepherd", "Poodle", "Bulldog", "Beagle", "Pug", "Dachshund", "Mixed Breed"}
	CatBreeds  = []string{"Persian", "Siamese", "Maine Coon", "Ragdoll", "Bengal", "Russian Blue", "Domestic Shorthair"}
	FishTypes  = []string{"Clownfish", "Goldfish", "Betta", "Angelfish", "Blue Tang"}
	BirdTypes  = []string{"African Grey Parrot", "Canary", "Macaw", "Cockatiel", "Parakeet"}

	ProductTypes   = []string{"Food", "Toy", "Accessory", "Pet", "Grooming", "Medicine", "Service"}
	JobTitles      = []string{"Manager", "Sales Associate", "Vet Technician", "Groomer", "Warehouse Staff", "Customer Service Rep"}
	OrderStatuses  = []string{"Pending", "Processing", "Shipped", "Delivered", "Cancelled"}
	PaymentMethods = []string{"Credit Card", "Debit Card", "Cash", "Online Transfer", "UPI"}
	CareActivities = []string{"Feeding", "Grooming", "Medication", "Vet Visit", "Cleaning", "Playtime"}
)

// CareJobTitles are the job titles allowed to author pet care logs.
var CareJobTitles = []string{"Vet Technician", "Groomer"}

// Fakes wraps a seeded faker plus a counter used to keep unique-constrained
// fields unique within a run. Not safe for concurrent use: each goroutine
// owns its own Fakes, the same way it owns its own connection.
type Fakes struct {
	f       *gofakeit.Faker
	counter int
}

func New() *Fakes {
	return &Fakes{f: gofakeit.New(0)}
}

// NewSeeded returns a deterministic generator for tests.
func NewSeeded(seed uint64) *Fakes {
	return &Fakes{f: gofakeit.New(seed)}
}

func (g *Fakes) Pick(list []string) string {
	return g.f.RandomString(list)
}

func (g *Fakes) FirstName() string { return g.f.FirstName() }
func (g *Fakes) LastName() string  { return g.f.LastName() }
func (g *Fakes) PetName() string   { return g.f.PetName() }
func (g *Fakes) ColorName() string { return g.f.Color() }

// SupplierName produces a unique company name; the index keeps names apart
// within one seeding pass (uk_suppliers_name).
func (g *Fakes) SupplierName(index int) string {
	if index >= 0 {
		return fmt.Sprintf("%s #%d", g.f.Company(), index)
	}
	return fmt.Sprintf("%s %s", g.f.Company(), time.Now().Format("20060102150405"))
}

// UniqueEmail builds an address that satisfies the '%@%.%' check and the
// unique constraints even across rapid successive calls.
func (g *Fakes) UniqueEmail(prefix string) string {
	g.counter++
	stamp := time.Now().Format("20060102150405")
	return fmt.Sprintf("%s_%s_%d_%d@%s", prefix, stamp, g.counter, g.f.Number(1000, 9999), g.f.DomainName())
}

func (g *Fakes) ContactName() string {
	return g.f.Name()
}

func (g *Fakes) PhoneDigits() string {
	return g.f.Numerify("##########")
}

func (g *Fakes) StreetAddress() string {
	return g.f.Street()
}

func (g *Fakes) FullAddress() string {
	return fmt.Sprintf("%s, %s", g.f.Street(), g.f.City())
}

func (g *Fakes) City() string     { return g.f.City() }
func (g *Fakes) StateAbr() string { return g.f.StateAbr() }
func (g *Fakes) ZipCode() string  { return g.f.Zip() }

func (g *Fakes) Word() string {
	return g.f.Word()
}

func (g *Fakes) TitleWord() string {
	w := g.f.Word()
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}

func (g *Fakes) Sentence(words int) string {
	return g.f.Sentence(words)
}

func (g *Fakes) Text(maxChars int) string {
	s := g.f.Paragraph(2, 4, 10, " ")
	if len(s) > maxChars {
		s = s[:maxChars]
	}
	return s
}

func (g *Fakes) Number(min, max int) int {
	return g.f.Number(min, max)
}

func (g *Fakes) Float(min, max float64) float64 {
	return g.f.Float64Range(min, max)
}

// Price returns a retail price between 5 and 500.
func (g *Fakes) Price() decimal.Decimal {
	return decimal.NewFromFloat(g.f.Float64Range(5, 500)).Round(2)
}

// CostFor returns a cost at 50-80% of price.
func (g *Fakes) CostFor(price decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromFloat(g.f.Float64Range(0.5, 0.8))
	return price.Mul(factor).Round(2)
}

func (g *Fakes) Salary() decimal.Decimal {
	return decimal.NewFromFloat(g.f.Float64Range(30000, 100000)).Round(2)
}

func (g *Fakes) MicrochipID() string {
	return g.f.Numerify("###-##-####")
}

// BreedFor returns a plausible breed for the species, or empty when the
// species has no breed list.
func (g *Fakes) BreedFor(species string) string {
	switch species {
	case "Dog":
		return g.Pick(DogBreeds)
	case "Cat":
		return g.Pick(CatBreeds)
	case "Fish":
		return g.Pick(FishTypes)
	case "Bird":
		return g.Pick(BirdTypes)
	default:
		return ""
	}
}

func (g *Fakes) DateThisCentury() time.Time {
	start := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	return g.f.DateRange(start, time.Now())
}

func (g *Fakes) DateThisDecade() time.Time {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	return g.f.DateRange(start, time.Now())
}

func (g *Fakes) DateThisYear() time.Time {
	now := time.Now()
	start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	return g.f.DateRange(start, now)
}

func (g *Fakes) BirthDate() time.Time {
	now := time.Now()
	return g.f.DateRange(now.AddDate(-15, 0, 0), now)
}

// DateSince returns an instant between t and now. Keeps ordered date
// pairs ordered, like a pet entering the store after it was born.
func (g *Fakes) DateSince(t time.Time) time.Time {
	now := time.Now()
	if !t.Before(now) {
		return now
	}
	return g.f.DateRange(t, now)
}

// FixedWord returns a word clipped to n characters, for CHAR(n) columns.
func (g *Fakes) FixedWord(n int) string {
	w := g.f.Word()
	if len(w) > n {
		w = w[:n]
	}
	return w
}

// RowID fabricates an 18-character Oracle-style row address for the
// datatype demo table.
func (g *Fakes) RowID() string {
	return g.f.Numerify("AAASUD####AAA####F")
}

// PastDatetime returns an instant up to a year in the past.
func (g *Fakes) PastDatetime() time.Time {
	return time.Now().Add(-time.Duration(g.f.Number(0, 365*24)) * time.Hour)
}
