package generator

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"airline-data-generator/internal/domain"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

const day = 24 * time.Hour

var cardTypes = map[string]string{
	"AMEX": "american-express",
	"MC":   "mastercard",
	"VISA": "visa",
	"DISC": "discover",
}

// Fields produces single randomized values. All randomness comes from one
// seeded source, so two Fields built with the same seed and clock yield the
// same sequence of values.
type Fields struct {
	faker *gofakeit.Faker
	rng   *rand.Rand
	now   func() time.Time
}

func NewFields(seed int64, now func() time.Time) *Fields {
	if now == nil {
		now = time.Now
	}
	faker := gofakeit.New(seed)
	return &Fields{faker: faker, rng: faker.Rand, now: now}
}

func (f *Fields) Now() time.Time {
	return f.now().UTC()
}

func (f *Fields) RandomChoice(choices []string) (string, error) {
	if len(choices) == 0 {
		return "", fmt.Errorf("%w: empty choice set", domain.ErrGeneration)
	}
	return choices[f.rng.Intn(len(choices))], nil
}

// RandomInt returns a value in [min, max].
func (f *Fields) RandomInt(min, max int) (int, error) {
	if max < min {
		return 0, fmt.Errorf("%w: invalid int range [%d, %d]", domain.ErrGeneration, min, max)
	}
	return min + f.rng.Intn(max-min+1), nil
}

// RandomCurrency returns a value in [min, max] rounded to precision decimals.
func (f *Fields) RandomCurrency(min, max float64, precision int) (float64, error) {
	if max < min || precision < 0 {
		return 0, fmt.Errorf("%w: invalid currency range [%.2f, %.2f]", domain.ErrGeneration, min, max)
	}
	scale := math.Pow(10, float64(precision))
	v := math.Round((min+f.rng.Float64()*(max-min))*scale) / scale
	return math.Min(math.Max(v, min), max), nil
}

// RandomDateTimeBetween returns a time in [start, end].
func (f *Fields) RandomDateTimeBetween(start, end time.Time) (time.Time, error) {
	if end.Before(start) {
		return time.Time{}, fmt.Errorf("%w: window ends before it starts", domain.ErrGeneration)
	}
	span := int64(end.Sub(start))
	return start.Add(time.Duration(f.rng.Int63n(span + 1))), nil
}

// DaysAgo and DaysAhead are relative to the injected clock.
func (f *Fields) DaysAgo(n int) time.Time {
	return f.Now().Add(-time.Duration(n) * day)
}

func (f *Fields) DaysAhead(n int) time.Time {
	return f.Now().Add(time.Duration(n) * day)
}

// FakeIdentifier returns a version 4 UUID read from the seeded source.
func (f *Fields) FakeIdentifier() (string, error) {
	id, err := uuid.NewRandomFromReader(f.rng)
	if err != nil {
		return "", fmt.Errorf("%w: identifier: %v", domain.ErrGeneration, err)
	}
	return id.String(), nil
}

func (f *Fields) FakeFirstName() string {
	return f.faker.FirstName()
}

func (f *Fields) FakeLastName() string {
	return f.faker.LastName()
}

// FakeCardNumber returns a number valid for the given network code.
func (f *Fields) FakeCardNumber(network string) string {
	opts := &gofakeit.CreditCardOptions{}
	if t, ok := cardTypes[network]; ok {
		opts.Types = []string{t}
	}
	return f.faker.CreditCardNumber(opts)
}

// FakeSentence returns exactly words lorem ipsum words, capitalized and
// ending with a period.
func (f *Fields) FakeSentence(words int) string {
	if words <= 0 {
		return ""
	}
	parts := make([]string, words)
	for i := range parts {
		parts[i] = f.faker.LoremIpsumWord()
	}
	parts[0] = strings.ToUpper(parts[0][:1]) + parts[0][1:]
	return strings.Join(parts, " ") + "."
}

func (f *Fields) FakeAirportIataCode() string {
	return airportCodes[f.rng.Intn(len(airportCodes))]
}

// FakeIban returns a GB-format IBAN with valid mod-97 check digits.
func (f *Fields) FakeIban() string {
	var bban strings.Builder
	for i := 0; i < 4; i++ {
		bban.WriteByte(byte('A' + f.rng.Intn(26)))
	}
	for i := 0; i < 14; i++ {
		bban.WriteByte(byte('0' + f.rng.Intn(10)))
	}
	return ibanWithCheckDigits("GB", bban.String())
}

func ibanWithCheckDigits(country, bban string) string {
	check := 98 - ibanMod97(bban+country+"00")
	return fmt.Sprintf("%s%02d%s", country, check, bban)
}

func ibanMod97(s string) int {
	rem := 0
	for _, r := range s {
		var digits string
		switch {
		case r >= '0' && r <= '9':
			digits = string(r)
		case r >= 'A' && r <= 'Z':
			digits = strconv.Itoa(int(r-'A') + 10)
		}
		for _, d := range digits {
			rem = (rem*10 + int(d-'0')) % 97
		}
	}
	return rem
}

// ValidIban reports whether s passes the ISO 13616 checksum.
func ValidIban(s string) bool {
	if len(s) < 5 {
		return false
	}
	return ibanMod97(s[4:]+s[:4]) == 1
}

// DateOnly truncates t to midnight of its calendar day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
