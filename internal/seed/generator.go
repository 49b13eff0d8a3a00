package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/hetulpatel/socialnetwork/internal/models"
)

const maxAge = 100

// Options configures a Generator.
type Options struct {
	Locale string
	// Seed makes output reproducible. Zero picks a random seed.
	Seed uint64
	// Bios defaults to FakerBios over the generator's own faker.
	Bios BioWriter
	// Completer, when set and Bios is nil, writes bios with a chat model
	// and falls back to FakerBios.
	Completer Completer
	Now       func() time.Time
}

// Generator produces synthetic people following a locale's conventions.
// It is not safe for concurrent use.
type Generator struct {
	faker  *gofakeit.Faker
	locale locale
	bios   BioWriter
	now    func() time.Time
}

func NewGenerator(opts Options) (*Generator, error) {
	loc, err := lookupLocale(opts.Locale)
	if err != nil {
		return nil, err
	}
	f := gofakeit.New(opts.Seed)
	g := &Generator{
		faker:  f,
		locale: loc,
		bios:   opts.Bios,
		now:    opts.Now,
	}
	if g.bios == nil {
		g.bios = NewFakerBios(f)
		if opts.Completer != nil {
			g.bios = NewLLMBios(opts.Completer, g.bios)
		}
	}
	if g.now == nil {
		g.now = time.Now
	}
	return g, nil
}

// Person generates one person. CreatedAt and UpdatedAt are the same instant.
func (g *Generator) Person(ctx context.Context) (models.Person, error) {
	first, last := g.faker.FirstName(), g.faker.LastName()
	pl := g.locale.places[g.faker.IntRange(0, len(g.locale.places)-1)]
	now := g.now()

	p := models.Person{
		Name:      first + " " + last,
		Email:     g.email(first, last),
		Address:   g.faker.Street(),
		City:      pl.City,
		Province:  pl.Province,
		Age:       models.IntPtr(g.faker.IntRange(0, maxAge)),
		CreatedAt: now,
		UpdatedAt: now,
	}
	bio, err := g.bios.Bio(ctx, p)
	if err != nil {
		return models.Person{}, fmt.Errorf("write bio: %w", err)
	}
	p.Bio = bio
	return p, nil
}

// People generates n people.
func (g *Generator) People(ctx context.Context, n int) ([]models.Person, error) {
	if n <= 0 {
		return nil, nil
	}
	out := make([]models.Person, 0, n)
	for i := 0; i < n; i++ {
		p, err := g.Person(ctx)
		if err != nil {
			return nil, fmt.Errorf("person %d: %w", i, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// email builds an ASCII address at one of the locale's free providers.
func (g *Generator) email(first, last string) string {
	local := asciiLocal(first) + "." + asciiLocal(last)
	if g.faker.Bool() {
		local += fmt.Sprintf("%d", g.faker.IntRange(1, 99))
	}
	local = strings.Trim(local, ".")
	if local == "" {
		local = g.faker.Username()
	}
	return local + "@" + g.faker.RandomString(g.locale.freeDomains)
}

func asciiLocal(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
