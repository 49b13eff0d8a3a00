package seed

import (
	"context"
	"fmt"

	"github.com/hetulpatel/socialnetwork/internal/models"
)

// PeopleWriter stores a batch of people atomically.
type PeopleWriter interface {
	InsertPeople(ctx context.Context, people []models.Person) error
}

// Populate generates count people and stores them as one batch. It returns
// the number of people inserted.
func Populate(ctx context.Context, w PeopleWriter, gen *Generator, count int) (int, error) {
	people, err := gen.People(ctx, count)
	if err != nil {
		return 0, fmt.Errorf("generate people: %w", err)
	}
	if len(people) == 0 {
		return 0, nil
	}
	if err := w.InsertPeople(ctx, people); err != nil {
		return 0, fmt.Errorf("insert people: %w", err)
	}
	return len(people), nil
}
