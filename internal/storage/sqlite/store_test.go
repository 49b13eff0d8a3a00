package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/hetulpatel/socialnetwork/internal/models"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "social_network.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	if err := store.CreateTables(context.Background()); err != nil {
		t.Fatalf("create tables: %v", err)
	}
	return store
}

func person(name string, age int) models.Person {
	return models.Person{
		Name:     name,
		Email:    "someone@example.com",
		Address:  "1 Main St",
		City:     "Kingston",
		Province: "Ontario",
		Age:      models.IntPtr(age),
	}
}

func TestOpenCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "people.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()
	if store.Path() != path {
		t.Fatalf("path = %q, want %q", store.Path(), path)
	}
}

func TestCreateTablesIsIdempotent(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	if err := store.CreateTables(ctx); err != nil {
		t.Fatalf("second create: %v", err)
	}

	var n int
	err := store.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'people'`).Scan(&n)
	if err != nil {
		t.Fatalf("count tables: %v", err)
	}
	if n != 1 {
		t.Fatalf("people tables = %d, want 1", n)
	}
}

func TestDropAndClearTables(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	if err := store.InsertPeople(ctx, []models.Person{person("A", 1), person("B", 2)}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := store.ClearTables(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if n, err := store.CountPeople(ctx); err != nil || n != 0 {
		t.Fatalf("count after clear = %d, %v; want 0", n, err)
	}

	if err := store.DropTables(ctx); err != nil {
		t.Fatalf("drop: %v", err)
	}
	ok, err := store.TableExists(ctx, "people")
	if err != nil {
		t.Fatalf("table exists: %v", err)
	}
	if ok {
		t.Fatal("people table still exists after drop")
	}
}

func TestInsertPeopleRoundTrip(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()
	now := time.Date(2026, time.March, 4, 9, 30, 15, 123456000, time.UTC)

	in := []models.Person{
		{
			Name: "Ava Tremblay", Email: "ava.tremblay@gmail.com", Address: "12 Rideau St",
			City: "Ottawa", Province: "Ontario", Bio: "Loves canoes.", Age: models.IntPtr(34),
			CreatedAt: now, UpdatedAt: now,
		},
		{
			Name: "Noah Roy", Email: "noah.roy@yahoo.ca", Address: "8 Rue Sainte-Catherine",
			City: "Montreal", Province: "Quebec",
		},
	}
	if err := store.InsertPeople(ctx, in); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := store.ListPeople(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID >= got[1].ID {
		t.Fatalf("ids not increasing: %d, %d", got[0].ID, got[1].ID)
	}
	first := got[0]
	if first.Name != "Ava Tremblay" || first.City != "Ottawa" || first.Bio != "Loves canoes." {
		t.Fatalf("first = %+v", first)
	}
	if first.Age == nil || *first.Age != 34 {
		t.Fatalf("age = %v, want 34", first.Age)
	}
	if !first.CreatedAt.Equal(now) || !first.UpdatedAt.Equal(now) {
		t.Fatalf("timestamps = %v / %v, want %v", first.CreatedAt, first.UpdatedAt, now)
	}

	second := got[1]
	if second.Age != nil {
		t.Fatalf("age = %v, want nil", *second.Age)
	}
	if second.Bio != "" {
		t.Fatalf("bio = %q, want empty", second.Bio)
	}
	if second.CreatedAt.IsZero() || !second.CreatedAt.Equal(second.UpdatedAt) {
		t.Fatalf("default timestamps = %v / %v, want equal and set", second.CreatedAt, second.UpdatedAt)
	}
}

func TestInsertPeopleRollsBackOnInvalidRow(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	bad := person("", 40)
	err := store.InsertPeople(ctx, []models.Person{person("A", 1), bad, person("C", 3)})
	if !errors.Is(err, ErrInvalidPerson) {
		t.Fatalf("insert error = %v, want %v", err, ErrInvalidPerson)
	}
	n, err := store.CountPeople(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("rows after failed batch = %d, want 0", n)
	}
}

func TestInsertPeopleRejectsNegativeAge(t *testing.T) {
	store := openTempStore(t)

	err := store.InsertPeople(context.Background(), []models.Person{person("A", -1)})
	if !errors.Is(err, ErrInvalidPerson) {
		t.Fatalf("insert error = %v, want %v", err, ErrInvalidPerson)
	}
}

func TestPeopleAtLeastAgeBoundary(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	var in []models.Person
	for _, age := range []int{10, 49, 50, 75, 100} {
		in = append(in, person("age", age))
	}
	noAge := person("unknown", 0)
	noAge.Age = nil
	in = append(in, noAge)
	if err := store.InsertPeople(ctx, in); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := store.PeopleAtLeastAge(ctx, 50)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	ages := make([]int, 0, len(got))
	for _, r := range got {
		ages = append(ages, r.Age)
	}
	sort.Ints(ages)
	want := []int{50, 75, 100}
	if len(ages) != len(want) {
		t.Fatalf("ages = %v, want %v", ages, want)
	}
	for i := range want {
		if ages[i] != want[i] {
			t.Fatalf("ages = %v, want %v", ages, want)
		}
	}
}

func TestPeopleAtLeastAgeOrdersByID(t *testing.T) {
	store := openTempStore(t)
	ctx := context.Background()

	in := []models.Person{person("Zed", 90), person("Amy", 60), person("Max", 70)}
	if err := store.InsertPeople(ctx, in); err != nil {
		t.Fatalf("insert: %v", err)
	}
	got, err := store.PeopleAtLeastAge(ctx, 50)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	want := []string{"Zed", "Amy", "Max"}
	for i, r := range got {
		if r.Name != want[i] {
			t.Fatalf("names[%d] = %q, want %q", i, r.Name, want[i])
		}
	}
}

func TestPeopleAtLeastAgeEmptyTable(t *testing.T) {
	store := openTempStore(t)

	got, err := store.PeopleAtLeastAge(context.Background(), 50)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("result = %#v, want empty non-nil slice", got)
	}
}

func TestPeopleAtLeastAgeMissingTable(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "empty.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	if _, err := store.PeopleAtLeastAge(context.Background(), 50); err == nil {
		t.Fatal("expected error querying a database without the people table")
	}
}
