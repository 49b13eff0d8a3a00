package models

import "time"

// Person is one row of the people table.
type Person struct {
	ID        int64
	Name      string
	Email     string
	Address   string
	City      string
	Province  string
	Bio       string
	Age       *int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NameAge is the projection used by the age report.
type NameAge struct {
	Name string
	Age  int
}

// IntPtr returns a pointer to v, handy for Person.Age literals.
func IntPtr(v int) *int {
	return &v
}
