package calculator

import "github.com/mmynk/tipcalc/internal/sanitizer"

// Party size bounds.
const (
	MinPeople = 1
	MaxPeople = 20
)

// IncrementPeople adds one person, staying within [MinPeople, MaxPeople].
func IncrementPeople(n int) int {
	return sanitizer.Clamp(n+1, MinPeople, MaxPeople)
}

// DecrementPeople removes one person, staying within [MinPeople, MaxPeople].
func DecrementPeople(n int) int {
	return sanitizer.Clamp(n-1, MinPeople, MaxPeople)
}

func CanIncrement(n int) bool { return n < MaxPeople }

func CanDecrement(n int) bool { return n > MinPeople }
