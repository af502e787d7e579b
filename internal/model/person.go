package model

// Person identifies a customer by exact, case-sensitive (forename,
// surname) equality. It is only ever used as a lookup key; once a
// customer id has been assigned, the name is never stored again.
type Person struct {
	Forename string
	Surname  string
}
