// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Author is the predicate function for author builders.
type Author func(*sql.Selector)

// Book is the predicate function for book builders.
type Book func(*sql.Selector)

// BookContent is the predicate function for bookcontent builders.
type BookContent func(*sql.Selector)

// BookSnapshot is the predicate function for booksnapshot builders.
type BookSnapshot func(*sql.Selector)

// BookStats is the predicate function for bookstats builders.
type BookStats func(*sql.Selector)

// Category is the predicate function for category builders.
type Category func(*sql.Selector)

// Purchase is the predicate function for purchase builders.
type Purchase func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// Subscription is the predicate function for subscription builders.
type Subscription func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
