package repo

import "strconv"

// placeholder returns the positional parameter marker for the n-th argument.
// Filter builders in this package only ever append from a closed predicate
// set; user input travels through args, never through the query text.
func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}
