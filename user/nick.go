package user

import "strings"

// Nick is a nickname as the server spelled it. Equality is exact; ordering
// ignores case.
type Nick string

func (n Nick) String() string {
	return string(n)
}

// Compare orders nicknames case-insensitively without altering either.
func (n Nick) Compare(o Nick) int {
	return strings.Compare(strings.ToLower(string(n)), strings.ToLower(string(o)))
}
