package domain

// Identity is the verified caller behind a request, taken from token claims.
type Identity struct {
	Sub   string
	Name  string
	Email string
}
