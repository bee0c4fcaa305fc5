package repository

// ListOptions filters and paginates journal listings.
type ListOptions struct {
	Status string
	Limit  int
	Offset int
}
