package models

// DueNode is one node of the host's due-count tree. Counts already cover
// the node's own subtree.
type DueNode struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	New      int       `json:"new"`
	Learn    int       `json:"learn"`
	Review   int       `json:"review"`
	Children []DueNode `json:"children"`
}

// Due is the outstanding work on the node: new + in-progress + review.
func (n DueNode) Due() int {
	return n.New + n.Learn + n.Review
}

// ReviewTotals summarizes the host's review log for the current day.
type ReviewTotals struct {
	TotalCards   int `json:"total_cards"`
	TotalReviews int `json:"total_reviews"`
}

// HostState is the payload pushed by the host application.
type HostState struct {
	Today        *int         `json:"today"`
	Tree         DueNode      `json:"tree"`
	ReviewTotals ReviewTotals `json:"review_totals"`
}
