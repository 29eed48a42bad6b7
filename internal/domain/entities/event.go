package entities

// Event is a time-boxed narrative thread that begins at a dedicated branch
// and grants a bonus badge to the first winning contributor along its
// lineage. Any number of events may be active at once.
type Event struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Active        bool   `json:"active"`
	StartBranchID string `json:"start_branch_id"`
	BadgeName     string `json:"badge_name"`
}
