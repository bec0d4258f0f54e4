package blog

// Blog is one post in the blogs collection. The identifier is assigned by the
// content service on create and never changes afterwards.
type Blog struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Slug      string `json:"slug"`
	Image     string `json:"image"`
	Date      string `json:"date"`
	Published bool   `json:"published"`
	Content   string `json:"content,omitempty"`
}

// Identity returns the server-assigned identifier; zero means not yet created.
func (b Blog) Identity() int { return b.ID }
