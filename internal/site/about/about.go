package about

import "github.com/theijon/folio/pkg/pointer"

// Fact types supported by the renderer.
const (
	FactTypeImage = "image"
	FactTypeIcon  = "icon"
)

// Fact is one card in the about-me grid, addressed by position.
type Fact struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
	Type     string `json:"type"`
}

// AboutMe is the identity singleton.
type AboutMe struct {
	ID         int     `json:"id"`
	Nickname   string  `json:"nickname"`
	Status     string  `json:"status"`
	StatusLink *string `json:"statusLink"`
	FullName   string  `json:"fullName"`
	Birthday   string  `json:"birthday"`
	Location   string  `json:"location"`
	Facts      []Fact  `json:"facts"`
}

// DefaultFact is the placeholder element the console's Add action inserts.
func DefaultFact() Fact {
	return Fact{Title: "Fact", Subtitle: "Detail", Type: FactTypeImage}
}

// FactPatch is a partial update for one fact; nil fields keep existing values.
type FactPatch struct {
	Title    *string `json:"title"`
	Subtitle *string `json:"subtitle"`
	Image    *string `json:"image"`
	Type     *string `json:"type"`
}

// Apply merges the patch over an existing fact, returning the result.
func (patch FactPatch) Apply(fact Fact) Fact {
	return Fact{
		Title:    pointer.Fallback(patch.Title, fact.Title),
		Subtitle: pointer.Fallback(patch.Subtitle, fact.Subtitle),
		Image:    pointer.Fallback(patch.Image, fact.Image),
		Type:     pointer.Fallback(patch.Type, fact.Type),
	}
}
