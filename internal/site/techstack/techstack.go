package techstack

import "github.com/theijon/folio/pkg/pointer"

// Technology is one tool entry inside a category, addressed by position.
type Technology struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Category is one group in the tech-stack collection, ordered by the
// display order field.
type Category struct {
	ID           int          `json:"id"`
	Name         string       `json:"category"`
	Order        int          `json:"order"`
	Technologies []Technology `json:"technologies"`
	UpdatedAt    string       `json:"updatedAt,omitempty"`
}

// Identity returns the server-assigned identifier; zero means not yet created.
func (c Category) Identity() int { return c.ID }

// DefaultTechnology is the placeholder element the console's Add action inserts.
func DefaultTechnology() Technology {
	return Technology{Name: "New Tech"}
}

// TechnologyPatch is a partial update for one technology; nil fields keep
// existing values.
type TechnologyPatch struct {
	Name *string `json:"name"`
	Icon *string `json:"icon"`
}

// Apply merges the patch over an existing technology, returning the result.
func (patch TechnologyPatch) Apply(technology Technology) Technology {
	return Technology{
		Name: pointer.Fallback(patch.Name, technology.Name),
		Icon: pointer.Fallback(patch.Icon, technology.Icon),
	}
}
