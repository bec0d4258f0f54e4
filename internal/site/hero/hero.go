package hero

import "github.com/theijon/folio/pkg/pointer"

// Position is one entry in the hero's role history. Positions carry no
// identifier of their own and are addressed by their place in the list.
type Position struct {
	Logo            string `json:"logo"`
	Title           string `json:"title"`
	Organization    string `json:"organization"`
	OrganizationURL string `json:"organizationUrl"`
	Since           string `json:"since"`
}

// Hero is the profile singleton shown at the top of the site.
type Hero struct {
	ID           int        `json:"id"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	DisplayName  string     `json:"displayName"`
	Nickname     string     `json:"nickname"`
	BirthDate    string     `json:"birthDate"`
	StartDate    string     `json:"startDate"`
	Location     string     `json:"location"`
	ProfileImage string     `json:"profileImage"`
	Emoji        string     `json:"emoji"`
	WebringURL   *string    `json:"webringUrl"`
	Positions    []Position `json:"positions"`
}

// DefaultPosition is the placeholder element the console's Add action inserts.
func DefaultPosition() Position {
	return Position{Title: "New Role", Organization: "Company", Since: "2024"}
}

// PositionPatch is a partial update for one position. Nil fields keep the
// existing value; set fields replace it (shallow merge).
type PositionPatch struct {
	Logo            *string `json:"logo"`
	Title           *string `json:"title"`
	Organization    *string `json:"organization"`
	OrganizationURL *string `json:"organizationUrl"`
	Since           *string `json:"since"`
}

// Apply merges the patch over an existing position, returning the result.
func (patch PositionPatch) Apply(position Position) Position {
	return Position{
		Logo:            pointer.Fallback(patch.Logo, position.Logo),
		Title:           pointer.Fallback(patch.Title, position.Title),
		Organization:    pointer.Fallback(patch.Organization, position.Organization),
		OrganizationURL: pointer.Fallback(patch.OrganizationURL, position.OrganizationURL),
		Since:           pointer.Fallback(patch.Since, position.Since),
	}
}
