package work

import "github.com/theijon/folio/pkg/pointer"

// Card sizes supported by the portfolio grid.
const (
	SizeLarge = "large"
	SizeSmall = "small"
)

// Link types supported by the renderer.
const (
	LinkTypeWebsite  = "website"
	LinkTypeExternal = "external"
)

// Tag is one label chip on a work card, addressed by position.
type Tag struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Link is one outbound link on a work card, addressed by position.
type Link struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

// Work is one project in the portfolio collection.
type Work struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Year        string  `json:"year"`
	Size        string  `json:"size"`
	Watermark   *string `json:"watermark"`
	Tags        []Tag   `json:"tags"`
	Links       []Link  `json:"links"`
	Order       int     `json:"order"`
}

// Identity returns the server-assigned identifier; zero means not yet created.
func (w Work) Identity() int { return w.ID }

// DefaultTag is the placeholder element the console's Add action inserts.
func DefaultTag() Tag { return Tag{Label: "New Tag", URL: "#"} }

// DefaultLink is the placeholder element the console's Add action inserts.
func DefaultLink() Link { return Link{Type: LinkTypeWebsite} }

// TagPatch is a partial update for one tag; nil fields keep existing values.
type TagPatch struct {
	Label *string `json:"label"`
	URL   *string `json:"url"`
}

// Apply merges the patch over an existing tag, returning the result.
func (patch TagPatch) Apply(tag Tag) Tag {
	return Tag{
		Label: pointer.Fallback(patch.Label, tag.Label),
		URL:   pointer.Fallback(patch.URL, tag.URL),
	}
}

// LinkPatch is a partial update for one link; nil fields keep existing values.
type LinkPatch struct {
	URL  *string `json:"url"`
	Type *string `json:"type"`
}

// Apply merges the patch over an existing link, returning the result.
func (patch LinkPatch) Apply(link Link) Link {
	return Link{
		URL:  pointer.Fallback(patch.URL, link.URL),
		Type: pointer.Fallback(patch.Type, link.Type),
	}
}
