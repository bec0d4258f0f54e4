package contact

import "github.com/theijon/folio/pkg/pointer"

// SocialLink is one entry in the contact section, addressed by position.
type SocialLink struct {
	Platform string `json:"platform"`
	Username string `json:"username"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
}

// Contact is the contact/social singleton.
type Contact struct {
	ID      int          `json:"id"`
	Email   string       `json:"email"`
	Socials []SocialLink `json:"socials"`
}

// DefaultSocialLink is the placeholder element the console's Add action inserts.
func DefaultSocialLink() SocialLink {
	return SocialLink{Platform: "New", Icon: "devicon-github-original"}
}

// SocialLinkPatch is a partial update for one link; nil fields keep existing values.
type SocialLinkPatch struct {
	Platform *string `json:"platform"`
	Username *string `json:"username"`
	URL      *string `json:"url"`
	Icon     *string `json:"icon"`
}

// Apply merges the patch over an existing link, returning the result.
func (patch SocialLinkPatch) Apply(link SocialLink) SocialLink {
	return SocialLink{
		Platform: pointer.Fallback(patch.Platform, link.Platform),
		Username: pointer.Fallback(patch.Username, link.Username),
		URL:      pointer.Fallback(patch.URL, link.URL),
		Icon:     pointer.Fallback(patch.Icon, link.Icon),
	}
}
