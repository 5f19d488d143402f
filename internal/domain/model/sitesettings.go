package model

// SocialLinks holds the four named social profile URLs shown in the footer.
type SocialLinks struct {
	Instagram string `json:"instagram"`
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	WhatsApp  string `json:"whatsapp"`
}

// SiteSettings is the singleton site configuration record. It is never
// created or deleted, only patched.
type SiteSettings struct {
	SiteName       string      `json:"siteName"`
	Tagline        string      `json:"tagline"`
	LogoURL        string      `json:"logoUrl"`
	LogoHeight     int         `json:"logoHeight"`
	PrimaryColor   string      `json:"primaryColor"`
	HeadingFont    string      `json:"headingFont"`
	BodyFont       string      `json:"bodyFont"`
	DarkMode       bool        `json:"darkMode"`
	ContactEmail   string      `json:"contactEmail"`
	ContactPhone   string      `json:"contactPhone"`
	ContactAddress string      `json:"contactAddress"`
	SocialLinks    SocialLinks `json:"socialLinks"`
}

// SettingsPatch is a partial update of SiteSettings. Nil fields are left
// untouched; set fields replace the current value wholesale (shallow merge,
// so a SocialLinks patch replaces all four links).
type SettingsPatch struct {
	SiteName       *string      `json:"siteName,omitempty"`
	Tagline        *string      `json:"tagline,omitempty"`
	LogoURL        *string      `json:"logoUrl,omitempty"`
	LogoHeight     *int         `json:"logoHeight,omitempty"`
	PrimaryColor   *string      `json:"primaryColor,omitempty"`
	HeadingFont    *string      `json:"headingFont,omitempty"`
	BodyFont       *string      `json:"bodyFont,omitempty"`
	DarkMode       *bool        `json:"darkMode,omitempty"`
	ContactEmail   *string      `json:"contactEmail,omitempty"`
	ContactPhone   *string      `json:"contactPhone,omitempty"`
	ContactAddress *string      `json:"contactAddress,omitempty"`
	SocialLinks    *SocialLinks `json:"socialLinks,omitempty"`
}

// Apply merges the set fields of the patch into s.
func (s *SiteSettings) Apply(p SettingsPatch) {
	if p.SiteName != nil {
		s.SiteName = *p.SiteName
	}
	if p.Tagline != nil {
		s.Tagline = *p.Tagline
	}
	if p.LogoURL != nil {
		s.LogoURL = *p.LogoURL
	}
	if p.LogoHeight != nil {
		s.LogoHeight = *p.LogoHeight
	}
	if p.PrimaryColor != nil {
		s.PrimaryColor = *p.PrimaryColor
	}
	if p.HeadingFont != nil {
		s.HeadingFont = *p.HeadingFont
	}
	if p.BodyFont != nil {
		s.BodyFont = *p.BodyFont
	}
	if p.DarkMode != nil {
		s.DarkMode = *p.DarkMode
	}
	if p.ContactEmail != nil {
		s.ContactEmail = *p.ContactEmail
	}
	if p.ContactPhone != nil {
		s.ContactPhone = *p.ContactPhone
	}
	if p.ContactAddress != nil {
		s.ContactAddress = *p.ContactAddress
	}
	if p.SocialLinks != nil {
		s.SocialLinks = *p.SocialLinks
	}
}
