// Package viewmodel defines presentation-ready structs for templ components.
// View models decouple template rendering from domain model types.
package viewmodel

// PageViewModel holds everything the portfolio page renders.
type PageViewModel struct {
	Profile ProfileViewModel

	Dark        bool
	ToggleLabel string
	CSRFToken   string
	Year        int

	Featured []RepoCardViewModel
	Other    []RepoCardViewModel
}

// ProfileViewModel holds the static biography with markdown already rendered
// to sanitized HTML.
type ProfileViewModel struct {
	Name       string
	Title      string
	Heading    string
	HeroHTML   string
	AboutHTML  string
	FooterHTML string
	Avatar     string
	AvatarAlt  string
	Experience []ExperienceViewModel
	HardSkills []SkillGroupViewModel
	SoftSkills []string
	Blog       []BlogPostViewModel
	Socials    []SocialLinkViewModel
}

// ExperienceViewModel is one entry of the experience card.
type ExperienceViewModel struct {
	Company     string
	Period      string
	SummaryHTML string
}

// SkillGroupViewModel is one labelled line of the hard skills card.
type SkillGroupViewModel struct {
	Label string
	Items string
}

// BlogPostViewModel is one card of the blog section.
type BlogPostViewModel struct {
	Title   string
	Summary string
	URL     string
}

// SocialLinkViewModel is one floating contact button.
type SocialLinkViewModel struct {
	Kind  string
	Label string
	URL   string
}

// RepoCardViewModel holds presentation-ready data for one repository card.
type RepoCardViewModel struct {
	ID            int64
	Name          string
	Description   string
	URL           string
	Language      string
	Stars         int
	Tags          []string
	Activity      string // hot, active, warm, stale
	DaysSincePush int
}
