package model

// Profile is the static biographical content rendered around the repository list.
// Hero, About and Footer hold markdown.
type Profile struct {
	Name       string
	PageTitle  string
	Heading    string
	Hero       string
	About      string
	Avatar     string
	AvatarAlt  string
	Experience []Experience
	HardSkills []SkillGroup
	SoftSkills []string
	Blog       []BlogPost
	Socials    []SocialLink
	Footer     string
}

// Experience is one entry of the professional timeline.
type Experience struct {
	Company string
	Period  string
	Summary string
}

// SkillGroup is a labelled list of technical skills.
type SkillGroup struct {
	Label string
	Items string
}

// BlogPost links to an article or study published elsewhere.
type BlogPost struct {
	Title   string
	Summary string
	URL     string
}

// SocialLink is a floating contact link.
type SocialLink struct {
	Kind  string
	Label string
	URL   string
}
