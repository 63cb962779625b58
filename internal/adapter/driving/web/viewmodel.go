package web

import (
	"time"

	vm "github.com/guijosegon/portfolio/internal/adapter/driving/web/viewmodel"
	"github.com/guijosegon/portfolio/internal/application"
	"github.com/guijosegon/portfolio/internal/domain/model"
)

const (
	noDescription = "Sem descrição."
	toggleToLight = "☀️ Claro"
	toggleToDark  = "🌙 Escuro"
)

// toProfileViewModel renders the profile's markdown once; the result is reused
// for every request.
func toProfileViewModel(p model.Profile) vm.ProfileViewModel {
	out := vm.ProfileViewModel{
		Name:       p.Name,
		Title:      p.PageTitle,
		Heading:    p.Heading,
		HeroHTML:   RenderMarkdown(p.Hero),
		AboutHTML:  RenderMarkdown(p.About),
		FooterHTML: RenderMarkdown(p.Footer),
		Avatar:     p.Avatar,
		AvatarAlt:  p.AvatarAlt,
		SoftSkills: p.SoftSkills,
		Experience: make([]vm.ExperienceViewModel, 0, len(p.Experience)),
		HardSkills: make([]vm.SkillGroupViewModel, 0, len(p.HardSkills)),
		Blog:       make([]vm.BlogPostViewModel, 0, len(p.Blog)),
		Socials:    make([]vm.SocialLinkViewModel, 0, len(p.Socials)),
	}

	for _, e := range p.Experience {
		out.Experience = append(out.Experience, vm.ExperienceViewModel{
			Company:     e.Company,
			Period:      e.Period,
			SummaryHTML: RenderMarkdown(e.Summary),
		})
	}
	for _, s := range p.HardSkills {
		out.HardSkills = append(out.HardSkills, vm.SkillGroupViewModel(s))
	}
	for _, b := range p.Blog {
		out.Blog = append(out.Blog, vm.BlogPostViewModel(b))
	}
	for _, s := range p.Socials {
		out.Socials = append(out.Socials, vm.SocialLinkViewModel(s))
	}

	return out
}

// toRepoCardViewModel converts a domain Repository to a card, attaching its
// display tags and recency tier.
func toRepoCardViewModel(r model.Repository, showcase application.Showcase, now time.Time) vm.RepoCardViewModel {
	tags, ok := showcase.TagsFor(r.Name)
	if !ok {
		tags = []string{}
	}

	description := r.Description
	if description == "" {
		description = noDescription
	}

	return vm.RepoCardViewModel{
		ID:            r.ID,
		Name:          r.Name,
		Description:   description,
		URL:           r.URL,
		Language:      r.Language,
		Stars:         r.Stars,
		Tags:          tags,
		Activity:      application.ClassifyActivity(r.PushedAt, now).String(),
		DaysSincePush: r.DaysSincePush(now),
	}
}

func toRepoCardViewModels(repos []model.Repository, showcase application.Showcase, now time.Time) []vm.RepoCardViewModel {
	cards := make([]vm.RepoCardViewModel, 0, len(repos))
	for _, r := range repos {
		cards = append(cards, toRepoCardViewModel(r, showcase, now))
	}
	return cards
}

// toPageViewModel assembles the page from the profile and both repository groups.
func toPageViewModel(
	profile vm.ProfileViewModel,
	showcase application.Showcase,
	featured, other []model.Repository,
	dark bool,
	csrfToken string,
	now time.Time,
) vm.PageViewModel {
	label := toggleToDark
	if dark {
		label = toggleToLight
	}

	return vm.PageViewModel{
		Profile:     profile,
		Dark:        dark,
		ToggleLabel: label,
		CSRFToken:   csrfToken,
		Year:        now.Year(),
		Featured:    toRepoCardViewModels(featured, showcase, now),
		Other:       toRepoCardViewModels(other, showcase, now),
	}
}
