package application

import (
	"slices"
	"strings"

	"github.com/guijosegon/portfolio/internal/domain/model"
)

// DefaultOtherCap is how many non-featured repositories the page shows.
const DefaultOtherCap = 10

// Showcase holds the curated tables that turn the raw repository list into
// what the page displays: names to hide, names to promote, and display tags.
type Showcase struct {
	// Hidden lists repository names excluded from display. Matching is exact
	// and case-sensitive.
	Hidden []string
	// Featured lists repository names promoted above the general list.
	// Matching is case-insensitive.
	Featured []string
	// Tags maps a repository name to its display labels.
	Tags map[string][]string
	// OtherCap limits the non-featured group on the page.
	OtherCap int
}

// DefaultShowcase returns the portfolio's own curation tables.
func DefaultShowcase() Showcase {
	return Showcase{
		Hidden: []string{
			"guijosegon",
			"project-assets",
		},
		Featured: []string{
			"poc-gestao-saude-idosos",
			"portfolio-guijosegon",
		},
		Tags: map[string][]string{
			"poc-gestao-saude-idosos":          {"C#", ".NET 8", "PostgreSQL", "MVC", "Razor", "Dashboards", "Google Charts"},
			"GuiaCompletoScrum":                {"Agile", "Scrum", "Processos", "Artigo"},
			"portfolio-guijosegon":             {"React", "TypeScript", "Vite", "Tailwind CSS", "Framer Motion"},
			"grpc_agendamento_docker":          {"C#", ".NET 8", "gRPC", "Docker"},
			"compilador":                       {"C#", ".NET 8", "Compiladores"},
			"agendamento_academia_minimalapi":  {"Minimal API", ".NET 8", "SQLite", "xUnit", "Swagger"},
			"api-controle-visitantes":          {"Node", "MongoDB", "REST", "Express", "Mongoose"},
			"app-travels":                      {"Java", "SQLite", "Retrofit", "Mobile"},
			"comparador_sequecial_vs_paralelo": {"Java 17+", "Multithreading", "ForkJoinPool"},
			"dijkstra-caminho-mais-barato":     {"Node", "Algoritmos", "Dijkstra"},
			"site-institucional":               {"React", "Node", "Next"},
			"unimotors_springboot_apirest":     {"Spring Boot 3", "Java 17", "PostgreSQL", "Flyway"},
		},
		OtherCap: DefaultOtherCap,
	}
}

// Project filters and orders a raw repository list for display. Forks and
// hidden names are dropped, and the rest is sorted by last push, most recent
// first. Repositories pushed at the same instant keep their input order.
// The input slice is never modified.
func (s Showcase) Project(raw []model.Repository) []model.Repository {
	out := make([]model.Repository, 0, len(raw))
	for _, r := range raw {
		if r.Fork || slices.Contains(s.Hidden, r.Name) {
			continue
		}
		out = append(out, r)
	}

	slices.SortStableFunc(out, func(a, b model.Repository) int {
		return b.PushedAt.Compare(a.PushedAt)
	})

	return out
}

// Partition splits list into the featured group and everything else,
// preserving order in both. Neither group is capped; see Cap.
func (s Showcase) Partition(list []model.Repository) (featured, other []model.Repository) {
	names := make(map[string]struct{}, len(s.Featured))
	for _, n := range s.Featured {
		names[strings.ToLower(n)] = struct{}{}
	}

	featured = []model.Repository{}
	other = []model.Repository{}
	for _, r := range list {
		if _, ok := names[strings.ToLower(r.Name)]; ok {
			featured = append(featured, r)
		} else {
			other = append(other, r)
		}
	}
	return featured, other
}

// Cap truncates the non-featured group to OtherCap entries. A non-positive
// OtherCap disables the limit.
func (s Showcase) Cap(other []model.Repository) []model.Repository {
	if s.OtherCap <= 0 || len(other) <= s.OtherCap {
		return other
	}
	return other[:s.OtherCap]
}

// TagsFor returns a copy of the display labels for a repository name.
// ok is false when the name has no entry.
func (s Showcase) TagsFor(name string) (tags []string, ok bool) {
	t, ok := s.Tags[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(t), true
}
