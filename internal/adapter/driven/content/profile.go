// Package content loads the portfolio's static biographical content.
package content

import (
	"bytes"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/guijosegon/portfolio/internal/domain/model"
)

//go:embed profile.yaml
var defaultProfile []byte

type profileDoc struct {
	Name       string          `yaml:"name"`
	PageTitle  string          `yaml:"page_title"`
	Heading    string          `yaml:"heading"`
	Avatar     string          `yaml:"avatar"`
	AvatarAlt  string          `yaml:"avatar_alt"`
	Hero       string          `yaml:"hero"`
	About      string          `yaml:"about"`
	Experience []experienceDoc `yaml:"experience"`
	HardSkills []skillDoc      `yaml:"hard_skills"`
	SoftSkills []string        `yaml:"soft_skills"`
	Blog       []blogDoc       `yaml:"blog"`
	Socials    []socialDoc     `yaml:"socials"`
	Footer     string          `yaml:"footer"`
}

type experienceDoc struct {
	Company string `yaml:"company"`
	Period  string `yaml:"period"`
	Summary string `yaml:"summary"`
}

type skillDoc struct {
	Label string `yaml:"label"`
	Items string `yaml:"items"`
}

type blogDoc struct {
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
	URL     string `yaml:"url"`
}

type socialDoc struct {
	Kind  string `yaml:"kind"`
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Default returns the profile embedded in the binary.
func Default() (model.Profile, error) {
	return Parse(defaultProfile)
}

// Parse decodes a YAML profile document. Unknown fields are rejected so typos
// in the content file surface at startup instead of silently rendering nothing.
func Parse(data []byte) (model.Profile, error) {
	var doc profileDoc

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return model.Profile{}, fmt.Errorf("decode profile: %w", err)
	}

	if doc.Name == "" {
		return model.Profile{}, fmt.Errorf("decode profile: name is required")
	}
	if doc.PageTitle == "" {
		doc.PageTitle = doc.Name
	}

	p := model.Profile{
		Name:       doc.Name,
		PageTitle:  doc.PageTitle,
		Heading:    doc.Heading,
		Hero:       doc.Hero,
		About:      doc.About,
		Avatar:     doc.Avatar,
		AvatarAlt:  doc.AvatarAlt,
		SoftSkills: doc.SoftSkills,
		Footer:     doc.Footer,
	}
	for _, e := range doc.Experience {
		p.Experience = append(p.Experience, model.Experience(e))
	}
	for _, s := range doc.HardSkills {
		p.HardSkills = append(p.HardSkills, model.SkillGroup(s))
	}
	for _, b := range doc.Blog {
		p.Blog = append(p.Blog, model.BlogPost(b))
	}
	for _, s := range doc.Socials {
		p.Socials = append(p.Socials, model.SocialLink(s))
	}

	return p, nil
}
