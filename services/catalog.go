package services

import (
	"sort"
	"strings"
	"unicode"

	"github.com/subarudev0/portfolio-backend/models"
)

// Reserved pseudo-tags. They render as filter chips like any technology but
// match against the boolean flags instead of the technologies list, and they
// never appear in the derived tag facet as ordinary entries.
const (
	TagStarred   = "Destacados"
	TagRealWorld = "Producción"
)

// CategoryAll disables category filtering.
const CategoryAll = "all"

// Visible returns the subset of projects matching the selected category and
// tags. Tag selection uses OR semantics: one matching tag is enough. An empty
// tag selection passes everything.
func Visible(projects []models.Project, category string, tags []string) []models.Project {
	visible := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if matchesCategory(p, category) && matchesAnyTag(p, tags) {
			visible = append(visible, p)
		}
	}
	return visible
}

func matchesCategory(p models.Project, category string) bool {
	if category == "" || category == CategoryAll {
		return true
	}
	if string(p.Category) == category {
		return true
	}
	return p.SecondaryCategory != nil && string(*p.SecondaryCategory) == category
}

func matchesAnyTag(p models.Project, tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	for _, tag := range tags {
		switch {
		case strings.EqualFold(tag, TagRealWorld):
			if p.IsRealWorld {
				return true
			}
		case strings.EqualFold(tag, TagStarred):
			if p.IsStarred {
				return true
			}
		default:
			name := models.ParseTechnology(tag).Name
			for _, tech := range p.Technologies {
				if strings.EqualFold(tech.Name, name) {
					return true
				}
			}
		}
	}
	return false
}

// Rank sorts projects into display order without mutating the input:
// starred+production first, then starred, then production, then manual sort
// order, then recency. The cascade is editorial priority, not relevance.
func Rank(projects []models.Project) []models.Project {
	ranked := make([]models.Project, len(projects))
	copy(ranked, projects)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		aTop := a.IsStarred && a.IsRealWorld
		bTop := b.IsStarred && b.IsRealWorld
		if aTop != bTop {
			return aTop
		}
		if a.IsStarred != b.IsStarred {
			return a.IsStarred
		}
		if a.IsRealWorld != b.IsRealWorld {
			return a.IsRealWorld
		}
		if a.SortOrder != b.SortOrder {
			return a.SortOrder < b.SortOrder
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
	return ranked
}

// TagFacet derives the filter chips from the full project collection:
// technology names deduplicated case-insensitively (preferring the variant
// that carries an icon slug, then the one with more uppercase letters),
// ordered by usage count then alphabetically. The pseudo-tags lead the list
// when any project carries the matching flag.
func TagFacet(projects []models.Project) []models.Technology {
	type tagStat struct {
		display models.Technology
		count   int
	}

	stats := make(map[string]*tagStat)
	anyStarred := false
	anyRealWorld := false

	for _, p := range projects {
		if p.IsStarred {
			anyStarred = true
		}
		if p.IsRealWorld {
			anyRealWorld = true
		}
		for _, tech := range p.Technologies {
			if strings.EqualFold(tech.Name, TagStarred) || strings.EqualFold(tech.Name, TagRealWorld) {
				continue
			}
			key := strings.ToLower(tech.Name)
			stat, ok := stats[key]
			if !ok {
				stats[key] = &tagStat{display: tech, count: 1}
				continue
			}
			stat.count++
			if preferVariant(tech, stat.display) {
				stat.display = tech
			}
		}
	}

	ordered := make([]*tagStat, 0, len(stats))
	for _, stat := range stats {
		ordered = append(ordered, stat)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].count != ordered[j].count {
			return ordered[i].count > ordered[j].count
		}
		return strings.ToLower(ordered[i].display.Name) < strings.ToLower(ordered[j].display.Name)
	})

	facet := make([]models.Technology, 0, len(ordered)+2)
	if anyStarred {
		facet = append(facet, models.Technology{Name: TagStarred})
	}
	if anyRealWorld {
		facet = append(facet, models.Technology{Name: TagRealWorld})
	}
	for _, stat := range ordered {
		facet = append(facet, stat.display)
	}
	return facet
}

func preferVariant(candidate, current models.Technology) bool {
	if (candidate.IconSlug != "") != (current.IconSlug != "") {
		return candidate.IconSlug != ""
	}
	return uppercaseCount(candidate.Name) > uppercaseCount(current.Name)
}

func uppercaseCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsUpper(r) {
			n++
		}
	}
	return n
}
