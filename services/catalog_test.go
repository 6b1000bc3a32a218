package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/subarudev0/portfolio-backend/models"
)

func techs(raw ...string) datatypes.JSONSlice[models.Technology] {
	out := make([]models.Technology, len(raw))
	for i, r := range raw {
		out[i] = models.ParseTechnology(r)
	}
	return datatypes.NewJSONSlice(out)
}

func secondary(c models.ProjectCategory) *models.ProjectCategory {
	return &c
}

func TestVisibleTagORSemantics(t *testing.T) {
	project := models.Project{
		ID:           "p1",
		Category:     models.CategoryFullstack,
		Technologies: techs("React", "Node.js"),
	}

	// one matching tag is enough
	visible := Visible([]models.Project{project}, CategoryAll, []string{"React", "Postgres"})
	assert.Len(t, visible, 1)

	// no matching tag and no flags set
	visible = Visible([]models.Project{project}, CategoryAll, []string{"Postgres", "Rust"})
	assert.Empty(t, visible)

	// empty selection passes everything
	visible = Visible([]models.Project{project}, CategoryAll, nil)
	assert.Len(t, visible, 1)
}

func TestVisiblePseudoTags(t *testing.T) {
	production := models.Project{ID: "prod", Category: models.CategoryBackend, IsRealWorld: true}
	starred := models.Project{ID: "star", Category: models.CategoryBackend, IsStarred: true}
	plain := models.Project{ID: "plain", Category: models.CategoryBackend}
	all := []models.Project{production, starred, plain}

	visible := Visible(all, CategoryAll, []string{TagRealWorld})
	require.Len(t, visible, 1)
	assert.Equal(t, "prod", visible[0].ID)

	visible = Visible(all, CategoryAll, []string{TagStarred})
	require.Len(t, visible, 1)
	assert.Equal(t, "star", visible[0].ID)
}

func TestVisibleTagMatchingIgnoresCaseAndIconSlug(t *testing.T) {
	project := models.Project{ID: "p1", Category: models.CategoryOther, Technologies: techs("TypeScript:typescript")}

	visible := Visible([]models.Project{project}, CategoryAll, []string{"typescript"})
	assert.Len(t, visible, 1)
}

func TestVisibleCategoryMatchesSecondary(t *testing.T) {
	project := models.Project{
		ID:                "p1",
		Category:          models.CategoryFrontend,
		SecondaryCategory: secondary(models.CategoryResearch),
	}

	assert.Len(t, Visible([]models.Project{project}, "research", nil), 1)
	assert.Len(t, Visible([]models.Project{project}, "frontend", nil), 1)
	assert.Empty(t, Visible([]models.Project{project}, "backend", nil))
}

func TestRankCascade(t *testing.T) {
	now := time.Now()
	both := models.Project{ID: "both", IsStarred: true, IsRealWorld: true, SortOrder: 99}
	starredOnly := models.Project{ID: "starred", IsStarred: true, SortOrder: 0}
	productionOnly := models.Project{ID: "production", IsRealWorld: true, SortOrder: 0}
	manualFirst := models.Project{ID: "manual", SortOrder: 1, CreatedAt: now.Add(-time.Hour)}
	newest := models.Project{ID: "newest", SortOrder: 2, CreatedAt: now}
	older := models.Project{ID: "older", SortOrder: 2, CreatedAt: now.Add(-2 * time.Hour)}

	ranked := Rank([]models.Project{older, newest, manualFirst, productionOnly, starredOnly, both})

	ids := make([]string, len(ranked))
	for i, p := range ranked {
		ids[i] = p.ID
	}
	// starred+production beats starred regardless of sortOrder, starred beats
	// production, then manual order, then recency
	assert.Equal(t, []string{"both", "starred", "production", "manual", "newest", "older"}, ids)
}

func TestTagFacet(t *testing.T) {
	projects := []models.Project{
		{ID: "p1", IsStarred: true, Technologies: techs("react:react", "Go")},
		{ID: "p2", IsRealWorld: true, Technologies: techs("React", "Go", "Zig")},
		{ID: "p3", Technologies: techs("go")},
	}

	facet := TagFacet(projects)
	require.NotEmpty(t, facet)

	names := make([]string, len(facet))
	for i, tag := range facet {
		names[i] = tag.Name
	}

	// pseudo-tags lead, then usage frequency, then alphabetical
	assert.Equal(t, []string{TagStarred, TagRealWorld, "Go", "react", "Zig"}, names)

	// the react variant with the icon slug wins the dedupe
	assert.Equal(t, "react", facet[3].IconSlug)
}

func TestTagFacetExcludesReservedNames(t *testing.T) {
	projects := []models.Project{
		{ID: "p1", Technologies: techs("Producción", "Destacados", "Go")},
	}

	facet := TagFacet(projects)
	require.Len(t, facet, 1)
	assert.Equal(t, "Go", facet[0].Name)
}

func TestTagFacetPrefersMoreUppercase(t *testing.T) {
	projects := []models.Project{
		{ID: "p1", Technologies: techs("nodejs")},
		{ID: "p2", Technologies: techs("NodeJS")},
	}

	facet := TagFacet(projects)
	require.Len(t, facet, 1)
	assert.Equal(t, "NodeJS", facet[0].Name)
}
