package catalog_test

import (
	"testing"

	"github.com/HeidiChen0/Archool/internal/catalog"

	"github.com/stretchr/testify/assert"
)

func resourceIDs(resources []catalog.Resource) []string {
	ids := make([]string, 0, len(resources))
	for _, r := range resources {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestFilterResources(t *testing.T) {
	c := catalog.New()

	t.Run("FilterResources_NoFilter", func(t *testing.T) {
		assert.Len(t, c.FilterResources(catalog.ResourceFilter{}), 5)
	})

	t.Run("FilterResources_Program", func(t *testing.T) {
		got := c.FilterResources(catalog.ResourceFilter{ProgramID: "p2"})
		assert.Equal(t, []string{"res2"}, resourceIDs(got))
	})

	t.Run("FilterResources_SearchTitleOrTag", func(t *testing.T) {
		// "tips" is only a tag, "questionbank" is both title and tag.
		assert.Equal(t, []string{"res5"}, resourceIDs(c.FilterResources(catalog.ResourceFilter{Search: "TIPS"})))
		assert.Equal(t, []string{"res1"}, resourceIDs(c.FilterResources(catalog.ResourceFilter{Search: "questionbank"})))
	})

	t.Run("FilterResources_TypeMembership", func(t *testing.T) {
		got := c.FilterResources(catalog.ResourceFilter{Type: catalog.ResourceGuide})
		assert.Equal(t, []string{"res2", "res4", "res5"}, resourceIDs(got))
	})

	t.Run("FilterResources_Course", func(t *testing.T) {
		got := c.FilterResources(catalog.ResourceFilter{CourseID: "c2"})
		assert.Equal(t, []string{"res3"}, resourceIDs(got))
	})

	t.Run("FilterResources_Conjunction", func(t *testing.T) {
		got := c.FilterResources(catalog.ResourceFilter{
			ProgramID: "p1",
			Search:    "guide",
			Type:      catalog.ResourceOther,
		})
		assert.Equal(t, []string{"res5"}, resourceIDs(got))

		got = c.FilterResources(catalog.ResourceFilter{ProgramID: "p2", Type: catalog.ResourcePastPaper})
		assert.Empty(t, got)
	})

	t.Run("ResourceFilter_MultiCourseMembership", func(t *testing.T) {
		r := catalog.Resource{ProgramID: "p1", CourseIDs: []string{"c1", "c2"}, Types: []catalog.ResourceType{catalog.ResourceNotes}}
		assert.True(t, catalog.ResourceFilter{CourseID: "c2"}.Match(r))
		assert.False(t, catalog.ResourceFilter{CourseID: "c3"}.Match(r))
	})
}

func TestValidResourceType(t *testing.T) {
	assert.True(t, catalog.ValidResourceType(catalog.ResourcePastPaper))
	assert.False(t, catalog.ValidResourceType("Video"))
}
