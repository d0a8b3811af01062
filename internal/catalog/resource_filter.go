package catalog

import (
	"slices"
	"strings"
)

// ResourceFilter narrows the resource browser. Zero-valued fields do not filter.
type ResourceFilter struct {
	ProgramID string
	Search    string
	Type      ResourceType
	CourseID  string
}

func (f ResourceFilter) Match(r Resource) bool {
	if f.ProgramID != "" && r.ProgramID != f.ProgramID {
		return false
	}
	if f.Search != "" && !matchesSearch(r, strings.ToLower(f.Search)) {
		return false
	}
	if f.Type != "" && !slices.Contains(r.Types, f.Type) {
		return false
	}
	if f.CourseID != "" && !slices.Contains(r.CourseIDs, f.CourseID) {
		return false
	}
	return true
}

func matchesSearch(r Resource, needle string) bool {
	if strings.Contains(strings.ToLower(r.Title), needle) {
		return true
	}
	return slices.ContainsFunc(r.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), needle)
	})
}

func (c *Catalog) FilterResources(f ResourceFilter) []Resource {
	result := make([]Resource, 0)
	for _, r := range c.resources {
		if f.Match(r) {
			result = append(result, r)
		}
	}
	return result
}
