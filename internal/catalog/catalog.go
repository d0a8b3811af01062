package catalog

import (
	"slices"
	"strings"
	"sync"
)

// Catalog holds the directory's static data. Teachers are the only entity that
// grows after seeding; everything else is fixed for the process lifetime.
type Catalog struct {
	mu        sync.RWMutex
	schools   []School
	teachers  []Teacher
	programs  []Program
	courses   []Course
	resources []Resource
}

// New returns a catalog seeded with the mock directory data.
func New() *Catalog {
	return &Catalog{
		schools:   seedSchools(),
		teachers:  seedTeachers(),
		programs:  seedPrograms(),
		courses:   seedCourses(),
		resources: seedResources(),
	}
}

func (c *Catalog) Schools() []School {
	return slices.Clone(c.schools)
}

// FirstSchool is the default context for flows that need a school but have none selected.
func (c *Catalog) FirstSchool() School {
	return c.schools[0]
}

func (c *Catalog) School(id string) (School, bool) {
	for _, s := range c.schools {
		if s.ID == id {
			return s, true
		}
	}
	return School{}, false
}

func (c *Catalog) Teachers() []Teacher {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.teachers)
}

func (c *Catalog) Teacher(id string) (Teacher, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, t := range c.teachers {
		if t.ID == id {
			return t, true
		}
	}
	return Teacher{}, false
}

// AddTeacher appends a teacher to the directory.
func (c *Catalog) AddTeacher(t Teacher) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.teachers = append(c.teachers, t)
}

func (c *Catalog) Programs() []Program {
	return slices.Clone(c.programs)
}

func (c *Catalog) Program(id string) (Program, bool) {
	for _, p := range c.programs {
		if p.ID == id {
			return p, true
		}
	}
	return Program{}, false
}

// ProgramIDByName maps a school's program label to a program id. Labels with
// no matching program (e.g. "Honors") report false.
func (c *Catalog) ProgramIDByName(name string) (string, bool) {
	for _, p := range c.programs {
		if p.Name == name {
			return p.ID, true
		}
	}
	return "", false
}

func (c *Catalog) Courses() []Course {
	return slices.Clone(c.courses)
}

func (c *Catalog) Course(id string) (Course, bool) {
	for _, co := range c.courses {
		if co.ID == id {
			return co, true
		}
	}
	return Course{}, false
}

func (c *Catalog) Resources() []Resource {
	return slices.Clone(c.resources)
}

// SearchSchools matches term against school names only, case-insensitively.
// An empty term matches every school.
func (c *Catalog) SearchSchools(term string) []School {
	needle := strings.ToLower(term)
	result := make([]School, 0, len(c.schools))
	for _, s := range c.schools {
		if strings.Contains(strings.ToLower(s.Name), needle) {
			result = append(result, s)
		}
	}
	return result
}

// FindSchools is the directory page search: name or location.
func (c *Catalog) FindSchools(term string) []School {
	needle := strings.ToLower(term)
	result := make([]School, 0, len(c.schools))
	for _, s := range c.schools {
		if strings.Contains(strings.ToLower(s.Name), needle) ||
			strings.Contains(strings.ToLower(s.Location), needle) {
			result = append(result, s)
		}
	}
	return result
}

func (c *Catalog) TeachersBySchool(schoolID string) []Teacher {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]Teacher, 0)
	for _, t := range c.teachers {
		if t.SchoolID == schoolID {
			result = append(result, t)
		}
	}
	return result
}

func (c *Catalog) CoursesByProgram(programID string) []Course {
	result := make([]Course, 0)
	for _, co := range c.courses {
		if co.ProgramID == programID {
			result = append(result, co)
		}
	}
	return result
}
