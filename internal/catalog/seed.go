package catalog

// MockUser is the identity every login resolves to. There is no credential check.
func MockUser() User {
	return User{
		ID:                "u1",
		Name:              "Alex Chen",
		Role:              RoleStudent,
		Verified:          true,
		AvatarURL:         "https://picsum.photos/id/64/200/200",
		VerificationEmail: "alex.chen@lincolnhigh.edu",
		GraduationYear:    2026,
	}
}

func seedSchools() []School {
	return []School{
		{
			ID:          "s1",
			Name:        "Lincoln High School",
			Location:    "Seattle, WA",
			Type:        SchoolPublic,
			Description: "A comprehensive public high school known for its strong STEM program and diverse student body.",
			ImageURL:    "https://picsum.photos/id/49/800/400",
			Ratings: SchoolRatings{
				Lunch:           3.5,
				Happiness:       4.2,
				WillingnessBack: 4.5,
				Bathroom:        3.2,
				Cleanliness:     3.8,
				Infrastructure:  4.0,
				Wifi:            2.8,
				Overall:         4.0,
			},
			Features:        []string{"AP Courses", "Robotics Club", "Open Campus Lunch"},
			Principal:       "Dr. Sarah Williams",
			Programs:        []string{"AP", "Honors"},
			AmbassadorCount: 7,
		},
		{
			ID:          "s2",
			Name:        "St. Mary’s Academy",
			Location:    "Portland, OR",
			Type:        SchoolPrivate,
			Description: "An independent college-preparatory school with a focus on holistic education.",
			ImageURL:    "https://picsum.photos/id/20/800/400",
			Ratings: SchoolRatings{
				Lunch:           4.5,
				Happiness:       3.9,
				WillingnessBack: 4.0,
				Bathroom:        4.8,
				Cleanliness:     4.8,
				Infrastructure:  4.5,
				Wifi:            4.2,
				Overall:         4.4,
			},
			Features:        []string{"IB Program", "Small Class Sizes", "Arts Focus"},
			Principal:       "Sister Margaret",
			Programs:        []string{"IBDP"},
			AmbassadorCount: 10,
		},
	}
}

func seedTeachers() []Teacher {
	return []Teacher{
		{
			ID:         "t1",
			SchoolID:   "s1",
			Name:       "Mr. John Anderson",
			Subject:    "Calculus BC",
			Department: "Mathematics",
			Ratings:    TeacherRatings{Difficulty: 4.5, Friendliness: 3.2, Homework: 4.8, Pacing: 4.5, Overall: 4.3},
		},
		{
			ID:         "t2",
			SchoolID:   "s1",
			Name:       "Ms. Sarah Lee",
			Subject:    "World History",
			Department: "History",
			Ratings:    TeacherRatings{Difficulty: 3.2, Friendliness: 4.8, Homework: 3.5, Pacing: 4.0, Overall: 4.2},
		},
		{
			ID:         "t3",
			SchoolID:   "s2",
			Name:       "Dr. Emily Chen",
			Subject:    "Chemistry",
			Department: "Science",
			Ratings:    TeacherRatings{Difficulty: 4.2, Friendliness: 4.5, Homework: 4.0, Pacing: 4.8, Overall: 4.7},
		},
	}
}

func seedPrograms() []Program {
	return []Program{
		{ID: "p2", Name: "AP", Description: "Advanced Placement"},
		{ID: "p1", Name: "IBDP", Description: "International Baccalaureate Diploma Programme"},
		{ID: "p3", Name: "A-Level", Description: "Advanced Level"},
		{ID: "p4", Name: "GCSE", Description: "General Certificate of Secondary Education"},
	}
}

func seedCourses() []Course {
	return []Course{
		{
			ID:        "c1",
			ProgramID: "p1",
			Name:      "Mathematics AA HL",
			Ratings:   CourseRatings{Difficulty: 4.8, TimeConsuming: 5.0, Homework: 4.5, SelfStudibility: 2.5, Overall: 3.8},
		},
		{
			ID:        "c2",
			ProgramID: "p1",
			Name:      "Physics HL",
			Ratings:   CourseRatings{Difficulty: 4.9, TimeConsuming: 4.8, Homework: 4.2, SelfStudibility: 3.0, Overall: 4.0},
		},
		{
			ID:        "c3",
			ProgramID: "p2",
			Name:      "AP US History",
			Ratings:   CourseRatings{Difficulty: 4.0, TimeConsuming: 4.5, Homework: 4.0, SelfStudibility: 4.2, Overall: 4.1},
		},
	}
}

func seedResources() []Resource {
	return []Resource{
		{
			ID:        "res1",
			Title:     "IB Math AA HL Questionbank (2024)",
			Source:    "Math Whiz",
			URL:       "#",
			ProgramID: "p1",
			CourseIDs: []string{"c1"},
			Types:     []ResourceType{ResourcePastPaper},
			Tags:      []string{"Math", "Questionbank", "2024"},
			ShowName:  true,
		},
		{
			ID:        "res2",
			Title:     "AP US History Full Notes - Chapter 1-5",
			Source:    "Anonymous",
			URL:       "#",
			ProgramID: "p2",
			CourseIDs: []string{"c3"},
			Types:     []ResourceType{ResourceNotes, ResourceGuide},
			Tags:      []string{"History", "Notes", "Summary"},
		},
		{
			ID:        "res3",
			Title:     "Physics HL Past Papers (1999-2023)",
			Source:    "Science Guru",
			URL:       "#",
			ProgramID: "p1",
			CourseIDs: []string{"c2"},
			Types:     []ResourceType{ResourcePastPaper},
			Tags:      []string{"Physics", "Past Papers"},
			ShowName:  true,
		},
		{
			ID:        "res4",
			Title:     "Chemistry IA Examples (High Scoring)",
			Source:    "Anonymous",
			URL:       "#",
			ProgramID: "p1",
			Types:     []ResourceType{ResourceGuide},
			Tags:      []string{"Chemistry", "IA", "Guide"},
		},
		{
			ID:        "res5",
			Title:     "General IB Survival Guide",
			Source:    "IB Survivor",
			URL:       "#",
			ProgramID: "p1",
			Types:     []ResourceType{ResourceGuide, ResourceOther},
			Tags:      []string{"General", "Tips"},
			ShowName:  true,
		},
	}
}
