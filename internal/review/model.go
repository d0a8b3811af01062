package review

import (
	"fmt"
	"time"
)

type TargetType string

const (
	TargetSchool  TargetType = "School"
	TargetTeacher TargetType = "Teacher"
	TargetCourse  TargetType = "Course"
)

// Target identifies the entity a review is attached to.
type Target struct {
	Type TargetType `json:"type"`
	ID   string     `json:"id"`
}

func (t Target) IsZero() bool {
	return t.ID == ""
}

type Review struct {
	ID              string         `json:"id"`
	TargetID        string         `json:"targetId"`
	TargetType      TargetType     `json:"targetType"`
	AuthorName      string         `json:"authorName"`
	VerifiedStudent bool           `json:"verifiedStudent"`
	Date            string         `json:"date"`
	Rating          int            `json:"rating"`
	Comment         string         `json:"comment"`
	SubRatings      map[string]int `json:"subRatings,omitempty"`
}

// AnonymousAuthor is the author name recorded when no user is signed in.
const AnonymousAuthor = "Anonymous"

// DateLayout is the calendar-day format reviews are stamped with.
const DateLayout = "2006-01-02"

// NewID derives a review id from the submission time.
func NewID(now time.Time) string {
	return fmt.Sprintf("r%d", now.UnixMilli())
}

// ForTarget keeps the reviews whose target id equals id, preserving order.
// The target type is not compared.
func ForTarget(reviews []Review, id string) []Review {
	result := make([]Review, 0)
	for _, r := range reviews {
		if r.TargetID == id {
			result = append(result, r)
		}
	}
	return result
}

// For keeps the reviews attached to exactly this (type, id) target.
func For(reviews []Review, target Target) []Review {
	result := make([]Review, 0)
	for _, r := range reviews {
		if r.TargetID == target.ID && r.TargetType == target.Type {
			result = append(result, r)
		}
	}
	return result
}

// Comments extracts the comment text of each review.
func Comments(reviews []Review) []string {
	comments := make([]string, 0, len(reviews))
	for _, r := range reviews {
		comments = append(comments, r.Comment)
	}
	return comments
}

func seedReviews() []Review {
	return []Review{
		{
			ID:              "rc1",
			TargetID:        "c1",
			TargetType:      TargetCourse,
			AuthorName:      "Math Whiz",
			VerifiedStudent: true,
			Date:            "2024-01-10",
			Rating:          4,
			Comment:         "Math AA HL is definitely the hardest course in IB. You need to practice past papers every single day. Don't rely just on the textbook!",
		},
		{
			ID:              "rc2",
			TargetID:        "c2",
			TargetType:      TargetCourse,
			AuthorName:      "Future Engineer",
			VerifiedStudent: true,
			Date:            "2024-02-15",
			Rating:          5,
			Comment:         "Physics HL is amazing if you like understanding how things work. The workload is heavy but the content is very rewarding.",
		},
		{
			ID:              "r1",
			TargetID:        "t1",
			TargetType:      TargetTeacher,
			AuthorName:      "Verified Student",
			VerifiedStudent: true,
			Date:            "2023-10-15",
			Rating:          4,
			Comment:         "Mr. Anderson explains concepts very clearly, but his tests are extremely difficult. Make sure to study the challenge problems in the textbook.",
			SubRatings:      map[string]int{"Difficulty": 5, "Friendliness": 3, "Homework": 5, "Pacing": 5},
		},
		{
			ID:              "r2",
			TargetID:        "t1",
			TargetType:      TargetTeacher,
			AuthorName:      AnonymousAuthor,
			VerifiedStudent: false,
			Date:            "2023-09-20",
			Rating:          5,
			Comment:         "Best math teacher I have ever had. He actually cares if you understand the material.",
			SubRatings:      map[string]int{"Difficulty": 4, "Friendliness": 5, "Homework": 4, "Pacing": 4},
		},
		{
			ID:              "r3",
			TargetID:        "s1",
			TargetType:      TargetSchool,
			AuthorName:      "Parent of Alumni",
			VerifiedStudent: false,
			Date:            "2023-11-01",
			Rating:          4,
			Comment:         "Great community and rigorous academics. The cafeteria food could be better though.",
			SubRatings:      map[string]int{"Lunch": 2, "Happiness": 4, "Cleanliness": 4},
		},
	}
}
