package response

import (
	"time"

	"precad_service/internal/domain/entities"
	"precad_service/internal/usecase"
)

// SlotSelectionResponse reports the outcome of a slot selection
// attempt. Warning carries the user-facing text on rejections.
type SlotSelectionResponse struct {
	Outcome string         `json:"outcome"`
	Age     int            `json:"age"`
	Warning string         `json:"warning,omitempty"`
	Intake  IntakeResponse `json:"intake"`
}

func FromSlotSelection(s usecase.SlotSelection) SlotSelectionResponse {
	return SlotSelectionResponse{
		Outcome: string(s.Outcome),
		Age:     s.Age,
		Warning: s.Warning,
		Intake:  FromIntake(s.Intake),
	}
}

type GroupOptionResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Day        string    `json:"day"`
	Afternoon  bool      `json:"afternoon"`
	Department string    `json:"department,omitempty"`
	MinAge     int       `json:"min_age"`
	MaxAge     int       `json:"max_age"`
	Schooling  string    `json:"schooling,omitempty"`
	Segment    string    `json:"segment,omitempty"`
	StartDate  time.Time `json:"start_date"`
}

func FromStudentGroups(groups []entities.StudentGroup) []GroupOptionResponse {
	out := make([]GroupOptionResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, GroupOptionResponse{
			ID:         g.ID,
			Name:       g.Name,
			Day:        g.Day,
			Afternoon:  g.Afternoon,
			Department: g.Department,
			MinAge:     g.MinAge,
			MaxAge:     g.MaxAge,
			Schooling:  g.Schooling,
			Segment:    g.Segment,
			StartDate:  g.StartDate,
		})
	}
	return out
}
