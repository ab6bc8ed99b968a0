package request

import "strings"

// SlotSelectionRequest carries the group chosen for a course slot.
type SlotSelectionRequest struct {
	StudentGroup string `json:"student_group" binding:"required"`
}

func (r SlotSelectionRequest) ResolveGroupID() string {
	return strings.TrimSpace(r.StudentGroup)
}
