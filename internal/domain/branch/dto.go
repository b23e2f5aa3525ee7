package branch

type BranchResponse struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Color    string              `json:"color,omitempty"`
	IsClinic bool                `json:"is_clinic"`
	Hours    map[string]DayHours `json:"hours"`
}

func ToResponse(b Branch) BranchResponse {
	return BranchResponse{
		ID:       b.ID,
		Name:     b.Name,
		Color:    b.Color,
		IsClinic: b.IsClinic,
		Hours:    b.Hours,
	}
}

func ToResponses(branches []Branch) []BranchResponse {
	out := make([]BranchResponse, 0, len(branches))
	for _, b := range branches {
		out = append(out, ToResponse(b))
	}
	return out
}
