package request

type OpenSessionRequest struct {
	StudioID string `json:"studio_id" validate:"required,max=64"`
}

// ReloadSessionRequest re-fetches the layout; an empty studio keeps the current one.
type ReloadSessionRequest struct {
	StudioID string `json:"studio_id" validate:"omitempty,max=64"`
}
