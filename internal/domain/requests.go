package domain

import "time"

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	User      *UserResponse `json:"user"`
	AuthToken string        `json:"auth_token"`
}

// UserResponse is the client-facing projection of a User, without
// credential fields.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateDraftRequest struct {
	Label string `json:"label" validate:"required"`
}

type UpdateDraftRequest struct {
	Selections []Selection `json:"selections" validate:"required"`
}

// EvaluateScenarioRequest either carries inline selections or references a
// stored draft by id. EcoWeight is a percentage in [0,100]; the financial
// weight is always its complement and is never settable directly.
type EvaluateScenarioRequest struct {
	Label      string      `json:"label"`
	DraftID    string      `json:"draft_id"`
	Selections []Selection `json:"selections"`
	EcoWeight  float64     `json:"eco_weight" validate:"min=0,max=100"`
}

type CompareRequest struct {
	ScenarioIDs []int64 `json:"scenario_ids" validate:"required"`
}
