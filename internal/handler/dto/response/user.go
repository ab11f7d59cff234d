package response

import (
	"time"

	"experience-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	return &UserResponse{ID: v.ID, Username: v.Username, CreatedAt: v.CreatedAt}
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
