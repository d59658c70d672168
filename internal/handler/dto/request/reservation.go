package request

import (
	"errors"
	"strings"

	"smart-parking/internal/domain/user"
)

var ErrBlankUserID = errors.New("user id must not be blank")

type UserRequest struct {
	ID    string `json:"id" binding:"required"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CreateReservationRequest struct {
	SlotID int         `json:"slotId" binding:"required"`
	User   UserRequest `json:"user" binding:"required"`
}

// ToUser trims the user fields. The binding tag only rejects a missing id, so
// an id made of whitespace is rejected here.
func (r CreateReservationRequest) ToUser() (user.User, error) {
	id := strings.TrimSpace(r.User.ID)
	if id == "" {
		return user.User{}, ErrBlankUserID
	}
	return user.NewUser(
		id,
		strings.TrimSpace(r.User.Name),
		strings.TrimSpace(r.User.Email),
	), nil
}
