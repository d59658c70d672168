package builder

import (
	"smart-parking/internal/domain/user"
	reqdto "smart-parking/internal/handler/dto/request"
)

type UserBuilder struct {
	ID    string
	Name  string
	Email string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:    "user-1",
		Name:  "Alice",
		Email: "alice@example.com",
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) Build() user.User {
	return user.NewUser(u.ID, u.Name, u.Email)
}

func (u *UserBuilder) BuildRequestDTO() reqdto.UserRequest {
	return reqdto.UserRequest{ID: u.ID, Name: u.Name, Email: u.Email}
}
