package user

// User is the opaque identity of whoever holds a reservation. The parking
// manager only stores and returns it; it never validates or mutates it.
type User struct {
	id    string
	name  string
	email string
}

func NewUser(id, name, email string) User {
	return User{id: id, name: name, email: email}
}

func (u User) ID() string    { return u.id }
func (u User) Name() string  { return u.name }
func (u User) Email() string { return u.email }

func (u User) String() string {
	if u.name == "" {
		return u.id
	}
	return u.name + " <" + u.id + ">"
}
