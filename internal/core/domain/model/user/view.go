package user

// View is the wire form of a registered user.
type View struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

// View builds a snapshot of the user. Users are immutable after registration,
// so the snapshot never goes stale.
func (u *User) View() View {
	return View{
		ID:    u.id.String(),
		Name:  u.name,
		Phone: u.phone,
		Role:  u.role.String(),
	}
}
