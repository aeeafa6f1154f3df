package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/user"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrLoginUserQueryIsNotConstructed = errors.New(
	"LoginUserQuery must be created via NewLoginUserQuery constructor",
)

// LoginUserQuery looks an account up by its login key: the (phone, role)
// pair the client claims.
type LoginUserQuery struct {
	phone string
	role  user.Role

	guard guard.ConstructorGuard
}

// NewLoginUserQuery creates a login query. Phone is required and the role
// must be one of the closed set.
func NewLoginUserQuery(phone, role string) (LoginUserQuery, error) {
	query := LoginUserQuery{
		guard: guard.NewConstructorGuard(),
	}

	parsedRole, roleErr := user.RoleFromString(role)

	if phone == "" {
		return LoginUserQuery{}, errors.Join(errs.NewValueIsRequiredError("phone"), roleErr)
	}
	if roleErr != nil {
		return LoginUserQuery{}, roleErr
	}

	query.phone = phone
	query.role = parsedRole
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q LoginUserQuery) Validate() error {
	return q.guard.Validate(ErrLoginUserQueryIsNotConstructed)
}

// Phone returns the claimed phone number.
func (q LoginUserQuery) Phone() string {
	return q.phone
}

// Role returns the claimed role.
func (q LoginUserQuery) Role() user.Role {
	return q.role
}
