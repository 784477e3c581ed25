package entities

import "time"

type User struct {
	ID        int64
	Name      string
	Phone     string
	Email     string
	Role      UserRoleType
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserRoleType string

const (
	RoleAdmin    UserRoleType = "admin"
	RoleBusiness UserRoleType = "business"
	RoleDriver   UserRoleType = "driver"
)

func (r UserRoleType) String() string {
	return string(r)
}

// CanCreateDeliveries владельцем доставки может быть бизнес или админ.
func (r UserRoleType) CanCreateDeliveries() bool {
	return r == RoleAdmin || r == RoleBusiness
}

type UserModify struct {
	ID    *int64
	Name  *string
	Phone *string
	Email *string
	Role  *UserRoleType
}
