package user

import "time"

type UserDB struct {
	ID        int64
	Name      string
	Phone     string
	Email     string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserModifyDB struct {
	ID    *int64
	Name  *string
	Phone *string
	Email *string
	Role  *string
}
