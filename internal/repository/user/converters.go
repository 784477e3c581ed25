package user

import "quickship/internal/entities"

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}
	return &entities.User{
		ID:        u.ID,
		Name:      u.Name,
		Phone:     u.Phone,
		Email:     u.Email,
		Role:      entities.UserRoleType(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func FromDomainModify(u *entities.UserModify) *UserModifyDB {
	if u == nil {
		return nil
	}
	userModifyDB := &UserModifyDB{}

	if u.ID != nil {
		userModifyDB.ID = u.ID
	}
	if u.Name != nil {
		userModifyDB.Name = u.Name
	}
	if u.Phone != nil {
		userModifyDB.Phone = u.Phone
	}
	if u.Email != nil {
		userModifyDB.Email = u.Email
	}
	if u.Role != nil {
		role := u.Role.String()
		userModifyDB.Role = &role
	}

	return userModifyDB
}
