package repository

import (
	"github.com/rashedq/repair-ops/internal/model"
)

type UserEntity struct {
	ID    string `db:"id"    gorm:"primaryKey;column:id"`
	Email string `db:"email" gorm:"column:email;not null;uniqueIndex"`
	Name  string `db:"name"  gorm:"column:name;not null"`
	Role  string `db:"role"  gorm:"column:role;not null;default:STAFF"`
}

func (UserEntity) TableName() string {
	return "users"
}

func toUserModel(e *UserEntity) *model.User {
	if e == nil {
		return nil
	}
	return &model.User{
		ID:    e.ID,
		Email: e.Email,
		Name:  e.Name,
		Role:  model.Role(e.Role),
	}
}
