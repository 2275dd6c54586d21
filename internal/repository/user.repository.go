package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/rashedq/repair-ops/internal/model"
	"github.com/rashedq/repair-ops/pkg/pg"
	"gorm.io/gorm/clause"
)

// UserRepository mirrors upstream session identities into a local table so
// invoices can attribute who created them.
type UserRepository struct {
	*pg.DB
}

func NewUserRepository(db *pg.DB) *UserRepository {
	return &UserRepository{
		db,
	}
}

// UpsertActor stores the acting identity keyed by email and returns the local
// user row. Name and role follow whatever the session layer currently says.
func (r *UserRepository) UpsertActor(ctx context.Context, actor model.Actor) (*model.User, error) {
	name := actor.Name
	if name == "" {
		name = "Admin"
	}
	role := actor.Role
	if role == "" {
		role = model.RoleAdmin
	}
	id := actor.ID
	if id == "" {
		id = uuid.NewString()
	}

	entity := &UserEntity{
		ID:    id,
		Email: actor.Email,
		Name:  name,
		Role:  string(role),
	}

	err := r.Write(ctx).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "role"}),
		}).
		Create(entity).
		Error
	if err != nil {
		return nil, err
	}

	// reload so a conflicting insert returns the existing row id
	var existing UserEntity
	if err := r.Write(ctx).WithContext(ctx).Where("email = ?", actor.Email).First(&existing).Error; err != nil {
		return nil, err
	}
	return toUserModel(&existing), nil
}
