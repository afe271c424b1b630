// Package mappers converts between persistence models and domain entities.
// Models carry pointer columns for nullable fields; entities use plain
// strings with "" meaning absent.
package mappers

import (
	"adaptivegame/internal/domain/user"
	"adaptivegame/internal/infrastructure/persistence/models"
	"adaptivegame/internal/shared/authorization"
)

// UserMapper handles the conversion between domain entities and persistence models
type UserMapper interface {
	ToEntity(model *models.UserModel) *user.User
	ToModel(entity *user.User) *models.UserModel
	ToEntities(models []*models.UserModel) []*user.User
}

type userMapper struct{}

// NewUserMapper creates a new user mapper
func NewUserMapper() UserMapper {
	return &userMapper{}
}

func (m *userMapper) ToEntity(model *models.UserModel) *user.User {
	if model == nil {
		return nil
	}
	return &user.User{
		ID:           model.ID,
		Name:         model.Name,
		Lastname:     model.Lastname,
		Email:        model.Email,
		DNINumber:    deref(model.DNINumber),
		Role:         authorization.ParseUserRole(model.Rol),
		Status:       model.Status,
		PasswordHash: deref(model.PasswordHash),
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func (m *userMapper) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}
	return &models.UserModel{
		ID:           entity.ID,
		Name:         entity.Name,
		Lastname:     entity.Lastname,
		Email:        entity.Email,
		DNINumber:    ptr(entity.DNINumber),
		Rol:          entity.Role.String(),
		PasswordHash: ptr(entity.PasswordHash),
		Status:       entity.Status,
		CreatedAt:    entity.CreatedAt,
		UpdatedAt:    entity.UpdatedAt,
	}
}

func (m *userMapper) ToEntities(userModels []*models.UserModel) []*user.User {
	entities := make([]*user.User, 0, len(userModels))
	for _, model := range userModels {
		entities = append(entities, m.ToEntity(model))
	}
	return entities
}

// CredentialResetMapper converts reset rows.
type CredentialResetMapper interface {
	ToEntity(model *models.ResetPasswordModel) *user.CredentialReset
	ToModel(entity *user.CredentialReset) *models.ResetPasswordModel
}

type credentialResetMapper struct{}

func NewCredentialResetMapper() CredentialResetMapper {
	return &credentialResetMapper{}
}

func (m *credentialResetMapper) ToEntity(model *models.ResetPasswordModel) *user.CredentialReset {
	if model == nil {
		return nil
	}
	return &user.CredentialReset{
		ID:        model.ID,
		Email:     model.Email,
		Hash:      model.Hash,
		Status:    model.Status,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func (m *credentialResetMapper) ToModel(entity *user.CredentialReset) *models.ResetPasswordModel {
	if entity == nil {
		return nil
	}
	return &models.ResetPasswordModel{
		ID:     entity.ID,
		Email:  entity.Email,
		Hash:   entity.Hash,
		Status: entity.Status,
	}
}

// deref returns "" for a nil column.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ptr returns nil for an empty value so the column stays NULL.
func ptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
