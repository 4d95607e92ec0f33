package service

import (
	"context"
	"fmt"

	"github.com/eventfinder/auth-service/internal/logger"
	"github.com/eventfinder/auth-service/internal/model"
)

// Profile handles user-profile operations, currently password change.
type Profile struct {
	users  model.UserStore
	hasher model.PasswordHasher
	logger *logger.Logger
}

func NewProfile(users model.UserStore, hasher model.PasswordHasher, logger *logger.Logger) *Profile {
	return &Profile{users: users, hasher: hasher, logger: logger}
}

// ChangePassword replaces the user's password digest after verifying the
// current password. The new password must differ from the old one.
func (p *Profile) ChangePassword(ctx context.Context, user model.User, currentPassword, newPassword string) error {
	if !p.hasher.Verify(currentPassword, user.PasswordHash) {
		return model.ErrWrongPassword
	}
	if p.hasher.Verify(newPassword, user.PasswordHash) {
		return model.ErrPasswordUnchanged
	}

	digest, err := p.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = digest
	if _, err := p.users.Update(ctx, user); err != nil {
		p.logger.Error("Profile service: failed to change password",
			"user_id", user.ID,
			"error", err.Error())
		return fmt.Errorf("failed to change password: %w", err)
	}

	p.logger.Info("Profile service: password changed",
		"user_id", user.ID)

	return nil
}
