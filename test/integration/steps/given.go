package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/moneybook/backend/internal/integration/persistence/model"
)

func aUserExists(ctx context.Context, email string) error {
	return aUserExistsWithPassword(ctx, email, "SecurePass123!")
}

func aUserExistsWithPassword(ctx context.Context, email, password string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var existing model.UserModel
	if err := testDB.DbConn.Where("email = ?", email).First(&existing).Error; err == nil {
		tc.vars["user_id:"+email] = existing.ID.String()
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           uuid.New(),
		Username:     usernameFromEmail(email),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := testDB.DbConn.Create(user).Error; err != nil {
		return err
	}

	tc.vars["user_id:"+email] = user.ID.String()
	return nil
}

func iAmAuthenticatedAs(ctx context.Context, email string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	if err := aUserExists(ctx, email); err != nil {
		return err
	}

	var user model.UserModel
	if err := testDB.DbConn.Where("email = ?", email).First(&user).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	token, err := tokenService.GenerateAccessToken(ctx, user.ID, user.Email)
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}

	tc.accessToken = token
	tc.vars["user_id"] = user.ID.String()
	return nil
}

func iAmNotAuthenticated(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.accessToken = ""
	return nil
}

func usernameFromEmail(email string) string {
	for i := 0; i < len(email); i++ {
		if email[i] == '@' {
			return email[:i]
		}
	}
	return email
}
