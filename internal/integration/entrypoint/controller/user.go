// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/application/usecase/user"
	domainerror "github.com/moneybook/backend/internal/domain/error"
	"github.com/moneybook/backend/internal/integration/entrypoint/dto"
)

// UserController handles registration, login and user lifecycle endpoints.
type UserController struct {
	registerUseCase *user.RegisterUserUseCase
	loginUseCase    *user.LoginUserUseCase
	deleteUseCase   *user.DeleteUserUseCase
	restoreUseCase  *user.RestoreUserUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	registerUseCase *user.RegisterUserUseCase,
	loginUseCase *user.LoginUserUseCase,
	deleteUseCase *user.DeleteUserUseCase,
	restoreUseCase *user.RestoreUserUseCase,
) *UserController {
	return &UserController{
		registerUseCase: registerUseCase,
		loginUseCase:    loginUseCase,
		deleteUseCase:   deleteUseCase,
		restoreUseCase:  restoreUseCase,
	}
}

// Register handles POST /auth/register requests.
func (c *UserController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	input := user.RegisterUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}

	output, err := c.registerUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AuthResponse{
		AccessToken: output.AccessToken,
		User:        dto.ToUserResponse(output.User),
	})
}

// Login handles POST /auth/login requests.
func (c *UserController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	input := user.LoginUserInput{
		Email:    req.Email,
		Password: req.Password,
	}

	output, err := c.loginUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		// Bad credentials are a 401 at the transport layer, not a 403.
		if domainerror.IsKind(err, domainerror.KindForbidden) {
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid email or password",
				Code:  string(domainerror.ErrCodeInvalidCredentials),
			})
			return
		}
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthResponse{
		AccessToken: output.AccessToken,
		User:        dto.ToUserResponse(output.User),
	})
}

// Delete handles DELETE /users/me requests. The body may carry a transfer
// target for books the user still owns.
func (c *UserController) Delete(ctx *gin.Context) {
	userID, ok := requesterID(ctx)
	if !ok {
		return
	}

	var req dto.DeleteUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		// An empty body is fine when the user owns no books.
		req = dto.DeleteUserRequest{}
	}

	input := user.DeleteUserInput{UserID: userID}
	if req.TransferToUserID != nil {
		target, err := uuid.Parse(*req.TransferToUserID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid transfer_to_user_id",
			})
			return
		}
		input.TransferToUserID = &target
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteUserResponse{
		Message:          "Account deleted",
		TransferredBooks: output.TransferredBooks,
	})
}

// Restore handles POST /users/:userId/restore requests. It brings a
// soft-deleted account back before the retention sweep reclaims it.
func (c *UserController) Restore(ctx *gin.Context) {
	if _, ok := requesterID(ctx); !ok {
		return
	}

	userID, ok := uuidParam(ctx, "userId")
	if !ok {
		return
	}

	output, err := c.restoreUseCase.Execute(ctx.Request.Context(), user.RestoreUserInput{
		UserID: userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}
