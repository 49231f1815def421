// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"usersvc/config"
	deliverycontext "usersvc/internal/delivery/context"
	"usersvc/internal/domain/entity"
	domainerrors "usersvc/internal/domain/errors"
	"usersvc/internal/domain/repository"
	"usersvc/internal/domain/service"
	"usersvc/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface. It orchestrates the
// user store and the password hasher; it holds no state of its own, every
// operation is a single request/response cycle against the store.
type userService struct {
	userRepo            repository.UserRepository
	hasher              service.PasswordHasher
	signalMissingDelete bool
	logger              *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Config   *config.Config
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	signalMissingDelete := false
	if params.Config != nil && params.Config.Users != nil {
		signalMissingDelete = params.Config.Users.SignalMissingDelete
	}

	return &userService{
		userRepo:            params.UserRepo,
		hasher:              params.Hasher,
		signalMissingDelete: signalMissingDelete,
		logger:              params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create registers a new user. The email lookup is a fast-path duplicate
// check; the unique index on users.email remains the authoritative guard,
// so a concurrent create racing past this lookup still surfaces the same
// duplicate-email error from the store.
func (srv *userService) Create(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		srv.log(ctx).Warn("Create rejected, email already in use", slog.String("email", input.Email))

		return nil, domainerrors.ErrEmailAlreadyExists.WrapMessage("email already registered")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email uniqueness")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during create", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	user := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Debug("User created", slog.Uint64("userID", user.ID), slog.String("email", user.Email))

	return user, nil
}

// List returns every stored user unchanged.
func (srv *userService) List(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetByID returns the user or a not-found error.
func (srv *userService) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// Update overwrites name and email only. The password digest and ID are
// untouched. Uniqueness is not re-checked here; an update that collides
// with another user's email is rejected by the store's unique index.
func (srv *userService) Update(ctx context.Context, id uint64, input *usecase.UpdateUserInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("cannot update absent user")
		}

		return nil, errors.Wrap(err, "failed to load user for update")
	}

	user.Name = input.Name
	user.Email = input.Email

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.log(ctx).Debug("User updated", slog.Uint64("userID", user.ID))

	return user, nil
}

// ChangePassword verifies the current password before writing anything.
// A verification failure leaves the stored digest unchanged.
func (srv *userService) ChangePassword(ctx context.Context, id uint64, input *usecase.ChangePasswordInput) error {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("cannot change password of absent user")
		}

		return errors.Wrap(err, "failed to load user for password change")
	}

	if !srv.hasher.Check(input.OldPassword, user.PasswordHash) {
		srv.log(ctx).Warn("Password change rejected, current password mismatch", slog.Uint64("userID", id))

		return domainerrors.ErrInvalidCurrentPassword.WrapMessage("current password verification failed")
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		srv.log(ctx).Error("Failed to hash new password", slog.Uint64("userID", id), slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash new password")
	}

	user.PasswordHash = hashedPassword

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to persist new password")
	}

	srv.log(ctx).Debug("Password changed", slog.Uint64("userID", id))

	return nil
}

// DeleteByID removes the user. By default deleting an absent ID is a silent
// no-op, matching the store contract; with signalMissingDelete configured
// the absence surfaces as a not-found error instead.
func (srv *userService) DeleteByID(ctx context.Context, id uint64) error {
	deleted, err := srv.userRepo.DeleteByID(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	if !deleted && srv.signalMissingDelete {
		return domainerrors.ErrUserNotFound.WrapMessage("nothing to delete")
	}

	srv.log(ctx).Debug("User delete processed", slog.Uint64("userID", id), slog.Bool("deleted", deleted))

	return nil
}
