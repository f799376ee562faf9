package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hostly/infras/otel"
	"hostly/internal/domains/user/model"
	"hostly/internal/domains/user/model/dto"
	"hostly/internal/domains/user/repository"
	"hostly/shared"
	"hostly/shared/constant"
	"hostly/shared/failure"
	"hostly/shared/idgen"
	gModel "hostly/shared/model"
	"hostly/shared/timezone"

	"github.com/rs/zerolog/log"
)

const createdBy = "identity-resolver"

var ErrEmailRequired = failure.BadRequestFromString("email is required")

// Identity resolves the user and customer pair behind a booking.
type Identity interface {
	ValidateUserData(data dto.CustomerData) error
	PrepareUser(ctx context.Context, hostID string, data dto.CustomerData) (model.Customer, error)
}

type serviceImpl struct {
	repo repository.Users
	otel otel.Otel
}

func New(repo repository.Users, otel otel.Otel) Identity {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) ValidateUserData(data dto.CustomerData) error {
	if data.NormalizedEmail() == constant.Empty {
		return ErrEmailRequired
	}

	return nil
}

// PrepareUser returns the same user and customer ids for repeated calls with the same host and email.
func (s *serviceImpl) PrepareUser(ctx context.Context, hostID string, data dto.CustomerData) (customer model.Customer, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PrepareUser")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ValidateUserData(data); err != nil {
		return customer, err
	}

	email := data.NormalizedEmail()

	user, isRegistered, err := s.resolveUser(ctx, hostID, email, data)
	if err != nil {
		return customer, err
	}

	customer, err = s.resolveCustomer(ctx, hostID, email, user, data)
	if err != nil {
		return customer, err
	}

	customer.IsRegistered = isRegistered

	return customer, nil
}

func (s *serviceImpl) resolveUser(ctx context.Context, hostID, email string, data dto.CustomerData) (model.User, bool, error) {
	userID, err := s.repo.GetUserID(ctx, email, model.RecordTypeUser)
	if err != nil {
		log.Error().Err(err).Msg("failed to look up user")

		return model.User{}, false, fmt.Errorf("failed to look up user: %w", err)
	}

	if userID == constant.Empty {
		user := newUser(hostID, email, data)

		err = s.repo.InsertUser(ctx, user)
		if err == nil {
			return user, false, nil
		}

		if !shared.IsUniqueViolation(err) {
			log.Error().Err(err).Msg("failed to insert user")

			return model.User{}, false, fmt.Errorf("failed to insert user: %w", err)
		}

		// created concurrently by another booking
		userID, err = s.repo.GetUserID(ctx, email, model.RecordTypeUser)
		if err != nil || userID == constant.Empty {
			log.Error().Err(err).Msg("failed to re-read concurrently created user")

			return model.User{}, false, fmt.Errorf("failed to re-read user: %w", err)
		}
	}

	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return model.User{}, false, fmt.Errorf("failed to get user: %w", err)
	}

	if patch := backfill(user, data); len(patch) > 0 {
		if err = s.repo.UpdateUser(ctx, user.ID, patch); err != nil {
			log.Error().Err(err).Msg("failed to backfill user")

			return model.User{}, false, fmt.Errorf("failed to backfill user: %w", err)
		}
	}

	return user, user.Registered, nil
}

func (s *serviceImpl) resolveCustomer(ctx context.Context, hostID, email string, user model.User, data dto.CustomerData) (model.Customer, error) {
	existing, err := s.repo.GetCustomerByEmail(ctx, hostID, email, false)
	if err != nil {
		log.Error().Err(err).Msg("failed to look up customer")

		return model.Customer{}, fmt.Errorf("failed to look up customer: %w", err)
	}

	if existing.ID != constant.Empty {
		existing.UserID = user.ID

		return existing, nil
	}

	customer := model.Customer{
		ID:       idgen.UUID(),
		HostID:   hostID,
		UserID:   user.ID,
		Email:    email,
		Name:     data.Name,
		Status:   model.StatusActive,
		Metadata: gModel.NewMetadata(timezone.NowUTC(), createdBy),
	}

	err = s.repo.InsertCustomer(ctx, customer)
	if err == nil {
		return customer, nil
	}

	if !shared.IsUniqueViolation(err) {
		log.Error().Err(err).Msg("failed to insert customer")

		return model.Customer{}, fmt.Errorf("failed to insert customer: %w", err)
	}

	winner, err := s.repo.GetCustomerByEmail(ctx, hostID, email, false)
	if err != nil {
		log.Error().Err(err).Msg("failed to re-read customer")

		return model.Customer{}, fmt.Errorf("failed to re-read customer: %w", err)
	}

	winner.UserID = user.ID

	return winner, nil
}

func newUser(hostID, email string, data dto.CustomerData) model.User {
	user := model.User{
		ID:         idgen.UUID(),
		HostID:     hostID,
		Email:      email,
		RecordType: model.RecordTypeUser,
		Name:       data.Name,
		Registered: false,
		Status:     model.StatusActive,
		Metadata:   gModel.NewMetadata(timezone.NowUTC(), createdBy),
	}

	if data.LastName != constant.Empty {
		user.LastName = &data.LastName
	}

	if data.PhoneNumber != constant.Empty {
		user.PhoneNumber = &data.PhoneNumber
	}

	return user
}

// backfill only fills fields the stored user lacks.
func backfill(user model.User, data dto.CustomerData) map[string]any {
	patch := map[string]any{}

	if isBlank(user.PhoneNumber) && data.PhoneNumber != constant.Empty {
		patch[model.FieldPhoneNumber] = data.PhoneNumber
	}

	if isBlank(user.LastName) && data.LastName != constant.Empty {
		patch[model.FieldLastName] = data.LastName
	}

	if len(patch) > 0 {
		patch[constant.FieldModifiedAt] = timezone.NowUTC()
		patch[constant.FieldModifiedBy] = createdBy
	}

	return patch
}

func isBlank(value *string) bool {
	return value == nil || *value == constant.Empty
}
