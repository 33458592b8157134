package services

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hiredeck/hiredeck/internal/auth"
	"github.com/hiredeck/hiredeck/internal/models"
	mongorepo "github.com/hiredeck/hiredeck/internal/repositories/mongo"
	"github.com/hiredeck/hiredeck/internal/utils"
)

type SignupEmployerInput struct {
	Name     string
	Email    string
	PhoneNo  string
	Address  string
	Status   string
	Password string
}

// UpdateEmployerInput follows the wire contract: an empty string means the
// field was not provided.
type UpdateEmployerInput struct {
	Name     string
	Email    string
	PhoneNo  string
	Website  string
	Password string
}

type EmployerService interface {
	Signup(ctx context.Context, in SignupEmployerInput) (*models.Employer, error)
	Login(ctx context.Context, email, password string) (token string, err error)
	GetByID(ctx context.Context, id string) (*models.Employer, error)
	UpdateDetails(ctx context.Context, id string, in UpdateEmployerInput) (*models.Employer, error)
	UpdatePassword(ctx context.Context, id, password string) error
	Delete(ctx context.Context, id string) error
}

type employerService struct {
	employers mongorepo.EmployerRepository
	tokens    *auth.TokenIssuer
}

func NewEmployerService(employers mongorepo.EmployerRepository, tokens *auth.TokenIssuer) EmployerService {
	return &employerService{employers: employers, tokens: tokens}
}

func (s *employerService) Signup(ctx context.Context, in SignupEmployerInput) (*models.Employer, error) {
	const op = "EmployerService.Signup"

	if in.Name == "" || in.Email == "" || in.PhoneNo == "" || in.Address == "" || in.Status == "" || in.Password == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "All fields are required!!", nil)
	}
	if !utils.NotBlank(in.Name) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Name should not be empty!!", nil)
	}
	if !utils.IsEmail(in.Email) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "E-Mail should not be empty!!", nil)
	}
	if !utils.IsPhone(in.PhoneNo) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Phone no must be 10 digits long!!", nil)
	}
	if !utils.NotBlank(in.Address) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Address should not be empty!", nil)
	}
	if !utils.IsAccountStatus(in.Status) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Status should be either company or individual", nil)
	}
	if !utils.IsPassword(in.Password) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Password should be 8 to 16 digits long!", nil)
	}

	exists, err := s.employers.ExistsByEmailOrPhone(ctx, strings.TrimSpace(in.Email), strings.TrimSpace(in.PhoneNo))
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to check existing account", err)
	}
	if exists {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Already have an account! Please go for signin!!", nil)
	}

	hash, err := utils.HashPassword(strings.TrimSpace(in.Password))
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to hash password", err)
	}

	e := &models.Employer{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		PhoneNo:  strings.TrimSpace(in.PhoneNo),
		Address:  strings.TrimSpace(in.Address),
		Status:   models.AccountStatus(in.Status),
		Password: hash,
	}
	if err := s.employers.Create(ctx, e); err != nil {
		// The unique index can still lose to a concurrent signup.
		if errors.Is(err, utils.ErrDuplicate) {
			return nil, utils.E(utils.CodeInvalidArgument, op, "Already have an account! Please go for signin!!", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "Something went wrong while creating employer's account!", err)
	}

	e.Password = ""
	return e, nil
}

func (s *employerService) Login(ctx context.Context, email, password string) (string, error) {
	const op = "EmployerService.Login"

	if email == "" || password == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "All fields are required!!", nil)
	}
	if !utils.NotBlank(email) {
		return "", utils.E(utils.CodeInvalidArgument, op, "Email is required!!", nil)
	}
	if !utils.IsPassword(password) {
		return "", utils.E(utils.CodeInvalidArgument, op, "Password must be 8 to 16 digits long!", nil)
	}

	e, err := s.employers.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return "", utils.E(utils.CodeInvalidArgument, op, "Account not exists! Please create an account!", err)
		}
		return "", utils.E(utils.CodeInternal, op, "failed to look up account", err)
	}

	if err := utils.CheckPassword(e.Password, password); err != nil {
		return "", utils.E(utils.CodeInvalidArgument, op, "Invalid password!", nil)
	}

	token, err := s.tokens.Issue(e.ID.Hex())
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to issue token", err)
	}
	return token, nil
}

func (s *employerService) GetByID(ctx context.Context, id string) (*models.Employer, error) {
	const op = "EmployerService.GetByID"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Invalid Token!", err)
	}

	e, err := s.employers.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeInvalidArgument, op, "Invalid Token!", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load account", err)
	}
	return e, nil
}

func (s *employerService) UpdateDetails(ctx context.Context, id string, in UpdateEmployerInput) (*models.Employer, error) {
	const op = "EmployerService.UpdateDetails"

	if in.Name == "" && in.Email == "" && in.PhoneNo == "" && in.Website == "" && in.Password == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "You have to provide at least 1 field!", nil)
	}
	if in.Name != "" && !utils.NotBlank(in.Name) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Name should not be empty!!", nil)
	}
	if in.Email != "" && !utils.IsEmail(in.Email) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Invalid E-Mail!", nil)
	}
	if in.PhoneNo != "" && !utils.IsPhone(in.PhoneNo) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Invalid Phone Number!", nil)
	}
	if in.Website != "" && !utils.IsURL(in.Website) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Invalid Website URL", nil)
	}
	if in.Password != "" && !utils.IsPassword(in.Password) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Invalid password length!", nil)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.E(utils.CodeNotFound, op, "Employer not found!", err)
	}

	set := bson.M{}
	if in.Name != "" {
		set["name"] = strings.TrimSpace(in.Name)
	}
	if in.Email != "" {
		set["email"] = strings.TrimSpace(in.Email)
	}
	if in.PhoneNo != "" {
		set["phone_no"] = strings.TrimSpace(in.PhoneNo)
	}
	if in.Website != "" {
		set["website"] = strings.TrimSpace(in.Website)
	}
	if in.Password != "" {
		hash, err := utils.HashPassword(strings.TrimSpace(in.Password))
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to hash password", err)
		}
		set["password"] = hash
	}

	if err := s.employers.UpdateFields(ctx, oid, set); err != nil {
		switch {
		case errors.Is(err, utils.ErrNotFound):
			return nil, utils.E(utils.CodeNotFound, op, "Employer not found!", err)
		case errors.Is(err, utils.ErrDuplicate):
			return nil, utils.E(utils.CodeConflict, op, "E-Mail or phone number already in use!", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to update details", err)
	}

	e, err := s.employers.GetByID(ctx, oid)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to reload account", err)
	}
	return e, nil
}

func (s *employerService) UpdatePassword(ctx context.Context, id, password string) error {
	const op = "EmployerService.UpdatePassword"

	if password == "" {
		return utils.E(utils.CodeInvalidArgument, op, "Password required!", nil)
	}
	if !utils.NotBlank(password) {
		return utils.E(utils.CodeInvalidArgument, op, "Password should not be empty!", nil)
	}
	if !utils.IsPassword(password) {
		return utils.E(utils.CodeInvalidArgument, op, "Password should be 8 to 16 digits long!", nil)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.E(utils.CodeNotFound, op, "Employer not found!", err)
	}

	hash, err := utils.HashPassword(strings.TrimSpace(password))
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to hash password", err)
	}

	if err := s.employers.UpdateFields(ctx, oid, bson.M{"password": hash}); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Employer not found!", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to update password", err)
	}
	return nil
}

func (s *employerService) Delete(ctx context.Context, id string) error {
	const op = "EmployerService.Delete"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.E(utils.CodeInvalidArgument, op, "Account not found or already deleted!!", err)
	}

	if err := s.employers.Delete(ctx, oid); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeInvalidArgument, op, "Account not found or already deleted!!", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete account", err)
	}
	return nil
}
