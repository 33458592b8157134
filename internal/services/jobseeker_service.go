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

type SignupJobSeekerInput struct {
	Name     string
	Email    string
	PhoneNo  string
	Address  string
	Password string
}

type UpdateJobSeekerInput struct {
	Name     string
	Email    string
	PhoneNo  string
	Password string
}

type JobSeekerService interface {
	Signup(ctx context.Context, in SignupJobSeekerInput) (*models.JobSeeker, error)
	Login(ctx context.Context, email, password string) (token string, err error)
	GetByID(ctx context.Context, id string) (*models.JobSeeker, error)
	UpdateDetails(ctx context.Context, id string, in UpdateJobSeekerInput) (*models.JobSeeker, error)
	UpdatePassword(ctx context.Context, id, password string) error
	Delete(ctx context.Context, id string) error
}

type jobSeekerService struct {
	seekers mongorepo.JobSeekerRepository
	tokens  *auth.TokenIssuer
}

func NewJobSeekerService(seekers mongorepo.JobSeekerRepository, tokens *auth.TokenIssuer) JobSeekerService {
	return &jobSeekerService{seekers: seekers, tokens: tokens}
}

func (s *jobSeekerService) Signup(ctx context.Context, in SignupJobSeekerInput) (*models.JobSeeker, error) {
	const op = "JobSeekerService.Signup"

	if in.Name == "" || in.Email == "" || in.PhoneNo == "" || in.Address == "" || in.Password == "" {
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
	if !utils.IsPassword(in.Password) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Password should be 8 to 16 digits long!", nil)
	}

	exists, err := s.seekers.ExistsByEmailOrPhone(ctx, strings.TrimSpace(in.Email), strings.TrimSpace(in.PhoneNo))
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

	js := &models.JobSeeker{
		Name:     strings.TrimSpace(in.Name),
		Email:    strings.TrimSpace(in.Email),
		PhoneNo:  strings.TrimSpace(in.PhoneNo),
		Address:  strings.TrimSpace(in.Address),
		Password: hash,
	}
	if err := s.seekers.Create(ctx, js); err != nil {
		if errors.Is(err, utils.ErrDuplicate) {
			return nil, utils.E(utils.CodeInvalidArgument, op, "Already have an account! Please go for signin!!", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "Something went wrong while creating job seeker's account!", err)
	}

	js.Password = ""
	return js, nil
}

func (s *jobSeekerService) Login(ctx context.Context, email, password string) (string, error) {
	const op = "JobSeekerService.Login"

	if email == "" || password == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "All fields are required!!", nil)
	}
	if !utils.NotBlank(email) {
		return "", utils.E(utils.CodeInvalidArgument, op, "Email is required!!", nil)
	}
	if !utils.IsPassword(password) {
		return "", utils.E(utils.CodeInvalidArgument, op, "Password must be 8 to 16 digits long!", nil)
	}

	js, err := s.seekers.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return "", utils.E(utils.CodeInvalidArgument, op, "Account not exists! Please create an account!", err)
		}
		return "", utils.E(utils.CodeInternal, op, "failed to look up account", err)
	}

	if err := utils.CheckPassword(js.Password, password); err != nil {
		return "", utils.E(utils.CodeInvalidArgument, op, "Invalid password!", nil)
	}

	token, err := s.tokens.Issue(js.ID.Hex())
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to issue token", err)
	}
	return token, nil
}

func (s *jobSeekerService) GetByID(ctx context.Context, id string) (*models.JobSeeker, error) {
	const op = "JobSeekerService.GetByID"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Invalid Token!", err)
	}

	js, err := s.seekers.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeInvalidArgument, op, "Invalid Token!", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load account", err)
	}
	return js, nil
}

func (s *jobSeekerService) UpdateDetails(ctx context.Context, id string, in UpdateJobSeekerInput) (*models.JobSeeker, error) {
	const op = "JobSeekerService.UpdateDetails"

	if in.Name == "" && in.Email == "" && in.PhoneNo == "" && in.Password == "" {
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
	if in.Password != "" && !utils.IsPassword(in.Password) {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Invalid password length!", nil)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.E(utils.CodeNotFound, op, "Job seeker not found!", err)
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
	if in.Password != "" {
		hash, err := utils.HashPassword(strings.TrimSpace(in.Password))
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to hash password", err)
		}
		set["password"] = hash
	}

	if err := s.seekers.UpdateFields(ctx, oid, set); err != nil {
		switch {
		case errors.Is(err, utils.ErrNotFound):
			return nil, utils.E(utils.CodeNotFound, op, "Job seeker not found!", err)
		case errors.Is(err, utils.ErrDuplicate):
			return nil, utils.E(utils.CodeConflict, op, "E-Mail or phone number already in use!", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to update details", err)
	}

	js, err := s.seekers.GetByID(ctx, oid)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to reload account", err)
	}
	return js, nil
}

func (s *jobSeekerService) UpdatePassword(ctx context.Context, id, password string) error {
	const op = "JobSeekerService.UpdatePassword"

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
		return utils.E(utils.CodeNotFound, op, "Job seeker not found!", err)
	}

	hash, err := utils.HashPassword(strings.TrimSpace(password))
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to hash password", err)
	}

	if err := s.seekers.UpdateFields(ctx, oid, bson.M{"password": hash}); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Job seeker not found!", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to update password", err)
	}
	return nil
}

func (s *jobSeekerService) Delete(ctx context.Context, id string) error {
	const op = "JobSeekerService.Delete"

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return utils.E(utils.CodeInvalidArgument, op, "Account not found or already deleted!!", err)
	}

	if err := s.seekers.Delete(ctx, oid); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeInvalidArgument, op, "Account not found or already deleted!!", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete account", err)
	}
	return nil
}
