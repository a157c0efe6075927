package authhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"approval-flow-backend/db"
	usersstore "approval-flow-backend/lib/users/store"
	authutils "approval-flow-backend/lib/utils/auth-utils"
	"approval-flow-backend/models"
	authapimodels "approval-flow-backend/models/api/auth"
	dbmodels "approval-flow-backend/models/db"
)

type Provider interface {
	SignUp(data authapimodels.SignUpData) (id string, err error)
	Login(data authapimodels.LoginData) (response authapimodels.JWTResponse, err error)
	Refresh(refreshToken string) (response authapimodels.JWTResponse, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	store usersstore.Provider
}

func (i impl) SignUp(data authapimodels.SignUpData) (id string, err error) {
	logger := log.WithField("email", data.Email).WithField("role", data.Role)
	exist, err := i.store.ExistByEmail(data.Email)
	if err != nil {
		logger.WithError(err).Error("email check error")
		return "", err
	}
	if exist {
		return "", errors.Wrap(models.ErrInvalidInput, "email already registered")
	}
	rec := dbmodels.User{
		Name:  data.Name,
		Email: data.Email,
		Role:  data.Role,
	}
	if data.Role == models.UserRoleEmployee {
		manager, err := i.store.GetByID(data.ManagerID)
		if err != nil {
			logger.WithError(err).Error("manager lookup error")
			return "", err
		}
		if manager == nil || manager.Role != models.UserRoleManager {
			return "", errors.Wrap(models.ErrInvalidInput, "invalid manager_id")
		}
		rec.ManagerID = &manager.ID
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.WithError(err).Error("password hash error")
		return "", err
	}
	rec.Password = string(hash)
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("user create error")
		return "", err
	}
	logger.WithField("user_id", id).Info("user registered")
	return id, nil
}

func (i impl) Login(data authapimodels.LoginData) (authapimodels.JWTResponse, error) {
	logger := log.WithField("email", data.Email)
	user, err := i.store.FindByEmail(data.Email)
	if err != nil {
		logger.WithError(err).Error("user lookup error")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		logger.Debug("user not found")
		return authapimodels.JWTResponse{}, errors.Wrap(models.ErrInvalidInput, "invalid email or password")
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(data.Password)); err != nil {
		logger.Debug("password check failed")
		return authapimodels.JWTResponse{}, errors.Wrap(models.ErrInvalidInput, "invalid email or password")
	}
	accessToken, err := authutils.GetToken(user.ID, user.Name, user.Role, managerID(*user))
	if err != nil {
		logger.WithError(err).Error("token generation error")
		return authapimodels.JWTResponse{}, err
	}
	refreshToken, err := authutils.GetRefreshToken(user.ID)
	if err != nil {
		logger.WithError(err).Error("refresh token generation error")
		return authapimodels.JWTResponse{}, err
	}
	logger.WithField("user_id", user.ID).Info("user logged in")
	return authapimodels.JWTResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (i impl) Refresh(refreshToken string) (authapimodels.JWTResponse, error) {
	userID, err := authutils.ParseRefreshToken(refreshToken)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	logger := log.WithField("user_id", userID)
	user, err := i.store.GetByID(userID)
	if err != nil {
		logger.WithError(err).Error("user lookup error")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		return authapimodels.JWTResponse{}, errors.Wrap(models.ErrNotFound, "user not found")
	}
	accessToken, err := authutils.GetToken(user.ID, user.Name, user.Role, managerID(*user))
	if err != nil {
		logger.WithError(err).Error("token generation error")
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{
		AccessToken: accessToken,
	}, nil
}

func managerID(user dbmodels.User) string {
	if user.ManagerID != nil {
		return *user.ManagerID
	}
	return ""
}
