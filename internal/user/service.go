package user

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/careerpilot-lambda/internal/auth"
	"github.com/saulo-duarte/careerpilot-lambda/internal/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var (
	ErrNotFound            = errors.New("user not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour

	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// InsightsEnsurer keeps industry insights warm when a user picks an industry.
type InsightsEnsurer interface {
	EnsureForIndustry(ctx context.Context, industry string) error
}

type Service interface {
	GoogleLogin(ctx context.Context, code string) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*LoginResult, error)
	GetProfile(ctx context.Context) (*User, error)
	UpdateProfile(ctx context.Context, dto UpdateProfileDTO) (*User, error)
}

type service struct {
	repo     Repository
	insights InsightsEnsurer
	oauth    *oauth2.Config
}

func NewService(repo Repository, insights InsightsEnsurer) Service {
	return &service{
		repo:     repo,
		insights: insights,
		oauth: &oauth2.Config{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

type googleUserInfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func (s *service) GoogleLogin(ctx context.Context, code string) (*LoginResult, error) {
	log := config.WithContext(ctx)

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		log.WithError(err).Warn("Failed to exchange Google authorization code")
		return nil, ErrUnauthorized
	}

	info, err := s.fetchUserInfo(ctx, token)
	if err != nil {
		log.WithError(err).Error("Failed to fetch Google user info")
		return nil, err
	}

	u, err := s.findOrCreate(ctx, info)
	if err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, u)
}

func (s *service) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	resp, err := s.oauth.Client(ctx, token).Get(googleUserInfoURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, errors.New("userinfo request failed")
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (s *service) findOrCreate(ctx context.Context, info *googleUserInfo) (*User, error) {
	log := config.WithContext(ctx)

	u, err := s.repo.FindByGoogleID(info.ID)
	if err != nil {
		return nil, err
	}
	if u != nil {
		return u, nil
	}

	// An account created before the Google link may exist under the same email.
	u, err = s.repo.FindByEmail(info.Email)
	if err != nil {
		return nil, err
	}
	if u != nil {
		u.GoogleID = info.ID
		if err := s.repo.Update(u); err != nil {
			return nil, err
		}
		return u, nil
	}

	u = &User{
		ID:       uuid.New(),
		GoogleID: info.ID,
		Email:    info.Email,
		Name:     info.Name,
		ImageURL: info.Picture,
	}
	if err := s.repo.Create(u); err != nil {
		log.WithError(err).Error("Failed to create user")
		return nil, err
	}

	log.WithField("user_id", u.ID).Info("User created successfully")
	return u, nil
}

func (s *service) issueTokens(ctx context.Context, u *User) (*LoginResult, error) {
	log := config.WithContext(ctx)

	accessToken, err := auth.GenerateJWT(u.ID.String(), "user", accessTokenTTL)
	if err != nil {
		return nil, err
	}
	refreshToken, err := auth.GenerateJWT(u.ID.String(), "user", refreshTokenTTL)
	if err != nil {
		return nil, err
	}

	encrypted, err := config.Encrypt(refreshToken)
	if err != nil {
		log.WithError(err).Error("Failed to encrypt refresh token")
		return nil, err
	}
	u.RefreshToken = encrypted
	if err := s.repo.Update(u); err != nil {
		return nil, err
	}

	return &LoginResult{
		User:         u,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	log := config.WithContext(ctx)

	claims, err := auth.ValidateJWT(refreshToken)
	if err != nil {
		log.WithError(err).Warn("Invalid refresh token")
		return nil, ErrInvalidRefreshToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	u, err := s.repo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidRefreshToken
	}

	stored, err := config.Decrypt(u.RefreshToken)
	if err != nil || stored != refreshToken {
		log.Warn("Refresh token does not match the stored token")
		return nil, ErrInvalidRefreshToken
	}

	return s.issueTokens(ctx, u)
}

func (s *service) GetProfile(ctx context.Context) (*User, error) {
	log := config.WithContext(ctx)

	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrUnauthorized
	}

	u, err := s.repo.FindByID(userID)
	if err != nil {
		log.WithError(err).Error("Failed to find user")
		return nil, err
	}
	if u == nil {
		return nil, ErrNotFound
	}
	return u, nil
}

func (s *service) UpdateProfile(ctx context.Context, dto UpdateProfileDTO) (*User, error) {
	log := config.WithContext(ctx)

	u, err := s.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	industryChanged := false
	if dto.Name != nil {
		u.Name = *dto.Name
	}
	if dto.Industry != nil && *dto.Industry != u.Industry {
		u.Industry = *dto.Industry
		industryChanged = true
	}
	if dto.Experience != nil {
		u.Experience = *dto.Experience
	}
	if dto.Bio != nil {
		u.Bio = *dto.Bio
	}
	if dto.Skills != nil {
		u.Skills = *dto.Skills
	}

	if err := s.repo.Update(u); err != nil {
		log.WithError(err).Error("Failed to update user profile")
		return nil, err
	}

	if industryChanged && u.Industry != "" {
		if err := s.insights.EnsureForIndustry(ctx, u.Industry); err != nil {
			log.WithError(err).Warnf("Failed to prepare insights for industry %s", u.Industry)
		}
	}

	log.WithField("user_id", u.ID).Info("User profile updated successfully")
	return u, nil
}
