package auth

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/dto"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain/entity"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain/repository"
	"github.com/kossayboubaker/TruckNavi-nouveau/pkg/jwt"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleOAuth entrada OAuth para administradores (/admin/auth/google).
// Solo inicia sesión: la cuenta debe existir previamente con un rol válido.
type GoogleOAuth struct {
	oauth    *oauth2.Config
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewGoogleOAuth construye el flujo OAuth con el endpoint de Google.
func NewGoogleOAuth(clientID, clientSecret, redirectURL string, userRepo repository.UserRepository, jwtCfg JWTConfig) *GoogleOAuth {
	return &GoogleOAuth{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		userRepo: userRepo,
		jwtCfg:   jwtCfg,
	}
}

// AuthURL URL de consentimiento a la que se redirige al usuario.
func (g *GoogleOAuth) AuthURL(state string) string {
	return g.oauth.AuthCodeURL(state)
}

// HandleCallback intercambia el código por un token de Google, resuelve el
// email y abre sesión si existe una cuenta activa con ese email.
func (g *GoogleOAuth) HandleCallback(ctx context.Context, code string) (*dto.LoginResponse, error) {
	tok, err := g.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("oauth exchange: %w", err)
	}

	resp, err := g.oauth.Client(ctx, tok).Get(googleUserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("oauth userinfo: %w", err)
	}
	defer resp.Body.Close()

	var info struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w", err)
	}
	if info.Email == "" {
		return nil, domain.ErrUnauthorized
	}

	user, err := g.userRepo.FindByEmail(info.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Status != entity.StatusActive || !entity.KnownRole(user.Role) {
		return nil, domain.ErrForbidden
	}

	sessionToken, err := jwt.Generate(g.jwtCfg.Secret, user.ID, user.Role, g.jwtCfg.Issuer, g.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Role: user.Role, ID: user.ID, Token: sessionToken}, nil
}
