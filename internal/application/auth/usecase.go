package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/dto"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/notification"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/ports"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain/entity"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain/repository"
	"github.com/kossayboubaker/TruckNavi-nouveau/pkg/jwt"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, registro de super admin,
// invitación de choferes y ciclo de reset de contraseña.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	companyRepo repository.CompanyRepository
	notifUC     *notification.UseCase
	mailer      ports.Mailer
	jwtCfg      JWTConfig
	baseURL     string
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	notifUC *notification.UseCase,
	mailer ports.Mailer,
	jwtCfg JWTConfig,
	baseURL string,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		notifUC:     notifUC,
		mailer:      mailer,
		jwtCfg:      jwtCfg,
		baseURL:     baseURL,
	}
}

// Login verifica email/password y retorna rol, id y token de sesión.
// Un rol fuera del enum cerrado no inicia sesión (ErrUnknownRole): el panel
// no tendría rutas que ofrecerle.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.EmailUser)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.StatusActive {
		return nil, domain.ErrForbidden
	}
	if !entity.KnownRole(user.Role) {
		return nil, domain.ErrUnknownRole
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Role: user.Role, ID: user.ID, Token: token}, nil
}

// RegisterSuperAdmin registro en dos pasos del panel: crea la empresa y su
// super admin en una sola operación. Devuelve ErrEmailAlreadyExists si el
// email ya está en uso.
func (uc *AuthUseCase) RegisterSuperAdmin(in dto.RegisterSuperAdminRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.FindByEmail(in.EmailUser)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.CompanyName,
		Email:     in.CompanyEmail,
		VATCode:   in.VATCode,
		Address:   in.CompanyAddr,
		Phone:     in.CompanyPhone,
		LegalRep:  in.LegalRep,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.companyRepo.Create(company); err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    company.ID,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.EmailUser,
		PasswordHash: string(hash),
		Phone:        in.Phone,
		Country:      in.Country,
		Role:         entity.RoleSuperAdmin,
		Status:       entity.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ForgotPassword genera un token de reset de una hora y envía el enlace por
// correo. Si el email no existe no se revela: la operación "tiene éxito".
func (uc *AuthUseCase) ForgotPassword(email string) error {
	user, err := uc.userRepo.FindByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	token := uuid.New().String()
	expires := time.Now().Add(time.Hour)
	if err := uc.userRepo.SetResetToken(user.ID, token, expires); err != nil {
		return err
	}
	link := uc.baseURL + "/auth/reset-password?token=" + token
	return uc.mailer.SendPasswordReset(user.Email, link)
}

// ResetPassword consume el token de reset y cambia la contraseña.
func (uc *AuthUseCase) ResetPassword(in dto.ResetPasswordRequest) error {
	user, err := uc.userRepo.FindByResetToken(in.Token)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if user.ResetExpires == nil || time.Now().After(*user.ResetExpires) {
		return domain.ErrTokenExpired
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePassword(user.ID, string(hash))
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		CompanyID: u.CompanyID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		Image:     u.Image,
		CreatedAt: u.CreatedAt,
	}
}
