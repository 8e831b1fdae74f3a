package http

import (
	"errors"
	"regexp"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/auth"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/dto"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain"
)

var (
	emailRe   = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	digitsRe  = regexp.MustCompile(`^[0-9]+$`)
	lettersRe = regexp.MustCompile(`^[\p{L}\s]+$`)
)

// AuthHandler maneja login, registro, reset de contraseña y OAuth.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	google *auth.GoogleOAuth
	appEnv string
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, google *auth.GoogleOAuth, appEnv string) *AuthHandler {
	return &AuthHandler{uc: uc, google: google, appEnv: appEnv}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email_user, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /user/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.EmailUser == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email_user y password son requeridos"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrUnauthorized):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "cuenta pendiente o bloqueada"})
		case errors.Is(err, domain.ErrUnknownRole):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "UNKNOWN_ROLE", Message: "rol desconocido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.setSessionCookie(c, out.Token)
	return c.JSON(out)
}

// RegisterSuperAdmin godoc
// @Summary      Registrar super admin y su empresa
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterSuperAdminRequest  true  "datos del usuario y de la empresa"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /user/register-super-admin [post]
func (h *AuthHandler) RegisterSuperAdmin(c *fiber.Ctx) error {
	var in dto.RegisterSuperAdminRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if msg := validateRegister(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	}
	user, err := h.uc.RegisterSuperAdmin(in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// ForgotPassword envía el enlace de reset. Responde 200 exista o no la
// cuenta, para no revelar emails registrados.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var in dto.ForgotPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if !emailRe.MatchString(in.EmailUser) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email inválido"})
	}
	if err := h.uc.ForgotPassword(in.EmailUser); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "si la cuenta existe, recibirás un correo"})
}

// ResetPassword consume el token de reset y fija la nueva contraseña. El
// token llega en la URL (el enlace del correo); el cuerpo puede repetirlo.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Token == "" {
		in.Token = c.Params("token")
	}
	if in.Token == "" || len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "token y password (mínimo 8 caracteres) son requeridos"})
	}
	if err := h.uc.ResetPassword(in); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "token desconocido"})
		case errors.Is(err, domain.ErrTokenExpired):
			return c.Status(fiber.StatusGone).JSON(dto.ErrorResponse{Code: "TOKEN_EXPIRED", Message: "el enlace expiró, solicita uno nuevo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "contraseña actualizada"})
}

// InviteDriver un manager invita a un chofer (cuenta pendiente + correo).
func (h *AuthHandler) InviteDriver(c *fiber.Ctx) error {
	var in auth.InviteDriverRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if !emailRe.MatchString(in.EmailUser) || in.FirstName == "" || in.LastName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nombre, apellido y email válidos son requeridos"})
	}
	user, err := h.uc.InviteDriver(GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// ValidateDriver consume el token de invitación (accept|refuse). Es un GET
// porque los enlaces llegan por correo y por notificación.
func (h *AuthHandler) ValidateDriver(c *fiber.Ctx) error {
	err := h.uc.ValidateDriver(c.Params("token"), c.Params("action"))
	return validationResult(c, err)
}

// GoogleRedirect entrada OAuth: redirige al consentimiento de Google.
func (h *AuthHandler) GoogleRedirect(c *fiber.Ctx) error {
	state := uuid.New().String()
	c.Cookie(&fiber.Cookie{
		Name:     "oauth_state",
		Value:    state,
		HTTPOnly: true,
		MaxAge:   300,
	})
	return c.Redirect(h.google.AuthURL(state), fiber.StatusTemporaryRedirect)
}

// GoogleCallback cierra el flujo OAuth y abre sesión si la cuenta existe.
func (h *AuthHandler) GoogleCallback(c *fiber.Ctx) error {
	if c.Query("state") == "" || c.Query("state") != c.Cookies("oauth_state") {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STATE", Message: "state de OAuth inválido"})
	}
	out, err := h.google.HandleCallback(c.Context(), c.Query("code"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrForbidden) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "no hay una cuenta activa con ese email"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "OAUTH_FAILED", Message: err.Error()})
	}
	h.setSessionCookie(c, out.Token)
	return c.JSON(out)
}

// Logout borra la cookie de sesión. Idempotente.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		HTTPOnly: true,
		Expires:  time.Now().Add(-time.Hour),
	})
	return c.JSON(fiber.Map{"message": "sesión cerrada"})
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    token,
		HTTPOnly: true,
		Secure:   h.appEnv == "production",
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func validateRegister(in dto.RegisterSuperAdminRequest) string {
	switch {
	case in.FirstName == "" || !lettersRe.MatchString(in.FirstName):
		return "FirstName es requerido y solo admite letras"
	case in.LastName == "" || !lettersRe.MatchString(in.LastName):
		return "LastName es requerido y solo admite letras"
	case !emailRe.MatchString(in.EmailUser):
		return "email_user inválido"
	case len(in.Password) < 8:
		return "password debe tener al menos 8 caracteres"
	case in.Phone != "" && !digitsRe.MatchString(in.Phone):
		return "num_user solo admite dígitos"
	case in.CompanyName == "":
		return "company_name es requerido"
	case in.CompanyEmail != "" && !emailRe.MatchString(in.CompanyEmail):
		return "campany_email inválido"
	case in.VATCode != "" && !digitsRe.MatchString(in.VATCode):
		return "code_tva solo admite dígitos"
	}
	return ""
}

// validationResult mapea los errores de los flujos accept/refuse a HTTP.
func validationResult(c *fiber.Ctx, err error) error {
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"message": "ok"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ACTION", Message: "acción desconocida"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "token o recurso desconocido"})
	case errors.Is(err, domain.ErrAlreadyResolved):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_RESOLVED", Message: "la solicitud ya fue resuelta"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
