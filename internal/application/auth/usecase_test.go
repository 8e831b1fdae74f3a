package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/dto"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain"
	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain/entity"
)

// fakeUserRepo repositorio de usuarios en memoria, indexado por email e id.
type fakeUserRepo struct {
	byID map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{byID: map[string]*entity.User{}}
	for _, u := range users {
		cp := *u
		r.byID[u.ID] = &cp
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) ListByRole(companyID, role string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.byID {
		if u.CompanyID == companyID && u.Role == role {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

func (r *fakeUserRepo) FindByValidationToken(token string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.ValidationToken == token {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) SetResetToken(userID, token string, expires time.Time) error {
	if u, ok := r.byID[userID]; ok {
		u.ResetToken = token
		u.ResetExpires = &expires
	}
	return nil
}

func (r *fakeUserRepo) FindByResetToken(token string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.ResetToken == token {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdatePassword(userID, passwordHash string) error {
	if u, ok := r.byID[userID]; ok {
		u.PasswordHash = passwordHash
		u.ResetToken = ""
		u.ResetExpires = nil
	}
	return nil
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func testUseCase(repo *fakeUserRepo) *AuthUseCase {
	cfg := JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "trucknavi-test"}
	return NewAuthUseCase(repo, nil, nil, nil, cfg, "http://localhost:8080")
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas(t *testing.T) {
	repo := newFakeUserRepo(&entity.User{
		ID:           "u1",
		Email:        "ana@acme.tn",
		PasswordHash: hashOf(t, "secreta123"),
		Role:         entity.RoleManager,
		Status:       entity.StatusActive,
	})
	uc := testUseCase(repo)

	out, err := uc.Login(dto.LoginRequest{EmailUser: "ana@acme.tn", Password: "secreta123"})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleManager, out.Role)
	assert.Equal(t, "u1", out.ID)
	assert.NotEmpty(t, out.Token)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	repo := newFakeUserRepo(&entity.User{
		ID:           "u1",
		Email:        "ana@acme.tn",
		PasswordHash: hashOf(t, "secreta123"),
		Role:         entity.RoleManager,
		Status:       entity.StatusActive,
	})
	uc := testUseCase(repo)

	_, err := uc.Login(dto.LoginRequest{EmailUser: "ana@acme.tn", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailDesconocido(t *testing.T) {
	uc := testUseCase(newFakeUserRepo())
	_, err := uc.Login(dto.LoginRequest{EmailUser: "nadie@acme.tn", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Cuenta pendiente (chofer invitado que aún no aceptó) o bloqueada no entra.
func TestLogin_CuentaNoActiva(t *testing.T) {
	for _, status := range []string{entity.StatusPending, entity.StatusBlocked} {
		repo := newFakeUserRepo(&entity.User{
			ID:           "u1",
			Email:        "ana@acme.tn",
			PasswordHash: hashOf(t, "secreta123"),
			Role:         entity.RoleDriver,
			Status:       status,
		})
		uc := testUseCase(repo)

		_, err := uc.Login(dto.LoginRequest{EmailUser: "ana@acme.tn", Password: "secreta123"})
		assert.ErrorIs(t, err, domain.ErrForbidden, "status=%s", status)
	}
}

// Un rol fuera del enum cerrado no inicia sesión: el panel no tendría rutas
// que ofrecerle (fail-closed).
func TestLogin_RolDesconocidoFallaCerrado(t *testing.T) {
	repo := newFakeUserRepo(&entity.User{
		ID:           "u1",
		Email:        "ana@acme.tn",
		PasswordHash: hashOf(t, "secreta123"),
		Role:         "auditor",
		Status:       entity.StatusActive,
	})
	uc := testUseCase(repo)

	_, err := uc.Login(dto.LoginRequest{EmailUser: "ana@acme.tn", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrUnknownRole)
}

// ──────────────────────────────────────────────────────────────────────────────
// ResetPassword
// ──────────────────────────────────────────────────────────────────────────────

func TestResetPassword_TokenVigente(t *testing.T) {
	expires := time.Now().Add(time.Hour)
	repo := newFakeUserRepo(&entity.User{
		ID:           "u1",
		Email:        "ana@acme.tn",
		PasswordHash: hashOf(t, "vieja"),
		Role:         entity.RoleManager,
		Status:       entity.StatusActive,
		ResetToken:   "tok-reset",
		ResetExpires: &expires,
	})
	uc := testUseCase(repo)

	require.NoError(t, uc.ResetPassword(dto.ResetPasswordRequest{Token: "tok-reset", Password: "nueva-clave"}))

	u, _ := repo.GetByID("u1")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("nueva-clave")))
	assert.Empty(t, u.ResetToken, "el token se consume")
}

func TestResetPassword_TokenExpirado(t *testing.T) {
	expires := time.Now().Add(-time.Minute)
	repo := newFakeUserRepo(&entity.User{
		ID:           "u1",
		Email:        "ana@acme.tn",
		Role:         entity.RoleManager,
		Status:       entity.StatusActive,
		ResetToken:   "tok-reset",
		ResetExpires: &expires,
	})
	uc := testUseCase(repo)

	err := uc.ResetPassword(dto.ResetPasswordRequest{Token: "tok-reset", Password: "nueva-clave"})
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestResetPassword_TokenDesconocido(t *testing.T) {
	uc := testUseCase(newFakeUserRepo())
	err := uc.ResetPassword(dto.ResetPasswordRequest{Token: "no-existe", Password: "nueva-clave"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
