package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/dto"
)

// Error respuesta de error de la API, con el status HTTP que la acompañó.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %d %s: %s", e.Status, e.Code, e.Message)
}

// Client cliente HTTP tipado contra la API del panel. Mantiene la cookie de
// sesión en un jar y además manda el token como Bearer si tokenFn lo provee.
type Client struct {
	baseURL string
	http    *http.Client
	tokenFn func() string
}

// New construye el cliente. tokenFn puede ser nil; normalmente es
// (*session.Store).Token para que cada request lleve el token vigente.
func New(baseURL string, tokenFn func() string) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 15 * time.Second,
			Jar:     jar,
		},
		tokenFn: tokenFn,
	}
}

// Login POST /user/login. La cookie de sesión queda en el jar.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	err := c.do(ctx, http.MethodPost, "/user/login",
		dto.LoginRequest{EmailUser: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RegisterSuperAdmin POST /user/register-super-admin.
func (c *Client) RegisterSuperAdmin(ctx context.Context, in dto.RegisterSuperAdminRequest) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if err := c.do(ctx, http.MethodPost, "/user/register-super-admin", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ForgotPassword POST /user/forgot-password.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/user/forgot-password",
		dto.ForgotPasswordRequest{EmailUser: email}, nil)
}

// Logout POST /user/logout.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/user/logout", nil, nil)
}

// Notifications GET /user/notifications. Backlog completo del usuario.
func (c *Client) Notifications(ctx context.Context) ([]dto.NotificationResponse, error) {
	var out []dto.NotificationResponse
	if err := c.do(ctx, http.MethodGet, "/user/notifications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkSeen PUT /user/notifications/:id/seen.
func (c *Client) MarkSeen(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/user/notifications/"+url.PathEscape(id)+"/seen", nil, nil)
}

// DeleteNotification DELETE /user/notifications/:id.
func (c *Client) DeleteNotification(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/user/notifications/"+url.PathEscape(id), nil, nil)
}

// ValidateDriver GET /user/validate-driver/:token/:action (accept|refuse).
func (c *Client) ValidateDriver(ctx context.Context, token, action string) error {
	return c.do(ctx, http.MethodGet,
		"/user/validate-driver/"+url.PathEscape(token)+"/"+url.PathEscape(action), nil, nil)
}

// ValidateTrip GET /trip/validation/:tripId?action=accept|refuse.
func (c *Client) ValidateTrip(ctx context.Context, tripID, action string) error {
	return c.do(ctx, http.MethodGet,
		"/trip/validation/"+url.PathEscape(tripID)+"?action="+url.QueryEscape(action), nil, nil)
}

// ValidateLeave GET /conge/validate/:token/:action (accept|reject).
func (c *Client) ValidateLeave(ctx context.Context, token, action string) error {
	return c.do(ctx, http.MethodGet,
		"/conge/validate/"+url.PathEscape(token)+"/"+url.PathEscape(action), nil, nil)
}

// DashboardStats GET /dashboard/stats.
func (c *Client) DashboardStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	var out dto.DashboardStatsResponse
	if err := c.do(ctx, http.MethodGet, "/dashboard/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do arma la request, adjunta credenciales y decodifica la respuesta.
// Un status fuera de 2xx se devuelve como *Error.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokenFn != nil {
		if token := c.tokenFn(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr dto.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Code == "" {
			apiErr.Code = "UNKNOWN"
			apiErr.Message = resp.Status
		}
		return &Error{Status: resp.StatusCode, Code: apiErr.Code, Message: apiErr.Message}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
