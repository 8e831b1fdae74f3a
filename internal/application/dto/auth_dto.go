package dto

import "time"

// LoginRequest credenciales de acceso. El campo email_user viene así del
// panel web; se mantiene para no romper el contrato con el front.
type LoginRequest struct {
	EmailUser string `json:"email_user"`
	Password  string `json:"password"`
}

// LoginResponse respuesta de login: rol e id del usuario (el front decide el
// dashboard según el rol). El token también viaja en una cookie "token".
type LoginResponse struct {
	Role  string `json:"role"`
	ID    string `json:"_id"`
	Token string `json:"token"`
}

// RegisterSuperAdminRequest registro en dos pasos del panel: datos del super
// admin y de su empresa. Las claves JSON replican el formulario del panel web
// (incluidas las grafías campany_*).
type RegisterSuperAdminRequest struct {
	FirstName    string `json:"FirstName"`
	LastName     string `json:"LastName"`
	EmailUser    string `json:"email_user"`
	Password     string `json:"password"`
	Phone        string `json:"num_user"`
	Country      string `json:"country"`
	Role         string `json:"role"`
	CompanyName  string `json:"company_name"`
	CompanyEmail string `json:"campany_email"`
	VATCode      string `json:"code_tva"`
	CompanyAddr  string `json:"Campany_adress"`
	CompanyPhone string `json:"num_campany"`
	LegalRep     string `json:"representant_legal"`
}

// ForgotPasswordRequest solicitud de enlace de reset.
type ForgotPasswordRequest struct {
	EmailUser string `json:"email_user"`
}

// ResetPasswordRequest consumo del token de reset.
type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// UserResponse representación pública de un usuario.
type UserResponse struct {
	ID        string    `json:"_id"`
	CompanyID string    `json:"company_id,omitempty"`
	FirstName string    `json:"FirstName"`
	LastName  string    `json:"LastName"`
	Email     string    `json:"email_user"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
