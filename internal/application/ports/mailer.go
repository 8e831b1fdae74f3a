package ports

// Mailer envío de correos transaccionales. Lo implementa el adaptador SMTP.
type Mailer interface {
	// SendPasswordReset envía el enlace de reset de contraseña.
	SendPasswordReset(to, resetLink string) error
	// SendDriverInvitation envía al chofer invitado los enlaces de
	// aceptación y rechazo de su cuenta.
	SendDriverInvitation(to, acceptLink, refuseLink string) error
}
