package mail

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/kossayboubaker/TruckNavi-nouveau/internal/application/ports"
	"github.com/kossayboubaker/TruckNavi-nouveau/pkg/config"
)

var _ ports.Mailer = (*SMTPMailer)(nil)

// SMTPMailer adaptador de correo sobre gomail. Los correos son
// transaccionales y cortos: reset de contraseña e invitación de choferes.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer construye el mailer con la configuración SMTP de la app.
func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

// SendPasswordReset envía el enlace de reset de contraseña.
func (m *SMTPMailer) SendPasswordReset(to, resetLink string) error {
	body := fmt.Sprintf(`<p>Recibimos una solicitud para restablecer tu contraseña.</p>
<p><a href="%s">Restablecer contraseña</a></p>
<p>El enlace expira en una hora. Si no fuiste tú, ignora este correo.</p>`, resetLink)
	return m.send(to, "Restablecer contraseña", body)
}

// SendDriverInvitation envía al chofer los enlaces aceptar/rechazar de su cuenta.
func (m *SMTPMailer) SendDriverInvitation(to, acceptLink, refuseLink string) error {
	body := fmt.Sprintf(`<p>Fuiste invitado como chofer en TruckNavi.</p>
<p><a href="%s">Aceptar la invitación</a> &nbsp;|&nbsp; <a href="%s">Rechazar</a></p>`,
		acceptLink, refuseLink)
	return m.send(to, "Invitación de chofer", body)
}

func (m *SMTPMailer) send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("enviar correo: %w", err)
	}
	return nil
}
