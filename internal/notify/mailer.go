package notify

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/ShineWorksMX/detailing-scheduler/internal/config"
)

// Mailer avisa al negocio por correo cada reserva nueva, con el enlace
// para agregarla a Google Calendar.
type Mailer struct {
	client *mail.Client
	from   string
	to     string
}

func NewMailer(cfg *config.Config) (*Mailer, error) {
	client, err := mail.NewClient(
		cfg.SMTPHost,
		mail.WithPort(cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.SMTPUser),
		mail.WithPassword(cfg.SMTPPass),
	)
	if err != nil {
		return nil, err
	}

	return &Mailer{
		client: client,
		from:   cfg.MailFrom,
		to:     cfg.AdminEmail,
	}, nil
}

func (m *Mailer) Notify(ctx context.Context, n BookingNotice) error {
	calendarLink, err := GoogleCalendarLink(n)
	if err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return err
	}
	if err := msg.To(m.to); err != nil {
		return err
	}

	msg.Subject(fmt.Sprintf("Nueva Reserva: %s - %s", n.ServiceType, n.Name))
	msg.SetBodyString(mail.TypeTextHTML, bookingEmailHTML(n, calendarLink))

	return m.client.DialAndSendWithContext(ctx, msg)
}

func bookingEmailHTML(n BookingNotice, calendarLink string) string {
	return fmt.Sprintf(`
        <h1>¡Tienes un nuevo cliente!</h1>
        <p><strong>Cliente:</strong> %s</p>
        <p><strong>Teléfono:</strong> %s</p>
        <p><strong>Servicio:</strong> %s</p>
        <p><strong>Fecha:</strong> %s</p>
        <p><strong>Hora:</strong> %s</p>
        <p><strong>Referencia:</strong> %s</p>
        <hr />
        <p><strong>Dirección:</strong> %s</p>
        <br />
        <a href="%s" style="background-color: #ea580c; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; font-weight: bold;">
          Agregar a mi Google Calendar
        </a>
    `,
		n.Name,
		n.Phone,
		n.ServiceType,
		n.Date.Format("02/01/2006"),
		n.Slot,
		n.Reference,
		n.Address,
		calendarLink,
	)
}

var _ Notifier = (*Mailer)(nil)
