package notify

import (
	"fmt"
	"net/url"
)

// WhatsAppLink arma el enlace wa.me con el mensaje de confirmación ya
// escrito, para que el cliente abra el chat del negocio con un clic.
func WhatsAppLink(businessPhone string, n BookingNotice) string {
	text := fmt.Sprintf(
		"Hola, soy %s. Confirmo mi reserva de %s para el %s a las %s. Referencia: %s",
		n.Name,
		n.ServiceType,
		n.Date.Format("02/01/2006"),
		n.Slot,
		n.Reference,
	)

	return fmt.Sprintf(
		"https://wa.me/%s?text=%s",
		businessPhone,
		url.QueryEscape(text),
	)
}
