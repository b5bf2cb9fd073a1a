package notify

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// La invitación de calendario usa una duración fija; el horario ocupado
// sigue siendo la etiqueta puntual, esto es solo para el evento.
const calendarEventDuration = 2 * time.Hour

const googleCalendarFormat = "20060102T150405Z"

// ConvertTo24Hour convierte una etiqueta "03:00 PM" a "15:04". Devuelve
// error si la etiqueta no tiene esa forma.
func ConvertTo24Hour(label string) (string, error) {
	parts := strings.SplitN(strings.TrimSpace(label), " ", 2)
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid slot label %q", label)
	}

	hm := strings.SplitN(parts[0], ":", 2)
	if len(hm) != 2 {
		return "", fmt.Errorf("invalid slot label %q", label)
	}

	hour, err := strconv.Atoi(hm[0])
	if err != nil || hour < 1 || hour > 12 {
		return "", fmt.Errorf("invalid slot label %q", label)
	}

	switch strings.ToUpper(parts[1]) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return "", fmt.Errorf("invalid slot label %q", label)
	}

	return fmt.Sprintf("%02d:%s", hour, hm[1]), nil
}

// GoogleCalendarLink arma el enlace "agregar a mi calendario" que va en
// el correo de aviso al negocio.
func GoogleCalendarLink(n BookingNotice) (string, error) {
	hm, err := ConvertTo24Hour(n.Slot)
	if err != nil {
		return "", err
	}

	var hour, min int
	if _, err := fmt.Sscanf(hm, "%d:%d", &hour, &min); err != nil {
		return "", err
	}

	start := time.Date(
		n.Date.Year(), n.Date.Month(), n.Date.Day(),
		hour, min, 0, 0,
		n.Date.Location(),
	)
	end := start.Add(calendarEventDuration)

	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", fmt.Sprintf("Detallado: %s (%s)", n.ServiceType, n.Name))
	params.Set("dates", fmt.Sprintf(
		"%s/%s",
		start.UTC().Format(googleCalendarFormat),
		end.UTC().Format(googleCalendarFormat),
	))
	params.Set("details", fmt.Sprintf(
		"Cliente: %s\nDirección: %s\nServicio: %s",
		n.Name, n.Address, n.ServiceType,
	))
	params.Set("location", n.Address)

	return "https://calendar.google.com/calendar/render?" + params.Encode(), nil
}
