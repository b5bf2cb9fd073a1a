package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "Chihuahua, CHIH", cfg.BusinessCity)
	assert.Equal(t, []string{
		"09:00 AM", "11:00 AM", "01:00 PM", "03:00 PM", "05:00 PM",
	}, cfg.SlotCatalog)
}

func TestLoadSlotCatalogFromEnv(t *testing.T) {
	t.Setenv("SLOT_CATALOG", " 08:00 AM ,10:00 AM,, 12:00 PM ")

	cfg := Load()

	assert.Equal(t, []string{"08:00 AM", "10:00 AM", "12:00 PM"}, cfg.SlotCatalog)
}

func TestLoadSMTPPort(t *testing.T) {
	t.Setenv("SMTP_PORT", "2525")
	assert.Equal(t, 2525, Load().SMTPPort)

	t.Setenv("SMTP_PORT", "not-a-port")
	assert.Equal(t, 587, Load().SMTPPort)
}
