// Package notification формирует адрес и текст WhatsApp напоминаний.
package notification

import (
	"fmt"
	"strings"
	"time"

	"github.com/goodsign/monday"
)

const (
	addressPrefix = "whatsapp:"

	// dateLayout длинная дата: "lunes, 3 de marzo"
	dateLayout = "Monday, 2 de January"
	timeLayout = "15:04"
)

// Composer собирает сообщения напоминаний
type Composer struct {
	countryCode  string
	serviceNoun  string
	businessName string
	loc          *time.Location
	locale       monday.Locale
}

// NewComposer создает Composer. countryCode добавляется к номерам без "+"
func NewComposer(countryCode, serviceNoun, businessName string, loc *time.Location) *Composer {
	return &Composer{
		countryCode:  countryCode,
		serviceNoun:  serviceNoun,
		businessName: businessName,
		loc:          loc,
		locale:       monday.LocaleEsES,
	}
}

// Phone нормализует номер: с "+" остается как есть, иначе добавляется код страны
func (c *Composer) Phone(raw string) string {
	phone := strings.TrimSpace(raw)
	if strings.HasPrefix(phone, "+") {
		return phone
	}
	return c.countryCode + phone
}

// Address адрес получателя для транспорта WhatsApp
func (c *Composer) Address(raw string) string {
	return addressPrefix + c.Phone(raw)
}

// ReminderMessage текст напоминания о приеме
func (c *Composer) ReminderMessage(clientName string, startAt time.Time, durationMinutes int) string {
	local := startAt.In(c.loc)

	var b strings.Builder
	b.WriteString("🗓️ Recordatorio de cita\n\n")
	fmt.Fprintf(&b, "Hola %s! Te recordamos tu cita de %s:\n\n", clientName, c.serviceNoun)
	fmt.Fprintf(&b, "📅 %s\n", monday.Format(local, dateLayout, c.locale))
	fmt.Fprintf(&b, "🕐 %s\n", local.Format(timeLayout))
	fmt.Fprintf(&b, "⏱️ Duración: %d minutos\n\n", durationMinutes)
	b.WriteString("¡Te esperamos!")

	return b.String()
}

// TestMessage проверочное сообщение
func (c *Composer) TestMessage() string {
	return fmt.Sprintf("🧪 Prueba de recordatorio de %s!", c.businessName)
}
