package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redcar-backend/models"
	"redcar-backend/store"
)

func newTestService(t *testing.T) (*ReminderService, *store.DataStore) {
	t.Helper()
	t.Setenv("TWILIO_ACCOUNT_SID", "")
	t.Setenv("TWILIO_AUTH_TOKEN", "")

	ds := store.Open(store.NewMemoryKV())
	t.Cleanup(ds.Close)
	return NewReminderService(ds), ds
}

func tomorrowRevision(phone string) models.Revision {
	return models.Revision{
		ClientName:         "Carlos Ferreira",
		ClientPhone:        phone,
		VehicleModel:       "Fiat Argo 2021",
		ServiceDescription: "Revisão de 30.000 km",
		ScheduledDate:      time.Now().AddDate(0, 0, 1).Format(models.ScheduledDateLayout),
		ScheduledTime:      "09:00",
		Status:             models.RevisionScheduled,
		Priority:           models.PriorityMedium,
		RemindersEnabled:   true,
	}
}

func TestSendDailyRemindersLogsWithoutCredentials(t *testing.T) {
	svc, ds := newTestService(t)

	target := ds.CreateRevision(tomorrowRevision("+5511987654321"))

	// Not due tomorrow, disabled, or already done: all ignored
	notTomorrow := tomorrowRevision("+5511911111111")
	notTomorrow.ScheduledDate = time.Now().AddDate(0, 0, 3).Format(models.ScheduledDateLayout)
	ds.CreateRevision(notTomorrow)

	disabled := tomorrowRevision("+5511922222222")
	disabled.RemindersEnabled = false
	ds.CreateRevision(disabled)

	completed := tomorrowRevision("+5511933333333")
	completed.Status = models.RevisionCompleted
	ds.CreateRevision(completed)

	svc.SendDailyReminders()

	logs := ds.ReminderLogs()
	// Seed data carries a revision two days out, so only our target matches
	require.Len(t, logs, 1)
	assert.Equal(t, target.ID, logs[0].RevisionID)
	assert.Equal(t, "skipped", logs[0].Status)
	assert.Equal(t, "+5511987654321", logs[0].Phone)
	assert.Contains(t, logs[0].Message, "Fiat Argo 2021")
	assert.Contains(t, logs[0].Message, target.ScheduledTime)

	// WhatsApp is off in the default profile, so the channel is SMS even for
	// an E.164 number
	assert.Equal(t, "sms", logs[0].Channel)
}

func TestSendDailyRemindersUsesWhatsAppWhenEnabled(t *testing.T) {
	svc, ds := newTestService(t)

	profile := ds.Profile()
	profile.WhatsAppNotifications = true
	ds.SaveProfile(profile)

	ds.CreateRevision(tomorrowRevision("+5511987654321"))
	ds.CreateRevision(tomorrowRevision("11987654321")) // not E.164

	svc.SendDailyReminders()

	logs := ds.ReminderLogs()
	require.Len(t, logs, 2)
	channels := map[string]string{logs[0].Phone: logs[0].Channel, logs[1].Phone: logs[1].Channel}
	assert.Equal(t, "whatsapp", channels["+5511987654321"])
	assert.Equal(t, "sms", channels["11987654321"])
}

func TestSendDailyRemindersHonorsProfileToggle(t *testing.T) {
	svc, ds := newTestService(t)

	profile := ds.Profile()
	profile.RevisionReminders = false
	ds.SaveProfile(profile)

	ds.CreateRevision(tomorrowRevision("+5511987654321"))

	svc.SendDailyReminders()
	assert.Empty(t, ds.ReminderLogs())
}
