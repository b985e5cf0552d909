// services/reminder_service.go
package services

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"redcar-backend/models"
	"redcar-backend/store"
)

// ReminderService sends revision reminders to clients the day before their
// appointment. Every processed revision gets a reminder log entry, whether
// the send succeeded, failed, or was skipped.
type ReminderService struct {
	store  *store.DataStore
	client *twilio.RestClient

	// sending is disabled when Twilio credentials are absent; reminders are
	// still logged as skipped so the history stays complete.
	enabled bool
}

func NewReminderService(ds *store.DataStore) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	s := &ReminderService{
		store:   ds,
		enabled: accountSid != "" && authToken != "",
	}
	if s.enabled {
		s.client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		})
	} else {
		log.Warn("Twilio credentials not set, reminder sending disabled")
	}
	return s
}

// StartScheduler runs the daily reminder pass on a cron schedule,
// overridable via REMINDER_CRON. Default is every day at 9 AM.
func (s *ReminderService) StartScheduler() {
	spec := os.Getenv("REMINDER_CRON")
	if spec == "" {
		spec = "0 9 * * *"
	}

	c := cron.New()
	if _, err := c.AddFunc(spec, s.SendDailyReminders); err != nil {
		log.WithError(err).WithField("spec", spec).Error("invalid reminder cron spec, scheduler not started")
		return
	}

	c.Start()
	log.WithField("spec", spec).Info("Reminder scheduler started")
}

// SendDailyReminders notifies clients of tomorrow's scheduled revisions that
// have reminders enabled.
func (s *ReminderService) SendDailyReminders() {
	profile := s.store.Profile()
	if !profile.RevisionReminders {
		log.Info("Revision reminders disabled in workshop profile, skipping")
		return
	}

	tomorrow := time.Now().AddDate(0, 0, 1).Format(models.ScheduledDateLayout)
	processed := 0

	for _, revision := range s.store.Revisions() {
		if !revision.RemindersEnabled || revision.Status != models.RevisionScheduled {
			continue
		}
		if revision.ScheduledDate != tomorrow {
			continue
		}
		s.sendReminder(profile, revision)
		processed++
	}

	log.WithField("count", processed).Info("Daily reminder processing completed")
}

func (s *ReminderService) sendReminder(profile models.WorkshopProfile, revision models.Revision) {
	workshop := profile.Name
	if workshop == "" {
		workshop = "RedCar"
	}
	message := fmt.Sprintf(
		"Olá %s, lembrete da %s: revisão do seu %s amanhã (%s) às %s. %s",
		revision.ClientName, workshop, revision.VehicleModel,
		revision.ScheduledDate, revision.ScheduledTime, revision.ServiceDescription,
	)

	// WhatsApp for E.164 numbers when the workshop allows it, SMS otherwise
	channel := "sms"
	to := revision.ClientPhone
	if profile.WhatsAppNotifications && strings.HasPrefix(revision.ClientPhone, "+") {
		channel = "whatsapp"
		to = "whatsapp:" + revision.ClientPhone
	}

	status := "sent"
	errorMsg := ""

	if !s.enabled {
		status = "skipped"
		errorMsg = "twilio credentials not configured"
	} else {
		params := &twilioApi.CreateMessageParams{}
		params.SetTo(to)
		params.SetBody(message)
		if channel == "whatsapp" {
			params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
		} else {
			params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
		}

		resp, err := s.client.Api.CreateMessage(params)
		if err != nil {
			log.WithError(err).WithField("phone", revision.ClientPhone).Warn("failed to send reminder")
			status = "failed"
			errorMsg = err.Error()
		} else if resp.Sid != nil {
			log.WithFields(log.Fields{"phone": revision.ClientPhone, "sid": *resp.Sid}).Info("reminder sent")
		} else {
			log.WithField("phone", revision.ClientPhone).Info("reminder sent, no SID returned")
		}
	}

	s.store.AppendReminderLog(models.ReminderLog{
		RevisionID:   revision.ID,
		ClientName:   revision.ClientName,
		Phone:        revision.ClientPhone,
		Message:      message,
		Status:       status,
		ErrorMessage: errorMsg,
		Channel:      channel,
		SentAt:       time.Now().UTC(),
	})
}
