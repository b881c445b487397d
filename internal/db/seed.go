package db

import (
	"fmt"

	"github.com/FallenDelta563/EMOR-OS-V1/internal/models"
)

// defaultBotConfigs are the stock auto-reply templates created on first
// boot. Subjects and bodies are editable from the email-bot dashboard.
var defaultBotConfigs = []struct {
	key     string
	label   string
	subject string
	body    string
	channel string
}{
	{
		key:     models.TemplateKeyNewsletter,
		label:   "Newsletter signup",
		subject: "Welcome aboard, {{name}}!",
		body: `<p>Hi {{name}},</p>
<p>Thanks for subscribing to the EMOR OS newsletter. You'll hear from us when we have something worth your time.</p>
<p><a href="{{unsubscribe_url}}">Unsubscribe</a></p>`,
		channel: models.ChannelNewsletter,
	},
	{
		key:     models.TemplateKeyConsultation,
		label:   "Consultation request",
		subject: "Re: Your consultation request",
		body: `<p>Hi {{name}},</p>
<p>Thanks for requesting a consultation. We received your message:</p>
<blockquote>{{message}}</blockquote>
<p>We'll reach out within one business day to schedule a time.</p>
<p><a href="{{unsubscribe_url}}">Unsubscribe</a></p>`,
		channel: models.ChannelTransactional,
	},
	{
		key:     models.TemplateKeyPartnership,
		label:   "Partnership inquiry",
		subject: "Re: Partnership with EMOR OS",
		body: `<p>Hi {{name}},</p>
<p>Thanks for your interest in partnering with EMOR OS. We review every partnership inquiry personally and will get back to you shortly.</p>
<p><a href="{{unsubscribe_url}}">Unsubscribe</a></p>`,
		channel: models.ChannelTransactional,
	},
}

// SeedBotConfigs inserts the stock auto-reply templates for any key that
// does not already exist. Existing rows, including admin edits, are left
// untouched.
func (d *Database) SeedBotConfigs() error {
	repo := NewBotConfigRepository(d.db)

	for _, seed := range defaultBotConfigs {
		existing, err := repo.GetByKey(seed.key)
		if err != nil {
			return fmt.Errorf("failed to check bot config %s: %w", seed.key, err)
		}
		if existing != nil {
			continue
		}

		config := models.NewBotConfig(seed.key, seed.label, seed.subject, seed.body, seed.channel)
		if err := repo.Create(config); err != nil {
			return fmt.Errorf("failed to seed bot config %s: %w", seed.key, err)
		}
	}

	return nil
}
