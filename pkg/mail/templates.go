package mail

import (
	"fmt"
	"html"
	"strings"
)

// The lead data shapes the templates render. Kept deliberately flat: the
// handlers already validated and normalised everything.

type ContactData struct {
	Name    string
	Email   string
	Company string
	Phone   string
	Message string
}

type DemoRequestData struct {
	Name              string
	Email             string
	Company           string
	Phone             string
	Industry          string
	CompanySize       string
	CurrentChallenges string
	PreferredTime     string
	SpecificInterests []string
}

type WaitlistData struct {
	FirstName      string
	LastName       string
	Email          string
	Company        string
	Role           string
	InterestedPlan string
	EstimatedUsers string
}

const headerStyle = `background: linear-gradient(135deg, #4f46e5 0%, #06b6d4 100%); padding: 30px; text-align: center;`
const buttonStyle = `background: linear-gradient(135deg, #4f46e5 0%, #06b6d4 100%); color: white; padding: 15px 30px; text-decoration: none; border-radius: 6px; font-weight: bold; display: inline-block;`

func layout(title, body string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="%s"><h1 style="color: white; margin: 0;">%s</h1></div>
  <div style="padding: 30px;">%s</div>
</div>`, headerStyle, html.EscapeString(title), body)
}

func row(label, value string) string {
	return fmt.Sprintf(`<p style="margin: 6px 0; color: #475569;"><strong>%s:</strong> %s</p>`,
		html.EscapeString(label), html.EscapeString(value))
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func ContactNotification(data ContactData) Rendered {
	rows := strings.Join([]string{
		row("Name", data.Name),
		row("Email", data.Email),
		row("Company", data.Company),
		row("Phone", orDefault(data.Phone, "Not provided")),
		row("Message", data.Message),
	}, "\n")

	return Rendered{
		Subject: fmt.Sprintf("New Contact Message from %s", data.Name),
		Html:    layout("New Contact Inquiry", rows),
		Text: fmt.Sprintf(
			"New Contact Inquiry\n\nName: %s\nEmail: %s\nCompany: %s\nPhone: %s\n\nMessage:\n%s\n",
			data.Name, data.Email, data.Company, orDefault(data.Phone, "Not provided"), data.Message,
		),
	}
}

func DemoRequestNotification(data DemoRequestData, inquiryID string) Rendered {
	interests := orDefault(strings.Join(data.SpecificInterests, ", "), "None specified")

	rows := strings.Join([]string{
		row("Inquiry ID", inquiryID),
		row("Name", data.Name),
		row("Email", data.Email),
		row("Company", data.Company),
		row("Phone", orDefault(data.Phone, "Not provided")),
		row("Industry", data.Industry),
		row("Company Size", data.CompanySize),
		row("Current Challenges", data.CurrentChallenges),
		row("Preferred Time", orDefault(data.PreferredTime, "Not specified")),
		row("Specific Interests", interests),
	}, "\n")

	return Rendered{
		Subject: fmt.Sprintf("New Demo Request from %s", data.Name),
		Html:    layout("New Demo Request", rows),
		Text: fmt.Sprintf(
			"New Demo Request (%s)\n\nName: %s\nEmail: %s\nCompany: %s\nIndustry: %s\nCompany Size: %s\nCurrent Challenges: %s\nPreferred Time: %s\nSpecific Interests: %s\n",
			inquiryID, data.Name, data.Email, data.Company, data.Industry, data.CompanySize,
			data.CurrentChallenges, orDefault(data.PreferredTime, "Not specified"), interests,
		),
	}
}

func WaitlistNotification(data WaitlistData, entryID string) Rendered {
	rows := strings.Join([]string{
		row("Entry ID", entryID),
		row("Name", data.FirstName+" "+data.LastName),
		row("Email", data.Email),
		row("Company", data.Company),
		row("Role", data.Role),
		row("Interested Plan", data.InterestedPlan),
		row("Estimated Users", orDefault(data.EstimatedUsers, "Not specified")),
	}, "\n")

	return Rendered{
		Subject: fmt.Sprintf("New Lite Plan Waitlist Signup - %s", data.Company),
		Html:    layout("New Waitlist Signup", rows),
		Text: fmt.Sprintf(
			"New Waitlist Signup (%s)\n\nName: %s %s\nEmail: %s\nCompany: %s\nRole: %s\nPlan: %s\nEstimated Users: %s\n",
			entryID, data.FirstName, data.LastName, data.Email, data.Company, data.Role,
			data.InterestedPlan, orDefault(data.EstimatedUsers, "Not specified"),
		),
	}
}

func WaitlistWelcome(firstName string) Rendered {
	body := fmt.Sprintf(`<h2 style="color: #1e293b;">Welcome, %s!</h2>
<p style="font-size: 16px; line-height: 1.6; color: #475569;">
  You're on the waitlist for the Resend-It Lite plan. We'll let you know the
  moment your spot opens up.
</p>
<p style="color: #64748b; font-size: 14px;">
  In the meantime, keep an eye on your inbox for product updates.
</p>`, html.EscapeString(firstName))

	return Rendered{
		Subject: "Welcome to Resend-It - You're on the Lite Plan Waitlist!",
		Html:    layout("You're on the Waitlist", body),
		Text: fmt.Sprintf(
			"Welcome, %s!\n\nYou're on the waitlist for the Resend-It Lite plan. We'll let you know the moment your spot opens up.\n",
			firstName,
		),
	}
}

func NewsletterWelcome(email string) Rendered {
	body := fmt.Sprintf(`<h2 style="color: #1e293b;">Thanks for subscribing!</h2>
<p style="font-size: 16px; line-height: 1.6; color: #475569;">
  %s is now subscribed to the Resend-It newsletter. Expect product news,
  sustainability insights, and the occasional deep dive.
</p>
<p style="color: #64748b; font-size: 14px;">
  You can unsubscribe at any time from the link in any newsletter.
</p>`, html.EscapeString(email))

	return Rendered{
		Subject: "Welcome to Resend-It Newsletter!",
		Html:    layout("Welcome Aboard", body),
		Text: fmt.Sprintf(
			"Thanks for subscribing!\n\n%s is now subscribed to the Resend-It newsletter. You can unsubscribe at any time.\n",
			email,
		),
	}
}

func NewsletterNotification(email, subscriberID string) Rendered {
	rows := strings.Join([]string{
		row("Email", email),
		row("Subscriber ID", subscriberID),
	}, "\n")

	return Rendered{
		Subject: "New Newsletter Subscription",
		Html:    layout("New Newsletter Subscription", rows),
		Text:    fmt.Sprintf("New Newsletter Subscription\n\nEmail: %s\nSubscriber ID: %s\n", email, subscriberID),
	}
}

func EmailConfirmation(confirmationURL string) Rendered {
	body := fmt.Sprintf(`<h2 style="color: #1e293b;">Almost there!</h2>
<p style="font-size: 16px; line-height: 1.6; color: #475569;">
  Please confirm your email address to complete your Resend-It account setup.
</p>
<div style="text-align: center; margin: 30px 0;">
  <a href="%s" style="%s">Confirm Email Address</a>
</div>
<p style="color: #64748b; font-size: 14px;">
  If you didn't create this account, you can safely ignore this email.
</p>
<p style="color: #64748b; font-size: 12px; margin-top: 30px;">
  This link will expire in 24 hours for security reasons.
</p>`, html.EscapeString(confirmationURL), buttonStyle)

	return Rendered{
		Subject: "Confirm your Resend-It account",
		Html:    layout("Confirm Your Account", body),
		Text: fmt.Sprintf(
			"Confirm Your Resend-It Account\n\nConfirmation link: %s\n\nIf you didn't create this account, you can safely ignore this email.\n\nThis link will expire in 24 hours for security reasons.\n",
			confirmationURL,
		),
	}
}

func PasswordReset(resetURL string) Rendered {
	body := fmt.Sprintf(`<h2 style="color: #1e293b;">Password Reset Request</h2>
<p style="font-size: 16px; line-height: 1.6; color: #475569;">
  We received a request to reset your password for your Resend-It account.
</p>
<div style="text-align: center; margin: 30px 0;">
  <a href="%s" style="%s">Reset Password</a>
</div>
<p style="color: #64748b; font-size: 14px;">
  If you didn't request this password reset, you can safely ignore this email.
</p>
<p style="color: #64748b; font-size: 12px; margin-top: 30px;">
  This link will expire in 1 hour for security reasons.
</p>`, html.EscapeString(resetURL), buttonStyle)

	return Rendered{
		Subject: "Reset your Resend-It password",
		Html:    layout("Reset Your Password", body),
		Text: fmt.Sprintf(
			"Reset Your Resend-It Password\n\nReset link: %s\n\nIf you didn't request this password reset, you can safely ignore this email.\n\nThis link will expire in 1 hour for security reasons.\n",
			resetURL,
		),
	}
}
