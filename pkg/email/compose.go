package email

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/carebook/carebook/pkg/notifications"
)

// subjects per event type. Payload values may be interpolated into the
// body but subjects stay static so providers can thread conversations.
var subjects = map[notifications.EventType]string{
	notifications.EventAppointmentConfirmed:   "Your appointment is confirmed",
	notifications.EventAppointmentCancelled:   "Your appointment was cancelled",
	notifications.EventAppointmentRescheduled: "Your appointment was rescheduled",
	notifications.EventPaymentSucceeded:       "Payment received",
	notifications.EventPaymentFailed:          "Payment failed",
	notifications.EventReviewRequest:          "How was your appointment?",
}

var bodyTemplates = template.Must(template.New("bodies").Parse(`
{{define "appointment.confirmed"}}<p>Your appointment with {{.doctor_name}} on {{.date}} at {{.start_time}} is confirmed.</p>{{end}}
{{define "appointment.cancelled"}}<p>Your appointment with {{.doctor_name}} on {{.date}} at {{.start_time}} was cancelled.{{with .reason}} Reason: {{.}}.{{end}}</p>{{end}}
{{define "appointment.rescheduled"}}<p>Your appointment with {{.doctor_name}} was moved from {{.old_date}} {{.old_start_time}} to {{.new_date}} {{.new_start_time}}.</p>{{end}}
{{define "payment.succeeded"}}<p>We received your payment of {{.amount}} for booking {{.booking_id}}.</p>{{end}}
{{define "payment.failed"}}<p>Your payment of {{.amount}} for booking {{.booking_id}} failed.{{with .reason}} Reason: {{.}}.{{end}} Please try again.</p>{{end}}
{{define "review.request"}}<p>How was your appointment with {{.doctor_name}}? Share your experience to help other patients.</p>{{end}}
`))

// Compose renders the subject and HTML body for a notification item.
// Payload values are HTML-escaped by the template engine on top of the
// sanitization they already went through at intake.
func Compose(item notifications.Item) (subject, bodyHTML string, err error) {
	subject, ok := subjects[item.Type]
	if !ok {
		return "", "", fmt.Errorf("no email template for event type %q", item.Type)
	}

	var sb strings.Builder
	if err := bodyTemplates.ExecuteTemplate(&sb, string(item.Type), item.Payload); err != nil {
		return "", "", fmt.Errorf("failed to render email body: %w", err)
	}
	return subject, sb.String(), nil
}
