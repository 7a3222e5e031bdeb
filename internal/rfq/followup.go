package rfq

import (
	"fmt"
	"strings"
)

const defaultFollowUpDays = 7

// FollowUp renders a reminder for a supplier that has not answered the
// original request. daysSinceSent values below one fall back to a week.
func (g *Generator) FollowUp(d Draft, daysSinceSent int) Draft {
	if daysSinceSent < 1 {
		daysSinceSent = defaultFollowUpDays
	}
	greeting := "Dear Sir/Madam,"
	if d.Contact != "" {
		greeting = fmt.Sprintf("Dear %s,", d.Contact)
	}

	parts := []string{
		greeting,
		"",
		"I hope this email finds you well.",
		"",
		fmt.Sprintf("We sent a request for quotation to %s %d days ago and have not yet received a response.", d.Company, daysSinceSent),
		"",
		"We understand that you may be busy, but we would greatly appreciate your quotation for our project. The information is valuable to our procurement process.",
		"",
		"If you need additional time or have any questions regarding the requirements, please let us know. We are happy to extend the deadline or provide clarification as needed.",
		"",
		"If you are unable to provide a quotation for this project, please let us know so we can update our records accordingly.",
		"",
		"Thank you for your time and consideration. We look forward to hearing from you soon.",
		"",
		g.Signature,
	}

	out := d
	out.Subject = "Follow-up: " + d.Subject
	out.Body = strings.Join(parts, "\n")
	return out
}
