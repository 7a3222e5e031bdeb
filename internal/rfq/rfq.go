package rfq

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/mmhamza1234/procurement/internal/supplier"
)

// Details carries the project information shared by every draft in a batch.
type Details struct {
	ProjectName     string
	TenderReference string
	QuoteDeadline   time.Time
	Requirements    []string
	Notes           string
	ExcludeOrigins  []string
	// OriginNote adds an explicit line telling suppliers which origins the
	// client will not accept.
	OriginNote bool
}

// Draft is a ready-to-send quotation request for one supplier.
type Draft struct {
	Company   string `json:"company"`
	Contact   string `json:"contact,omitempty"`
	Email     string `json:"email,omitempty"`
	Country   string `json:"country,omitempty"`
	Materials string `json:"materials,omitempty"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

const defaultSignature = "Regards,\nProcurement Team"

// Generator renders quotation request drafts with a fixed sign-off.
type Generator struct {
	Signature string
}

// NewGenerator returns a Generator using the given sign-off, or a plain
// default when the signature is blank.
func NewGenerator(signature string) *Generator {
	if strings.TrimSpace(signature) == "" {
		signature = defaultSignature
	}
	return &Generator{Signature: signature}
}

// Draft renders a single quotation request for one supplier.
func (g *Generator) Draft(s supplier.Supplier, det Details) Draft {
	subject := fmt.Sprintf("Request for Quotation - %s", det.ProjectName)
	if det.TenderReference != "" {
		subject += fmt.Sprintf(" (Ref: %s)", det.TenderReference)
	}
	return Draft{
		Company:   s.Company,
		Contact:   strings.TrimSpace(s.Contact),
		Email:     strings.TrimSpace(s.Email),
		Country:   s.Country,
		Materials: strings.Join(s.Materials, ", "),
		Subject:   subject,
		Body:      g.body(s, det),
	}
}

// DraftAll renders one draft per roster entry, in roster order.
func (g *Generator) DraftAll(roster []supplier.Supplier, det Details) []Draft {
	drafts := make([]Draft, 0, len(roster))
	for _, s := range roster {
		drafts = append(drafts, g.Draft(s, det))
	}
	return drafts
}

func (g *Generator) body(s supplier.Supplier, det Details) string {
	greeting := "Dear Sir/Madam,"
	if contact := strings.TrimSpace(s.Contact); contact != "" {
		greeting = fmt.Sprintf("Dear %s,", contact)
	}

	parts := []string{
		greeting,
		"",
		"I hope this email finds you well.",
		"",
		fmt.Sprintf("We are pleased to invite %s to submit a quotation for the following project:", s.Company),
		"",
		fmt.Sprintf("**Project:** %s", det.ProjectName),
	}
	if det.TenderReference != "" {
		parts = append(parts, fmt.Sprintf("**Reference:** %s", det.TenderReference))
	}
	parts = append(parts,
		fmt.Sprintf("**Quote Deadline:** %s", formatDeadline(det.QuoteDeadline)),
		"",
		"**Requirements and Specifications:**",
	)
	for _, req := range det.Requirements {
		if req = strings.TrimSpace(req); req != "" {
			parts = append(parts, "• "+req)
		}
	}
	parts = append(parts, "")

	if det.Notes != "" {
		parts = append(parts, "**Additional Information:**", det.Notes, "")
	}
	if det.OriginNote && len(det.ExcludeOrigins) > 0 {
		parts = append(parts,
			fmt.Sprintf("**Please note:** For this project, we are specifically seeking suppliers from origins other than %s.",
				strings.Join(det.ExcludeOrigins, ", ")),
			"",
		)
	}

	parts = append(parts,
		"**Please include in your quotation:**",
		"• Detailed technical specifications",
		"• Unit prices and total costs",
		"• Delivery schedule and lead times",
		"• Payment terms",
		"• Validity period of the quotation",
		"• Compliance certificates and quality documentation",
		"• Country of origin for all materials",
		"",
		"We look forward to receiving your competitive quotation by the specified deadline. Should you have any questions or require clarification, please do not hesitate to contact us.",
		"",
		"Thank you for your time and consideration.",
		"",
		g.Signature,
	)
	return strings.Join(parts, "\n")
}

func formatDeadline(d time.Time) string {
	if d.IsZero() {
		return "Not specified"
	}
	return d.Format("January 2, 2006")
}

var addressPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidAddress reports whether s looks like a deliverable email address.
func ValidAddress(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && addressPattern.MatchString(s)
}
