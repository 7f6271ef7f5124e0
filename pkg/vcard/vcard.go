// Package vcard builds vCard 3.0 and MECARD contact payloads for QR
// encoding. See RFC 2426 for the vCard grammar.
package vcard

import "strings"

// EOL is the line terminator required by the vCard grammar.
const EOL = "\r\n"

// Kind classifies a payload for overlay sizing. Structured contact payloads
// are denser than free text and tolerate less obstruction.
type Kind int

const (
	KindText Kind = iota
	KindVCard
	KindMECARD
)

// Contact holds the fields of a contact record.
type Contact struct {
	// GivenName and FamilyName form the structured N property (required).
	GivenName  string
	FamilyName string
	// Org is the organization name (optional).
	Org string
	// Title is the job title or role (optional).
	Title string
	// Phones are emitted as TEL;TYPE=CELL,VOICE lines, one per entry.
	Phones []string
	// Emails are emitted as EMAIL;TYPE=INTERNET lines, one per entry.
	Emails []string
	// URL is the website address (optional).
	URL string
	// Street, City, Region, Postal and Country form the ADR property,
	// emitted only when at least one of them is set.
	Street  string
	City    string
	Region  string
	Postal  string
	Country string
	// Note is a free-form single note line (optional).
	Note string
}

// Escape escapes a field value for embedding in a vCard property. Backslash
// escaping must run first so that later escape sequences are not themselves
// re-escaped.
func Escape(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "\r\n", `\n`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, ";", `\;`)
	s = strings.ReplaceAll(s, ",", `\,`)
	return s
}

// Unescape reverses Escape.
func Unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case 'n', 'N':
			b.WriteByte('\n')
		case '\\', ';', ',':
			b.WriteByte(s[i])
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// Build assembles a vCard 3.0 payload with CRLF line endings and a trailing
// CRLF (some readers choke without it).
func Build(c Contact) string {
	gn := Escape(c.GivenName)
	fn := Escape(c.FamilyName)

	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"N:" + fn + ";" + gn + ";;;",
		strings.TrimSpace("FN:" + strings.TrimSpace(gn+" "+fn)),
	}
	if v := Escape(c.Org); v != "" {
		lines = append(lines, "ORG:"+v)
	}
	if v := Escape(c.Title); v != "" {
		lines = append(lines, "TITLE:"+v)
	}
	for _, p := range c.Phones {
		if p = strings.TrimSpace(p); p != "" {
			lines = append(lines, "TEL;TYPE=CELL,VOICE:"+Escape(p))
		}
	}
	for _, e := range c.Emails {
		if e = strings.TrimSpace(e); e != "" {
			lines = append(lines, "EMAIL;TYPE=INTERNET:"+Escape(e))
		}
	}
	street := Escape(c.Street)
	city := Escape(c.City)
	region := Escape(c.Region)
	postal := Escape(c.Postal)
	country := Escape(c.Country)
	if street != "" || city != "" || region != "" || postal != "" || country != "" {
		lines = append(lines, "ADR;TYPE=WORK:;;"+street+";"+city+";"+region+";"+postal+";"+country)
	}
	if v := Escape(c.URL); v != "" {
		lines = append(lines, "URL:"+v)
	}
	if v := Escape(c.Note); v != "" {
		lines = append(lines, "NOTE:"+v)
	}
	lines = append(lines, "END:VCARD")
	return strings.Join(lines, EOL) + EOL
}

// BuildMECARD assembles a compact MECARD payload. MECARD has no structured
// address or title support beyond NOTE, so only name, phone, email, URL and
// note are emitted.
func BuildMECARD(c Contact) string {
	var b strings.Builder
	b.WriteString("MECARD:")
	b.WriteString("N:" + mecardEscape(c.FamilyName) + "," + mecardEscape(c.GivenName) + ";")
	for _, p := range c.Phones {
		if p = strings.TrimSpace(p); p != "" {
			b.WriteString("TEL:" + mecardEscape(p) + ";")
		}
	}
	for _, e := range c.Emails {
		if e = strings.TrimSpace(e); e != "" {
			b.WriteString("EMAIL:" + mecardEscape(e) + ";")
		}
	}
	if c.URL != "" {
		b.WriteString("URL:" + mecardEscape(c.URL) + ";")
	}
	if c.Note != "" {
		b.WriteString("NOTE:" + mecardEscape(c.Note) + ";")
	}
	b.WriteString(";")
	return b.String()
}

// mecardEscape escapes the characters reserved by the MECARD grammar.
func mecardEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, ";", `\;`)
	s = strings.ReplaceAll(s, ",", `\,`)
	s = strings.ReplaceAll(s, ":", `\:`)
	return s
}

// DetectKind classifies a payload by its textual preamble, case-insensitively.
func DetectKind(payload string) Kind {
	p := strings.ToUpper(strings.TrimSpace(payload))
	switch {
	case strings.HasPrefix(p, "BEGIN:VCARD"):
		return KindVCard
	case strings.HasPrefix(p, "MECARD:"):
		return KindMECARD
	default:
		return KindText
	}
}
