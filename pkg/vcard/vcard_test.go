package vcard

import (
	"strings"
	"testing"
)

func TestEscapeRoundTrip(t *testing.T) {
	tests := []string{
		`Acme; Co, Inc.`,
		`back\slash`,
		"multi\nline",
		"crlf\r\nline",
		`everything; at \ once, really` + "\nnewline",
		"",
		"plain",
	}
	for _, in := range tests {
		want := strings.ReplaceAll(in, "\r\n", "\n")
		if got := Unescape(Escape(in)); got != want {
			t.Errorf("Unescape(Escape(%q)) = %q, want %q", in, got, want)
		}
	}
}

func TestEscapeOrdering(t *testing.T) {
	// Backslash must be escaped first or the inserted escapes get doubled.
	if got := Escape(`a\;b`); got != `a\\;b` {
		t.Errorf("Escape() = %q, want %q", got, `a\\;b`)
	}
}

func TestBuild(t *testing.T) {
	c := Contact{
		GivenName:  "Mario",
		FamilyName: "Rossi",
		Org:        "ACME; Labs",
		Title:      "Engineer",
		Phones:     []string{"+39333111222", " ", ""},
		Emails:     []string{"m.rossi@acme.it"},
		URL:        "https://acme.it",
		City:       "Milano",
		Note:       "line one\nline two",
	}
	got := Build(c)

	wantLines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"N:Rossi;Mario;;;",
		"FN:Mario Rossi",
		`ORG:ACME\; Labs`,
		"TITLE:Engineer",
		"TEL;TYPE=CELL,VOICE:+39333111222",
		"EMAIL;TYPE=INTERNET:m.rossi@acme.it",
		"ADR;TYPE=WORK:;;;Milano;;;",
		"URL:https://acme.it",
		`NOTE:line one\nline two`,
		"END:VCARD",
	}
	want := strings.Join(wantLines, EOL) + EOL
	if got != want {
		t.Errorf("Build() =\n%q\nwant\n%q", got, want)
	}
	if !strings.HasSuffix(got, EOL) {
		t.Error("payload must end with a trailing CRLF")
	}
}

func TestBuildOmitsEmptyAddress(t *testing.T) {
	got := Build(Contact{GivenName: "A", FamilyName: "B"})
	if strings.Contains(got, "ADR") {
		t.Errorf("empty address should not be emitted:\n%s", got)
	}
	if strings.Contains(got, "ORG") || strings.Contains(got, "TITLE") {
		t.Errorf("empty optional fields should not be emitted:\n%s", got)
	}
}

func TestBuildMECARD(t *testing.T) {
	got := BuildMECARD(Contact{
		GivenName:  "Mario",
		FamilyName: "Rossi",
		Phones:     []string{"+39333111222"},
		Emails:     []string{"m.rossi@acme.it"},
		URL:        "https://acme.it",
	})
	want := "MECARD:N:Rossi,Mario;TEL:+39333111222;EMAIL:m.rossi@acme.it;URL:https\\://acme.it;;"
	if got != want {
		t.Errorf("BuildMECARD() = %q, want %q", got, want)
	}
	if DetectKind(got) != KindMECARD {
		t.Error("built MECARD payload should detect as MECARD")
	}
}

func TestDetectKind(t *testing.T) {
	tests := []struct {
		payload string
		want    Kind
	}{
		{"BEGIN:VCARD\r\nVERSION:3.0", KindVCard},
		{"begin:vcard", KindVCard},
		{"  Begin:VCard", KindVCard},
		{"MECARD:N:Doe,John;;", KindMECARD},
		{"mecard:N:Doe,John;;", KindMECARD},
		{"https://example.com", KindText},
		{"", KindText},
		{"VCARD but not at the start BEGIN:VCARD", KindText},
	}
	for _, tt := range tests {
		if got := DetectKind(tt.payload); got != tt.want {
			t.Errorf("DetectKind(%q) = %v, want %v", tt.payload, got, tt.want)
		}
	}
}
