package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/af0b9b/qrlogo/pkg/vcard"
)

func TestPromptContactFieldsOnlyAsksMissing(t *testing.T) {
	in := strings.NewReader("+39333111222\nm.rossi@acme.it\n")
	var out bytes.Buffer
	w := NewWizard(in, &out)

	contact := vcard.Contact{
		GivenName:  "Mario",
		FamilyName: "Rossi",
		URL:        "https://acme.it",
	}
	if err := w.PromptContactFields(&contact, []string{"phone", "email"}); err != nil {
		t.Fatalf("PromptContactFields() error = %v", err)
	}
	if len(contact.Phones) != 1 || contact.Phones[0] != "+39333111222" {
		t.Errorf("Phones = %v", contact.Phones)
	}
	if len(contact.Emails) != 1 || contact.Emails[0] != "m.rossi@acme.it" {
		t.Errorf("Emails = %v", contact.Emails)
	}
	if contact.GivenName != "Mario" || contact.URL != "https://acme.it" {
		t.Error("existing fields must be preserved")
	}
	prompts := out.String()
	if strings.Contains(prompts, "First name") || strings.Contains(prompts, "URL") {
		t.Errorf("prompted for fields that were not missing:\n%s", prompts)
	}
}

func TestAskStringRequiredRetries(t *testing.T) {
	in := strings.NewReader("\n\nvalue\n")
	var out bytes.Buffer
	w := NewWizard(in, &out)

	got, err := w.askString("Field", "", true)
	if err != nil {
		t.Fatalf("askString() error = %v", err)
	}
	if got != "value" {
		t.Errorf("askString() = %q, want %q", got, "value")
	}
	if !strings.Contains(out.String(), "required") {
		t.Error("expected a retry message for empty required input")
	}
}

func TestAskFloatClampsAndDefaults(t *testing.T) {
	in := strings.NewReader("0.99\n\nbogus\n")
	var out bytes.Buffer
	w := NewWizard(in, &out)

	if got, _ := w.askFloat("Ratio", 0.18, 0.08, 0.30); got != 0.30 {
		t.Errorf("out-of-range input = %v, want clamped 0.30", got)
	}
	if got, _ := w.askFloat("Ratio", 0.18, 0.08, 0.30); got != 0.18 {
		t.Errorf("empty input = %v, want default 0.18", got)
	}
	if got, _ := w.askFloat("Ratio", 0.18, 0.08, 0.30); got != 0.18 {
		t.Errorf("bogus input = %v, want default 0.18", got)
	}
}

func TestAskYesNo(t *testing.T) {
	in := strings.NewReader("n\ny\n\n")
	var out bytes.Buffer
	w := NewWizard(in, &out)

	if got, _ := w.askYesNo("Outline?", true); got {
		t.Error("explicit n should disable")
	}
	if got, _ := w.askYesNo("Outline?", false); !got {
		t.Error("explicit y should enable")
	}
	if got, _ := w.askYesNo("Outline?", true); !got {
		t.Error("empty answer should keep the default")
	}
}
