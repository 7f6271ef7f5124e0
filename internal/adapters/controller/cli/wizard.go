package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/af0b9b/qrlogo/internal/domain/entity"
	"github.com/af0b9b/qrlogo/pkg/vcard"
)

// Wizard collects a generation request through line-oriented prompts.
type Wizard struct {
	in  *bufio.Reader
	out io.Writer
}

func NewWizard(in io.Reader, out io.Writer) *Wizard {
	return &Wizard{in: bufio.NewReader(in), out: out}
}

// Run walks through the full guided flow, using req for defaults.
func (w *Wizard) Run(req entity.Request) (entity.Request, error) {
	fmt.Fprintln(w.out, "=== QR Code Generator (guided mode) ===")
	fmt.Fprintln(w.out)

	mode, err := w.askString("Mode [1=Link/Text, 2=Contact card]", "1", false)
	if err != nil {
		return req, err
	}

	if mode == "2" {
		req.Source = entity.SourceContact
		fmt.Fprintln(w.out, "\n-- Contact card -- (required: first name, last name, phone, email, URL)")
		if err = w.PromptContactFields(&req.Contact, []string{"first name", "last name", "phone", "email", "url"}); err != nil {
			return req, err
		}
		if req.Contact.Org, err = w.askString("Organization (optional)", "", false); err != nil {
			return req, err
		}
		if req.Contact.Title, err = w.askString("Role/Title (optional)", "", false); err != nil {
			return req, err
		}
		if req.Contact.Street, err = w.askString("Street (optional)", "", false); err != nil {
			return req, err
		}
		if req.Contact.City, err = w.askString("City (optional)", "", false); err != nil {
			return req, err
		}
		if req.Contact.Region, err = w.askString("Region (optional)", "", false); err != nil {
			return req, err
		}
		if req.Contact.Postal, err = w.askString("Postal code (optional)", "", false); err != nil {
			return req, err
		}
		if req.Contact.Country, err = w.askString("Country (optional)", "", false); err != nil {
			return req, err
		}
		if req.Contact.Note, err = w.askString("Note, one line (optional)", "", false); err != nil {
			return req, err
		}
	} else {
		req.Source = entity.SourceLiteral
		if req.Data, err = w.askString("Data to encode (URL/text)", "", true); err != nil {
			return req, err
		}
	}

	if req.LogoPath, err = w.askString("Logo file path (PNG recommended)", "", true); err != nil {
		return req, err
	}
	if req.OutputPath, err = w.askString("Output file name", req.OutputPath, false); err != nil {
		return req, err
	}
	if req.Fill, err = w.askString("Module color", req.Fill, false); err != nil {
		return req, err
	}
	if req.Back, err = w.askString("Background color", req.Back, false); err != nil {
		return req, err
	}
	if req.Ratio, err = w.askFloat("Logo size ratio (0.08-0.22 typical with H)", req.Ratio, 0.08, 0.30); err != nil {
		return req, err
	}
	if req.BoxSize, err = w.askInt("Pixels per module (box size)", req.BoxSize, 4, 32); err != nil {
		return req, err
	}
	if req.QuietZone, err = w.askInt("Quiet zone (modules)", req.QuietZone, 1, 16); err != nil {
		return req, err
	}
	if req.Padding, err = w.askInt("Padding around the logo (px)", req.Padding, 0, 128); err != nil {
		return req, err
	}
	if req.PlateOpacity, err = w.askInt("Logo plate opacity (0-255)", req.PlateOpacity, 0, 255); err != nil {
		return req, err
	}
	if req.PlateRadius, err = w.askInt("Plate corner radius (px)", req.PlateRadius, 0, 128); err != nil {
		return req, err
	}

	level, err := w.askString("Error correction [H/L/M/Q]", "H", false)
	if err != nil {
		return req, err
	}
	level = strings.ToUpper(level)
	switch level {
	case "L", "M", "Q", "H":
		req.Level = level
	default:
		fmt.Fprintln(w.out, "Invalid value, using H")
		req.Level = "H"
	}

	if req.OutlineEnabled, err = w.askYesNo("Plate outline?", true); err != nil {
		return req, err
	}
	if req.OpenAfter, err = w.askYesNo("Open the file after generation?", true); err != nil {
		return req, err
	}
	if req.Validate, err = w.askYesNo("Validate the QR after generation?", true); err != nil {
		return req, err
	}
	if req.AutoTune, err = w.askYesNo("Auto-tune the logo if validation fails?", true); err != nil {
		return req, err
	}
	return req, nil
}

// PromptContactFields asks for just the named fields, in order. Values that
// already exist are kept.
func (w *Wizard) PromptContactFields(c *vcard.Contact, fields []string) error {
	for _, field := range fields {
		switch field {
		case "first name":
			v, err := w.askString("First name (required)", c.GivenName, true)
			if err != nil {
				return err
			}
			c.GivenName = v
		case "last name":
			v, err := w.askString("Last name (required)", c.FamilyName, true)
			if err != nil {
				return err
			}
			c.FamilyName = v
		case "phone":
			v, err := w.askString("Phone (required)", "", true)
			if err != nil {
				return err
			}
			c.Phones = append(c.Phones, v)
		case "email":
			v, err := w.askString("Email (required)", "", true)
			if err != nil {
				return err
			}
			c.Emails = append(c.Emails, v)
		case "url":
			v, err := w.askString("URL (required)", c.URL, true)
			if err != nil {
				return err
			}
			c.URL = v
		}
	}
	return nil
}

func (w *Wizard) PromptLogoPath() (string, error) {
	return w.askString("Logo file path (PNG recommended)", "", true)
}

func (w *Wizard) askString(label, def string, required bool) (string, error) {
	for {
		if def != "" {
			fmt.Fprintf(w.out, "%s [%s]: ", label, def)
		} else {
			fmt.Fprintf(w.out, "%s: ", label)
		}
		line, err := w.in.ReadString('\n')
		if err != nil && line == "" {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			line = def
		}
		if line != "" || !required {
			return line, nil
		}
		fmt.Fprintln(w.out, "This field is required.")
	}
}

func (w *Wizard) askFloat(label string, def, lo, hi float64) (float64, error) {
	raw, err := w.askString(fmt.Sprintf("%s [%g]", label, def), "", false)
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return def, nil
	}
	v, parseErr := strconv.ParseFloat(raw, 64)
	if parseErr != nil {
		fmt.Fprintf(w.out, "Invalid value, using default %g\n", def)
		return def, nil
	}
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v, nil
}

func (w *Wizard) askInt(label string, def, lo, hi int) (int, error) {
	raw, err := w.askString(fmt.Sprintf("%s [%d]", label, def), "", false)
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return def, nil
	}
	v, parseErr := strconv.Atoi(raw)
	if parseErr != nil {
		fmt.Fprintf(w.out, "Invalid value, using default %d\n", def)
		return def, nil
	}
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v, nil
}

func (w *Wizard) askYesNo(label string, def bool) (bool, error) {
	hint := "Y/n"
	if !def {
		hint = "y/N"
	}
	raw, err := w.askString(fmt.Sprintf("%s (%s)", label, hint), "", false)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(raw) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return def, nil
	}
}
