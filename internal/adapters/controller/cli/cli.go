// Package cli is the command-line controller: it decides between direct
// generation and the guided wizard, fills in missing input, and dispatches
// into the generator service.
package cli

import (
	"os"
	"strings"

	"github.com/af0b9b/qrlogo/internal/adapters/config"
	"github.com/af0b9b/qrlogo/internal/domain/entity"
	"github.com/af0b9b/qrlogo/internal/domain/service"
	"github.com/af0b9b/qrlogo/internal/domain/utils/validator"
	"github.com/af0b9b/qrlogo/pkg/logger"
	qr "github.com/af0b9b/qrlogo/pkg/qrcode"
	"github.com/af0b9b/qrlogo/pkg/vcard"
)

type Controller struct {
	log     *logger.Logger
	service *service.GeneratorService
	cfg     *config.Config
	wizard  *Wizard
}

func New(log *logger.Logger, svc *service.GeneratorService, cfg *config.Config) *Controller {
	return &Controller{
		log:     log,
		service: svc,
		cfg:     cfg,
		wizard:  NewWizard(os.Stdin, os.Stdout),
	}
}

// Run resolves missing input and generates the code. A validation give-up
// is not fatal: the last image was saved and the failure already reported,
// so the caller still gets its artifact.
func (c *Controller) Run() error {
	req := c.cfg.Request

	switch {
	case c.cfg.ContactMode:
		if vcard.DetectKind(req.Data) != vcard.KindText {
			// A ready-made contact payload was passed in; encode as-is.
			req.Source = entity.SourceLiteral
			break
		}
		req.Source = entity.SourceContact
		missing := validator.MissingContactFields(req.Contact)
		if len(missing) > 0 {
			c.log.Infof("Contact mode: collecting missing required fields: %s", strings.Join(missing, ", "))
			if err := c.wizard.PromptContactFields(&req.Contact, missing); err != nil {
				return err
			}
		}
	case c.cfg.Interactive, c.needsWizard(req):
		full, err := c.wizard.Run(req)
		if err != nil {
			return err
		}
		req = full
	}

	if req.LogoPath == "" {
		path, err := c.wizard.PromptLogoPath()
		if err != nil {
			return err
		}
		req.LogoPath = path
	}

	_, err := c.service.Generate(req)
	if qr.IsValidationFailure(err) {
		// Already reported; the saved image is still the deliverable.
		return nil
	}
	return err
}

// needsWizard reports whether essential input is missing for a plain
// text/link run.
func (c *Controller) needsWizard(req entity.Request) bool {
	hasPayload := strings.TrimSpace(req.Data) != "" || req.Source == entity.SourceFile
	return !hasPayload
}
