package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/af0b9b/qrlogo/internal/domain/entity"
	"github.com/af0b9b/qrlogo/pkg/logger"
	qr "github.com/af0b9b/qrlogo/pkg/qrcode"
)

// Config is the fully resolved run configuration: flag surface bound into
// viper, optional qrlogo.yaml defaults, QRLOGO_* environment overrides.
type Config struct {
	Interactive bool
	ContactMode bool
	Request     entity.Request
	Policy      qr.Policy
}

func defineFlags() {
	pflag.String("data", "", "data (URL/text) to encode; a path to an existing file encodes its contents")
	pflag.String("from-file", "", "read the payload from a file (overrides --data)")
	pflag.String("logo", "", "logo image path (PNG recommended)")
	pflag.String("out", "qr_with_logo.png", "output PNG path")
	pflag.String("fill", "black", "module color (name, #hex or r,g,b)")
	pflag.String("back", "white", "background color")
	pflag.Float64("ratio", 0.18, "logo size ratio (0.08-0.22 typical with H)")
	pflag.Int("box", 12, "pixel size per module")
	pflag.Int("border", 4, "quiet zone in modules")
	pflag.String("ec", "H", "error correction level (L/M/Q/H)")
	pflag.Int("pad", 8, "padding in px around the logo")
	pflag.String("plate", "white", "logo background plate color")
	pflag.Int("bg-opacity", 255, "logo plate opacity (0-255)")
	pflag.Int("bg-radius", 12, "logo plate corner radius in px")
	pflag.Bool("no-outline", false, "disable the plate outline")
	pflag.String("outline", "black", "plate outline color")
	pflag.Int("outline-width", 2, "plate outline width in px")
	pflag.Bool("open", false, "open the file after generation")
	pflag.Bool("overwrite", false, "overwrite the output file if it exists")
	pflag.Bool("interactive", false, "run the guided wizard")
	pflag.Bool("vcard", false, "contact mode: encode a vCard built from the contact flags")
	pflag.Bool("mecard", false, "contact mode: encode a MECARD instead of a vCard")
	pflag.String("first-name", "", "contact: given name")
	pflag.String("last-name", "", "contact: family name")
	pflag.String("org", "", "contact: organization")
	pflag.String("title", "", "contact: role/title")
	pflag.StringSlice("phone", nil, "contact: phone number (repeatable)")
	pflag.StringSlice("email", nil, "contact: email address (repeatable)")
	pflag.String("url", "", "contact: website URL")
	pflag.String("street", "", "contact: street address")
	pflag.String("city", "", "contact: city")
	pflag.String("region", "", "contact: region/province")
	pflag.String("postal", "", "contact: postal code")
	pflag.String("country", "", "contact: country")
	pflag.String("note", "", "contact: one-line note")
	pflag.Bool("validate", false, "decode the generated QR to confirm it scans")
	pflag.Bool("auto-tune", false, "on failed validation shrink the logo ratio in 0.02 steps down to 0.12")
	pflag.Bool("debug", false, "enable debug logging")
	pflag.Bool("log-to-file", false, "also write logs to a file")
	pflag.String("logs-dir", "logs", "directory for log files")
}

func initViper() {
	viper.SetConfigName("qrlogo")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	// The config file is optional; flags and env cover everything.
	_ = viper.ReadInConfig()

	viper.SetEnvPrefix("QRLOGO")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("policy.base.l", 0.12)
	viper.SetDefault("policy.base.m", 0.15)
	viper.SetDefault("policy.base.q", 0.18)
	viper.SetDefault("policy.base.h", 0.22)
	viper.SetDefault("policy.dense-modules", 45)
	viper.SetDefault("policy.medium-modules", 33)
	viper.SetDefault("policy.dense-penalty", 0.03)
	viper.SetDefault("policy.medium-penalty", 0.02)
	viper.SetDefault("policy.ceiling", 0.20)
	viper.SetDefault("policy.floor", 0.08)
	viper.SetDefault("policy.vcard-cap", 0.16)
	viper.SetDefault("policy.mecard-cap", 0.18)
}

// policyFromViper lets the heuristic constants be overridden from the
// config file: they are stated rules of thumb, not derived values.
func policyFromViper() qr.Policy {
	p := qr.DefaultPolicy()
	p.BaseCap[qr.LevelL] = viper.GetFloat64("policy.base.l")
	p.BaseCap[qr.LevelM] = viper.GetFloat64("policy.base.m")
	p.BaseCap[qr.LevelQ] = viper.GetFloat64("policy.base.q")
	p.BaseCap[qr.LevelH] = viper.GetFloat64("policy.base.h")
	p.DenseModules = viper.GetInt("policy.dense-modules")
	p.MediumModules = viper.GetInt("policy.medium-modules")
	p.DensePenalty = viper.GetFloat64("policy.dense-penalty")
	p.MediumPenalty = viper.GetFloat64("policy.medium-penalty")
	p.Ceiling = viper.GetFloat64("policy.ceiling")
	p.Floor = viper.GetFloat64("policy.floor")
	p.VCardCap = viper.GetFloat64("policy.vcard-cap")
	p.MECARDCap = viper.GetFloat64("policy.mecard-cap")
	return p
}

func Get() *Config {
	defineFlags()
	pflag.Parse()
	initViper()
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		panic(err)
	}

	err := logger.Init(logger.Config{
		Debug:     viper.GetBool("debug"),
		LogToFile: viper.GetBool("log-to-file"),
		LogsDir:   viper.GetString("logs-dir"),
	})
	if err != nil {
		panic(err)
	}

	req := entity.Request{
		Source:         entity.SourceLiteral,
		Data:           viper.GetString("data"),
		File:           viper.GetString("from-file"),
		LogoPath:       viper.GetString("logo"),
		OutputPath:     viper.GetString("out"),
		Overwrite:      viper.GetBool("overwrite"),
		Fill:           viper.GetString("fill"),
		Back:           viper.GetString("back"),
		Ratio:          viper.GetFloat64("ratio"),
		BoxSize:        viper.GetInt("box"),
		QuietZone:      viper.GetInt("border"),
		Level:          viper.GetString("ec"),
		Padding:        viper.GetInt("pad"),
		PlateColor:     viper.GetString("plate"),
		PlateOpacity:   viper.GetInt("bg-opacity"),
		PlateRadius:    viper.GetInt("bg-radius"),
		OutlineColor:   viper.GetString("outline"),
		OutlineWidth:   viper.GetInt("outline-width"),
		OutlineEnabled: !viper.GetBool("no-outline"),
		Validate:       viper.GetBool("validate"),
		AutoTune:       viper.GetBool("auto-tune"),
		OpenAfter:      viper.GetBool("open"),
		MECARD:         viper.GetBool("mecard"),
	}
	req.Contact.GivenName = viper.GetString("first-name")
	req.Contact.FamilyName = viper.GetString("last-name")
	req.Contact.Org = viper.GetString("org")
	req.Contact.Title = viper.GetString("title")
	req.Contact.Phones = viper.GetStringSlice("phone")
	req.Contact.Emails = viper.GetStringSlice("email")
	req.Contact.URL = viper.GetString("url")
	req.Contact.Street = viper.GetString("street")
	req.Contact.City = viper.GetString("city")
	req.Contact.Region = viper.GetString("region")
	req.Contact.Postal = viper.GetString("postal")
	req.Contact.Country = viper.GetString("country")
	req.Contact.Note = viper.GetString("note")

	if viper.GetString("from-file") != "" {
		req.Source = entity.SourceFile
	}

	return &Config{
		Interactive: viper.GetBool("interactive"),
		ContactMode: viper.GetBool("vcard") || viper.GetBool("mecard"),
		Request:     req,
		Policy:      policyFromViper(),
	}
}
