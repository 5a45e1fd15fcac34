package utils

import (
	"embed"
	"io/ioutil"
	"path"
	"path/filepath"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

//go:embed i18n/*.yaml
var messageFiles embed.FS

var (
	bundle     *i18n.Bundle
	bundleOnce sync.Once
)

// Message ids shared by the chart builders and the page
const (
	MsgDate           = "Date"
	MsgAge            = "Age"
	MsgCountry        = "Country"
	MsgNumberOfCases  = "NumberOfCases"
	MsgCasesInEngland = "CasesInEngland"
	MsgTotalCases     = "TotalCases"
	MsgTotalDeaths    = "TotalDeaths"
	MsgSelectCountry  = "SelectCountry"
)

func newBundle() *i18n.Bundle {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	entries, err := messageFiles.ReadDir("i18n")
	if err != nil {
		panic(err)
	}
	for _, e := range entries {
		data, err := messageFiles.ReadFile(path.Join("i18n", e.Name()))
		if err != nil {
			panic(err)
		}
		b.MustParseMessageFileBytes(data, e.Name())
	}
	return b
}

// InitI18NBundle loads the built-in message files followed by any yaml files
// found in dir, which may override or add languages.
func InitI18NBundle(dir string) error {
	b := newBundle()

	if dir != "" {
		files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
		if err != nil {
			return err
		}
		for _, f := range files {
			data, err := ioutil.ReadFile(f)
			if err != nil {
				return err
			}
			if _, err := b.ParseMessageFileBytes(data, f); err != nil {
				return err
			}
		}
	}

	bundleOnce.Do(func() {})
	bundle = b
	return nil
}

func NewLocalizer(lang string) *i18n.Localizer {
	bundleOnce.Do(func() {
		if bundle == nil {
			bundle = newBundle()
		}
	})
	return i18n.NewLocalizer(bundle, lang)
}

// Localize renders a message, falling back to the message id when it is unknown
func Localize(loc *i18n.Localizer, id string, data map[string]interface{}) string {
	msg, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}
