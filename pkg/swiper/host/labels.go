package host

import (
	"embed"
	"log/slog"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var localeFiles = []string{"locales/active.en.toml", "locales/active.de.toml"}

// Label IDs in the locale files.
const (
	LabelExpand   = "expand"
	LabelCollapse = "collapse"
	LabelStep     = "step"
	LabelBlocked  = "blocked"
)

// Labels looks up the demo's user-facing strings.
type Labels struct {
	localizer *i18n.Localizer
	tag       language.Tag
	logger    *slog.Logger
}

// NewLabels loads the bundled catalogs and picks the best match for
// locale, falling back to English.
func NewLabels(locale string, logger *slog.Logger) (*Labels, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, path := range localeFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, path); err != nil {
			return nil, err
		}
	}

	tag := language.English
	if locale != "" {
		if parsed, err := language.Parse(locale); err == nil {
			matcher := language.NewMatcher(bundle.LanguageTags())
			_, index, _ := matcher.Match(parsed)
			tag = bundle.LanguageTags()[index]
		} else {
			logger.Warn("Invalid locale; using English", "locale", locale, "error", err)
		}
	}

	return &Labels{
		localizer: i18n.NewLocalizer(bundle, tag.String()),
		tag:       tag,
		logger:    logger,
	}, nil
}

// Language returns the language the labels are shown in.
func (l *Labels) Language() language.Tag {
	return l.tag
}

// Get returns the label for id, or id itself when it is missing.
func (l *Labels) Get(id string) string {
	s, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		l.logger.Debug("Missing label", "id", id, "error", err)
		return id
	}
	return s
}

// Step returns the status line for a panel resting on step (zero based).
func (l *Labels) Step(step, count int) string {
	s, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    LabelStep,
		TemplateData: map[string]int{"Step": step + 1, "Count": count},
		PluralCount:  count,
	})
	if err != nil {
		l.logger.Debug("Missing label", "id", LabelStep, "error", err)
		return LabelStep
	}
	return s
}
