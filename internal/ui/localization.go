package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle       = "app_title"
	KeySettings       = "settings"
	KeyLanguage       = "language"
	KeyDefaultSize    = "default_size"
	KeyRememberValues = "remember_values"
	KeySave           = "save"
	KeyCancel         = "cancel"
	KeyEnabled        = "enabled"
	KeyLastEvent      = "last_event"
	KeyNoEventsYet    = "no_events_yet"
	KeyReset          = "reset"
	KeySettingsSaved  = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:       "Number Input Gallery",
		KeySettings:       "Settings",
		KeyLanguage:       "Language",
		KeyDefaultSize:    "Default Size",
		KeyRememberValues: "Remember Last Values",
		KeySave:           "Save",
		KeyCancel:         "Cancel",
		KeyEnabled:        "Enabled",
		KeyLastEvent:      "Last Event",
		KeyNoEventsYet:    "No events yet",
		KeyReset:          "Reset",
		KeySettingsSaved:  "Settings saved successfully!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:       "Галерея числовых полей",
		KeySettings:       "Настройки",
		KeyLanguage:       "Язык",
		KeyDefaultSize:    "Размер по умолчанию",
		KeyRememberValues: "Запоминать значения",
		KeySave:           "Сохранить",
		KeyCancel:         "Отмена",
		KeyEnabled:        "Включено",
		KeyLastEvent:      "Последнее событие",
		KeyNoEventsYet:    "Событий пока нет",
		KeyReset:          "Сбросить",
		KeySettingsSaved:  "Настройки успешно сохранены!",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:       "Galeria de Campos Numéricos",
		KeySettings:       "Configurações",
		KeyLanguage:       "Idioma",
		KeyDefaultSize:    "Tamanho Padrão",
		KeyRememberValues: "Lembrar Últimos Valores",
		KeySave:           "Salvar",
		KeyCancel:         "Cancelar",
		KeyEnabled:        "Ativado",
		KeyLastEvent:      "Último Evento",
		KeyNoEventsYet:    "Nenhum evento ainda",
		KeyReset:          "Redefinir",
		KeySettingsSaved:  "Configurações salvas com sucesso!",
	}
}
