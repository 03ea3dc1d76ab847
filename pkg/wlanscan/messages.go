package wlanscan

import (
	"embed"
	"fmt"

	"github.com/jeandeaual/go-locale"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed lang/active.*.toml
var langFS embed.FS

var (
	msgOpenHandleFailed = &i18n.Message{
		ID:    "OpenHandleFailed",
		Other: "WlanOpenHandle failed with error code: {{.Code}}",
	}
	msgRegisterNotificationFailed = &i18n.Message{
		ID:    "RegisterNotificationFailed",
		Other: "Warning: WlanRegisterNotification failed. Scan will time out waiting for completion.",
	}
	msgEnumInterfacesFailed = &i18n.Message{
		ID:    "EnumInterfacesFailed",
		Other: "WlanEnumInterfaces failed with error code: {{.Code}}",
	}
	msgNoInterfaces = &i18n.Message{
		ID:    "NoInterfaces",
		Other: "WlanEnumInterfaces returned zero interfaces!",
	}
	msgDetectedInterfaces = &i18n.Message{
		ID:    "DetectedInterfaces",
		Other: "Detected interfaces: ",
	}
	msgInterfaceHeader = &i18n.Message{
		ID:    "InterfaceHeader",
		Other: "Interface {{.Index}}: {{.Description}}",
	}
	msgScanFailed = &i18n.Message{
		ID:    "ScanFailed",
		Other: "Warning: WlanScan failed with error code {{.Code}}",
	}
	msgWaitingForScan = &i18n.Message{
		ID:    "WaitingForScan",
		Other: "Waiting for WlanScan to complete...",
	}
	msgScanTookTooLong = &i18n.Message{
		ID:    "ScanTookTooLong",
		Other: "Warning: WlanScan took too long to complete.",
	}
	msgElapsedTime = &i18n.Message{
		ID:    "ElapsedTime",
		Other: "Elapsed time: {{.Seconds}}s",
	}
	msgListNetworksFailed = &i18n.Message{
		ID:    "ListNetworksFailed",
		Other: "WlanGetAvailableNetworkList failed with error code: {{.Code}}",
	}
	msgConnectedTag = &i18n.Message{
		ID:    "ConnectedTag",
		Other: "[connected]",
	}
	msgHiddenTag = &i18n.Message{
		ID:    "HiddenTag",
		Other: "[hidden]",
	}
	msgSSIDLength = &i18n.Message{
		ID:    "SSIDLength",
		Other: "[length: {{.Length}}]",
	}
	msgInterrupted = &i18n.Message{
		ID:    "Interrupted",
		Other: "Interrupted, skipping the remaining interfaces.",
	}
	msgPressEnter = &i18n.Message{
		ID:    "PressEnterToExit",
		Other: "Press enter to exit.",
	}
)

func newBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	if _, err := bundle.LoadMessageFileFS(langFS, "lang/active.ru.toml"); err != nil {
		return nil, fmt.Errorf("load message file: %w", err)
	}

	return bundle, nil
}

// resolveLanguage turns "auto" into the system language
func resolveLanguage(lang string) (string, error) {
	if lang != defaultLanguage {
		return lang, nil
	}

	systemLang, err := locale.GetLanguage()
	if err != nil {
		return "", fmt.Errorf("get system locale: %w", err)
	}

	return systemLang, nil
}

type messages struct {
	localizer *i18n.Localizer
}

func newMessages(bundle *i18n.Bundle, lang string) *messages {
	return &messages{localizer: i18n.NewLocalizer(bundle, lang, "en")}
}

func (m *messages) get(msg *i18n.Message, data map[string]interface{}) string {
	return m.localizer.MustLocalize(&i18n.LocalizeConfig{
		DefaultMessage: msg,
		TemplateData:   data,
	})
}

func (m *messages) withCode(msg *i18n.Message, err error) string {
	code, ok := StatusCode(err)
	if !ok {
		return m.get(msg, map[string]interface{}{"Code": "?"})
	}

	return m.get(msg, map[string]interface{}{"Code": code})
}
