package wlanscan

import (
	"errors"
	"testing"
)

func TestMessagesRussianCatalogue(t *testing.T) {
	bundle, err := newBundle()
	if err != nil {
		t.Fatalf("newBundle: %v", err)
	}

	msgs := newMessages(bundle, "ru")

	if got, want := msgs.get(msgPressEnter, nil), "Нажмите Enter для выхода."; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if got, want := msgs.get(msgElapsedTime, map[string]interface{}{"Seconds": 3}), "Прошло времени: 3 с"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMessagesUnknownLanguageFallsBackToEnglish(t *testing.T) {
	bundle, err := newBundle()
	if err != nil {
		t.Fatalf("newBundle: %v", err)
	}

	msgs := newMessages(bundle, "de")

	if got, want := msgs.get(msgNoInterfaces, nil), "WlanEnumInterfaces returned zero interfaces!"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestMessagesWithCode(t *testing.T) {
	bundle, err := newBundle()
	if err != nil {
		t.Fatalf("newBundle: %v", err)
	}

	msgs := newMessages(bundle, "en")

	if got, want := msgs.withCode(msgScanFailed, statusErr("WlanScan", 1223)), "Warning: WlanScan failed with error code 1223"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if got, want := msgs.withCode(msgScanFailed, errors.New("plain")), "Warning: WlanScan failed with error code ?"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveLanguageExplicit(t *testing.T) {
	lang, err := resolveLanguage("ru")
	if err != nil {
		t.Fatalf("resolveLanguage: %v", err)
	}

	if lang != "ru" {
		t.Errorf("lang = %q, want ru", lang)
	}
}
