//go:build !integration

package i18n

import (
	"testing"
	"testing/fstest"
)

func TestTranslator(t *testing.T) {
	fsys := fstest.MapFS{
		"locales/ru.yaml": &fstest.MapFile{
			Data: []byte("greeting: Привет\nwelcome_user: Привет, %s!\ncounter: \"выбрано: %d\""),
		},
	}

	translator, err := NewTranslator(fsys, "ru")
	if err != nil {
		t.Fatalf("NewTranslator failed: %v", err)
	}

	t.Run("translates a simple key", func(t *testing.T) {
		if got, want := translator.T("greeting"), "Привет"; got != want {
			t.Errorf("wanted %q, got %q", want, got)
		}
	})

	t.Run("returns the key when missing", func(t *testing.T) {
		if got, want := translator.T("nonexistent_key"), "nonexistent_key"; got != want {
			t.Errorf("wanted %q, got %q", want, got)
		}
	})

	t.Run("formats string arguments", func(t *testing.T) {
		if got, want := translator.T("welcome_user", "Иван"), "Привет, Иван!"; got != want {
			t.Errorf("wanted %q, got %q", want, got)
		}
	})

	t.Run("formats numeric arguments", func(t *testing.T) {
		if got, want := translator.T("counter", 3), "выбрано: 3"; got != want {
			t.Errorf("wanted %q, got %q", want, got)
		}
	})
}

func TestTranslatorUnknownLanguage(t *testing.T) {
	if _, err := NewTranslator(fstest.MapFS{}, "xx"); err == nil {
		t.Fatal("expected error for missing locale file")
	}
}

// The embedded Russian locale must carry every key the engine prompts with.
func TestEmbeddedLocaleComplete(t *testing.T) {
	translator, err := NewTranslator(LocalesFS, "ru")
	if err != nil {
		t.Fatalf("embedded locale failed to load: %v", err)
	}

	keys := []string{
		"intro", "ask_phone", "btn_phone", "use_start", "welcome_back",
		"ask_name", "name_accepted", "ask_surname", "ask_gender", "btn_gender_male",
		"btn_gender_female", "gender_invalid", "ask_age", "age_invalid",
		"ask_region", "region_not_found", "ask_interests", "interest_added",
		"interest_duplicate", "interest_suggest", "interest_use_buttons",
		"btn_skip", "ask_photo", "photo_invalid", "ask_location",
		"btn_location", "location_invalid", "registration_done",
		"cancelled", "already_registered", "error_generic",
	}
	for _, key := range keys {
		if translator.T(key) == key {
			t.Errorf("locale ru is missing key %q", key)
		}
	}
}
