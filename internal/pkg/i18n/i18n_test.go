// internal/pkg/i18n/i18n_test.go
package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLocale(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Locale
	}{
		{"arabic", "ar", LocaleArabic},
		{"english", "en", LocaleEnglish},
		{"empty falls back to default", "", DefaultLocale},
		{"unknown falls back to default", "fr", DefaultLocale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLocale(tt.raw))
		})
	}
}

func TestTextIn(t *testing.T) {
	text := Text{AR: "وجبة", EN: "Meal"}

	assert.Equal(t, "وجبة", text.In(LocaleArabic))
	assert.Equal(t, "Meal", text.In(LocaleEnglish))
}

// Every declared key must resolve in every locale; a gap in the table would
// surface as the raw key leaking into a response.
func TestResolveCoversAllKeys(t *testing.T) {
	keys := []Key{
		MsgSubscriptionAdded, MsgSubscriptionRemoved,
		MsgItemAddedToCart, MsgItemRemovedFromCart, MsgCartCleared,
		MsgOrderPlaced, MsgPlanNotComplete, MsgDeliveryFree,
		MsgBillingWeekly, MsgBillingMonthly, MsgBillingYearly,
		MsgOrderStatusPending, MsgOrderStatusPreparing, MsgOrderStatusOnTheWay,
		MsgOrderStatusDelivered, MsgOrderStatusCancelled,
	}

	for _, key := range keys {
		for _, locale := range []Locale{LocaleArabic, LocaleEnglish} {
			got := Resolve(key, locale)
			assert.NotEmpty(t, got)
			assert.NotEqual(t, string(key), got, "key %q has no entry for locale %q", key, locale)
		}
	}
}

func TestResolveUnknownKey(t *testing.T) {
	assert.Equal(t, "no_such_key", Resolve(Key("no_such_key"), LocaleEnglish))
}
