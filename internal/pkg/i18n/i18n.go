// internal/pkg/i18n/i18n.go
package i18n

// Locale identifies a supported display language
type Locale string

const (
	LocaleArabic  Locale = "ar"
	LocaleEnglish Locale = "en"
)

// DefaultLocale is used when a request carries no locale hint
const DefaultLocale = LocaleArabic

// Valid reports whether the locale is one of the supported values
func (l Locale) Valid() bool {
	return l == LocaleArabic || l == LocaleEnglish
}

// ParseLocale normalizes a raw locale string, falling back to the default
func ParseLocale(raw string) Locale {
	l := Locale(raw)
	if !l.Valid() {
		return DefaultLocale
	}
	return l
}

// Text holds the Arabic and English renderings of one display string
type Text struct {
	AR string `json:"ar"`
	EN string `json:"en"`
}

// In resolves the text for the given locale
func (t Text) In(locale Locale) string {
	if locale == LocaleEnglish {
		return t.EN
	}
	return t.AR
}

// Key is a closed enumeration of user-facing message identifiers.
// Every key must have an entry for every locale in the messages table.
type Key string

const (
	MsgSubscriptionAdded    Key = "subscription_added"
	MsgSubscriptionRemoved  Key = "subscription_removed"
	MsgItemAddedToCart      Key = "item_added_to_cart"
	MsgItemRemovedFromCart  Key = "item_removed_from_cart"
	MsgCartCleared          Key = "cart_cleared"
	MsgOrderPlaced          Key = "order_placed"
	MsgPlanNotComplete      Key = "plan_not_complete"
	MsgDeliveryFree         Key = "delivery_free"
	MsgBillingWeekly        Key = "billing_weekly"
	MsgBillingMonthly       Key = "billing_monthly"
	MsgBillingYearly        Key = "billing_yearly"
	MsgOrderStatusPending   Key = "order_status_pending"
	MsgOrderStatusPreparing Key = "order_status_preparing"
	MsgOrderStatusOnTheWay  Key = "order_status_on_the_way"
	MsgOrderStatusDelivered Key = "order_status_delivered"
	MsgOrderStatusCancelled Key = "order_status_cancelled"
)

var messages = map[Key]Text{
	MsgSubscriptionAdded:    {AR: "تمت إضافة الاشتراك إلى السلة", EN: "Subscription added to cart"},
	MsgSubscriptionRemoved:  {AR: "تمت إزالة الاشتراك من السلة", EN: "Subscription removed from cart"},
	MsgItemAddedToCart:      {AR: "تمت إضافة الوجبة إلى السلة", EN: "Meal added to cart"},
	MsgItemRemovedFromCart:  {AR: "تمت إزالة الوجبة من السلة", EN: "Meal removed from cart"},
	MsgCartCleared:          {AR: "تم إفراغ السلة", EN: "Cart cleared"},
	MsgOrderPlaced:          {AR: "تم تقديم طلبك بنجاح", EN: "Your order has been placed"},
	MsgPlanNotComplete:      {AR: "يرجى إكمال اختيار الوجبات لجميع الأيام", EN: "Please complete meal selection for every day"},
	MsgDeliveryFree:         {AR: "مجاني", EN: "Free"},
	MsgBillingWeekly:        {AR: "أسبوعي", EN: "Weekly"},
	MsgBillingMonthly:       {AR: "شهري", EN: "Monthly"},
	MsgBillingYearly:        {AR: "سنوي", EN: "Yearly"},
	MsgOrderStatusPending:   {AR: "قيد الانتظار", EN: "Pending"},
	MsgOrderStatusPreparing: {AR: "قيد التحضير", EN: "Preparing"},
	MsgOrderStatusOnTheWay:  {AR: "في الطريق", EN: "Out for delivery"},
	MsgOrderStatusDelivered: {AR: "تم التوصيل", EN: "Delivered"},
	MsgOrderStatusCancelled: {AR: "ملغي", EN: "Cancelled"},
}

// Resolve returns the display string for a message key in the given locale.
// Unknown keys resolve to the key itself so a miss is visible, not a panic.
func Resolve(key Key, locale Locale) string {
	text, ok := messages[key]
	if !ok {
		return string(key)
	}
	return text.In(locale)
}
