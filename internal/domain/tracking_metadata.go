package domain

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/tidwall/gjson"
)

// TrackingType identifies one of the supported tracking rule kinds
type TrackingType string

const (
	TrackingTypePageView         TrackingType = "PAGE_VIEW"
	TrackingTypeClick            TrackingType = "CLICK"
	TrackingTypeLinkClick        TrackingType = "LINK_CLICK"
	TrackingTypeButtonClick      TrackingType = "BUTTON_CLICK"
	TrackingTypeOutboundLink     TrackingType = "OUTBOUND_LINK"
	TrackingTypeFormSubmit       TrackingType = "FORM_SUBMIT"
	TrackingTypeFormStart        TrackingType = "FORM_START"
	TrackingTypeSignup           TrackingType = "SIGNUP"
	TrackingTypeLogin            TrackingType = "LOGIN"
	TrackingTypeContactForm      TrackingType = "CONTACT_FORM"
	TrackingTypePhoneClick       TrackingType = "PHONE_CLICK"
	TrackingTypeEmailClick       TrackingType = "EMAIL_CLICK"
	TrackingTypeDownload         TrackingType = "DOWNLOAD"
	TrackingTypeFileDownload     TrackingType = "FILE_DOWNLOAD"
	TrackingTypeScrollDepth      TrackingType = "SCROLL_DEPTH"
	TrackingTypeTimeOnPage       TrackingType = "TIME_ON_PAGE"
	TrackingTypeVideoPlay        TrackingType = "VIDEO_PLAY"
	TrackingTypeVideoProgress    TrackingType = "VIDEO_PROGRESS"
	TrackingTypeVideoComplete    TrackingType = "VIDEO_COMPLETE"
	TrackingTypePurchase         TrackingType = "PURCHASE"
	TrackingTypeAddToCart        TrackingType = "ADD_TO_CART"
	TrackingTypeRemoveFromCart   TrackingType = "REMOVE_FROM_CART"
	TrackingTypeBeginCheckout    TrackingType = "BEGIN_CHECKOUT"
	TrackingTypeViewItem         TrackingType = "VIEW_ITEM"
	TrackingTypeViewCart         TrackingType = "VIEW_CART"
	TrackingTypeSearch           TrackingType = "SEARCH"
	TrackingTypeShare            TrackingType = "SHARE"
	TrackingTypeNewsletterSignup TrackingType = "NEWSLETTER_SIGNUP"
	TrackingTypeBooking          TrackingType = "BOOKING"
	TrackingTypeCustomEvent      TrackingType = "CUSTOM_EVENT"
)

// TrackingTypeMetadata drives form generation and validation for one
// tracking type. RequiredConfigFields are dot-paths into the free-form
// config object.
type TrackingTypeMetadata struct {
	Label                string   `json:"label"`
	Category             string   `json:"category"`
	Icon                 string   `json:"icon"`
	RequiresSelector     bool     `json:"requires_selector"`
	RequiresURLPattern   bool     `json:"requires_url_pattern"`
	RequiredConfigFields []string `json:"required_config_fields"`
	OptionalConfigFields []string `json:"optional_config_fields"`
	DefaultEventName     string   `json:"default_event_name"`
	SupportsValue        bool     `json:"supports_value"`
}

// trackingTypeMetadata is a static lookup table, not a computed engine:
// validators key into the map and read the required-field list.
var trackingTypeMetadata = map[TrackingType]TrackingTypeMetadata{
	TrackingTypePageView: {
		Label: "Page view", Category: "page", Icon: "eye",
		RequiresURLPattern: true,
		DefaultEventName:   "page_view",
	},
	TrackingTypeClick: {
		Label: "Element click", Category: "click", Icon: "cursor-click",
		RequiresSelector: true,
		DefaultEventName: "click",
	},
	TrackingTypeLinkClick: {
		Label: "Link click", Category: "click", Icon: "link",
		RequiresSelector: true,
		DefaultEventName: "click",
	},
	TrackingTypeButtonClick: {
		Label: "Button click", Category: "click", Icon: "hand-pointer",
		RequiresSelector: true,
		DefaultEventName: "click",
	},
	TrackingTypeOutboundLink: {
		Label: "Outbound link", Category: "click", Icon: "external-link",
		OptionalConfigFields: []string{"excludedDomains"},
		DefaultEventName:     "outbound_click",
	},
	TrackingTypeFormSubmit: {
		Label: "Form submission", Category: "form", Icon: "clipboard-check",
		RequiresSelector: true,
		DefaultEventName: "form_submit",
	},
	TrackingTypeFormStart: {
		Label: "Form start", Category: "form", Icon: "clipboard",
		RequiresSelector: true,
		DefaultEventName: "form_start",
	},
	TrackingTypeSignup: {
		Label: "Sign up", Category: "lead", Icon: "user-plus",
		RequiresURLPattern: true,
		DefaultEventName:   "sign_up",
	},
	TrackingTypeLogin: {
		Label: "Login", Category: "lead", Icon: "login",
		RequiresURLPattern: true,
		DefaultEventName:   "login",
	},
	TrackingTypeContactForm: {
		Label: "Contact form", Category: "lead", Icon: "mail",
		RequiresSelector: true,
		DefaultEventName: "generate_lead",
	},
	TrackingTypePhoneClick: {
		Label: "Phone click", Category: "lead", Icon: "phone",
		OptionalConfigFields: []string{"phoneNumber"},
		DefaultEventName:     "phone_call",
	},
	TrackingTypeEmailClick: {
		Label: "Email click", Category: "lead", Icon: "at-symbol",
		OptionalConfigFields: []string{"emailAddress"},
		DefaultEventName:     "email_click",
	},
	TrackingTypeDownload: {
		Label: "Download click", Category: "engagement", Icon: "download",
		RequiresSelector: true,
		DefaultEventName: "file_download",
	},
	TrackingTypeFileDownload: {
		Label: "File download", Category: "engagement", Icon: "document-download",
		RequiredConfigFields: []string{"fileExtensions"},
		DefaultEventName:     "file_download",
	},
	TrackingTypeScrollDepth: {
		Label: "Scroll depth", Category: "engagement", Icon: "arrow-down",
		RequiredConfigFields: []string{"scrollPercentage"},
		DefaultEventName:     "scroll",
	},
	TrackingTypeTimeOnPage: {
		Label: "Time on page", Category: "engagement", Icon: "clock",
		RequiredConfigFields: []string{"seconds"},
		DefaultEventName:     "user_engagement",
	},
	TrackingTypeVideoPlay: {
		Label: "Video play", Category: "video", Icon: "play",
		RequiresSelector: true,
		DefaultEventName: "video_start",
	},
	TrackingTypeVideoProgress: {
		Label: "Video progress", Category: "video", Icon: "fast-forward",
		RequiredConfigFields: []string{"progressPercentage"},
		DefaultEventName:     "video_progress",
	},
	TrackingTypeVideoComplete: {
		Label: "Video complete", Category: "video", Icon: "check-circle",
		RequiresSelector: true,
		DefaultEventName: "video_complete",
	},
	TrackingTypePurchase: {
		Label: "Purchase", Category: "ecommerce", Icon: "shopping-bag",
		RequiresURLPattern: true,
		DefaultEventName:   "purchase",
		SupportsValue:      true,
	},
	TrackingTypeAddToCart: {
		Label: "Add to cart", Category: "ecommerce", Icon: "shopping-cart",
		RequiresSelector: true,
		DefaultEventName: "add_to_cart",
		SupportsValue:    true,
	},
	TrackingTypeRemoveFromCart: {
		Label: "Remove from cart", Category: "ecommerce", Icon: "trash",
		RequiresSelector: true,
		DefaultEventName: "remove_from_cart",
		SupportsValue:    true,
	},
	TrackingTypeBeginCheckout: {
		Label: "Begin checkout", Category: "ecommerce", Icon: "credit-card",
		RequiresURLPattern: true,
		DefaultEventName:   "begin_checkout",
		SupportsValue:      true,
	},
	TrackingTypeViewItem: {
		Label: "View item", Category: "ecommerce", Icon: "eye",
		RequiresURLPattern: true,
		DefaultEventName:   "view_item",
		SupportsValue:      true,
	},
	TrackingTypeViewCart: {
		Label: "View cart", Category: "ecommerce", Icon: "shopping-cart",
		RequiresURLPattern: true,
		DefaultEventName:   "view_cart",
		SupportsValue:      true,
	},
	TrackingTypeSearch: {
		Label: "Site search", Category: "engagement", Icon: "search",
		RequiredConfigFields: []string{"queryParam"},
		DefaultEventName:     "search",
	},
	TrackingTypeShare: {
		Label: "Share", Category: "engagement", Icon: "share",
		RequiresSelector: true,
		DefaultEventName: "share",
	},
	TrackingTypeNewsletterSignup: {
		Label: "Newsletter signup", Category: "lead", Icon: "newspaper",
		RequiresSelector: true,
		DefaultEventName: "newsletter_signup",
	},
	TrackingTypeBooking: {
		Label: "Booking", Category: "lead", Icon: "calendar",
		RequiresURLPattern: true,
		DefaultEventName:   "booking",
		SupportsValue:      true,
	},
	TrackingTypeCustomEvent: {
		Label: "Custom event", Category: "custom", Icon: "sparkles",
		RequiredConfigFields: []string{"eventName"},
		OptionalConfigFields: []string{"parameters"},
		SupportsValue:        true,
	},
}

// GetTrackingTypeMetadata returns the metadata for a tracking type
func GetTrackingTypeMetadata(t TrackingType) (TrackingTypeMetadata, bool) {
	metadata, ok := trackingTypeMetadata[t]
	return metadata, ok
}

// TrackingTypeInfo pairs a type with its metadata for the taxonomy endpoint
type TrackingTypeInfo struct {
	Type     TrackingType         `json:"type"`
	Metadata TrackingTypeMetadata `json:"metadata"`
}

// ListTrackingTypes returns the full taxonomy in stable order
func ListTrackingTypes() []TrackingTypeInfo {
	infos := make([]TrackingTypeInfo, 0, len(trackingTypeMetadata))
	for t, metadata := range trackingTypeMetadata {
		infos = append(infos, TrackingTypeInfo{Type: t, Metadata: metadata})
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Metadata.Category != infos[j].Metadata.Category {
			return infos[i].Metadata.Category < infos[j].Metadata.Category
		}
		return infos[i].Type < infos[j].Type
	})
	return infos
}

// ValidateTrackingFields checks the type-specific requirements of a
// tracking rule: which of selector / url_pattern / config fields must
// be present is decided by the taxonomy entry for the type.
func ValidateTrackingFields(t TrackingType, selector, urlPattern string, config map[string]interface{}) error {
	metadata, ok := trackingTypeMetadata[t]
	if !ok {
		return fmt.Errorf("unknown tracking type: %s", t)
	}

	if metadata.RequiresSelector && selector == "" {
		return fmt.Errorf("tracking type %s requires a selector", t)
	}
	if metadata.RequiresURLPattern && urlPattern == "" {
		return fmt.Errorf("tracking type %s requires a url_pattern", t)
	}

	if len(metadata.RequiredConfigFields) == 0 {
		return nil
	}

	configJSON, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	for _, path := range metadata.RequiredConfigFields {
		if !gjson.GetBytes(configJSON, path).Exists() {
			return fmt.Errorf("tracking type %s requires config.%s", t, path)
		}
	}

	return nil
}
