package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTrackingFields(t *testing.T) {
	testCases := []struct {
		name        string
		trackingType TrackingType
		selector    string
		urlPattern  string
		config      map[string]interface{}
		wantErr     string
	}{
		{
			name:         "click requires selector",
			trackingType: TrackingTypeClick,
			wantErr:      "requires a selector",
		},
		{
			name:         "click with selector",
			trackingType: TrackingTypeClick,
			selector:     "#buy-now",
		},
		{
			name:         "page view requires url pattern",
			trackingType: TrackingTypePageView,
			wantErr:      "requires a url_pattern",
		},
		{
			name:         "scroll depth requires scrollPercentage",
			trackingType: TrackingTypeScrollDepth,
			config:       map[string]interface{}{},
			wantErr:      "requires config.scrollPercentage",
		},
		{
			name:         "scroll depth with nil config",
			trackingType: TrackingTypeScrollDepth,
			wantErr:      "requires config.scrollPercentage",
		},
		{
			name:         "scroll depth with scrollPercentage",
			trackingType: TrackingTypeScrollDepth,
			config:       map[string]interface{}{"scrollPercentage": 75},
		},
		{
			name:         "time on page requires seconds",
			trackingType: TrackingTypeTimeOnPage,
			config:       map[string]interface{}{"scrollPercentage": 75},
			wantErr:      "requires config.seconds",
		},
		{
			name:         "custom event requires eventName",
			trackingType: TrackingTypeCustomEvent,
			wantErr:      "requires config.eventName",
		},
		{
			name:         "custom event with eventName",
			trackingType: TrackingTypeCustomEvent,
			config:       map[string]interface{}{"eventName": "demo_requested"},
		},
		{
			name:         "purchase requires url pattern",
			trackingType: TrackingTypePurchase,
			selector:     "#checkout",
			wantErr:      "requires a url_pattern",
		},
		{
			name:         "purchase with url pattern",
			trackingType: TrackingTypePurchase,
			urlPattern:   "/order/confirmation",
		},
		{
			name:         "file download requires fileExtensions",
			trackingType: TrackingTypeFileDownload,
			wantErr:      "requires config.fileExtensions",
		},
		{
			name:         "unknown type",
			trackingType: TrackingType("TELEPORT"),
			wantErr:      "unknown tracking type",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTrackingFields(tc.trackingType, tc.selector, tc.urlPattern, tc.config)
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}

func TestListTrackingTypes(t *testing.T) {
	infos := ListTrackingTypes()
	require.Len(t, infos, 30)

	// Stable order: category ascending, then type ascending within it
	for i := 1; i < len(infos); i++ {
		prev, curr := infos[i-1], infos[i]
		if prev.Metadata.Category == curr.Metadata.Category {
			assert.Less(t, string(prev.Type), string(curr.Type))
		} else {
			assert.Less(t, prev.Metadata.Category, curr.Metadata.Category)
		}
	}

	seen := make(map[TrackingType]bool, len(infos))
	for _, info := range infos {
		assert.False(t, seen[info.Type], "duplicate type %s", info.Type)
		seen[info.Type] = true
		assert.NotEmpty(t, info.Metadata.Label)
		assert.NotEmpty(t, info.Metadata.Category)
	}
}

func TestCreateTrackingRequest_Validate(t *testing.T) {
	t.Run("applies taxonomy default event name", func(t *testing.T) {
		req := &CreateTrackingRequest{
			TenantID:     "tenant1",
			CustomerID:   "c1",
			Name:         "Checkout purchase",
			Type:         TrackingTypePurchase,
			URLPattern:   "/order/confirmation",
			Destinations: []TrackingDestination{DestinationGA4},
		}
		tracking, err := req.Validate()
		require.NoError(t, err)
		assert.Equal(t, "purchase", tracking.GA4EventName)
		assert.Equal(t, TrackingStatusPending, tracking.Status)
	})

	t.Run("explicit event name wins", func(t *testing.T) {
		req := &CreateTrackingRequest{
			TenantID:     "tenant1",
			CustomerID:   "c1",
			Name:         "Checkout purchase",
			Type:         TrackingTypePurchase,
			URLPattern:   "/order/confirmation",
			GA4EventName: "order_placed",
			Destinations: []TrackingDestination{DestinationBoth},
		}
		tracking, err := req.Validate()
		require.NoError(t, err)
		assert.Equal(t, "order_placed", tracking.GA4EventName)
	})

	t.Run("taxonomy violations surface as validation errors", func(t *testing.T) {
		req := &CreateTrackingRequest{
			TenantID:     "tenant1",
			CustomerID:   "c1",
			Name:         "Scroll",
			Type:         TrackingTypeScrollDepth,
			Destinations: []TrackingDestination{DestinationGA4},
		}
		_, err := req.Validate()
		require.Error(t, err)
		var validationErr ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("at least one destination required", func(t *testing.T) {
		req := &CreateTrackingRequest{
			TenantID:   "tenant1",
			CustomerID: "c1",
			Name:       "Click",
			Type:       TrackingTypeClick,
			Selector:   "#cta",
		}
		_, err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "destination")
	})

	t.Run("negative conversion value rejected", func(t *testing.T) {
		value := -5.0
		req := &CreateTrackingRequest{
			TenantID:           "tenant1",
			CustomerID:         "c1",
			Name:               "Purchase",
			Type:               TrackingTypePurchase,
			URLPattern:         "/done",
			Destinations:       []TrackingDestination{DestinationGoogleAds},
			AdsConversionValue: &value,
		}
		_, err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ads_conversion_value")
	})
}

func TestUpdateTrackingRequest_Apply(t *testing.T) {
	tracking := &Tracking{
		TenantID:     "tenant1",
		CustomerID:   "c1",
		Name:         "Old name",
		Type:         TrackingTypeClick,
		Selector:     "#old",
		Destinations: []TrackingDestination{DestinationGA4},
		GA4EventName: "click",
	}

	name := "New name"
	selector := "#new"
	req := &UpdateTrackingRequest{
		TenantID: "tenant1",
		ID:       "t1",
		Name:     &name,
		Selector: &selector,
	}
	req.Apply(tracking)

	assert.Equal(t, "New name", tracking.Name)
	assert.Equal(t, "#new", tracking.Selector)
	assert.Equal(t, "click", tracking.GA4EventName)
	assert.Equal(t, []TrackingDestination{DestinationGA4}, tracking.Destinations)
}
