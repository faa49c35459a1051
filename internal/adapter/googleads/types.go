package googleads

// Wire types for the Google Ads REST mutate endpoints. int64 fields are
// encoded as JSON strings, as the API expects.

type mutateRequest struct {
	Operations []operation `json:"operations"`
}

type operation struct {
	Create any `json:"create"`
}

type mutateResponse struct {
	Results []struct {
		ResourceName string `json:"resourceName"`
	} `json:"results"`
}

type campaignBudget struct {
	Name             string `json:"name"`
	AmountMicros     int64  `json:"amountMicros,string"`
	DeliveryMethod   string `json:"deliveryMethod"`
	ExplicitlyShared bool   `json:"explicitlyShared"`
}

type networkSettings struct {
	TargetGoogleSearch         bool `json:"targetGoogleSearch"`
	TargetSearchNetwork        bool `json:"targetSearchNetwork"`
	TargetContentNetwork       bool `json:"targetContentNetwork"`
	TargetPartnerSearchNetwork bool `json:"targetPartnerSearchNetwork"`
}

type campaign struct {
	Name                   string          `json:"name"`
	AdvertisingChannelType string          `json:"advertisingChannelType"`
	Status                 string          `json:"status"`
	CampaignBudget         string          `json:"campaignBudget"`
	ManualCpc              struct{}        `json:"manualCpc"`
	NetworkSettings        networkSettings `json:"networkSettings"`
}

type locationInfo struct {
	GeoTargetConstant string `json:"geoTargetConstant"`
}

type languageInfo struct {
	LanguageConstant string `json:"languageConstant"`
}

type deviceInfo struct {
	Type string `json:"type"`
}

type campaignCriterion struct {
	Campaign    string        `json:"campaign"`
	Location    *locationInfo `json:"location,omitempty"`
	Language    *languageInfo `json:"language,omitempty"`
	Device      *deviceInfo   `json:"device,omitempty"`
	BidModifier *float64      `json:"bidModifier,omitempty"`
}

type adGroup struct {
	Name         string `json:"name"`
	Campaign     string `json:"campaign"`
	Status       string `json:"status"`
	Type         string `json:"type"`
	CpcBidMicros int64  `json:"cpcBidMicros,string"`
}

type adTextAsset struct {
	Text string `json:"text"`
}

type responsiveSearchAd struct {
	Headlines    []adTextAsset `json:"headlines"`
	Descriptions []adTextAsset `json:"descriptions"`
	Path1        string        `json:"path1,omitempty"`
	Path2        string        `json:"path2,omitempty"`
}

type ad struct {
	FinalURLs          []string           `json:"finalUrls"`
	ResponsiveSearchAd responsiveSearchAd `json:"responsiveSearchAd"`
}

type adGroupAd struct {
	AdGroup string `json:"adGroup"`
	Status  string `json:"status"`
	Ad      ad     `json:"ad"`
}

type keywordInfo struct {
	Text      string `json:"text"`
	MatchType string `json:"matchType"`
}

type adGroupCriterion struct {
	AdGroup string      `json:"adGroup"`
	Status  string      `json:"status"`
	Keyword keywordInfo `json:"keyword"`
}

// errorResponse is the google.rpc.Status envelope returned on failures.
type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
		Details []struct {
			Errors []struct {
				Message string `json:"message"`
			} `json:"errors"`
		} `json:"details"`
	} `json:"error"`
}
