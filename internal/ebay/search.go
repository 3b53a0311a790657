package ebay

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// defaultSearchLimit bounds item-summary search requests unless the
// client is configured otherwise.
const defaultSearchLimit = 50

// marketplaceIDs maps short region codes to Browse API marketplace identifiers.
// Unrecognized codes fall back to defaultMarketplaceID, not an error.
var marketplaceIDs = map[string]string{
	"US": "EBAY_US",
	"GB": "EBAY_GB",
	"CA": "EBAY_CA",
	"AU": "EBAY_AU",
	"DE": "EBAY_DE",
	"FR": "EBAY_FR",
	"ES": "EBAY_ES",
	"IT": "EBAY_IT",
	"PT": "EBAY_PT",
}

const defaultMarketplaceID = "EBAY_GB"

// MarketplaceID resolves a region code to the upstream marketplace identifier.
func MarketplaceID(code string) string {
	if id, ok := marketplaceIDs[code]; ok {
		return id
	}
	return defaultMarketplaceID
}

// Money is a price amount as the Browse API ships it. The value arrives as
// a JSON string in current responses but was a bare number in older ones,
// so it decodes from either shape.
type Money struct {
	Value    FlexNumber `json:"value"`
	Currency string     `json:"currency"`
}

// Image is a single image reference.
type Image struct {
	ImageURL string `json:"imageUrl"`
}

// ItemSummary mirrors one record of the item-summary search response.
// Field shapes vary between API versions; everything optional is a pointer
// or zero-value so absence never breaks decoding.
type ItemSummary struct {
	ItemID          string     `json:"itemId"`
	Title           string     `json:"title"`
	Price           *Money     `json:"price"`
	CurrentBidPrice *Money     `json:"currentBidPrice"`
	SoldPrice       FlexNumber `json:"soldPrice"`
	Condition       string     `json:"condition"`
	ConditionID     string     `json:"conditionId"`
	Image           *Image     `json:"image"`
	ThumbnailImages []Image    `json:"thumbnailImages"`
	ItemWebURL      string     `json:"itemWebUrl"`
	ItemSoldDate    string     `json:"itemSoldDate"` // ISO date, sold searches only
}

type searchResponse struct {
	Total         int           `json:"total"`
	ItemSummaries []ItemSummary `json:"itemSummaries"`
}

// FlexNumber decodes a JSON number that may be quoted or bare.
// Failed parses decode to 0 rather than erroring; 0 is the documented
// "unparsed" sentinel downstream.
type FlexNumber float64

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = FlexNumber(v)
	return nil
}

// searchFilter builds the Browse API filter expression: fixed-price only,
// sold/completed when requested, and an optional condition id.
func searchFilter(sold bool, condition string) string {
	filter := "buyingOptions:{FIXED_PRICE}"
	if sold {
		filter += ",soldItemsOnly:true"
	}
	if condition != "" && condition != "all" {
		filter += ",conditionIds:{" + condition + "}"
	}
	return filter
}

// SearchSold fetches sold/completed fixed-price listings for a query.
// condition is "all" or a numeric condition code.
func (c *Client) SearchSold(ctx context.Context, query, marketplace, condition string) ([]ItemSummary, error) {
	return c.search(ctx, query, marketplace, condition, true)
}

// SearchActive fetches currently-for-sale fixed-price listings for a query.
func (c *Client) SearchActive(ctx context.Context, query, marketplace, condition string) ([]ItemSummary, error) {
	return c.search(ctx, query, marketplace, condition, false)
}

func (c *Client) search(ctx context.Context, query, marketplace, condition string, sold bool) ([]ItemSummary, error) {
	token, err := c.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/buy/browse/v1/item_summary/search?q=%s&filter=%s&limit=%d",
		c.base,
		url.QueryEscape(query),
		url.QueryEscape(searchFilter(sold, condition)),
		c.limit,
	)

	var result searchResponse
	if err := c.getJSON(ctx, u, MarketplaceID(marketplace), token, &result); err != nil {
		return nil, err
	}
	return result.ItemSummaries, nil
}
