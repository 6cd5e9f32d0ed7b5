package ebay

import "encoding/json"

// Amount is eBay's money representation.
type Amount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

// InventoryItemInput describes the product side of a listing.
type InventoryItemInput struct {
	Title       string
	Description string
	Condition   string
	ImageURLs   []string
	Quantity    int
	Aspects     map[string]string
}

type inventoryItem struct {
	Availability inventoryAvailability `json:"availability"`
	Condition    string                `json:"condition,omitempty"`
	Product      inventoryProduct      `json:"product"`
}

type inventoryAvailability struct {
	ShipToLocationAvailability struct {
		Quantity int `json:"quantity"`
	} `json:"shipToLocationAvailability"`
}

type inventoryProduct struct {
	Title       string              `json:"title"`
	Description string              `json:"description,omitempty"`
	ImageURLs   []string            `json:"imageUrls,omitempty"`
	Aspects     map[string][]string `json:"aspects,omitempty"`
}

// ListingPolicies groups the business policy ids an offer references.
type ListingPolicies struct {
	PaymentPolicyID     string `json:"paymentPolicyId"`
	FulfillmentPolicyID string `json:"fulfillmentPolicyId"`
	ReturnPolicyID      string `json:"returnPolicyId"`
}

// OfferInput describes a fixed-price offer for an existing inventory item.
type OfferInput struct {
	SKU                 string
	MarketplaceID       string
	CategoryID          string
	Description         string
	Price               string
	Currency            string
	Quantity            int
	MerchantLocationKey string
	Policies            ListingPolicies
}

type offerRequest struct {
	SKU                 string          `json:"sku"`
	MarketplaceID       string          `json:"marketplaceId"`
	Format              string          `json:"format"`
	AvailableQuantity   int             `json:"availableQuantity"`
	CategoryID          string          `json:"categoryId"`
	ListingDescription  string          `json:"listingDescription,omitempty"`
	ListingPolicies     ListingPolicies `json:"listingPolicies"`
	PricingSummary      pricingSummary  `json:"pricingSummary"`
	MerchantLocationKey string          `json:"merchantLocationKey"`
}

type pricingSummary struct {
	Price Amount `json:"price"`
}

// PriceQuantity is a partial update to a live offer. Nil fields are left
// unchanged.
type PriceQuantity struct {
	Price    *string
	Currency string
	Quantity *int
}

// OfferPage is one page of the seller's offers. Offers are kept raw so
// callers can tolerate partial or unexpected shapes.
type OfferPage struct {
	Offers []json.RawMessage `json:"offers"`
	Total  int               `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
	Next   string            `json:"next"`
}

// Policy is a business policy summary.
type Policy struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Policies holds the seller's business policies for one marketplace.
// Errors maps a category ("payment", "fulfillment", "return") to the
// message of a failed lookup.
type Policies struct {
	Payment     []Policy          `json:"payment"`
	Fulfillment []Policy          `json:"fulfillment"`
	Return      []Policy          `json:"return"`
	Errors      map[string]string `json:"errors,omitempty"`
}

// InventoryLocation is a merchant location summary.
type InventoryLocation struct {
	MerchantLocationKey string `json:"merchantLocationKey"`
	Name                string `json:"name,omitempty"`
	Status              string `json:"merchantLocationStatus,omitempty"`
	Location            struct {
		Address struct {
			Country    string `json:"country,omitempty"`
			PostalCode string `json:"postalCode,omitempty"`
			City       string `json:"city,omitempty"`
		} `json:"address"`
	} `json:"location"`
}

// LocationInput is the minimal data eBay needs for a ship-from location.
type LocationInput struct {
	Country    string
	PostalCode string
	Phone      string
}

// CategorySuggestion is a taxonomy suggestion for a listing title.
type CategorySuggestion struct {
	CategoryID   string `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}

// Identity is the eBay user behind a token.
type Identity struct {
	UserID                    string `json:"userId"`
	Username                  string `json:"username"`
	AccountType               string `json:"accountType,omitempty"`
	RegistrationMarketplaceID string `json:"registrationMarketplaceId,omitempty"`
}

// Account is the seller's privilege record. Raw holds the full response.
type Account struct {
	AccountID                   string          `json:"accountId,omitempty"`
	Username                    string          `json:"username,omitempty"`
	SellerRegistrationCompleted bool            `json:"sellerRegistrationCompleted"`
	Raw                         json.RawMessage `json:"-"`
}

// Program is a seller program the account has opted into.
type Program struct {
	ProgramType string `json:"programType"`
}

// ProgramSellingPolicyManagement enables business policies on an account.
const ProgramSellingPolicyManagement = "SELLING_POLICY_MANAGEMENT"
