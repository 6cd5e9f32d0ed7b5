package ebay

// Environment selects the eBay sandbox or production hosts.
type Environment string

// Supported environments.
const (
	Sandbox    Environment = "sandbox"
	Production Environment = "production"
)

// Endpoints are the base URLs for one environment.
type Endpoints struct {
	AuthURL  string
	TokenURL string
	APIURL   string
}

// EndpointsFor returns the endpoints for env. Anything other than
// production resolves to the sandbox.
func EndpointsFor(env Environment) Endpoints {
	if env == Production {
		return Endpoints{
			AuthURL:  "https://auth.ebay.com/oauth2/authorize",
			TokenURL: "https://api.ebay.com/identity/v1/oauth2/token", //nolint:gosec // not a credential
			APIURL:   "https://api.ebay.com",
		}
	}
	return Endpoints{
		AuthURL:  "https://auth.sandbox.ebay.com/oauth2/authorize",
		TokenURL: "https://api.sandbox.ebay.com/identity/v1/oauth2/token", //nolint:gosec // not a credential
		APIURL:   "https://api.sandbox.ebay.com",
	}
}

// SellerScopes are requested on authorization and on every refresh.
var SellerScopes = []string{
	"https://api.ebay.com/oauth/api_scope/sell.inventory",
	"https://api.ebay.com/oauth/api_scope/sell.marketing.readonly",
	"https://api.ebay.com/oauth/api_scope/sell.account",
	"https://api.ebay.com/oauth/api_scope/sell.account.readonly",
	"https://api.ebay.com/oauth/api_scope/sell.stores.readonly",
	"https://api.ebay.com/oauth/api_scope/commerce.identity.readonly",
	"https://api.ebay.com/oauth/api_scope/commerce.taxonomy.readonly",
}
