package ebay

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
)

const accountPath = "/sell/account/v1"

type policyLookup struct {
	category string
	path     string
	decode   func([]byte) ([]Policy, error)
}

var policyLookups = []policyLookup{
	{category: "payment", path: "/payment_policy", decode: decodePolicies("paymentPolicies", "paymentPolicyId")},
	{category: "fulfillment", path: "/fulfillment_policy", decode: decodePolicies("fulfillmentPolicies", "fulfillmentPolicyId")},
	{category: "return", path: "/return_policy", decode: decodePolicies("returnPolicies", "returnPolicyId")},
}

func decodePolicies(listKey, idKey string) func([]byte) ([]Policy, error) {
	return func(body []byte) ([]Policy, error) {
		var envelope map[string]json.RawMessage
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, err
		}
		var items []map[string]any
		if raw, ok := envelope[listKey]; ok {
			if err := json.Unmarshal(raw, &items); err != nil {
				return nil, err
			}
		}
		out := make([]Policy, 0, len(items))
		for _, it := range items {
			id, _ := it[idKey].(string)
			if id == "" {
				continue
			}
			name, _ := it["name"].(string)
			out = append(out, Policy{ID: id, Name: name})
		}
		return out, nil
	}
}

// GetPolicies fetches payment, fulfillment and return policies
// concurrently. A failed category yields an empty list and an entry in
// Errors; GetPolicies itself does not fail.
func (c *SellClient) GetPolicies(ctx context.Context, token, marketplaceID string) (*Policies, error) {
	results := make([][]Policy, len(policyLookups))
	errs := make([]error, len(policyLookups))

	var wg sync.WaitGroup
	for i, lk := range policyLookups {
		wg.Add(1)
		go func() {
			defer wg.Done()
			path := accountPath + lk.path + "?marketplace_id=" + url.QueryEscape(marketplaceID)
			var raw json.RawMessage
			if err := c.call(ctx, "get_"+lk.category+"_policies", http.MethodGet, path, token, nil, &raw); err != nil {
				errs[i] = err
				return
			}
			if len(raw) == 0 {
				return
			}
			results[i], errs[i] = lk.decode(raw)
		}()
	}
	wg.Wait()

	p := &Policies{
		Payment:     orEmpty(results[0]),
		Fulfillment: orEmpty(results[1]),
		Return:      orEmpty(results[2]),
	}
	for i, err := range errs {
		if err == nil {
			continue
		}
		if p.Errors == nil {
			p.Errors = make(map[string]string)
		}
		p.Errors[policyLookups[i].category] = err.Error()
	}
	return p, nil
}

func orEmpty(p []Policy) []Policy {
	if p == nil {
		return []Policy{}
	}
	return p
}

// GetIdentity returns the eBay user that owns token.
func (c *SellClient) GetIdentity(ctx context.Context, token string) (*Identity, error) {
	var id Identity
	if err := c.call(ctx, "get_identity", http.MethodGet, "/commerce/identity/v1/user/", token, nil, &id); err != nil {
		return nil, fmt.Errorf("fetching identity: %w", err)
	}
	return &id, nil
}

// GetAccount returns the seller's privilege record.
func (c *SellClient) GetAccount(ctx context.Context, token string) (*Account, error) {
	var raw json.RawMessage
	if err := c.call(ctx, "get_account", http.MethodGet, accountPath+"/privilege", token, nil, &raw); err != nil {
		return nil, fmt.Errorf("fetching account: %w", err)
	}
	acct := &Account{Raw: raw}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, acct); err != nil {
			return nil, fmt.Errorf("%w: decoding account: %v", ErrMalformedResponse, err)
		}
	}
	return acct, nil
}

// OptInToProgram requests enrollment in a seller program.
func (c *SellClient) OptInToProgram(ctx context.Context, token, programType string) error {
	body := Program{ProgramType: programType}
	if err := c.call(ctx, "opt_in", http.MethodPost, accountPath+"/program/opt_in", token, body, nil); err != nil {
		return fmt.Errorf("opting in to %s: %w", programType, err)
	}
	return nil
}

// GetOptedInPrograms lists the programs the seller is enrolled in.
func (c *SellClient) GetOptedInPrograms(ctx context.Context, token string) ([]Program, error) {
	var resp struct {
		Programs        []Program `json:"programs"`
		OptedInPrograms []Program `json:"optedInPrograms"`
	}
	if err := c.call(ctx, "get_opted_in_programs", http.MethodGet, accountPath+"/program/get_opted_in_programs", token, nil, &resp); err != nil {
		return nil, fmt.Errorf("listing opted-in programs: %w", err)
	}
	if len(resp.Programs) > 0 {
		return resp.Programs, nil
	}
	return resp.OptedInPrograms, nil
}

// HasProgram reports whether programs contains programType.
func HasProgram(programs []Program, programType string) bool {
	for _, p := range programs {
		if p.ProgramType == programType {
			return true
		}
	}
	return false
}
