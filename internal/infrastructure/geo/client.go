// Package geo resolves a Dutch postcode + house number to an address via an
// external lookup API. Failures are returned to the caller, which falls back
// to a user-facing message; the lookup is never allowed to block a
// conversation for long.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
)

// Address is the resolved location for a postcode + house number.
type Address struct {
	Street       string `json:"street"`
	HouseNumber  string `json:"house_number"`
	Postcode     string `json:"postcode"`
	City         string `json:"city"`
	Municipality string `json:"municipality"`
	Province     string `json:"province"`
}

// Lookup is the address-lookup contract the bot and onboarding depend on.
type Lookup interface {
	Resolve(ctx context.Context, postcode, houseNumber string) (*Address, error)
}

// Client calls the postcode API over HTTP with a short timeout.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient reads POSTCODE_API_URL from the environment. The zero timeout
// default of net/http is unbounded, so a hard 5s timeout is set here.
func NewClient() *Client {
	baseURL := os.Getenv("POSTCODE_API_URL")
	if baseURL == "" {
		baseURL = "https://api.pdok.nl/bzk/locatieserver/search/v3_1/free"
	}

	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

// The Locatieserver wraps results in a Solr-style envelope; only the first
// document is relevant for an exact postcode + house number query.
type lookupDoc struct {
	Street       string `json:"straatnaam"`
	City         string `json:"woonplaatsnaam"`
	Municipality string `json:"gemeentenaam"`
	Province     string `json:"provincienaam"`
}

type lookupResponse struct {
	Response struct {
		NumFound int         `json:"numFound"`
		Docs     []lookupDoc `json:"docs"`
	} `json:"response"`
}

func (c *Client) Resolve(ctx context.Context, postcode, houseNumber string) (*Address, error) {
	q := url.Values{}
	q.Set("postcode", postcode)
	q.Set("huisnummer", houseNumber)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("adreslookup mislukt: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("adreslookup gaf status %d", resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("adreslookup antwoord ongeldig: %w", err)
	}
	if len(body.Response.Docs) == 0 {
		return nil, fmt.Errorf("geen adres gevonden voor %s %s", postcode, houseNumber)
	}

	doc := body.Response.Docs[0]
	return &Address{
		Street:       doc.Street,
		HouseNumber:  houseNumber,
		Postcode:     postcode,
		City:         doc.City,
		Municipality: doc.Municipality,
		Province:     doc.Province,
	}, nil
}
