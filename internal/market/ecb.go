package market

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
)

// DefaultECBURL is the daily euro foreign exchange reference rates feed.
const DefaultECBURL = "https://www.ecb.europa.eu/stats/eurofxref/eurofxref-daily.xml"

// ECB reads the euro reference rates of the European Central Bank.
//
// The feed only contains rates from EUR. Rates for other base
// currencies are derived as cross rates. Currencies the ECB does not
// publish, like GHS and NGN, are missing from the result.
type ECB struct {
	url    string
	client *http.Client
}

// NewECB creates a source for the given feed URL.
func NewECB(url string, timeout time.Duration) *ECB {
	if url == "" {
		url = DefaultECBURL
	}

	return &ECB{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (s *ECB) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ECB API error: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return body, nil
}

// parseECB parses the feed into rates from EUR.
func parseECB(body []byte) (date string, euro map[string]decimal.Decimal, err error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return "", nil, fmt.Errorf("failed to parse XML: %w", err)
	}

	day := doc.FindElement("//Cube[@time]")
	if day == nil {
		return "", nil, fmt.Errorf("no exchange rate data found in XML")
	}

	euro = map[string]decimal.Decimal{"EUR": decimal.NewFromInt(1)}
	for _, cube := range day.FindElements("./Cube[@currency]") {
		rate, err := decimal.NewFromString(cube.SelectAttrValue("rate", ""))
		if err != nil {
			return "", nil, fmt.Errorf("failed to parse rate for %s: %w", cube.SelectAttrValue("currency", ""), err)
		}

		euro[cube.SelectAttrValue("currency", "")] = rate
	}

	return day.SelectAttrValue("time", ""), euro, nil
}

func (s *ECB) Latest(ctx context.Context, base string) (Rates, error) {
	body, err := s.fetch(ctx)
	if err != nil {
		return Rates{}, err
	}

	date, euro, err := parseECB(body)
	if err != nil {
		return Rates{}, err
	}

	baseRate, ok := euro[base]
	if !ok || baseRate.IsZero() {
		return Rates{}, fmt.Errorf("%w %s", ErrUnsupportedCurrency, base)
	}

	rates := make(map[string]decimal.Decimal, len(euro))
	for currency, rate := range euro {
		rates[currency] = rate.Div(baseRate).Round(8)
	}

	return Rates{
		Base:   base,
		Date:   date,
		Source: "ecb",
		Rates:  rates,
	}, nil
}
