package polymarket

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/tgoodwin/marketarb/internal/domain"
)

// flexBool unmarshals from JSON bool or string ("true"/"false") so Gamma API
// responses work whether "active" is sent as bool or string.
type flexBool bool

func (f *flexBool) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = flexBool(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*f = flexBool(strings.EqualFold(s, "true") || s == "1")
	return nil
}

// flexFloat unmarshals from JSON number or numeric string. Gamma sends volume
// and liquidity both ways depending on the endpoint.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexFloat(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*f = flexFloat(n)
	return nil
}

// flexStrings unmarshals from a JSON array of strings or from a JSON-encoded
// string containing such an array. Gamma's "outcomes" and "outcomePrices"
// fields arrive in both shapes.
type flexStrings []string

func (f *flexStrings) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*f = list
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*f = nil
		return nil
	}
	return json.Unmarshal([]byte(s), (*[]string)(f))
}

// APIMarket represents a market as returned by the Polymarket Gamma API.
type APIMarket struct {
	ID            string      `json:"id"`
	Question      string      `json:"question"`
	ConditionID   string      `json:"conditionId"`
	Slug          string      `json:"slug"`
	Description   string      `json:"description"`
	Outcomes      flexStrings `json:"outcomes"`
	OutcomePrices flexStrings `json:"outcomePrices"`
	Volume        flexFloat   `json:"volume"`
	Liquidity     flexFloat   `json:"liquidity"`
	EndDate       string      `json:"endDate"`
	Category      string      `json:"category"`
	Active        flexBool    `json:"active"`
	Closed        bool        `json:"closed"`
}

// APIEvent represents an event as returned by the Gamma API. An event groups
// one or more related markets.
type APIEvent struct {
	ID       string      `json:"id"`
	Title    string      `json:"title"`
	Slug     string      `json:"slug"`
	Category string      `json:"category"`
	Active   flexBool    `json:"active"`
	Closed   bool        `json:"closed"`
	Markets  []APIMarket `json:"markets"`
}

// YesPrice returns the first outcome price, 0 when absent.
func (m *APIMarket) YesPrice() float64 {
	if len(m.OutcomePrices) == 0 {
		return 0
	}
	p, _ := strconv.ParseFloat(m.OutcomePrices[0], 64)
	return p
}

// NoPrice returns the second outcome price, or the YES complement when the
// API only quotes one side.
func (m *APIMarket) NoPrice() float64 {
	if len(m.OutcomePrices) > 1 {
		p, _ := strconv.ParseFloat(m.OutcomePrices[1], 64)
		return p
	}
	return 1 - m.YesPrice()
}

// ToDomainMarket converts a Gamma APIMarket to a domain.Market.
func (m *APIMarket) ToDomainMarket() domain.Market {
	dm := domain.Market{
		ID:          m.ID,
		Venue:       domain.VenuePolymarket,
		Title:       m.Question,
		Description: m.Description,
		YesPrice:    m.YesPrice(),
		NoPrice:     m.NoPrice(),
		Volume:      float64(m.Volume),
		Liquidity:   float64(m.Liquidity),
		Category:    m.Category,
		Slug:        m.Slug,
		FetchedAt:   time.Now().UTC(),
	}

	if m.Closed {
		dm.Status = domain.MarketStatusClosed
	} else {
		dm.Status = domain.MarketStatusActive
	}

	if m.EndDate != "" {
		if t, err := time.Parse(time.RFC3339, m.EndDate); err == nil {
			dm.EndDate = &t
		}
	}

	return dm
}
