package edgar

// CompanyType indicates whether an entity has publicly traded securities.
type CompanyType string

// Company type constants. A company is public iff its submissions profile
// lists at least one ticker.
const (
	TypePublic  CompanyType = "public"
	TypePrivate CompanyType = "private"
	TypeUnknown CompanyType = "unknown"
)

// Candidate is a minimal identity record produced by company search.
// It is immutable once created and consumed once by FetchProfile.
type Candidate struct {
	CIK    string      `json:"cik"` // zero-padded to 10 digits
	Name   string      `json:"name"`
	Ticker string      `json:"ticker,omitempty"`
	Type   CompanyType `json:"company_type"`
}

// Filing is one entry from an entity's recent-filings list.
type Filing struct {
	Form            string `json:"form"`
	AccessionNumber string `json:"accession_number"`
}

// Profile is the full registration-and-filings record for one entity,
// fetched fresh per candidate and never cached across candidates.
type Profile struct {
	CIK            string       `json:"cik"`
	Name           string       `json:"name"`
	Tickers        []string     `json:"tickers,omitempty"`
	SIC            string       `json:"sic,omitempty"`
	SICDescription string       `json:"sic_description,omitempty"`
	Description    string       `json:"business_description,omitempty"`
	Filings        []Filing     `json:"-"`
	CompanyType    CompanyType  `json:"company_type"`
	FormD          *FormDSignal `json:"form_d_info,omitempty"`
}

// FormDSignal holds industry hints scanned out of a single Form D filing.
type FormDSignal struct {
	IndustryCategory    string `json:"industry_category,omitempty"`
	BusinessDescription string `json:"business_description,omitempty"`
	OfferingAmount      string `json:"offering_amount,omitempty"`
}

// Empty reports whether the signal carries no information at all.
func (s FormDSignal) Empty() bool {
	return s.IndustryCategory == "" && s.BusinessDescription == "" && s.OfferingAmount == ""
}
