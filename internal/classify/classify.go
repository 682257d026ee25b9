// Package classify derives a best-effort industry classification for a
// company profile from an ordered chain of signal sources: SIC code, filed
// business description, Form D industry category, and finally keywords in
// the queried name.
package classify

import (
	"fmt"
	"strings"

	"github.com/sells-group/edgar-scout/pkg/edgar"
)

// Provenance tag constants. Exactly one is set per classification and it
// names the first stage that supplied the result.
const (
	SourceSubmissions        = "submissions"
	SourceNameClassification = "name_classification"
)

// Confidence constants. Only the name fallback assigns a confidence.
const (
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// CategoryUnknown is assigned when no signal source produced anything.
const CategoryUnknown = "Unknown"

const (
	descriptionLimit = 300
	truncationMarker = "..."
)

// Classification is the derived industry record for one profile.
type Classification struct {
	SICCode             string             `json:"sic_code,omitempty"`
	SICDescription      string             `json:"sic_description,omitempty"`
	BusinessDescription string             `json:"business_description,omitempty"`
	IndustryCategory    string             `json:"industry_category,omitempty"`
	Confidence          string             `json:"confidence,omitempty"`
	FormD               *edgar.FormDSignal `json:"form_d_info,omitempty"`
	CompanyType         edgar.CompanyType  `json:"company_type"`
	Source              string             `json:"data_source"`
}

// Classifier evaluates the fallback chain against immutable lookup tables
// supplied at construction, so alternate mappings can be substituted.
type Classifier struct {
	sicDescriptions map[string]string
	nameKeywords    []CategoryKeywords
}

// New creates a Classifier over the given tables. Nil tables get the
// defaults.
func New(sicDescriptions map[string]string, nameKeywords []CategoryKeywords) *Classifier {
	if sicDescriptions == nil {
		sicDescriptions = DefaultSICDescriptions()
	}
	if nameKeywords == nil {
		nameKeywords = DefaultNameKeywords()
	}
	return &Classifier{
		sicDescriptions: sicDescriptions,
		nameKeywords:    nameKeywords,
	}
}

// Classify runs the fallback chain over a profile. Each stage is consulted
// only when the previous one produced nothing:
//
//  1. SIC code lookup against the description table.
//  2. Business description capture (length-capped).
//  3. Form D industry signal.
//  4. Keyword scan of the queried name.
//
// CompanyType is copied from the profile, which is authoritative, and never
// re-derived here.
func (cl *Classifier) Classify(profile *edgar.Profile, queryName string) Classification {
	result := Classification{
		CompanyType: profile.CompanyType,
		Source:      SourceSubmissions,
	}

	switch {
	case profile.SIC != "":
		result.SICCode = profile.SIC
		if desc, ok := cl.sicDescriptions[profile.SIC]; ok {
			result.SICDescription = desc
		} else {
			result.SICDescription = fmt.Sprintf("SIC %s", profile.SIC)
		}

	case profile.Description != "":
		result.BusinessDescription = truncate(profile.Description)

	case profile.FormD != nil && profile.FormD.IndustryCategory != "":
		result.IndustryCategory = profile.FormD.IndustryCategory
		result.FormD = profile.FormD
	}

	// The name fallback fires only when every structured signal is absent.
	if result.SICCode == "" && result.IndustryCategory == "" && result.BusinessDescription == "" {
		result.IndustryCategory, result.Confidence = cl.classifyFromName(queryName)
		result.Source = SourceNameClassification
	}

	return result
}

// classifyFromName scans the lower-cased query name against the ordered
// keyword table. First category with a substring hit wins at medium
// confidence; no hit yields Unknown at low confidence.
func (cl *Classifier) classifyFromName(name string) (category, confidence string) {
	nameLower := strings.ToLower(name)

	for _, entry := range cl.nameKeywords {
		for _, keyword := range entry.Keywords {
			if strings.Contains(nameLower, keyword) {
				return entry.Category, ConfidenceMedium
			}
		}
	}
	return CategoryUnknown, ConfidenceLow
}

// truncate caps a description at descriptionLimit characters, appending the
// marker when anything was cut. The limit counts runes, not bytes, so a
// multi-byte character is never split.
func truncate(desc string) string {
	runes := []rune(desc)
	if len(runes) > descriptionLimit {
		return string(runes[:descriptionLimit]) + truncationMarker
	}
	return desc
}
