package classify

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/edgar-scout/pkg/edgar"
)

func defaultClassifier() *Classifier {
	return New(nil, nil)
}

func TestClassify_SICCodeKnown(t *testing.T) {
	profile := &edgar.Profile{SIC: "7372", CompanyType: edgar.TypePublic}

	cls := defaultClassifier().Classify(profile, "Initech")
	assert.Equal(t, "7372", cls.SICCode)
	assert.Equal(t, "Prepackaged Software", cls.SICDescription)
	assert.Equal(t, SourceSubmissions, cls.Source)
	assert.Empty(t, cls.IndustryCategory)
	assert.Empty(t, cls.Confidence)
}

func TestClassify_SICCodeUnknownSynthesized(t *testing.T) {
	profile := &edgar.Profile{SIC: "9999", CompanyType: edgar.TypePublic}

	cls := defaultClassifier().Classify(profile, "Initech")
	assert.Equal(t, "9999", cls.SICCode)
	assert.Equal(t, "SIC 9999", cls.SICDescription)
	assert.Equal(t, SourceSubmissions, cls.Source)
}

func TestClassify_DescriptionCopiedVerbatim(t *testing.T) {
	desc := strings.Repeat("x", 300)
	profile := &edgar.Profile{Description: desc, CompanyType: edgar.TypePrivate}

	cls := defaultClassifier().Classify(profile, "Initech")
	assert.Equal(t, desc, cls.BusinessDescription)
	assert.Equal(t, SourceSubmissions, cls.Source)
}

func TestClassify_DescriptionTruncated(t *testing.T) {
	desc := strings.Repeat("x", 450)
	profile := &edgar.Profile{Description: desc, CompanyType: edgar.TypePrivate}

	cls := defaultClassifier().Classify(profile, "Initech")
	assert.Len(t, cls.BusinessDescription, 303)
	assert.True(t, strings.HasSuffix(cls.BusinessDescription, "..."))
	assert.Equal(t, strings.Repeat("x", 300), strings.TrimSuffix(cls.BusinessDescription, "..."))
}

func TestClassify_DescriptionTruncatedOnRuneBoundary(t *testing.T) {
	// A multi-byte character straddling the cap must not be split into
	// invalid UTF-8.
	desc := strings.Repeat("x", 299) + strings.Repeat("é", 10)
	profile := &edgar.Profile{Description: desc, CompanyType: edgar.TypePrivate}

	cls := defaultClassifier().Classify(profile, "Initech")
	assert.True(t, utf8.ValidString(cls.BusinessDescription))
	assert.Equal(t, 303, utf8.RuneCountInString(cls.BusinessDescription))
	assert.True(t, strings.HasSuffix(cls.BusinessDescription, "é..."))
}

func TestClassify_MultibyteDescriptionUnderLimitVerbatim(t *testing.T) {
	desc := strings.Repeat("é", 300)
	profile := &edgar.Profile{Description: desc, CompanyType: edgar.TypePrivate}

	cls := defaultClassifier().Classify(profile, "Initech")
	assert.Equal(t, desc, cls.BusinessDescription)
}

func TestClassify_SICWinsOverDescription(t *testing.T) {
	profile := &edgar.Profile{
		SIC:         "2834",
		Description: "We make pharmaceuticals.",
		CompanyType: edgar.TypePublic,
	}

	cls := defaultClassifier().Classify(profile, "Initech")
	assert.Equal(t, "Pharmaceutical Preparations", cls.SICDescription)
	// Strict fallback: the description stage was never consulted.
	assert.Empty(t, cls.BusinessDescription)
}

func TestClassify_FormDSignalAdopted(t *testing.T) {
	signal := &edgar.FormDSignal{IndustryCategory: "Healthcare", OfferingAmount: "2,000,000"}
	profile := &edgar.Profile{FormD: signal, CompanyType: edgar.TypePrivate}

	cls := defaultClassifier().Classify(profile, "Initech")
	assert.Equal(t, "Healthcare", cls.IndustryCategory)
	require.NotNil(t, cls.FormD)
	assert.Equal(t, "2,000,000", cls.FormD.OfferingAmount)
	assert.Equal(t, SourceSubmissions, cls.Source)
	assert.Empty(t, cls.Confidence)
}

func TestClassify_EmptyFormDSignalFallsThrough(t *testing.T) {
	profile := &edgar.Profile{
		FormD:       &edgar.FormDSignal{OfferingAmount: "500,000"},
		CompanyType: edgar.TypePrivate,
	}

	cls := defaultClassifier().Classify(profile, "Acme Cloud Systems")
	assert.Equal(t, "Technology", cls.IndustryCategory)
	assert.Equal(t, ConfidenceMedium, cls.Confidence)
	assert.Equal(t, SourceNameClassification, cls.Source)
	assert.Nil(t, cls.FormD)
}

func TestClassify_NameFallbackTechnology(t *testing.T) {
	profile := &edgar.Profile{CompanyType: edgar.TypePrivate}

	cls := defaultClassifier().Classify(profile, "Acme Cloud Systems")
	assert.Equal(t, "Technology", cls.IndustryCategory)
	assert.Equal(t, ConfidenceMedium, cls.Confidence)
	assert.Equal(t, SourceNameClassification, cls.Source)
}

func TestClassify_NameFallbackUnknown(t *testing.T) {
	profile := &edgar.Profile{CompanyType: edgar.TypePrivate}

	cls := defaultClassifier().Classify(profile, "Zzyzx Ventures")
	assert.Equal(t, CategoryUnknown, cls.IndustryCategory)
	assert.Equal(t, ConfidenceLow, cls.Confidence)
	assert.Equal(t, SourceNameClassification, cls.Source)
}

func TestClassify_NameFallbackSuppressedByEachSignal(t *testing.T) {
	// Any one of SIC code, description, or Form D category suppresses the
	// name fallback, keyword-laden name or not.
	tests := []struct {
		name    string
		profile *edgar.Profile
	}{
		{"sic", &edgar.Profile{SIC: "1311"}},
		{"description", &edgar.Profile{Description: "Oilfield services."}},
		{"form_d", &edgar.Profile{FormD: &edgar.FormDSignal{IndustryCategory: "Technology"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.profile.CompanyType = edgar.TypePrivate
			cls := defaultClassifier().Classify(tt.profile, "Acme Software Bank Pharma")
			assert.Equal(t, SourceSubmissions, cls.Source)
			assert.Empty(t, cls.Confidence)
		})
	}
}

func TestClassify_NameFallbackTableOrder(t *testing.T) {
	profile := &edgar.Profile{CompanyType: edgar.TypePrivate}

	// "medical" hits Healthcare, "data" hits Technology; Technology is
	// earlier in the table and wins.
	cls := defaultClassifier().Classify(profile, "Medical Data Corp")
	assert.Equal(t, "Technology", cls.IndustryCategory)
}

func TestClassify_CompanyTypeCopiedNotDerived(t *testing.T) {
	for _, companyType := range []edgar.CompanyType{edgar.TypePublic, edgar.TypePrivate, edgar.TypeUnknown} {
		profile := &edgar.Profile{SIC: "7372", CompanyType: companyType}
		cls := defaultClassifier().Classify(profile, "Initech")
		assert.Equal(t, companyType, cls.CompanyType)
	}
}

func TestClassify_InjectedTables(t *testing.T) {
	cl := New(
		map[string]string{"0100": "Agricultural Production"},
		[]CategoryKeywords{{Category: "Farming", Keywords: []string{"farm"}}},
	)

	cls := cl.Classify(&edgar.Profile{SIC: "0100"}, "ignored")
	assert.Equal(t, "Agricultural Production", cls.SICDescription)

	cls = cl.Classify(&edgar.Profile{}, "Sunrise Farms")
	assert.Equal(t, "Farming", cls.IndustryCategory)

	// The substituted table does not know the default keywords.
	cls = cl.Classify(&edgar.Profile{}, "Acme Cloud Systems")
	assert.Equal(t, CategoryUnknown, cls.IndustryCategory)
}

func TestDefaultNameKeywords_Order(t *testing.T) {
	table := DefaultNameKeywords()
	require.Len(t, table, 10)
	assert.Equal(t, "Technology", table[0].Category)
	assert.Equal(t, "Financial Services", table[1].Category)
	assert.Equal(t, "Healthcare", table[2].Category)
	assert.Equal(t, "Media", table[9].Category)
}
