package edgar

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFullTextSearch(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search-index", r.URL.Path)
		assert.Equal(t, "Hexify Labs", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`{"hits":{"hits":[
			{"_source":{"entity_cik":"1518449","entity_name":"Hexify Labs LLC"}},
			{"_source":{"entity_cik":"","entity_name":"Broken Hit"}},
			{"_source":{"entity_cik":"99","entity_name":"Hexify Holdings"}}
		]}}`))
	})
	c := newTestClient(t, handler)

	candidates, err := c.FullTextSearch(context.Background(), "Hexify Labs")
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	assert.Equal(t, "0001518449", candidates[0].CIK)
	assert.Equal(t, "Hexify Labs LLC", candidates[0].Name)
	assert.Equal(t, TypeUnknown, candidates[0].Type)
	assert.Equal(t, "0000000099", candidates[1].CIK)
}

func TestFullTextSearch_Error(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	c := newTestClient(t, handler)

	candidates, err := c.FullTextSearch(context.Background(), "anything")
	require.Error(t, err)
	assert.Nil(t, candidates)
}
