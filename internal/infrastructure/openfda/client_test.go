package openfda

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pharma-info-service/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(serverURL, apiKey string) *Client {
	return NewClient(config.FDAConfig{
		BaseURL: serverURL,
		APIKey:  apiKey,
		Timeout: 5 * time.Second,
	})
}

func TestClient_SearchLabels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/drug/label.json", r.URL.Path)
		assert.Equal(t, LabelSearchQuery("aspirin"), r.URL.Query().Get("search"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"meta": {"results": {"skip": 0, "limit": 10, "total": 231}},
			"results": [{
				"id": "label-1",
				"active_ingredient": ["ASPIRIN 81 mg"],
				"openfda": {
					"brand_name": ["Aspirin"],
					"generic_name": ["ASPIRIN"],
					"application_number": ["NDA012345"]
				}
			}]
		}`))
	}))
	defer server.Close()

	client := testClient(server.URL, "test-key")
	resp, err := client.SearchLabels(context.Background(), LabelSearchQuery("aspirin"), 10)

	require.NoError(t, err)
	assert.Equal(t, 231, resp.Meta.Results.Total)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "label-1", resp.Results[0].ID)
	assert.Equal(t, []string{"Aspirin"}, resp.Results[0].OpenFDA.BrandName)
}

func TestClient_SearchLabels_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": {"code": "NOT_FOUND", "message": "No matches found!"}}`))
	}))
	defer server.Close()

	client := testClient(server.URL, "")
	_, err := client.SearchLabels(context.Background(), LabelSearchQuery("nonexistent"), 10)

	assert.ErrorIs(t, err, ErrNoResults)
}

func TestClient_SearchLabels_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client := testClient(server.URL, "")
	_, err := client.SearchLabels(context.Background(), LabelSearchQuery("aspirin"), 10)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.Contains(t, err.Error(), "upstream exploded")
}

func TestClient_SearchEvents_MixedFieldTypes(t *testing.T) {
	// openFDA serves some event fields as strings and some as numbers
	// depending on the record.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/drug/event.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"meta": {"results": {"total": 2}},
			"results": [
				{
					"safetyreportid": "10003301",
					"serious": 1,
					"patient": {
						"patientonsetage": 56,
						"patientsex": "2",
						"reaction": [{"reactionmeddrapt": "Nausea", "reactionoutcome": 1}],
						"drug": [{"medicinalproduct": "ASPIRIN", "drugindication": null}]
					}
				},
				{"safetyreportid": 10003302, "serious": "2"}
			]
		}`))
	}))
	defer server.Close()

	client := testClient(server.URL, "")
	resp, err := client.SearchEvents(context.Background(), EventSearchQuery("aspirin"), 10)

	require.NoError(t, err)
	require.Len(t, resp.Results, 2)

	first := resp.Results[0]
	assert.Equal(t, StringOrNumber("10003301"), first.SafetyReportID)
	assert.Equal(t, StringOrNumber("1"), first.Serious)
	require.NotNil(t, first.Patient)
	assert.Equal(t, StringOrNumber("56"), first.Patient.PatientOnsetAge)
	require.Len(t, first.Patient.Reactions, 1)
	assert.Equal(t, StringOrNumber("1"), first.Patient.Reactions[0].ReactionOutcome)
	require.Len(t, first.Patient.Drugs, 1)
	assert.Equal(t, StringOrNumber(""), first.Patient.Drugs[0].DrugIndication)

	second := resp.Results[1]
	assert.Equal(t, StringOrNumber("10003302"), second.SafetyReportID)
	assert.Nil(t, second.Patient)
}

func TestClient_SearchEnforcements_OmitsEmptySearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/drug/enforcement.json", r.URL.Path)
		assert.False(t, r.URL.Query().Has("search"))
		assert.False(t, r.URL.Query().Has("api_key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"meta": {"results": {"total": 1}},
			"results": [{
				"recall_number": "D-1234-2020",
				"recall_initiation_date": "20200114",
				"classification": "Class II"
			}]
		}`))
	}))
	defer server.Close()

	client := testClient(server.URL, "")
	resp, err := client.SearchEnforcements(context.Background(), "", 10)

	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "D-1234-2020", resp.Results[0].RecallNumber)
	assert.Equal(t, "Class II", resp.Results[0].Classification)
}
