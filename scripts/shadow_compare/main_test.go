package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodiesEqualNormalisesTimesAndIgnoredKeys(t *testing.T) {
	goBody := unwrapEnvelope([]byte(`{"data":[{"lesson_id":1,"start_time":"08:30","teacher":{"name":"A"}}],"meta":{"count":1}}`))
	legacy := []byte(`[{"lesson_id":1.0,"start_time":"08:30:00"}]`)

	assert.True(t, bodiesEqual(goBody, legacy, []string{"teacher"}))
	assert.False(t, bodiesEqual(goBody, legacy, nil))
}

func TestUnwrapEnvelopeKeepsPlainBodies(t *testing.T) {
	assert.Equal(t, `{"status":"ok"}`, string(unwrapEnvelope([]byte(`{"status":"ok"}`))))
	assert.Equal(t, `not json`, string(unwrapEnvelope([]byte(`not json`))))
}

func TestCompareTargetUsesLegacyPath(t *testing.T) {
	goSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/schools", r.URL.Path)
		assert.Equal(t, "Bearer tkn", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"data":[{"school_id":1,"name":"Lyceum"}]}`))
	}))
	defer goSrv.Close()
	legacySrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/school", r.URL.Path)
		_, _ = w.Write([]byte(`[{"school_id":1,"name":"Lyceum"}]`))
	}))
	defer legacySrv.Close()

	comp := compareTarget(legacySrv.Client(), goSrv.URL+"/api", legacySrv.URL, "tkn", target{Method: "get", Path: "/schools", LegacyPath: "/school"})

	require.NoError(t, comp.Error)
	assert.True(t, comp.StatusMatch)
	assert.True(t, comp.BodyMatch)

	var out bytes.Buffer
	printReport(&out, []comparison{comp})
	assert.Contains(t, out.String(), "[OK] get /schools")
}
