package docs

import (
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestDocRendersAndReferencesResolve(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Swagger     string                     `json:"swagger"`
		Info        struct{ Title string }     `json:"info"`
		Paths       map[string]map[string]any  `json:"paths"`
		Definitions map[string]json.RawMessage `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "2.0", doc.Swagger)
	assert.Equal(t, "Pet Adoption API", doc.Info.Title)

	routes := map[string][]string{
		"/users/register":     {"post"},
		"/users/login":        {"post"},
		"/users/checkuser":    {"get"},
		"/users/{id}":         {"get"},
		"/users/edit/{id}":    {"patch"},
		"/pets":               {"get"},
		"/pets/create":        {"post"},
		"/pets/mypets":        {"get"},
		"/pets/myadoptions":   {"get"},
		"/pets/{id}":          {"get", "delete", "patch"},
		"/pets/schedule/{id}": {"patch"},
		"/pets/conclude/{id}": {"patch"},
		"/pets/{id}/history":  {"get"},
	}
	for path, methods := range routes {
		require.Contains(t, doc.Paths, path)
		for _, m := range methods {
			assert.Contains(t, doc.Paths[path], m, path)
		}
	}

	refs := regexp.MustCompile(`#/definitions/([\w.]+)`).FindAllStringSubmatch(raw, -1)
	require.NotEmpty(t, refs)
	for _, r := range refs {
		assert.Contains(t, doc.Definitions, r[1])
	}
}
