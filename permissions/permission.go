package permissions

import (
	_ "embed"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission lists the roles allowed on one route. Skip marks a public route.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

// PermissionData is the embedded route table. A top level Skip disables authorization entirely.
type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]Permission
}

// FindPermissions matches a chi route pattern. A trailing slash is not significant
// and unknown routes yield the zero Permission.
func (d *PermissionData) FindPermissions(pattern, method string) Permission {
	key := routeKey(pattern, method)

	if d.index != nil {
		return d.index[key]
	}

	for _, endpoint := range d.Endpoints {
		if routeKey(endpoint.Path, endpoint.Method) == key {
			return endpoint
		}
	}

	return Permission{}
}

func (d *PermissionData) buildIndex() {
	d.index = make(map[string]Permission, len(d.Endpoints))

	for _, endpoint := range d.Endpoints {
		key := routeKey(endpoint.Path, endpoint.Method)
		if _, dup := d.index[key]; dup {
			log.Warn().Str("route", key).Msg("Duplicate permission entry, keeping the first")

			continue
		}

		d.index[key] = endpoint
	}
}

// Get decodes the embedded table, or returns nil when it is malformed.
func Get() *PermissionData {
	var data PermissionData

	if err := json.Unmarshal(permissionsData, &data); err != nil {
		log.Error().Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	data.buildIndex()

	log.Info().Int("endpoints", len(data.index)).Msg("Loaded embedded permissions")

	return &data
}

func routeKey(pattern, method string) string {
	if len(pattern) > 1 {
		pattern = strings.TrimSuffix(pattern, "/")
	}

	return strings.ToUpper(method) + " " + pattern
}
