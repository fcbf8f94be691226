package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission lists the roles allowed on one route. An empty list admits
// any authenticated staff member; Skip makes the route public.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

// FindPermissions matches a chi route pattern. A trailing slash is ignored
// since chi reports subrouter roots as "/v1/rooms/".
func (r *PermissionData) FindPermissions(path, method string) Permission {
	path = normalize(path)

	idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
		return normalize(rp.Path) == path && strings.EqualFold(rp.Method, method)
	})

	if idx == -1 {
		return Permission{}
	}

	return r.Endpoints[idx]
}

func normalize(path string) string {
	if len(path) > 1 {
		return strings.TrimSuffix(path, "/")
	}

	return path
}

func Parse(data []byte) (*PermissionData, error) {
	var permissions PermissionData

	if err := json.Unmarshal(data, &permissions); err != nil {
		return nil, fmt.Errorf("failed to decode permissions: %w", err)
	}

	return &permissions, nil
}

func Get() *PermissionData {
	permissions, err := Parse(permissionsData)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return permissions
}
