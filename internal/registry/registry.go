// Package registry maps logical backing services and their operations to
// remote endpoints. The built-in table can be overlaid by a YAML file and by
// POLYGLOT_<SERVICE>_URL environment variables.
package registry

import (
	"fmt"
	"net/url"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	dErrors "polyglot/pkg/domain-errors"
)

// ServiceName identifies a backing service.
type ServiceName string

const (
	Catalog     ServiceName = "catalog"
	SessionCart ServiceName = "sessioncart"
	Statement   ServiceName = "statement"
	LogStore    ServiceName = "logstore"
	Graph       ServiceName = "graph"
)

// Operation identifies a remote call on a service.
type Operation string

const (
	OpFetchProducts Operation = "fetch_products"
	OpAuthenticate  Operation = "authenticate"
	OpResolveUserID Operation = "resolve_user_id"
	OpIsAdmin       Operation = "is_admin"

	OpCreateSession   Operation = "create_session"
	OpDropSession     Operation = "drop_session"
	OpSessionExists   Operation = "session_exists"
	OpUserHasSession  Operation = "user_has_session"
	OpCreateCart      Operation = "create_cart"
	OpDeleteCart      Operation = "delete_cart"
	OpGetCart         Operation = "get_cart"
	OpCartExists      Operation = "cart_exists"
	OpResetCart       Operation = "reset_cart"
	OpUpdateCart      Operation = "update_cart"
	OpReadCart        Operation = "read_cart"
	OpCreateStatement Operation = "create_statement"
	OpListStatements  Operation = "list_statements"
	OpReadStatement   Operation = "read_statement"
	OpAppendLog       Operation = "append_log"
	OpReadLogs        Operation = "read_logs"
	OpFollow          Operation = "follow"
	OpRecordPurchase  Operation = "record_purchase"
	OpRecommend       Operation = "recommend"
)

// Service describes one backing service. Tag labels audit entries that
// touched it.
type Service struct {
	Name       ServiceName          `yaml:"-"`
	BaseURL    string               `yaml:"base_url"`
	HealthPath string               `yaml:"health_path"`
	Tag        string               `yaml:"tag"`
	Operations map[Operation]string `yaml:"operations"`
}

// Registry is immutable after Load/Default returns and safe for concurrent reads.
type Registry struct {
	services map[ServiceName]*Service
}

// Default returns the built-in table. Ports follow the reference deployment.
func Default() *Registry {
	return &Registry{services: map[ServiceName]*Service{
		Catalog: {
			Name: Catalog, BaseURL: "http://localhost:5001", HealthPath: "/", Tag: "PSQL",
			Operations: map[Operation]string{
				OpFetchProducts: "/products/search",
				OpAuthenticate:  "/auth/login",
				OpResolveUserID: "/users/id",
				OpIsAdmin:       "/users/admin",
			},
		},
		SessionCart: {
			Name: SessionCart, BaseURL: "http://localhost:5002", HealthPath: "/", Tag: "REDIS",
			Operations: map[Operation]string{
				OpCreateSession:  "/sessions",
				OpDropSession:    "/sessions/drop",
				OpSessionExists:  "/sessions/exists",
				OpUserHasSession: "/sessions/active",
				OpCreateCart:     "/carts",
				OpDeleteCart:     "/carts/delete",
				OpGetCart:        "/carts/get",
				OpCartExists:     "/carts/exists",
				OpResetCart:      "/carts/reset",
				OpUpdateCart:     "/carts/update",
				OpReadCart:       "/carts/read",
			},
		},
		Statement: {
			Name: Statement, BaseURL: "http://localhost:5003", HealthPath: "/", Tag: "MONGODB",
			Operations: map[Operation]string{
				OpCreateStatement: "/statements",
				OpListStatements:  "/statements/list",
				OpReadStatement:   "/statements/read",
			},
		},
		LogStore: {
			Name: LogStore, BaseURL: "http://localhost:5004", HealthPath: "/", Tag: "CASSANDRA",
			Operations: map[Operation]string{
				OpAppendLog: "/logs",
				OpReadLogs:  "/logs/read",
			},
		},
		Graph: {
			Name: Graph, BaseURL: "http://localhost:5005", HealthPath: "/", Tag: "NEO4J",
			Operations: map[Operation]string{
				OpFollow:         "/follow",
				OpRecordPurchase: "/purchase",
				OpRecommend:      "/recommend",
			},
		},
	}}
}

type fileFormat struct {
	Services map[ServiceName]*Service `yaml:"services"`
}

// Load returns Default overlaid with the YAML file at path (if non-empty) and
// with POLYGLOT_<SERVICE>_URL overrides, then validates the result.
func Load(path string) (*Registry, error) {
	r := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read registry file: %w", err)
		}
		if err := r.merge(raw); err != nil {
			return nil, err
		}
	}
	for name, svc := range r.services {
		if v := os.Getenv("POLYGLOT_" + strings.ToUpper(string(name)) + "_URL"); v != "" {
			svc.BaseURL = v
		}
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Parse builds a registry from Default overlaid with raw YAML.
func Parse(raw []byte) (*Registry, error) {
	r := Default()
	if err := r.merge(raw); err != nil {
		return nil, err
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Registry) merge(raw []byte) error {
	var f fileFormat
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("parse registry file: %w", err)
	}
	for name, in := range f.Services {
		if in == nil {
			continue
		}
		svc, ok := r.services[name]
		if !ok {
			return dErrors.Newf(dErrors.CodeValidation, "unknown service %q in registry file", name)
		}
		if in.BaseURL != "" {
			svc.BaseURL = in.BaseURL
		}
		if in.HealthPath != "" {
			svc.HealthPath = in.HealthPath
		}
		if in.Tag != "" {
			svc.Tag = in.Tag
		}
		for op, path := range in.Operations {
			// An empty path removes an optional operation such as reset_cart.
			if path == "" {
				delete(svc.Operations, op)
				continue
			}
			svc.Operations[op] = path
		}
	}
	return nil
}

// Validate checks that every service has an absolute base URL and every
// operation path is absolute.
func (r *Registry) Validate() error {
	for _, name := range r.Services() {
		svc := r.services[name]
		u, err := url.Parse(svc.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return dErrors.Newf(dErrors.CodeValidation, "service %s: invalid base url %q", name, svc.BaseURL)
		}
		if !strings.HasPrefix(svc.HealthPath, "/") {
			return dErrors.Newf(dErrors.CodeValidation, "service %s: health path must start with /", name)
		}
		for op, path := range svc.Operations {
			if !strings.HasPrefix(path, "/") {
				return dErrors.Newf(dErrors.CodeValidation, "service %s: operation %s path must start with /", name, op)
			}
		}
	}
	return nil
}

// Services lists registered services in a stable order.
func (r *Registry) Services() []ServiceName {
	names := make([]ServiceName, 0, len(r.services))
	for name := range r.services {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Endpoint resolves the URL for an operation.
func (r *Registry) Endpoint(svc ServiceName, op Operation) (string, error) {
	s, ok := r.services[svc]
	if !ok {
		return "", dErrors.Newf(dErrors.CodeInternal, "unknown service %s", svc)
	}
	path, ok := s.Operations[op]
	if !ok {
		return "", dErrors.Newf(dErrors.CodeInternal, "service %s has no operation %s", svc, op)
	}
	return strings.TrimRight(s.BaseURL, "/") + path, nil
}

// Has reports whether svc declares op.
func (r *Registry) Has(svc ServiceName, op Operation) bool {
	s, ok := r.services[svc]
	if !ok {
		return false
	}
	_, ok = s.Operations[op]
	return ok
}

// HealthURL resolves the liveness probe URL for svc.
func (r *Registry) HealthURL(svc ServiceName) (string, error) {
	s, ok := r.services[svc]
	if !ok {
		return "", dErrors.Newf(dErrors.CodeInternal, "unknown service %s", svc)
	}
	return strings.TrimRight(s.BaseURL, "/") + s.HealthPath, nil
}

// Tag returns the audit tag for svc, or the service name when unset.
func (r *Registry) Tag(svc ServiceName) string {
	if s, ok := r.services[svc]; ok && s.Tag != "" {
		return s.Tag
	}
	return string(svc)
}

// Tags maps services to their audit tags, preserving order.
func (r *Registry) Tags(svcs ...ServiceName) []string {
	out := make([]string, 0, len(svcs))
	for _, s := range svcs {
		out = append(out, r.Tag(s))
	}
	return out
}
