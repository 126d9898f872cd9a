package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EndpointID uniquely identifies a serving endpoint.
// It wraps uuid.UUID to provide type safety at the domain layer.
type EndpointID uuid.UUID

// EndpointState represents the provisioning state of a serving endpoint.
type EndpointState string

const (
	// EndpointStatePending indicates the endpoint was created and is waiting to be provisioned.
	EndpointStatePending EndpointState = "PENDING"
	// EndpointStateUpdating indicates a config change is being rolled out.
	EndpointStateUpdating EndpointState = "UPDATING"
	// EndpointStateReady indicates the endpoint is provisioned and serving traffic.
	EndpointStateReady EndpointState = "READY"
	// EndpointStateFailed indicates provisioning failed; see LastError for details.
	EndpointStateFailed EndpointState = "FAILED"
)

// WorkloadSize is the compute size hint of a served entity.
type WorkloadSize string

const (
	WorkloadSizeSmall  WorkloadSize = "Small"
	WorkloadSizeMedium WorkloadSize = "Medium"
	WorkloadSizeLarge  WorkloadSize = "Large"
)

// ServedEntity describes one model version served behind an endpoint.
type ServedEntity struct {
	// Name is the route-addressable name of the served entity within the
	// endpoint. It must be unique per endpoint.
	Name string `json:"name"`
	// EntityName is the full three-part name of the served model.
	EntityName ModelName `json:"entityName"`
	// EntityVersion is the served model version number.
	EntityVersion int `json:"entityVersion"`
	// WorkloadSize is the compute size hint for this entity.
	WorkloadSize WorkloadSize `json:"workloadSize"`
	// ScaleToZeroEnabled allows the entity to be scaled down when idle.
	ScaleToZeroEnabled bool `json:"scaleToZeroEnabled"`
}

// Route assigns a share of endpoint traffic to a served entity.
type Route struct {
	// ServedModelName references a ServedEntity.Name within the same endpoint.
	ServedModelName string `json:"servedModelName"`
	// TrafficPercentage is the share of requests routed to the entity, 0-100.
	TrafficPercentage int `json:"trafficPercentage"`
}

// TrafficConfig is the set of traffic routes of an endpoint.
type TrafficConfig struct {
	Routes []Route `json:"routes"`
}

// EndpointConfig is the desired serving configuration of an endpoint.
type EndpointConfig struct {
	// ServedEntities lists the model versions served behind the endpoint.
	ServedEntities []ServedEntity `json:"servedEntities"`
	// TrafficConfig distributes traffic across the served entities. When empty
	// and exactly one entity is configured, a single 100% route is implied.
	TrafficConfig TrafficConfig `json:"trafficConfig"`
}

// Validate checks structural config invariants that do not require registry
// access: entity presence and name uniqueness, route references and the
// traffic percentage sum.
func (c EndpointConfig) Validate() error {
	if len(c.ServedEntities) == 0 {
		return fmt.Errorf("config must have at least one served entity")
	}

	names := make(map[string]struct{}, len(c.ServedEntities))
	for _, e := range c.ServedEntities {
		if err := ValidateNamePart(e.Name); err != nil {
			return fmt.Errorf("invalid served entity name: %w", err)
		}
		if _, dup := names[e.Name]; dup {
			return fmt.Errorf("duplicate served entity name %q", e.Name)
		}
		names[e.Name] = struct{}{}

		if e.EntityName.IsZero() {
			return fmt.Errorf("served entity %q has no entity name", e.Name)
		}
		if e.EntityVersion < 1 {
			return fmt.Errorf("served entity %q has invalid version %d", e.Name, e.EntityVersion)
		}
		switch e.WorkloadSize {
		case WorkloadSizeSmall, WorkloadSizeMedium, WorkloadSizeLarge, "":
		default:
			return fmt.Errorf("served entity %q has unknown workload size %q", e.Name, e.WorkloadSize)
		}
	}

	routes := c.TrafficConfig.Routes
	if len(routes) == 0 {
		if len(c.ServedEntities) > 1 {
			return fmt.Errorf("traffic config is required when more than one entity is served")
		}

		return nil
	}

	total := 0
	for _, r := range routes {
		if _, ok := names[r.ServedModelName]; !ok {
			return fmt.Errorf("route references unknown served entity %q", r.ServedModelName)
		}
		if r.TrafficPercentage < 0 || r.TrafficPercentage > 100 {
			return fmt.Errorf("route %q has traffic percentage %d outside 0-100",
				r.ServedModelName, r.TrafficPercentage)
		}
		total += r.TrafficPercentage
	}
	if total != 100 {
		return fmt.Errorf("traffic percentages must sum to 100, got %d", total)
	}

	return nil
}

// EffectiveRoutes returns the traffic routes, synthesizing the implied single
// 100% route when the config has one entity and no explicit routes.
func (c EndpointConfig) EffectiveRoutes() []Route {
	if len(c.TrafficConfig.Routes) > 0 {
		return c.TrafficConfig.Routes
	}
	if len(c.ServedEntities) == 1 {
		return []Route{{ServedModelName: c.ServedEntities[0].Name, TrafficPercentage: 100}}
	}

	return nil
}

// ServedEntity returns the served entity with the given name, or nil.
func (c EndpointConfig) ServedEntity(name string) *ServedEntity {
	for i := range c.ServedEntities {
		if c.ServedEntities[i].Name == name {
			return &c.ServedEntities[i]
		}
	}

	return nil
}

// Endpoint is a named serving endpoint routing inference traffic to one or
// more served model versions.
type Endpoint struct {
	// ID is the unique identifier of the endpoint.
	ID EndpointID `json:"id"`
	// Name is the unique endpoint name used in invocation URLs.
	Name string `json:"name"`
	// UserID is the identifier of the user who created the endpoint.
	UserID UserID `json:"userId"`

	// State is the current provisioning state.
	State EndpointState `json:"state"`
	// Config is the desired serving configuration.
	Config EndpointConfig `json:"config"`
	// ConfigRevision increments on every config change and lets the
	// provisioner detect stale jobs.
	ConfigRevision int `json:"-"`
	// LastError stores the most recent provisioning error, if any.
	LastError string `json:"-"`

	// CreatedAt is the time when the endpoint was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the endpoint was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the endpoint was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}
