// pkg/entity/entity.go
package entity

import (
	"sync/atomic"

	"github.com/opd-ai/go-waverider/pkg/physics"
)

// ID is a unique identifier for an entity
type ID uint64

// Pose is the renderable transform of an entity: position plus the three
// orientation angles (radians).
type Pose struct {
	Position physics.Vector3
	Yaw      float64
	Pitch    float64
	Roll     float64
}

var nextID atomic.Uint64

// GenerateID generates a unique ID for entities
func GenerateID() ID {
	return ID(nextID.Add(1))
}
