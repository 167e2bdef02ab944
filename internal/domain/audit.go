package domain

import (
	"time"

	"github.com/google/uuid"
)

// Audit actions recorded by the service
const (
	AuditActionActivateSession = "ACTIVATE_SESSION"
	AuditActionCreateRoulette  = "CREATE_ROULETTE"
	AuditActionUpdateStatus    = "UPDATE_STATUS"
	AuditActionDeleteRoulette  = "DELETE_ROULETTE"
	AuditActionAddPrize        = "ADD_PRIZE"
	AuditActionUpdatePrize     = "UPDATE_PRIZE"
	AuditActionDeletePrize     = "DELETE_PRIZE"
)

// AuditLog is a best-effort record of a management action. Writes never fail
// the operation they describe.
type AuditLog struct {
	ID         int64                  `json:"id"`
	Action     string                 `json:"action"`
	ActorID    uuid.UUID              `json:"actor_id"`
	RouletteID uuid.UUID              `json:"roulette_id"`
	Payload    map[string]interface{} `json:"payload,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}
