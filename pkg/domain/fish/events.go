package fish

import "github.com/google/uuid"

// Event type identifiers for the change notifications emitted after a
// committed store mutation. Live queries match on these.
const (
	EventFishCreated      = "fish.created"
	EventFishUpdated      = "fish.updated"
	EventFishDeleted      = "fish.deleted"
	EventWeighingRecorded = "weighing.recorded"
	EventWeighingUpdated  = "weighing.updated"
	EventWeighingDeleted  = "weighing.deleted"
)

// CreatedEvent is emitted after a fish type is committed to the store.
type CreatedEvent struct {
	FishID uuid.UUID
	Name   string
}

// Type implements domain.Event.
func (CreatedEvent) Type() string { return EventFishCreated }

// UpdatedEvent is emitted after a fish type edit commits.
type UpdatedEvent struct {
	FishID uuid.UUID
	Name   string
}

// Type implements domain.Event.
func (UpdatedEvent) Type() string { return EventFishUpdated }

// DeletedEvent is emitted after a fish type and its weighings are
// deleted. WeighingsDeleted carries the number of cascaded records.
type DeletedEvent struct {
	FishID           uuid.UUID
	WeighingsDeleted int64
}

// Type implements domain.Event.
func (DeletedEvent) Type() string { return EventFishDeleted }

// WeighingRecordedEvent is emitted after a new weighing commits.
type WeighingRecordedEvent struct {
	WeighingID uuid.UUID
	FishID     uuid.UUID
}

// Type implements domain.Event.
func (WeighingRecordedEvent) Type() string { return EventWeighingRecorded }

// WeighingUpdatedEvent is emitted after a weighing edit commits.
type WeighingUpdatedEvent struct {
	WeighingID uuid.UUID
	FishID     uuid.UUID
}

// Type implements domain.Event.
func (WeighingUpdatedEvent) Type() string { return EventWeighingUpdated }

// WeighingDeletedEvent is emitted after a batch delete commits.
// WeighingIDs lists only the records that actually existed.
type WeighingDeletedEvent struct {
	WeighingIDs []uuid.UUID
}

// Type implements domain.Event.
func (WeighingDeletedEvent) Type() string { return EventWeighingDeleted }
