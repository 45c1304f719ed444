package summarizer

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/negadras/summarizer-go/store"
)

// PendingActionsKey is the persistent-store key holding actions queued while
// offline.
const PendingActionsKey = "pendingSummaryActions"

const (
	ActionSave   = "save"
	ActionUnsave = "unsave"
)

// PendingAction is one save/unsave deferred until connectivity returns.
type PendingAction struct {
	Action    string `json:"action"` // ActionSave or ActionUnsave
	SummaryID string `json:"summaryId"`
	Timestamp int64  `json:"timestamp"` // unix millis, when the action was queued
}

// PendingQueue persists deferred actions as a single JSON array under
// PendingActionsKey. The mutex serializes the read-modify-write of Append
// against concurrent appenders on the same queue instance.
type PendingQueue struct {
	mu sync.Mutex
	kv store.Store
}

func NewPendingQueue(kv store.Store) *PendingQueue {
	return &PendingQueue{kv: kv}
}

// Append adds action to the queue. A zero Timestamp is filled with the
// current time. A corrupt stored queue is discarded rather than blocking new
// actions.
func (q *PendingQueue) Append(ctx context.Context, action PendingAction) error {
	if action.Timestamp == 0 {
		action.Timestamp = time.Now().UnixMilli()
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	actions, err := q.load(ctx)
	if err != nil {
		actions = nil
	}
	actions = append(actions, action)

	b, err := json.Marshal(actions)
	if err != nil {
		return err
	}
	return q.kv.Set(ctx, PendingActionsKey, b)
}

// List returns the queued actions in append order.
func (q *PendingQueue) List(ctx context.Context) ([]PendingAction, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.load(ctx)
}

// Clear drops the whole queue.
func (q *PendingQueue) Clear(ctx context.Context) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.kv.Delete(ctx, PendingActionsKey)
}

func (q *PendingQueue) load(ctx context.Context) ([]PendingAction, error) {
	b, ok, err := q.kv.Get(ctx, PendingActionsKey)
	if err != nil || !ok {
		return nil, err
	}
	var actions []PendingAction
	if err := json.Unmarshal(b, &actions); err != nil {
		return nil, err
	}
	return actions, nil
}
