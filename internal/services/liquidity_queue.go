package services

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"shiftbox/internal/logger"
	"shiftbox/internal/models"
)

// LiquidityQueue holds withdrawals deferred by admission control until the
// pool can service them. Positions are assigned monotonically on enqueue;
// completion estimates derive from queue depth and the observed spacing
// between dequeues. Unlike the pure services, the queue holds state and is
// safe for concurrent use.
type LiquidityQueue struct {
	mu            sync.Mutex
	nextPosition  int64
	items         []models.QueuedWithdrawal
	drainInterval time.Duration
	lastDequeue   time.Time
}

// NewLiquidityQueue creates an empty queue. seedDrainInterval is the
// assumed time to service one withdrawal until real dequeues are observed.
func NewLiquidityQueue(seedDrainInterval time.Duration) *LiquidityQueue {
	if seedDrainInterval <= 0 {
		seedDrainInterval = time.Minute
	}
	return &LiquidityQueue{drainInterval: seedDrainInterval}
}

// Enqueue appends a withdrawal and returns its queue placement.
func (q *LiquidityQueue) Enqueue(amount decimal.Decimal, now time.Time) models.QueuedWithdrawal {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.nextPosition++
	item := models.QueuedWithdrawal{
		Position:            q.nextPosition,
		Amount:              amount,
		EnqueuedAt:          now,
		EstimatedCompletion: now.Add(time.Duration(len(q.items)+1) * q.drainInterval),
	}
	q.items = append(q.items, item)

	logger.Get().Infow("withdrawal queued",
		"position", item.Position,
		"amount", amount.String(),
		"depth", len(q.items),
		"estimated_completion", item.EstimatedCompletion,
	)
	return item
}

// Dequeue removes and returns the oldest queued withdrawal, folding the
// observed spacing since the previous dequeue into the drain estimate.
func (q *LiquidityQueue) Dequeue(now time.Time) (models.QueuedWithdrawal, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return models.QueuedWithdrawal{}, false
	}

	head := q.items[0]
	q.items = q.items[1:]

	if !q.lastDequeue.IsZero() {
		if observed := now.Sub(q.lastDequeue); observed > 0 {
			// Equal-weight moving average of seed and observed spacing.
			q.drainInterval = (q.drainInterval + observed) / 2
		}
	}
	q.lastDequeue = now

	return head, true
}

// Depth returns the number of withdrawals currently waiting.
func (q *LiquidityQueue) Depth() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// EstimateCompletion returns when a withdrawal enqueued now would complete.
func (q *LiquidityQueue) EstimateCompletion(now time.Time) time.Time {
	q.mu.Lock()
	defer q.mu.Unlock()
	return now.Add(time.Duration(len(q.items)+1) * q.drainInterval)
}
