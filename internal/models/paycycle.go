package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CycleStatus is the lifecycle state of a pay cycle.
type CycleStatus string

const (
	CycleDraft     CycleStatus = "draft"
	CycleActive    CycleStatus = "active"
	CycleCompleted CycleStatus = "completed"
)

// DateFormat is the layout used for pay cycle dates.
const DateFormat = "2006-01-02"

// Bucket addresses one of the twelve per-type, per-payer totals.
type Bucket struct {
	Type   SeedType
	Source PaymentSource
}

// Column returns the pay cycle column name for this bucket, e.g. "rem_needs_joint".
func (b Bucket) Column(prefix string) string {
	return prefix + "_" + b.Type.columnName() + "_" + string(b.Source)
}

// Buckets returns all twelve buckets in a stable order.
func Buckets() []Bucket {
	buckets := make([]Bucket, 0, len(SeedTypes)*len(PaymentSources))
	for _, t := range SeedTypes {
		for _, s := range PaymentSources {
			buckets = append(buckets, Bucket{Type: t, Source: s})
		}
	}
	return buckets
}

// BucketTotals maps a bucket to its amount. Missing buckets read as zero.
type BucketTotals map[Bucket]decimal.Decimal

// Get returns the amount for b, zero if unset.
func (t BucketTotals) Get(b Bucket) decimal.Decimal {
	return t[b]
}

// Add adds amount to bucket b.
func (t BucketTotals) Add(b Bucket, amount decimal.Decimal) {
	t[b] = t[b].Add(amount)
}

// Sum returns the total across all buckets.
func (t BucketTotals) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, v := range t {
		sum = sum.Add(v)
	}
	return sum
}

// AllocationTotals holds the allocated and remaining totals of a pay cycle.
type AllocationTotals struct {
	Alloc BucketTotals
	Rem   BucketTotals
}

// NewAllocationTotals returns empty totals.
func NewAllocationTotals() AllocationTotals {
	return AllocationTotals{Alloc: BucketTotals{}, Rem: BucketTotals{}}
}

// PayCycle is one budgeting period between two paydays.
type PayCycle struct {
	// ID is the unique identifier for the pay cycle (UUID format).
	ID string

	HouseholdID string

	// Name is a display label, e.g. "Mar 2026".
	Name string

	Status CycleStatus

	// StartDate and EndDate are inclusive calendar days (UTC midnight).
	StartDate time.Time
	EndDate   time.Time

	// Income snapshot carried over on rollover.
	IncomeMe      decimal.Decimal
	IncomePartner decimal.Decimal

	// Totals is the denormalized alloc_*/rem_* cache, recomputed from seeds.
	Totals AllocationTotals

	// RitualClosedAt is the Unix timestamp when the ritual was closed, 0 when open.
	RitualClosedAt int64

	CreatedAt int64
}

// RitualClosed reports whether the cycle's ritual has been closed.
func (c *PayCycle) RitualClosed() bool {
	return c.RitualClosedAt != 0
}
