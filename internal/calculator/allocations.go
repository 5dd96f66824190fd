package calculator

import (
	"github.com/Allotment-Technology-Ltd/plotbudget-v2-sub002/internal/models"
)

// ComputeAllocations derives a pay cycle's allocated and remaining totals from its seeds.
//
// Algorithm (single pass):
//   - alloc[type][source] += amount, using the seed's own payment source, so joint
//     seeds accumulate whole under the joint bucket
//   - me/partner seeds: rem[type][source] += amount while the seed is unpaid
//   - joint seeds: rem[type][joint] += amount_me while me is unpaid, and
//     += amount_partner while partner is unpaid
//
// The result is a pure function of the seeds; callers persist it wholesale rather
// than adjusting stored totals incrementally.
func ComputeAllocations(seeds []*models.Seed) models.AllocationTotals {
	totals := models.NewAllocationTotals()

	for _, seed := range seeds {
		bucket := seed.Bucket()
		totals.Alloc.Add(bucket, seed.Amount)

		if !seed.IsJoint() {
			if !seed.IsPaid {
				totals.Rem.Add(bucket, seed.Amount)
			}
			continue
		}

		if !seed.IsPaidMe {
			totals.Rem.Add(bucket, seed.AmountMe)
		}
		if !seed.IsPaidPartner {
			totals.Rem.Add(bucket, seed.AmountPartner)
		}
	}

	return totals
}
