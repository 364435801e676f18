package service

import (
	"sort"

	"github.com/RootViper4/admin-portabitity/internal/analytics/model"
	authModel "github.com/RootViper4/admin-portabitity/internal/auth/model"
	requestModel "github.com/RootViper4/admin-portabitity/internal/request/model"
)

// Aggregate folds the full request snapshot into per-year, per-operator
// entry/exit counters plus running totals. It is pure: identical inputs
// always yield identical aggregates, and the fold is commutative and
// associative, so evaluation order never changes the result.
//
// A request is simultaneously an exit-event for its source operator and an
// entry-event for its target operator; each is counted independently and at
// most once. Requests whose submission timestamp cannot be resolved to
// a calendar year are excluded here entirely.
func Aggregate(
	requests []requestModel.PortabilityRequest,
	tracked []requestModel.Operator,
	role authModel.Role,
) *model.Report {
	trackedSet := make(map[requestModel.Operator]struct{}, len(tracked))
	for _, op := range tracked {
		trackedSet[op] = struct{}{}
	}

	annual := make(map[int]model.YearBreakdown)

	for i := range requests {
		req := &requests[i]

		year, ok := req.SubmittedYear()
		if !ok {
			continue
		}

		breakdown, exists := annual[year]
		if !exists {
			breakdown = make(model.YearBreakdown, 4)
			for _, op := range requestModel.AllOperators() {
				breakdown[op] = &model.OperatorAnalytics{}
			}
			annual[year] = breakdown
		}

		if _, isTracked := trackedSet[req.SourceProvider]; isTracked || role == authModel.RoleSuperAdmin {
			if cell, known := breakdown[req.SourceProvider]; known {
				cell.Exits++
			}
		}
		if _, isTracked := trackedSet[req.TargetProvider]; isTracked || role == authModel.RoleSuperAdmin {
			if cell, known := breakdown[req.TargetProvider]; known {
				cell.Entries++
			}
		}
	}

	years := make([]int, 0, len(annual))
	for year := range annual {
		years = append(years, year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	for _, breakdown := range annual {
		for _, cell := range breakdown {
			cell.Net = cell.Entries - cell.Exits
		}
	}

	totals := make(map[requestModel.Operator]*model.OperatorAnalytics, len(tracked))
	for _, op := range tracked {
		totals[op] = &model.OperatorAnalytics{}
	}
	for _, breakdown := range annual {
		for _, op := range tracked {
			if cell, known := breakdown[op]; known {
				totals[op].Entries += cell.Entries
				totals[op].Exits += cell.Exits
				totals[op].Net += cell.Net
			}
		}
	}

	// The annual breakdown is a SuperAdmin-only view; a ProviderAdmin gets
	// only the running totals for their own operator.
	if role == authModel.RoleProviderAdmin {
		years = []int{}
	}

	return &model.Report{
		Annual:        annual,
		OverallTotals: totals,
		Years:         years,
	}
}
