package service

import (
	"sort"

	authModel "github.com/RootViper4/admin-portabitity/internal/auth/model"
	"github.com/RootViper4/admin-portabitity/internal/dashboard/model"
	requestModel "github.com/RootViper4/admin-portabitity/internal/request/model"
)

// Categorize partitions the full request snapshot into role-dependent
// buckets. It is pure: identical inputs always yield identical buckets,
// independent of prior calls, and the input slice is never mutated.
//
// scope is the admin's operator and is only meaningful for ProviderAdmin.
func Categorize(
	requests []requestModel.PortabilityRequest,
	role authModel.Role,
	scope requestModel.Operator,
) model.Buckets {
	buckets := model.Buckets{
		Outgoing:          []requestModel.PortabilityRequest{},
		Incoming:          []requestModel.PortabilityRequest{},
		ValidatedIncoming: []requestModel.PortabilityRequest{},
		SuperAdmin:        map[requestModel.Operator]*model.OperatorBuckets{},
	}

	if role == authModel.RoleGuest {
		return buckets
	}

	if role == authModel.RoleSuperAdmin {
		for _, op := range requestModel.AllOperators() {
			buckets.SuperAdmin[op] = &model.OperatorBuckets{
				Outgoing:  []requestModel.PortabilityRequest{},
				Validated: []requestModel.PortabilityRequest{},
			}
		}
	}

	for _, req := range requests {
		switch role {
		case authModel.RoleSuperAdmin:
			// Group PENDING and Validated by source provider; Rejected is
			// not surfaced anywhere in the SuperAdmin view.
			if group, ok := buckets.SuperAdmin[req.SourceProvider]; ok {
				switch req.Status {
				case requestModel.StatusPending:
					group.Outgoing = append(group.Outgoing, req)
				case requestModel.StatusValidated:
					group.Validated = append(group.Validated, req)
				}
			}

			// Flat aggregate of every PENDING request regardless of source.
			if req.Status == requestModel.StatusPending {
				buckets.Outgoing = append(buckets.Outgoing, req)
			}

		case authModel.RoleProviderAdmin:
			if !scope.Valid() {
				continue
			}

			// The three predicates are mutually exclusive by construction:
			// PENDING-as-source vs PENDING-as-target vs Validated-as-target.
			switch {
			case req.SourceProvider == scope && req.Status == requestModel.StatusPending:
				buckets.Outgoing = append(buckets.Outgoing, req)
			case req.TargetProvider == scope && req.Status == requestModel.StatusPending:
				buckets.Incoming = append(buckets.Incoming, req)
			case req.TargetProvider == scope && req.Status == requestModel.StatusValidated:
				buckets.ValidatedIncoming = append(buckets.ValidatedIncoming, req)
			}
		}
	}

	sortBySubmittedDesc(buckets.Outgoing)
	sortBySubmittedDesc(buckets.Incoming)
	sortBySubmittedDesc(buckets.ValidatedIncoming)
	for _, group := range buckets.SuperAdmin {
		sortBySubmittedDesc(group.Outgoing)
		sortBySubmittedDesc(group.Validated)
	}

	return buckets
}

// sortBySubmittedDesc orders a bucket most recent first. Missing timestamps
// sort as the minimum value; ties keep input order (stable sort).
func sortBySubmittedDesc(requests []requestModel.PortabilityRequest) {
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].SubmittedTime().After(requests[j].SubmittedTime())
	})
}
