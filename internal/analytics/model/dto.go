// Package model provides data transfer objects for the analytics module.
package model

import (
	requestModel "github.com/RootViper4/admin-portabitity/internal/request/model"
)

// OperatorAnalytics is the derived aggregate for one operator: how many
// numbers joined it, how many left it, and the balance. Never persisted,
// recomputed on every input change.
type OperatorAnalytics struct {
	Entries int `json:"entries"`
	Exits   int `json:"exits"`
	Net     int `json:"net"`
}

// YearBreakdown maps operators to their aggregates within one calendar year.
type YearBreakdown map[requestModel.Operator]*OperatorAnalytics

// Report is the full aggregation result. Years is the display list of years
// sorted most recent first; for ProviderAdmin it is empty because the annual
// breakdown is a SuperAdmin-only view, even though Annual is still computed.
type Report struct {
	Annual        map[int]YearBreakdown
	OverallTotals map[requestModel.Operator]*OperatorAnalytics
	Years         []int
}

// AnalyticsResponse is the HTTP shape of a report. Annual carries only the
// years listed in Years.
type AnalyticsResponse struct {
	Role          string                               `json:"role"`
	Years         []int                                `json:"years"`
	Annual        map[int]map[string]OperatorAnalytics `json:"annual"`
	OverallTotals map[string]OperatorAnalytics         `json:"overallTotals"`
}
