package domain

import "time"

// UpdateVisitor has one visit operation per ScheduleUpdate variant.
// Adding a variant means adding a method here, which breaks every visitor
// until it handles the new case.
type UpdateVisitor interface {
	VisitVesselCode(u VesselCodeUpdate) error
	VisitEstimateTime(u EstimateTimeUpdate) error
	VisitDirection(u DirectionUpdate) error
}

// ScheduleUpdate is the closed set of edits a schedule can receive.
type ScheduleUpdate interface {
	Accept(v UpdateVisitor) error
	isScheduleUpdate()
}

type VesselCodeUpdate struct {
	OldVesselCode string
	NewVesselCode string
}

func (u VesselCodeUpdate) Accept(v UpdateVisitor) error { return v.VisitVesselCode(u) }
func (VesselCodeUpdate) isScheduleUpdate()              {}

type EstimateTimeUpdate struct {
	OldETA, NewETA time.Time
	OldETB, NewETB time.Time
	OldETD, NewETD time.Time
}

func (u EstimateTimeUpdate) Accept(v UpdateVisitor) error { return v.VisitEstimateTime(u) }
func (EstimateTimeUpdate) isScheduleUpdate()              {}

type DirectionUpdate struct {
	OldDirection string
	NewDirection string
}

func (u DirectionUpdate) Accept(v UpdateVisitor) error { return v.VisitDirection(u) }
func (DirectionUpdate) isScheduleUpdate()              {}
