// Package ecs provides ECS adapters for scrollfx.
//
// The primary adapter is [NewDonburiSink], which bridges sticker lifecycle
// transitions (loading, entrance, active, exit, failed) into a [Donburi]
// world as typed events. Subscribe to [PhaseEventType] in your ECS systems
// to receive them, or call [TrackPhase] to keep the latest phase on an
// entity.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	page, err := landing.NewPage(scene, cfg, landing.WithEventSink(sink))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
