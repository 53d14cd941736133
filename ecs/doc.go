// Package ecs provides ECS adapters for spiraltree's show lifecycle events.
//
// [NewDonburiStore] bridges show events (started, growth complete, tilt
// wired or denied, audio failed) into a [Donburi] world as typed events.
// Subscribe to [ShowEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	show.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
