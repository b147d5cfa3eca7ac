// Package ecs provides ECS adapters for adscene.
//
// The primary adapter is [NewDonburiSink], which bridges adscene path
// planner events into a [Donburi] world as typed events. Subscribe to
// [PathEventType] in your ECS systems to receive them.
//
// Usage:
//
//	game.Events = ecs.NewDonburiSink(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
