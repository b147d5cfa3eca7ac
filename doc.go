// Package adscene is the scene core of a point-and-click adventure engine
// for [Ebitengine]: walkable regions, waypoint graphs, an incremental path
// planner, depth-sorted drawing and a scrolling camera.
//
// # Quick start
//
// Describe the scene in YAML and hand it to [Run]:
//
//	scene, err := adscene.LoadScene(f, adscene.NewGame(640, 480))
//	if err != nil {
//		log.Fatal(err)
//	}
//	adscene.Run(scene, adscene.RunConfig{Title: "Hall", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Scenes and layers
//
// A [Scene] holds ordered [Layer] values, each an ordered list of nodes.
// A node is either an [EntityNode] (static scenery) or a [RegionNode]
// (a polygon). Exactly one layer may be the main layer: it defines the
// scene's size, and its regions define where objects can walk. Later
// regions override earlier ones at the same point; points no region covers
// are not walkable.
//
// # Objects
//
// Anything that moves implements [Movable]. Global objects live on the
// [Game] and appear in every scene; scene objects belong to one scene.
// Objects are drawn sorted by Y, either inside the content pass of the
// region they stick to or in the free-object pass of the main layer.
// [Actor] is the built-in walking object.
//
// # Path finding
//
// [Scene.FindPath] starts a search and returns immediately. The search runs
// during [Scene.Update], bounded by [SceneConfig].PathMaxTime per frame.
// Poll [Path.Ready]; a ready path with no points means the target was
// unreachable. Only one search runs at a time and further requests are
// refused until it finishes.
//
// # Camera
//
// [Scene.ScrollTo] moves the camera smoothly, [Scene.SkipTo] snaps it.
// With [SceneConfig].AutoScroll the camera follows the game's main object.
// With [SceneConfig].Parallax each layer scrolls proportionally to its size.
//
// # ECS integration
//
// Path events can be bridged into a [Donburi] world with the adapter in
// adscene/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package adscene
