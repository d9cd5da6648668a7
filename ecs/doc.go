// Package ecs backs sapling's component store with a [Donburi] world.
//
// [NewStore] implements [sapling.Store] over the Bounds, Visibility and
// Position component types declared here, and [EventBridge] republishes the
// input events a SceneAdapter queues as typed Donburi events.
//
// Usage:
//
//	world := donburi.NewWorld()
//	store := ecs.NewStore(world)
//	root := store.NewWidget(sapling.Rect{Width: 640, Height: 480})
//	scene := sapling.NewSceneAdapter(sapling.NewTree(root), store, th)
//	scene.OnEvents = ecs.EventBridge(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
