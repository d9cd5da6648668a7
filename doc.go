// Package sapling is the retained-mode rendering and window-shell core of a
// small UI toolkit.
//
// Sapling provides the widget tree walker that turns per-entity Bounds into
// absolute positions and invokes render objects, and the shell that polls
// native windows, turns raw input state into edge-triggered events and
// drives one Adapter per window.
//
// # Quick start
//
// Build a tree, attach components and render objects, then hand a
// SceneAdapter to a window:
//
//	store := sapling.NewMapStore()
//	tree := sapling.NewTree(1)
//	store.AddBounds(1, sapling.Rect{Width: 640, Height: 480})
//	tree.Append(1, 2)
//	store.AddBounds(2, sapling.Rect{X: 20, Y: 20, Width: 120, Height: 32})
//
//	scene := sapling.NewSceneAdapter(tree, store, theme.Default())
//	scene.SetRenderObject(2, sapling.RectangleObject{Selector: "button"})
//
//	shell := sapling.NewShell(sapling.ShellConfig{
//		Platform:   glfwshell.NewPlatform(),
//		NewSurface: raster.NewSurface,
//	})
//	w := shell.CreateWindow(scene).Title("demo").
//		Bounds(sapling.Rect{Width: 640, Height: 480}).MustBuild()
//	scene.Attach(w.Sender())
//	shell.Run()
//
// # Render walk
//
// [RenderSystem.Run] paints the "window" background, then visits the tree
// parent before child. A node whose Visibility is not [Visible] hides itself
// and its whole subtree for that frame. Every drawn node with Bounds gets its
// absolute position written to its Point component.
//
// # Shell
//
// [Shell.Step] polls each window in creation order: input, then queued
// [WindowRequest]s, then the adapter (only when dirty), then presentation
// (only when a redraw is pending). Closed windows are dropped without
// disturbing the others.
//
// Backends: glfwshell (any number of windows, GLFW) and ebitenshell (one
// window, [Ebitengine]). Helpers: raster (software surface), theme
// (TOML/YAML themes) and ecs ([Donburi] component store).
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package sapling
