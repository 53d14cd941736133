// Package spiraltree renders an interactive particle Christmas tree for
// [Ebitengine].
//
// Thousands of colored points fly up from a single launch point and wind
// into a spiral cone. Once settled they can be pushed around with the
// pointer and spring back home. When the last particle lands a star grows
// on the tip and an end message fades in.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	show := spiraltree.NewShow(spiraltree.DefaultConfig())
//	spiraltree.Run(show, spiraltree.RunConfig{
//		Title: "Spiral Tree", Width: 1280, Height: 720,
//	})
//
// For full control, drive a [Show] yourself. [Show.Update] advances one tick;
// feed host events into [Show.Input] and draw with a [Renderer]:
//
//	in := show.Input()
//	in.PointerMoved(x, y, w, h, false)
//	in.Triggered()
//	show.Update(1.0 / 60)
//	renderer.Draw(screen, show)
//
// # Pipeline
//
// A tick runs synchronously: pending trigger, tweens and [Growth], pointer
// repulsion in [Physics], tree spin, camera follow, then compose. Compose
// writes cartesian(anim) + offset for every particle into the tree's
// [PointCloud]. Growth owns each particle's cylindrical animated state;
// physics owns its velocity and offset. The two never write each other's
// fields.
//
// The pointer is turned into a [Ray] in the tree's local space once per
// frame, so the rotating tree is tested with a single matrix inverse.
//
// # Configuration
//
// Every constant lives in [Config]. [LoadConfig] overlays a JSON document on
// [DefaultConfig] and validates it:
//
//	cfg, err := spiraltree.LoadConfig(data)
//
// # Automation
//
// [LoadTestScript] parses a JSON list of move, click, tilt, sweep, wait and
// screenshot steps. Set it as [RunConfig.Runner] to replay a session and
// capture PNGs.
//
// Lifecycle events can be forwarded to a [Donburi] world through the
// spiraltree/ecs adapter, or collected with an [EventLog].
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package spiraltree
