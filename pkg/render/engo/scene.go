// pkg/render/engo/scene.go
package engo

import (
	"bytes"

	"github.com/EngoEngine/ecs"
	"github.com/EngoEngine/engo"
	"github.com/EngoEngine/engo/common"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/opd-ai/go-waverider/pkg/engine"
	"github.com/opd-ai/go-waverider/pkg/event"
	"github.com/opd-ai/go-waverider/pkg/logging"
	"github.com/opd-ai/go-waverider/pkg/render"
)

// SimScene is the windowed front end. It owns an ecs world whose systems
// step the simulation session and draw the frame each engo tick.
type SimScene struct {
	world *ecs.World

	session  *engine.Session
	eventBus *event.Bus
	logger   *logging.Logger

	renderer *SceneRenderer
	hud      *HUDSystem

	oceanSegments int
	oceanExtent   float64
}

// NewSimScene wires a scene around an already-constructed session. The
// session's input provider should be a KeyboardProvider for live piloting.
func NewSimScene(session *engine.Session, eventBus *event.Bus, logger *logging.Logger) *SimScene {
	if logger == nil {
		logger = logging.NewLogger()
	}
	return &SimScene{
		world:         &ecs.World{},
		session:       session,
		eventBus:      eventBus,
		logger:        logger.WithComponent("scene"),
		oceanSegments: session.Config.Display.OceanSegments,
		oceanExtent:   session.Config.Display.OceanExtent,
	}
}

// Type returns the scene type (required by engo).
func (scene *SimScene) Type() string {
	return "SimScene"
}

// Preload loads the HUD font into engo's file registry (required by engo).
func (scene *SimScene) Preload() {
	if err := engo.Files.LoadReaderData("go.ttf", bytes.NewReader(goregular.TTF)); err != nil {
		scene.logger.ErrorErr("failed to preload HUD font", err)
	}
}

// Setup builds the world's systems and starts the session (required by engo).
func (scene *SimScene) Setup(u engo.Updater) {
	world, ok := u.(*ecs.World)
	if !ok {
		panic("updater is not an ecs world")
	}
	scene.world = world

	SetupInputBindings()

	scene.renderer = NewSceneRenderer(scene.world, scene.oceanSegments, scene.oceanExtent,
		scene.session.Config.Display.Shadows)
	if err := scene.renderer.Initialize(); err != nil {
		panic("failed to initialize renderer: " + err.Error())
	}

	scene.hud = NewHUDSystem()
	if err := scene.hud.Initialize(scene.renderer.renderSystem); err != nil {
		panic("failed to initialize HUD: " + err.Error())
	}
	scene.world.AddSystem(scene.hud)

	scene.world.AddSystem(&simSystem{scene: scene})

	scene.subscribeToEvents()
	scene.session.Start()
}

// Exit stops the session when the window closes (required by engo).
func (scene *SimScene) Exit() {
	scene.session.Stop()
}

// subscribeToEvents routes simulation events into HUD feedback.
func (scene *SimScene) subscribeToEvents() {
	if scene.eventBus == nil {
		return
	}
	scene.eventBus.Subscribe(event.BoostEngaged, func(e event.Event) {
		scene.hud.FlashBoost()
		scene.renderer.FlashPulse()
	})
	scene.eventBus.Subscribe(event.CraftReset, func(e event.Event) {
		scene.logger.Info("craft reset to spawn")
	})
}

// simSystem advances the session and pushes the frame through the renderer
// once per engo update.
type simSystem struct {
	scene *SimScene
}

// Add satisfies the ecs.System interface.
func (s *simSystem) Add(basic *ecs.BasicEntity, render *common.RenderComponent, space *common.SpaceComponent) {
}

// Remove satisfies the ecs.System interface.
func (s *simSystem) Remove(basic ecs.BasicEntity) {}

// Update steps the simulation by engo's frame delta and draws the result.
func (s *simSystem) Update(dt float32) {
	scene := s.scene
	scene.session.Step(float64(dt))

	frame := scene.session.Snapshot()
	render.DrawFrame(scene.renderer, scene.session)
	scene.hud.UpdateFrame(frame)
}
