package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/grid-overlay/config"
	"github.com/lixenwraith/grid-overlay/core"
	"github.com/lixenwraith/grid-overlay/engine"
	"github.com/lixenwraith/grid-overlay/input"
	"github.com/lixenwraith/grid-overlay/logger"
	"github.com/lixenwraith/grid-overlay/overlay"
	"github.com/lixenwraith/grid-overlay/parameter"
	"github.com/lixenwraith/grid-overlay/scheme"
	"github.com/lixenwraith/grid-overlay/status"
	"github.com/lixenwraith/grid-overlay/world"
)

var (
	configFlag  = flag.String("config", "overlay.yaml", "Overlay configuration file")
	schemesFlag = flag.String("schemes", "", "Directory of additional color scheme YAML files")
	exportFlag  = flag.String("export", "exports", "Directory for exported overlay reports")
	logFlag     = flag.String("log", "logs/overlay.log", "Debug log file")
	debugFlag   = flag.Bool("debug", false, "Enable debug logging")
)

// hotbar maps number keys to held items
var hotbar = map[rune]string{
	'1': world.ItemCherryBomb,
	'2': world.ItemBomb,
	'3': world.ItemMegaBomb,
	'4': world.ItemSprinkler,
	'5': world.ItemQualitySprinkler,
	'6': world.ItemIridiumSprinkler,
	'7': world.ItemScarecrow,
	'8': world.ItemDeluxeScarecrow,
	'9': itemNozzle,
	'0': "",
}

// sandbox is the host the overlay runs inside
type sandbox struct {
	screen tcell.Screen
	farm   *world.Map
	ctl    *engine.Controller
	keys   *input.State
	stats  *status.Registry
	log    *zap.Logger

	camera core.Point
	cursor core.Point
	player world.PlayerState
	notice string
}

func main() {
	defer func() {
		handleCrash(recover())
	}()
	flag.Parse()

	log, err := logger.New(logger.Options{Debug: *debugFlag, Path: *logFlag})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	cfg, err := config.LoadFile(*configFlag, config.Default())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	schemes, err := loadSchemes(*schemesFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	stats := status.NewRegistry()
	ctl, err := engine.NewController(cfg, schemes, engine.Options{
		Logger:  log,
		Metrics: stats,
		Persist: func(c *config.Config) error {
			return c.SaveFile(*configFlag)
		},
		ExportSink: exportSink(*exportFlag),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer ctl.Close()
	if err := registerExtensions(ctl); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	crashScreen = screen

	sb := &sandbox{
		screen: screen,
		farm:   buildFarm(),
		ctl:    ctl,
		keys:   input.NewState(),
		stats:  stats,
		log:    log,
		cursor: core.Point{X: 20, Y: 15},
	}
	sb.run()
}

func loadSchemes(dir string) (map[string]*scheme.Scheme, error) {
	schemes, err := scheme.Builtin()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return schemes, nil
	}
	extra, err := scheme.Load(os.DirFS(dir), ".")
	if err != nil {
		return nil, err
	}
	for name, s := range extra {
		schemes[name] = s
	}
	return schemes, nil
}

func exportSink(dir string) func(string) (io.WriteCloser, error) {
	return func(layerID string) (io.WriteCloser, error) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		name := fmt.Sprintf("%s-%s.json", layerID, time.Now().Format("20060102-150405"))
		return os.Create(filepath.Join(dir, name))
	}
}

func (sb *sandbox) run() {
	ticker := time.NewTicker(parameter.TickInterval)
	defer ticker.Stop()

	// Ticks are delivered through the event loop so all state stays on one goroutine
	goSafe(func() {
		for range ticker.C {
			_ = sb.screen.PostEvent(tcell.NewEventInterrupt(nil))
		}
	})

	for {
		switch ev := sb.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			sb.screen.Sync()
		case *tcell.EventKey:
			if sb.handleKey(ev) {
				return
			}
		case *tcell.EventInterrupt:
			frame := sb.frame()
			sb.ctl.Tick(frame, sb.keys)
			sb.keys.Clear()
			sb.draw(frame)
		}
	}
}

// handleKey applies sandbox keys and queues the press for the overlay; true quits
func (sb *sandbox) handleKey(ev *tcell.EventKey) bool {
	sb.keys.Press(ev)

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		sb.moveCursor(0, -1)
	case tcell.KeyDown:
		sb.moveCursor(0, 1)
	case tcell.KeyLeft:
		sb.moveCursor(-1, 0)
	case tcell.KeyRight:
		sb.moveCursor(1, 0)
	case tcell.KeyRune:
		return sb.handleRune(ev.Rune())
	}
	return false
}

func (sb *sandbox) handleRune(r rune) bool {
	if item, ok := hotbar[r]; ok {
		sb.player.HeldItem = item
		sb.player.Construction = ""
		return false
	}

	switch r {
	case 'q', 'Q':
		return true
	case 'w':
		sb.camera.Y--
	case 's':
		sb.camera.Y++
	case 'a':
		sb.camera.X--
	case 'd':
		sb.camera.X++
	case 'h':
		if sb.player.Construction == "" {
			sb.player.Construction = world.BuildingJunimoHut
		} else {
			sb.player.Construction = ""
		}
	case ' ':
		sb.place()
	case 'x':
		sb.farm.Remove(sb.cursor)
	case 'r':
		sb.reload()
	case 't':
		sb.ctl.ReturnToTitle()
		sb.notice = "returned to title"
	}
	return false
}

func (sb *sandbox) moveCursor(dx, dy int) {
	next := sb.cursor.Add(core.Point{X: dx, Y: dy})
	if sb.farm.Bounds().Contains(next) {
		sb.cursor = next
	}
}

func (sb *sandbox) place() {
	kind := sb.player.HeldItem
	if sb.player.Constructing() {
		kind = sb.player.Construction
	}
	if kind == "" {
		return
	}
	sb.farm.Place(kind, sb.cursor)
}

func (sb *sandbox) reload() {
	cfg, err := config.LoadFile(*configFlag, config.Default())
	if err == nil {
		err = sb.ctl.ReloadConfig(cfg)
	}
	if err != nil {
		sb.notice = err.Error()
		sb.log.Warn("reload failed", zap.Error(err))
		return
	}
	sb.notice = "config reloaded"
}

// frame snapshots the host state for this tick
func (sb *sandbox) frame() overlay.Frame {
	w, h := sb.screen.Size()
	view := core.Area{
		X:      sb.camera.X,
		Y:      sb.camera.Y,
		Width:  w / cellWidth,
		Height: max(h-statusRows, 0),
	}
	return overlay.Frame{
		Location: sb.farm,
		Visible:  core.NewVisibleRegion(view.Intersect(sb.farm.Bounds())),
		Cursor:   sb.cursor,
		Player:   sb.player,
	}
}
