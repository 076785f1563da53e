package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/replaycontrols/captions"
	"github.com/milk9111/replaycontrols/controls"
	"github.com/milk9111/replaycontrols/playback"
	"github.com/milk9111/replaycontrols/ui"
)

const (
	baseWidth  = 640
	baseHeight = 360
	fontSize   = 16
)

type Options struct {
	Captions string
	Volume   float64
	Muted    bool
	ToneHz   float64
	Watch    bool
}

type Game struct {
	owner        *playback.Owner
	captionsName  string
	captions      controls.Captions
	captionsStamp captionStamp

	face *text.Face
	view *ui.VolumeView
	ui   *ebitenui.UI

	watcher *captions.Watcher
	player  *audio.Player
}

func NewGame(opts Options) (*Game, error) {
	c, err := captions.LoadCaptions(opts.Captions)
	if err != nil {
		return nil, err
	}

	face, err := ui.LoadFace(fontSize)
	if err != nil {
		return nil, err
	}

	g := &Game{
		owner:        playback.NewOwner(playback.State{Volume: opts.Volume, IsMuted: opts.Muted}, nil),
		captionsName:  opts.Captions,
		captions:      c,
		captionsStamp: stampCaptions(opts.Captions),
		face:          face,
	}
	g.owner.Subscribe(func(s playback.State) {
		slog.Info("volume changed", "volume", s.Volume, "muted", s.IsMuted, "effective", s.EffectiveVolume())
	})

	if opts.ToneHz > 0 {
		player, err := playback.NewTonePlayer(audio.NewContext(playback.SampleRate), opts.ToneHz)
		if err != nil {
			return nil, fmt.Errorf("tone: %w", err)
		}
		g.player = player
		g.owner.SetSink(player)
		player.Play()
	}

	if opts.Watch {
		w, err := captions.NewWatcher(captions.Dir)
		if err != nil {
			slog.Warn("caption hot reload disabled", "dir", captions.Dir, "error", err)
		} else {
			g.watcher = w
		}
	}

	g.rebuildUI()
	return g, nil
}

func (g *Game) props() controls.VolumeProps {
	s := g.owner.State()
	return controls.VolumeProps{
		Captions:      g.captions,
		Volume:        s.Volume,
		IsMuted:       s.IsMuted,
		SetProperties: g.owner.SetProperties,
	}
}

func (g *Game) rebuildUI() {
	g.view = ui.NewVolumeView(g.props(), g.face)
	g.view.KeyboardEnabled = true
	g.ui = ui.NewScreen(g.view, g.captions.Label, g.face)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.reloadCaptions()

	g.view.SetProps(g.props())
	g.ui.Update()
	g.view.Update()
	return nil
}

func (g *Game) reloadCaptions() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			stamp := stampCaptions(g.captionsName)
			if stamp.same(g.captionsStamp) {
				slog.Debug("caption file unchanged", "file", name)
				continue
			}
			c, err := captions.LoadCaptions(g.captionsName)
			if err != nil {
				slog.Error("failed to reload captions", "file", name, "error", err)
				continue
			}
			slog.Info("captions reloaded", "file", name)
			g.captions = c
			g.captionsStamp = stamp
			g.rebuildUI()
		case err, ok := <-g.watcher.Errors:
			if ok {
				slog.Error("caption watcher", "error", err)
			}
		default:
			return
		}
	}
}

// captionStamp identifies the on-disk version of the selected caption file.
type captionStamp struct {
	mod    time.Time
	onDisk bool
}

func stampCaptions(name string) captionStamp {
	mod, ok := captions.ModTime(name)
	return captionStamp{mod: mod, onDisk: ok}
}

func (s captionStamp) same(o captionStamp) bool {
	return s.onDisk == o.onDisk && s.mod.Equal(o.mod)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.ui.Draw(screen)

	s := g.owner.State()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("volume: %.2f  muted: %v  FPS: %.0f", s.Volume, s.IsMuted, ebiten.ActualFPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func (g *Game) Close() error {
	if g.player != nil {
		_ = g.player.Close()
	}
	if g.watcher != nil {
		return g.watcher.Close()
	}
	return nil
}
