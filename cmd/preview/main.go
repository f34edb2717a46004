package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/topdown/assets"
	"github.com/milk9111/topdown/ecs/component"
)

const previewSize = 512

// previewGame loops one asset folder as an animation.
type previewGame struct {
	dir  string
	anim *component.Animation
}

func (g *previewGame) Update() error {
	g.anim.Update()
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s (%d frames)", g.dir, len(g.anim.Frames)))

	frame := g.anim.Frame()
	if frame == nil {
		return
	}
	fw := frame.Bounds().Dx()
	fh := frame.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(previewSize-fw)/2, float64(previewSize-fh)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(frame, op)
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewSize, previewSize
}

func main() {
	dir := flag.String("dir", "player/down", "asset folder to animate, relative to the graphics root")
	root := flag.String("assets", "", "graphics directory on disk (default: embedded graphics)")
	speed := flag.Float64("speed", component.DefaultAnimationSpeed, "frames advanced per tick")
	mirror := flag.Bool("mirror", false, "flip the frames horizontally")
	list := flag.Bool("list", false, "list asset folders and exit")
	flag.Parse()

	var (
		lib *assets.Library
		err error
	)
	if *root != "" {
		lib, err = assets.Load(os.DirFS(*root), ".")
	} else {
		lib, err = assets.LoadDefault()
	}
	if err != nil {
		log.Fatal(err)
	}

	if *list {
		for _, d := range lib.Dirs() {
			fmt.Println(d)
		}
		return
	}

	frames := lib.Frames(*dir)
	if *mirror {
		frames = lib.Mirrored(*dir)
	}
	if len(frames) == 0 {
		log.Fatalf("no frames in %s", *dir)
	}

	g := &previewGame{dir: *dir, anim: component.NewAnimation(frames, *speed, true)}
	ebiten.SetWindowSize(previewSize, previewSize)
	ebiten.SetWindowTitle("Asset Preview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
