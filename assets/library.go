package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/png"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Library holds decoded graphics keyed by path (without extension) and
// grouped by folder for animations and variant sets.
type Library struct {
	images  map[string]*ebiten.Image
	sources map[string]image.Image
	frames  map[string][]string
	flipped map[string][]*ebiten.Image
}

// Load decodes every PNG under root in fsys.
func Load(fsys fs.FS, root string) (*Library, error) {
	l := &Library{
		images:  make(map[string]*ebiten.Image),
		sources: make(map[string]image.Image),
		frames:  make(map[string][]string),
		flipped: make(map[string][]*ebiten.Image),
	}
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(path.Ext(p), ".png") {
			return nil
		}
		b, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("assets: read %s: %w", p, err)
		}
		img, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			return fmt.Errorf("assets: decode %s: %w", p, err)
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(p, root), "/")
		key := cleanAssetPath(rel)
		l.sources[key] = img
		l.images[key] = ebiten.NewImageFromImage(img)
		dir := path.Dir(key)
		l.frames[dir] = append(l.frames[dir], key)
		return nil
	})
	if err != nil {
		return nil, err
	}
	for dir := range l.frames {
		sort.Slice(l.frames[dir], func(i, j int) bool {
			return frameLess(path.Base(l.frames[dir][i]), path.Base(l.frames[dir][j]))
		})
	}
	return l, nil
}

// Image returns a single graphic, or nil when missing.
func (l *Library) Image(name string) *ebiten.Image {
	if l == nil {
		return nil
	}
	return l.images[cleanAssetPath(name)]
}

// Frames returns every graphic in a folder in frame order.
func (l *Library) Frames(dir string) []*ebiten.Image {
	if l == nil {
		return nil
	}
	keys := l.frames[cleanAssetPath(dir)]
	out := make([]*ebiten.Image, 0, len(keys))
	for _, k := range keys {
		out = append(out, l.images[k])
	}
	return out
}

// Mirrored returns the folder's frames flipped horizontally. Results are cached.
func (l *Library) Mirrored(dir string) []*ebiten.Image {
	if l == nil {
		return nil
	}
	key := cleanAssetPath(dir)
	if out, ok := l.flipped[key]; ok {
		return out
	}
	keys := l.frames[key]
	out := make([]*ebiten.Image, 0, len(keys))
	for _, k := range keys {
		out = append(out, ebiten.NewImageFromImage(flipHorizontal(l.sources[k])))
	}
	l.flipped[key] = out
	return out
}

// Require reports the first name that is neither an image nor a folder.
func (l *Library) Require(names ...string) error {
	var missing []string
	for _, name := range names {
		key := cleanAssetPath(name)
		if _, ok := l.images[key]; ok {
			continue
		}
		if len(l.frames[key]) > 0 {
			continue
		}
		missing = append(missing, name)
	}
	if len(missing) > 0 {
		return fmt.Errorf("assets: missing %s", strings.Join(missing, ", "))
	}
	return nil
}

func flipHorizontal(src image.Image) image.Image {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	w := b.Dx()
	for y := 0; y < b.Dy(); y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+w*4]
		for x := 0; x < w/2; x++ {
			l, r := x*4, (w-1-x)*4
			for c := 0; c < 4; c++ {
				row[l+c], row[r+c] = row[r+c], row[l+c]
			}
		}
	}
	return dst
}

// frameLess orders numeric names numerically and everything else lexically,
// so "2" sorts before "10".
func frameLess(a, b string) bool {
	an, aErr := strconv.Atoi(strings.TrimSuffix(a, path.Ext(a)))
	bn, bErr := strconv.Atoi(strings.TrimSuffix(b, path.Ext(b)))
	if aErr == nil && bErr == nil {
		return an < bn
	}
	return a < b
}

// Random picks one graphic from a folder using intn, or nil when empty.
func (l *Library) Random(dir string, intn func(int) int) *ebiten.Image {
	frames := l.Frames(dir)
	if len(frames) == 0 {
		return nil
	}
	return frames[intn(len(frames))]
}

// Dirs lists every folder that holds graphics, sorted.
func (l *Library) Dirs() []string {
	if l == nil {
		return nil
	}
	dirs := make([]string, 0, len(l.frames))
	for dir := range l.frames {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}
