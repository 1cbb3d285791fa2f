package main

import (
	"fmt"
	"image/color"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-caves/config"
	"ebiten-caves/generation"
	"ebiten-caves/grid"
	"ebiten-caves/meshing"
)

// View modes cycled with Tab.
type viewMode int

const (
	modeTiles viewMode = iota
	modeWireframe
	modeOutlines
	modeCount
)

func (m viewMode) String() string {
	switch m {
	case modeTiles:
		return "tiles"
	case modeWireframe:
		return "wireframe"
	case modeOutlines:
		return "outlines"
	}
	return "unknown"
}

var (
	colorWallTile  = color.RGBA{96, 86, 76, 255}
	colorFloorTile = color.RGBA{34, 30, 28, 255}
	colorCeiling   = color.RGBA{200, 180, 140, 255}
	colorFloorMesh = color.RGBA{70, 110, 150, 255}
	colorOutline   = color.RGBA{240, 90, 60, 255}
)

// CaveViewer implements ebiten.Game: an interactive top-down view of the
// generated cave and its meshes.
type CaveViewer struct {
	cfg  generation.Config
	opts meshing.CaveOptions

	caveMap *grid.Map
	chunks  []meshing.ChunkMesh

	mode       viewMode
	camX, camY float64
	zoom       float64
}

// NewCaveViewer generates the initial cave and centers the camera on it.
func NewCaveViewer(cfg generation.Config, opts meshing.CaveOptions) (*CaveViewer, error) {
	v := &CaveViewer{
		cfg:  cfg,
		opts: opts,
		zoom: config.DefaultZoom,
	}
	if err := v.regenerate(); err != nil {
		return nil, err
	}
	v.centerCamera()
	return v, nil
}

// regenerate rebuilds the map and all chunk meshes from the current config.
func (v *CaveViewer) regenerate() error {
	m, err := generation.Generate(v.cfg)
	if err != nil {
		return err
	}
	chunks, err := meshing.BuildCave(m, v.opts)
	if err != nil {
		return err
	}
	v.caveMap = m
	v.chunks = chunks
	return nil
}

func (v *CaveViewer) centerCamera() {
	v.camX = v.caveMap.PositionX + float64(v.caveMap.Width*v.caveMap.SquareSize)/2
	v.camY = v.caveMap.PositionY + float64(v.caveMap.Height*v.caveMap.SquareSize)/2
}

// Update handles input: R regenerates with a fresh seed, Tab cycles the
// view mode, arrows or WASD pan, wheel or +/- zoom, Esc quits.
func (v *CaveViewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.cfg.Seed = strconv.FormatInt(time.Now().UnixNano(), 10)
		if err := v.regenerate(); err != nil {
			return err
		}
		v.centerCamera()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		v.mode = (v.mode + 1) % modeCount
	}

	pan := config.PanSpeed * config.DefaultZoom / v.zoom
	if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		v.camX -= pan
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		v.camX += pan
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		v.camY -= pan
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		v.camY += pan
	}

	_, wheel := ebiten.Wheel()
	if wheel > 0 || inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		v.zoom *= config.ZoomStep
	}
	if wheel < 0 || inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		v.zoom /= config.ZoomStep
	}
	v.zoom = min(max(v.zoom, config.MinZoom), config.MaxZoom)

	return nil
}

// project converts a world XZ position to screen pixels.
func (v *CaveViewer) project(wx, wz float64) (float32, float32) {
	sx := (wx-v.camX)*v.zoom + config.WindowWidth/2
	sy := (wz-v.camY)*v.zoom + config.WindowHeight/2
	return float32(sx), float32(sy)
}

// Draw renders the current view mode plus the HUD.
func (v *CaveViewer) Draw(screen *ebiten.Image) {
	switch v.mode {
	case modeTiles:
		v.drawTiles(screen)
	case modeWireframe:
		v.drawWireframe(screen)
	case modeOutlines:
		v.drawTiles(screen)
		v.drawOutlines(screen)
	}

	floors := v.caveMap.Count(grid.TileFloor)
	hud := fmt.Sprintf(
		"seed %s | %dx%d | %d floor tiles | %d chunks | view: %s\nR regenerate  Tab view  arrows/WASD pan  wheel/+- zoom  Esc quit\nFPS: %.1f",
		v.cfg.Seed, v.caveMap.Width, v.caveMap.Height, floors, len(v.chunks), v.mode, ebiten.ActualFPS())
	ebitenutil.DebugPrint(screen, hud)
}

func (v *CaveViewer) drawTiles(screen *ebiten.Image) {
	m := v.caveMap
	size := float32(float64(m.SquareSize) * v.zoom)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			wx := m.PositionX + float64(x*m.SquareSize)
			wz := m.PositionY + float64(y*m.SquareSize)
			sx, sy := v.project(wx, wz)
			if sx < -size || sy < -size || sx > config.WindowWidth || sy > config.WindowHeight {
				continue
			}
			clr := colorFloorTile
			if m.IsWall(x, y) {
				clr = colorWallTile
			}
			vector.DrawFilledRect(screen, sx, sy, size, size, clr, false)
		}
	}
}

func (v *CaveViewer) drawWireframe(screen *ebiten.Image) {
	for _, chunk := range v.chunks {
		v.strokeMesh(screen, chunk.Floor, colorFloorMesh)
		v.strokeMesh(screen, chunk.Ceiling, colorCeiling)
	}
}

func (v *CaveViewer) strokeMesh(screen *ebiten.Image, mesh *meshing.MeshData, clr color.Color) {
	for t := 0; t < mesh.TriangleCount(); t++ {
		a, b, c := mesh.TriangleVertices(meshing.Triangle(t))
		pa, pb, pc := mesh.Vertices[a], mesh.Vertices[b], mesh.Vertices[c]
		ax, ay := v.project(float64(pa.X), float64(pa.Z))
		bx, by := v.project(float64(pb.X), float64(pb.Z))
		cx, cy := v.project(float64(pc.X), float64(pc.Z))
		vector.StrokeLine(screen, ax, ay, bx, by, 1, clr, false)
		vector.StrokeLine(screen, bx, by, cx, cy, 1, clr, false)
		vector.StrokeLine(screen, cx, cy, ax, ay, 1, clr, false)
	}
}

func (v *CaveViewer) drawOutlines(screen *ebiten.Image) {
	for _, chunk := range v.chunks {
		for _, outline := range chunk.Outlines {
			for i := 1; i < len(outline); i++ {
				pa := chunk.Ceiling.Vertices[outline[i-1]]
				pb := chunk.Ceiling.Vertices[outline[i]]
				ax, ay := v.project(float64(pa.X), float64(pa.Z))
				bx, by := v.project(float64(pb.X), float64(pb.Z))
				vector.StrokeLine(screen, ax, ay, bx, by, 2, colorOutline, false)
			}
		}
	}
}

// Layout implements ebiten.Game.
func (v *CaveViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
