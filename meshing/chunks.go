package meshing

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"ebiten-caves/grid"
)

// CaveStyle selects which surfaces a cave build produces.
type CaveStyle int

const (
	// StyleIsometric builds a ceiling over the wall area, walls down to
	// the floor, and a floor surface over the open area.
	StyleIsometric CaveStyle = iota
	// StyleEnclosed additionally roofs the open area: the floor surface
	// raised to wall height with its winding reversed, so the cave is
	// watertight when viewed from inside.
	StyleEnclosed
)

// CaveOptions configures mesh building for a finalized map.
type CaveOptions struct {
	Style      CaveStyle
	WallHeight float64

	// FloorHeight and CeilingHeight decorate the two surfaces; nil means
	// flat at 0 and flat at WallHeight respectively.
	FloorHeight   HeightFunc
	CeilingHeight HeightFunc

	// TextureTileSize is the world size of one wall texture tile; 0 uses
	// the map's square size.
	TextureTileSize float64
}

// ChunkMesh is the complete geometry of one map chunk.
type ChunkMesh struct {
	// X, Y locate the chunk's first tile within the full map.
	X, Y int

	Ceiling *MeshData
	Walls   *MeshData
	Floor   *MeshData
	// Enclosure is only set for StyleEnclosed.
	Enclosure *MeshData

	// Outlines index into Ceiling's vertices.
	Outlines []Outline
}

// Surfaces lists the chunk's non-empty meshes with stable names, for
// serialization.
func (c *ChunkMesh) Surfaces() []NamedMesh {
	var out []NamedMesh
	for _, s := range []NamedMesh{
		{"ceiling", c.Ceiling},
		{"walls", c.Walls},
		{"floor", c.Floor},
		{"enclosure", c.Enclosure},
	} {
		if s.Mesh != nil && s.Mesh.VertexCount() > 0 {
			out = append(out, s)
		}
	}
	return out
}

// NamedMesh pairs a mesh with its surface name.
type NamedMesh struct {
	Name string
	Mesh *MeshData
}

// BuildCave meshes a finalized map, splitting it into chunks of at most
// MaxChunkSize tiles per axis. Adjacent chunks share one boundary tile
// column or row so their square coverage is exact and seams coincide.
//
// Chunks are fully independent of each other, so each one's triangulation,
// outline extraction and wall building runs on its own goroutine with no
// shared state; one failed chunk fails the whole build. The map must not
// change between this call and its completion.
func BuildCave(m *grid.Map, opts CaveOptions) ([]ChunkMesh, error) {
	floorHeight := opts.FloorHeight
	if floorHeight == nil {
		floorHeight = flatHeight(0)
	}
	ceilingHeight := opts.CeilingHeight
	if ceilingHeight == nil {
		ceilingHeight = flatHeight(opts.WallHeight)
	}
	textureTileSize := opts.TextureTileSize
	if textureTileSize <= 0 {
		textureTileSize = float64(m.SquareSize)
	}

	xStarts := chunkStarts(m.Width)
	yStarts := chunkStarts(m.Height)
	chunks := make([]ChunkMesh, len(xStarts)*len(yStarts))

	var g errgroup.Group
	for j, y0 := range yStarts {
		for i, x0 := range xStarts {
			idx := j*len(xStarts) + i
			width := min(MaxChunkSize, m.Width-x0)
			height := min(MaxChunkSize, m.Height-y0)

			g.Go(func() error {
				chunk, err := buildChunk(m, x0, y0, width, height, opts.Style, floorHeight, ceilingHeight, textureTileSize)
				if err != nil {
					return fmt.Errorf("chunk (%d, %d): %w", x0, y0, err)
				}
				chunks[idx] = chunk
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return chunks, nil
}

// chunkStarts returns the first-tile offsets of the chunks along one axis.
// Steps of MaxChunkSize-1 make each chunk share its last tile line with
// the next chunk's first.
func chunkStarts(extent int) []int {
	starts := []int{0}
	for start := MaxChunkSize - 1; start < extent-1; start += MaxChunkSize - 1 {
		starts = append(starts, start)
	}
	return starts
}

// buildChunk runs the full per-chunk pipeline: wall grid snapshot, ceiling
// triangulation, outline extraction, wall extrusion, floor triangulation,
// and for enclosed caves the raised reverse-wound roof.
func buildChunk(m *grid.Map, x0, y0, width, height int, style CaveStyle, floorHeight, ceilingHeight HeightFunc, textureTileSize float64) (ChunkMesh, error) {
	wg, err := WallGridFromMap(m, x0, y0, width, height)
	if err != nil {
		return ChunkMesh{}, err
	}

	ceiling, err := Triangulate(wg, ceilingHeight)
	if err != nil {
		return ChunkMesh{}, err
	}
	lookup, err := NewTriangleLookup(ceiling)
	if err != nil {
		return ChunkMesh{}, err
	}
	outlines, err := ExtractOutlines(ceiling, lookup)
	if err != nil {
		return ChunkMesh{}, err
	}
	walls, err := BuildWalls(ceiling, outlines, floorHeight, ceilingHeight, textureTileSize)
	if err != nil {
		return ChunkMesh{}, err
	}
	floor, err := Triangulate(wg.Inverted(), floorHeight)
	if err != nil {
		return ChunkMesh{}, err
	}

	chunk := ChunkMesh{
		X:        x0,
		Y:        y0,
		Ceiling:  ceiling,
		Walls:    walls,
		Floor:    floor,
		Outlines: outlines,
	}

	if style == StyleEnclosed {
		enclosure, err := Triangulate(wg.Inverted(), ceilingHeight)
		if err != nil {
			return ChunkMesh{}, err
		}
		enclosure.ReverseWinding()
		chunk.Enclosure = enclosure
	}
	return chunk, nil
}
