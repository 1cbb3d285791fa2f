package meshing

import (
	"math"
)

// minPerimeter guards against degenerate outlines; loops shorter than this
// produce no wall geometry.
const minPerimeter = 1e-6

// BuildWalls extrudes outlines into vertical wall geometry: one quad per
// outline edge connecting the ceiling-height point to the floor-height
// point at both endpoints. Vertex positions come from the source mesh the
// outlines index into.
//
// The U texture coordinate accumulates arc length along each loop, scaled
// so the loop's full perimeter covers a whole number of texture tiles of
// textureTileSize world units; without that rounding the texture would
// seam visibly where the loop closes.
func BuildWalls(source *MeshData, outlines []Outline, floor, ceiling HeightFunc, textureTileSize float64) (*MeshData, error) {
	if floor == nil {
		floor = flatHeight(0)
	}
	if ceiling == nil {
		ceiling = flatHeight(0)
	}
	if textureTileSize <= 0 {
		textureTileSize = 1
	}

	walls := &MeshData{}
	for _, outline := range outlines {
		perimeter := outline.Perimeter(source)
		if perimeter < minPerimeter {
			continue
		}
		tiles := math.Round(perimeter / textureTileSize)
		if tiles < 1 {
			tiles = 1
		}
		uPerUnit := tiles / perimeter

		accumulated := 0.0
		for i := 1; i < len(outline); i++ {
			a := source.Vertices[outline[i-1]]
			b := source.Vertices[outline[i]]
			dx := float64(b.X - a.X)
			dz := float64(b.Z - a.Z)
			edgeLen := math.Sqrt(dx*dx + dz*dz)

			u0 := float32(accumulated * uPerUnit)
			u1 := float32((accumulated + edgeLen) * uPerUnit)
			accumulated += edgeLen

			if err := addWallQuad(walls, a, b, floor, ceiling, u0, u1); err != nil {
				return nil, err
			}
		}
	}
	return walls, nil
}

// addWallQuad emits the two triangles of one wall segment. With outlines
// traced so the wall surface lies right of travel, this winding faces the
// quads into the open area.
func addWallQuad(walls *MeshData, a, b Vec3, floor, ceiling HeightFunc, u0, u1 float32) error {
	ax, az := float64(a.X), float64(a.Z)
	bx, bz := float64(b.X), float64(b.Z)

	leftTop, err := walls.AddVertex(Vec3{a.X, float32(ceiling(ax, az)), a.Z}, Vec2{u0, 0})
	if err != nil {
		return err
	}
	rightTop, err := walls.AddVertex(Vec3{b.X, float32(ceiling(bx, bz)), b.Z}, Vec2{u1, 0})
	if err != nil {
		return err
	}
	leftBottom, err := walls.AddVertex(Vec3{a.X, float32(floor(ax, az)), a.Z}, Vec2{u0, 1})
	if err != nil {
		return err
	}
	rightBottom, err := walls.AddVertex(Vec3{b.X, float32(floor(bx, bz)), b.Z}, Vec2{u1, 1})
	if err != nil {
		return err
	}

	if err := walls.AddTriangle(leftTop, leftBottom, rightBottom); err != nil {
		return err
	}
	return walls.AddTriangle(rightBottom, rightTop, leftTop)
}
