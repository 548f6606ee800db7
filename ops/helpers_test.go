package ops

import (
	"github.com/lukas-voss/trimesh/halfedge"
	"github.com/lukas-voss/trimesh/vecmath"
)

func tetrahedron() *halfedge.Mesh {
	points := []vecmath.Vec3{
		vecmath.NewVec3(0, 0, 0),
		vecmath.NewVec3(1, 0, 0),
		vecmath.NewVec3(0, 1, 0),
		vecmath.NewVec3(0, 0, 1),
	}
	faces := [][3]int{
		{0, 1, 2},
		{0, 3, 1},
		{0, 2, 3},
		{1, 3, 2},
	}
	m, err := halfedge.NewMesh(points, faces)
	if err != nil {
		panic(err)
	}
	return m
}

func octahedron() *halfedge.Mesh {
	points := []vecmath.Vec3{
		vecmath.NewVec3(1, 0, 0),
		vecmath.NewVec3(-1, 0, 0),
		vecmath.NewVec3(0, 1, 0),
		vecmath.NewVec3(0, -1, 0),
		vecmath.NewVec3(0, 0, 1),
		vecmath.NewVec3(0, 0, -1),
	}
	faces := [][3]int{
		{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
		{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
	}
	m, err := halfedge.NewMesh(points, faces)
	if err != nil {
		panic(err)
	}
	return m
}

func cube() *halfedge.Mesh {
	points := []vecmath.Vec3{
		vecmath.NewVec3(0, 0, 0),
		vecmath.NewVec3(1, 0, 0),
		vecmath.NewVec3(1, 1, 0),
		vecmath.NewVec3(0, 1, 0),
		vecmath.NewVec3(0, 0, 1),
		vecmath.NewVec3(1, 0, 1),
		vecmath.NewVec3(1, 1, 1),
		vecmath.NewVec3(0, 1, 1),
	}
	faces := [][3]int{
		{0, 3, 2}, {0, 2, 1}, // bottom
		{4, 5, 6}, {4, 6, 7}, // top
		{0, 1, 5}, {0, 5, 4}, // front
		{3, 7, 6}, {3, 6, 2}, // back
		{0, 4, 7}, {0, 7, 3}, // left
		{1, 2, 6}, {1, 6, 5}, // right
	}
	m, err := halfedge.NewMesh(points, faces)
	if err != nil {
		panic(err)
	}
	return m
}
