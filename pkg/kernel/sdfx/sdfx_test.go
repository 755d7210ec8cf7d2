package sdfx

import (
	"math"
	"testing"
)

const tol = 0.5

func TestBoxBoundingBox(t *testing.T) {
	k := New()
	box := k.Box(100, 50, 25)

	// Boxes are min-corner anchored at the origin.
	min, max := box.BoundingBox()
	expectMin := [3]float64{0, 0, 0}
	expectMax := [3]float64{100, 50, 25}
	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-expectMin[i]) > tol {
			t.Errorf("min[%d] = %f, expected ~%f", i, min[i], expectMin[i])
		}
		if math.Abs(max[i]-expectMax[i]) > tol {
			t.Errorf("max[%d] = %f, expected ~%f", i, max[i], expectMax[i])
		}
	}
}

func TestSphereBoundingBox(t *testing.T) {
	k := New()
	s := k.Sphere(10)

	min, max := s.BoundingBox()
	for i := 0; i < 3; i++ {
		if math.Abs(min[i]+10) > tol {
			t.Errorf("min[%d] = %f, expected ~-10", i, min[i])
		}
		if math.Abs(max[i]-10) > tol {
			t.Errorf("max[%d] = %f, expected ~10", i, max[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	k := New()
	box := k.Box(10, 10, 10)
	translated := k.Translate(box, 100, 200, 300)

	min, max := translated.BoundingBox()
	expectMin := [3]float64{100, 200, 300}
	expectMax := [3]float64{110, 210, 310}
	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-expectMin[i]) > tol {
			t.Errorf("min[%d] = %f, expected ~%f", i, min[i], expectMin[i])
		}
		if math.Abs(max[i]-expectMax[i]) > tol {
			t.Errorf("max[%d] = %f, expected ~%f", i, max[i], expectMax[i])
		}
	}
}

func TestUnionGrowsBounds(t *testing.T) {
	k := New()
	a := k.Box(50, 50, 50)
	b := k.Translate(k.Box(50, 50, 50), 30, 0, 0)
	u := k.Union(a, b)

	_, max := u.BoundingBox()
	if max[0] < 79 {
		t.Errorf("union max x = %f, expected ~80", max[0])
	}
}

func TestToMesh(t *testing.T) {
	k := NewWithCells(32)
	box := k.Box(20, 20, 20)
	mesh, err := k.ToMesh(box)
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("mesh is empty")
	}
	if mesh.VertexCount() == 0 || mesh.TriangleCount() == 0 {
		t.Fatal("expected non-empty tessellation")
	}
	// Array shape invariants.
	if len(mesh.Vertices) != len(mesh.Normals) {
		t.Fatalf("vertices length %d != normals length %d", len(mesh.Vertices), len(mesh.Normals))
	}
	if len(mesh.Indices) != mesh.TriangleCount()*3 {
		t.Fatalf("indices length %d != triCount*3 %d", len(mesh.Indices), mesh.TriangleCount()*3)
	}
}
