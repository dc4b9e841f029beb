package models

import "testing"

func TestFacesFromIndicesReversesWinding(t *testing.T) {
	faces := facesFromIndices([]int{0, 1, 2, 3, 4, 5})
	want := [][3]int{{0, 2, 1}, {3, 5, 4}}

	if len(faces) != len(want) {
		t.Fatalf("got %d faces, want %d", len(faces), len(want))
	}
	for i, f := range faces {
		if f != want[i] {
			t.Errorf("face %d: got %v, want %v", i, f, want[i])
		}
	}
}

func TestFacesFromIndicesIgnoresTrailingPartialTriangle(t *testing.T) {
	faces := facesFromIndices([]int{0, 1, 2, 3, 4})
	if len(faces) != 1 {
		t.Fatalf("got %d faces, want 1", len(faces))
	}
}
