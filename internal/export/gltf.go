package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/hyperscope/internal/pipeline"
	"github.com/Faultbox/hyperscope/internal/polytope"
)

// BuildGLTF assembles a glTF document holding the projected wireframe
// as a line-mode primitive with per-vertex colors.
func BuildGLTF(name string, verts []pipeline.VertexOut, edges []polytope.Edge) *gltf.Document {
	positions := make([][3]float32, len(verts))
	colors := make([][3]float32, len(verts))
	for i, v := range verts {
		positions[i] = [3]float32{float32(v.Pos.X), float32(v.Pos.Y), float32(v.Pos.Z)}
		colors[i] = [3]float32{float32(v.Color.R), float32(v.Color.G), float32(v.Color.B)}
	}
	indices := make([]uint32, 0, 2*len(edges))
	for _, e := range edges {
		indices = append(indices, uint32(e.A), uint32(e.B))
	}

	doc := gltf.NewDocument()
	posAcc := modeler.WritePosition(doc, positions)
	colAcc := modeler.WriteColor(doc, colors)
	idxAcc := modeler.WriteIndices(doc, indices)

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: name,
		Primitives: []*gltf.Primitive{{
			Indices: gltf.Index(idxAcc),
			Attributes: map[string]uint32{
				gltf.POSITION: posAcc,
				gltf.COLOR_0:  colAcc,
			},
			Mode: gltf.PrimitiveLines,
		}},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: name,
		Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
	})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))
	return doc
}

// SaveGLTF writes the wireframe to a .gltf or .glb file depending on
// the extension.
func SaveGLTF(path, name string, verts []pipeline.VertexOut, edges []polytope.Edge) error {
	doc := BuildGLTF(name, verts, edges)
	save := gltf.Save
	if strings.EqualFold(filepath.Ext(path), ".glb") {
		save = gltf.SaveBinary
	}
	if err := save(doc, path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
