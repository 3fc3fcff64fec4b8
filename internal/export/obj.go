// Package export writes a tick's projected wireframe to interchange
// formats.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/hyperscope/internal/pipeline"
	"github.com/Faultbox/hyperscope/internal/polytope"
)

// WriteOBJ writes the projected wireframe as a Wavefront OBJ: one v
// record per vertex and one l record per edge. OBJ indices are 1-based.
func WriteOBJ(w io.Writer, name string, verts []pipeline.VertexOut, edges []polytope.Edge) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "o %s\n", name); err != nil {
		return err
	}
	for _, v := range verts {
		if _, err := fmt.Fprintf(bw, "v %g %g %g\n", v.Pos.X, v.Pos.Y, v.Pos.Z); err != nil {
			return err
		}
	}
	for _, e := range edges {
		if _, err := fmt.Fprintf(bw, "l %d %d\n", e.A+1, e.B+1); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveOBJ writes the wireframe to a file.
func SaveOBJ(path, name string, verts []pipeline.VertexOut, edges []polytope.Edge) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteOBJ(f, name, verts, edges); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
