// Package main is the hypertool CLI for inspecting and exporting
// 4D polytopes without opening a window.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Faultbox/hyperscope/internal/export"
	"github.com/Faultbox/hyperscope/internal/pipeline"
	"github.com/Faultbox/hyperscope/internal/polytope"
	"github.com/Faultbox/hyperscope/internal/projection"
	"github.com/Faultbox/hyperscope/pkg/math4"
)

var (
	exportSize     float64
	exportMode     string
	exportViewDist float64
	exportAngles   []float64
	exportOut      string
)

func main() {
	cmd := &cobra.Command{
		Use:   "hypertool",
		Short: "Inspect and export 4D polytopes",
	}

	shapesCmd := &cobra.Command{
		Use:   "shapes",
		Short: "List the shape catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShapes()
		},
	}
	cmd.AddCommand(shapesCmd)

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the geometry of every shape",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck()
		},
	}
	cmd.AddCommand(checkCmd)

	exportCmd := &cobra.Command{
		Use:   "export <shape>",
		Short: "Project a shape to 3D and write it as OBJ or glTF",
		Long: `Project a shape to 3D at a fixed rotation and write the resulting
wireframe as a Wavefront OBJ or glTF file. The output format follows
the file extension (.obj, .gltf or .glb).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args[0])
		},
	}
	exportCmd.Flags().Float64Var(&exportSize, "size", 2, "Shape size")
	exportCmd.Flags().StringVar(&exportMode, "projection", "perspective",
		"Projection mode (perspective, orthographic, stereographic)")
	exportCmd.Flags().Float64Var(&exportViewDist, "view-distance", 3,
		"Projection view distance")
	exportCmd.Flags().Float64SliceVar(&exportAngles, "angles", nil,
		"Six plane angles in radians: xy,xz,xw,yz,yw,zw")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "",
		"Output path (default <shape>.obj)")
	cmd.AddCommand(exportCmd)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runShapes() error {
	for _, s := range polytope.All {
		p := s.Build(2)
		fmt.Printf("%-14s %3d vertices %4d edges  %s\n",
			s, len(p.Vertices), len(p.Edges), p.Description)
	}
	return nil
}

func runCheck() error {
	failed := 0
	for _, s := range polytope.All {
		p := s.Build(2)
		if err := p.Validate(); err != nil {
			fmt.Printf("FAIL %-14s %v\n", s, err)
			failed++
			continue
		}
		fmt.Printf("ok   %-14s %d vertices, %d edges\n",
			s, len(p.Vertices), len(p.Edges))
	}
	if failed > 0 {
		return fmt.Errorf("%d shape(s) failed validation", failed)
	}
	return nil
}

func runExport(id string) error {
	shape, err := polytope.Parse(id)
	if err != nil {
		return err
	}
	mode, err := projection.ParseMode(exportMode)
	if err != nil {
		return err
	}
	if exportAngles != nil && len(exportAngles) != 6 {
		return fmt.Errorf("--angles needs exactly 6 values, got %d", len(exportAngles))
	}

	p := pipeline.New(shape, exportSize, nil)
	p.SetProjection(projection.Config{Mode: mode, ViewDistance: exportViewDist})
	if len(exportAngles) == 6 {
		p.SetManualRotation(math4.Angles{
			XY: exportAngles[0],
			XZ: exportAngles[1],
			XW: exportAngles[2],
			YZ: exportAngles[3],
			YW: exportAngles[4],
			ZW: exportAngles[5],
		})
	}
	p.Tick(0)

	out := exportOut
	if out == "" {
		out = shape.String() + ".obj"
	}
	frame := p.Frame()
	poly := p.Polytope()

	switch strings.ToLower(filepath.Ext(out)) {
	case ".gltf", ".glb":
		err = export.SaveGLTF(out, poly.Name, frame.Vertices, poly.Edges)
	default:
		err = export.SaveOBJ(out, poly.Name, frame.Vertices, poly.Edges)
	}
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d vertices, %d edges)\n",
		out, len(frame.Vertices), len(poly.Edges))
	return nil
}
