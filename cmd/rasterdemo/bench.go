package main

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/trophyraster/raster/pkg/math3d"
	"github.com/trophyraster/raster/pkg/present"
	"github.com/trophyraster/raster/pkg/raster"
	"github.com/trophyraster/raster/pkg/transform"
)

func newBenchCmd() *cobra.Command {
	var (
		modelPath   string
		texturePath string
		frames      int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Rasterize the scripted scene for a fixed number of frames and report throughput",
		RunE: func(cmd *cobra.Command, args []string) error {
			width, _ := cmd.Flags().GetInt("width")
			height, _ := cmd.Flags().GetInt("height")

			m, tex, err := loadScene(modelPath, texturePath)
			if err != nil {
				return err
			}

			r := raster.New(width, height)
			cam := transform.NewCamera()
			cam.SetProjection(math.Pi/4, float64(width)/float64(height), 0.1, 100)
			cam.SetTransform(transform.FromTranslation(math3d.V3(0, 0, 4)))

			start := time.Now()
			for i := range frames {
				r.Clear(present.RGB(20, 20, 28))
				model := transform.Identity()
				model.Rotation = math3d.QuatFromEuler(float64(i)*0.05, float64(i)*0.03, 0)
				modelMat := model.Local()
				r.DrawMesh(m, cam.ViewProjection().Mul(modelMat), modelMat, tex, raster.DefaultLightDir)
			}
			elapsed := time.Since(start)

			fps := float64(frames) / elapsed.Seconds()
			fmt.Printf("%d frames in %s (%.1f fps, %dx%d, %d triangles)\n",
				frames, elapsed.Round(time.Millisecond), fps, width, height, m.TriangleCount())
			return nil
		},
	}

	cmd.Flags().StringVar(&modelPath, "model", "", "glTF/GLB model path (default: built-in cube)")
	cmd.Flags().StringVar(&texturePath, "texture", "", "texture image path (default: procedural checker)")
	cmd.Flags().IntVar(&frames, "frames", 120, "number of frames to rasterize")
	return cmd
}
