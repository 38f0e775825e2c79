package render

import "context"

// ShaderKind selects the shading variant the renderer should use.
type ShaderKind string

// Shading variants understood by common mesh renderers.
const (
	HardPhong      ShaderKind = "hard_phong"
	SoftPhong      ShaderKind = "soft_phong"
	HardGouraud    ShaderKind = "hard_gouraud"
	SoftGouraud    ShaderKind = "soft_gouraud"
	HardFlat       ShaderKind = "hard_flat"
	SoftSilhouette ShaderKind = "soft_silhouette"
)

// Camera is a perspective camera description.
type Camera struct {
	// FOVDegrees is the vertical field of view. Default 60.
	FOVDegrees float64
	// AspectRatio is width/height. Default 1.
	AspectRatio float64
	// ZNear and ZFar bound the view frustum. Defaults 1 and 100.
	ZNear float64
	ZFar  float64
}

// PointLight is a single point light source.
type PointLight struct {
	// Location in world coordinates. Default (0, 1, 0).
	Location [3]float64
	// Ambient, Diffuse and Specular are RGB intensities in [0, 1].
	Ambient  [3]float64
	Diffuse  [3]float64
	Specular [3]float64
}

// RasterSettings controls rasterization.
type RasterSettings struct {
	// ImageSize is the square output resolution. Default 256.
	ImageSize int
	// BlurRadius softens face edges. Default 0.
	BlurRadius float64
	// FacesPerPixel is the number of faces tracked per pixel. Default 1.
	FacesPerPixel int
}

// Config is the full, explicit render configuration. Zero-value fields are
// filled from DefaultConfig by Normalize, so callers can set only what they
// care about.
type Config struct {
	Shader ShaderKind
	// Device names the compute device for the renderer ("cpu", "cuda:0", ...).
	Device string
	Camera Camera
	Lights []PointLight
	Raster RasterSettings
	// FlatWhiteTexture overrides loaded textures with a uniform flat color,
	// which keeps batches renderable when some meshes lack materials.
	FlatWhiteTexture bool
}

// DefaultConfig returns the documented defaults: hard Phong shading on CPU,
// a 60 degree perspective camera, one point light above the origin and a
// 256x256 raster with no blur.
func DefaultConfig() Config {
	return Config{
		Shader: HardPhong,
		Device: "cpu",
		Camera: Camera{
			FOVDegrees:  60,
			AspectRatio: 1,
			ZNear:       1,
			ZFar:        100,
		},
		Lights: []PointLight{{
			Location: [3]float64{0, 1, 0},
			Ambient:  [3]float64{0.5, 0.5, 0.5},
			Diffuse:  [3]float64{0.3, 0.3, 0.3},
			Specular: [3]float64{0.2, 0.2, 0.2},
		}},
		Raster: RasterSettings{
			ImageSize:     256,
			FacesPerPixel: 1,
		},
		FlatWhiteTexture: true,
	}
}

// Normalize fills unset fields from DefaultConfig and returns the result.
func (c Config) Normalize() Config {
	def := DefaultConfig()
	if c.Shader == "" {
		c.Shader = def.Shader
	}
	if c.Device == "" {
		c.Device = def.Device
	}
	if c.Camera == (Camera{}) {
		c.Camera = def.Camera
	}
	if len(c.Lights) == 0 {
		c.Lights = def.Lights
	}
	if c.Raster.ImageSize == 0 {
		c.Raster.ImageSize = def.Raster.ImageSize
	}
	if c.Raster.FacesPerPixel == 0 {
		c.Raster.FacesPerPixel = def.Raster.FacesPerPixel
	}
	return c
}

// Mesh is one model file handed to the renderer.
type Mesh struct {
	// Path is the dataset-relative source path, for diagnostics.
	Path string
	// Data is the raw mesh file contents.
	Data []byte
}

// Request is a batch render invocation.
type Request struct {
	Meshes []Mesh
	Config Config
}

// Image is one rendered frame.
type Image struct {
	Width  int
	Height int
	// RGBA holds row-major RGBA pixel data.
	RGBA []byte
}

// Renderer is the external rendering collaborator. Implementations own the
// full mesh/rasterizer/shader/camera pipeline.
type Renderer interface {
	Render(ctx context.Context, req *Request) ([]Image, error)
}
