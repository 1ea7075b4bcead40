// SPDX-FileCopyrightText : © 2026 The raytrace authors
// SPDX-License-Identifier: BSD-2-Clause

package load

import (
	"encoding/xml"
	"io"
	"math"
	"os"
	"strconv"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/gazed/raytrace"
	"github.com/gazed/raytrace/math/lin"
)

// vec3Elem is the common x/y/z-attribute shape shared by <position>,
// <lookat>, <up>, <direction>, <translate> and <scale>.
type vec3Elem struct {
	X float64 `xml:"x,attr"`
	Y float64 `xml:"y,attr"`
	Z float64 `xml:"z,attr"`
}

func (v vec3Elem) vec() lin.Vec3 { return lin.V3(v.X, v.Y, v.Z) }

type colorElem struct {
	R float64 `xml:"r,attr"`
	G float64 `xml:"g,attr"`
	B float64 `xml:"b,attr"`
}

func (c colorElem) vec() lin.Vec3 { return lin.V3(c.R, c.G, c.B) }

type quatElem struct {
	X float64 `xml:"x,attr"`
	Y float64 `xml:"y,attr"`
	Z float64 `xml:"z,attr"`
	W float64 `xml:"w,attr"`
}

func (q quatElem) quat() lin.Quat { return lin.Q4(q.X, q.Y, q.Z, q.W) }

type cameraElem struct {
	Position vec3Elem `xml:"position"`
	LookAt   vec3Elem `xml:"lookat"`
	Up       vec3Elem `xml:"up"`
	HorizFOV struct {
		Angle float64 `xml:"angle,attr"`
	} `xml:"horizontal_fov"`
	Resolution struct {
		Horizontal int `xml:"horizontal,attr"`
		Vertical   int `xml:"vertical,attr"`
	} `xml:"resolution"`
	MaxBounces struct {
		N int `xml:"n,attr"`
	} `xml:"max_bounces"`
	DepthOfField *struct {
		FocalLength float64 `xml:"focal_length,attr"`
		Aperture    float64 `xml:"aperture,attr"`
	} `xml:"depth_of_field"`
}

type falloffElem struct {
	Alpha1 float64 `xml:"alpha1,attr"`
	Alpha2 float64 `xml:"alpha2,attr"`
}

type lightsElem struct {
	Ambient []struct {
		Color colorElem `xml:"color"`
	} `xml:"ambient_light"`
	Point []struct {
		Color    colorElem `xml:"color"`
		Position vec3Elem  `xml:"position"`
	} `xml:"point_light"`
	Parallel []struct {
		Color     colorElem `xml:"color"`
		Direction vec3Elem  `xml:"direction"`
	} `xml:"parallel_light"`
	Spot []struct {
		Color     colorElem   `xml:"color"`
		Position  vec3Elem    `xml:"position"`
		Direction vec3Elem    `xml:"direction"`
		Falloff   falloffElem `xml:"falloff"`
	} `xml:"spot_light"`
}

type phongElem struct {
	Ka       float64 `xml:"ka,attr"`
	Kd       float64 `xml:"kd,attr"`
	Ks       float64 `xml:"ks,attr"`
	Exponent float64 `xml:"exponent,attr"`
}

type cookTorranceElem struct {
	Ka        float64 `xml:"ka,attr"`
	Ks        float64 `xml:"ks,attr"`
	Roughness float64 `xml:"roughness,attr"`
}

type materialCommon struct {
	Phong        *phongElem        `xml:"phong"`
	CookTorrance *cookTorranceElem `xml:"cook_torrance"`
	Reflectance  struct {
		R float64 `xml:"r,attr"`
	} `xml:"reflectance"`
	Transmittance struct {
		T float64 `xml:"t,attr"`
	} `xml:"transmittance"`
	Refraction struct {
		IOF float64 `xml:"iof,attr"`
	} `xml:"refraction"`
}

type materialSolidElem struct {
	Color colorElem `xml:"color"`
	materialCommon
}

type materialTexturedElem struct {
	Texture struct {
		Name string `xml:"name,attr"`
	} `xml:"texture"`
	materialCommon
}

// transformOp is one element of a <transform> list, captured in the
// document order it appeared.
type transformOp struct {
	kind           string
	x, y, z, theta float64
}

// transformList decodes an ordered sequence of <translate>, <scale>,
// <rotateX>, <rotateY>, <rotateZ> children, preserving document order -
// encoding/xml's struct tags alone cannot express "multiple element
// names interleaved in sequence", so this implements xml.Unmarshaler
// directly and walks the token stream.
type transformList struct {
	ops []transformOp
}

func (t *transformList) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			op := transformOp{kind: el.Name.Local}
			for _, a := range el.Attr {
				v, _ := strconv.ParseFloat(a.Value, 64)
				switch a.Name.Local {
				case "x":
					op.x = v
				case "y":
					op.y = v
				case "z":
					op.z = v
				case "theta":
					op.theta = v
				}
			}
			t.ops = append(t.ops, op)
			if err := d.Skip(); err != nil {
				return err
			}
		case xml.EndElement:
			if el.Name == start.Name {
				return nil
			}
		}
	}
}

// matrix composes the transform list's operations in document order: the
// first-listed operation is applied to the object first.
func (t transformList) matrix() lin.Mat4 {
	m := lin.Identity()
	for _, op := range t.ops {
		var step lin.Mat4
		switch op.kind {
		case "translate":
			step = lin.Translate(op.x, op.y, op.z)
		case "scale":
			step = lin.Scale(op.x, op.y, op.z)
		case "rotateX":
			step = lin.RotateX(lin.Rad(op.theta))
		case "rotateY":
			step = lin.RotateY(lin.Rad(op.theta))
		case "rotateZ":
			step = lin.RotateZ(lin.Rad(op.theta))
		default:
			continue
		}
		m = step.Mul(m)
	}
	return m
}

type sphereElem struct {
	Radius           float64               `xml:"radius,attr"`
	EndRadius        *float64              `xml:"endradius,attr"`
	Position         vec3Elem              `xml:"position"`
	EndPosition      *vec3Elem             `xml:"endposition"`
	MaterialSolid    *materialSolidElem    `xml:"material_solid"`
	MaterialTextured *materialTexturedElem `xml:"material_textured"`
	Transform        *transformList        `xml:"transform"`
}

type meshElem struct {
	Name             string                `xml:"name,attr"`
	MaterialSolid    *materialSolidElem    `xml:"material_solid"`
	MaterialTextured *materialTexturedElem `xml:"material_textured"`
	Transform        *transformList        `xml:"transform"`
}

type juliaSetElem struct {
	MaxIteration     int                   `xml:"max_iteration,attr"`
	Epsilon          float64               `xml:"epsilon,attr"`
	Position         vec3Elem              `xml:"position"`
	Constant         quatElem              `xml:"constant"`
	EndConstant      *quatElem             `xml:"endconstant"`
	MaterialSolid    *materialSolidElem    `xml:"material_solid"`
	MaterialTextured *materialTexturedElem `xml:"material_textured"`
	Transform        *transformList        `xml:"transform"`
}

type surfacesElem struct {
	Spheres   []sphereElem   `xml:"sphere"`
	Meshes    []meshElem     `xml:"mesh"`
	JuliaSets []juliaSetElem `xml:"julia_set"`
}

// Document is the XML-decoded intermediate representation of a scene
// document, mirroring the external grammar one-to-one via struct tags.
// It is kept distinct from the renderer's Scene type so a parse error can
// name the offending element without coupling the renderer's internal
// types to XML decoding.
type Document struct {
	XMLName       xml.Name  `xml:"scene"`
	OutputFile    string    `xml:"output_file,attr"`
	Background    colorElem `xml:"background_color"`
	SuperSampling *struct {
		Samples int `xml:"samples,attr"`
	} `xml:"super_sampling"`
	Animated *struct {
		Frames int `xml:"frames,attr"`
		FPS    int `xml:"fps,attr"`
	} `xml:"animated"`
	Camera   cameraElem   `xml:"camera"`
	Lights   lightsElem   `xml:"lights"`
	Surfaces surfacesElem `xml:"surfaces"`
}

// charsetReader feeds non-UTF-8 scene documents through the matching
// golang.org/x/text/encoding charmap, since encoding/xml only decodes
// UTF-8 and US-ASCII without one.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(charset)
	if err != nil {
		enc = charmap.ISO8859_1 // best-effort fallback for unrecognized legacy charsets
	}
	return enc.NewDecoder().Reader(input), nil
}

// Decode parses a scene document from r. path is used only for error
// messages.
func Decode(r io.Reader, path string) (*Document, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader
	doc := &Document{}
	if err := dec.Decode(doc); err != nil {
		return nil, raytrace.NewFileInputError(path, "invalid scene document: %s", err)
	}
	return doc, nil
}

// LoadScene reads and parses the scene document at path and converts it
// into a renderable Scene, resolving any mesh and texture files it
// references relative to the document's own directory. The returned
// string is the document's requested output_file name, unresolved
// against any CLI output directory.
func LoadScene(path string) (*raytrace.Scene, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", raytrace.NewIOError("read", path, err)
	}
	defer f.Close()

	doc, err := Decode(f, path)
	if err != nil {
		return nil, "", err
	}
	scene, err := doc.toScene(NewLocator(path))
	if err != nil {
		return nil, "", err
	}
	return scene, doc.OutputFile, nil
}

func (d *Document) toScene(loc Locator) (*raytrace.Scene, error) {
	anim := raytrace.Animation{TotalFrames: 1, FPS: 1}
	if d.Animated != nil {
		anim = raytrace.Animation{TotalFrames: d.Animated.Frames, FPS: d.Animated.FPS}
	}

	cam := raytrace.NewCamera(
		d.Camera.Position.vec(), d.Camera.LookAt.vec(), d.Camera.Up.vec(),
		d.Camera.HorizFOV.Angle, d.Camera.Resolution.Horizontal, d.Camera.Resolution.Vertical,
		d.Camera.MaxBounces.N,
	)
	if d.Camera.DepthOfField != nil {
		cam.FocalLength = d.Camera.DepthOfField.FocalLength
		cam.Aperture = d.Camera.DepthOfField.Aperture
	}

	supersamples := 0
	if d.SuperSampling != nil {
		supersamples = d.SuperSampling.Samples
	}

	lights := d.lights()

	surfaces, err := d.surfaces(loc)
	if err != nil {
		return nil, err
	}

	return &raytrace.Scene{
		Background:   d.Background.vec(),
		Camera:       cam,
		Lights:       lights,
		Surfaces:     surfaces,
		Supersamples: supersamples,
		Animation:    anim,
	}, nil
}

func (d *Document) lights() []raytrace.Light {
	var lights []raytrace.Light
	for _, l := range d.Lights.Ambient {
		lights = append(lights, raytrace.AmbientLight{Color: l.Color.vec()})
	}
	for _, l := range d.Lights.Point {
		lights = append(lights, raytrace.PointLight{Color: l.Color.vec(), Position: l.Position.vec()})
	}
	for _, l := range d.Lights.Parallel {
		lights = append(lights, raytrace.ParallelLight{Color: l.Color.vec(), Direction: l.Direction.vec()})
	}
	for _, l := range d.Lights.Spot {
		lights = append(lights, raytrace.SpotLight{
			Color: l.Color.vec(), Position: l.Position.vec(), Direction: l.Direction.vec(),
			CosAlpha1: cosDeg(l.Falloff.Alpha1), CosAlpha2: cosDeg(l.Falloff.Alpha2),
		})
	}
	return lights
}

func (d *Document) surfaces(loc Locator) ([]*raytrace.Surface, error) {
	var surfaces []*raytrace.Surface

	for _, s := range d.Surfaces.Spheres {
		mat, err := buildMaterial(s.MaterialSolid, s.MaterialTextured, loc)
		if err != nil {
			return nil, err
		}
		var prim raytrace.Primitive
		sphere := raytrace.NewSphere(s.Position.vec(), s.Radius)
		if s.EndPosition != nil || s.EndRadius != nil {
			endPos := s.Position.vec()
			if s.EndPosition != nil {
				endPos = s.EndPosition.vec()
			}
			endRadius := s.Radius
			if s.EndRadius != nil {
				endRadius = *s.EndRadius
			}
			sphere = raytrace.NewAnimatedSphere(s.Position.vec(), s.Radius, endPos, endRadius)
		}
		prim = sphere
		surfaces = append(surfaces, newSurface(prim, mat, s.Transform))
	}

	for _, m := range d.Surfaces.Meshes {
		mat, err := buildMaterial(m.MaterialSolid, m.MaterialTextured, loc)
		if err != nil {
			return nil, err
		}
		mf, err := loc.Open(m.Name)
		if err != nil {
			return nil, err
		}
		tris, err := Obj(mf, loc.Resolve(m.Name))
		mf.Close()
		if err != nil {
			return nil, err
		}
		mesh := raytrace.NewMesh(tris)
		surfaces = append(surfaces, newSurface(mesh, mat, m.Transform))
	}

	for _, j := range d.Surfaces.JuliaSets {
		mat, err := buildMaterial(j.MaterialSolid, j.MaterialTextured, loc)
		if err != nil {
			return nil, err
		}
		var prim raytrace.Primitive
		js := raytrace.NewJuliaSet(j.Position.vec(), j.Constant.quat(), j.MaxIteration, j.Epsilon)
		if j.EndConstant != nil {
			js = raytrace.NewAnimatedJuliaSet(j.Position.vec(), j.Constant.quat(), j.MaxIteration, j.Epsilon, j.EndConstant.quat())
		}
		prim = js
		surfaces = append(surfaces, newSurface(prim, mat, j.Transform))
	}

	return surfaces, nil
}

func newSurface(p raytrace.Primitive, mat raytrace.Material, t *transformList) *raytrace.Surface {
	if t == nil {
		return raytrace.NewSurface(p, mat)
	}
	return raytrace.NewTransformedSurface(p, mat, t.matrix())
}

func buildMaterial(solid *materialSolidElem, textured *materialTexturedElem, loc Locator) (raytrace.Material, error) {
	switch {
	case solid != nil:
		shading, err := shadingModel(solid.materialCommon)
		if err != nil {
			return raytrace.Material{}, err
		}
		return raytrace.Material{
			Texture:       raytrace.ColorTexture(solid.Color.vec()),
			Shading:       shading,
			Reflectance:   solid.Reflectance.R,
			Transmittance: solid.Transmittance.T,
			IOR:           solid.Refraction.IOF,
		}, nil
	case textured != nil:
		shading, err := shadingModel(textured.materialCommon)
		if err != nil {
			return raytrace.Material{}, err
		}
		tf, err := loc.Open(textured.Texture.Name)
		if err != nil {
			return raytrace.Material{}, err
		}
		defer tf.Close()
		img, err := Png(tf, loc.Resolve(textured.Texture.Name))
		if err != nil {
			return raytrace.Material{}, err
		}
		return raytrace.Material{
			Texture:       raytrace.ImageTexture{Img: img},
			Shading:       shading,
			Reflectance:   textured.Reflectance.R,
			Transmittance: textured.Transmittance.T,
			IOR:           textured.Refraction.IOF,
		}, nil
	default:
		return raytrace.Material{}, raytrace.NewInputError("surface has neither material_solid nor material_textured")
	}
}

func shadingModel(m materialCommon) (raytrace.ShadingModel, error) {
	switch {
	case m.Phong != nil:
		return raytrace.Phong{Ka: m.Phong.Ka, Kd: m.Phong.Kd, Ks: m.Phong.Ks, Exponent: m.Phong.Exponent}, nil
	case m.CookTorrance != nil:
		return raytrace.CookTorrance{Ka: m.CookTorrance.Ka, Ks: m.CookTorrance.Ks, Roughness: m.CookTorrance.Roughness}, nil
	default:
		return nil, raytrace.NewInputError("material has neither phong nor cook_torrance")
	}
}

func cosDeg(deg float64) float64 {
	return math.Cos(lin.Rad(deg))
}
