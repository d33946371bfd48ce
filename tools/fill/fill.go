// Package fill renders a test picture on a screen through the accelerated
// pixel driver and saves what ended up in video memory.
package fill

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	_ "image/gif"
	_ "image/jpeg"

	"github.com/embeddedgo/display/pix"
	"github.com/rs/xid"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/clktmr/radeonhd/config"
	"github.com/clktmr/radeonhd/drivers/accel"
	"github.com/clktmr/radeonhd/drivers/display"
	"github.com/clktmr/radeonhd/hw/r6xx"
)

const long = `Sets the first valid mode, draws color bars and optionally an image
scaled to the screen center, then writes the screen contents to a PNG file.`

// Command returns the fill subcommand. cfg is read when it runs.
func Command(cfg *config.Config) *cobra.Command {
	var sim bool
	var out, picture string
	var scale float64

	cmd := &cobra.Command{
		Use:   "fill [flags]",
		Short: "Draw a test picture",
		Long:  long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := *cfg
			if sim {
				c.Slot = ""
			}
			if c.Slot == "" {
				// nothing executes the command stream of a simulated card
				c.NoAccel = true
			}
			if out == "" {
				out = "fill-" + xid.New().String() + ".png"
			}
			if scale <= 0 {
				return fmt.Errorf("bad scale %g", scale)
			}

			var img image.Image
			if picture != "" {
				f, err := os.Open(picture)
				if err != nil {
					return err
				}
				img, _, err = image.Decode(f)
				f.Close()
				if err != nil {
					return fmt.Errorf("%s: %w", picture, err)
				}
			}

			s, err := display.Open(c, nil, nil)
			if err != nil {
				return err
			}
			atexit.Register(func() { s.Close() })
			defer s.Close()

			pool, err := s.Probe()
			if err != nil {
				return err
			}
			if err := s.SetMode(pool[0]); err != nil {
				return err
			}

			if err := Render(s.Draw, img, scale); err != nil {
				return err
			}
			if err := save(out, s.Draw.Screen().Image); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s, %d accelerated, %d software\n",
				out, pool[0].Name, s.Draw.Stats.Hardware, s.Draw.Stats.Software)
			return nil
		},
	}
	cmd.Flags().BoolVar(&sim, "sim", false, "draw on a simulated card")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, generated if empty")
	cmd.Flags().StringVarP(&picture, "image", "i", "", "image to draw over the bars")
	cmd.Flags().Float64Var(&scale, "scale", 1, "scale factor of the image")
	return cmd
}

// Bars are the colors of the test picture, left to right.
var Bars = []color.Color{
	color.White,
	color.RGBA{0xc0, 0xc0, 0x00, 0xff},
	color.RGBA{0x00, 0xc0, 0xc0, 0xff},
	color.RGBA{0x00, 0xc0, 0x00, 0xff},
	color.RGBA{0xc0, 0x00, 0xc0, 0xff},
	color.RGBA{0xc0, 0x00, 0x00, 0xff},
	color.RGBA{0x00, 0x00, 0xc0, 0xff},
	color.Black,
}

// Render draws the bars and img, if not nil, scaled by scale around the
// center of the screen. It waits for the engine to finish.
func Render(d *accel.Driver, img image.Image, scale float64) error {
	disp := pix.NewDisplay(d)
	a := disp.NewArea(disp.Bounds())
	b := a.Bounds()

	if img != nil && d.Screen().Format == 0 {
		// paletted screen: share the palette between bars and image
		pal := accel.Quantize(img, 256-len(Bars))
		d.SetPalette(append(pal, Bars...))
	}

	w := b.Dx() / len(Bars)
	for i, c := range Bars {
		a.SetColor(c)
		r := image.Rect(b.Min.X+i*w, b.Min.Y, b.Min.X+(i+1)*w, b.Max.Y)
		if i == len(Bars)-1 {
			r.Max.X = b.Max.X
		}
		a.Fill(r)
	}

	if img != nil {
		src, err := d.Upload(img)
		if err != nil {
			return err
		}
		size := image.Pt(int(float64(src.Bounds().Dx())*scale), int(float64(src.Bounds().Dy())*scale))
		center := b.Min.Add(b.Size().Div(2))
		r := image.Rectangle{Min: center.Sub(size.Div(2)), Max: center.Add(size.Sub(size.Div(2)))}
		d.DrawScaled(r, src, src.Bounds(), r6xx.FilterBilinear, draw.Over)
	}

	a.Flush()
	err := d.Err(true)
	d.Release()
	if errors.Is(err, accel.ErrUnsupported) {
		return nil
	}
	return err
}

func save(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
