// bmpcodec reads, inspects and writes uncompressed bitmap files
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"

	"github.com/anas-shakeel/bmpcodec/internal/bmp"
	"github.com/anas-shakeel/bmpcodec/internal/config"
	"github.com/anas-shakeel/bmpcodec/internal/logging"
)

const usage = `usage: bmpcodec [flags] <command> [args]

commands:
  info FILE.bmp            print the bitmap headers
  preview FILE.bmp         print the bitmap in the terminal (small images only)
  convert IN.bmp OUT.bmp   re-encode at the configured bit depth
  import IN OUT.bmp        encode a png, jpeg, gif or bmp image as a bitmap
  export IN.bmp OUT.png    write a bitmap as png

flags:
`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		logging.Error("%v", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("bmpcodec", flag.ContinueOnError)
	configFlag := fs.String("config", "", "YAML configuration file")
	depthFlag := fs.Int("depth", 0, "bit depth to encode with (1, 4, 8, 16, 24, 32)")
	logLevelFlag := fs.String("log-level", "", "log level (debug, info, warn, error)")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadWithOverrides(config.LoadOptions{
		ConfigFile: *configFlag,
		BitDepth:   *depthFlag,
		LogLevel:   *logLevelFlag,
	})
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logging.SetLevelFromString(cfg.Logging.Level)

	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return errors.New("missing command")
	}

	command, files := rest[0], rest[1:]
	want := map[string]int{"info": 1, "preview": 1, "convert": 2, "import": 2, "export": 2}
	n, ok := want[command]
	if !ok {
		return fmt.Errorf("unknown command %q", command)
	}
	if len(files) != n {
		return fmt.Errorf("%s expects %d file argument(s), got %d", command, n, len(files))
	}

	switch command {
	case "info":
		img, err := readBitmap(files[0])
		if err != nil {
			return err
		}
		return printMetadata(stdout, files[0], img)

	case "preview":
		img, err := readBitmap(files[0])
		if err != nil {
			return err
		}
		return img.Bitmap.Preview(stdout)

	case "convert":
		img, err := readBitmap(files[0])
		if err != nil {
			return err
		}
		return save(files[1], img.Bitmap, cfg.Encoder())

	case "import":
		f, err := os.Open(files[0])
		if err != nil {
			return err
		}
		defer f.Close()

		src, format, err := image.Decode(bufio.NewReader(f))
		if err != nil {
			return fmt.Errorf("decoding %s: %w", files[0], err)
		}
		logging.Info("imported %s image %s (%v)", format, files[0], src.Bounds().Size())
		return save(files[1], bmp.FromImage(src), cfg.Encoder())

	case "export":
		img, err := readBitmap(files[0])
		if err != nil {
			return err
		}
		out, err := os.Create(files[1])
		if err != nil {
			return err
		}
		defer out.Close()

		if err := png.Encode(out, img.ToImage()); err != nil {
			return err
		}
		logging.Info("wrote %s", files[1])
		return out.Close()
	}

	return nil
}

// Reads and decodes a bitmap file
func readBitmap(filename string) (*bmp.BitmapImage, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	img, err := bmp.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return img, nil
}

// Encodes the bitmap and saves it onto local disk
func save(filename string, bm *bmp.Bitmap, enc *bmp.Encoder) error {
	data, err := enc.Encode(bm)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filename, err)
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return err
	}
	logging.Info("wrote %s (%dx%d, %d-bit, %d bytes)", filename, bm.Width, bm.Height, enc.BitDepth, len(data))
	return nil
}

// Print the Metadata of the bitmap (in human-readable format)
func printMetadata(w io.Writer, filename string, img *bmp.BitmapImage) error {
	fh, ih := img.FileHeader, img.InfoHeader
	stride := ih.BitCount.Stride(int(ih.Width))

	_, err := fmt.Fprintf(w, "Filename: \t%v\n"+
		"Filesize: \t%v bytes\n"+
		"Width: \t\t%v px\n"+
		"Height: \t%v px\n"+
		"TopDown: \t%v\n"+
		"BitCount: \t%vbits\n"+
		"HeaderSize: \t%v bytes\n"+
		"Colors: \t%v\n"+
		"Resolution: \t%vx%v px/m\n"+
		"PixelOffset: \t%v bytes\n"+
		"PixelCount: \t%v pixels\n"+
		"Stride: \t%v bytes\n"+
		"Padding: \t%v bytes\n",
		filename, fh.Size, ih.Width, ih.AbsHeight(), ih.TopDown(), ih.BitCount, ih.Size,
		ih.Colors(), ih.XPixelsPerM, ih.YPixelsPerM, fh.OffBits,
		int(ih.Width)*ih.AbsHeight(), stride, stride-(int(ih.Width)*int(ih.BitCount)+7)/8)
	return err
}
