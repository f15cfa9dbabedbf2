// This defines a basic executable for generating an image of a maze.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"time"

	"github.com/yalue/dfsmaze"
	"github.com/yalue/dfsmaze/config"
	"github.com/yalue/dfsmaze/raster"
	"github.com/yalue/image_utils"
)

// notify is used to write status messages to the user.
var notify = log.New(os.Stderr, "", 0)

const arrowLength = 16

// Returns a downward-pointing arrow, outlined in the given color with a white
// center.
func getOutlinedArrow(arrowColor color.Color) image.Image {
	outerArrow := image_utils.ResizeImage(image_utils.DownArrow(arrowColor),
		arrowLength, arrowLength)
	innerArrow := image_utils.ResizeImage(image_utils.DownArrow(color.White),
		arrowLength/2, arrowLength/2)
	toReturn := image_utils.NewCompositeImage()
	toReturn.AddImage(outerArrow, image.Pt(0, 0))
	toReturn.AddImage(innerArrow, image.Pt(arrowLength/4, arrowLength/4))
	return image_utils.ToRGBA(toReturn)
}

// Scales the maze up for viewing and adds arrows at the entrance and exit.
// The result is no longer a two-color image, so it's only for people to look
// at; parse_maze_image wants the plain output file.
func drawPreview(m *maze.DepthFirstMaze, scale int) (*image.RGBA, error) {
	bounds := m.Bounds()
	w := bounds.Dx() * scale
	h := bounds.Dy() * scale
	// Leave room for an arrow above and below the maze.
	top := arrowLength + 1
	decorated := image_utils.NewCompositeImage()
	background := image.NewUniform(color.White)
	e := decorated.AddImage(image_utils.ToRGBA(&fixedBounds{background,
		image.Rect(0, 0, w, h+2*top)}), image.Pt(0, 0))
	if e != nil {
		return nil, fmt.Errorf("Error adding preview background: %w", e)
	}
	mazePic := image_utils.ResizeImage(m, w, h)
	e = decorated.AddImage(mazePic, image.Pt(0, top))
	if e != nil {
		return nil, fmt.Errorf("Error setting base maze image: %w", e)
	}
	blueColor := color.RGBA{100, 120, 255, 255}
	greenColor := color.RGBA{40, 180, 70, 255}

	// The entrance arrow's tip touches the top of the maze, and the exit
	// arrow's tail touches the bottom.
	startX := m.StartColumn()*scale + scale/2 - arrowLength/2
	e = decorated.AddImage(getOutlinedArrow(greenColor), image.Pt(startX, 0))
	if e != nil {
		return nil, fmt.Errorf("Error adding start arrow: %w", e)
	}
	endX := m.EndColumn()*scale + scale/2 - arrowLength/2
	e = decorated.AddImage(getOutlinedArrow(blueColor),
		image.Pt(endX, top+h+1))
	if e != nil {
		return nil, fmt.Errorf("Error adding end arrow: %w", e)
	}
	return image_utils.ToRGBA(decorated), nil
}

// Gives an infinite image, such as an image.Uniform, finite bounds.
type fixedBounds struct {
	image.Image
	bounds image.Rectangle
}

func (f *fixedBounds) Bounds() image.Rectangle {
	return f.bounds
}

func run() int {
	defaults, e := config.Load()
	if e != nil {
		notify.Printf("Error loading configuration: %s\n", e)
		return 1
	}
	var width, height, previewScale int
	var randomSeed int64
	var printMaze bool
	var outFilename, previewFilename string
	flag.IntVar(&width, "width", defaults.Width,
		"The width of the maze image, in pixels. Must be at least 3.")
	flag.IntVar(&height, "height", defaults.Height,
		"The height of the maze image, in pixels. Must be at least 3.")
	flag.Int64Var(&randomSeed, "random_seed", defaults.RandomSeed,
		"If not negative, specifies the random seed to use.")
	flag.BoolVar(&printMaze, "print", false,
		"If set, prints the maze to the terminal as text.")
	flag.StringVar(&outFilename, "output_file", defaults.OutputFile,
		"The name of the .bmp or .png file to which the maze will be saved.")
	flag.StringVar(&previewFilename, "preview_file", "",
		"An optional .png file to write an enlarged, decorated copy of the "+
			"maze to.")
	flag.IntVar(&previewScale, "preview_scale", 8,
		"The number of preview pixels per maze pixel.")
	flag.Parse()
	if (outFilename == "") || (previewScale < 1) {
		notify.Println("Invalid or missing argument.")
		notify.Println("Run with -help for more information.")
		return 1
	}
	if randomSeed < 0 {
		randomSeed = time.Now().UnixNano()
	}
	m, e := maze.NewDepthFirstMaze(uint64(randomSeed), width, height)
	if e != nil {
		notify.Printf("Failed generating maze: %s\n", e)
		return 1
	}
	notify.Printf("Generated %s OK.\n", m.GetInfo())
	if printMaze {
		fmt.Print(m)
	}
	e = m.SaveImage(outFilename)
	if e != nil {
		notify.Printf("Error writing image to %s: %s\n", outFilename, e)
		return 1
	}
	notify.Printf("Image %s written OK.\n", outFilename)
	if previewFilename == "" {
		return 0
	}
	preview, e := drawPreview(m, previewScale)
	if e != nil {
		notify.Printf("Error drawing preview: %s\n", e)
		return 1
	}
	e = raster.Save(preview, previewFilename)
	if e != nil {
		notify.Printf("Error writing preview to %s: %s\n", previewFilename, e)
		return 1
	}
	notify.Printf("Preview %s written OK.\n", previewFilename)
	return 0
}

func main() {
	os.Exit(run())
}
