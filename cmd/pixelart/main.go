package main

import (
	"fmt"
	"os"

	"github.com/ArtyomMoiseev/pixelart"
	"github.com/codegangsta/cli"
)

func main() {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "pixelart"
	app.Usage = "A command-line tool for converting images into blocky pixel art."
	app.UsageText = "pixelart --input source.png --output art.png [--gradation 6] [--size 10]"
	app.Author = "Artyom Moiseev"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "input,i",
			Usage: "`FILE` is the source image to convert. Required.",
		},
		cli.StringFlag{
			Name:  "output,o",
			Usage: "`FILE` is where the converted image is written. Required.",
		},
		cli.IntFlag{
			Name:  "gradation,g",
			Usage: "`COUNT` of brightness levels in the output palette.",
			Value: 6,
		},
		cli.IntFlag{
			Name:  "size,s",
			Usage: "`SIZE` of each square block, in pixels.",
			Value: 10,
		},
	}
	app.Action = func(c *cli.Context) {
		input, output := c.String("input"), c.String("output")
		if input == "" || output == "" {
			exit("input and output file paths are required", 1)
		}

		grid, err := pixelart.Open(input)
		if err != nil {
			exit(err.Error(), 1)
		}

		generator := pixelart.NewGenerator(
			pixelart.WithGradations(c.Int("gradation")),
			pixelart.WithPixelSize(c.Int("size")),
		)
		if err := generator.Generate(grid); err != nil {
			exit(err.Error(), 1)
		}

		if err := pixelart.Save(grid, output); err != nil {
			exit(err.Error(), 1)
		}
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func exit(msg string, code int) {
	fmt.Println(msg)
	os.Exit(code)
}
