package main

import (
	"image"
	"log"
	"os"

	"github.com/smasonuk/swrast"
	"github.com/smasonuk/swrast/display"
)

func main() {
	opts, err := swrast.ParseArgs(os.Args[1:], os.Getenv)
	if err != nil {
		log.Fatal(err)
	}

	mesh := swrast.DefaultTriangle()
	if opts.MeshPath != "" {
		log.Printf("Loading mesh %s...", opts.MeshPath)
		mesh, err = swrast.LoadMeshFromPLYFile(opts.MeshPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	world, err := swrast.NewWorld(opts, mesh)
	if err != nil {
		log.Fatal(err)
	}

	if !opts.Interactive {
		fb, err := world.Render(opts.Angle)
		if err != nil {
			log.Fatal(err)
		}
		if err := swrast.SaveImage(opts.Output, fb.RGBA()); err != nil {
			log.Fatal(err)
		}
		log.Printf("Wrote %s", opts.Output)
		return
	}

	render := func(angle float64) (*image.RGBA, error) {
		fb, err := world.Render(angle)
		if err != nil {
			return nil, err
		}
		return fb.RGBA(), nil
	}
	game := display.NewGame(render, world, opts.Angle, opts.Width, opts.Height)
	if err := display.Run(game, "swrast"); err != nil {
		log.Fatal(err)
	}
}
