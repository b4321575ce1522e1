// Command rrtplan grows a rapidly-exploring random tree through an
// HCL-described scene and renders the resulting tree and path to a PNG.
package main

import (
	"fmt"
	"os"

	"github.com/edaniels/golog"
	"github.com/urfave/cli/v2"

	"github.com/markus-exler/go-rrt/driver"
	"github.com/markus-exler/go-rrt/render"
	"github.com/markus-exler/go-rrt/rrt"
)

var app = &cli.App{
	Name:            "rrtplan",
	Usage:           "grow a sampling tree through a scene and render the result",
	HideHelpCommand: true,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "scene",
			Aliases:  []string{"s"},
			Usage:    "load the scene and run description from `FILE`",
			Required: true,
		},
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Value:   "tree.png",
			Usage:   "write the rendered tree to `FILE`",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug logging",
		},
	},
	Commands: []*cli.Command{
		{
			Name:   "strategies",
			Usage:  "list the registered strategy names",
			Action: strategiesAction,
		},
	},
	Action: runAction,
}

func main() {
	if err := app.Run(os.Args); err != nil {
		golog.Global().Fatal(err)
	}
}

func strategiesAction(c *cli.Context) error {
	for _, name := range rrt.Strategies() {
		fmt.Fprintln(c.App.Writer, string(name))
	}
	return nil
}

func runAction(c *cli.Context) error {
	logger := golog.NewDevelopmentLogger("rrtplan")
	if c.Bool("debug") {
		logger = golog.NewDebugLogger("rrtplan")
	}

	r, err := loadSceneFile(c.String("scene"), logger)
	if err != nil {
		return err
	}

	opts := []driver.Option{}
	if r.iterations > 0 {
		opts = append(opts, driver.WithMaxIterations(r.iterations))
	}
	runner := driver.NewRunner(r.strategy, r.tree, logger, opts...)
	if err := runner.Run(c.Context); err != nil {
		return err
	}

	if r.tree.HasFoundPath() {
		logger.Infof("found a path of cost %.3f through %d waypoints after %d iterations",
			r.tree.TargetNode().Cost(), len(r.tree.Path()), runner.Iterations())
	} else {
		logger.Infof("no path found after %d iterations, tree size %d", runner.Iterations(), r.tree.Size())
	}

	out := c.String("out")
	if err := render.SavePNG(out, r.tree, r.scene, r.bounds, render.Options{}); err != nil {
		return err
	}
	logger.Infof("wrote %s", out)
	return nil
}
