/*
 * run.go, part of gosurf.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package main

import (
	"fmt"
	"io"
	"strings"

	surf "github.com/rmera/gosurf"
	"github.com/rmera/gosurf/input"
	"github.com/rmera/gosurf/phaseplot"
	"github.com/rmera/gosurf/surfjson"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"
)

var runCmd = &cobra.Command{
	Use:   "run <calculation.yaml>...",
	Short: "Run calculations and write the outputs they request",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, f := range args {
			if err := runFile(viper.GetViper(), f, cmd.OutOrStdout()); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

//calcOptions returns the calculation options given by v.
func calcOptions(v *viper.Viper) *surf.Options {
	o := surf.DefaultOptions()
	o.Cpus(v.GetInt("cpus"))
	o.Logger(logger)
	return o
}

//plotOptions returns the plot options given by v, with the given title.
func plotOptions(v *viper.Viper, title string) *phaseplot.Options {
	o := phaseplot.DefaultOptions()
	o.Title = title
	if w := v.GetFloat64("width"); w > 0 {
		o.Width = vg.Length(w) * vg.Centimeter
	}
	if h := v.GetFloat64("height"); h > 0 {
		o.Height = vg.Length(h) * vg.Centimeter
	}
	o.Legend = v.GetBool("legend")
	return o
}

//runFile runs the calculation in the file path and writes its outputs.
//Facet energies of wulff calculations are printed to w.
func runFile(v *viper.Viper, path string, w io.Writer) error {
	c, err := input.Load(path)
	if err != nil {
		return err
	}
	log := logger.With(zap.String("file", path), zap.String("kind", c.Kind))
	log.Info("running calculation")
	res, err := input.Run(c, calcOptions(v))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if res.Wulff != nil {
		printWulff(w, res)
		return nil
	}
	if res.Curves != nil {
		return writeCurves(v, c, res.Curves, log)
	}
	d := res.Diagram
	log.Info("diagram done", zap.Strings("stable", d.Labels))
	po := plotOptions(v, c.Title)
	if p := outPath(v, c, c.Output.Plot); p != "" {
		if err := phaseplot.Save(d, po, p); err != nil {
			return err
		}
		log.Info("plot written", zap.String("path", p))
	}
	if p := outPath(v, c, c.Output.Pressure); p != "" {
		pp, err := phaseplot.PressurePlot(d, po)
		if err != nil {
			return err
		}
		if err := pp.Save(po.Width, po.Height, p); err != nil {
			return fmt.Errorf("saving %s: %w", p, err)
		}
		log.Info("pressure plot written", zap.String("path", p))
	}
	if p := outPath(v, c, c.Output.Archive); p != "" {
		if v.GetBool("compress") && !strings.HasSuffix(p, ".zst") {
			p += ".zst"
		}
		h := surfjson.NewHeader(c.Kind, map[string]string{"title": c.Title, "input": path})
		if err := surfjson.Save(p, d, h); err != nil {
			return err
		}
		log.Info("archive written", zap.String("path", p), zap.String("id", h.ID.String()))
	}
	return nil
}

//writeCurves plots the curves of a sigma calculation. Curves can't be archived.
func writeCurves(v *viper.Viper, c *input.Calculation, cv *surf.Curves, log *zap.Logger) error {
	if c.Output.Archive != "" || c.Output.Pressure != "" {
		log.Warn("only plots are written for sigma calculations")
	}
	p := outPath(v, c, c.Output.Plot)
	if p == "" {
		return nil
	}
	if err := phaseplot.SaveCurves(cv, plotOptions(v, c.Title), p); err != nil {
		return err
	}
	log.Info("plot written", zap.String("path", p))
	return nil
}

func printWulff(w io.Writer, res *input.Result) {
	for _, f := range res.Facets() {
		fmt.Fprintf(w, "%-10s %10.5f\n", f, res.Wulff[f])
	}
}

var renderCmd = &cobra.Command{
	Use:   "render <archive> <image>",
	Short: "Plot a diagram stored by a previous run",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pressure, _ := cmd.Flags().GetBool("pressure")
		title, _ := cmd.Flags().GetString("title")
		return render(viper.GetViper(), args[0], args[1], title, pressure)
	},
}

func init() {
	renderCmd.Flags().Bool("pressure", false, "plot against the pressure instead of the chemical potential")
	renderCmd.Flags().String("title", "", "title of the plot")
	rootCmd.AddCommand(renderCmd)
}

func render(v *viper.Viper, archive, image, title string, pressure bool) error {
	d, h, err := surfjson.Load(archive)
	if err != nil {
		return err
	}
	if title == "" {
		title = h.Params["title"]
	}
	po := plotOptions(v, title)
	logger.Debug("rendering", zap.String("archive", archive), zap.String("id", h.ID.String()))
	if !pressure {
		return phaseplot.Save(d, po, image)
	}
	p, err := phaseplot.PressurePlot(d, po)
	if err != nil {
		return err
	}
	if err := p.Save(po.Width, po.Height, image); err != nil {
		return fmt.Errorf("saving %s: %w", image, err)
	}
	return nil
}

var wulffCmd = &cobra.Command{
	Use:   "wulff <calculation.yaml>",
	Short: "Print the surface energy of each facet of a wulff calculation",
	Long: `Print the surface energy of the most stable phase of each facet of a wulff
calculation. The temperature and pressure of the file can be replaced with flags.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := input.Load(args[0])
		if err != nil {
			return err
		}
		if c.Kind != input.KindWulff {
			return fmt.Errorf("%s: not a wulff calculation", args[0])
		}
		if cmd.Flags().Changed("temperature") {
			c.Temperature, _ = cmd.Flags().GetFloat64("temperature")
		}
		if cmd.Flags().Changed("logp") {
			c.Pressure, _ = cmd.Flags().GetFloat64("logp")
		}
		res, err := input.Run(c, calcOptions(viper.GetViper()))
		if err != nil {
			return err
		}
		printWulff(cmd.OutOrStdout(), res)
		return nil
	},
}

func init() {
	wulffCmd.Flags().Float64("temperature", 0, "temperature, K")
	wulffCmd.Flags().Float64("logp", 0, "log10 of the pressure, bar")
	rootCmd.AddCommand(wulffCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of gosurf",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "gosurf version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
