/*
 * main.go, part of gosurf.
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

//gosurf calculates surface and bulk phase diagrams from DFT data.
//
//Calculations are described in YAML files (see the input package). Defaults for
//the output can be set in $HOME/.gosurf.yaml or with GOSURF_ environment
//variables, for instance GOSURF_CPUS=4.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rmera/gosurf/input"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const version = "0.1.0"

var (
	cfgFile string
	cfgUsed string //config file actually read, if any
	verbose bool
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "gosurf",
	Short: "Surface and bulk phase diagrams from DFT data",
	Long: `gosurf builds phase diagrams of surfaces and bulk phases as a function of
chemical potentials, temperature and pressure, from DFT energies and
vibrational and thermochemical corrections.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if err := setupLogging(); err != nil {
			return err
		}
		logConfig(logger, cfgUsed)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.gosurf.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Int("cpus", runtime.NumCPU(), "goroutines used in the calculations")
	viper.BindPFlag("cpus", rootCmd.PersistentFlags().Lookup("cpus"))
	setDefaults(viper.GetViper())
}

//setDefaults sets the defaults of the settings not given as flags.
func setDefaults(v *viper.Viper) {
	v.SetDefault("outdir", "")
	v.SetDefault("width", 12.0)
	v.SetDefault("height", 10.0)
	v.SetDefault("legend", true)
	v.SetDefault("compress", false)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName(".gosurf")
	}
	viper.SetEnvPrefix("GOSURF")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil {
		cfgUsed = viper.ConfigFileUsed()
	}
}

//logConfig reports the config file read by initConfig. It runs once the
//logger is set up, since initConfig runs before.
func logConfig(l *zap.Logger, file string) {
	if file != "" {
		l.Debug("using config file", zap.String("file", file))
	}
}

func setupLogging() error {
	var err error
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.DisableStacktrace = true
		logger, err = cfg.Build()
	}
	if err != nil {
		return fmt.Errorf("setting up the logger: %w", err)
	}
	return nil
}

//outPath returns the path where the output file should be written.
//file is relative to the directory of the calculation c, unless an output
//directory is set.
func outPath(v *viper.Viper, c *input.Calculation, file string) string {
	if file == "" || filepath.IsAbs(file) {
		return file
	}
	if od := v.GetString("outdir"); od != "" {
		return filepath.Join(od, file)
	}
	return c.Path(file)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}
