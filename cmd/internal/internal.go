// SPDX-License-Identifier: MIT

// Package internal holds the plumbing shared by the nml sub commands:
// flags, configuration, matrix input and output.
package internal

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/nml/matrix"
)

// Version is the nml version.
const Version = "v0.1.0"

// Flags is used to define the standard command-line parameters for
// nml sub commands.
type Flags struct {
	Matrix  string // Matrix literal: rows separated by ';', values by ',' or blanks
	File    string // Path to a toml file with a data = [[...]] table
	Params  string // Path to the configuration file
	Verbose bool   // Enable logging
}

// Init initializes the standard commandline arguments for the given
// subcommand.
func (flags *Flags) Init(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flags.Matrix, "matrix", "m", "", "set matrix literal, e.g. \"1,2;3,4\"")
	cmd.Flags().StringVarP(&flags.File, "file", "f", "", "set path to toml matrix file")
	cmd.Flags().StringVarP(&flags.Params, "parameters", "P", "", "set path to configuration file")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "enable logging")
}

// Load reads the configuration and the input matrix named by the flags.
// Exactly one of Matrix and File must be set.
func (flags *Flags) Load() (*matrix.Dense, *Config, error) {
	c, err := ReadConfig(flags.Params)
	if err != nil {
		return nil, nil, err
	}
	UpdateInConfig(&c.Verbose, flags.Verbose)
	SetLog(c.Verbose)

	var m *matrix.Dense
	switch {
	case flags.Matrix != "" && flags.File != "":
		return nil, nil, fmt.Errorf("load: both --matrix and --file given")
	case flags.Matrix != "":
		m, err = ParseMatrix(flags.Matrix)
	case flags.File != "":
		m, err = ReadMatrixFile(flags.File)
	default:
		return nil, nil, fmt.Errorf("load: missing --matrix or --file")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load: %v", err)
	}
	Log("loaded %dx%d matrix", m.Rows(), m.Cols())
	return m, c, nil
}

// ParseMatrix parses a matrix literal: rows are separated by ';',
// values by ',' or white space.  "1,2;3,4" is [[1,2],[3,4]].
func ParseMatrix(lit string) (*matrix.Dense, error) {
	var rows [][]float64
	for i, line := range strings.Split(lit, ";") {
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n'
		})
		if len(fields) == 0 {
			return nil, fmt.Errorf("parseMatrix: empty row %d", i)
		}
		row := make([]float64, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("parseMatrix: row %d: %v", i, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	m, err := matrix.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("parseMatrix: %w", err)
	}
	return m, nil
}

// matrixFile is the toml layout of a matrix file.
type matrixFile struct {
	Data [][]float64 `toml:"data"`
}

// ReadMatrixFile reads a matrix from a toml file of the form
//
//	data = [[1.0, 2.0], [3.0, 4.0]]
func ReadMatrixFile(name string) (*matrix.Dense, error) {
	var f matrixFile
	if _, err := toml.DecodeFile(name, &f); err != nil {
		return nil, fmt.Errorf("readMatrixFile %s: %v", name, err)
	}
	m, err := matrix.FromRows(f.Data)
	if err != nil {
		return nil, fmt.Errorf("readMatrixFile %s: %w", name, err)
	}
	return m, nil
}

// Print writes m to w one row per line, values separated by blanks.
func Print(w io.Writer, m *matrix.Dense) error {
	for _, row := range m.RawRows() {
		strs := make([]string, len(row))
		for i, v := range row {
			strs[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if _, err := fmt.Fprintln(w, strings.Join(strs, " ")); err != nil {
			return err
		}
	}
	return nil
}
