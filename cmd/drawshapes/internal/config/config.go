// Package config reads the settings of the drawshapes command from the
// command line and an optional JSON file. Command line values take
// precedence over values from the file.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
)

// Config holds the settings of one drawshapes run.
type Config struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Seed   uint64 `json:"seed"`

	// Count is the number of random shapes of random kinds.
	Count int `json:"count"`

	// Kinds maps shape kind names ("line", "circle", ...) to the number
	// of random shapes of that kind. If set, Count is ignored.
	Kinds map[string]int `json:"kinds,omitempty"`

	// Case selects a named test case instead of a random scene.
	Case string `json:"case,omitempty"`

	Output   string `json:"output"`
	Scale    int    `json:"scale"`
	PDF      string `json:"pdf,omitempty"`
	Outlines bool   `json:"outlines,omitempty"`
	Verbose  bool   `json:"verbose,omitempty"`
}

// Default values.
const (
	defaultWidth  = 200
	defaultHeight = 150
	defaultCount  = 20
	defaultOutput = "image.png"
	defaultScale  = 1
)

// Parse reads the configuration from the given command line arguments
// (without the program name).
func Parse(name string, args []string) (*Config, error) {
	fset := flag.NewFlagSet(name, flag.ContinueOnError)
	confPtr := fset.String("f", "", "config filename (JSON)")
	widthPtr := fset.Int("width", defaultWidth, "image width in pixels")
	heightPtr := fset.Int("height", defaultHeight, "image height in pixels")
	seedPtr := fset.Uint64("seed", 0, "random seed (0 means random)")
	countPtr := fset.Int("n", defaultCount, "number of random shapes")
	casePtr := fset.String("case", "", "draw the named test case instead of a random scene")
	outPtr := fset.String("o", defaultOutput, "output file (.png or .bmp)")
	scalePtr := fset.Int("scale", defaultScale, "enlarge every pixel by this factor")
	pdfPtr := fset.String("pdf", "", "also write a PDF file")
	outlinesPtr := fset.Bool("outlines", false, "draw shape outlines into the PDF file")
	verbosePtr := fset.Bool("v", false, "verbose logging")
	if err := fset.Parse(args); err != nil {
		return nil, err
	}

	conf := &Config{}
	if *confPtr != "" {
		var err error
		conf, err = readConfig(*confPtr)
		if err != nil {
			return nil, err
		}
	}

	if conf.Width == 0 || *widthPtr != defaultWidth {
		conf.Width = *widthPtr
	}
	if conf.Height == 0 || *heightPtr != defaultHeight {
		conf.Height = *heightPtr
	}
	if *seedPtr != 0 {
		conf.Seed = *seedPtr
	}
	if conf.Count == 0 || *countPtr != defaultCount {
		conf.Count = *countPtr
	}
	if *casePtr != "" {
		conf.Case = *casePtr
	}
	if conf.Output == "" || *outPtr != defaultOutput {
		conf.Output = *outPtr
	}
	if conf.Scale == 0 || *scalePtr != defaultScale {
		conf.Scale = *scalePtr
	}
	if *pdfPtr != "" {
		conf.PDF = *pdfPtr
	}
	conf.Outlines = conf.Outlines || *outlinesPtr
	conf.Verbose = conf.Verbose || *verbosePtr

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// Validate checks the configuration for values which cannot be used.
func (c *Config) Validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("invalid scale %d", c.Scale)
	}
	if c.Case != "" {
		return nil
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", c.Width, c.Height)
	}
	if c.Count < 0 {
		return fmt.Errorf("invalid shape count %d", c.Count)
	}
	for kind, n := range c.Kinds {
		if n < 0 {
			return fmt.Errorf("invalid count %d for %q", n, kind)
		}
	}
	return nil
}

func readConfig(fn string) (*Config, error) {
	conf := &Config{}

	file, err := os.Open(fn)
	if errors.Is(err, fs.ErrNotExist) {
		return conf, nil
	} else if err != nil {
		return nil, err
	}
	defer file.Close()

	dec := json.NewDecoder(file)
	dec.DisallowUnknownFields()
	if err := dec.Decode(conf); err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	return conf, nil
}
