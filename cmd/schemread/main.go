package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/urfave/cli/v2"

	"github.com/blockme/schemread/config"
	"github.com/blockme/schemread/decompress"
	"github.com/blockme/schemread/materials"
	"github.com/blockme/schemread/schematic"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "schemread:", err)
		os.Exit(1)
	}
}

type env struct {
	cfg    config.Config
	logger *log.Logger
	dec    decompress.Decompressor
	cache  *schematic.Cache
}

func newApp() *cli.App {
	e := &env{}
	return &cli.App{
		Name:  "schemread",
		Usage: "inspect MCEdit, Sponge and Litematica schematic files",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML settings `FILE`"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log decoder progress to stderr"},
		},
		Before: e.setup,
		Commands: []*cli.Command{
			{
				Name:      "info",
				Usage:     "print format, size and block count of each file",
				ArgsUsage: "FILE...",
				Action:    e.info,
			},
			{
				Name:      "blocks",
				Usage:     "print the decoded schematic as JSON",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "indent", Usage: "indent the JSON output"},
				},
				Action: e.blocks,
			},
			{
				Name:      "materials",
				Usage:     "list how many of each block the schematic needs",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "print the list as JSON"},
				},
				Action: e.materials,
			},
		},
	}
}

func (e *env) setup(c *cli.Context) error {
	e.cfg = config.Default()
	if path := c.String("config"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		e.cfg = cfg
	}
	if c.Bool("verbose") {
		e.logger = log.New(c.App.ErrWriter, "[schemread] ", log.LstdFlags)
	}
	cache, err := schematic.NewCache(e.cfg.CacheSize)
	if err != nil {
		return err
	}
	e.cache = cache
	e.dec = e.cfg.Decompressor()
	return nil
}

func (e *env) load(path string) (*schematic.Schematic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	raw, err := e.dec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s, err := e.cache.Decode(raw, e.cfg.Options(e.logger))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

type result struct {
	path string
	s    *schematic.Schematic
	err  error
}

// loadAll decodes paths concurrently, at most cfg.Workers at a time. Results keep argument order.
func (e *env) loadAll(paths []string) []result {
	results := make([]result, len(paths))
	sem := make(chan struct{}, e.cfg.Workers)

	var wg sync.WaitGroup
	wg.Add(len(paths))
	for i, path := range paths {
		go func(i int, path string, wg *sync.WaitGroup) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			s, err := e.load(path)
			results[i] = result{path: path, s: s, err: err}
		}(i, path, &wg)
	}
	wg.Wait()
	return results
}

func (e *env) info(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("info needs at least one file")
	}
	failed := 0
	for _, r := range e.loadAll(c.Args().Slice()) {
		if r.err != nil {
			failed++
			fmt.Fprintln(c.App.ErrWriter, r.err)
			continue
		}
		fmt.Fprintf(c.App.Writer, "%s: %s %dx%dx%d, %d blocks\n",
			r.path, r.s.Format, r.s.Width, r.s.Height, r.s.Length, len(r.s.Blocks))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to decode", failed, c.NArg())
	}
	return nil
}

func (e *env) single(c *cli.Context) (*schematic.Schematic, error) {
	if c.NArg() != 1 {
		return nil, fmt.Errorf("%s needs exactly one file", c.Command.Name)
	}
	return e.load(c.Args().First())
}

func (e *env) blocks(c *cli.Context) error {
	s, err := e.single(c)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(c.App.Writer)
	if c.Bool("indent") {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(s)
}

func (e *env) materials(c *cli.Context) error {
	s, err := e.single(c)
	if err != nil {
		return err
	}
	entries := materials.Count(s.Blocks)
	if c.Bool("json") {
		return json.NewEncoder(c.App.Writer).Encode(entries)
	}
	return materials.WriteReport(c.App.Writer, entries)
}
